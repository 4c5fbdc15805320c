package tree

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseSequence(t *testing.T) {
	testVec := []struct {
		Input string
		Seq   Sequence
	}{
		{"1", Sequence{1}},
		{"1,4,1,5", Sequence{1, 4, 1, 5}},
		{" 1, 4 ,0 ", Sequence{1, 4, 0}},
		{PiDigits.String(), PiDigits},
	}
	for _, c := range testVec {
		seq, err := ParseSequence(c.Input)
		assert.NoError(t, err, c.Input)
		assert.Equal(t, c.Seq, seq, c.Input)
	}

	for _, bad := range []string{"", "   ", "1,,2", "1,-2", "one,two", "1.5"} {
		_, err := ParseSequence(bad)
		assert.ErrorIs(t, err, ErrInvalidSequence, bad)
	}
}

func TestSequenceString(t *testing.T) {
	assert.Equal(t, "1,4,1,5", Sequence{1, 4, 1, 5}.String())
	assert.Equal(t, "", Sequence{}.String())
}

func TestExpectedCount(t *testing.T) {
	assert.Equal(t, 20, PiDigits.ExpectedCount(5))
	assert.Equal(t, 6, PiDigits.ExpectedCount(3))
	assert.Equal(t, 1, PiDigits.ExpectedCount(1))
	assert.Equal(t, 1, PiDigits.ExpectedCount(0))
	assert.Equal(t, 1, Sequence{}.ExpectedCount(5))
}
