package tree

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVerify(t *testing.T) {
	assert := assert.New(t)

	assert.NoError(generated(t, 7).Verify())
	assert.ErrorIs((&Tree{}).Verify(), ErrNilTree)

	var nilTree *Tree
	assert.ErrorIs(nilTree.Verify(), ErrNilTree)

	// duplicate ids
	tr := NewTree()
	tr.Root.AppendChild(NewNode(2))
	tr.Root.AppendChild(NewNode(2))
	assert.ErrorIs(tr.Verify(), ErrInvalidTree)

	// non-positive id
	tr = NewTree()
	tr.Root.AppendChild(NewNode(0))
	assert.ErrorIs(tr.Verify(), ErrInvalidTree)

	// back-reference pointing somewhere other than the owner
	tr = generated(t, 3)
	tr.Root.Child(1).setParent(tr.Root.Child(0))
	err := tr.Verify()
	assert.ErrorIs(err, ErrInvalidTree)
	assert.True(strings.Contains(err.Error(), "owned by 1"))

	// root with a parent
	tr = generated(t, 3)
	tr.Root.setParent(tr.Root.Child(0))
	assert.ErrorIs(tr.Verify(), ErrInvalidTree)

	// ownership cycle
	tr = generated(t, 3)
	tr.Root.Child(0).Child(0).AppendChild(tr.Root)
	assert.ErrorIs(tr.Verify(), ErrInvalidTree)
}

func TestDebugString(t *testing.T) {
	tr := generated(t, 3)
	out := DebugString(tr)
	assert.Contains(t, out, "[1]─◉")
	assert.Contains(t, out, "[6]─◉")

	b, err := CBORCodec{}.Marshal(t.Context(), tr)
	assert.NoError(t, err)
	loaded, err := CBORCodec{}.Unmarshal(t.Context(), b)
	assert.NoError(t, err)
	out = DebugString(loaded)
	assert.Contains(t, out, "[6]─◌")

	assert.Equal(t, "(empty tree)\n", DebugString(nil))
}
