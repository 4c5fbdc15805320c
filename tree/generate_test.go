package tree

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func contiguousIDs(n int) []int64 {
	out := make([]int64, n)
	for i := range out {
		out[i] = int64(i + 1)
	}
	return out
}

func TestGenerateNodeCount(t *testing.T) {
	assert := assert.New(t)

	testVec := []struct {
		Depth int
		Count int
	}{
		{0, 1},
		{1, 1},
		{2, 5},
		{3, 6},
		{5, 20},
		{6, 1 + 4 + 1 + 5 + 9 + 2},
		{24, 1 + 4 + 1 + 5 + 9 + 2 + 6 + 5 + 3 + 5 + 8 + 9 + 7 + 9 + 3 + 2 + 3 + 8 + 4 + 6 + 2 + 6 + 4 + 3},
		// sequence runs out before requested depth
		{100, PiDigits.ExpectedCount(24)},
	}

	for _, c := range testVec {
		tr := NewTree()
		_, err := Generate(tr, c.Depth)
		assert.NoError(err)
		assert.Equal(c.Count, len(Traverse(tr)), "depth %d", c.Depth)
		assert.Equal(c.Count, PiDigits.ExpectedCount(c.Depth), "depth %d", c.Depth)
	}
}

func TestGenerateContiguousIDs(t *testing.T) {
	for depth := 0; depth < 12; depth++ {
		tr := NewTree()
		_, err := Generate(tr, depth)
		require.NoError(t, err)
		ids := Traverse(tr)
		assert.Equal(t, contiguousIDs(len(ids)), ids, "depth %d", depth)
	}

	tr := NewTree()
	_, err := Generate(tr, 5)
	require.NoError(t, err)
	assert.Equal(t, contiguousIDs(20), Traverse(tr))
}

func TestGenerateShallow(t *testing.T) {
	for _, depth := range []int{-3, 0, 1} {
		tr := NewTree()
		stats, err := Generate(tr, depth)
		assert.NoError(t, err)
		assert.Equal(t, GenerateStats{}, stats)
		assert.Equal(t, []int64{1}, Traverse(tr))
		assert.True(t, tr.Root.IsLeaf())
	}
}

func TestGenerateFairness(t *testing.T) {
	seqs := []Sequence{
		PiDigits,
		{1, 3, 7, 2, 11, 30, 1, 0},
		{1, 1, 1, 1, 50, 49, 200},
	}
	for _, seq := range seqs {
		tr := NewTree()
		_, err := GenerateWith(tr, len(seq), GenerateOptions{Sequence: seq})
		require.NoError(t, err)

		level := []*Node{tr.Root}
		for len(level) > 0 {
			minKids, maxKids := -1, -1
			var next []*Node
			for _, n := range level {
				k := n.NumChildren()
				if minKids < 0 || k < minKids {
					minKids = k
				}
				if k > maxKids {
					maxKids = k
				}
				next = append(next, n.children...)
			}
			assert.LessOrEqual(t, maxKids-minKids, 1, "sequence %s", seq)
			level = next
		}
	}
}

func TestGenerateExtraGoesFirst(t *testing.T) {
	assert := assert.New(t)

	tr := NewTree()
	_, err := GenerateWith(tr, 3, GenerateOptions{Sequence: Sequence{1, 3, 5}})
	assert.NoError(err)

	// 5 children over 3 parents: 2, 2, 1
	assert.Equal([][]int64{{1}, {2, 3, 4}, {5, 6, 7, 8, 9}}, Levels(tr))
	assert.Equal(2, tr.Find(2).NumChildren())
	assert.Equal(2, tr.Find(3).NumChildren())
	assert.Equal(1, tr.Find(4).NumChildren())
	assert.Equal(int64(2), tr.Find(6).Parent().ID())
	assert.Equal(int64(3), tr.Find(7).Parent().ID())
	assert.Equal(int64(4), tr.Find(9).Parent().ID())
}

func TestGenerateZeroCountStops(t *testing.T) {
	assert := assert.New(t)

	tr := NewTree()
	stats, err := GenerateWith(tr, 5, GenerateOptions{Sequence: Sequence{1, 2, 0, 4, 4}})
	assert.NoError(err)
	assert.Equal(GenerateStats{Levels: 1, Created: 2}, stats)
	assert.Equal([]int64{1, 2, 3}, Traverse(tr))
	assert.Equal(3, Sequence{1, 2, 0, 4, 4}.ExpectedCount(5))
}

func TestGenerateBackReferences(t *testing.T) {
	tr := NewTree()
	_, err := Generate(tr, 8)
	require.NoError(t, err)
	assert.NoError(t, tr.Verify())
}

func TestGenerateContinuesIDs(t *testing.T) {
	assert := assert.New(t)

	tr := NewTree()
	_, err := Generate(tr, 2)
	assert.NoError(err)
	stats, err := GenerateWith(tr, 2, GenerateOptions{Sequence: Sequence{1, 2}})
	assert.NoError(err)
	assert.Equal(2, stats.Created)
	assert.Equal([]int64{1, 2, 3, 4, 5, 6, 7}, Traverse(tr))
	assert.NoError(tr.Verify())
}

func TestGenerateErrors(t *testing.T) {
	_, err := GenerateWith(NewTree(), 3, GenerateOptions{Sequence: Sequence{1, -2}})
	assert.ErrorIs(t, err, ErrInvalidSequence)

	_, err = Generate(nil, 3)
	assert.ErrorIs(t, err, ErrNilTree)

	_, err = GenerateWith(NewTree(), 2, GenerateOptions{Sequence: Sequence{1, MaxChildren + 1}})
	assert.ErrorIs(t, err, ErrTooManyChildren)

	// spread over two parents, one of them still gets too many
	_, err = GenerateWith(NewTree(), 3, GenerateOptions{Sequence: Sequence{1, 2, 2*MaxChildren + 1}})
	assert.ErrorIs(t, err, ErrTooManyChildren)

	seq := make(Sequence, MaxDepth+1)
	for i := range seq {
		seq[i] = 1
	}
	_, err = GenerateWith(NewTree(), len(seq), GenerateOptions{Sequence: seq})
	assert.ErrorIs(t, err, ErrTooDeep)

	_, err = Generate(&Tree{}, 3)
	assert.ErrorIs(t, err, ErrNilTree)
}

func TestGenerateFailureLeavesTreeUnchanged(t *testing.T) {
	tr := NewTree()
	stats, err := GenerateWith(tr, 4, GenerateOptions{Sequence: Sequence{1, 3, -1}})
	assert.ErrorIs(t, err, ErrInvalidSequence)
	assert.Zero(t, stats.Created)
	assert.Equal(t, []int64{1}, Traverse(tr))

	tr = generated(t, 3)
	before := Levels(tr)
	_, err = GenerateWith(tr, 3, GenerateOptions{Sequence: Sequence{1, 2, 2*MaxChildren + 1}})
	assert.ErrorIs(t, err, ErrTooManyChildren)
	assert.Equal(t, before, Levels(tr))
}

func TestGenerateLogging(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	_, err := GenerateWith(NewTree(), 3, GenerateOptions{Logger: logger})
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "generated tree level")
	assert.Contains(t, buf.String(), "nodes=4")
}
