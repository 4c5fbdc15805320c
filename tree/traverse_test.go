package tree

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTraverse(t *testing.T) {
	tr := generated(t, 5)
	assert.Equal(t, contiguousIDs(20), Traverse(tr))

	// traversal is read-only
	assert.Equal(t, Traverse(tr), Traverse(tr))
	assert.NoError(t, tr.Verify())

	assert.Empty(t, Traverse(nil))
	assert.Empty(t, Traverse(&Tree{}))
}

func TestLevels(t *testing.T) {
	assert := assert.New(t)

	tr := generated(t, 5)
	assert.Equal([][]int64{
		{1},
		{2, 3, 4, 5},
		{6},
		{7, 8, 9, 10, 11},
		{12, 13, 14, 15, 16, 17, 18, 19, 20},
	}, Levels(tr))

	assert.Nil(Levels(nil))
	assert.Equal([][]int64{{1}}, Levels(NewTree()))
}

func TestWalkEarlyStop(t *testing.T) {
	tr := generated(t, 5)
	var ids []int64
	for n := range Walk(tr) {
		if n.ID() > 3 {
			break
		}
		ids = append(ids, n.ID())
	}
	assert.Equal(t, []int64{1, 2, 3}, ids)
}
