package tree

import (
	"iter"
)

// Breadth-first iteration over all nodes, starting at the root. Children are visited in stored order, so generated trees come out level by level, left to right.
//
// Yields nothing for a nil or empty tree.
func Walk(t *Tree) iter.Seq[*Node] {
	return func(yield func(*Node) bool) {
		if t == nil || t.Root == nil {
			return
		}
		queue := []*Node{t.Root}
		for len(queue) > 0 {
			n := queue[0]
			queue = queue[1:]
			if !yield(n) {
				return
			}
			queue = append(queue, n.children...)
		}
	}
}

// Returns node ids in breadth-first order.
func Traverse(t *Tree) []int64 {
	var out []int64
	for n := range Walk(t) {
		out = append(out, n.id)
	}
	return out
}

// Returns node ids grouped by level; index 0 is the root level.
func Levels(t *Tree) [][]int64 {
	if t == nil || t.Root == nil {
		return nil
	}
	var out [][]int64
	level := []*Node{t.Root}
	for len(level) > 0 {
		ids := make([]int64, len(level))
		var next []*Node
		for i, n := range level {
			ids[i] = n.id
			next = append(next, n.children...)
		}
		out = append(out, ids)
		level = next
	}
	return out
}
