package tree

import (
	"fmt"
)

// Checks the structural invariants of a fully linked tree: ids are positive and unique, no node is owned twice (which also rules out ownership cycles), the root has no parent, and every other node's back-reference resolves to the node which owns it.
func (t *Tree) Verify() error {
	if err := t.verifyOwnership(); err != nil {
		return err
	}
	if p := t.Root.Parent(); p != nil {
		return fmt.Errorf("%w: root node has a parent (%d)", ErrInvalidTree, p.id)
	}
	for n := range Walk(t) {
		for _, c := range n.children {
			p := c.Parent()
			if p == nil {
				return fmt.Errorf("%w: node %d has unresolved parent", ErrInvalidTree, c.id)
			}
			if p != n {
				return fmt.Errorf("%w: node %d points at parent %d, but is owned by %d", ErrInvalidTree, c.id, p.id, n.id)
			}
		}
	}
	return nil
}

// Checks only the owning structure (ids, acyclic single ownership, and the MaxChildren / MaxDepth limits); back-references are not inspected. This is what can be checked on a freshly decoded tree.
func (t *Tree) verifyOwnership() error {
	if t == nil || t.Root == nil {
		return ErrNilTree
	}
	seen := make(map[*Node]bool)
	ids := make(map[int64]bool)
	level := []*Node{t.Root}
	for depth := 1; len(level) > 0; depth++ {
		if depth > MaxDepth {
			return fmt.Errorf("%w: more than %d levels", ErrTooDeep, MaxDepth)
		}
		var next []*Node
		for _, n := range level {
			if n == nil {
				return fmt.Errorf("%w: nil child node", ErrInvalidTree)
			}
			if seen[n] {
				return fmt.Errorf("%w: node %d is owned more than once", ErrInvalidTree, n.id)
			}
			seen[n] = true
			if n.id <= 0 {
				return fmt.Errorf("%w: non-positive node id %d", ErrInvalidTree, n.id)
			}
			if ids[n.id] {
				return fmt.Errorf("%w: duplicate node id %d", ErrInvalidTree, n.id)
			}
			ids[n.id] = true
			if len(n.children) > MaxChildren {
				return fmt.Errorf("%w: node %d has %d children", ErrTooManyChildren, n.id, len(n.children))
			}
			next = append(next, n.children...)
		}
		level = next
	}
	return nil
}
