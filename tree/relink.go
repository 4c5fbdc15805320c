package tree

// Rebuilds every parent back-reference from the owning child lists.
//
// This must be called after decoding a tree if upward navigation is needed; persisted forms do not carry back-references. Calling it on an already-linked tree is a no-op in effect.
func Relink(t *Tree) error {
	if t == nil || t.Root == nil {
		return ErrNilTree
	}
	queue := []*Node{t.Root}
	for len(queue) > 0 {
		n := queue[0]
		queue = queue[1:]
		for _, c := range n.children {
			c.setParent(n)
			queue = append(queue, c)
		}
	}
	relinks.Inc()
	return nil
}
