package tree

import (
	"fmt"

	"github.com/xlab/treeprint"
)

// Renders the tree as indented text, one line per node. Nodes whose parent back-reference is unresolved are marked with "◌".
func DebugString(t *Tree) string {
	if t == nil || t.Root == nil {
		return "(empty tree)\n"
	}
	out := treeprint.NewWithRoot(displayNode(t.Root, true))
	addBranches(t.Root, out)
	return out.String()
}

func addBranches(n *Node, branch treeprint.Tree) {
	for _, c := range n.children {
		linked := c.Parent() == n
		if c.IsLeaf() {
			branch.AddNode(displayNode(c, linked))
			continue
		}
		addBranches(c, branch.AddBranch(displayNode(c, linked)))
	}
}

func displayNode(n *Node, linked bool) string {
	connector := "─◉"
	if !linked {
		connector = "─◌"
	}
	return fmt.Sprintf("[%d]%s", n.id, connector)
}
