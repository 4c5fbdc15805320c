package tree

import (
	"iter"
	"weak"
)

// Represents a single node in a tree. A node owns its children (strong pointers), and refers back to its parent with a weak pointer which never keeps the parent alive.
type Node struct {
	// positive, unique across the tree. root is always 1 for generated trees
	id int64
	// ordered list of owned child nodes, in assignment order
	children []*Node
	// non-owning link to the node which owns this one; zero value for the root or for a freshly decoded node
	parent weak.Pointer[Node]
}

func NewNode(id int64) *Node {
	return &Node{id: id}
}

func (n *Node) ID() int64 {
	return n.id
}

// Adds an owned child at the end of the children list, and points the child's back-reference at this node.
func (n *Node) AppendChild(child *Node) {
	n.children = append(n.children, child)
	child.setParent(n)
}

func (n *Node) setParent(p *Node) {
	n.parent = weak.Make(p)
}

// Resolves the parent back-reference. Returns nil for the root, for nodes whose back-reference has not been (re)built, or if the parent is no longer alive.
func (n *Node) Parent() *Node {
	return n.parent.Value()
}

// Iterates over children in stored order. The returned sequence is read-only; mutating the tree while iterating is not supported.
func (n *Node) Children() iter.Seq[*Node] {
	return func(yield func(*Node) bool) {
		for _, c := range n.children {
			if !yield(c) {
				return
			}
		}
	}
}

func (n *Node) NumChildren() int {
	return len(n.children)
}

// Returns the child at index i, or nil if out of range.
func (n *Node) Child(i int) *Node {
	if i < 0 || i >= len(n.children) {
		return nil
	}
	return n.children[i]
}

func (n *Node) IsLeaf() bool {
	return len(n.children) == 0
}
