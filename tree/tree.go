package tree

import (
	"errors"
	"fmt"
	"slices"
)

// The tree exclusively owns the root node; every other node is owned by its parent.
type Tree struct {
	Root *Node
}

var ErrNilTree = errors.New("tree has no root node")

var ErrInvalidTree = errors.New("invalid tree structure")

var ErrEncoding = errors.New("failed to encode tree")

var ErrDecoding = errors.New("failed to decode tree")

var ErrIO = errors.New("tree storage I/O failed")

var ErrTooManyChildren = errors.New("node has too many children")

var ErrTooDeep = errors.New("tree is nested too deeply")

// Largest number of children a single node may own. Both codecs enforce this as the encoded array length limit (see the cborgen maxlen tags), and generation refuses sequences which would exceed it.
const MaxChildren = 1 << 20

// Largest number of levels (counting the root) a tree may have. Encoding and decoding recurse once per level, so this bounds stack use on untrusted input.
const MaxDepth = 1 << 16

// Returns a tree consisting of just a root node, with id 1.
func NewTree() *Tree {
	return &Tree{Root: NewNode(1)}
}

// Total count of nodes in the tree (including root).
func (t *Tree) Len() int {
	count := 0
	for range Walk(t) {
		count++
	}
	return count
}

// Largest id present in the tree; zero for an empty tree.
func (t *Tree) MaxID() int64 {
	var maxID int64
	for n := range Walk(t) {
		if n.id > maxID {
			maxID = n.id
		}
	}
	return maxID
}

// Breadth-first search for a node by id. Returns nil if not found.
func (t *Tree) Find(id int64) *Node {
	for n := range Walk(t) {
		if n.id == id {
			return n
		}
	}
	return nil
}

// Returns the ids from the root down to n, following parent back-references.
//
// Fails if a back-reference can not be resolved before reaching the root (eg, on a tree which was loaded but not relinked).
func (t *Tree) Path(n *Node) ([]int64, error) {
	if t == nil || t.Root == nil {
		return nil, ErrNilTree
	}
	if n == nil {
		return nil, fmt.Errorf("nil node")
	}
	var path []int64
	for cur := n; cur != nil; cur = cur.Parent() {
		path = append(path, cur.id)
		if cur == t.Root {
			slices.Reverse(path)
			return path, nil
		}
	}
	return nil, fmt.Errorf("%w: node %d has unresolved parent chain", ErrInvalidTree, n.id)
}
