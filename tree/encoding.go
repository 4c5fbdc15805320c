package tree

import (
	"bytes"
	"context"
	"fmt"
	"io"

	cbg "github.com/whyrusleeping/cbor-gen"
)

// CBOR serialization struct for a tree node, including (recursively) all of its children. Parent back-references are never serialized.
type NodeData struct {
	ID       int64       `cborgen:"id"`
	Children []*NodeData `cborgen:"children,maxlen=1048576"`
}

// Converts between in-memory trees and bytes. Implementations only encode owning edges; decoded trees have unresolved parent back-references.
type Codec interface {
	Name() string
	Marshal(ctx context.Context, t *Tree) ([]byte, error)
	Unmarshal(ctx context.Context, b []byte) (*Tree, error)
}

// Looks up a codec by short name: "cbor" or "car".
func CodecByName(name string) (Codec, error) {
	switch name {
	case "cbor", "":
		return CBORCodec{}, nil
	case "car":
		return CARCodec{}, nil
	default:
		return nil, fmt.Errorf("unknown tree codec: %q", name)
	}
}

// Encodes the tree with the codec and writes all bytes to w.
//
// The tree is never modified. Encoding failures wrap ErrEncoding; failures writing to w wrap ErrIO.
func Save(ctx context.Context, w io.Writer, t *Tree, codec Codec) error {
	b, err := codec.Marshal(ctx, t)
	if err != nil {
		return err
	}
	if _, err := w.Write(b); err != nil {
		return fmt.Errorf("%w: %w", ErrIO, err)
	}
	return nil
}

// Reads all bytes from r and decodes a tree with the codec.
//
// NOTE: the returned tree has every parent back-reference unresolved. Call Relink before navigating upwards, or use LoadLinked.
func Load(ctx context.Context, r io.Reader, codec Codec) (*Tree, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrIO, err)
	}
	return codec.Unmarshal(ctx, b)
}

// Like Load, but also rebuilds and verifies parent back-references, so the returned tree is fully navigable.
func LoadLinked(ctx context.Context, r io.Reader, codec Codec) (*Tree, error) {
	t, err := Load(ctx, r, codec)
	if err != nil {
		return nil, err
	}
	if err := Relink(t); err != nil {
		return nil, err
	}
	if err := t.Verify(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecoding, err)
	}
	return t, nil
}

// Encodes the owning structure as a single nested CBOR object.
type CBORCodec struct{}

func (CBORCodec) Name() string {
	return "cbor"
}

func (c CBORCodec) Marshal(ctx context.Context, t *Tree) ([]byte, error) {
	if err := t.verifyOwnership(); err != nil {
		treesEncoded.WithLabelValues(c.Name(), "error").Inc()
		return nil, fmt.Errorf("%w: %w", ErrEncoding, err)
	}
	nd := t.Root.NodeData()
	buf := new(bytes.Buffer)
	if err := nd.MarshalCBOR(buf); err != nil {
		treesEncoded.WithLabelValues(c.Name(), "error").Inc()
		return nil, fmt.Errorf("%w: %w", ErrEncoding, err)
	}
	treesEncoded.WithLabelValues(c.Name(), "ok").Inc()
	bytesEncoded.WithLabelValues(c.Name()).Add(float64(buf.Len()))
	return buf.Bytes(), nil
}

func (c CBORCodec) Unmarshal(ctx context.Context, b []byte) (*Tree, error) {
	t, err := c.unmarshal(b)
	if err != nil {
		treesDecoded.WithLabelValues(c.Name(), "error").Inc()
		return nil, err
	}
	treesDecoded.WithLabelValues(c.Name(), "ok").Inc()
	return t, nil
}

func (CBORCodec) unmarshal(b []byte) (*Tree, error) {
	// each tree level is a map plus its children array
	if err := checkNesting(b, 2*MaxDepth); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecoding, err)
	}
	r := bytes.NewReader(b)
	nd, err := NodeDataFromCBOR(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecoding, err)
	}
	if r.Len() > 0 {
		return nil, fmt.Errorf("%w: %d trailing bytes after root node", ErrDecoding, r.Len())
	}
	root, err := nd.Node()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecoding, err)
	}
	t := &Tree{Root: root}
	if err := t.verifyOwnership(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecoding, err)
	}
	return t, nil
}

// Walks the first CBOR item in b without recursing, and fails if arrays, maps and tags nest deeper than maxNesting, or if the item is truncated. The generated decoders recurse once per nesting level, so this runs first on untrusted bytes.
func checkNesting(b []byte, maxNesting int) error {
	cr := cbg.NewCborReader(bytes.NewReader(b))
	// items still expected in each open container; the bottom entry is the single top-level item
	pending := []uint64{1}
	for len(pending) > 0 {
		top := len(pending) - 1
		if pending[top] == 0 {
			pending = pending[:top]
			continue
		}
		pending[top]--

		maj, extra, err := cr.ReadHeader()
		if err != nil {
			return err
		}
		// every item takes at least one byte, so no real count exceeds the input size
		if extra > uint64(len(b)) && maj != cbg.MajUnsignedInt && maj != cbg.MajNegativeInt && maj != cbg.MajOther {
			return fmt.Errorf("cbor length %d exceeds input size", extra)
		}
		switch maj {
		case cbg.MajByteString, cbg.MajTextString:
			if _, err := io.CopyN(io.Discard, cr, int64(extra)); err != nil {
				return err
			}
		case cbg.MajArray:
			pending = append(pending, extra)
		case cbg.MajMap:
			pending = append(pending, 2*extra)
		case cbg.MajTag:
			pending = append(pending, 1)
		}
		if len(pending)-1 > maxNesting {
			return fmt.Errorf("%w: cbor nesting deeper than %d", ErrTooDeep, maxNesting)
		}
	}
	return nil
}

// Parses CBOR bytes in to a `NodeData` struct
func NodeDataFromCBOR(r io.Reader) (*NodeData, error) {
	var nd NodeData
	if err := nd.UnmarshalCBOR(r); err != nil {
		return nil, err
	}
	return &nd, nil
}

// Transforms a `Node` (recursively) in to the `NodeData` format used for encoding to CBOR. Parent links are dropped.
func (n *Node) NodeData() NodeData {
	d := NodeData{
		ID:       n.id,
		Children: make([]*NodeData, len(n.children)),
	}
	for i, c := range n.children {
		cd := c.NodeData()
		d.Children[i] = &cd
	}
	return d
}

// Transforms decoded `NodeData` in to a `Node` sub-tree. Child ownership is rebuilt; parent back-references are left unresolved.
func (d *NodeData) Node() (*Node, error) {
	n := NewNode(d.ID)
	if len(d.Children) > 0 {
		n.children = make([]*Node, len(d.Children))
	}
	for i, cd := range d.Children {
		if cd == nil {
			return nil, fmt.Errorf("null child entry under node %d", d.ID)
		}
		c, err := cd.Node()
		if err != nil {
			return nil, err
		}
		n.children[i] = c
	}
	return n, nil
}
