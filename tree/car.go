package tree

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"

	blocks "github.com/ipfs/go-block-format"
	"github.com/ipfs/go-cid"
	"github.com/ipfs/go-datastore"
	blockstore "github.com/ipfs/go-ipfs-blockstore"
	cbor "github.com/ipfs/go-ipld-cbor"
	ipld "github.com/ipfs/go-ipld-format"
	"github.com/ipld/go-car"
	carutil "github.com/ipld/go-car/util"
	"github.com/multiformats/go-multihash"
)

// DAG-CBOR block for a single node in the content-addressed (CAR) form. Children are referenced by block CID, in order.
type NodeBlock struct {
	ID       int64     `cborgen:"id"`
	Children []cid.Cid `cborgen:"children,maxlen=1048576"`
}

var ErrNoRoot = errors.New("CAR file missing root CID")

var ErrBlockHashMismatch = errors.New("CAR block hash mismatch")

// Encodes a tree as a CAR v1 file: one DAG-CBOR block per node, with the root node block as the single CAR root.
type CARCodec struct{}

func (CARCodec) Name() string {
	return "car"
}

func (c CARCodec) Marshal(ctx context.Context, t *Tree) ([]byte, error) {
	b, err := c.marshal(t)
	if err != nil {
		treesEncoded.WithLabelValues(c.Name(), "error").Inc()
		return nil, fmt.Errorf("%w: %w", ErrEncoding, err)
	}
	treesEncoded.WithLabelValues(c.Name(), "ok").Inc()
	bytesEncoded.WithLabelValues(c.Name()).Add(float64(len(b)))
	return b, nil
}

func (CARCodec) marshal(t *Tree) ([]byte, error) {
	if err := t.verifyOwnership(); err != nil {
		return nil, err
	}

	// blocks are collected children-first, since parent blocks need child CIDs
	var blks []blocks.Block
	rootCID, err := writeNodeBlocks(t.Root, &blks)
	if err != nil {
		return nil, err
	}

	buf := new(bytes.Buffer)
	if err := car.WriteHeader(&car.CarHeader{
		Roots:   []cid.Cid{*rootCID},
		Version: 1,
	}, buf); err != nil {
		return nil, err
	}
	// write root first, for friendlier streaming reads
	for i := len(blks) - 1; i >= 0; i-- {
		blk := blks[i]
		if err := carutil.LdWrite(buf, blk.Cid().Bytes(), blk.RawData()); err != nil {
			return nil, err
		}
	}
	return buf.Bytes(), nil
}

// Recursively encodes sub-tree as blocks, appending them to `out`. Returns the CID of n's block.
func writeNodeBlocks(n *Node, out *[]blocks.Block) (*cid.Cid, error) {
	nb := NodeBlock{
		ID:       n.id,
		Children: make([]cid.Cid, len(n.children)),
	}
	for i, c := range n.children {
		cc, err := writeNodeBlocks(c, out)
		if err != nil {
			return nil, err
		}
		nb.Children[i] = *cc
	}

	b, c, err := nb.Bytes()
	if err != nil {
		return nil, err
	}
	blk, err := blocks.NewBlockWithCid(b, *c)
	if err != nil {
		return nil, err
	}
	*out = append(*out, blk)
	return c, nil
}

// Encodes a single `NodeBlock` as CBOR bytes, and computes the CID.
func (nb *NodeBlock) Bytes() ([]byte, *cid.Cid, error) {
	buf := new(bytes.Buffer)
	if err := nb.MarshalCBOR(buf); err != nil {
		return nil, nil, err
	}
	b := buf.Bytes()
	builder := cid.NewPrefixV1(cid.DagCBOR, multihash.SHA2_256)
	c, err := builder.Sum(b)
	if err != nil {
		return nil, nil, err
	}
	return b, &c, nil
}

func (c CARCodec) Unmarshal(ctx context.Context, b []byte) (*Tree, error) {
	t, err := c.unmarshal(ctx, b)
	if err != nil {
		treesDecoded.WithLabelValues(c.Name(), "error").Inc()
		return nil, fmt.Errorf("%w: %w", ErrDecoding, err)
	}
	treesDecoded.WithLabelValues(c.Name(), "ok").Inc()
	return t, nil
}

func (CARCodec) unmarshal(ctx context.Context, b []byte) (*Tree, error) {
	bs := blockstore.NewBlockstore(datastore.NewMapDatastore())

	cr, err := car.NewCarReader(bytes.NewReader(b))
	if err != nil {
		return nil, err
	}
	if cr.Header.Version != 1 {
		return nil, fmt.Errorf("unsupported CAR file version: %d", cr.Header.Version)
	}
	if len(cr.Header.Roots) < 1 {
		return nil, ErrNoRoot
	}
	rootCID := cr.Header.Roots[0]

	for {
		blk, err := cr.Next()
		if err != nil {
			if err == io.EOF {
				break
			}
			return nil, err
		}
		// the CAR reader does not check block hashes itself
		chk, err := blk.Cid().Prefix().Sum(blk.RawData())
		if err != nil {
			return nil, err
		}
		if !chk.Equals(blk.Cid()) {
			return nil, fmt.Errorf("%w: block data does not match CID %s", ErrBlockHashMismatch, blk.Cid())
		}
		if err := bs.Put(ctx, blk); err != nil {
			return nil, err
		}
	}

	cst := cbor.NewCborStore(bs)
	root, err := hydrateNode(ctx, cst, rootCID, make(map[cid.Cid]bool), 1)
	if err != nil {
		return nil, fmt.Errorf("reading tree from CAR file: %w", err)
	}
	t := &Tree{Root: root}
	if err := t.verifyOwnership(); err != nil {
		return nil, err
	}
	return t, nil
}

// Recursively loads node blocks from the store. Parent back-references are left unresolved.
//
// Unlike MST-style partial trees, every referenced block must be present; a block referenced twice is rejected, since a node has exactly one owner. depth is the level of ref, counting the root as 1, and is bounded by MaxDepth.
func hydrateNode(ctx context.Context, cst *cbor.BasicIpldStore, ref cid.Cid, seen map[cid.Cid]bool, depth int) (*Node, error) {
	if depth > MaxDepth {
		return nil, fmt.Errorf("%w: more than %d levels", ErrTooDeep, MaxDepth)
	}
	if seen[ref] {
		return nil, fmt.Errorf("%w: block %s referenced more than once", ErrInvalidTree, ref)
	}
	seen[ref] = true

	var nb NodeBlock
	if err := cst.Get(ctx, ref, &nb); err != nil {
		if ipld.IsNotFound(err) {
			return nil, fmt.Errorf("missing node block %s", ref)
		}
		return nil, err
	}

	n := NewNode(nb.ID)
	for _, cc := range nb.Children {
		child, err := hydrateNode(ctx, cst, cc, seen, depth+1)
		if err != nil {
			return nil, err
		}
		n.children = append(n.children, child)
	}
	return n, nil
}
