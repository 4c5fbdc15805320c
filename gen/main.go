package main

import (
	"github.com/bluesky-social/pitree/tree"

	cbg "github.com/whyrusleeping/cbor-gen"
)

func main() {
	if err := cbg.WriteMapEncodersToFile("tree/cbor_gen.go", "tree", tree.NodeData{}, tree.NodeBlock{}); err != nil {
		panic(err)
	}
}
