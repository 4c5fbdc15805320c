package main

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/bluesky-social/pitree/store"
	"github.com/bluesky-social/pitree/tree"

	"github.com/urfave/cli/v2"
)

var storageFlags = []cli.Flag{
	&cli.StringFlag{
		Name:    "codec",
		Usage:   "tree encoding: cbor or car",
		Value:   "cbor",
		EnvVars: []string{"PITREE_CODEC"},
	},
	&cli.PathFlag{
		Name:    "file",
		Aliases: []string{"f"},
		Usage:   "path of a single encoded tree file",
	},
	&cli.PathFlag{
		Name:    "store-dir",
		Usage:   "directory of encoded tree files (one per key)",
		EnvVars: []string{"PITREE_STORE_DIR"},
	},
	&cli.PathFlag{
		Name:    "pebble-dir",
		Usage:   "pebble database directory for encoded trees",
		EnvVars: []string{"PITREE_PEBBLE_DIR"},
	},
	&cli.StringFlag{
		Name:  "key",
		Usage: "key of tree in --store-dir or --pebble-dir",
		Value: "default",
	},
}

var cmdSave = &cli.Command{
	Name:   "save",
	Usage:  "generate a tree and persist it",
	Flags:  append(append([]cli.Flag{}, generateFlags...), storageFlags...),
	Action: runSave,
}

var cmdLoad = &cli.Command{
	Name:  "load",
	Usage: "load a persisted tree, rebuild parent links, and print node ids",
	Flags: append([]cli.Flag{
		&cli.BoolFlag{
			Name:  "raw",
			Usage: "skip rebuilding parent links, and pretty-print the tree as decoded",
		},
	}, storageFlags...),
	Action: runLoad,
}

var cmdParent = &cli.Command{
	Name:      "parent",
	Usage:     "load a persisted tree and print the path from the root to a node",
	ArgsUsage: "<id>",
	Flags:     storageFlags,
	Action:    runParent,
}

// returns the configured key/value store, or nil if a plain --file was given
func openStore(cctx *cli.Context) (store.Store, error) {
	switch {
	case cctx.String("file") != "":
		return nil, nil
	case cctx.String("pebble-dir") != "":
		s, err := store.NewPebbleStore(cctx.String("pebble-dir"), nil, slog.Default())
		if err != nil {
			return nil, err
		}
		return s, nil
	case cctx.String("store-dir") != "":
		s, err := store.NewFileStore(cctx.String("store-dir"), slog.Default())
		if err != nil {
			return nil, err
		}
		return s, nil
	default:
		return nil, fmt.Errorf("need one of --file, --store-dir, or --pebble-dir")
	}
}

func runSave(cctx *cli.Context) error {
	ctx := context.Background()
	codec, err := tree.CodecByName(cctx.String("codec"))
	if err != nil {
		return err
	}
	t, err := generateFromFlags(cctx)
	if err != nil {
		return err
	}

	s, err := openStore(cctx)
	if err != nil {
		return err
	}
	if s == nil {
		f, err := os.Create(cctx.String("file"))
		if err != nil {
			return fmt.Errorf("%w: %w", tree.ErrIO, err)
		}
		defer f.Close()
		if err := tree.Save(ctx, f, t, codec); err != nil {
			return err
		}
		slog.Info("saved tree", "path", cctx.String("file"), "codec", codec.Name())
		return f.Close()
	}
	defer s.Close()

	b, err := codec.Marshal(ctx, t)
	if err != nil {
		return err
	}
	if err := s.Put(ctx, cctx.String("key"), b); err != nil {
		return fmt.Errorf("%w: %w", tree.ErrIO, err)
	}
	slog.Info("saved tree", "key", cctx.String("key"), "codec", codec.Name(), "size", len(b))
	return nil
}

// loads a tree per the storage flags. back-references are unresolved unless link is set
func loadFromFlags(cctx *cli.Context, link bool) (*tree.Tree, error) {
	ctx := context.Background()
	codec, err := tree.CodecByName(cctx.String("codec"))
	if err != nil {
		return nil, err
	}
	load := tree.Load
	if link {
		load = tree.LoadLinked
	}

	s, err := openStore(cctx)
	if err != nil {
		return nil, err
	}
	if s == nil {
		f, err := os.Open(cctx.String("file"))
		if err != nil {
			return nil, fmt.Errorf("%w: %w", tree.ErrIO, err)
		}
		defer f.Close()
		return load(ctx, f, codec)
	}
	defer s.Close()

	b, err := s.Get(ctx, cctx.String("key"))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", tree.ErrIO, err)
	}
	return load(ctx, bytes.NewReader(b), codec)
}

func runLoad(cctx *cli.Context) error {
	raw := cctx.Bool("raw")
	t, err := loadFromFlags(cctx, !raw)
	if err != nil {
		return err
	}
	if raw {
		fmt.Print(tree.DebugString(t))
		return nil
	}
	fmt.Println(formatIDs(tree.Traverse(t)))
	return nil
}

func runParent(cctx *cli.Context) error {
	if cctx.Args().Len() != 1 {
		return fmt.Errorf("need to provide a node id")
	}
	var id int64
	if _, err := fmt.Sscan(cctx.Args().First(), &id); err != nil {
		return fmt.Errorf("invalid node id: %w", err)
	}

	t, err := loadFromFlags(cctx, true)
	if err != nil {
		return err
	}
	n := t.Find(id)
	if n == nil {
		return fmt.Errorf("node %d not found in tree", id)
	}
	path, err := t.Path(n)
	if err != nil {
		return err
	}
	fmt.Println(formatIDs(path))
	return nil
}
