package main

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/bluesky-social/pitree/tree"

	"github.com/urfave/cli/v2"
)

var generateFlags = []cli.Flag{
	&cli.IntFlag{
		Name:    "depth",
		Aliases: []string{"d"},
		Usage:   "number of tree levels, counting the root",
		Value:   5,
		EnvVars: []string{"PITREE_DEPTH"},
	},
	&cli.StringFlag{
		Name:    "sequence",
		Usage:   "comma-separated branching counts per level (first value is the root level)",
		Value:   tree.PiDigits.String(),
		EnvVars: []string{"PITREE_SEQUENCE"},
	},
}

var cmdGenerate = &cli.Command{
	Name:   "generate",
	Usage:  "generate a tree and print node ids in breadth-first order",
	Flags:  generateFlags,
	Action: runGenerate,
}

var cmdLevels = &cli.Command{
	Name:   "levels",
	Usage:  "generate a tree and print node ids one level per line",
	Flags:  generateFlags,
	Action: runLevels,
}

var cmdPrint = &cli.Command{
	Name:   "print",
	Usage:  "generate a tree and pretty-print its structure",
	Flags:  generateFlags,
	Action: runPrint,
}

// builds a tree from the generate flags
func generateFromFlags(cctx *cli.Context) (*tree.Tree, error) {
	seq, err := tree.ParseSequence(cctx.String("sequence"))
	if err != nil {
		return nil, err
	}
	depth := cctx.Int("depth")
	t := tree.NewTree()
	stats, err := tree.GenerateWith(t, depth, tree.GenerateOptions{
		Sequence: seq,
		Logger:   slog.Default(),
	})
	if err != nil {
		return nil, err
	}
	slog.Info("generated tree", "depth", depth, "levels", stats.Levels+1, "nodes", stats.Created+1)
	return t, nil
}

func formatIDs(ids []int64) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = strconv.FormatInt(id, 10)
	}
	return strings.Join(parts, " ")
}

func runGenerate(cctx *cli.Context) error {
	t, err := generateFromFlags(cctx)
	if err != nil {
		return err
	}
	fmt.Println(formatIDs(tree.Traverse(t)))
	return nil
}

func runLevels(cctx *cli.Context) error {
	t, err := generateFromFlags(cctx)
	if err != nil {
		return err
	}
	for i, ids := range tree.Levels(t) {
		fmt.Printf("%d\t%s\n", i+1, formatIDs(ids))
	}
	return nil
}

func runPrint(cctx *cli.Context) error {
	t, err := generateFromFlags(cctx)
	if err != nil {
		return err
	}
	fmt.Print(tree.DebugString(t))
	return nil
}
