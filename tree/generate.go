package tree

import (
	"fmt"
	"log/slog"
)

type GenerateOptions struct {
	// branching sequence; defaults to PiDigits if nil
	Sequence Sequence
	// defaults to slog.Default()
	Logger *slog.Logger
}

// Summary of a single Generate call.
type GenerateStats struct {
	// number of levels below the root which received at least one node
	Levels int
	// number of nodes created (not counting any which existed before)
	Created int
}

// Grows the tree level by level, to the requested depth (root counts as depth 1), using the default pi-digit sequence.
func Generate(t *Tree, depth int) (GenerateStats, error) {
	return GenerateWith(t, depth, GenerateOptions{})
}

// Grows the tree using the configured branching sequence.
//
// The first sequence value is skipped (it stands for the root). Each following value is the total number of children to create across the whole previous level, spread as evenly as possible: the first `count % len(level)` parents get one extra child. Children get consecutive ids, continuing from the largest id already in the tree, in parent-major order.
//
// Generation stops early if the sequence runs out, or if a level ends up with no nodes (a zero count).
//
// The sequence is checked before anything is attached, so a failed call (negative count, or growth past MaxChildren / MaxDepth) leaves the tree unchanged.
func GenerateWith(t *Tree, depth int, opts GenerateOptions) (GenerateStats, error) {
	var stats GenerateStats
	if t == nil || t.Root == nil {
		return stats, ErrNilTree
	}
	seq := opts.Sequence
	if seq == nil {
		seq = PiDigits
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	if err := checkGrowth(seq, depth); err != nil {
		return stats, err
	}

	nextID := t.MaxID() + 1
	level := []*Node{t.Root}

	for i := 1; i < depth && i < len(seq); i++ {
		if len(level) == 0 {
			// nothing left to parent new nodes to
			break
		}
		count := seq[i]
		base := count / len(level)
		extra := count % len(level)

		next := make([]*Node, 0, count)
		for _, parent := range level {
			n := base
			if extra > 0 {
				n++
				extra--
			}
			for range n {
				child := NewNode(nextID)
				nextID++
				parent.AppendChild(child)
				next = append(next, child)
			}
		}

		logger.Debug("generated tree level", "level", i+1, "parents", len(level), "nodes", len(next))
		if len(next) > 0 {
			stats.Levels++
		}
		stats.Created += len(next)
		level = next
	}

	nodesGenerated.Add(float64(stats.Created))
	return stats, nil
}

// Dry run of the level widths GenerateWith would produce, without touching any tree.
func checkGrowth(seq Sequence, depth int) error {
	width := 1
	levels := 1
	for i := 1; i < depth && i < len(seq); i++ {
		if width == 0 {
			break
		}
		count := seq[i]
		if count < 0 {
			return fmt.Errorf("%w: negative count %d at position %d", ErrInvalidSequence, count, i)
		}
		widest := count / width
		if count%width != 0 {
			widest++
		}
		if widest > MaxChildren {
			return fmt.Errorf("%w: count %d at position %d gives a parent %d children (max %d)", ErrTooManyChildren, count, i, widest, MaxChildren)
		}
		if count > 0 {
			levels++
		}
		if levels > MaxDepth {
			return fmt.Errorf("%w: sequence grows past %d levels", ErrTooDeep, MaxDepth)
		}
		width = count
	}
	return nil
}
