package tree

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Ordered, finite list of per-level node counts. The first value corresponds to the root level and is never consumed for branching.
type Sequence []int

var ErrInvalidSequence = errors.New("invalid branching sequence")

// Leading decimal digits of pi. This is the default branching sequence.
var PiDigits = Sequence{1, 4, 1, 5, 9, 2, 6, 5, 3, 5, 8, 9, 7, 9, 3, 2, 3, 8, 4, 6, 2, 6, 4, 3}

// Parses a comma-separated list of non-negative integers, eg "1,4,1,5".
func ParseSequence(s string) (Sequence, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, fmt.Errorf("%w: empty", ErrInvalidSequence)
	}
	parts := strings.Split(s, ",")
	seq := make(Sequence, 0, len(parts))
	for _, p := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, fmt.Errorf("%w: %q: %w", ErrInvalidSequence, p, err)
		}
		if v < 0 {
			return nil, fmt.Errorf("%w: negative count %d", ErrInvalidSequence, v)
		}
		seq = append(seq, v)
	}
	return seq, nil
}

func (s Sequence) String() string {
	parts := make([]string, len(s))
	for i, v := range s {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, ",")
}

// Number of nodes a full generation to the given depth would produce: one for the root, plus the next depth-1 values after the first. Stops early at a zero count, like generation does.
func (s Sequence) ExpectedCount(depth int) int {
	total := 1
	for i := 1; i < depth && i < len(s); i++ {
		if s[i] == 0 {
			break
		}
		total += s[i]
	}
	return total
}
