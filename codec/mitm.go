package codec

import (
	"context"
	"fmt"
	"math/big"
)

// DefaultMaxEntries caps the half-strings MeetInTheMiddle keeps in memory.
const DefaultMaxEntries = 1 << 20

// MeetInTheMiddle — split-and-join search
//
// Description:
//
//	For a length L the candidate splits into a left half of ⌊L/2⌋ and a
//	right half of ⌈L/2⌉ characters. All right halves are enumerated once
//	into an index keyed by their sum; left halves are then streamed and
//	joined with every right half whose sum equals target − left.
//	Time and memory drop from O(c^L) to O(c^⌈L/2⌉) for c table entries.
//
// Right-half indexes are cached by length within one Solve, so L = 2k−1
// and L = 2k share the same index. Prefixes whose sum already exceeds the
// target are never extended.
type MeetInTheMiddle struct {
	// MaxEntries bounds the total number of indexed right halves; 0 = DefaultMaxEntries.
	MaxEntries int

	// MaxSolutions stops the search once this many candidates are found; 0 = all.
	MaxSolutions int
}

// NewMeetInTheMiddle returns a MeetInTheMiddle strategy with DefaultMaxEntries.
func NewMeetInTheMiddle() *MeetInTheMiddle {
	return &MeetInTheMiddle{MaxEntries: DefaultMaxEntries}
}

// Name implements Strategy.
func (m *MeetInTheMiddle) Name() string {
	return "meet-in-the-middle"
}

// Solve implements Strategy.
func (m *MeetInTheMiddle) Solve(ctx context.Context, p Problem) ([]string, Stats, error) {
	if err := p.validate(); err != nil {
		return nil, Stats{}, err
	}
	budget := m.MaxEntries
	if budget <= 0 {
		budget = DefaultMaxEntries
	}

	s := &mitmSearch{
		ctx:     ctx,
		entries: p.Table.entries,
		target:  p.Target,
		budget:  budget,
		indexes: make(map[int]map[string][]string),
	}
	b := newBounds(p.Table, p.MaxLength)
	var solutions []string
	need := new(big.Int)

	for length := p.MinLength; length <= p.MaxLength; length++ {
		if !b.reachable(p.Target, length) {
			s.stats.Pruned++
			continue
		}
		left, right := length/2, length-length/2
		index, err := s.index(right)
		if err != nil {
			return solutions, s.stats, err
		}

		done := false
		err = s.enumerate(left, func(prefix []rune, sum *big.Int) bool {
			need.Sub(p.Target, sum)
			for _, suffix := range index[need.String()] {
				solutions = append(solutions, string(prefix)+suffix)
				if m.MaxSolutions > 0 && len(solutions) >= m.MaxSolutions {
					done = true
					return false
				}
			}
			return true
		})
		if err != nil {
			return solutions, s.stats, err
		}
		if done {
			break
		}
	}

	return solutions, s.stats, nil
}

// mitmSearch is the mutable state of one MeetInTheMiddle.Solve call.
type mitmSearch struct {
	ctx     context.Context
	entries []Entry
	target  *big.Int
	budget  int
	stored  int
	indexes map[int]map[string][]string // half length → sum (base 10) → halves
	stats   Stats
}

// index returns the right-half index for length, building it on first use.
func (s *mitmSearch) index(length int) (map[string][]string, error) {
	if idx, ok := s.indexes[length]; ok {
		return idx, nil
	}

	idx := make(map[string][]string)
	var overflow bool
	err := s.enumerate(length, func(half []rune, sum *big.Int) bool {
		if s.stored >= s.budget {
			overflow = true
			return false
		}
		key := sum.String()
		idx[key] = append(idx[key], string(half))
		s.stored++
		return true
	})
	if err != nil {
		return nil, err
	}
	if overflow {
		return nil, fmt.Errorf("%w: more than %d half-strings", ErrBudgetExceeded, s.budget)
	}
	s.indexes[length] = idx

	return idx, nil
}

// enumerate calls visit for every string of exactly length characters whose
// sum does not exceed the target, in ascending entry order. visit returning
// false stops the enumeration. The slice and integer passed to visit are
// reused between calls.
func (s *mitmSearch) enumerate(length int, visit func([]rune, *big.Int) bool) error {
	buf := make([]rune, length)
	sums := make([]big.Int, length+1)

	var walk func(depth int) (bool, error)
	walk = func(depth int) (bool, error) {
		s.stats.Checked++
		if s.stats.Checked&cancelCheckMask == 0 {
			if err := s.ctx.Err(); err != nil {
				return false, err
			}
		}
		if depth == length {
			return visit(buf, &sums[depth]), nil
		}

		next := &sums[depth+1]
		for _, e := range s.entries {
			next.Add(&sums[depth], e.Value)
			if next.Cmp(s.target) > 0 {
				break
			}
			buf[depth] = e.Char
			ok, err := walk(depth + 1)
			if err != nil || !ok {
				return false, err
			}
		}
		return true, nil
	}

	if err := s.ctx.Err(); err != nil {
		return err
	}
	_, err := walk(0)

	return err
}
