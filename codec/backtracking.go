package codec

import (
	"context"
	"math/big"
)

// Backtracking — depth-first search with bound pruning
//
// Description:
//
//	Builds candidates one character at a time, trying table entries in
//	ascending value order. A branch is abandoned as soon as its partial sum
//	overshoots the target or the remaining positions cannot close the gap.
//	Memory stays O(MaxLength); time is exponential in the length in the
//	worst case.
//
// Algorithm Outline:
//  1. For L = MinLength..MaxLength, skip L unless lo·L ≤ target ≤ hi·L.
//  2. walk(depth): for each entry e (ascending):
//     sum' = sum + e
//     sum' > target          → stop the loop (later entries are larger)
//     need = target − sum', r = L − depth − 1
//     need > hi·r            → skip e (a larger entry may still fit)
//     need < lo·r            → stop the loop
//     recurse with e appended
//  3. At depth L, record the candidate when sum == target.
//
// With Prune=false only the overshoot test remains, as a skip instead of a
// stop, which visits every string whose prefix sums stay ≤ target.
type Backtracking struct {
	// Prune enables bound checks and early loop exits.
	Prune bool

	// MaxSolutions stops the search once this many candidates are found; 0 = all.
	MaxSolutions int
}

// NewBacktracking returns a pruning Backtracking strategy without a solution limit.
func NewBacktracking() *Backtracking {
	return &Backtracking{Prune: true}
}

// Name implements Strategy.
func (b *Backtracking) Name() string {
	return "backtracking"
}

// Solve implements Strategy.
func (b *Backtracking) Solve(ctx context.Context, p Problem) ([]string, Stats, error) {
	if err := p.validate(); err != nil {
		return nil, Stats{}, err
	}

	s := &btSearch{
		ctx:     ctx,
		entries: p.Table.entries,
		target:  p.Target,
		bounds:  newBounds(p.Table, p.MaxLength),
		prune:   b.Prune,
		limit:   b.MaxSolutions,
		buf:     make([]rune, p.MaxLength),
		sums:    make([]big.Int, p.MaxLength+1),
	}
	for length := p.MinLength; length <= p.MaxLength; length++ {
		if err := ctx.Err(); err != nil {
			return s.solutions, s.stats, err
		}
		if !s.bounds.reachable(p.Target, length) {
			s.stats.Pruned++
			continue
		}
		if !s.walk(0, length) {
			break
		}
	}

	return s.solutions, s.stats, s.err
}

// btSearch is the mutable state of one Backtracking.Solve call.
type btSearch struct {
	ctx     context.Context
	entries []Entry
	target  *big.Int
	bounds  bounds
	prune   bool
	limit   int

	buf       []rune    // current candidate, buf[:depth]
	sums      []big.Int // sums[d] = value of buf[:d]
	need      big.Int   // scratch
	solutions []string
	stats     Stats
	err       error
}

// walk extends buf at position depth. It returns false when the whole search
// must stop (solution limit reached or ctx done).
func (s *btSearch) walk(depth, length int) bool {
	s.stats.Checked++
	if s.stats.Checked&cancelCheckMask == 0 {
		if err := s.ctx.Err(); err != nil {
			s.err = err
			return false
		}
	}

	if depth == length {
		if s.sums[depth].Cmp(s.target) == 0 {
			s.solutions = append(s.solutions, string(s.buf[:length]))
			if s.limit > 0 && len(s.solutions) >= s.limit {
				return false
			}
		}
		return true
	}

	rem := length - depth - 1
	cur, next := &s.sums[depth], &s.sums[depth+1]
	for _, e := range s.entries {
		next.Add(cur, e.Value)
		if next.Cmp(s.target) > 0 {
			if s.prune {
				break
			}
			continue
		}
		if s.prune {
			s.need.Sub(s.target, next)
			if s.need.Cmp(&s.bounds.hi[rem]) > 0 {
				s.stats.Pruned++
				continue
			}
			if s.need.Cmp(&s.bounds.lo[rem]) < 0 {
				s.stats.Pruned++
				break
			}
		}
		s.buf[depth] = e.Char
		if !s.walk(depth+1, length) {
			return false
		}
	}

	return true
}
