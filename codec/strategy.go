package codec

import (
	"context"
	"fmt"
	"math/big"
	"time"
)

// cancelCheckMask sets how often searches poll ctx: every 4096 visited nodes.
const cancelCheckMask = 1<<12 - 1

// Problem is one decoding task: find strings of MinLength..MaxLength
// characters from Table whose values sum to Target.
type Problem struct {
	Target    *big.Int
	Table     *LookupTable
	MinLength int
	MaxLength int
}

// Stats describes a finished (or interrupted) search.
type Stats struct {
	// Strategy is the Name() of the strategy that ran.
	Strategy string

	// Duration is wall time spent in Solve, measured by Encoder.Decode.
	Duration time.Duration

	// Checked counts visited search nodes.
	Checked int64

	// Pruned counts branches and lengths cut by bound checks.
	Pruned int64
}

// Strategy searches for strings matching a Problem.
//
// Implementations must return solutions found so far together with a
// non-nil error when interrupted (ctx cancellation, budget).
type Strategy interface {
	// Name is a short identifier used in logs and metrics.
	Name() string

	// Solve runs the search.
	Solve(ctx context.Context, p Problem) ([]string, Stats, error)
}

// validate rejects problems no strategy can run.
func (p Problem) validate() error {
	if p.Table == nil {
		return ErrNilTable
	}
	if p.Target == nil || p.Target.Sign() < 0 {
		return ErrNegativeTarget
	}
	if p.MinLength < 1 || p.MaxLength < p.MinLength {
		return fmt.Errorf("%w: [%d, %d]", ErrPasswordLength, p.MinLength, p.MaxLength)
	}

	return nil
}

// bounds holds lo·r and hi·r for r = 0..maxLen, where lo and hi are the
// smallest and largest table values. A sum of r values lies in [lo·r, hi·r].
type bounds struct {
	lo []big.Int
	hi []big.Int
}

// newBounds precomputes the multiples once per Solve.
func newBounds(t *LookupTable, maxLen int) bounds {
	lo, hi := t.entries[0].Value, t.entries[len(t.entries)-1].Value
	b := bounds{lo: make([]big.Int, maxLen+1), hi: make([]big.Int, maxLen+1)}
	for r := 1; r <= maxLen; r++ {
		b.lo[r].Add(&b.lo[r-1], lo)
		b.hi[r].Add(&b.hi[r-1], hi)
	}

	return b
}

// reachable reports whether r more values can add up to need.
func (b bounds) reachable(need *big.Int, r int) bool {
	return need.Cmp(&b.lo[r]) >= 0 && need.Cmp(&b.hi[r]) <= 0
}
