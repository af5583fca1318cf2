package partition

import (
	"fmt"
	"strings"
)

// Method selects the recurrence used to fill the table.
//
//   - CoinChange — unbounded-coin-change recurrence: part sizes in the outer
//     loop, targets ascending in the inner loop. Supports Workers > 1.
//
//   - Pentagonal — Euler's pentagonal-number recurrence
//     p(m) = Σ_{k≥1} (−1)^{k+1}·[p(m − k(3k−1)/2) + p(m − k(3k+1)/2)].
//     O(n·√n) additions; sequential only.
type Method int

const (
	// CoinChange fills the table part size by part size.
	CoinChange Method = iota

	// Pentagonal fills the table target by target using generalized pentagonal numbers.
	Pentagonal
)

// String returns the canonical, flag-friendly method name.
func (m Method) String() string {
	switch m {
	case CoinChange:
		return "coin-change"
	case Pentagonal:
		return "pentagonal"
	default:
		return fmt.Sprintf("Method(%d)", int(m))
	}
}

// ParseMethod maps a method name (case-insensitive) back to a Method.
func ParseMethod(s string) (Method, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "coin-change", "coinchange", "":
		return CoinChange, nil
	case "pentagonal", "euler":
		return Pentagonal, nil
	default:
		return 0, fmt.Errorf("%w: unknown method %q", ErrBadOptions, s)
	}
}

// Options configures a single Count/Table call. Nothing is kept between calls.
//
// Fields:
//   - Method  — recurrence to use (default CoinChange).
//   - Workers — goroutines for the CoinChange inner loop; 0 or 1 is sequential.
//     Ignored by Pentagonal.
//   - MaxN    — largest accepted n; 0 means unbounded.
type Options struct {
	Method  Method
	Workers int
	MaxN    int
}

// DefaultOptions returns the sequential CoinChange configuration without an upper bound.
func DefaultOptions() Options {
	return Options{
		Method:  CoinChange,
		Workers: 1,
		MaxN:    0,
	}
}

// validate checks option consistency before any allocation happens.
func (o Options) validate() error {
	if o.Method != CoinChange && o.Method != Pentagonal {
		return fmt.Errorf("%w: unknown method %d", ErrBadOptions, int(o.Method))
	}
	if o.Workers < 0 {
		return fmt.Errorf("%w: workers must be >= 0, got %d", ErrBadOptions, o.Workers)
	}
	if o.MaxN < 0 {
		return fmt.Errorf("%w: max n must be >= 0, got %d", ErrBadOptions, o.MaxN)
	}

	return nil
}
