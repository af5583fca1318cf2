package partition

import (
	"fmt"
	"math/big"
	"strconv"
)

// Count — integer partition count p(n)
//
// Description:
//
//	Count returns the number of multisets of positive integers that sum to n.
//	It builds a fresh table for the call and discards it afterwards; no state
//	survives between calls.
//
// Algorithm Outline (CoinChange):
//  1. Allocate table[0..n] of zeros, set table[0] = 1.
//  2. For part size i = 1..n:
//     For target j = i..n (ascending):
//     table[j] += table[j-i]
//  3. Return table[n].
//
// After step 2 has processed part sizes 1..i, table[j] is the number of
// partitions of j into parts ≤ i. Part sizes MUST be the outer loop and
// targets MUST ascend: swapping the loops counts ordered compositions instead.
//
// Complexity:
//
//	Time   = O(n²) big-integer additions
//	Memory = O(n) cells
//
// Errors:
//   - ErrInvalidInput — n < 0.
func Count(n int) (*big.Int, error) {
	return CountWithOptions(n, DefaultOptions())
}

// CountWithOptions is Count with an explicit method, worker count and limit.
//
// Example:
//
//	opts := DefaultOptions()
//	opts.Method = Pentagonal
//	p, err := CountWithOptions(1000, opts)
func CountWithOptions(n int, opts Options) (*big.Int, error) {
	table, err := Table(n, opts)
	if err != nil {
		return nil, err
	}

	// Copy out so the backing block of n+1 cells can be collected.
	return new(big.Int).Set(table[n]), nil
}

// Table returns the filled table p(0), p(1), …, p(n).
// The slice and its integers belong to the caller.
//
// Errors:
//   - ErrInvalidInput — n < 0.
//   - ErrTooLarge     — opts.MaxN > 0 and n > opts.MaxN.
//   - ErrBadOptions   — see Options.
func Table(n int, opts Options) ([]*big.Int, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}
	if n < 0 {
		return nil, fmt.Errorf("%w: n must be non-negative, got %d", ErrInvalidInput, n)
	}
	if opts.MaxN > 0 && n > opts.MaxN {
		return nil, fmt.Errorf("%w: %d > %d", ErrTooLarge, n, opts.MaxN)
	}

	table := newTable(n)
	switch opts.Method {
	case Pentagonal:
		fillPentagonal(table)
	default:
		if opts.Workers > 1 {
			fillCoinChangeParallel(table, opts.Workers)
		} else {
			fillCoinChange(table)
		}
	}

	return table, nil
}

// newTable allocates n+1 zero cells backed by one contiguous block and sets table[0] = 1.
func newTable(n int) []*big.Int {
	cells := make([]big.Int, n+1)
	table := make([]*big.Int, n+1)
	for k := range cells {
		table[k] = &cells[k]
	}
	table[0].SetInt64(1)

	return table
}

// fillCoinChange runs the unbounded-coin-change recurrence in place.
func fillCoinChange(table []*big.Int) {
	n := len(table) - 1
	for i := 1; i <= n; i++ {
		for j := i; j <= n; j++ {
			table[j].Add(table[j], table[j-i])
		}
	}
}

// ParseInput validates a numeral string and converts it to n.
//
// Accepted: one or more ASCII digits, nothing else. Leading zeros are fine
// ("007" is 7). Rejected with ErrInvalidInput: "", signs ("-3", "+3"),
// whitespace, any other rune, and values that do not fit in an int.
func ParseInput(s string) (int, error) {
	if s == "" {
		return 0, fmt.Errorf("%w: empty numeral", ErrInvalidInput)
	}
	if s[0] == '-' {
		return 0, fmt.Errorf("%w: %q is negative", ErrInvalidInput, s)
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return 0, fmt.Errorf("%w: %q is not a non-negative integer", ErrInvalidInput, s)
		}
	}

	n, err := strconv.Atoi(s)
	if err != nil {
		// Only range errors are possible here: every byte is a digit.
		return 0, fmt.Errorf("%w: %q is out of range", ErrInvalidInput, s)
	}

	return n, nil
}

// CountString parses s, counts its partitions with opts and formats the
// result in base 10. It is the whole core as seen from a read/print shell.
func CountString(s string, opts Options) (string, error) {
	n, err := ParseInput(s)
	if err != nil {
		return "", err
	}
	p, err := CountWithOptions(n, opts)
	if err != nil {
		return "", err
	}

	return p.String(), nil
}
