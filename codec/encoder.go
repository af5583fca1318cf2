package codec

import (
	"context"
	"fmt"
	"math/big"
	"strings"
	"time"
	"unicode/utf8"
)

// quoteNormalizer folds typographic double quotes into '"' before lookup.
var quoteNormalizer = strings.NewReplacer("“", `"`, "”", `"`)

// Encoder encodes passwords into partition sums and decodes sums back into
// candidate passwords. It is immutable after NewEncoder and safe for concurrent use.
type Encoder struct {
	table    *LookupTable
	constant *big.Int
	minLen   int
	maxLen   int
}

// Result is the outcome of one Decode call.
type Result struct {
	// Solutions lists candidate passwords; nil when nothing matches.
	Solutions []string

	// Stats describes the search that produced Solutions.
	Stats Stats
}

// NewEncoder builds an Encoder over table with DefaultConstant and lengths
// DefaultMinLength..DefaultMaxLength unless overridden by opts.
func NewEncoder(table *LookupTable, opts ...Option) (*Encoder, error) {
	if table == nil {
		return nil, ErrNilTable
	}

	e := &Encoder{
		table:    table,
		constant: defaultConstant(),
		minLen:   DefaultMinLength,
		maxLen:   DefaultMaxLength,
	}
	for _, opt := range opts {
		opt(e)
	}

	return e, nil
}

// Constant returns a copy of C.
func (e *Encoder) Constant() *big.Int {
	return new(big.Int).Set(e.constant)
}

// LengthBounds returns the accepted password length range.
func (e *Encoder) LengthBounds() (lo, hi int) {
	return e.minLen, e.maxLen
}

// Table returns the lookup table the encoder was built with.
func (e *Encoder) Table() *LookupTable {
	return e.table
}

// Encode returns Z = Σ value(c) + C over the characters of password.
//
// Length is counted in characters (runes) after quote normalization.
//
// Errors:
//   - ErrPasswordLength   — length outside the encoder's bounds.
//   - ErrUnknownCharacter — a character has no table entry.
func (e *Encoder) Encode(password string) (*big.Int, error) {
	password = quoteNormalizer.Replace(password)

	if n := utf8.RuneCountInString(password); n < e.minLen || n > e.maxLen {
		return nil, fmt.Errorf("%w: %d not in [%d, %d]", ErrPasswordLength, n, e.minLen, e.maxLen)
	}

	sum := new(big.Int)
	for _, c := range password {
		v, ok := e.table.Value(c)
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownCharacter, c)
		}
		sum.Add(sum, v)
	}

	return sum.Add(sum, e.constant), nil
}

// Decode searches for passwords that encode to z using strategy s.
//
// Errors:
//   - ErrNilStrategy    — s is nil.
//   - ErrNegativeTarget — z < C.
//   - anything returned by the strategy, including ctx.Err().
func (e *Encoder) Decode(ctx context.Context, z *big.Int, s Strategy) (Result, error) {
	if s == nil {
		return Result{}, ErrNilStrategy
	}
	target := new(big.Int).Sub(z, e.constant)
	if target.Sign() < 0 {
		return Result{}, fmt.Errorf("%w: Z=%s, C=%s", ErrNegativeTarget, z, e.constant)
	}

	start := time.Now()
	solutions, stats, err := s.Solve(ctx, Problem{
		Target:    target,
		Table:     e.table,
		MinLength: e.minLen,
		MaxLength: e.maxLen,
	})
	stats.Strategy = s.Name()
	stats.Duration = time.Since(start)

	return Result{Solutions: solutions, Stats: stats}, err
}
