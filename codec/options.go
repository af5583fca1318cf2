package codec

import "math/big"

// Defaults applied by NewEncoder.
const (
	// DefaultConstant is C, the offset added to every encoded sum.
	DefaultConstant = "426609638937"

	// DefaultMinLength is the shortest password accepted by Encode and searched by Decode.
	DefaultMinLength = 1

	// DefaultMaxLength is the longest password accepted by Encode and searched by Decode.
	DefaultMaxLength = 20
)

// Option customizes an Encoder before first use.
// Option constructors panic on meaningless values; Encode and Decode never do.
type Option func(*Encoder)

// WithConstant overrides C. Panics on nil or negative c.
func WithConstant(c *big.Int) Option {
	if c == nil || c.Sign() < 0 {
		panic("codec: WithConstant(nil or negative)")
	}
	cp := new(big.Int).Set(c)
	return func(e *Encoder) {
		e.constant = cp
	}
}

// WithLengthBounds sets the accepted password length range [lo, hi].
// Panics unless 1 ≤ lo ≤ hi.
func WithLengthBounds(lo, hi int) Option {
	if lo < 1 || hi < lo {
		panic("codec: WithLengthBounds requires 1 <= lo <= hi")
	}
	return func(e *Encoder) {
		e.minLen, e.maxLen = lo, hi
	}
}

// defaultConstant parses DefaultConstant.
func defaultConstant() *big.Int {
	c, _ := new(big.Int).SetString(DefaultConstant, 10)
	return c
}
