package partition

import "errors"

// Error policy: only sentinels are exported, detail is attached with %w and
// callers branch with errors.Is. Nothing in this package panics on user input.
var (
	// ErrInvalidInput indicates a numeral that is empty, carries non-digit
	// characters (signs included) or a negative n.
	ErrInvalidInput = errors.New("partition: invalid input")

	// ErrTooLarge indicates n exceeds Options.MaxN.
	ErrTooLarge = errors.New("partition: n exceeds limit")

	// ErrBadOptions indicates an unknown Method or a negative Workers/MaxN.
	ErrBadOptions = errors.New("partition: invalid options")
)
