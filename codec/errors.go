package codec

import "errors"

// Sentinel errors for the codec package. Detail is attached with %w;
// branch with errors.Is.
var (
	// ErrEmptyTable indicates a lookup table without entries.
	ErrEmptyTable = errors.New("codec: lookup table is empty")

	// ErrBadValue indicates a missing or non-positive partition value in a table.
	ErrBadValue = errors.New("codec: partition value must be positive")

	// ErrMalformedTable indicates an unreadable CSV row in a lookup table file.
	ErrMalformedTable = errors.New("codec: malformed lookup table")

	// ErrNilTable indicates a nil *LookupTable passed to a constructor.
	ErrNilTable = errors.New("codec: lookup table is nil")

	// ErrPasswordLength indicates a password outside the encoder's length bounds.
	ErrPasswordLength = errors.New("codec: password length out of bounds")

	// ErrUnknownCharacter indicates a password character missing from the table.
	ErrUnknownCharacter = errors.New("codec: character not in lookup table")

	// ErrNegativeTarget indicates Z < C, so no string can encode to Z.
	ErrNegativeTarget = errors.New("codec: encoded value is below the constant")

	// ErrNilStrategy indicates Decode was called without a strategy.
	ErrNilStrategy = errors.New("codec: strategy is nil")

	// ErrBudgetExceeded indicates MeetInTheMiddle would hold more than MaxEntries half-strings.
	ErrBudgetExceeded = errors.New("codec: search memory budget exceeded")
)
