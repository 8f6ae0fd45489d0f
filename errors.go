package scroll

import "errors"

// Resolution errors. Every one of them marks invalid caller input; the
// resolver performs no retries and no recovery.
var (
	// ErrInvalidAxis reports an axis name that matches no known alias.
	ErrInvalidAxis = errors.New("invalid axis name")

	// ErrAmbiguousAxis reports a single-axis resolution that received Both.
	ErrAmbiguousAxis = errors.New("ambiguous axis")

	// ErrKeywordMismatch reports a positional keyword used on the wrong
	// axis, e.g. "top" while scrolling horizontally.
	ErrKeywordMismatch = errors.New("keyword does not apply to axis")

	// ErrInvalidPosition reports an unparseable position value.
	ErrInvalidPosition = errors.New("invalid position value")
)
