package pattern

import "errors"

var (
	// ErrUnknownPattern indicates a pattern id outside 0..3.
	ErrUnknownPattern = errors.New("pattern: unknown pattern")

	// ErrUnknownPrior indicates a prior id outside -2..3 or an unparsable name.
	ErrUnknownPrior = errors.New("pattern: unknown prior")
)
