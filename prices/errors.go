// SPDX-License-Identifier: MIT
// Package: turnipsim/prices
//
// errors.go — sentinel errors for filters and the one-liner codec.
//
// Unknown pattern ids are reported with pattern.ErrUnknownPattern so callers
// branch on a single sentinel whichever package rejected the id.

package prices

import (
	"errors"
	"fmt"
)

// ErrInvalidFilter indicates a Filter that can never describe a real week:
// a negative price, a buy price outside [MinBuyPrice, MaxBuyPrice], or two
// different pinned buy prices.
var ErrInvalidFilter = errors.New("prices: invalid filter")

// ErrBadOneLiner indicates a one-liner that could not be parsed.
var ErrBadOneLiner = errors.New("prices: bad one-liner")

// pricesErrorf prefixes a formatted message with the method name and wraps
// the sentinel for errors.Is.
func pricesErrorf(method string, sentinel error, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), sentinel)
}
