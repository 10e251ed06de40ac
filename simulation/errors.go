// SPDX-License-Identifier: MIT
// Package: turnipsim/simulation
//
// errors.go — sentinel errors returned by Run.
//
// Filter problems surface as prices.ErrInvalidFilter. A trial that does not
// match the filter is never an error.

package simulation

import (
	"errors"
	"fmt"
)

var (
	// ErrBadTrialCount indicates a trial count below one.
	ErrBadTrialCount = errors.New("simulation: trial count must be positive")

	// ErrPinnedFirstPurchase indicates a pinned buy price for the first week;
	// that week's buy price is re-rolled and cannot be observed in advance.
	ErrPinnedFirstPurchase = errors.New("simulation: buy price cannot be pinned for the first purchase")
)

// MethodRun is the error prefix of Run.
const MethodRun = "Run"

func simulationErrorf(method string, sentinel error, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), sentinel)
}
