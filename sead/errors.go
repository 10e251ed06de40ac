// SPDX-License-Identifier: MIT
// Package: turnipsim/sead
//
// errors.go — sentinel errors for the generator constructors.

package sead

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument indicates a constructor received a word count other than
// one seed or four explicit state words.
// Usage: if errors.Is(err, ErrInvalidArgument) { /* fix caller */ }.
var ErrInvalidArgument = errors.New("sead: invalid argument")

// seadErrorf prefixes a formatted message with the method name and keeps the
// sentinel reachable through %w.
func seadErrorf(method string, sentinel error, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), sentinel)
}
