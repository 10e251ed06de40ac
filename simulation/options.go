// SPDX-License-Identifier: MIT
// Package: turnipsim/simulation
//
// options.go — functional options for NewRunner.
//
// Contract:
//   • Option constructors validate and panic on meaningless input.
//     Run itself never panics.
//   • Later options override earlier ones.

package simulation

import (
	"github.com/rs/zerolog"

	"github.com/katalvlaran/turnipsim/pattern"
)

// Option customizes a Runner before its first Run.
type Option func(*runnerConfig)

// WithBaseEntropy fixes the base of the per-trial seeds. Trial i uses
// uint32(base+i). Without it every Run draws a fresh base in [0, 10000)
// from the entropy source.
func WithBaseEntropy(base int) Option {
	return func(c *runnerConfig) {
		c.baseEntropy = base
		c.fixedBase = true
	}
}

// WithEntropySource sets the source used for pattern draws and, unless
// WithBaseEntropy is given, the base entropy. It must be safe for concurrent
// use when more than one worker runs. Panics on nil.
func WithEntropySource(src pattern.EntropySource) Option {
	if src == nil {
		panic("simulation: WithEntropySource(nil)")
	}

	return func(c *runnerConfig) {
		c.src = src
	}
}

// WithWorkers sets the number of goroutines sharing the trials.
// Panics if n < 1.
func WithWorkers(n int) Option {
	if n < 1 {
		panic("simulation: WithWorkers(n<1)")
	}

	return func(c *runnerConfig) {
		c.workers = n
	}
}

// WithLogger injects a zerolog logger for run lifecycle events.
func WithLogger(l zerolog.Logger) Option {
	return func(c *runnerConfig) {
		c.logger = l
	}
}

// WithCheckInterval sets how many trials a worker runs between context
// checks. Panics if n < 1.
func WithCheckInterval(n int) Option {
	if n < 1 {
		panic("simulation: WithCheckInterval(n<1)")
	}

	return func(c *runnerConfig) {
		c.checkInterval = n
	}
}
