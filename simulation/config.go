// SPDX-License-Identifier: MIT
// Package: turnipsim/simulation
//
// config.go — resolved Runner configuration and its defaults.
//
// Defaults:
//   • src           = pattern.CryptoSource()
//   • base entropy  = drawn per Run
//   • workers       = runtime.GOMAXPROCS(0)
//   • logger        = zerolog.Nop()
//   • checkInterval = 1024

package simulation

import (
	"runtime"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/turnipsim/pattern"
)

const (
	defaultCheckInterval = 1024
	// baseEntropyRange bounds a drawn base entropy to [0, baseEntropyRange).
	baseEntropyRange = 10000
)

type runnerConfig struct {
	src           pattern.EntropySource
	baseEntropy   int
	fixedBase     bool
	workers       int
	logger        zerolog.Logger
	checkInterval int
}

// newRunnerConfig applies opts over the defaults in order.
func newRunnerConfig(opts ...Option) runnerConfig {
	cfg := runnerConfig{
		src:           pattern.CryptoSource(),
		workers:       runtime.GOMAXPROCS(0),
		logger:        zerolog.Nop(),
		checkInterval: defaultCheckInterval,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// base returns the fixed base entropy or draws one from src.
func (c runnerConfig) base() int {
	if c.fixedBase {
		return c.baseEntropy
	}

	return int(c.src.Float64() * baseEntropyRange)
}
