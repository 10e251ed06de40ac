// SPDX-License-Identifier: MIT
// Package: turnipsim/prices
//
// generate.go — the common week prefix and dispatch into an Algorithm.

package prices

import (
	"github.com/katalvlaran/turnipsim/pattern"
	"github.com/katalvlaran/turnipsim/sead"
)

// Generate simulates one week of pattern p from seed. Only filter[0] is
// read: a non-zero value pins the buy price. Slot filtering is the caller's
// job (see Filter.Matches).
func Generate(p pattern.Pattern, seed uint32, filter Filter) (Result, error) {
	alg, err := AlgorithmFor(p)
	if err != nil {
		return Result{}, err
	}

	return GenerateWith(alg, seed, filter), nil
}

// GenerateWith is Generate for an already resolved Algorithm.
// Complexity: O(Slots) time, no allocations beyond the generator.
func GenerateWith(alg Algorithm, seed uint32, filter Filter) Result {
	g := sead.New(seed)

	base := g.IntRange(MinBuyPrice, MaxBuyPrice)
	if filter[0] != 0 {
		base = filter[0]
	}
	// Discriminant draw: keeps the stream aligned, value unused.
	g.IntRange(0, 99)

	var seq Sequence
	seq[0], seq[1] = base, base
	alg.fill(g, base, newWriter(&seq))

	return Result{
		Pattern: alg.Pattern(),
		Prices:  seq,
		Highest: seq.Highest(),
	}
}
