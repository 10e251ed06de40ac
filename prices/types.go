// SPDX-License-Identifier: MIT
// Package: turnipsim/prices
//
// types.go — the week layout and per-trial result.

package prices

import "github.com/katalvlaran/turnipsim/pattern"

const (
	// Slots is the number of price slots in a week.
	Slots = 14
	// FirstSellSlot is the index of Monday AM.
	FirstSellSlot = 2
	// SellSlots is the number of sell prices in a week.
	SellSlots = Slots - FirstSellSlot

	// MinBuyPrice and MaxBuyPrice bound the rolled buy price.
	MinBuyPrice = 90
	MaxBuyPrice = 110
)

// Method names used as error prefixes.
const (
	MethodGenerate      = "Generate"
	MethodValidate      = "Validate"
	MethodNewFilter     = "NewFilter"
	MethodParseOneLiner = "ParseOneLiner"
)

// Sequence is one simulated week. The zero value has every slot unset; a
// generated Sequence has slots 0 and 1 equal and slots 2..13 positive.
type Sequence [Slots]int

// BuyPrice returns slot 0.
func (s Sequence) BuyPrice() int { return s[0] }

// Highest returns the maximum sell price (slots 2..13).
func (s Sequence) Highest() int {
	hi := s[FirstSellSlot]
	for _, p := range s[FirstSellSlot+1:] {
		if p > hi {
			hi = p
		}
	}

	return hi
}

// Complete reports whether the buy slots agree and every sell slot is filled.
func (s Sequence) Complete() bool {
	if s[0] != s[1] {
		return false
	}
	for _, p := range s[FirstSellSlot:] {
		if p <= 0 {
			return false
		}
	}

	return true
}

// Result is the outcome of one trial.
type Result struct {
	Pattern pattern.Pattern
	Prices  Sequence
	Highest int
}
