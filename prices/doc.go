// SPDX-License-Identifier: MIT

// Package prices generates one simulated week of commodity prices for a
// given pattern and seed, and describes which observed prices a week must
// reproduce to be kept.
//
// A week is a fixed Sequence of 14 slots:
//
//	slot 0, 1   buy price (identical)
//	slot 2..13  sell prices, Monday AM through Saturday PM
//
// Every week starts the same way: seed a sead.Generator, draw a buy price in
// [90, 110] (a pinned buy price in the Filter replaces the value but the draw
// is still made), then burn one discriminant draw in [0, 99]. One of four
// Algorithm variants then fills slots 2..13:
//
//	Fluctuating  high, decreasing, high, decreasing, high (phase lengths 0..7 / 2..3)
//	LargeSpike   decreasing, a five-slot spike up to 6x, low tail
//	Decreasing   steadily decreasing all week
//	SmallSpike   decreasing, a five-slot spike up to 2x, decreasing
//
// All multipliers and rates are float32 and every price is the ceiling of
// rate*base computed in float32, so a seed reproduces a week bit for bit.
//
// Filter and the one-liner codec:
//
//	f, _ := prices.ParseOneLiner("100 92/87 83/")
//	f.Matches(res.Prices)
package prices
