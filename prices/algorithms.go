// SPDX-License-Identifier: MIT
// Package: turnipsim/prices
//
// algorithms.go — the four sell-price shapes.
//
// Contract:
//   - Each variant writes exactly SellSlots prices starting at FirstSellSlot.
//   - Draw order is fixed; reordering any draw changes every later price.
//   - Float ranges are drawn with the bounds in the order listed here
//     (e.g. FloatRange(0.8, 0.6) for a starting decrease rate). The range is
//     the same either way, the values are not.

package prices

import (
	"math"

	"github.com/katalvlaran/turnipsim/pattern"
	"github.com/katalvlaran/turnipsim/sead"
)

// Algorithm fills slots 2..13 of a week for one pattern. The set of
// implementations is closed; obtain one with AlgorithmFor.
type Algorithm interface {
	// Pattern returns the category the algorithm generates.
	Pattern() pattern.Pattern
	fill(g *sead.Generator, base int, w *writer)
}

var algorithms = [pattern.Count]Algorithm{
	pattern.Fluctuating: fluctuating{},
	pattern.LargeSpike:  largeSpike{},
	pattern.Decreasing:  decreasing{},
	pattern.SmallSpike:  smallSpike{},
}

// AlgorithmFor returns the variant for p, or pattern.ErrUnknownPattern.
func AlgorithmFor(p pattern.Pattern) (Algorithm, error) {
	if !p.Valid() {
		return nil, pricesErrorf(MethodGenerate, pattern.ErrUnknownPattern, "id %d", int(p))
	}

	return algorithms[p], nil
}

// writer appends prices to a Sequence starting at FirstSellSlot.
type writer struct {
	seq *Sequence
	at  int
}

func newWriter(seq *Sequence) *writer {
	return &writer{seq: seq, at: FirstSellSlot}
}

func (w *writer) put(price int) {
	w.seq[w.at] = price
	w.at++
}

func (w *writer) remaining() int {
	return Slots - w.at
}

// ceilPrice is ceil(rate*base) with the product rounded to float32 first.
func ceilPrice(rate float32, base int) int {
	return int(math.Ceil(float64(rate * float32(base))))
}

// high writes n prices at an independent multiplier in [lo, hi).
func high(g *sead.Generator, base int, w *writer, n int, lo, hi float32) {
	for i := 0; i < n; i++ {
		w.put(ceilPrice(g.FloatRange(lo, hi), base))
	}
}

// decline writes n prices starting at rate. After each price the rate drops
// by step and then by a further draw in [0, jitter).
func decline(g *sead.Generator, base int, w *writer, rate float32, n int, step, jitter float32) {
	for i := 0; i < n; i++ {
		w.put(ceilPrice(rate, base))
		rate -= step
		rate -= g.FloatRange(0, jitter)
	}
}

// fluctuating: high, decreasing, high, decreasing, high.
type fluctuating struct{}

// fluctuatingPlan holds the five phase lengths in emission order.
type fluctuatingPlan struct {
	high1, dec1, high2, dec2, high3 int
}

func (p fluctuatingPlan) total() int {
	return p.high1 + p.dec1 + p.high2 + p.dec2 + p.high3
}

// planFluctuating draws the phase lengths. The decreasing phases share five
// slots (2+3 or 3+2) and the high phases share the other seven.
func planFluctuating(g *sead.Generator) fluctuatingPlan {
	var p fluctuatingPlan
	p.dec1 = 2
	if g.Bool() {
		p.dec1 = 3
	}
	p.dec2 = 5 - p.dec1

	p.high1 = g.IntRange(0, 6)
	highRest := 7 - p.high1
	p.high3 = g.IntRange(0, highRest-1)
	p.high2 = highRest - p.high3

	return p
}

func (fluctuating) Pattern() pattern.Pattern { return pattern.Fluctuating }

func (fluctuating) fill(g *sead.Generator, base int, w *writer) {
	p := planFluctuating(g)

	high(g, base, w, p.high1, 0.9, 1.4)
	rate := g.FloatRange(0.8, 0.6)
	decline(g, base, w, rate, p.dec1, 0.04, 0.06)
	high(g, base, w, p.high2, 0.9, 1.4)
	rate = g.FloatRange(0.8, 0.6)
	decline(g, base, w, rate, p.dec2, 0.04, 0.06)
	high(g, base, w, p.high3, 0.9, 1.4)
}

// largeSpike: decreasing, spike, low random tail.
type largeSpike struct{}

// largeSpikeBands are the multiplier ranges of the five spike slots.
var largeSpikeBands = [5][2]float32{
	{0.9, 1.4},
	{1.4, 2.0},
	{2.0, 6.0},
	{1.4, 2.0},
	{0.9, 1.4},
}

func (largeSpike) Pattern() pattern.Pattern { return pattern.LargeSpike }

func (largeSpike) fill(g *sead.Generator, base int, w *writer) {
	peakStart := g.IntRange(3, 9)
	rate := g.FloatRange(0.9, 0.85)
	decline(g, base, w, rate, peakStart-FirstSellSlot, 0.03, 0.02)

	for _, band := range largeSpikeBands {
		w.put(ceilPrice(g.FloatRange(band[0], band[1]), base))
	}
	high(g, base, w, w.remaining(), 0.4, 0.9)
}

// decreasing: one run for the whole week.
type decreasing struct{}

func (decreasing) Pattern() pattern.Pattern { return pattern.Decreasing }

func (decreasing) fill(g *sead.Generator, base int, w *writer) {
	rate := float32(0.9)
	rate -= g.FloatRange(0, 0.05)
	decline(g, base, w, rate, w.remaining(), 0.03, 0.02)
}

// smallSpike: decreasing, two high slots, a three-slot peak, decreasing.
type smallSpike struct{}

func (smallSpike) Pattern() pattern.Pattern { return pattern.SmallSpike }

func (smallSpike) fill(g *sead.Generator, base int, w *writer) {
	peakStart := g.IntRange(2, 9)
	rate := g.FloatRange(0.9, 0.4)
	decline(g, base, w, rate, peakStart-FirstSellSlot, 0.03, 0.02)

	high(g, base, w, 2, 0.9, 1.4)

	peak := g.FloatRange(1.4, 2.0)
	w.put(ceilPrice(g.FloatRange(1.4, peak), base) - 1)
	w.put(ceilPrice(peak, base))
	w.put(ceilPrice(g.FloatRange(1.4, peak), base) - 1)

	if n := w.remaining(); n > 0 {
		rate = g.FloatRange(0.9, 0.4)
		decline(g, base, w, rate, n, 0.03, 0.02)
	}
}
