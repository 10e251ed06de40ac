// SPDX-License-Identifier: MIT
// Package: turnipsim/sead
//
// sead.go — constructors and draws.
//
// Contract:
//   - Every draw advances the state by exactly one Uint32 step; no draw ever
//     consumes more or less, so callers can count stream positions.
//   - FloatRange is evaluated in float32. Each intermediate is converted
//     explicitly so the compiler may not fuse the multiply-add.

package sead

import "math"

// Generator is a seeded xorshift128 engine. The zero value is not usable;
// construct it with New, NewFromState or NewFromWords.
type Generator struct {
	state State
}

// New expands a single seed into four state words.
// Complexity: O(1).
func New(seed uint32) *Generator {
	g := &Generator{}
	prev := seed
	for i := range g.state {
		prev = seedMultiplier*(prev^(prev>>30)) + uint32(i+1)
		g.state[i] = prev
	}

	return g
}

// NewFromState uses the given words verbatim, except that an all-zero state
// is replaced by Fallback().
// Complexity: O(1).
func NewFromState(s State) *Generator {
	if s.IsZero() {
		s = fallbackState
	}

	return &Generator{state: s}
}

// NewFromWords dispatches on the number of words: one word is a seed, four
// words are an explicit state. Any other count fails with ErrInvalidArgument.
func NewFromWords(words ...uint32) (*Generator, error) {
	switch len(words) {
	case 1:
		return New(words[0]), nil
	case len(State{}):
		var s State
		copy(s[:], words)

		return NewFromState(s), nil
	default:
		return nil, seadErrorf(MethodNewFromWords, ErrInvalidArgument,
			"want 1 seed or 4 state words, got %d", len(words))
	}
}

// State returns a copy of the current state.
func (g *Generator) State() State {
	return g.state
}

// Uint32 advances the state by one xorshift step and returns the new last word.
func (g *Generator) Uint32() uint32 {
	t := g.state[0] ^ (g.state[0] << 11)
	last := g.state[3]

	g.state[0] = g.state[1]
	g.state[1] = g.state[2]
	g.state[2] = last
	g.state[3] = t ^ (t >> 8) ^ last ^ (last >> 19)

	return g.state[3]
}

// Bool reports whether bit 31 of the next output is set.
func (g *Generator) Bool() bool {
	return g.Uint32()&0x80000000 != 0
}

// IntRange returns an integer in [min, max] as floor(u*(max-min+1)/2^32)+min.
// The product is widened to 64 bits before the shift. When max < min the draw
// is still consumed and min is returned.
func (g *Generator) IntRange(min, max int) int {
	u := uint64(g.Uint32())
	if max < min {
		return min
	}
	span := uint64(max - min + 1)

	return int((u*span)>>32) + min
}

// FloatRange returns min + (v-1)*(max-min) where v is a float32 in [1, 2)
// assembled from the top 23 bits of the next output. min may exceed max, in
// which case the value falls in (max, min].
func (g *Generator) FloatRange(min, max float32) float32 {
	v := math.Float32frombits(floatOneBits | g.Uint32()>>mantissaShift)
	frac := v - 1
	span := max - min

	return min + float32(frac*span)
}
