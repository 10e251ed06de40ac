// SPDX-License-Identifier: MIT

// Package sead implements the 32-bit xorshift generator used by the game to
// roll commodity prices.
//
// What is it?
//
//	A four-word (128-bit) xorshift engine. Given the same seed it produces the
//	same stream of uint32 values, booleans, integer ranges and float32 ranges
//	bit for bit, which is what lets a simulated week be replayed exactly.
//
// Construction:
//
//	g := sead.New(seed)                    // one seed, expanded to four words
//	g := sead.NewFromState(sead.State{...}) // four explicit words
//	g, err := sead.NewFromWords(words...)   // 1 or 4 words, anything else is ErrInvalidArgument
//
// Draws:
//
//	u := g.Uint32()              // raw xorshift output
//	b := g.Bool()                // bit 31 of the next output
//	n := g.IntRange(90, 110)     // inclusive integer range, 64-bit widening
//	f := g.FloatRange(0.9, 1.4)  // float32 in [min, max) built from mantissa bits
//
// Arithmetic is fixed-width uint32 and float32 throughout. Wraparound is the
// intended behavior and never an error.
//
// A Generator is not safe for concurrent use; give every trial its own.
package sead
