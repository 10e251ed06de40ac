// SPDX-License-Identifier: MIT
// Package: turnipsim/sead
//
// types.go — state layout and fixed constants of the generator.

package sead

// State is the four-word generator state. Order is significant: State[0] is
// the oldest word and State[3] the most recent output.
type State [4]uint32

// IsZero reports whether every word is zero, a state the xorshift step can
// never leave.
func (s State) IsZero() bool {
	return s[0] == 0 && s[1] == 0 && s[2] == 0 && s[3] == 0
}

// seedMultiplier drives the one-seed expansion
// word[i] = seedMultiplier*(prev^(prev>>30)) + (i+1).
const seedMultiplier uint32 = 0x6C078965

// fallbackState replaces an all-zero four-word seed. It is also exactly the
// state produced by New(0).
var fallbackState = State{1, 0x6C078967, 0x714ACB41, 0x48077044}

// Fallback returns a copy of the state NewFromState substitutes for an
// all-zero seed.
func Fallback() State { return fallbackState }

const (
	// floatOneBits is the IEEE-754 single-precision pattern of 1.0.
	floatOneBits uint32 = 0x3F800000
	// mantissaShift drops the low bits so the remaining 23 fit the mantissa.
	mantissaShift = 9
)

// Method names used as error prefixes.
const (
	MethodNewFromWords = "NewFromWords"
)
