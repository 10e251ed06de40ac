package pattern

import (
	"fmt"
	"strconv"
	"strings"
)

// Pattern is one of the four fixed sell-price shapes.
type Pattern int

const (
	// Fluctuating alternates high and decreasing phases.
	Fluctuating Pattern = iota
	// LargeSpike decreases, then spikes up to six times the buy price.
	LargeSpike
	// Decreasing falls steadily all week.
	Decreasing
	// SmallSpike decreases, peaks at up to twice the buy price, decreases again.
	SmallSpike
)

// Count is the number of pattern categories.
const Count = 4

// All returns the categories in index order. Each call yields a fresh copy.
func All() [Count]Pattern {
	return [Count]Pattern{Fluctuating, LargeSpike, Decreasing, SmallSpike}
}

var patternNames = [Count]string{"fluctuating", "large-spike", "decreasing", "small-spike"}

// Valid reports whether p is one of the four categories.
func (p Pattern) Valid() bool {
	return p >= Fluctuating && p <= SmallSpike
}

// String returns the kebab-case name, or "pattern(N)" for invalid ids.
func (p Pattern) String() string {
	if !p.Valid() {
		return "pattern(" + strconv.Itoa(int(p)) + ")"
	}

	return patternNames[p]
}

// Prior identifies last week's pattern and selects a Distribution.
// Values 0..3 mirror Pattern; FirstPurchase and Unknown are special.
type Prior int

const (
	// FirstPurchase is the first week on a new island; the buy price is re-rolled.
	FirstPurchase Prior = -2
	// Unknown means last week's pattern was not observed.
	Unknown Prior = -1
)

// PriorOf converts last week's observed pattern into a Prior.
func PriorOf(p Pattern) Prior {
	return Prior(p)
}

// Valid reports whether p is in -2..3.
func (p Prior) Valid() bool {
	return p >= FirstPurchase && p <= Prior(SmallSpike)
}

// String returns "first-purchase", "unknown", or the pattern name.
func (p Prior) String() string {
	switch p {
	case FirstPurchase:
		return "first-purchase"
	case Unknown:
		return "unknown"
	default:
		return Pattern(p).String()
	}
}

// ParsePrior accepts a numeric id ("-2".."3") or a name as returned by
// String. Matching is case-insensitive and ignores surrounding spaces.
func ParsePrior(s string) (Prior, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if n, err := strconv.Atoi(s); err == nil {
		if p := Prior(n); p.Valid() {
			return p, nil
		}

		return 0, fmt.Errorf("ParsePrior: id %d out of range: %w", n, ErrUnknownPrior)
	}
	for p := FirstPurchase; p <= Prior(SmallSpike); p++ {
		if p.String() == s {
			return p, nil
		}
	}

	return 0, fmt.Errorf("ParsePrior: %q: %w", s, ErrUnknownPrior)
}
