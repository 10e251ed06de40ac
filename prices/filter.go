// SPDX-License-Identifier: MIT
// Package: turnipsim/prices
//
// filter.go — observed prices a simulated week must reproduce.

package prices

// Filter lists observed prices by slot. Zero means unconstrained; any other
// value must be matched exactly. Slot 0 doubles as slot 1 (the buy price).
type Filter [Slots]int

// NewFilter pins buy (0 for unknown) into slots 0 and 1 and the given sell
// prices into slots 2 onward. More than SellSlots sells is an error, as is
// anything Validate rejects.
func NewFilter(buy int, sells ...int) (Filter, error) {
	var f Filter
	if len(sells) > SellSlots {
		return f, pricesErrorf(MethodNewFilter, ErrInvalidFilter,
			"at most %d sell prices, got %d", SellSlots, len(sells))
	}
	f[0], f[1] = buy, buy
	copy(f[FirstSellSlot:], sells)

	return f, f.Validate()
}

// BuyPrice returns the pinned buy price, or 0.
func (f Filter) BuyPrice() int { return f[0] }

// WithoutBuyPrice returns a copy with slots 0 and 1 cleared.
func (f Filter) WithoutBuyPrice() Filter {
	f[0], f[1] = 0, 0

	return f
}

// Pinned returns the number of constrained slots.
func (f Filter) Pinned() int {
	n := 0
	for _, v := range f {
		if v != 0 {
			n++
		}
	}

	return n
}

// IsZero reports whether no slot is constrained.
func (f Filter) IsZero() bool { return f == Filter{} }

// Matches reports whether every constrained slot equals the week's price.
func (f Filter) Matches(s Sequence) bool {
	for i, want := range f {
		if want != 0 && s[i] != want {
			return false
		}
	}

	return true
}

// Validate rejects filters no generated week can satisfy for structural
// reasons. A filter that is merely unlikely is valid.
func (f Filter) Validate() error {
	for i, v := range f {
		if v < 0 {
			return pricesErrorf(MethodValidate, ErrInvalidFilter, "slot %d is negative (%d)", i, v)
		}
	}
	for i := 0; i < FirstSellSlot; i++ {
		if v := f[i]; v != 0 && (v < MinBuyPrice || v > MaxBuyPrice) {
			return pricesErrorf(MethodValidate, ErrInvalidFilter,
				"buy price %d outside [%d, %d]", v, MinBuyPrice, MaxBuyPrice)
		}
	}
	if f[0] != 0 && f[1] != 0 && f[0] != f[1] {
		return pricesErrorf(MethodValidate, ErrInvalidFilter,
			"buy slots disagree (%d vs %d)", f[0], f[1])
	}

	return nil
}
