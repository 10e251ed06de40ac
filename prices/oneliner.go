// SPDX-License-Identifier: MIT
// Package: turnipsim/prices
//
// oneliner.go — compact text form of a Filter.
//
// Format: an optional bare buy price, then one "am/pm" token per day:
//
//	100 92/87 83/79 75/
//
// A half may be empty, "0" or "-" when unknown. Rendering stops at the last
// known sell slot; a trailing AM slot is written as "am/".

package prices

import (
	"strconv"
	"strings"
)

const daysPerWeek = SellSlots / 2

// OneLiner renders f in the compact form. An all-zero filter renders as "".
func (f Filter) OneLiner() string {
	var b strings.Builder
	if f[0] != 0 {
		b.WriteString(strconv.Itoa(f[0]))
	}

	last := 0
	for i := Slots - 1; i >= FirstSellSlot; i-- {
		if f[i] != 0 {
			last = i
			break
		}
	}
	for i := FirstSellSlot; i <= last; i++ {
		if i%2 == 0 && b.Len() > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(strconv.Itoa(f[i]))
		if i%2 == 0 {
			b.WriteByte('/')
		}
	}

	return b.String()
}

// ParseOneLiner reads the compact form back into a Filter and validates it.
// The first token is the buy price only if it contains no '/'.
func ParseOneLiner(s string) (Filter, error) {
	var f Filter
	tokens := strings.Fields(s)
	if len(tokens) > 0 && !strings.Contains(tokens[0], "/") {
		buy, err := parseHalf(tokens[0])
		if err != nil {
			return Filter{}, err
		}
		f[0], f[1] = buy, buy
		tokens = tokens[1:]
	}
	if len(tokens) > daysPerWeek {
		return Filter{}, pricesErrorf(MethodParseOneLiner, ErrBadOneLiner,
			"%d days given, a week has %d", len(tokens), daysPerWeek)
	}

	for day, tok := range tokens {
		am, pm, _ := strings.Cut(tok, "/")
		if strings.Contains(pm, "/") {
			return Filter{}, pricesErrorf(MethodParseOneLiner, ErrBadOneLiner, "token %q has more than one '/'", tok)
		}
		slot := FirstSellSlot + 2*day
		var err error
		if f[slot], err = parseHalf(am); err != nil {
			return Filter{}, err
		}
		if f[slot+1], err = parseHalf(pm); err != nil {
			return Filter{}, err
		}
	}

	return f, f.Validate()
}

// parseHalf reads one price; empty, "-" and "0" all mean unknown.
func parseHalf(s string) (int, error) {
	if s == "" || s == "-" {
		return 0, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return 0, pricesErrorf(MethodParseOneLiner, ErrBadOneLiner, "bad price %q", s)
	}

	return n, nil
}
