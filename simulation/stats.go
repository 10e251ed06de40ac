// SPDX-License-Identifier: MIT
// Package: turnipsim/simulation
//
// stats.go — aggregate counters over accepted trials.

package simulation

import (
	"strconv"

	"github.com/katalvlaran/turnipsim/pattern"
	"github.com/katalvlaran/turnipsim/prices"
)

const (
	// BucketWidth is the width in bells of one histogram bucket.
	BucketWidth = 25
	// Buckets is the number of histogram buckets, covering [0, 700).
	Buckets = 28
)

// Stats counts accepted trials. The zero value is empty and ready to use.
//
// Invariants: sum(Patterns) == sum(Highest) == Samples <= Trials.
type Stats struct {
	// Patterns counts accepted weeks by pattern id.
	Patterns [pattern.Count]int
	// Highest counts accepted weeks by the bucket of their highest sell price.
	Highest [Buckets]int
	// Samples is the number of accepted weeks.
	Samples int
	// Trials is the number of weeks evaluated, accepted or not.
	Trials int
}

// Record counts one accepted week. It does not touch Trials.
func (s *Stats) Record(r prices.Result) {
	s.Patterns[r.Pattern]++
	s.Highest[BucketFor(r.Highest)]++
	s.Samples++
}

// Merge adds o into s bucket by bucket.
func (s *Stats) Merge(o Stats) {
	for i, n := range o.Patterns {
		s.Patterns[i] += n
	}
	for i, n := range o.Highest {
		s.Highest[i] += n
	}
	s.Samples += o.Samples
	s.Trials += o.Trials
}

// BucketFor maps a highest price to its histogram bucket. Prices outside
// [0, 700) are clamped into the first or last bucket; generated weeks never
// produce them.
func BucketFor(highest int) int {
	switch b := highest / BucketWidth; {
	case highest < 0:
		return 0
	case b >= Buckets:
		return Buckets - 1
	default:
		return b
	}
}

// BucketLabels returns "0-24", "25-49", ... "675-699".
func BucketLabels() []string {
	labels := make([]string, Buckets)
	for i := range labels {
		lo := i * BucketWidth
		labels[i] = strconv.Itoa(lo) + "-" + strconv.Itoa(lo+BucketWidth-1)
	}

	return labels
}
