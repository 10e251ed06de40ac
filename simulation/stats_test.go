package simulation_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/turnipsim/pattern"
	"github.com/katalvlaran/turnipsim/prices"
	"github.com/katalvlaran/turnipsim/simulation"
)

func TestBucketFor(t *testing.T) {
	tests := []struct{ highest, want int }{
		{-10, 0},
		{0, 0},
		{24, 0},
		{25, 1},
		{133, 5},
		{660, 26},
		{699, 27},
		{700, 27},
		{5000, 27},
	}
	for _, tc := range tests {
		assert.Equalf(t, tc.want, simulation.BucketFor(tc.highest), "BucketFor(%d)", tc.highest)
	}
}

func TestBucketLabels(t *testing.T) {
	labels := simulation.BucketLabels()
	require.Len(t, labels, simulation.Buckets)
	assert.Equal(t, "0-24", labels[0])
	assert.Equal(t, "25-49", labels[1])
	assert.Equal(t, "675-699", labels[simulation.Buckets-1])
}

// TestStatsMerge checks merging partial batches equals recording one batch,
// in any grouping.
func TestStatsMerge(t *testing.T) {
	var results []prices.Result
	for seed := uint32(0); seed < 90; seed++ {
		res, err := prices.Generate(pattern.All()[seed%pattern.Count], seed, prices.Filter{})
		require.NoError(t, err)
		results = append(results, res)
	}

	batch := func(rs []prices.Result) simulation.Stats {
		var s simulation.Stats
		for _, r := range rs {
			s.Trials++
			s.Record(r)
		}

		return s
	}
	whole := batch(results)
	a, b, c := batch(results[:20]), batch(results[20:55]), batch(results[55:])

	left := a
	left.Merge(b)
	left.Merge(c)

	bc := b
	bc.Merge(c)
	right := a
	right.Merge(bc)

	rev := c
	rev.Merge(a)
	rev.Merge(b)

	assert.Equal(t, whole, left)
	assert.Equal(t, whole, right)
	assert.Equal(t, whole, rev)
	assert.Equal(t, 90, whole.Samples)
	assert.Equal(t, [pattern.Count]int{23, 23, 22, 22}, whole.Patterns)
}

func TestStatsMerge_Empty(t *testing.T) {
	var s simulation.Stats
	s.Merge(simulation.Stats{})
	assert.Equal(t, simulation.Stats{}, s)
}
