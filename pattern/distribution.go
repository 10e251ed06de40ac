package pattern

// Distribution holds one weight per Pattern, in index order. Weights are
// non-negative and sum to roughly one.
type Distribution [Count]float64

// transitions is the fixed table of next-week probabilities.
// The Unknown row is a fixed long-run average, not derived from the other rows.
var transitions = map[Prior]Distribution{
	FirstPurchase:      {0, 0, 0, 1},
	Unknown:            {0.3014956, 0.24273934, 0.23843331, 0.21733175},
	Prior(Fluctuating): {0.2, 0.3, 0.15, 0.35},
	Prior(LargeSpike):  {0.5, 0.05, 0.20, 0.25},
	Prior(Decreasing):  {0.25, 0.45, 0.05, 0.25},
	Prior(SmallSpike):  {0.45, 0.25, 0.15, 0.15},
}

// DistributionFor returns the distribution for prior. The boolean is false
// for an unknown prior, in which case the zero Distribution is returned and
// Selector.Choose falls back to the last category.
func DistributionFor(prior Prior) (Distribution, bool) {
	d, ok := transitions[prior]

	return d, ok
}

// Sum returns the total weight.
func (d Distribution) Sum() float64 {
	var s float64
	for _, w := range d {
		s += w
	}

	return s
}
