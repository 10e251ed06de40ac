// Package pattern names the four weekly price shapes, holds the fixed table of
// transition probabilities keyed by last week's shape, and draws a shape for
// a simulated week.
//
// The draw uses its own entropy source and is deliberately kept out of the
// seeded price stream: the seed decides what a week looks like once its
// shape is known, the selector decides which shape to look at.
//
//	sel := pattern.NewSelector(pattern.CryptoSource())
//	dist, _ := pattern.DistributionFor(pattern.Unknown)
//	p := sel.Choose(dist)
package pattern
