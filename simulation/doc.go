// SPDX-License-Identifier: MIT
// Package: turnipsim/simulation
//
// Package simulation runs many simulated weeks and aggregates the ones that
// reproduce a set of observed prices.
//
// Each trial draws a pattern from the prior's Distribution through a shared
// pattern.Selector, generates a week from the seed uint32(base+i), and keeps
// it only if every pinned Filter slot matches. Accepted weeks are counted per
// pattern and per 25-bell bucket of their highest sell price.
//
// Trials are sharded into contiguous index ranges, one per worker. Each
// worker keeps its own Stats; partials are merged once all workers return.
// Price streams depend only on (base, i), so they are identical for any
// worker count. Pattern draws interleave across workers, so a whole run is
// reproducible only with WithWorkers(1) and a seeded entropy source.
//
// Cancellation is cooperative: workers poll ctx every WithCheckInterval
// trials. A cancelled Run returns the partial Outcome with ctx.Err().
//
//	r := simulation.NewRunner(simulation.WithWorkers(4))
//	out, err := r.Run(ctx, pattern.Unknown, filter, 100000)
package simulation
