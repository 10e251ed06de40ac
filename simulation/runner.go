// SPDX-License-Identifier: MIT
// Package: turnipsim/simulation
//
// runner.go — trial sharding, filtering and aggregation.

package simulation

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/katalvlaran/turnipsim/pattern"
	"github.com/katalvlaran/turnipsim/prices"
)

// Outcome is the result of one Run.
type Outcome struct {
	// ID identifies the run in logs and reports.
	ID uuid.UUID
	// Prior is the prior the run was asked for.
	Prior pattern.Prior
	// BaseEntropy is the seed base; trial i used uint32(BaseEntropy+i).
	BaseEntropy int
	// Requested is the trial count passed to Run. Stats.Trials is lower only
	// after cancellation.
	Requested int
	// Elapsed is the wall time of the run.
	Elapsed time.Duration
	// Stats aggregates the accepted weeks.
	Stats Stats
}

// Partial reports whether the run stopped before evaluating every trial.
func (o *Outcome) Partial() bool { return o.Stats.Trials < o.Requested }

// Runner executes simulation runs. A Runner is safe for concurrent use if
// its entropy source is.
type Runner struct {
	cfg runnerConfig
	sel *pattern.Selector
}

// NewRunner resolves opts into a Runner.
func NewRunner(opts ...Option) *Runner {
	cfg := newRunnerConfig(opts...)

	return &Runner{cfg: cfg, sel: pattern.NewSelector(cfg.src)}
}

// Run simulates trials weeks following prior and aggregates those that
// match filter.
//
// A non-zero filter[0] pins the buy price of every simulated week. It must
// lie in [prices.MinBuyPrice, prices.MaxBuyPrice], the range a week can
// roll; anything else fails filter.Validate up front instead of silently
// producing prices no week could have. An all-zero filter accepts every
// trial without comparing slots.
//
// Errors: ErrBadTrialCount, ErrPinnedFirstPurchase, prices.ErrInvalidFilter,
// or ctx.Err() together with the partial Outcome.
//
// Complexity: O(trials * Slots) time, O(workers) memory.
func (r *Runner) Run(ctx context.Context, prior pattern.Prior, filter prices.Filter, trials int) (*Outcome, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if trials < 1 {
		return nil, simulationErrorf(MethodRun, ErrBadTrialCount, "got %d", trials)
	}
	if err := filter.Validate(); err != nil {
		return nil, err
	}
	if prior == pattern.FirstPurchase && (filter[0] != 0 || filter[1] != 0) {
		return nil, simulationErrorf(MethodRun, ErrPinnedFirstPurchase, "buy price %d", filter[0])
	}

	out := &Outcome{
		ID:          uuid.New(),
		Prior:       prior,
		BaseEntropy: r.cfg.base(),
		Requested:   trials,
	}
	log := r.cfg.logger.With().Str("run_id", out.ID.String()).Logger()

	dist, ok := pattern.DistributionFor(prior)
	if !ok {
		log.Warn().Int("prior", int(prior)).Msg("no distribution for prior, every week falls back to the last pattern")
	}

	var algs [pattern.Count]prices.Algorithm
	for _, p := range pattern.All() {
		// The set is closed and p is always valid.
		algs[p], _ = prices.AlgorithmFor(p)
	}

	workers := r.cfg.workers
	if workers > trials {
		workers = trials
	}
	log.Info().
		Str("prior", prior.String()).
		Int("trials", trials).
		Int("workers", workers).
		Int("base_entropy", out.BaseEntropy).
		Int("pinned", filter.Pinned()).
		Msg("simulation started")

	unfiltered := filter.IsZero()
	start := time.Now()
	partials := make([]Stats, workers)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		lo, hi := shard(trials, workers, w)
		wg.Add(1)
		go func(w, lo, hi int) {
			defer wg.Done()
			s := &partials[w]
			for i := lo; i < hi; i++ {
				if (i-lo)%r.cfg.checkInterval == 0 && ctx.Err() != nil {
					break
				}
				p := r.sel.Choose(dist)
				res := prices.GenerateWith(algs[p], uint32(out.BaseEntropy+i), filter)
				s.Trials++
				if unfiltered || filter.Matches(res.Prices) {
					s.Record(res)
				}
			}
			log.Debug().Int("worker", w).Int("from", lo).Int("to", hi).
				Int("trials", s.Trials).Int("samples", s.Samples).Msg("shard done")
		}(w, lo, hi)
	}
	wg.Wait()

	for _, s := range partials {
		out.Stats.Merge(s)
	}
	out.Elapsed = time.Since(start)

	if err := ctx.Err(); err != nil && out.Partial() {
		log.Warn().Err(err).Int("trials", out.Stats.Trials).Msg("simulation cancelled")

		return out, err
	}
	log.Info().
		Int("samples", out.Stats.Samples).
		Dur("elapsed", out.Elapsed).
		Msg("simulation finished")

	return out, nil
}

// shard returns the half-open trial range of worker w. The first
// trials%workers workers take one extra trial.
func shard(trials, workers, w int) (lo, hi int) {
	size, extra := trials/workers, trials%workers
	lo = w*size + min(w, extra)
	hi = lo + size
	if w < extra {
		hi++
	}

	return lo, hi
}
