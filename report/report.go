package report

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/katalvlaran/turnipsim/pattern"
	"github.com/katalvlaran/turnipsim/simulation"
)

// percentPlaces is the number of decimal places kept in every percentage.
const percentPlaces = 2

var hundred = decimal.NewFromInt(100)

// Share is a percentage that always renders with two decimal places, in
// text and in JSON (as a string, e.g. "12.50").
type Share struct {
	decimal.Decimal
}

// String returns the value with exactly two decimal places.
func (s Share) String() string { return s.StringFixed(percentPlaces) }

// MarshalJSON encodes the two-place string form.
func (s Share) MarshalJSON() ([]byte, error) { return json.Marshal(s.String()) }

// PatternRow is one pattern's share of the samples.
type PatternRow struct {
	Pattern pattern.Pattern `json:"id"`
	Name    string          `json:"name"`
	Count   int             `json:"count"`
	Percent Share           `json:"percent"`
}

// BucketRow is one histogram bucket's share of the samples.
type BucketRow struct {
	Label   string `json:"label"`
	Count   int    `json:"count"`
	Percent Share  `json:"percent"`
}

// Report is the rendered view of one run.
type Report struct {
	RunID       uuid.UUID     `json:"run_id"`
	Prior       pattern.Prior `json:"prior"`
	PriorName   string        `json:"prior_name"`
	BaseEntropy int           `json:"base_entropy"`
	Requested   int           `json:"requested"`
	Trials      int           `json:"trials"`
	Samples     int           `json:"samples"`
	Acceptance  Share         `json:"acceptance"`
	Partial     bool          `json:"partial"`
	Elapsed     time.Duration `json:"elapsed_ns"`
	Patterns    []PatternRow  `json:"patterns"`
	Highest     []BucketRow   `json:"highest"`
}

// New builds a Report from o. A nil Outcome yields an empty report.
func New(o *simulation.Outcome) Report {
	if o == nil {
		o = &simulation.Outcome{}
	}
	st := o.Stats

	r := Report{
		RunID:       o.ID,
		Prior:       o.Prior,
		PriorName:   o.Prior.String(),
		BaseEntropy: o.BaseEntropy,
		Requested:   o.Requested,
		Trials:      st.Trials,
		Samples:     st.Samples,
		Acceptance:  Percent(st.Samples, st.Trials),
		Partial:     o.Partial(),
		Elapsed:     o.Elapsed,
		Patterns:    make([]PatternRow, 0, pattern.Count),
		Highest:     make([]BucketRow, 0, simulation.Buckets),
	}
	for _, p := range pattern.All() {
		n := st.Patterns[p]
		r.Patterns = append(r.Patterns, PatternRow{
			Pattern: p,
			Name:    p.String(),
			Count:   n,
			Percent: Percent(n, st.Samples),
		})
	}
	for i, label := range simulation.BucketLabels() {
		n := st.Highest[i]
		r.Highest = append(r.Highest, BucketRow{Label: label, Count: n, Percent: Percent(n, st.Samples)})
	}

	return r
}

// Percent returns count/total as a percentage rounded half-up to two places,
// or zero when total is not positive.
func Percent(count, total int) Share {
	if total <= 0 {
		return Share{decimal.Zero}
	}

	return Share{decimal.NewFromInt(int64(count)).
		Mul(hundred).
		Div(decimal.NewFromInt(int64(total))).
		Round(percentPlaces)}
}

// PossiblePatterns returns the sample count of each pattern in id order.
func (r Report) PossiblePatterns() []int {
	out := make([]int, len(r.Patterns))
	for i, row := range r.Patterns {
		out[i] = row.Count
	}

	return out
}

// HighestStats returns the histogram counts, parallel to StatsLabel.
func (r Report) HighestStats() []int {
	out := make([]int, len(r.Highest))
	for i, row := range r.Highest {
		out[i] = row.Count
	}

	return out
}

// StatsLabel returns the histogram bucket labels.
func (r Report) StatsLabel() []string {
	out := make([]string, len(r.Highest))
	for i, row := range r.Highest {
		out[i] = row.Label
	}

	return out
}
