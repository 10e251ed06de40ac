package report

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"
)

// WriteText renders r as two aligned tables. Histogram buckets without
// samples are omitted; WriteJSON keeps all of them.
func (r Report) WriteText(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)

	fmt.Fprintf(tw, "run %s\tprior %s\t\n", r.RunID, r.PriorName)
	fmt.Fprintf(tw, "samples %d/%d\taccepted %s%%\t\n", r.Samples, r.Trials, r.Acceptance)
	if r.Partial {
		fmt.Fprintf(tw, "partial: %d of %d trials\t\t\n", r.Trials, r.Requested)
	}

	fmt.Fprintln(tw, "\t\t\t")
	fmt.Fprintln(tw, "pattern\tcount\tpercent\t")
	for _, row := range r.Patterns {
		fmt.Fprintf(tw, "%s\t%d\t%s\t\n", row.Name, row.Count, row.Percent)
	}

	fmt.Fprintln(tw, "\t\t\t")
	fmt.Fprintln(tw, "highest\tcount\tpercent\t")
	for _, row := range r.Highest {
		if row.Count == 0 {
			continue
		}
		fmt.Fprintf(tw, "%s\t%d\t%s\t\n", row.Label, row.Count, row.Percent)
	}

	return tw.Flush()
}

// WriteJSON renders r as indented JSON. Percentages are two-place strings.
func (r Report) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(r)
}
