// Package report turns a simulation.Outcome into the published summary:
// per-pattern counts, the highest-price histogram and their shares of the
// accepted samples, rendered as aligned text or JSON.
//
// Percentages are decimal values rounded half-up to two places. Text output
// and JSON both show exactly two places (see Share).
package report
