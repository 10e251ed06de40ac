// Package turnipsim forecasts a week of turnip prices by Monte Carlo
// simulation.
//
// The module is organized as small packages, each usable on its own:
//
//	sead/       — the deterministic xorshift generator every week is drawn from
//	pattern/    — the four weekly shapes, transition table and shape selector
//	prices/     — week generation for each shape, observed-price filters, one-liners
//	simulation/ — the parallel trial runner and aggregate counters
//	report/     — percentages, histogram labels, text and JSON rendering
//
// Command turnipsim (cmd/turnipsim) wires them together; examples/ holds a
// runnable demo.
//
//	go run ./cmd/turnipsim -prior unknown -line "100 92/87 83/"
package turnipsim
