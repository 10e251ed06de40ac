// Command turnipsim estimates which price pattern a week follows, and how
// high it is likely to go, by simulating many weeks and keeping those that
// reproduce the prices observed so far.
//
//	turnipsim -prior unknown -line "100 92/87 83/" -trials 200000
//
// The report goes to stdout, logs to stderr. Exit status is 0 on success,
// 1 if the run failed or was cut short, 2 on bad usage.
package main

import (
	"context"
	"errors"
	"flag"
	"io"
	"os"
	"os/signal"
	"time"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/turnipsim/report"
	"github.com/katalvlaran/turnipsim/simulation"
)

const (
	exitOK    = 0
	exitRun   = 1
	exitUsage = 2
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// run is main without the process globals.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	cfg, err := parseConfig(args, stderr)
	switch {
	case errors.Is(err, flag.ErrHelp):
		return exitOK
	case err != nil:
		l := newLogger(stderr, false)
		l.Error().Err(err).Msg("bad arguments")

		return exitUsage
	}
	log := newLogger(stderr, cfg.verbose)

	if cfg.clearedBuy != 0 {
		log.Warn().Int("buy", cfg.clearedBuy).Msg("the first purchase re-rolls the buy price, ignoring it")
	}

	opts := []simulation.Option{simulation.WithLogger(log)}
	if cfg.workers > 0 {
		opts = append(opts, simulation.WithWorkers(cfg.workers))
	}
	if cfg.seed >= 0 {
		opts = append(opts, simulation.WithBaseEntropy(cfg.seed))
	}
	if cfg.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.timeout)
		defer cancel()
	}

	out, runErr := simulation.NewRunner(opts...).Run(ctx, cfg.prior, cfg.filter, cfg.trials)
	if out == nil {
		log.Error().Err(runErr).Msg("simulation failed")

		return exitRun
	}

	r := report.New(out)
	if cfg.json {
		err = r.WriteJSON(stdout)
	} else {
		err = r.WriteText(stdout)
	}
	if err != nil {
		log.Error().Err(err).Msg("write report")

		return exitRun
	}
	if runErr != nil {
		log.Error().Err(runErr).Int("trials", out.Stats.Trials).Msg("simulation stopped early")

		return exitRun
	}

	return exitOK
}

func newLogger(w io.Writer, verbose bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}

	return zerolog.New(zerolog.ConsoleWriter{Out: w, TimeFormat: time.TimeOnly}).
		Level(level).
		With().
		Timestamp().
		Logger()
}
