package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/katalvlaran/turnipsim/pattern"
	"github.com/katalvlaran/turnipsim/prices"
)

const (
	envPrefix  = "TURNIPSIM"
	keyTrials  = "trials"
	keyWorkers = "workers"
	envTrials  = envPrefix + "_TRIALS"
	envWorkers = envPrefix + "_WORKERS"

	defaultTrials = 100000
)

// errUsage marks errors that exit with status 2.
var errUsage = errors.New("usage")

// config is the parsed command line.
type config struct {
	prior   pattern.Prior
	filter  prices.Filter
	trials  int
	workers int
	seed    int
	json    bool
	verbose bool
	timeout time.Duration

	// clearedBuy is the buy price dropped for a first purchase, or 0.
	clearedBuy int
}

// parseConfig reads flags over environment defaults.
func parseConfig(args []string, stderr io.Writer) (config, error) {
	var cfg config

	env := newEnv()
	trialsDefault, err := envInt(env, keyTrials)
	if err != nil {
		return cfg, err
	}
	workersDefault, err := envInt(env, keyWorkers)
	if err != nil {
		return cfg, err
	}

	fs := flag.NewFlagSet("turnipsim", flag.ContinueOnError)
	fs.SetOutput(stderr)
	priorFlag := fs.String("prior", "unknown", "last week's pattern: id -2..3 or name (first-purchase, unknown, fluctuating, large-spike, decreasing, small-spike)")
	buy := fs.Int("buy", 0, "observed buy price, 0 if unknown")
	sells := fs.String("prices", "", `observed sell prices as am/pm pairs, e.g. "92/87 83/"`)
	line := fs.String("line", "", `buy and sell prices in one line, e.g. "100 92/87 83/"`)
	fs.IntVar(&cfg.trials, "trials", trialsDefault, "number of simulated weeks (env "+envTrials+")")
	fs.IntVar(&cfg.workers, "workers", workersDefault, "worker goroutines, 0 for one per CPU (env "+envWorkers+")")
	fs.IntVar(&cfg.seed, "seed", -1, "base entropy for trial seeds, negative to draw one")
	fs.BoolVar(&cfg.json, "json", false, "write the report as JSON")
	fs.BoolVar(&cfg.verbose, "v", false, "debug logging")
	fs.DurationVar(&cfg.timeout, "timeout", 0, "stop after this long and report partial results, 0 for no limit")
	if err := fs.Parse(args); err != nil {
		return cfg, err
	}
	if fs.NArg() > 0 {
		return cfg, fmt.Errorf("%w: unexpected arguments %q", errUsage, fs.Args())
	}

	if cfg.prior, err = pattern.ParsePrior(*priorFlag); err != nil {
		return cfg, fmt.Errorf("%w: -prior: %v", errUsage, err)
	}
	if cfg.trials < 1 {
		return cfg, fmt.Errorf("%w: -trials must be positive, got %d", errUsage, cfg.trials)
	}
	if cfg.workers < 0 {
		return cfg, fmt.Errorf("%w: -workers must not be negative, got %d", errUsage, cfg.workers)
	}
	if cfg.timeout < 0 {
		return cfg, fmt.Errorf("%w: -timeout must not be negative", errUsage)
	}

	if cfg.filter, err = buildFilter(*line, *buy, *sells); err != nil {
		return cfg, fmt.Errorf("%w: %v", errUsage, err)
	}
	if cfg.prior == pattern.FirstPurchase && cfg.filter.BuyPrice() != 0 {
		cfg.clearedBuy = cfg.filter.BuyPrice()
		cfg.filter = cfg.filter.WithoutBuyPrice()
	}

	return cfg, nil
}

// buildFilter combines -line, or -buy with -prices, into a Filter.
func buildFilter(line string, buy int, sells string) (prices.Filter, error) {
	if line != "" {
		if buy != 0 || sells != "" {
			return prices.Filter{}, errors.New("-line cannot be combined with -buy or -prices")
		}

		return prices.ParseOneLiner(line)
	}

	// A leading "0" keeps a lone first token from being read as the buy price.
	parsed, err := prices.ParseOneLiner("0 " + sells)
	if err != nil {
		return prices.Filter{}, err
	}

	return prices.NewFilter(buy, parsed[prices.FirstSellSlot:]...)
}

// newEnv reads TURNIPSIM_* variables over the built-in defaults.
func newEnv() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()
	v.SetDefault(keyTrials, defaultTrials)
	v.SetDefault(keyWorkers, 0)

	return v
}

// envInt reads key as an integer. Unlike viper's GetInt, a value that is not
// a number is an error rather than 0.
func envInt(v *viper.Viper, key string) (int, error) {
	val := strings.TrimSpace(v.GetString(key))
	n, err := strconv.Atoi(val)
	if err != nil {
		return 0, fmt.Errorf("%w: %s_%s=%q is not an integer", errUsage, envPrefix, strings.ToUpper(key), val)
	}

	return n, nil
}
