package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/fincalc/fincalc"
	"github.com/fincalc/fincalc/renderer"
	"github.com/google/subcommands"
)

// detectCmd holds the flags for the 'detect' subcommand.
type detectCmd struct {
	minConfidence float64
	from          string
	to            string
}

func (*detectCmd) Name() string     { return "detect" }
func (*detectCmd) Synopsis() string { return "detect recurring payments in the transaction history" }
func (*detectCmd) Usage() string {
	return `fcs detect [-min-confidence <0..1>] [-from <date>] [-to <date>]

  Scans the transaction history for recurring payments (subscriptions,
  salaries, utility bills) by grouping similar descriptions and looking for
  regular intervals between charges.

Usage Examples:
$ fcs detect
$ fcs detect -min-confidence 0.8 -from 2025-01-01

`
}

func (c *detectCmd) SetFlags(f *flag.FlagSet) {
	f.Float64Var(&c.minConfidence, "min-confidence", 0, "Only report patterns at least this confident.")
	f.StringVar(&c.from, "from", "", "Only consider transactions on or after this date (YYYY-MM-DD).")
	f.StringVar(&c.to, "to", "", "Only consider transactions on or before this date (YYYY-MM-DD).")
}

func (c *detectCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	txs, err := DecodeTransactions()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	if txs, err = clipTransactions(txs, c.from, c.to); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	patterns := fincalc.DetectPatterns(txs)
	if c.minConfidence > 0 {
		kept := patterns[:0]
		for _, p := range patterns {
			if p.Confidence >= c.minConfidence {
				kept = append(kept, p)
			}
		}
		patterns = kept
	}

	printMarkdown(renderer.PatternsMarkdown(patterns, *currency))
	return subcommands.ExitSuccess
}

// forecastCmd holds the flags for the 'forecast' subcommand.
type forecastCmd struct {
	months int
	from   string
	to     string
}

func (*forecastCmd) Name() string     { return "forecast" }
func (*forecastCmd) Synopsis() string { return "project detected recurring payments into the future" }
func (*forecastCmd) Usage() string {
	return `fcs forecast [-months <n>] [-from <date>] [-to <date>]

  Detects recurring payments in the transaction history and projects their
  future occurrences over the coming months.

Usage Examples:
# What the next quarter looks like.
$ fcs forecast -months 3

`
}

func (c *forecastCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.months, "months", 3, "Number of months to project ahead.")
	f.StringVar(&c.from, "from", "", "Only consider transactions on or after this date (YYYY-MM-DD).")
	f.StringVar(&c.to, "to", "", "Only consider transactions on or before this date (YYYY-MM-DD).")
}

func (c *forecastCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.months <= 0 {
		fmt.Fprintf(os.Stderr, "Error: -months must be positive, got %d\n", c.months)
		return subcommands.ExitUsageError
	}

	txs, err := DecodeTransactions()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	if txs, err = clipTransactions(txs, c.from, c.to); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	patterns := fincalc.DetectPatterns(txs)
	projected := fincalc.ProjectFuture(patterns, c.months)

	printMarkdown(renderer.ForecastMarkdown(projected, *currency))
	return subcommands.ExitSuccess
}
