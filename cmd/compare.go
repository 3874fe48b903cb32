package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/fincalc/fincalc"
	"github.com/fincalc/fincalc/renderer"
	"github.com/google/subcommands"
	"github.com/shopspring/decimal"
)

// compareCmd holds the flags for the 'compare' subcommand.
type compareCmd struct {
	extra float64
}

func (*compareCmd) Name() string     { return "compare" }
func (*compareCmd) Synopsis() string { return "compare the avalanche and snowball payoff strategies" }
func (*compareCmd) Usage() string {
	return `fcs compare [-extra <amount>]

  Runs both payoff strategies on the debts on file and reports the interest
  and months saved by each, with a recommendation.

Usage Examples:
$ fcs compare -extra 200

`
}

func (c *compareCmd) SetFlags(f *flag.FlagSet) {
	f.Float64Var(&c.extra, "extra", 0, "Extra amount paid every month on top of all minimums.")
}

func (c *compareCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	debts, err := DecodeDebts()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	if len(debts) == 0 {
		fmt.Fprintf(os.Stderr, "Warning: no debts found in %q, nothing to compare.\n", *debtsFile)
		return subcommands.ExitSuccess
	}

	cmp := fincalc.CompareStrategies(debts, decimal.NewFromFloat(c.extra))

	printMarkdown(renderer.ComparisonMarkdown(cmp, *currency))
	return subcommands.ExitSuccess
}
