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

// payoffCmd holds the flags for the 'payoff' subcommand.
type payoffCmd struct {
	strategy string
	extra    float64
}

func (*payoffCmd) Name() string     { return "payoff" }
func (*payoffCmd) Synopsis() string { return "compute a month-by-month debt payoff plan" }
func (*payoffCmd) Usage() string {
	return `fcs payoff [-strategy <avalanche|snowball>] [-extra <amount>]

  Computes the full amortization schedule for the debts on file, paying every
  minimum each month and directing the extra payment according to the chosen
  strategy. Minimums freed by paid-off debts roll into the next target.

Usage Examples:
# Avalanche with $200 extra a month.
$ fcs payoff -strategy avalanche -extra 200

`
}

func (c *payoffCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.strategy, "strategy", "avalanche", "Payoff strategy: avalanche (highest rate first) or snowball (smallest balance first).")
	f.Float64Var(&c.extra, "extra", 0, "Extra amount paid every month on top of all minimums.")
}

func (c *payoffCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	strategy, err := fincalc.ParseStrategy(c.strategy)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	debts, err := DecodeDebts()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	if len(debts) == 0 {
		fmt.Fprintf(os.Stderr, "Warning: no debts found in %q, nothing to pay off.\n", *debtsFile)
		return subcommands.ExitSuccess
	}

	plan := fincalc.Payoff(debts, decimal.NewFromFloat(c.extra), strategy)

	printMarkdown(renderer.PayoffMarkdown(plan, *currency))
	return subcommands.ExitSuccess
}
