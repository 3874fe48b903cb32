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

// simulateCmd holds the flags for the 'simulate' subcommand.
type simulateCmd struct {
	initial    float64
	monthly    float64
	annual     float64
	volatility float64
	inflation  float64
	years      int
	paths      int
}

func (*simulateCmd) Name() string { return "simulate" }
func (*simulateCmd) Synopsis() string {
	return "run a Monte Carlo simulation of an investment plan"
}
func (*simulateCmd) Usage() string {
	return `fcs simulate [-initial <amount>] [-monthly <amount>] [-return <pct>] [-volatility <pct>] [-years <n>] [-paths <n>] [-inflation <pct>]

  Simulates many random market paths and reports the yearly percentile bands
  of portfolio value, the median and mean final values, and the probabilities
  of doubling the invested money or ending below it.

Usage Examples:
# A typical stock-heavy plan over 30 years.
$ fcs simulate -initial 100000 -monthly 500 -return 7 -volatility 15 -years 30

`
}

func (c *simulateCmd) SetFlags(f *flag.FlagSet) {
	f.Float64Var(&c.initial, "initial", 0, "Starting value of the investment.")
	f.Float64Var(&c.monthly, "monthly", 0, "Contribution added every month.")
	f.Float64Var(&c.annual, "return", 7, "Expected annual return, in percent.")
	f.Float64Var(&c.volatility, "volatility", 15, "Annual volatility, in percent.")
	f.Float64Var(&c.inflation, "inflation", 0, "Annual inflation used to deflate the bands, in percent.")
	f.IntVar(&c.years, "years", 10, "Investment horizon in years.")
	f.IntVar(&c.paths, "paths", 1000, "Number of simulated paths.")
}

func (c *simulateCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.years <= 0 {
		fmt.Fprintf(os.Stderr, "Error: -years must be positive, got %d\n", c.years)
		return subcommands.ExitUsageError
	}
	if c.paths <= 0 {
		fmt.Fprintf(os.Stderr, "Error: -paths must be positive, got %d\n", c.paths)
		return subcommands.ExitUsageError
	}

	res := fincalc.Simulate(fincalc.SimulationParams{
		InitialValue:        c.initial,
		MonthlyContribution: c.monthly,
		AnnualReturn:        fincalc.Percent(c.annual),
		AnnualVolatility:    fincalc.Percent(c.volatility),
		AnnualInflation:     fincalc.Percent(c.inflation),
		Years:               c.years,
		Paths:               c.paths,
	})

	printMarkdown(renderer.SimulationMarkdown(res, *currency))
	return subcommands.ExitSuccess
}
