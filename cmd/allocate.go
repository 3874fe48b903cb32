package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/fincalc/fincalc"
	"github.com/fincalc/fincalc/date"
	"github.com/fincalc/fincalc/renderer"
	"github.com/google/subcommands"
)

// allocateCmd holds the flags for the 'allocate' subcommand.
type allocateCmd struct {
	birthdate  string
	withdrawal string
	annual     float64
	portfolio  float64
}

func (*allocateCmd) Name() string     { return "allocate" }
func (*allocateCmd) Synopsis() string { return "recommend a target portfolio allocation" }
func (*allocateCmd) Usage() string {
	return `fcs allocate -birthdate <date> -withdrawal-date <date> [-withdrawal <amount>] [-portfolio <amount>]

  Recommends a stock/bond/cash split from the years until first withdrawal,
  names low-cost funds for each slice, and warns when the planned withdrawal
  rate looks unsustainable.

Usage Examples:
$ fcs allocate -birthdate 1985-04-12 -withdrawal-date 2050-01-01 -withdrawal 40000 -portfolio 350000

`
}

func (c *allocateCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.birthdate, "birthdate", "", "Your birthdate (YYYY-MM-DD).")
	f.StringVar(&c.withdrawal, "withdrawal-date", "", "Date you plan to start withdrawing (YYYY-MM-DD).")
	f.Float64Var(&c.annual, "withdrawal", 0, "Planned yearly withdrawal amount.")
	f.Float64Var(&c.portfolio, "portfolio", 0, "Current portfolio value.")
}

func (c *allocateCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	birthdate, err := date.Parse(c.birthdate)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing -birthdate: %v\n", err)
		return subcommands.ExitUsageError
	}
	firstWithdrawal, err := date.Parse(c.withdrawal)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing -withdrawal-date: %v\n", err)
		return subcommands.ExitUsageError
	}

	rec := fincalc.Recommend(birthdate, firstWithdrawal, c.annual, c.portfolio)

	printMarkdown(renderer.RecommendationMarkdown(rec, *currency))
	return subcommands.ExitSuccess
}
