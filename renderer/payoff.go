package renderer

import (
	"bytes"
	"fmt"

	"github.com/fincalc/fincalc"
	md "github.com/nao1215/markdown"
)

// PayoffMarkdown renders a payoff plan: headline totals, then one
// amortization summary row per debt in priority order.
func PayoffMarkdown(plan *fincalc.PayoffPlan, currency string) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Debt Payoff Plan (%s)", plan.Strategy))

	doc.Table(md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
		Header:    []string{md.Bold("Debt-free in"), months(plan.TotalMonths)},
		Rows: [][]string{
			{"Total paid", fincalc.M(plan.TotalPaid, currency).String()},
			{"Total interest", fincalc.M(plan.TotalInterest, currency).String()},
		},
	})

	if len(plan.Schedules) > 0 {
		doc.H2("Per-Debt Schedule")
		table := md.TableSet{
			Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight, md.AlignRight, md.AlignRight, md.AlignRight},
			Header:    []string{"Debt", "Rate", "Paid off in", "Interest", "Total paid"},
		}
		for _, s := range plan.Schedules {
			paidOff := "not within 50y"
			if s.PayoffMonth > 0 {
				paidOff = months(s.PayoffMonth)
			}
			table.Rows = append(table.Rows, []string{
				s.Debt.Name,
				s.Debt.AnnualRate.String(),
				paidOff,
				fincalc.M(s.TotalInterest, currency).String(),
				fincalc.M(s.TotalPaid, currency).String(),
			})
		}
		doc.Table(table)
	}

	return doc.String()
}

// ComparisonMarkdown renders both strategies side by side with the savings
// the avalanche order brings.
func ComparisonMarkdown(cmp *fincalc.StrategyComparison, currency string) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Avalanche vs. Snowball")

	doc.Table(md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight, md.AlignRight},
		Header:    []string{"", "Avalanche", "Snowball"},
		Rows: [][]string{
			{"Debt-free in", months(cmp.Avalanche.TotalMonths), months(cmp.Snowball.TotalMonths)},
			{"Total interest", fincalc.M(cmp.Avalanche.TotalInterest, currency).String(), fincalc.M(cmp.Snowball.TotalInterest, currency).String()},
			{"Total paid", fincalc.M(cmp.Avalanche.TotalPaid, currency).String(), fincalc.M(cmp.Snowball.TotalPaid, currency).String()},
		},
	})

	doc.H2("Avalanche Savings")
	doc.BulletList(
		fmt.Sprintf("Interest saved: %s", fincalc.M(cmp.InterestSavings, currency).String()),
		fmt.Sprintf("Time saved: %s", months(cmp.TimeSavings)),
	)

	return doc.String()
}
