package renderer

import (
	"bytes"
	"fmt"

	"github.com/fincalc/fincalc"
	md "github.com/nao1215/markdown"
)

// RecommendationMarkdown renders an allocation recommendation: the asset
// split, the fund picks, and the rationale.
func RecommendationMarkdown(rec *fincalc.Recommendation, currency string) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Portfolio Allocation: %s", rec.Risk))

	sustainability := "sustainable"
	if !rec.Sustainable {
		sustainability = "NOT sustainable"
	}
	doc.PlainText(fmt.Sprintf("Withdrawal rate %s (%s).", rec.WithdrawalRate, sustainability))

	doc.H2("Asset Allocation")
	alloc := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight, md.AlignRight},
		Header:    []string{"Asset class", "Share", "Amount"},
	}
	for _, a := range rec.Allocations {
		alloc.Rows = append(alloc.Rows, []string{
			a.AssetClass,
			a.Percentage.String(),
			money(a.Amount, currency),
		})
	}
	doc.Table(alloc)

	doc.H2("Fund Picks")
	funds := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignLeft, md.AlignRight, md.AlignRight, md.AlignRight},
		Header:    []string{"Ticker", "Fund", "Share", "Amount", "Expense ratio"},
	}
	for _, e := range rec.ETFs {
		funds.Rows = append(funds.Rows, []string{
			e.Ticker,
			e.Name,
			e.Percentage.String(),
			money(e.Amount, currency),
			e.ExpenseRatio.String(),
		})
	}
	doc.Table(funds)

	if len(rec.Rationale) > 0 {
		doc.H2("Why")
		doc.BulletList(rec.Rationale...)
	}

	return doc.String()
}
