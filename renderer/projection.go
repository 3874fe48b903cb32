package renderer

import (
	"bytes"

	"github.com/fincalc/fincalc"
	md "github.com/nao1215/markdown"
)

// ProjectionMarkdown renders a deterministic investment projection.
func ProjectionMarkdown(p fincalc.Projection, currency string) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Investment Projection")

	doc.Table(md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
		Header:    []string{md.Bold("Future value"), money(p.FutureValue, currency)},
		Rows: [][]string{
			{"Total contributions", money(p.TotalContributions, currency)},
			{"Investment gains", money(p.InvestmentGains, currency)},
			{"Real value (today's money)", money(p.RealValue, currency)},
		},
	})

	return doc.String()
}
