package renderer

import (
	"bytes"
	"fmt"

	"github.com/fincalc/fincalc"
	md "github.com/nao1215/markdown"
)

// SimulationMarkdown renders the yearly percentile bands and the final-value
// statistics of a Monte Carlo run.
func SimulationMarkdown(res *fincalc.SimulationResult, currency string) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Monte Carlo Simulation")

	doc.Table(md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
		Header:    []string{md.Bold("Median outcome"), money(res.MedianFinal, currency)},
		Rows: [][]string{
			{"Mean outcome", money(res.MeanFinal, currency)},
			{"Chance of doubling contributions", fmt.Sprintf("%.0f%%", res.ProbabilityOfDoubling*100)},
			{"Chance of finishing below contributions", fmt.Sprintf("%.0f%%", res.ProbabilityOfLoss*100)},
		},
	})

	doc.H2("Yearly Percentile Bands")
	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignRight, md.AlignRight, md.AlignRight, md.AlignRight, md.AlignRight, md.AlignRight, md.AlignRight,
		},
		Header: []string{"Year", "P10", "P25", "P50", "P75", "P90", "Contributed"},
	}
	for _, b := range res.Bands {
		table.Rows = append(table.Rows, []string{
			fmt.Sprintf("%d", b.Year),
			money(b.P10, currency),
			money(b.P25, currency),
			money(b.P50, currency),
			money(b.P75, currency),
			money(b.P90, currency),
			money(b.Contributions, currency),
		})
	}
	doc.Table(table)

	return doc.String()
}
