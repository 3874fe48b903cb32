package renderer

import (
	"bytes"
	"fmt"

	"github.com/fincalc/fincalc"
	md "github.com/nao1215/markdown"
)

// PatternsMarkdown renders detected recurring patterns, highest confidence
// first (the order DetectPatterns returns).
func PatternsMarkdown(patterns []fincalc.Pattern, currency string) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Recurring Transactions")

	if len(patterns) == 0 {
		doc.PlainText("No recurring patterns detected.")
		return doc.String()
	}

	table := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignLeft, md.AlignRight, md.AlignRight, md.AlignRight, md.AlignLeft},
		Header:    []string{"Description", "Frequency", "Average", "Seen", "Confidence", "Next expected"},
	}
	for _, p := range patterns {
		table.Rows = append(table.Rows, []string{
			p.Key,
			p.Frequency.String(),
			fincalc.M(p.AverageAmount, currency).String(),
			fmt.Sprintf("%d×", len(p.Transactions)),
			fmt.Sprintf("%.0f%%", p.Confidence*100),
			p.NextOccurrence.String(),
		})
	}
	doc.Table(table)

	return doc.String()
}

// ForecastMarkdown renders projected future transactions as a chronological
// cash-flow preview per pattern.
func ForecastMarkdown(projected []fincalc.Transaction, currency string) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Projected Transactions")

	if len(projected) == 0 {
		doc.PlainText("Nothing to project.")
		return doc.String()
	}

	table := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignLeft, md.AlignRight},
		Header:    []string{"Date", "Description", "Amount"},
	}
	for _, tx := range projected {
		table.Rows = append(table.Rows, []string{
			tx.Date.String(),
			tx.Description,
			fincalc.M(tx.Amount, currency).String(),
		})
	}
	doc.Table(table)

	return doc.String()
}
