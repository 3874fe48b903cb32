package fincalc

import (
	"math"
	"slices"
	"strings"
	"unicode"

	"github.com/fincalc/fincalc/date"
	"github.com/shopspring/decimal"
)

// Pattern is a recurring cash flow detected in a transaction history.
//
// Patterns are recomputed from scratch on every detection call and never
// persisted here; the caller may cache them.
type Pattern struct {
	// Key is the normalized description the group formed around.
	Key string
	// Frequency is the detected cadence.
	Frequency date.Period
	// AverageAmount is the signed mean amount of the matched transactions,
	// so income and expense patterns are both represented.
	AverageAmount decimal.Decimal
	// Transactions are the matched transactions, chronological.
	Transactions []Transaction
	// Confidence in [0,1] measures how regular the intervals are.
	Confidence float64
	// NextOccurrence is the last matched date advanced by one period.
	NextOccurrence date.Date
}

const (
	similarityThreshold = 0.6
	minGroupSize        = 3
	minConfidence       = 0.5
	projectedSuffix     = " (projected)"
)

// DetectPatterns finds recurring cash flows in a transaction list.
//
// Transactions are grouped by fuzzy description similarity; a group of at
// least three whose consecutive day-gaps match a known cadence within
// tolerance becomes a pattern. Groups that fail any statistical test are
// silently dropped. The result is sorted by confidence, highest first.
func DetectPatterns(transactions []Transaction) []Pattern {
	type group struct {
		key   string
		words map[string]bool
		txs   []Transaction
	}
	var groups []*group

	for _, tx := range transactions {
		key := normalizeDescription(tx.Description)
		if key == "" {
			// Purely numeric or symbolic descriptions can never recur by name.
			continue
		}
		words := wordSet(key)

		var matched *group
		for _, g := range groups {
			if wordSimilarity(words, g.words) > similarityThreshold {
				matched = g
				break
			}
		}
		if matched == nil {
			matched = &group{key: key, words: words}
			groups = append(groups, matched)
		}
		matched.txs = append(matched.txs, tx)
	}

	var patterns []Pattern
	for _, g := range groups {
		if len(g.txs) < minGroupSize {
			continue
		}
		slices.SortStableFunc(g.txs, func(a, b Transaction) int {
			switch {
			case a.Date.Before(b.Date):
				return -1
			case a.Date.After(b.Date):
				return 1
			default:
				return 0
			}
		})

		gaps := make([]float64, 0, len(g.txs)-1)
		for i := 1; i < len(g.txs); i++ {
			gaps = append(gaps, float64(g.txs[i].Date.Sub(g.txs[i-1].Date)))
		}
		mean := meanOf(gaps)
		if mean == 0 || math.IsNaN(mean) || math.IsInf(mean, 0) {
			// Same-day duplicates collapse the mean gap to zero.
			continue
		}
		freq, ok := classifyFrequency(mean)
		if !ok {
			continue
		}
		confidence := 1 - stddevOf(gaps, mean)/mean
		if math.IsNaN(confidence) || math.IsInf(confidence, 0) {
			continue
		}
		if confidence < 0 {
			confidence = 0
		}
		if confidence < minConfidence {
			continue
		}

		sum := decimal.Zero
		for _, tx := range g.txs {
			sum = sum.Add(tx.Amount)
		}
		last := g.txs[len(g.txs)-1]
		patterns = append(patterns, Pattern{
			Key:            g.key,
			Frequency:      freq,
			AverageAmount:  sum.Div(decimal.NewFromInt(int64(len(g.txs)))),
			Transactions:   g.txs,
			Confidence:     confidence,
			NextOccurrence: freq.Next(last.Date),
		})
	}

	slices.SortStableFunc(patterns, func(a, b Pattern) int {
		switch {
		case a.Confidence > b.Confidence:
			return -1
		case a.Confidence < b.Confidence:
			return 1
		default:
			return 0
		}
	})
	return patterns
}

// ProjectFuture emits the synthetic future transactions of each pattern,
// starting at its next occurrence and stepping one period at a time, until
// the date passes today plus monthsAhead calendar months. Each pattern's
// emissions are chronological; across patterns the order is unspecified.
func ProjectFuture(patterns []Pattern, monthsAhead int) []Transaction {
	horizon := date.Today().AddMonth(monthsAhead)
	var projected []Transaction
	for _, p := range patterns {
		var account, category string
		if n := len(p.Transactions); n > 0 {
			account = p.Transactions[n-1].AccountID
			category = p.Transactions[n-1].CategoryID
		}
		for d := p.NextOccurrence; !d.After(horizon); d = p.Frequency.Next(d) {
			projected = append(projected, Transaction{
				Date:        d,
				Description: p.Key + projectedSuffix,
				Amount:      p.AverageAmount,
				AccountID:   account,
				CategoryID:  category,
			})
		}
	}
	return projected
}

// normalizeDescription lowercases a description and strips everything but
// letters and spaces, collapsing runs of whitespace. "NETFLIX.COM 12/01" and
// "Netflix.com 01/01" both normalize to "netflixcom".
func normalizeDescription(desc string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(desc) {
		switch {
		case unicode.IsLetter(r):
			b.WriteRune(r)
		case unicode.IsSpace(r):
			b.WriteRune(' ')
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}

func wordSet(s string) map[string]bool {
	set := make(map[string]bool)
	for _, w := range strings.Fields(s) {
		set[w] = true
	}
	return set
}

// wordSimilarity is the Jaccard index of two word sets. Empty sets are never
// similar to anything.
func wordSimilarity(a, b map[string]bool) float64 {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}
	intersection := 0
	for w := range a {
		if b[w] {
			intersection++
		}
	}
	union := len(a) + len(b) - intersection
	return float64(intersection) / float64(union)
}

// classifyFrequency maps a mean day-gap to a cadence using proportional
// tolerances: 7±2, 14±3, 30±5, 90±15, 365±30 days.
func classifyFrequency(meanGap float64) (date.Period, bool) {
	for _, c := range []struct {
		period    date.Period
		tolerance float64
	}{
		{date.Weekly, 2},
		{date.Biweekly, 3},
		{date.Monthly, 5},
		{date.Quarterly, 15},
		{date.Yearly, 30},
	} {
		if math.Abs(meanGap-c.period.Days()) <= c.tolerance {
			return c.period, true
		}
	}
	return 0, false
}

func meanOf(values []float64) float64 {
	if len(values) == 0 {
		return math.NaN()
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

func stddevOf(values []float64, mean float64) float64 {
	if len(values) == 0 {
		return 0
	}
	var sq float64
	for _, v := range values {
		sq += (v - mean) * (v - mean)
	}
	return math.Sqrt(sq / float64(len(values)))
}
