package renderer

import (
	"strings"
	"testing"
	"time"

	"github.com/fincalc/fincalc"
	"github.com/fincalc/fincalc/date"
	"github.com/shopspring/decimal"
)

func TestPayoffMarkdown(t *testing.T) {
	debts := []fincalc.Debt{
		{ID: "cc", Name: "Credit card", Balance: decimal.NewFromInt(5000), AnnualRate: 22, MinimumPayment: decimal.NewFromInt(150)},
		{ID: "car", Name: "Car loan", Balance: decimal.NewFromInt(12000), AnnualRate: 6.5, MinimumPayment: decimal.NewFromInt(250)},
	}
	plan := fincalc.Payoff(debts, decimal.NewFromInt(100), fincalc.Avalanche)
	out := PayoffMarkdown(plan, "USD")

	for _, want := range []string{"Debt Payoff Plan (avalanche)", "Credit card", "Car loan", "22.00%", "Per-Debt Schedule"} {
		if !strings.Contains(out, want) {
			t.Errorf("PayoffMarkdown missing %q in:\n%s", want, out)
		}
	}
}

func TestComparisonMarkdown(t *testing.T) {
	debts := []fincalc.Debt{
		{ID: "a", Name: "A", Balance: decimal.NewFromInt(3000), AnnualRate: 20, MinimumPayment: decimal.NewFromInt(100)},
		{ID: "b", Name: "B", Balance: decimal.NewFromInt(1000), AnnualRate: 5, MinimumPayment: decimal.NewFromInt(50)},
	}
	out := ComparisonMarkdown(fincalc.CompareStrategies(debts, decimal.NewFromInt(50)), "USD")

	for _, want := range []string{"Avalanche vs. Snowball", "Interest saved", "Time saved"} {
		if !strings.Contains(out, want) {
			t.Errorf("ComparisonMarkdown missing %q in:\n%s", want, out)
		}
	}
}

func TestSimulationMarkdown(t *testing.T) {
	res := fincalc.Simulate(fincalc.SimulationParams{
		InitialValue:        10000,
		MonthlyContribution: 100,
		AnnualReturn:        7,
		AnnualVolatility:    0,
		Years:               3,
		Paths:               1,
	})
	out := SimulationMarkdown(res, "USD")

	for _, want := range []string{"Monte Carlo Simulation", "Yearly Percentile Bands", "P10", "P90", "Median outcome"} {
		if !strings.Contains(out, want) {
			t.Errorf("SimulationMarkdown missing %q in:\n%s", want, out)
		}
	}
	// Three simulated years, three band rows.
	if got := strings.Count(out, "| 1 |") + strings.Count(out, "| 2 |") + strings.Count(out, "| 3 |"); got < 3 {
		t.Errorf("expected a row per year in:\n%s", out)
	}
}

func TestProjectionMarkdown(t *testing.T) {
	out := ProjectionMarkdown(fincalc.Project(100000, 500, 7, 30, 3), "USD")
	for _, want := range []string{"Investment Projection", "Future value", "Real value"} {
		if !strings.Contains(out, want) {
			t.Errorf("ProjectionMarkdown missing %q in:\n%s", want, out)
		}
	}
}

func TestRecommendationMarkdown(t *testing.T) {
	rec := fincalc.RecommendAsOf(date.New(2025, time.June, 1),
		date.New(1990, time.January, 1),
		date.New(2050, time.January, 1),
		20000, 500000)
	out := RecommendationMarkdown(rec, "USD")

	for _, want := range []string{"Portfolio Allocation", "US Stocks", "VTI", "Fund Picks", "Why"} {
		if !strings.Contains(out, want) {
			t.Errorf("RecommendationMarkdown missing %q in:\n%s", want, out)
		}
	}
}

func TestPatternsMarkdown(t *testing.T) {
	patterns := []fincalc.Pattern{{
		Key:            "netflixcom",
		Frequency:      date.Monthly,
		AverageAmount:  decimal.NewFromFloat(-15.99),
		Confidence:     0.95,
		NextOccurrence: date.New(2025, time.May, 15),
		Transactions:   make([]fincalc.Transaction, 4),
	}}
	out := PatternsMarkdown(patterns, "USD")
	for _, want := range []string{"netflixcom", "monthly", "95%", "2025-05-15"} {
		if !strings.Contains(out, want) {
			t.Errorf("PatternsMarkdown missing %q in:\n%s", want, out)
		}
	}

	if out := PatternsMarkdown(nil, "USD"); !strings.Contains(out, "No recurring patterns") {
		t.Errorf("empty pattern list should say so, got:\n%s", out)
	}
}

func TestForecastMarkdown(t *testing.T) {
	projected := []fincalc.Transaction{
		{Date: date.New(2025, time.July, 1), Description: "rent payment (projected)", Amount: decimal.NewFromInt(-1200)},
	}
	out := ForecastMarkdown(projected, "USD")
	if !strings.Contains(out, "rent payment (projected)") {
		t.Errorf("ForecastMarkdown missing projected row in:\n%s", out)
	}
}
