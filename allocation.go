package fincalc

import (
	"fmt"

	"github.com/fincalc/fincalc/date"
)

// RiskLevel labels how aggressive a recommended allocation is.
type RiskLevel string

const (
	Conservative RiskLevel = "Conservative"
	Moderate     RiskLevel = "Moderate"
	Balanced     RiskLevel = "Balanced"
	Growth       RiskLevel = "Growth"
	Aggressive   RiskLevel = "Aggressive"
)

// sustainableWithdrawalRate is the ceiling under which a withdrawal rate is
// considered sustainable for a multi-decade retirement.
const sustainableWithdrawalRate Percent = 4.5

// Allocation is one asset-class slice of a recommended portfolio.
type Allocation struct {
	AssetClass  string
	Percentage  Percent
	Amount      float64
	Description string
}

// ETFPick maps one slice to a representative low-cost fund.
type ETFPick struct {
	Ticker       string
	Name         string
	Provider     string
	Percentage   Percent
	Amount       float64
	ExpenseRatio Percent
}

// Recommendation is a rule-based stock/bond/cash split with concrete fund
// picks and human-readable rationale.
type Recommendation struct {
	Allocations          []Allocation
	ETFs                 []ETFPick
	Rationale            []string
	Risk                 RiskLevel
	Age                  int
	YearsUntilWithdrawal int
	WithdrawalRate       Percent
	Sustainable          bool
}

// Recommend derives a portfolio allocation from the investor's age, the time
// left until withdrawals start, and the withdrawal rate implied by the
// requested annual withdrawal. See RecommendAsOf for the rules.
func Recommend(birthdate, firstWithdrawal date.Date, annualWithdrawal, portfolioAmount float64) *Recommendation {
	return RecommendAsOf(date.Today(), birthdate, firstWithdrawal, annualWithdrawal, portfolioAmount)
}

// RecommendAsOf is Recommend evaluated at an explicit reference date.
//
// The baseline split comes from a rule table keyed on years until the first
// withdrawal; once withdrawals have started the stock share follows the
// age-based rule max(110-age, 40). Withdrawal rates above 5% shift up to 10
// points out of stocks into bonds and cash, with a 30% stock floor. The final
// percentages are rounded to the nearest 5 with cash absorbing the rounding
// remainder, so they always sum to exactly 100.
func RecommendAsOf(on, birthdate, firstWithdrawal date.Date, annualWithdrawal, portfolioAmount float64) *Recommendation {
	age := on.YearsSince(birthdate)
	years := firstWithdrawal.YearsSince(on)
	switch {
	case firstWithdrawal.Before(on) && years == 0:
		years = -1 // already withdrawing, even if less than a year in
	case firstWithdrawal.After(on) && years == 0:
		years = 1 // withdrawals not started yet, even if less than a year out
	}

	var withdrawalRate Percent
	if portfolioAmount > 0 {
		withdrawalRate = Percent(annualWithdrawal / portfolioAmount * 100)
	}

	stocks, bonds, cash, risk, rationale := baseline(age, years)

	if withdrawalRate > 5 {
		shift := Percent(10)
		if stocks-shift < 30 {
			shift = stocks - 30
		}
		if shift > 0 {
			stocks -= shift
			bonds += shift / 2
			cash += shift / 2
		}
		rationale = append(rationale, fmt.Sprintf(
			"Your %s withdrawal rate is high, so up to 10 points were moved from stocks into bonds and cash for stability.", withdrawalRate))
	}

	// Round to the nearest 5 and let cash absorb the remainder so the three
	// slices always sum to 100.
	stocks = stocks.RoundTo(5)
	bonds = bonds.RoundTo(5)
	cash = 100 - stocks - bonds

	sustainable := withdrawalRate <= sustainableWithdrawalRate
	if !sustainable {
		rationale = append(rationale, fmt.Sprintf(
			"A withdrawal rate of %s exceeds the %s generally considered sustainable; consider lowering withdrawals or growing the portfolio.",
			withdrawalRate, sustainableWithdrawalRate))
	}

	usStocks := stocks * 0.7
	intlStocks := stocks * 0.3

	rec := &Recommendation{
		Rationale:            rationale,
		Risk:                 risk,
		Age:                  age,
		YearsUntilWithdrawal: years,
		WithdrawalRate:       withdrawalRate,
		Sustainable:          sustainable,
	}
	slice := func(class string, pct Percent, desc string) {
		rec.Allocations = append(rec.Allocations, Allocation{
			AssetClass:  class,
			Percentage:  pct,
			Amount:      portfolioAmount * pct.Fraction(),
			Description: desc,
		})
	}
	slice("US Stocks", usStocks, "Broad US equity market exposure")
	slice("International Stocks", intlStocks, "Developed and emerging markets outside the US")
	slice("Bonds", bonds, "Investment-grade bonds for stability and income")
	slice("Cash", cash, "Liquid reserve for near-term withdrawals")

	rec.ETFs = etfPicks(usStocks, intlStocks, bonds, cash, years, portfolioAmount)
	return rec
}

// baseline returns the pre-adjustment stock/bond/cash split for a withdrawal
// horizon, with its risk label and rationale.
func baseline(age, years int) (stocks, bonds, cash Percent, risk RiskLevel, rationale []string) {
	switch {
	case years > 20:
		return 90, 10, 0, Aggressive, []string{
			fmt.Sprintf("With %d years until withdrawals, the portfolio can ride out full market cycles, so it is weighted heavily toward stocks.", years),
		}
	case years > 15:
		return 80, 15, 5, Growth, []string{
			fmt.Sprintf("A %d-year horizon still favors growth, with a modest bond cushion.", years),
		}
	case years > 10:
		return 70, 25, 5, Balanced, []string{
			fmt.Sprintf("With %d years to go, the split balances growth against shorter recovery windows.", years),
		}
	case years > 5:
		return 60, 30, 10, Moderate, []string{
			fmt.Sprintf("Withdrawals begin in %d years, so bonds and cash take a larger share to dampen drawdowns.", years),
		}
	case years > 0:
		return 50, 40, 10, Conservative, []string{
			fmt.Sprintf("Withdrawals begin in only %d year(s); capital preservation outweighs growth.", years),
		}
	default:
		// Already withdrawing: age-based stock share, floored at 40%.
		stocks = Percent(110 - age)
		if stocks < 40 {
			stocks = 40
		}
		cash = 10
		bonds = 100 - stocks - cash
		return stocks, bonds, cash, Conservative, []string{
			fmt.Sprintf("Withdrawals are underway; the stock share follows the age-based rule max(110-%d, 40) to keep some growth while funding distributions.", age),
		}
	}
}

// etfPicks maps the final percentages to one representative low-cost fund per
// asset class. Horizons under five years split the bond slice 60/40 between
// the total bond market and short-term treasuries for added stability.
func etfPicks(usStocks, intlStocks, bonds, cash Percent, years int, portfolioAmount float64) []ETFPick {
	var picks []ETFPick
	pick := func(ticker, name, provider string, pct, expense Percent) {
		if pct <= 0 {
			return
		}
		picks = append(picks, ETFPick{
			Ticker:       ticker,
			Name:         name,
			Provider:     provider,
			Percentage:   pct,
			Amount:       portfolioAmount * pct.Fraction(),
			ExpenseRatio: expense,
		})
	}

	pick("VTI", "Vanguard Total Stock Market ETF", "Vanguard", usStocks, 0.03)
	pick("VXUS", "Vanguard Total International Stock ETF", "Vanguard", intlStocks, 0.08)
	if years < 5 {
		pick("BND", "Vanguard Total Bond Market ETF", "Vanguard", bonds*0.6, 0.03)
		pick("VGSH", "Vanguard Short-Term Treasury ETF", "Vanguard", bonds*0.4, 0.04)
	} else {
		pick("BND", "Vanguard Total Bond Market ETF", "Vanguard", bonds, 0.03)
	}
	pick("HYSA", "High-Yield Savings Account", "Any FDIC-insured bank", cash, 0)
	return picks
}
