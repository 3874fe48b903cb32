package fincalc

import "math"

// Projection is the closed-form result of growing a portfolio with monthly
// compounding and monthly contributions.
type Projection struct {
	FutureValue        float64 // nominal value at the horizon
	TotalContributions float64 // initial value plus every monthly contribution
	InvestmentGains    float64 // FutureValue - TotalContributions
	RealValue          float64 // FutureValue deflated to today's purchasing power
}

// Project computes the future value of an initial amount plus a fixed monthly
// contribution, compounding monthly at the given annual return, over the
// given number of years. RealValue deflates the result by the annual
// inflation rate.
//
// A zero return rate is the linear limit of the annuity formula, not an
// error: the future value is simply the sum of all contributions.
func Project(initialValue, monthlyContribution float64, annualReturn Percent, years int, inflation Percent) Projection {
	r := annualReturn.Monthly()
	months := years * 12

	var futureValue float64
	if r == 0 {
		futureValue = initialValue + monthlyContribution*float64(months)
	} else {
		growth := math.Pow(1+r, float64(months))
		futureValue = initialValue*growth + monthlyContribution*(growth-1)/r
	}

	totalContributions := initialValue + monthlyContribution*float64(months)

	realValue := futureValue
	if inflation != 0 {
		realValue = futureValue / math.Pow(1+inflation.Fraction(), float64(years))
	}

	return Projection{
		FutureValue:        futureValue,
		TotalContributions: totalContributions,
		InvestmentGains:    futureValue - totalContributions,
		RealValue:          realValue,
	}
}
