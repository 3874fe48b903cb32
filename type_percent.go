package fincalc

import (
	"fmt"
	"math"
)

// Percent is a rate expressed in percentage points: Percent(7) is 7%.
type Percent float64

// Fraction returns the rate as a decimal fraction: Percent(7).Fraction() == 0.07.
func (p Percent) Fraction() float64 { return float64(p) / 100 }

// Monthly returns the monthly rate for an annual rate, as a decimal fraction.
func (p Percent) Monthly() float64 { return float64(p) / 100 / 12 }

func (p Percent) Equal(q Percent) bool {
	// it has to be compared with some precision
	const precision = 0.0001
	return math.Abs(float64(p-q)) < precision
}

// RoundTo returns the percentage rounded to the nearest multiple of step.
func (p Percent) RoundTo(step float64) Percent {
	return Percent(math.Round(float64(p)/step) * step)
}

func (p Percent) String() string {
	return fmt.Sprintf("%.2f%%", float64(p))
}

func (p Percent) SignedString() string {
	res := fmt.Sprintf("%+.2f%%", float64(p))
	if res == "+0.00%" {
		return "-"
	}
	return res
}
