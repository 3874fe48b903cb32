package fincalc

import (
	"math"
	"math/rand"
	"sort"
	"time"
)

// SimulationParams are the inputs of a Monte Carlo portfolio simulation.
type SimulationParams struct {
	InitialValue        float64
	MonthlyContribution float64
	AnnualReturn        Percent
	AnnualVolatility    Percent
	AnnualInflation     Percent
	Years               int
	Paths               int // number of independent simulated paths

	// Rand produces the next uniform pseudo-random number in [0,1).
	// A nil Rand selects a time-seeded source; tests inject a seeded one
	// for reproducible statistics.
	Rand func() float64
}

// Band holds the cross-path percentiles of portfolio value at the end of one
// simulated year, together with the deterministic contributions to date.
type Band struct {
	Year          int
	P10           float64
	P25           float64
	P50           float64
	P75           float64
	P90           float64
	Contributions float64
}

// SimulationResult is the outcome of a Monte Carlo simulation.
//
// When an inflation rate is set, the yearly bands are deflated to today's
// purchasing power, but the final-value statistics and the doubling/loss
// probabilities stay nominal. That asymmetry is deliberate and callers
// comparing the two must account for it.
type SimulationResult struct {
	Bands             []Band    // one per simulated year, in order
	SortedFinalValues []float64 // nominal final values of every path, ascending
	MedianFinal       float64
	MeanFinal         float64

	// ProbabilityOfDoubling is the fraction of paths whose nominal final
	// value reached at least twice the total contributions;
	// ProbabilityOfLoss the fraction that finished below them.
	ProbabilityOfDoubling float64
	ProbabilityOfLoss     float64
}

// Simulate runs a log-normal monthly-return Monte Carlo simulation of a
// portfolio receiving fixed monthly contributions.
//
// The log-normal parameters are derived once from the annual inputs with a
// drift correction of half the variance, so the arithmetic-mean expectation
// of the simulated returns matches the requested annual return.
//
// With zero volatility the simulation collapses to a single deterministic
// compound path and every percentile of a band carries the same value.
func Simulate(p SimulationParams) *SimulationResult {
	uniform := p.Rand
	if uniform == nil {
		uniform = rand.New(rand.NewSource(time.Now().UnixNano())).Float64
	}

	if p.AnnualVolatility == 0 {
		return simulateDeterministic(p)
	}

	vol := p.AnnualVolatility.Fraction()
	annualLogMean := math.Log(1+p.AnnualReturn.Fraction()) - vol*vol/2
	monthlyLogMean := annualLogMean / 12
	monthlyLogStd := vol / math.Sqrt(12)

	// values[y][i] is path i's balance at the end of year y+1.
	values := make([][]float64, p.Years)
	for y := range values {
		values[y] = make([]float64, p.Paths)
	}
	finals := make([]float64, p.Paths)

	for i := 0; i < p.Paths; i++ {
		balance := p.InitialValue
		for y := 0; y < p.Years; y++ {
			for m := 0; m < 12; m++ {
				z := normalVariate(uniform)
				monthlyReturn := math.Exp(monthlyLogMean+monthlyLogStd*z) - 1
				balance = balance*(1+monthlyReturn) + p.MonthlyContribution
				if balance < 0 {
					balance = 0
				}
			}
			values[y][i] = balance
		}
		finals[i] = balance
	}

	res := &SimulationResult{Bands: make([]Band, 0, p.Years)}
	for y := 0; y < p.Years; y++ {
		sort.Float64s(values[y])
		res.Bands = append(res.Bands, Band{
			Year:          y + 1,
			P10:           percentile(values[y], 10),
			P25:           percentile(values[y], 25),
			P50:           percentile(values[y], 50),
			P75:           percentile(values[y], 75),
			P90:           percentile(values[y], 90),
			Contributions: p.InitialValue + p.MonthlyContribution*12*float64(y+1),
		})
	}
	deflateBands(res.Bands, p.AnnualInflation)

	sort.Float64s(finals)
	res.SortedFinalValues = finals
	res.MedianFinal = percentile(finals, 50)
	res.finalStats(p)
	return res
}

// simulateDeterministic is the zero-volatility branch: one compound path, the
// same math as Project applied month by month.
func simulateDeterministic(p SimulationParams) *SimulationResult {
	r := p.AnnualReturn.Monthly()
	res := &SimulationResult{Bands: make([]Band, 0, p.Years)}

	balance := p.InitialValue
	for y := 1; y <= p.Years; y++ {
		for m := 0; m < 12; m++ {
			balance = balance*(1+r) + p.MonthlyContribution
		}
		res.Bands = append(res.Bands, Band{
			Year:          y,
			P10:           balance,
			P25:           balance,
			P50:           balance,
			P75:           balance,
			P90:           balance,
			Contributions: p.InitialValue + p.MonthlyContribution*12*float64(y),
		})
	}
	deflateBands(res.Bands, p.AnnualInflation)

	res.SortedFinalValues = []float64{balance}
	res.MedianFinal = balance
	res.finalStats(p)
	return res
}

// finalStats fills the mean and the doubling/loss probabilities from the
// sorted nominal final values.
func (res *SimulationResult) finalStats(p SimulationParams) {
	totalContributions := p.InitialValue + p.MonthlyContribution*12*float64(p.Years)

	var sum float64
	var doubled, lost int
	for _, v := range res.SortedFinalValues {
		sum += v
		if v >= 2*totalContributions {
			doubled++
		}
		if v < totalContributions {
			lost++
		}
	}
	n := float64(len(res.SortedFinalValues))
	res.MeanFinal = sum / n
	res.ProbabilityOfDoubling = float64(doubled) / n
	res.ProbabilityOfLoss = float64(lost) / n
}

// deflateBands divides every band value of year y by (1+inflation)^y,
// converting the nominal bands to today's purchasing power.
func deflateBands(bands []Band, inflation Percent) {
	if inflation <= 0 {
		return
	}
	for i := range bands {
		deflator := math.Pow(1+inflation.Fraction(), float64(bands[i].Year))
		bands[i].P10 /= deflator
		bands[i].P25 /= deflator
		bands[i].P50 /= deflator
		bands[i].P75 /= deflator
		bands[i].P90 /= deflator
		bands[i].Contributions /= deflator
	}
}

// normalVariate draws a standard normal value from two uniform draws with the
// Box-Muller transform. The first draw is repeated while it is exactly zero,
// since log(0) is undefined.
func normalVariate(uniform func() float64) float64 {
	u1 := uniform()
	for u1 == 0 {
		u1 = uniform()
	}
	u2 := uniform()
	return math.Sqrt(-2*math.Log(u1)) * math.Cos(2*math.Pi*u2)
}

// percentile computes the p-th percentile of an ascending slice using linear
// interpolation between the surrounding order statistics.
func percentile(sorted []float64, p float64) float64 {
	if len(sorted) == 0 {
		return 0
	}
	rank := p / 100 * float64(len(sorted)-1)
	lo := int(math.Floor(rank))
	hi := int(math.Ceil(rank))
	if lo == hi {
		return sorted[lo]
	}
	frac := rank - float64(lo)
	return sorted[lo] + (sorted[hi]-sorted[lo])*frac
}
