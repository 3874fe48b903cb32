package fincalc

import (
	"fmt"
	"slices"
	"strings"

	"github.com/shopspring/decimal"
)

// Strategy selects the priority order in which debts receive extra payments.
type Strategy string

const (
	// Avalanche pays the highest interest rate first. It always costs the
	// least interest overall.
	Avalanche Strategy = "avalanche"
	// Snowball pays the smallest balance first, retiring individual debts
	// sooner at the price of some extra interest.
	Snowball Strategy = "snowball"
)

// ParseStrategy parses a strategy name.
func ParseStrategy(s string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "avalanche":
		return Avalanche, nil
	case "snowball":
		return Snowball, nil
	default:
		return "", fmt.Errorf("unknown strategy %q (want avalanche or snowball)", s)
	}
}

// maxPayoffMonths caps the simulation at 50 years. Economically unsustainable
// inputs (minimum payments below accruing interest) truncate there with a
// balance still owing in the last record, they do not error.
const maxPayoffMonths = 600

// PaymentRecord is one month of activity on a single debt.
type PaymentRecord struct {
	Month     int             // 1-based month index from the start of the plan
	Payment   decimal.Decimal // total paid this month
	Principal decimal.Decimal // Payment minus Interest
	Interest  decimal.Decimal // interest accrued this month
	Balance   decimal.Decimal // remaining balance after the payment
}

// DebtSchedule is the full amortization of one debt under a plan.
type DebtSchedule struct {
	Debt          Debt
	Payments      []PaymentRecord
	PayoffMonth   int // first month the balance reached zero; 0 if the ceiling was hit first
	TotalInterest decimal.Decimal
	TotalPaid     decimal.Decimal
}

// PayoffPlan is the complete result of a payoff simulation.
type PayoffPlan struct {
	Strategy      Strategy
	Schedules     []DebtSchedule // in priority order
	TotalMonths   int            // length of the longest schedule
	TotalInterest decimal.Decimal
	TotalPaid     decimal.Decimal
}

// StrategyComparison holds both plans for the same debt set side by side.
// The savings are snowball minus avalanche, so they are non-negative whenever
// avalanche wins.
type StrategyComparison struct {
	Avalanche       *PayoffPlan
	Snowball        *PayoffPlan
	InterestSavings decimal.Decimal
	TimeSavings     int // months
}

// Payoff simulates paying down a set of debts month by month.
//
// Every debt receives at least its own minimum payment while it still owes.
// The extra-payment pool (the caller's extra plus the freed minimums of debts
// already paid off in earlier months) goes to the first debt in priority
// order still owing; whatever a payment overshoots its debt's payoff by is
// returned to the pool and offered to the next debt in the same month.
func Payoff(debts []Debt, extraMonthlyPayment decimal.Decimal, strategy Strategy) *PayoffPlan {
	plan := &PayoffPlan{
		Strategy:      strategy,
		TotalInterest: decimal.Zero,
		TotalPaid:     decimal.Zero,
	}
	if len(debts) == 0 {
		return plan
	}

	ordered := prioritize(debts, strategy)
	plan.Schedules = make([]DebtSchedule, len(ordered))
	balances := make([]decimal.Decimal, len(ordered))
	for i, d := range ordered {
		plan.Schedules[i] = DebtSchedule{
			Debt:          d,
			TotalInterest: decimal.Zero,
			TotalPaid:     decimal.Zero,
		}
		balances[i] = d.Balance
	}

	for month := 1; month <= maxPayoffMonths; month++ {
		// Freed minimums of debts retired in earlier months join the pool.
		pool := extraMonthlyPayment
		owing := 0
		for i := range ordered {
			if balances[i].IsPositive() {
				owing++
			} else {
				pool = pool.Add(ordered[i].MinimumPayment)
			}
		}
		if owing == 0 {
			break
		}

		for i := range ordered {
			if !balances[i].IsPositive() {
				continue
			}
			interest := balances[i].Mul(decimal.NewFromFloat(float64(ordered[i].AnnualRate))).Div(decimal.NewFromInt(1200))

			// The first still-owing debt consumes the whole pool; an
			// overpayment flows back into it for the next debt this month.
			payment := ordered[i].MinimumPayment.Add(pool)
			pool = decimal.Zero

			due := balances[i].Add(interest)
			if payment.GreaterThan(due) {
				pool = payment.Sub(due)
				payment = due
			}

			balances[i] = due.Sub(payment)
			sched := &plan.Schedules[i]
			sched.Payments = append(sched.Payments, PaymentRecord{
				Month:     month,
				Payment:   payment,
				Principal: payment.Sub(interest),
				Interest:  interest,
				Balance:   balances[i],
			})
			sched.TotalInterest = sched.TotalInterest.Add(interest)
			sched.TotalPaid = sched.TotalPaid.Add(payment)
			if balances[i].IsZero() && sched.PayoffMonth == 0 {
				sched.PayoffMonth = month
			}
		}
	}

	for i := range plan.Schedules {
		s := &plan.Schedules[i]
		if n := len(s.Payments); n > plan.TotalMonths {
			plan.TotalMonths = n
		}
		plan.TotalInterest = plan.TotalInterest.Add(s.TotalInterest)
		plan.TotalPaid = plan.TotalPaid.Add(s.TotalPaid)
	}
	return plan
}

// CompareStrategies runs both strategies on the same debt set and reports how
// much interest and time the avalanche order saves over the snowball order.
func CompareStrategies(debts []Debt, extraMonthlyPayment decimal.Decimal) *StrategyComparison {
	avalanche := Payoff(debts, extraMonthlyPayment, Avalanche)
	snowball := Payoff(debts, extraMonthlyPayment, Snowball)
	return &StrategyComparison{
		Avalanche:       avalanche,
		Snowball:        snowball,
		InterestSavings: snowball.TotalInterest.Sub(avalanche.TotalInterest),
		TimeSavings:     snowball.TotalMonths - avalanche.TotalMonths,
	}
}

// prioritize returns a copy of debts in extra-payment priority order.
// Ordering is stable: ties keep the caller's order.
func prioritize(debts []Debt, strategy Strategy) []Debt {
	ordered := slices.Clone(debts)
	switch strategy {
	case Snowball:
		slices.SortStableFunc(ordered, func(a, b Debt) int {
			return a.Balance.Cmp(b.Balance)
		})
	default: // Avalanche
		slices.SortStableFunc(ordered, func(a, b Debt) int {
			switch {
			case a.AnnualRate > b.AnnualRate:
				return -1
			case a.AnnualRate < b.AnnualRate:
				return 1
			default:
				return 0
			}
		})
	}
	return ordered
}
