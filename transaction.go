package fincalc

import (
	"github.com/fincalc/fincalc/date"
	"github.com/shopspring/decimal"
)

// Transaction is a single dated cash movement on an account.
//
// Sign convention: a positive amount is an inflow (income, refund), a
// negative one an outflow (purchase, bill). The detector relies on this to
// treat income and expense patterns uniformly.
type Transaction struct {
	Date        date.Date       `json:"date"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	AccountID   string          `json:"accountId,omitempty"`
	CategoryID  string          `json:"categoryId,omitempty"`
}

// TransactionsIn returns the transactions dated within r, in input order.
func TransactionsIn(txs []Transaction, r date.Range) []Transaction {
	var in []Transaction
	for _, t := range txs {
		if r.Contains(t.Date) {
			in = append(in, t)
		}
	}
	return in
}

// Debt is one liability in a payoff plan. Balance is the absolute value of
// what is owed (always >= 0), not a signed account balance.
type Debt struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	Balance        decimal.Decimal `json:"balance"`
	AnnualRate     Percent         `json:"annualRatePercent"`
	MinimumPayment decimal.Decimal `json:"minimumMonthlyPayment"`
}
