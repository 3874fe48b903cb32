// Package cmd implements the CLI application for the personal finance calculators.
package cmd

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/fincalc/fincalc"
	"github.com/fincalc/fincalc/date"
	"github.com/google/subcommands"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&projectCmd{}, "planning")
	c.Register(&simulateCmd{}, "planning")
	c.Register(&allocateCmd{}, "planning")

	c.Register(&payoffCmd{}, "debts")
	c.Register(&compareCmd{}, "debts")

	c.Register(&detectCmd{}, "transactions")
	c.Register(&forecastCmd{}, "transactions")

	c.Register(&topicCmd{}, "")
	c.Register(&AssistCmd{}, "")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var debtsFile = flag.String("debts-file", "debts.jsonl", "Path to the debts file (JSONL format)")
var transactionsFile = flag.String("transactions-file", "transactions.csv", "Path to the transaction history file (CSV format)")
var currency = flag.String("currency", "USD", "ISO 4217 currency code used to format amounts")

// DecodeDebts reads the debts from the app default debts file.
// A missing file is an empty list.
func DecodeDebts() ([]fincalc.Debt, error) {
	f, err := os.Open(*debtsFile)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("could not open debts file %q: %w", *debtsFile, err)
	}
	defer f.Close()

	debts, err := fincalc.ImportDebts(f)
	if err != nil {
		return nil, fmt.Errorf("could not decode debts file %q: %w", *debtsFile, err)
	}
	return debts, nil
}

// DecodeTransactions reads the transaction history from the app default
// transactions file.
func DecodeTransactions() ([]fincalc.Transaction, error) {
	f, err := os.Open(*transactionsFile)
	if err != nil {
		return nil, fmt.Errorf("could not open transactions file %q: %w", *transactionsFile, err)
	}
	defer f.Close()

	txs, err := fincalc.ImportTransactionsCSV(f)
	if err != nil {
		return nil, fmt.Errorf("could not decode transactions file %q: %w", *transactionsFile, err)
	}
	return txs, nil
}

// clipTransactions narrows txs to the -from/-to window when either flag is
// set. An unset boundary is open-ended.
func clipTransactions(txs []fincalc.Transaction, from, to string) ([]fincalc.Transaction, error) {
	if from == "" && to == "" {
		return txs, nil
	}
	lo := date.New(1, time.January, 1)
	hi := date.New(9999, time.December, 31)
	var err error
	if from != "" {
		if lo, err = date.Parse(from); err != nil {
			return nil, fmt.Errorf("invalid -from date: %w", err)
		}
	}
	if to != "" {
		if hi, err = date.Parse(to); err != nil {
			return nil, fmt.Errorf("invalid -to date: %w", err)
		}
	}
	return fincalc.TransactionsIn(txs, date.NewRange(lo, hi)), nil
}
