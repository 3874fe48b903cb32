package fincalc

import (
	"testing"
	"time"

	"github.com/fincalc/fincalc/date"
)

func TestTransactionsIn(t *testing.T) {
	txs := []Transaction{
		tx(date.New(2025, time.January, 1), "Rent", -1200),
		tx(date.New(2025, time.February, 1), "Rent", -1200),
		tx(date.New(2025, time.March, 1), "Rent", -1200),
		tx(date.New(2025, time.April, 1), "Rent", -1200),
	}

	r := date.NewRange(date.New(2025, time.February, 1), date.New(2025, time.March, 15))
	got := TransactionsIn(txs, r)
	if len(got) != 2 {
		t.Fatalf("got %d transactions, want 2", len(got))
	}
	// Boundaries are inclusive: February 1 is kept.
	if got[0].Date != date.New(2025, time.February, 1) {
		t.Errorf("first kept transaction dated %v, want 2025-02-01", got[0].Date)
	}
	if got[1].Date != date.New(2025, time.March, 1) {
		t.Errorf("second kept transaction dated %v, want 2025-03-01", got[1].Date)
	}
}

func TestTransactionsIn_SwappedBounds(t *testing.T) {
	txs := []Transaction{tx(date.New(2025, time.June, 10), "Gym", -40)}

	// NewRange swaps reversed boundaries.
	r := date.NewRange(date.New(2025, time.December, 31), date.New(2025, time.January, 1))
	if got := TransactionsIn(txs, r); len(got) != 1 {
		t.Errorf("got %d transactions, want 1", len(got))
	}
}

func TestTransactionsIn_Empty(t *testing.T) {
	r := date.NewRange(date.New(2025, time.January, 1), date.New(2025, time.December, 31))
	if got := TransactionsIn(nil, r); len(got) != 0 {
		t.Errorf("got %d transactions, want 0", len(got))
	}
}
