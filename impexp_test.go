package fincalc

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/fincalc/fincalc/date"
	"github.com/shopspring/decimal"
)

func TestImportTransactionsCSV(t *testing.T) {
	in := `date,description,amount,accountId
2025-01-15,NETFLIX.COM,-15.99,checking
2025-02-01,ACME Corp Payroll,3200.00,checking
`
	txs, err := ImportTransactionsCSV(strings.NewReader(in))
	if err != nil {
		t.Fatalf("ImportTransactionsCSV() error = %v", err)
	}
	if len(txs) != 2 {
		t.Fatalf("got %d transactions, want 2", len(txs))
	}
	if txs[0].Date != date.New(2025, time.January, 15) {
		t.Errorf("date = %v", txs[0].Date)
	}
	if !txs[0].Amount.Equal(decimal.NewFromFloat(-15.99)) {
		t.Errorf("amount = %s, want -15.99", txs[0].Amount)
	}
	if txs[1].AccountID != "checking" {
		t.Errorf("accountId = %q", txs[1].AccountID)
	}
}

func TestImportTransactionsCSV_ColumnOrderAndCase(t *testing.T) {
	in := `Amount,Date,Description
-42.50,2025-03-01,Gym membership
`
	txs, err := ImportTransactionsCSV(strings.NewReader(in))
	if err != nil {
		t.Fatalf("ImportTransactionsCSV() error = %v", err)
	}
	if txs[0].Description != "Gym membership" {
		t.Errorf("description = %q", txs[0].Description)
	}
}

func TestImportTransactionsCSV_MissingColumn(t *testing.T) {
	in := "date,description\n2025-01-01,no amount here\n"
	if _, err := ImportTransactionsCSV(strings.NewReader(in)); err == nil {
		t.Error("expected an error for a header without an amount column")
	}
}

func TestTransactionsCSV_RoundTrip(t *testing.T) {
	txs := []Transaction{
		{Date: date.New(2025, time.April, 2), Description: "Rent, April", Amount: decimal.NewFromInt(-1200), AccountID: "checking"},
		{Date: date.New(2025, time.April, 3), Description: `He said "hi"`, Amount: decimal.NewFromFloat(12.5)},
	}
	var buf bytes.Buffer
	if err := ExportTransactionsCSV(&buf, txs); err != nil {
		t.Fatalf("ExportTransactionsCSV() error = %v", err)
	}
	back, err := ImportTransactionsCSV(&buf)
	if err != nil {
		t.Fatalf("ImportTransactionsCSV() error = %v", err)
	}
	if len(back) != len(txs) {
		t.Fatalf("round trip lost transactions: %d != %d", len(back), len(txs))
	}
	for i := range txs {
		if back[i].Date != txs[i].Date || back[i].Description != txs[i].Description || !back[i].Amount.Equal(txs[i].Amount) {
			t.Errorf("round trip mismatch at %d: %+v != %+v", i, back[i], txs[i])
		}
	}
}

func TestImportTransactionsJSON(t *testing.T) {
	doc := `{
	  "meta": {"source": "somebank"},
	  "transactions": [
	    {"date": "2025-05-01", "description": "Grocery store", "amount": -82.13, "accountId": "main"},
	    {"date": "2025-05-02", "description": "Refund", "amount": "19.99"}
	  ]
	}`
	txs, err := ImportTransactionsJSON(strings.NewReader(doc), "$.transactions[*]")
	if err != nil {
		t.Fatalf("ImportTransactionsJSON() error = %v", err)
	}
	if len(txs) != 2 {
		t.Fatalf("got %d transactions, want 2", len(txs))
	}
	if !txs[0].Amount.Equal(decimal.NewFromFloat(-82.13)) {
		t.Errorf("amount = %s, want -82.13", txs[0].Amount)
	}
	if !txs[1].Amount.Equal(decimal.NewFromFloat(19.99)) {
		t.Errorf("string amount = %s, want 19.99", txs[1].Amount)
	}
}

func TestImportTransactionsJSON_BadPath(t *testing.T) {
	if _, err := ImportTransactionsJSON(strings.NewReader(`{}`), "$.nope[*"); err == nil {
		t.Error("expected an error for an invalid jsonpath")
	}
}

func TestDebts_JSONLRoundTrip(t *testing.T) {
	debts := []Debt{
		{ID: "cc", Name: "Credit card", Balance: decimal.NewFromInt(5000), AnnualRate: 22, MinimumPayment: decimal.NewFromInt(150)},
		{ID: "car", Name: "Car loan", Balance: decimal.NewFromInt(12000), AnnualRate: 6.5, MinimumPayment: decimal.NewFromInt(250)},
	}
	var buf bytes.Buffer
	if err := ExportDebts(&buf, debts); err != nil {
		t.Fatalf("ExportDebts() error = %v", err)
	}
	back, err := ImportDebts(&buf)
	if err != nil {
		t.Fatalf("ImportDebts() error = %v", err)
	}
	if len(back) != 2 {
		t.Fatalf("got %d debts, want 2", len(back))
	}
	for i := range debts {
		if back[i].ID != debts[i].ID || !back[i].Balance.Equal(debts[i].Balance) || back[i].AnnualRate != debts[i].AnnualRate {
			t.Errorf("round trip mismatch at %d: %+v != %+v", i, back[i], debts[i])
		}
	}
}

func TestImportDebts_AssignsMissingIDs(t *testing.T) {
	in := `{"name":"Overdraft","balance":"300","annualRatePercent":15,"minimumMonthlyPayment":"25"}

{"id":"keep","name":"Loan","balance":"1000","annualRatePercent":5,"minimumMonthlyPayment":"50"}
`
	debts, err := ImportDebts(strings.NewReader(in))
	if err != nil {
		t.Fatalf("ImportDebts() error = %v", err)
	}
	if len(debts) != 2 {
		t.Fatalf("got %d debts, want 2 (blank lines skipped)", len(debts))
	}
	if debts[0].ID == "" {
		t.Error("imported debt without an id should get a generated one")
	}
	if debts[1].ID != "keep" {
		t.Errorf("existing id was not preserved: %q", debts[1].ID)
	}
}
