package fincalc

import (
	"bufio"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/PaesslerAG/jsonpath"
	"github.com/fincalc/fincalc/date"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// this file contains functions to handle the import/export formats.
// They should remain human readable, single file and easy to merge.

// ImportTransactionsCSV reads transactions from 'r' in RFC4180 CSV format.
//
// The first record is a header; the columns date, description and amount are
// required, accountId and categoryId optional, in any order and case.
func ImportTransactionsCSV(r io.Reader) ([]Transaction, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("cannot read CSV header: %w", err)
	}
	col := make(map[string]int, len(header))
	for i, name := range header {
		col[strings.ToLower(strings.TrimSpace(name))] = i
	}
	for _, required := range []string{"date", "description", "amount"} {
		if _, ok := col[required]; !ok {
			return nil, fmt.Errorf("CSV header is missing the %q column", required)
		}
	}

	var txs []Transaction
	for line := 2; ; line++ {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("cannot read CSV line %d: %w", line, err)
		}
		field := func(name string) string {
			if i, ok := col[name]; ok && i < len(record) {
				return strings.TrimSpace(record[i])
			}
			return ""
		}

		on, err := date.Parse(field("date"))
		if err != nil {
			return nil, fmt.Errorf("CSV line %d: %w", line, err)
		}
		amount, err := decimal.NewFromString(field("amount"))
		if err != nil {
			return nil, fmt.Errorf("CSV line %d: invalid amount %q: %w", line, field("amount"), err)
		}
		txs = append(txs, Transaction{
			Date:        on,
			Description: field("description"),
			Amount:      amount,
			AccountID:   field("accountid"),
			CategoryID:  field("categoryid"),
		})
	}
	return txs, nil
}

// ExportTransactionsCSV writes transactions to 'w' in the same CSV format
// ImportTransactionsCSV reads.
func ExportTransactionsCSV(w io.Writer, txs []Transaction) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"date", "description", "amount", "accountId", "categoryId"}); err != nil {
		return err
	}
	for _, tx := range txs {
		record := []string{tx.Date.String(), tx.Description, tx.Amount.String(), tx.AccountID, tx.CategoryID}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// ImportTransactionsJSON extracts transactions from an arbitrary JSON
// document, typically a bank export, where 'path' is a jsonpath expression
// selecting the transaction objects (for example "$.transactions[*]").
// Each selected object must carry date, description and amount properties;
// amount may be a JSON number or a string.
func ImportTransactionsJSON(r io.Reader, path string) ([]Transaction, error) {
	var doc interface{}
	dec := json.NewDecoder(r)
	dec.UseNumber()
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("cannot parse JSON document: %w", err)
	}

	selected, err := jsonpath.Get(path, doc)
	if err != nil {
		return nil, fmt.Errorf("jsonpath %q: %w", path, err)
	}
	items, ok := selected.([]interface{})
	if !ok {
		// A path selecting a single object is accepted too.
		items = []interface{}{selected}
	}

	var txs []Transaction
	for i, item := range items {
		obj, ok := item.(map[string]interface{})
		if !ok {
			return nil, fmt.Errorf("jsonpath %q item %d: expected an object, got %T", path, i, item)
		}
		str := func(key string) string {
			s, _ := obj[key].(string)
			return s
		}
		on, err := date.Parse(str("date"))
		if err != nil {
			return nil, fmt.Errorf("item %d: %w", i, err)
		}
		var amount decimal.Decimal
		switch v := obj["amount"].(type) {
		case json.Number:
			amount, err = decimal.NewFromString(v.String())
		case string:
			amount, err = decimal.NewFromString(v)
		default:
			err = fmt.Errorf("unsupported amount type %T", obj["amount"])
		}
		if err != nil {
			return nil, fmt.Errorf("item %d: invalid amount: %w", i, err)
		}
		txs = append(txs, Transaction{
			Date:        on,
			Description: str("description"),
			Amount:      amount,
			AccountID:   str("accountId"),
			CategoryID:  str("categoryId"),
		})
	}
	return txs, nil
}

// ImportDebts reads debts from 'r' in the import/export format: a JSONL
// stream where each line is one JSON debt object. A debt without an id is
// assigned a fresh one.
func ImportDebts(r io.Reader) ([]Debt, error) {
	var debts []Debt
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(strings.TrimSpace(string(line))) == 0 {
			continue
		}
		var d Debt
		if err := json.Unmarshal(line, &d); err != nil {
			return nil, fmt.Errorf("cannot parse line for debt import format: %q: %w", string(line), err)
		}
		if d.ID == "" {
			d.ID = uuid.NewString()
		}
		debts = append(debts, d)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return debts, nil
}

// ExportDebts writes debts to 'w' in the import/export format, one JSON
// object per line.
func ExportDebts(w io.Writer, debts []Debt) error {
	for _, d := range debts {
		data, err := json.Marshal(d)
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, "%s\n", data); err != nil {
			return err
		}
	}
	return nil
}
