package divtrack

import (
	"bufio"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/divlab/divtrack/date"
	"github.com/shopspring/decimal"
)

// this file contains functions to handle the transaction import/export formats.
// The session format is JSONL: human readable, single file, trivially appendable.

// ImportTransactions parses an uploaded tabular file into transactions.
//
// The file is CSV with a header row. The required columns are Date, Quantity,
// Price and Type, matched case-insensitively and in any order; extra columns
// are ignored. A missing required column rejects the whole file with a
// validation error naming it — nothing is computed from a partial header.
func ImportTransactions(r io.Reader) ([]Transaction, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("cannot read header row: %w", err)
	}

	cols := make(map[string]int)
	for i, name := range header {
		cols[strings.ToLower(strings.TrimSpace(name))] = i
	}
	for _, required := range []string{"date", "quantity", "price", "type"} {
		if _, ok := cols[required]; !ok {
			return nil, fmt.Errorf("missing required column %q in header %v", required, header)
		}
	}

	var transactions []Transaction
	line := 1
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}

		day, err := date.Parse(record[cols["date"]])
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		qty, err := strconv.Atoi(strings.TrimSpace(record[cols["quantity"]]))
		if err != nil {
			return nil, fmt.Errorf("line %d: invalid quantity %q: %w", line, record[cols["quantity"]], err)
		}
		price, err := strconv.ParseFloat(strings.TrimSpace(record[cols["price"]]), 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: invalid price %q: %w", line, record[cols["price"]], err)
		}
		side, err := ParseSide(strings.TrimSpace(record[cols["type"]]))
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}

		tx, err := Transaction{Date: day, Quantity: Q(qty), UnitPrice: M(price, ""), Side: side}.Validate()
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		transactions = append(transactions, tx)
	}
	return transactions, nil
}

// DecodeTransactions reads a session ledger from 'r' in the JSONL format:
// one JSON object per line, blank lines ignored.
func DecodeTransactions(r io.Reader) (*Ledger, error) {
	ledger := NewLedger()
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}
		var tx Transaction
		if err := json.Unmarshal([]byte(text), &tx); err != nil {
			return nil, fmt.Errorf("cannot parse transaction on line %d: %q: %w", line, text, err)
		}
		if err := ledger.Append(tx); err != nil {
			return nil, fmt.Errorf("invalid transaction on line %d: %w", line, err)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return ledger, nil
}

// EncodeTransactions writes the ledger to 'w' in the JSONL format.
func EncodeTransactions(w io.Writer, ledger *Ledger) error {
	decimal.MarshalJSONWithoutQuotes = true
	for _, tx := range ledger.Transactions() {
		data, err := json.Marshal(tx)
		if err != nil {
			return fmt.Errorf("cannot marshal transaction on %s: %w", tx.Date, err)
		}
		if _, err := w.Write(append(data, '\n')); err != nil {
			return fmt.Errorf("cannot write transaction: %w", err)
		}
	}
	return nil
}
