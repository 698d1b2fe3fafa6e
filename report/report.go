// Package report serializes computed dividend tables into a multi-sheet
// spreadsheet for download. It is purely a serialization concern: every value
// is already rounded or resolved by the time it lands in a cell.
package report

import (
	"fmt"
	"io"
	"math"

	"github.com/divlab/divtrack"
	"github.com/xuri/excelize/v2"
)

// Report bundles the rows of one export: the year-wise summary, the raw
// dividend entries, the session transactions and their evaluation.
type Report struct {
	Ticker       string
	Yearly       []divtrack.YearlySummary
	Dividends    divtrack.DividendHistory
	Transactions []divtrack.Transaction
	Results      []divtrack.TransactionResult
	GrandTotal   divtrack.Money
}

// Write serializes the report to 'w' as an XLSX workbook with one sheet per
// table. Absent prices and yields are left as empty cells, visibly distinct
// from a true zero.
func Write(w io.Writer, r *Report) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := writeYearly(f, r.Yearly); err != nil {
		return err
	}
	if err := writeDividends(f, "Dividends", r.Dividends); err != nil {
		return err
	}
	if err := writeTransactions(f, "Transactions", r.Transactions); err != nil {
		return err
	}
	if err := writeResults(f, "Results", r.Results, r.GrandTotal); err != nil {
		return err
	}

	// the workbook is created with a default empty sheet, rename it away
	if err := f.SetSheetName("Sheet1", "Yearly Summary"); err != nil {
		return fmt.Errorf("cannot rename default sheet: %w", err)
	}
	if err := f.Write(w); err != nil {
		return fmt.Errorf("cannot write workbook: %w", err)
	}
	return nil
}

// sheet creates a named sheet (unless it is the renamed default) and writes
// its header row.
func sheet(f *excelize.File, name string, header []any) error {
	if name != "Yearly Summary" {
		if _, err := f.NewSheet(name); err != nil {
			return fmt.Errorf("cannot create sheet %q: %w", name, err)
		}
	}
	return setRow(f, name, 1, header)
}

func setRow(f *excelize.File, name string, row int, values []any) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	if err := f.SetSheetRow(name, cell, &values); err != nil {
		return fmt.Errorf("cannot write row %d of sheet %q: %w", row, name, err)
	}
	return nil
}

// round2 is the presentation-boundary rounding for percentage cells.
func round2(v float64) float64 { return math.Round(v*100) / 100 }

func writeYearly(f *excelize.File, yearly []divtrack.YearlySummary) error {
	if err := setRow(f, "Sheet1", 1, []any{"Year", "Dividend", "Year End Price", "Dividend Yield %"}); err != nil {
		return err
	}
	for i, s := range yearly {
		row := []any{s.Year, s.TotalDividend.AsFloat(), nil, nil}
		if s.HasPrice {
			row[2] = s.YearEndPrice.AsFloat()
		}
		if s.HasYield {
			row[3] = round2(float64(s.Yield))
		}
		if err := setRow(f, "Sheet1", i+2, row); err != nil {
			return err
		}
	}
	return nil
}

func writeDividends(f *excelize.File, name string, dividends divtrack.DividendHistory) error {
	if err := sheet(f, name, []any{"Ex-Date", "Dividend"}); err != nil {
		return err
	}
	for i, ev := range dividends {
		if err := setRow(f, name, i+2, []any{ev.ExDate.String(), ev.Amount.AsFloat()}); err != nil {
			return err
		}
	}
	return nil
}

func writeTransactions(f *excelize.File, name string, transactions []divtrack.Transaction) error {
	if err := sheet(f, name, []any{"Date", "Quantity", "Price", "Type"}); err != nil {
		return err
	}
	for i, tx := range transactions {
		row := []any{tx.Date.String(), tx.Quantity.AsFloat(), tx.UnitPrice.AsFloat(), string(tx.Side)}
		if err := setRow(f, name, i+2, row); err != nil {
			return err
		}
	}
	return nil
}

func writeResults(f *excelize.File, name string, results []divtrack.TransactionResult, grandTotal divtrack.Money) error {
	header := []any{"Transaction Date", "Quantity", "Price/Share", "Total Dividend", "Dividend Return %"}
	if err := sheet(f, name, header); err != nil {
		return err
	}
	row := 1
	for _, r := range results {
		row++
		values := []any{
			r.Transaction.Date.String(),
			r.Transaction.SignedQuantity().AsFloat(),
			r.ResolvedPrice.AsFloat(),
			r.TotalDividend().AsFloat(),
			nil,
		}
		if r.HasReturn {
			values[4] = round2(float64(r.Return))
		}
		if err := setRow(f, name, row, values); err != nil {
			return err
		}
	}
	if len(results) > 0 {
		row += 2
		if err := setRow(f, name, row, []any{"Total Dividend Received", nil, nil, grandTotal.AsFloat()}); err != nil {
			return err
		}
	}
	return nil
}
