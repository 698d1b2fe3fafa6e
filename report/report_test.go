package report

import (
	"bytes"
	"testing"

	"github.com/divlab/divtrack"
	"github.com/divlab/divtrack/date"
	"github.com/xuri/excelize/v2"
)

func TestWrite(t *testing.T) {
	tx := divtrack.NewBuy(date.MustParse("2022-03-01"), divtrack.Q(10), divtrack.M(100.0, "USD"))
	r := &Report{
		Ticker: "AAPL",
		Yearly: []divtrack.YearlySummary{
			{Year: 2022, TotalDividend: divtrack.M(4.0, "USD"), YearEndPrice: divtrack.M(100.0, "USD"), HasPrice: true, Yield: 4, HasYield: true},
			{Year: 2023, TotalDividend: divtrack.M(3.0, "USD")}, // no price resolved
		},
		Dividends: divtrack.DividendHistory{
			{ExDate: date.MustParse("2022-03-10"), Amount: divtrack.M(1.5, "USD")},
		},
		Transactions: []divtrack.Transaction{tx},
		Results: []divtrack.TransactionResult{{
			Transaction:        tx,
			ResolvedPrice:      divtrack.M(100.0, "USD"),
			TotalDividendSince: divtrack.M(5.0, "USD"),
			Return:             5,
			HasReturn:          true,
		}},
		GrandTotal: divtrack.M(50.0, "USD"),
	}

	var buf bytes.Buffer
	if err := Write(&buf, r); err != nil {
		t.Fatal(err)
	}

	f, err := excelize.OpenReader(&buf)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	for _, name := range []string{"Yearly Summary", "Dividends", "Transactions", "Results"} {
		if idx, err := f.GetSheetIndex(name); err != nil || idx < 0 {
			t.Errorf("sheet %q is missing", name)
		}
	}

	tests := []struct {
		sheet, cell, want string
	}{
		{"Yearly Summary", "A1", "Year"},
		{"Yearly Summary", "A2", "2022"},
		{"Yearly Summary", "B2", "4"},
		{"Yearly Summary", "D2", "4"},
		{"Yearly Summary", "C3", ""}, // absent price stays an empty cell
		{"Yearly Summary", "D3", ""},
		{"Dividends", "A2", "2022-03-10"},
		{"Dividends", "B2", "1.5"},
		{"Transactions", "A2", "2022-03-01"},
		{"Transactions", "D2", "buy"},
		{"Results", "C2", "100"},
		{"Results", "E2", "5"},
	}
	for _, tt := range tests {
		got, err := f.GetCellValue(tt.sheet, tt.cell)
		if err != nil {
			t.Errorf("%s!%s: %v", tt.sheet, tt.cell, err)
			continue
		}
		if got != tt.want {
			t.Errorf("%s!%s = %q, want %q", tt.sheet, tt.cell, got, tt.want)
		}
	}
}

func TestWriteGrandTotalRow(t *testing.T) {
	tx := divtrack.NewBuy(date.MustParse("2022-03-01"), divtrack.Q(10), divtrack.M(100.0, "USD"))
	r := &Report{
		Ticker:  "AAPL",
		Results: []divtrack.TransactionResult{{Transaction: tx, ResolvedPrice: tx.UnitPrice, TotalDividendSince: divtrack.M(5.0, "USD")}},
		// GrandTotal reflects the one evaluated transaction
		GrandTotal: divtrack.M(50.0, "USD"),
	}

	var buf bytes.Buffer
	if err := Write(&buf, r); err != nil {
		t.Fatal(err)
	}
	f, err := excelize.OpenReader(&buf)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	// one result row at 2, a blank spacer, the total row at 4
	if got, _ := f.GetCellValue("Results", "A4"); got != "Total Dividend Received" {
		t.Errorf("A4 = %q, want the grand total label", got)
	}
	if got, _ := f.GetCellValue("Results", "D4"); got != "50" {
		t.Errorf("D4 = %q, want 50", got)
	}
}

func TestWriteEmptyReport(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, &Report{Ticker: "AAPL"}); err != nil {
		t.Fatal(err)
	}
	f, err := excelize.OpenReader(&buf)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if got, _ := f.GetCellValue("Yearly Summary", "A1"); got != "Year" {
		t.Errorf("A1 = %q, want header even for an empty report", got)
	}
}
