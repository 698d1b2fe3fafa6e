package renderer

import (
	"strings"
	"testing"

	"github.com/divlab/divtrack"
	"github.com/divlab/divtrack/date"
	"github.com/divlab/divtrack/news"
)

func TestYearlyMarkdown(t *testing.T) {
	summaries := []divtrack.YearlySummary{
		{Year: 2022, TotalDividend: divtrack.M(4.0, "USD"), YearEndPrice: divtrack.M(100.0, "USD"), HasPrice: true, Yield: 4, HasYield: true},
		{Year: 2023, TotalDividend: divtrack.M(3.0, "USD")},
	}
	got := YearlyMarkdown("AAPL", summaries)

	for _, want := range []string{
		"# Year-wise Dividend Summary for AAPL",
		"| 2022 | 4.00 | 100.00 | 4.00% |",
		"| 2023 | 3.00 | n/a | n/a |",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %q:\n%s", want, got)
		}
	}
}

func TestYearlyMarkdownEmpty(t *testing.T) {
	got := YearlyMarkdown("AAPL", nil)
	if !strings.Contains(got, "No dividend data available for AAPL.") {
		t.Errorf("empty state not rendered:\n%s", got)
	}
	if strings.Contains(got, "| Year |") {
		t.Error("empty summary rendered a table header")
	}
}

func TestDividendsMarkdown(t *testing.T) {
	events := divtrack.DividendHistory{
		{ExDate: date.MustParse("2022-03-10"), Amount: divtrack.M(1.5, "USD")},
	}
	got := DividendsMarkdown("AAPL", events)
	if !strings.Contains(got, "| 2022-03-10 | 1.50 |") {
		t.Errorf("event row missing:\n%s", got)
	}
}

func TestTransactionsMarkdown(t *testing.T) {
	got := TransactionsMarkdown(nil)
	if !strings.Contains(got, "Add your stock transactions to see dividend earnings.") {
		t.Errorf("empty state not rendered:\n%s", got)
	}

	txs := []divtrack.Transaction{
		divtrack.NewBuy(date.MustParse("2022-03-01"), divtrack.Q(10), divtrack.M(100.0, "USD")),
	}
	got = TransactionsMarkdown(txs)
	if !strings.Contains(got, "| 2022-03-01 | 10 | 100.00 | buy |") {
		t.Errorf("transaction row missing:\n%s", got)
	}
}

func TestResultsMarkdown(t *testing.T) {
	tx := divtrack.NewBuy(date.MustParse("2022-03-01"), divtrack.Q(10), divtrack.M(100.0, "USD"))
	results := []divtrack.TransactionResult{{
		Transaction:        tx,
		ResolvedPrice:      divtrack.M(100.0, "USD"),
		FromMarket:         false,
		TotalDividendSince: divtrack.M(5.0, "USD"),
		Return:             5,
		HasReturn:          true,
	}}
	got := ResultsMarkdown("AAPL", results, divtrack.M(50.0, "USD"))

	for _, want := range []string{
		"| 2022-03-01 | 10 | 100.00 * | 50.00 | +5.00% |",
		"Total Dividend Received from All Transactions: **50.00**",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %q:\n%s", want, got)
		}
	}
}

// A transaction with no dividends since its date is noise, not a gain.
func TestResultsMarkdownZeroReturn(t *testing.T) {
	tx := divtrack.NewBuy(date.MustParse("2024-01-01"), divtrack.Q(1), divtrack.M(50.0, "USD"))
	results := []divtrack.TransactionResult{{
		Transaction:   tx,
		ResolvedPrice: divtrack.M(50.0, "USD"),
		FromMarket:    true,
		HasReturn:     true,
	}}
	got := ResultsMarkdown("AAPL", results, divtrack.Money{})
	if !strings.Contains(got, "| 2024-01-01 | 1 | 50.00 | 0.00 | - |") {
		t.Errorf("zero return not rendered as -:\n%s", got)
	}
}

func TestInfoMarkdown(t *testing.T) {
	got := InfoMarkdown("AAPL", divtrack.Fundamentals{ShortName: "Apple Inc.", TrailingEPS: 6.13, HasEPS: true})
	if !strings.Contains(got, "# Apple Inc.") || !strings.Contains(got, "EPS (trailing): 6.13") {
		t.Errorf("unexpected output:\n%s", got)
	}

	got = InfoMarkdown("SPY", divtrack.Fundamentals{})
	if !strings.Contains(got, "# SPY") || !strings.Contains(got, "EPS (trailing): not available") {
		t.Errorf("unexpected fallback output:\n%s", got)
	}
}

func TestNewsMarkdown(t *testing.T) {
	headlines := []news.Headline{{Title: "Apple raises dividend", Link: "https://example.com/news/1"}}
	got := NewsMarkdown("AAPL", headlines)
	if !strings.Contains(got, "- [Apple raises dividend](https://example.com/news/1)") {
		t.Errorf("headline missing:\n%s", got)
	}

	if got := NewsMarkdown("AAPL", nil); !strings.Contains(got, "No news available.") {
		t.Errorf("empty state not rendered:\n%s", got)
	}
}
