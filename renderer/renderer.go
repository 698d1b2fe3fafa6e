// Package renderer formats computed divtrack tables as markdown.
package renderer

import (
	"fmt"
	"strings"

	"github.com/divlab/divtrack"
	"github.com/divlab/divtrack/news"
)

// mdRenderer formats report output into a markdown string.
type mdRenderer struct {
	*strings.Builder
}

// Printf formats according to a format specifier and writes to the renderer's buffer.
func (r *mdRenderer) Printf(format string, args ...any) {
	fmt.Fprintf(r, format, args...)
}

// YearlyMarkdown renders the year-wise dividend summary with yields.
// A year whose price could not be resolved shows "n/a", never a fake 0%.
func YearlyMarkdown(ticker string, summaries []divtrack.YearlySummary) string {
	r := &mdRenderer{&strings.Builder{}}
	r.Printf("# Year-wise Dividend Summary for %s\n\n", ticker)
	if len(summaries) == 0 {
		r.Printf("No dividend data available for %s.\n", ticker)
		return r.String()
	}
	r.Printf("| Year | Dividend | Year End Price | Dividend Yield %% |\n")
	r.Printf("|:---|---:|---:|---:|\n")
	for _, s := range summaries {
		price, yield := "n/a", "n/a"
		if s.HasPrice {
			price = s.YearEndPrice.StringFixed()
		}
		if s.HasYield {
			yield = s.Yield.String()
		}
		r.Printf("| %d | %s | %s | %s |\n", s.Year, s.TotalDividend.StringFixed(), price, yield)
	}
	return r.String()
}

// DividendsMarkdown renders the raw dividend entries.
func DividendsMarkdown(ticker string, events divtrack.DividendHistory) string {
	r := &mdRenderer{&strings.Builder{}}
	r.Printf("# Dividend Entries for %s\n\n", ticker)
	if len(events) == 0 {
		r.Printf("No dividend data available for %s.\n", ticker)
		return r.String()
	}
	r.Printf("| Ex-Date | Dividend |\n")
	r.Printf("|:---|---:|\n")
	for _, ev := range events {
		r.Printf("| %s | %s |\n", ev.ExDate, ev.Amount.StringFixed())
	}
	return r.String()
}

// TransactionsMarkdown renders the session transaction list.
func TransactionsMarkdown(transactions []divtrack.Transaction) string {
	r := &mdRenderer{&strings.Builder{}}
	r.Printf("# Your Transactions\n\n")
	if len(transactions) == 0 {
		r.Printf("Add your stock transactions to see dividend earnings.\n")
		return r.String()
	}
	r.Printf("| Date | Quantity | Price | Type |\n")
	r.Printf("|:---|---:|---:|:---|\n")
	for _, tx := range transactions {
		r.Printf("| %s | %s | %s | %s |\n", tx.Date, tx.Quantity, tx.UnitPrice.StringFixed(), tx.Side)
	}
	return r.String()
}

// ResultsMarkdown renders the per-transaction dividend returns and the grand
// total across all of them.
func ResultsMarkdown(ticker string, results []divtrack.TransactionResult, grandTotal divtrack.Money) string {
	r := &mdRenderer{&strings.Builder{}}
	r.Printf("# Transaction Dividend Returns for %s\n\n", ticker)
	if len(results) == 0 {
		r.Printf("Add your stock transactions to see dividend earnings.\n")
		return r.String()
	}
	r.Printf("| Transaction Date | Quantity | Price/Share | Total Dividend | Dividend Return %% |\n")
	r.Printf("|:---|---:|---:|---:|---:|\n")
	for _, res := range results {
		ret := "n/a"
		if res.HasReturn {
			ret = res.Return.SignedString()
		}
		source := ""
		if !res.FromMarket {
			source = " *" // entered price, market close was unavailable
		}
		r.Printf("| %s | %s | %s%s | %s | %s |\n",
			res.Transaction.Date, res.Transaction.SignedQuantity(),
			res.ResolvedPrice.StringFixed(), source,
			res.TotalDividend().StringFixed(), ret)
	}
	r.Printf("\nTotal Dividend Received from All Transactions: **%s**\n", grandTotal.StringFixed())
	return r.String()
}

// InfoMarkdown renders company fundamentals.
func InfoMarkdown(ticker string, f divtrack.Fundamentals) string {
	r := &mdRenderer{&strings.Builder{}}
	name := f.ShortName
	if name == "" {
		name = ticker
	}
	r.Printf("# %s\n\n", name)
	if f.HasEPS {
		r.Printf("EPS (trailing): %.2f\n", f.TrailingEPS)
	} else {
		r.Printf("EPS (trailing): not available\n")
	}
	return r.String()
}

// NewsMarkdown renders headlines as a link list.
func NewsMarkdown(ticker string, headlines []news.Headline) string {
	r := &mdRenderer{&strings.Builder{}}
	r.Printf("# Latest News for %s\n\n", ticker)
	if len(headlines) == 0 {
		r.Printf("No news available.\n")
		return r.String()
	}
	for _, h := range headlines {
		r.Printf("- [%s](%s)\n", h.Title, h.Link)
	}
	return r.String()
}
