package divtrack

import "context"

// YearlySummary is one row of the year-wise dividend report. It is derived
// data, recomputed on every request.
//
// HasPrice and HasYield keep "absent" distinct from a computed zero: a year
// whose price could not be resolved has no yield, which presentation must
// render differently from a true 0% yield.
type YearlySummary struct {
	Year          int
	TotalDividend Money
	YearEndPrice  Money
	HasPrice      bool
	Yield         Percent
	HasYield      bool
}

// YearEndLookup resolves the reference price for a calendar year.
// It reports (price, false, nil) when no price is available, which is not an
// error; errors are reserved for the provider failing outright.
type YearEndLookup func(ctx context.Context, year int) (Money, bool, error)

// ComputeYields fills the year-end price and yield of each partial summary.
//
// Yield = TotalDividend / YearEndPrice × 100, defined only when the price is
// present and positive; otherwise the year keeps HasYield false. A lookup
// error on one year degrades that year to "no price" and does not abort the
// others: each year is an independently-fetched section. The first error is
// returned so the caller can report it alongside the partial table.
func ComputeYields(ctx context.Context, summaries []YearlySummary, lookup YearEndLookup) ([]YearlySummary, error) {
	var firstErr error
	out := make([]YearlySummary, len(summaries))
	for i, s := range summaries {
		price, ok, err := lookup(ctx, s.Year)
		if err != nil {
			if firstErr == nil {
				firstErr = err
			}
			out[i] = s
			continue
		}
		if !ok {
			out[i] = s
			continue
		}
		s.YearEndPrice, s.HasPrice = price, true
		if price.IsPositive() {
			s.Yield = s.TotalDividend.PercentOf(price)
			s.HasYield = true
		}
		out[i] = s
	}
	return out, firstErr
}
