package divtrack

import (
	"context"
	"errors"

	"github.com/divlab/divtrack/date"
)

// Sentinel errors a market data provider can return. They keep provider
// failures distinguishable from valid empty results: a ticker that never
// issued a dividend is an empty history, not an error.
var (
	// ErrUnknownTicker reports that the provider does not know the ticker.
	ErrUnknownTicker = errors.New("unknown ticker")
	// ErrRateLimited reports that the provider refused the request for quota reasons.
	ErrRateLimited = errors.New("rate limited by provider")
)

// Fundamentals holds the company figures the dashboard shows next to the
// dividend table. Fields are optional in the provider's data.
type Fundamentals struct {
	ShortName   string
	Currency    string
	TrailingEPS float64
	HasEPS      bool
}

// MarketDataClient supplies dividend events, historical prices, and company
// fundamentals for a ticker. Implementations honor ctx for timeouts and
// return the sentinel errors above where they apply.
type MarketDataClient interface {
	// Dividends returns the full dividend history, ascending by ex-date.
	Dividends(ctx context.Context, ticker string) (DividendHistory, error)
	// PriceHistory returns daily closes within r, ascending by date, possibly with gaps.
	PriceHistory(ctx context.Context, ticker string, r date.Range) (*PriceSeries, error)
	// Fundamentals returns the company fundamentals.
	Fundamentals(ctx context.Context, ticker string) (Fundamentals, error)
}
