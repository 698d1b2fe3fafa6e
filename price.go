package divtrack

import (
	"context"
	"fmt"
	"iter"

	"github.com/divlab/divtrack/date"
)

// PricePoint is a single daily close.
type PricePoint struct {
	Date  date.Date
	Close Money
}

// PriceSeries holds the daily closing prices of one ticker. The series may
// have gaps: weekends, holidays, trading halts.
type PriceSeries struct {
	currency string
	closes   date.History[float64]
}

// NewPriceSeries returns an empty series whose prices are in the given currency.
func NewPriceSeries(currency string) *PriceSeries {
	return &PriceSeries{currency: currency}
}

// Currency returns the currency all closes are expressed in.
func (s *PriceSeries) Currency() string { return s.currency }

// Len returns the number of trading days in the series.
func (s *PriceSeries) Len() int { return s.closes.Len() }

// Append records the close for a trading day, overwriting any previous value
// for that day.
func (s *PriceSeries) Append(on date.Date, close float64) { s.closes.Append(on, close) }

// Close returns the closing price on exactly that day.
func (s *PriceSeries) Close(on date.Date) (Money, bool) {
	v, ok := s.closes.Get(on)
	if !ok {
		return Money{}, false
	}
	return M(v, s.currency), true
}

// First returns the earliest trading day within r and its close.
func (s *PriceSeries) First(r date.Range) (PricePoint, bool) {
	on, v, ok := s.closes.First(r)
	if !ok {
		return PricePoint{}, false
	}
	return PricePoint{Date: on, Close: M(v, s.currency)}, true
}

// Last returns the latest trading day within r and its close.
func (s *PriceSeries) Last(r date.Range) (PricePoint, bool) {
	on, v, ok := s.closes.Last(r)
	if !ok {
		return PricePoint{}, false
	}
	return PricePoint{Date: on, Close: M(v, s.currency)}, true
}

// Points returns an iterator over all daily closes in chronological order.
func (s *PriceSeries) Points() iter.Seq[PricePoint] {
	return func(yield func(PricePoint) bool) {
		for on, v := range s.closes.Values() {
			if !yield(PricePoint{Date: on, Close: M(v, s.currency)}) {
				return
			}
		}
	}
}

// PriceProvider supplies the daily close series of a ticker over a range.
// The bounded network call behind it is the only latency-bearing step of a
// computation; implementations honor ctx for the caller-defined timeout.
type PriceProvider interface {
	PriceHistory(ctx context.Context, ticker string, r date.Range) (*PriceSeries, error)
}

// DefaultLookahead is the bounded forward window, in calendar days, searched
// past a target date that has no trading data. The bound prevents unbounded
// drift into a following period.
const DefaultLookahead = 5

// YearEndPolicy selects how the reference price for a calendar year is resolved.
type YearEndPolicy string

const (
	// Dec31Forward resolves December 31 with the forward lookahead window.
	Dec31Forward YearEndPolicy = "dec31-forward"
	// LastCloseInYear takes the last trading close within the year itself.
	LastCloseInYear YearEndPolicy = "last-close"
)

// ParseYearEndPolicy parses a year-end policy from its string form.
func ParseYearEndPolicy(s string) (YearEndPolicy, error) {
	switch YearEndPolicy(s) {
	case Dec31Forward, LastCloseInYear:
		return YearEndPolicy(s), nil
	case "":
		return Dec31Forward, nil
	default:
		return "", fmt.Errorf("unknown year-end policy %q (want %q or %q)", s, Dec31Forward, LastCloseInYear)
	}
}

// Resolver finds the best-available closing price for a target date.
//
// An exact-date lookup fails silently on non-trading days, so Resolve trades
// a small date-accuracy error for availability: it returns the close of the
// first trading day within [date, date+Lookahead].
type Resolver struct {
	Provider  PriceProvider
	Lookahead int           // calendar days, DefaultLookahead when 0
	Policy    YearEndPolicy // Dec31Forward when empty
}

func (rv *Resolver) lookahead() int {
	if rv.Lookahead <= 0 {
		return DefaultLookahead
	}
	return rv.Lookahead
}

// Resolve returns the close of the first trading day in [on, on+lookahead],
// in date order.
//
// The second return value is false when the provider returned no trading day
// in the window (outage, delisted ticker, or a weekend+holiday stretch longer
// than the window): an absent price, distinct from a provider error.
func (rv *Resolver) Resolve(ctx context.Context, ticker string, on date.Date) (Money, bool, error) {
	window := date.Window(on, rv.lookahead())
	series, err := rv.Provider.PriceHistory(ctx, ticker, window)
	if err != nil {
		return Money{}, false, fmt.Errorf("resolving price of %s on %s: %w", ticker, on, err)
	}
	pt, ok := series.First(window)
	if !ok {
		return Money{}, false, nil
	}
	return pt.Close, true, nil
}

// YearEnd returns the reference price for a calendar year according to the
// resolver's policy.
func (rv *Resolver) YearEnd(ctx context.Context, ticker string, year int) (Money, bool, error) {
	switch rv.Policy {
	case LastCloseInYear:
		yr := date.YearRange(year)
		series, err := rv.Provider.PriceHistory(ctx, ticker, yr)
		if err != nil {
			return Money{}, false, fmt.Errorf("resolving year-end price of %s for %d: %w", ticker, year, err)
		}
		pt, ok := series.Last(yr)
		if !ok {
			return Money{}, false, nil
		}
		return pt.Close, true, nil
	default: // Dec31Forward
		return rv.Resolve(ctx, ticker, date.YearEnd(year))
	}
}
