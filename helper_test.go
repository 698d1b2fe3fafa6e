package divtrack

import (
	"context"

	"github.com/divlab/divtrack/date"
)

// USD is a helper for test to create usd money from const
func USD(v float64) Money { return M(v, "USD") }

// NO is a helper for test to create money from const with no currency set
func NO(v float64) Money { return M(v, "") }

// day is a helper for test to parse a date from const
func day(s string) date.Date { return date.MustParse(s) }

// fakeProvider is an in-memory PriceProvider for tests.
type fakeProvider struct {
	series *PriceSeries
	err    error     // returned on every call when set
	errOn  date.Date // error only for windows starting on that day
	calls  int
}

func (f *fakeProvider) PriceHistory(ctx context.Context, ticker string, r date.Range) (*PriceSeries, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	if !f.errOn.IsZero() && r.From == f.errOn {
		return nil, ErrRateLimited
	}
	out := NewPriceSeries(f.series.Currency())
	for pt := range f.series.Points() {
		if r.Contains(pt.Date) {
			out.Append(pt.Date, pt.Close.AsFloat())
		}
	}
	return out, nil
}

// closes builds a PriceSeries from date-string/close pairs.
func closes(currency string, points map[string]float64) *PriceSeries {
	s := NewPriceSeries(currency)
	for d, v := range points {
		s.Append(day(d), v)
	}
	return s
}
