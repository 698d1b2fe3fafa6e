package yahoo

import (
	"context"
	"fmt"
	"net/url"

	"github.com/PaesslerAG/jsonpath"
	"github.com/divlab/divtrack"
	"github.com/divlab/divtrack/date"
)

// chartResponse is the payload of the v8 chart endpoint, trimmed to the
// fields divtrack consumes.
//
//	{ "chart": { "result": [ {
//	    "meta": { "currency": "USD", "symbol": "AAPL" },
//	    "timestamp": [ 1672756200, ... ],
//	    "indicators": { "quote": [ { "close": [ 125.07, null, ... ] } ] },
//	    "events": { "dividends": { "1670250600": { "amount": 0.23, "date": 1670250600 } } }
//	} ], "error": null } }
type chartResponse struct {
	Chart struct {
		Result []struct {
			Meta struct {
				Currency string `json:"currency"`
				Symbol   string `json:"symbol"`
			} `json:"meta"`
			Timestamp  []int64 `json:"timestamp"`
			Indicators struct {
				Quote []struct {
					Close []*float64 `json:"close"` // null on non-trading entries
				} `json:"quote"`
			} `json:"indicators"`
			Events struct {
				Dividends map[string]struct {
					Amount float64 `json:"amount"`
					Date   int64   `json:"date"`
				} `json:"dividends"`
			} `json:"events"`
		} `json:"result"`
		Error *struct {
			Code        string `json:"code"`
			Description string `json:"description"`
		} `json:"error"`
	} `json:"chart"`
}

// chart queries the v8 chart endpoint for one symbol over [from, to].
func (c *Client) chart(ctx context.Context, symbol string, from, to date.Date, withDividends bool) (*chartResponse, error) {
	q := url.Values{}
	q.Set("interval", "1d")
	q.Set("period1", fmt.Sprint(from.Unix()))
	// period2 is exclusive, push it one day past the inclusive range end.
	q.Set("period2", fmt.Sprint(to.Add(1).Unix()))
	if withDividends {
		q.Set("events", "div")
	}
	addr := fmt.Sprintf("%s/v8/finance/chart/%s?%s", c.baseURL, url.PathEscape(symbol), q.Encode())

	var payload chartResponse
	if err := jwget(ctx, c.http, addr, &payload, status); err != nil {
		return nil, err
	}
	if e := payload.Chart.Error; e != nil {
		if e.Code == "Not Found" {
			return nil, fmt.Errorf("%s: %w", symbol, divtrack.ErrUnknownTicker)
		}
		return nil, fmt.Errorf("chart API error for %s: %s: %s", symbol, e.Code, e.Description)
	}
	if len(payload.Chart.Result) == 0 {
		return nil, fmt.Errorf("%s: %w", symbol, divtrack.ErrUnknownTicker)
	}
	return &payload, nil
}

// Dividends returns the full dividend history of the ticker, ascending by
// ex-date. A ticker that never issued a dividend returns an empty history and
// no error.
func (c *Client) Dividends(ctx context.Context, ticker string) (divtrack.DividendHistory, error) {
	symbol := c.symbol(ticker)
	// period1=0 reaches back to the first trade date.
	payload, err := c.chart(ctx, symbol, date.FromUnix(0), date.Today(), true)
	if err != nil {
		return nil, fmt.Errorf("fetching dividends for %s: %w", symbol, err)
	}

	result := payload.Chart.Result[0]
	history := make(divtrack.DividendHistory, 0, len(result.Events.Dividends))
	for _, div := range result.Events.Dividends {
		history = append(history, divtrack.DividendEvent{
			ExDate: date.FromUnix(div.Date),
			Amount: divtrack.M(div.Amount, result.Meta.Currency),
		})
	}
	history.Sort()
	return history, nil
}

// PriceHistory returns the daily closes of the ticker within r. Non-trading
// days are absent from the series, not zero.
func (c *Client) PriceHistory(ctx context.Context, ticker string, r date.Range) (*divtrack.PriceSeries, error) {
	symbol := c.symbol(ticker)
	payload, err := c.chart(ctx, symbol, r.From, r.To, false)
	if err != nil {
		return nil, fmt.Errorf("fetching prices for %s: %w", symbol, err)
	}

	result := payload.Chart.Result[0]
	series := divtrack.NewPriceSeries(result.Meta.Currency)
	if len(result.Indicators.Quote) == 0 {
		return series, nil
	}
	closes := result.Indicators.Quote[0].Close
	for i, ts := range result.Timestamp {
		if i >= len(closes) || closes[i] == nil {
			continue
		}
		on := date.FromUnix(ts)
		if !r.Contains(on) {
			// period bounds are in exchange time, trim the stragglers.
			continue
		}
		series.Append(on, *closes[i])
	}
	return series, nil
}

// Fundamentals returns the company's short name and trailing EPS from the
// quoteSummary endpoint. EPS is frequently missing for funds and young
// listings; that is an absent field, not an error.
func (c *Client) Fundamentals(ctx context.Context, ticker string) (divtrack.Fundamentals, error) {
	symbol := c.symbol(ticker)
	addr := fmt.Sprintf("%s/v10/finance/quoteSummary/%s?modules=price,defaultKeyStatistics",
		c.baseURL, url.PathEscape(symbol))

	var jobj any
	if err := jwget(ctx, c.http, addr, &jobj, status); err != nil {
		return divtrack.Fundamentals{}, fmt.Errorf("fetching fundamentals for %s: %w", symbol, err)
	}

	var f divtrack.Fundamentals
	if name, err := jsonstring(jobj, "$.quoteSummary.result[0].price.shortName"); err == nil {
		f.ShortName = name
	}
	if cur, err := jsonstring(jobj, "$.quoteSummary.result[0].price.currency"); err == nil {
		f.Currency = cur
	}
	if eps, err := jsonfloat(jobj, "$.quoteSummary.result[0].defaultKeyStatistics.trailingEps.raw"); err == nil {
		f.TrailingEPS, f.HasEPS = eps, true
	}
	return f, nil
}

// jsonfloat extracts a float64 at the given jsonpath.
func jsonfloat(jobj any, path string) (float64, error) {
	jval, err := jsonpath.Get(path, jobj)
	if err != nil {
		return 0, fmt.Errorf("error parsing %q: %w", path, err)
	}
	// jsonpath is never clear about whether it returns a list of 1 answer, or
	// a single answer: keep the first one if any.
	if jlist, ok := jval.([]any); ok && len(jlist) > 0 {
		jval = jlist[0]
	}
	val, ok := jval.(float64)
	if !ok {
		return 0, fmt.Errorf("value at %q is not a number: %v", path, jval)
	}
	return val, nil
}

// jsonstring extracts a string at the given jsonpath.
func jsonstring(jobj any, path string) (string, error) {
	jval, err := jsonpath.Get(path, jobj)
	if err != nil {
		return "", fmt.Errorf("error parsing %q: %w", path, err)
	}
	if jlist, ok := jval.([]any); ok && len(jlist) > 0 {
		jval = jlist[0]
	}
	val, ok := jval.(string)
	if !ok {
		return "", fmt.Errorf("value at %q is not a string: %v", path, jval)
	}
	return val, nil
}
