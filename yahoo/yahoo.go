// Package yahoo implements divtrack.MarketDataClient against the public
// Yahoo Finance endpoints: the v8 chart API for dividends and daily closes,
// and the v10 quoteSummary API for company fundamentals.
package yahoo

import (
	"net/http"
	"strings"

	"github.com/divlab/divtrack"
)

const defaultBaseURL = "https://query1.finance.yahoo.com"

// Client fetches market data from Yahoo Finance. The zero value is not
// usable; use New.
type Client struct {
	http    *http.Client
	baseURL string
	suffix  string
}

// Option configures a Client.
type Option func(*Client)

// WithSuffix appends an exchange suffix (e.g. ".NS" for NSE-listed tickers)
// to every bare ticker passed to the client. Tickers that already carry a
// suffix are left alone.
func WithSuffix(suffix string) Option {
	return func(c *Client) { c.suffix = suffix }
}

// WithBaseURL overrides the API server, for tests.
func WithBaseURL(url string) Option {
	return func(c *Client) { c.baseURL = strings.TrimSuffix(url, "/") }
}

// WithHTTPClient overrides the underlying HTTP client, disabling the default
// daily disk cache.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.http = h }
}

// New returns a Client backed by a disk-cached HTTP client whose entries
// expire daily.
func New(opts ...Option) *Client {
	c := &Client{http: daily(), baseURL: defaultBaseURL}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// symbol returns the ticker as Yahoo knows it, applying the exchange suffix
// to bare tickers.
func (c *Client) symbol(ticker string) string {
	if c.suffix == "" || strings.Contains(ticker, ".") {
		return ticker
	}
	return ticker + c.suffix
}

// status maps the API status codes onto the divtrack sentinel errors.
func status(code int) error {
	switch code {
	case http.StatusNotFound:
		return divtrack.ErrUnknownTicker
	case http.StatusTooManyRequests:
		return divtrack.ErrRateLimited
	default:
		return nil
	}
}

var _ divtrack.MarketDataClient = (*Client)(nil)
