// Package news scrapes recent headlines for a ticker from the Yahoo Finance
// news page. It is a best-effort collaborator: a scraping failure is an
// error the caller reports and moves past, never fatal to the rest of a view.
package news

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

const defaultBaseURL = "https://finance.yahoo.com"

// Headline is one scraped news item.
type Headline struct {
	Title string
	Link  string
}

// Provider scrapes headlines from a finance news site.
type Provider struct {
	http    *http.Client
	baseURL string
}

// Option configures a Provider.
type Option func(*Provider)

// WithBaseURL overrides the news site, for tests.
func WithBaseURL(u string) Option {
	return func(p *Provider) { p.baseURL = strings.TrimSuffix(u, "/") }
}

// WithHTTPClient overrides the underlying HTTP client.
func WithHTTPClient(h *http.Client) Option {
	return func(p *Provider) { p.http = h }
}

// NewProvider returns a Provider with a plain HTTP client; news pages are not
// worth caching.
func NewProvider(opts ...Option) *Provider {
	p := &Provider{http: http.DefaultClient, baseURL: defaultBaseURL}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Headlines returns up to n headlines for the ticker.
func (p *Provider) Headlines(ctx context.Context, ticker string, n int) ([]Headline, error) {
	addr := fmt.Sprintf("%s/quote/%s/news", p.baseURL, url.PathEscape(ticker))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, addr, nil)
	if err != nil {
		return nil, err
	}
	// mimic a browser, the site refuses obvious robots
	req.Header.Set("User-Agent", "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7)")

	resp, err := p.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch news page: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("news page returned status %d", resp.StatusCode)
	}
	return Parse(resp.Body, p.baseURL, n)
}

// Parse extracts up to n headlines from a news page document. Anchors without
// a title or with off-site fluff (ads, video carousels) are skipped.
func Parse(r io.Reader, baseURL string, n int) ([]Headline, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to parse HTML: %w", err)
	}

	var headlines []Headline
	doc.Find("a").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		if len(headlines) >= n {
			return false
		}
		href, ok := sel.Attr("href")
		if !ok || !strings.Contains(href, "/news/") {
			return true
		}
		title := strings.TrimSpace(sel.Find("h3").Text())
		if title == "" {
			title = strings.TrimSpace(sel.Text())
		}
		if title == "" {
			return true
		}
		if strings.HasPrefix(href, "/") {
			href = baseURL + href
		}
		if seen(headlines, href) {
			return true
		}
		headlines = append(headlines, Headline{Title: title, Link: href})
		return len(headlines) < n
	})
	return headlines, nil
}

func seen(headlines []Headline, link string) bool {
	for _, h := range headlines {
		if h.Link == link {
			return true
		}
	}
	return false
}
