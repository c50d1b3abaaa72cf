// Package yahoo is the vendor news source: headlines attached to a set of
// representative tickers per country, from the Yahoo Finance search API.
package yahoo

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/time/rate"

	"github.com/johannkk1/MacroCharts/config"
	"github.com/johannkk1/MacroCharts/types"
)

const (
	DefaultSearchURL = "https://query2.finance.yahoo.com/v1/finance/search"
	quotePageURL     = "https://finance.yahoo.com/quote/"
	defaultPublisher = "Yahoo Finance"
)

// CountryTickers lists the tickers whose news represents each region.
var CountryTickers = map[string][]string{
	"US":     {"^GSPC", "^DJI", "^IXIC", "AAPL", "MSFT", "GOOGL", "NVDA", "TSLA", "JPM"},
	"DE":     {"^GDAXI", "SIE.DE", "VOW3.DE", "ALV.DE", "BMW.DE", "DTE.DE", "SAP.DE"},
	"UK":     {"^FTSE", "HSBC", "BP", "SHEL", "ULVR.L", "AZN.L", "GSK.L"},
	"CN":     {"000001.SS", "^HSI", "BABA", "TCEHY", "JD", "BIDU", "PDD"},
	"JP":     {"^N225", "7203.T", "6758.T", "9984.T", "7974.T", "8035.T"},
	"Global": {"GC=F", "CL=F", "EURUSD=X", "BTC-USD", "^GSPC", "^STOXX50E"},
}

// TickersFor returns the ticker list for country, Global when unknown.
func TickersFor(country string) []string {
	if t, ok := CountryTickers[country]; ok {
		return t
	}
	return CountryTickers["Global"]
}

// searchItem covers both the flat search payload and the nested "content"
// shape newer endpoints return.
type searchItem struct {
	UUID                string `json:"uuid"`
	Title               string `json:"title"`
	Summary             string `json:"summary"`
	Publisher           string `json:"publisher"`
	Link                string `json:"link"`
	ProviderPublishTime int64  `json:"providerPublishTime"`
	Content             *struct {
		ID              string `json:"id"`
		Title           string `json:"title"`
		Summary         string `json:"summary"`
		PubDate         string `json:"pubDate"`
		ClickThroughURL *struct {
			URL string `json:"url"`
		} `json:"clickThroughUrl"`
		CanonicalURL *struct {
			URL string `json:"url"`
		} `json:"canonicalUrl"`
		Provider *struct {
			DisplayName string `json:"displayName"`
		} `json:"provider"`
	} `json:"content"`
}

type searchResponse struct {
	News []searchItem `json:"news"`
}

// NewsSource fetches ticker news. It implements orchestrator.NewsSource.
type NewsSource struct {
	searchURL  string
	newsCount  int
	httpClient *http.Client
	limiter    *rate.Limiter
}

// Option configures a NewsSource.
type Option func(*NewsSource)

// WithSearchURL overrides the search endpoint.
func WithSearchURL(u string) Option {
	return func(n *NewsSource) { n.searchURL = u }
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(c *http.Client) Option {
	return func(n *NewsSource) { n.httpClient = c }
}

// WithNewsCount sets how many headlines are requested per ticker.
func WithNewsCount(count int) Option {
	return func(n *NewsSource) {
		if count > 0 {
			n.newsCount = count
		}
	}
}

// WithRateLimit caps requests per second; zero disables the limit.
func WithRateLimit(rps float64) Option {
	return func(n *NewsSource) {
		if rps <= 0 {
			n.limiter = rate.NewLimiter(rate.Inf, 1)
			return
		}
		n.limiter = rate.NewLimiter(rate.Limit(rps), max(1, int(rps)))
	}
}

// NewNewsSource creates a vendor source.
func NewNewsSource(opts ...Option) *NewsSource {
	n := &NewsSource{
		searchURL:  DefaultSearchURL,
		newsCount:  config.DefaultVendorNewsCount,
		httpClient: &http.Client{Timeout: config.FeedFetchTimeout},
		limiter:    rate.NewLimiter(4, 4),
	}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// Name identifies the source in logs.
func (n *NewsSource) Name() string { return "yahoo" }

// Fetch walks the country's tickers in order. A ticker that fails is
// skipped; an error is returned only when all of them failed.
func (n *NewsSource) Fetch(ctx context.Context, country string) ([]types.RawNewsItem, error) {
	tickers := TickersFor(country)
	var out []types.RawNewsItem
	var lastErr error
	failures := 0

	for _, ticker := range tickers {
		items, err := n.tickerNews(ctx, ticker)
		if err != nil {
			if ctx.Err() != nil {
				return out, ctx.Err()
			}
			log.Warn().Err(err).Str("ticker", ticker).Msg("⚠️ vendor news unavailable")
			lastErr = err
			failures++
			continue
		}
		out = append(out, items...)
	}

	if failures == len(tickers) {
		return nil, fmt.Errorf("all %d tickers failed for %s: %w", len(tickers), country, lastErr)
	}
	log.Info().Str("country", country).Int("count", len(out)).Msg("📈 vendor news fetched")
	return out, nil
}

func (n *NewsSource) tickerNews(ctx context.Context, ticker string) ([]types.RawNewsItem, error) {
	if err := n.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit wait: %w", err)
	}

	params := url.Values{}
	params.Set("q", ticker)
	params.Set("newsCount", strconv.Itoa(n.newsCount))
	params.Set("quotesCount", "0")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, n.searchURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", config.BrowserUserAgent)

	resp, err := n.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 256))
		return nil, fmt.Errorf("search %s returned %d: %s", ticker, resp.StatusCode, body)
	}

	var sr searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&sr); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	out := make([]types.RawNewsItem, 0, len(sr.News))
	for _, it := range sr.News {
		raw := it.toRaw(ticker)
		if raw.Title == "" {
			continue
		}
		out = append(out, raw)
	}
	return out, nil
}

func (it searchItem) toRaw(ticker string) types.RawNewsItem {
	raw := types.RawNewsItem{
		ID:        it.UUID,
		Title:     it.Title,
		Summary:   it.Summary,
		Publisher: it.Publisher,
		Link:      it.Link,
	}
	if it.ProviderPublishTime > 0 {
		raw.PublishedAt = time.Unix(it.ProviderPublishTime, 0).UTC()
	}
	raw.DateMissing = it.ProviderPublishTime <= 0 && (it.Content == nil || it.Content.PubDate == "")

	if c := it.Content; c != nil {
		if c.ID != "" {
			raw.ID = c.ID
		}
		if c.Title != "" {
			raw.Title = c.Title
		}
		if c.Summary != "" {
			raw.Summary = c.Summary
		}
		if t, err := time.Parse(time.RFC3339, c.PubDate); err == nil {
			raw.PublishedAt = t.UTC()
		}
		switch {
		case c.ClickThroughURL != nil && c.ClickThroughURL.URL != "":
			raw.Link = c.ClickThroughURL.URL
		case c.CanonicalURL != nil && c.CanonicalURL.URL != "":
			raw.Link = c.CanonicalURL.URL
		}
		if c.Provider != nil && c.Provider.DisplayName != "" {
			raw.Publisher = c.Provider.DisplayName
		}
	}

	if raw.Link == "" {
		raw.Link = quotePageURL + ticker
	}
	if raw.Publisher == "" {
		raw.Publisher = defaultPublisher
	}
	return raw
}
