// Package marketdata fetches price series and economic indicators from the
// Yahoo chart API, FRED and API Ninjas, falling back to static values when
// an upstream is missing or down.
package marketdata

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/time/rate"

	"github.com/johannkk1/MacroCharts/cache"
	"github.com/johannkk1/MacroCharts/config"
)

const (
	DefaultChartURL  = "https://query1.finance.yahoo.com/v8/finance/chart"
	DefaultFredURL   = "https://api.stlouisfed.org/fred/series/observations"
	DefaultNinjasURL = "https://api.api-ninjas.com/v1"

	DefaultTimeout = 10 * time.Second
)

// ErrNoData is returned when an upstream answered but had nothing usable.
var ErrNoData = errors.New("no data")

// StatusError is a non-200 answer from an upstream.
type StatusError struct {
	Endpoint   string
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s returned %d: %s", e.Endpoint, e.StatusCode, e.Body)
}

// Provider implements summary.MarketDataProvider and serves the indicator
// catalogue.
type Provider struct {
	chartURL  string
	fredURL   string
	ninjasURL string

	fredKey   string
	ninjasKey string

	httpClient *http.Client
	limiter    *rate.Limiter
	cache      cache.Cache
	now        func() time.Time
}

// Option configures a Provider.
type Option func(*Provider)

// WithEndpoints overrides the upstream base URLs; empty values keep defaults.
func WithEndpoints(chartURL, fredURL, ninjasURL string) Option {
	return func(p *Provider) {
		if chartURL != "" {
			p.chartURL = chartURL
		}
		if fredURL != "" {
			p.fredURL = fredURL
		}
		if ninjasURL != "" {
			p.ninjasURL = ninjasURL
		}
	}
}

// WithKeys sets the FRED and API Ninjas credentials.
func WithKeys(fredKey, ninjasKey string) Option {
	return func(p *Provider) {
		p.fredKey = fredKey
		p.ninjasKey = ninjasKey
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(c *http.Client) Option {
	return func(p *Provider) {
		p.httpClient = c
	}
}

// WithRateLimit caps outbound requests per second across all upstreams.
func WithRateLimit(rps float64) Option {
	return func(p *Provider) {
		if rps <= 0 {
			p.limiter = rate.NewLimiter(rate.Inf, 1)
			return
		}
		p.limiter = rate.NewLimiter(rate.Limit(rps), max(1, int(rps)))
	}
}

// WithCache sets the read-through cache. A nil cache disables caching.
func WithCache(c cache.Cache) Option {
	return func(p *Provider) {
		p.cache = c
	}
}

// WithClock replaces the clock used for timestamps and static histories.
func WithClock(now func() time.Time) Option {
	return func(p *Provider) {
		p.now = now
	}
}

// New creates a Provider.
func New(opts ...Option) *Provider {
	p := &Provider{
		chartURL:   DefaultChartURL,
		fredURL:    DefaultFredURL,
		ninjasURL:  DefaultNinjasURL,
		httpClient: &http.Client{Timeout: DefaultTimeout},
		limiter:    rate.NewLimiter(2, 2),
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// NewFromConfig builds a Provider from runtime configuration.
func NewFromConfig(cfg config.Config, c cache.Cache) *Provider {
	return New(
		WithKeys(cfg.FredAPIKey, cfg.NinjasAPIKey),
		WithRateLimit(cfg.MarketDataRPS),
		WithCache(c),
	)
}

// getJSON performs a rate-limited GET and decodes the JSON body into out.
func (p *Provider) getJSON(ctx context.Context, endpoint string, params url.Values, header http.Header, out any) error {
	if err := p.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limit wait: %w", err)
	}

	reqURL := endpoint
	if len(params) > 0 {
		reqURL += "?" + params.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	for k, vs := range header {
		for _, v := range vs {
			req.Header.Add(k, v)
		}
	}
	if req.Header.Get("User-Agent") == "" {
		req.Header.Set("User-Agent", config.BrowserUserAgent)
	}

	log.Debug().Str("url", endpoint).Msg("market data request")

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return &StatusError{Endpoint: endpoint, StatusCode: resp.StatusCode, Body: string(body)}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
