// Package rssfeeds fetches per-country news from Google News search feeds
// and a fixed list of outlet feeds.
package rssfeeds

import (
	"context"
	"fmt"
	"net/http"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/johannkk1/MacroCharts/config"
	"github.com/johannkk1/MacroCharts/types"
)

// Source is the feed-aggregator news source.
type Source struct {
	client       *http.Client
	feeds        func(country string) []FeedConfig
	itemsPerFeed int
	concurrency  int
	extractor    *Extractor
}

// Option configures a Source.
type Option func(*Source)

// WithFeeds overrides the feed list resolver.
func WithFeeds(f func(country string) []FeedConfig) Option {
	return func(s *Source) { s.feeds = f }
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(c *http.Client) Option {
	return func(s *Source) { s.client = c }
}

// WithLimits sets how many items are kept per feed and how many feeds are
// fetched at once.
func WithLimits(itemsPerFeed, concurrency int) Option {
	return func(s *Source) {
		if itemsPerFeed > 0 {
			s.itemsPerFeed = itemsPerFeed
		}
		if concurrency > 0 {
			s.concurrency = concurrency
		}
	}
}

// WithExtractor enables full-page summary enrichment.
func WithExtractor(e *Extractor) Option {
	return func(s *Source) { s.extractor = e }
}

// NewSource creates a feed source with the default feed list.
func NewSource(opts ...Option) *Source {
	s := &Source{
		client:       &http.Client{Timeout: config.FeedFetchTimeout},
		feeds:        FeedsFor,
		itemsPerFeed: config.DefaultFeedItemsPerFeed,
		concurrency:  config.DefaultFeedConcurrency,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// NewSourceFromConfig builds a Source from runtime configuration.
func NewSourceFromConfig(cfg config.Config) *Source {
	opts := []Option{WithLimits(cfg.FeedItemsPerFeed, cfg.FeedConcurrency)}
	if cfg.FeedExtractContent {
		opts = append(opts, WithExtractor(NewExtractor()))
	}
	return NewSource(opts...)
}

// Name identifies the source in logs.
func (s *Source) Name() string { return "rss" }

// Fetch pulls every feed for country concurrently. Results are concatenated
// in feed-list order; a failing feed contributes nothing. An error is
// returned only when every feed failed.
func (s *Source) Fetch(ctx context.Context, country string) ([]types.RawNewsItem, error) {
	feeds := s.feeds(country)
	if len(feeds) == 0 {
		return nil, nil
	}

	results := make([][]types.RawNewsItem, len(feeds))
	failed := make([]bool, len(feeds))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.concurrency)
	for i, feed := range feeds {
		g.Go(func() error {
			items, err := FetchFeed(gctx, s.client, feed.URL, s.itemsPerFeed)
			if err != nil {
				log.Warn().Err(err).Str("feed", feed.Name).Msg("⚠️ feed unavailable")
				failed[i] = true
				return nil
			}
			log.Debug().Str("feed", feed.Name).Int("count", len(items)).Msg("feed fetched")
			results[i] = items
			return nil
		})
	}
	_ = g.Wait()

	var out []types.RawNewsItem
	failures := 0
	for i, items := range results {
		if failed[i] {
			failures++
		}
		out = append(out, items...)
	}
	if failures == len(feeds) {
		return nil, fmt.Errorf("all %d feeds failed for %s", len(feeds), country)
	}

	if s.extractor != nil {
		s.extractor.EnrichAll(ctx, out)
	}

	log.Info().Str("country", country).Int("feeds", len(feeds)).Int("count", len(out)).Msg("📰 RSS items fetched")
	return out, nil
}
