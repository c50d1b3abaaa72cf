// Package orchestrator runs one end-to-end cycle for a country: fetch the
// vendor and feed sources, classify and merge, summarize, score, then hand
// the result to the optional archive and event sinks.
package orchestrator

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/johannkk1/MacroCharts/classify"
	"github.com/johannkk1/MacroCharts/deduplication"
	"github.com/johannkk1/MacroCharts/hexagon"
	"github.com/johannkk1/MacroCharts/summary"
	"github.com/johannkk1/MacroCharts/types"
)

// sinkTimeout bounds each archive upload and event publish.
const sinkTimeout = 30 * time.Second

// NewsSource produces raw headlines for a country.
type NewsSource interface {
	Name() string
	Fetch(ctx context.Context, country string) ([]types.RawNewsItem, error)
}

// Archiver stores the raw source output of a run.
type Archiver interface {
	Archive(ctx context.Context, snap types.Snapshot) error
}

// Publisher announces a finished scorecard.
type Publisher interface {
	Publish(ctx context.Context, event types.ScorecardEvent) error
}

// Service wires the sources and scoring stages together.
type Service struct {
	vendor    NewsSource
	feeds     NewsSource
	summaries *summary.Generator
	scorer    *hexagon.Scorer
	archiver  Archiver
	publisher Publisher
	now       func() time.Time
	seed      func() uint64
	newRunID  func() string
}

// Option configures a Service.
type Option func(*Service)

// WithArchiver stores every run's raw snapshot.
func WithArchiver(a Archiver) Option {
	return func(s *Service) { s.archiver = a }
}

// WithPublisher emits a ScorecardEvent after every run.
func WithPublisher(p Publisher) Option {
	return func(s *Service) { s.publisher = p }
}

// WithClock replaces the wall clock.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// WithSeed fixes the classifier jitter of every run.
func WithSeed(seed uint64) Option {
	return func(s *Service) { s.seed = func() uint64 { return seed } }
}

// WithRunIDs replaces the run ID generator.
func WithRunIDs(f func() string) Option {
	return func(s *Service) { s.newRunID = f }
}

// NewService creates a Service. Either source may be nil.
func NewService(vendor, feeds NewsSource, summaries *summary.Generator, scorer *hexagon.Scorer, opts ...Option) *Service {
	if summaries == nil {
		summaries = summary.NewGenerator(nil)
	}
	if scorer == nil {
		scorer = hexagon.NewScorer()
	}
	s := &Service{
		vendor:    vendor,
		feeds:     feeds,
		summaries: summaries,
		scorer:    scorer,
		now:       time.Now,
		newRunID:  uuid.NewString,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.seed == nil {
		now := s.now
		s.seed = func() uint64 { return uint64(now().UnixNano()) }
	}
	return s
}

// GetNews builds the full response for country. It never fails: sources
// that error contribute nothing, and a panic anywhere in the pipeline
// yields the degraded response.
func (s *Service) GetNews(ctx context.Context, country string) (resp types.NewsResponse) {
	country = strings.TrimSpace(country)
	runID := s.newRunID()
	logger := log.With().Str("run_id", runID).Str("country", country).Logger()
	started := s.now()

	defer func() {
		if r := recover(); r != nil {
			logger.Error().Interface("panic", r).Msg("❌ pipeline failed, serving degraded response")
			resp = Degraded(country)
		}
	}()

	logger.Info().Msg("🚀 news run started")

	snap := s.fetch(ctx, country)
	snap.RunID = runID

	c := classify.New(classify.NewRand(s.seed()))
	agg := deduplication.NewAggregator(c, s.now)
	feed := agg.BuildAll(snap.Feed, types.SourceRSS)
	news := agg.Aggregate(snap.Vendor, feed)

	resp = types.NewsResponse{
		News:    news,
		Summary: s.summaries.Summarize(ctx, news, country),
		Hexagon: s.scorer.Score(news, country),
	}

	s.archive(ctx, snap, logger)
	s.publish(ctx, types.ScorecardEvent{
		RunID:        runID,
		Country:      country,
		Score:        resp.Hexagon.Center.Score,
		Regime:       resp.Hexagon.Center.Regime,
		ArticleCount: len(news),
		GeneratedAt:  s.now().UTC(),
	}, logger)

	logger.Info().
		Int("vendor", len(snap.Vendor)).
		Int("feed", len(snap.Feed)).
		Int("kept", len(news)).
		Float64("score", resp.Hexagon.Center.Score).
		Str("regime", string(resp.Hexagon.Center.Regime)).
		Dur("took", s.now().Sub(started)).
		Msg("✅ news run complete")
	return resp
}

// Degraded is the response served when nothing else could be built.
func Degraded(country string) types.NewsResponse {
	return types.NewsResponse{
		News:    []types.NewsItem{},
		Summary: summary.Empty(),
		Hexagon: hexagon.Simulated(country),
	}
}

// fetch queries both sources at once. The result keeps vendor and feed
// apart so the merge order stays fixed.
func (s *Service) fetch(ctx context.Context, country string) types.Snapshot {
	snap := types.Snapshot{Country: country, FetchedAt: s.now().UTC()}

	var g errgroup.Group
	g.Go(func() error {
		snap.Vendor = fetchOne(ctx, s.vendor, country)
		return nil
	})
	g.Go(func() error {
		snap.Feed = fetchOne(ctx, s.feeds, country)
		return nil
	})
	_ = g.Wait()
	return snap
}

func fetchOne(ctx context.Context, src NewsSource, country string) (items []types.RawNewsItem) {
	if src == nil {
		return nil
	}
	defer func() {
		if r := recover(); r != nil {
			log.Warn().Str("source", src.Name()).Interface("panic", r).Msg("⚠️ source panicked")
			items = nil
		}
	}()

	items, err := src.Fetch(ctx, country)
	if err != nil {
		log.Warn().Err(err).Str("source", src.Name()).Str("country", country).Msg("⚠️ source unavailable")
		return nil
	}
	return items
}

func (s *Service) archive(ctx context.Context, snap types.Snapshot, logger zerolog.Logger) {
	if s.archiver == nil {
		return
	}
	actx, cancel := context.WithTimeout(context.WithoutCancel(ctx), sinkTimeout)
	defer cancel()
	if err := s.archiver.Archive(actx, snap); err != nil {
		logger.Warn().Err(err).Msg("⚠️ snapshot archive failed")
	}
}

func (s *Service) publish(ctx context.Context, ev types.ScorecardEvent, logger zerolog.Logger) {
	if s.publisher == nil {
		return
	}
	pctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), sinkTimeout)
	defer cancel()
	if err := s.publisher.Publish(pctx, ev); err != nil {
		logger.Warn().Err(err).Msg("⚠️ scorecard publish failed")
	}
}
