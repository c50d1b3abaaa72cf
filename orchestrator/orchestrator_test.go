package orchestrator

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/johannkk1/MacroCharts/hexagon"
	"github.com/johannkk1/MacroCharts/summary"
	"github.com/johannkk1/MacroCharts/types"
)

var fixedNow = time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

type stubSource struct {
	name  string
	items []types.RawNewsItem
	err   error
	panic bool
	asked []string
}

func (s *stubSource) Name() string { return s.name }

func (s *stubSource) Fetch(_ context.Context, country string) ([]types.RawNewsItem, error) {
	s.asked = append(s.asked, country)
	if s.panic {
		panic("boom")
	}
	return s.items, s.err
}

type recordingSink struct {
	mu     sync.Mutex
	snaps  []types.Snapshot
	events []types.ScorecardEvent
	err    error
}

func (r *recordingSink) Archive(_ context.Context, snap types.Snapshot) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.snaps = append(r.snaps, snap)
	return r.err
}

func (r *recordingSink) Publish(_ context.Context, ev types.ScorecardEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, ev)
	return r.err
}

func newTestService(vendor, feeds NewsSource, opts ...Option) *Service {
	gen := summary.NewGenerator(nil).WithClock(func() time.Time { return fixedNow }).WithSeed(7)
	base := []Option{
		WithClock(func() time.Time { return fixedNow }),
		WithSeed(42),
		WithRunIDs(func() string { return "run-1" }),
	}
	return NewService(vendor, feeds, gen, hexagon.NewScorer(), append(base, opts...)...)
}

func TestGetNewsMergesVendorFirst(t *testing.T) {
	vendor := &stubSource{name: "vendor", items: []types.RawNewsItem{
		{Title: "Fed holds rates steady", Publisher: "Reuters", PublishedAt: fixedNow.Add(-3 * time.Hour)},
	}}
	feeds := &stubSource{name: "feeds", items: []types.RawNewsItem{
		{Title: "Fed holds rates steady", Publisher: "Bloomberg", Summary: "dup", PublishedAt: fixedNow.Add(-1 * time.Hour)},
		{Title: "Oil prices surge on supply fears", Publisher: "FT", Summary: "Brent up.", PublishedAt: fixedNow.Add(-2 * time.Hour)},
	}}
	sink := &recordingSink{}

	resp := newTestService(vendor, feeds, WithArchiver(sink), WithPublisher(sink)).GetNews(context.Background(), " US ")

	require.Len(t, resp.News, 2)
	assert.Equal(t, "Oil prices surge on supply fears", resp.News[0].Title)
	assert.Equal(t, types.SourceRSS, resp.News[0].SourceType)
	assert.Equal(t, "Fed holds rates steady", resp.News[1].Title)
	assert.Equal(t, "Reuters", resp.News[1].Publisher)
	assert.Equal(t, types.SourceYahoo, resp.News[1].SourceType)

	assert.Equal(t, []string{"US"}, vendor.asked)
	assert.Equal(t, 2, resp.Summary.ArticleCount)
	assert.Len(t, resp.Hexagon.Hexagons, len(types.Dimensions))

	require.Len(t, sink.snaps, 1)
	assert.Equal(t, "run-1", sink.snaps[0].RunID)
	assert.Equal(t, "US", sink.snaps[0].Country)
	assert.Len(t, sink.snaps[0].Vendor, 1)
	assert.Len(t, sink.snaps[0].Feed, 2)

	require.Len(t, sink.events, 1)
	ev := sink.events[0]
	assert.Equal(t, "run-1", ev.RunID)
	assert.Equal(t, 2, ev.ArticleCount)
	assert.Equal(t, resp.Hexagon.Center.Score, ev.Score)
	assert.Equal(t, resp.Hexagon.Center.Regime, ev.Regime)
	assert.Equal(t, fixedNow, ev.GeneratedAt)
}

func TestGetNewsDegradesWhenSourcesFail(t *testing.T) {
	vendor := &stubSource{name: "vendor", err: errors.New("vendor down")}
	feeds := &stubSource{name: "feeds", panic: true}

	resp := newTestService(vendor, feeds).GetNews(context.Background(), "DE")

	assert.Empty(t, resp.News)
	assert.Equal(t, summary.Empty(), resp.Summary)
	assert.Equal(t, hexagon.Simulated("DE"), resp.Hexagon)
}

func TestGetNewsWithoutSources(t *testing.T) {
	resp := newTestService(nil, nil).GetNews(context.Background(), "JP")
	assert.Equal(t, Degraded("JP"), resp)
}

func TestGetNewsIgnoresSinkErrors(t *testing.T) {
	feeds := &stubSource{name: "feeds", items: []types.RawNewsItem{{Title: "Stocks rally on earnings", PublishedAt: fixedNow}}}
	sink := &recordingSink{err: errors.New("unreachable")}

	resp := newTestService(nil, feeds, WithArchiver(sink), WithPublisher(sink)).GetNews(context.Background(), "UK")

	require.Len(t, resp.News, 1)
	assert.Len(t, sink.snaps, 1)
	assert.Len(t, sink.events, 1)
}

func TestGetNewsIsDeterministicForFixedSeed(t *testing.T) {
	feeds := &stubSource{name: "feeds", items: []types.RawNewsItem{
		{Title: "Central bank signals rate cut", PublishedAt: fixedNow.Add(-time.Hour)},
		{Title: "Inflation falling faster than expected", PublishedAt: fixedNow.Add(-2 * time.Hour)},
		{Title: "Government faces budget deficit", PublishedAt: fixedNow.Add(-3 * time.Hour)},
	}}

	a := newTestService(nil, feeds).GetNews(context.Background(), "US")
	b := newTestService(nil, feeds).GetNews(context.Background(), "US")
	assert.Equal(t, a, b)
}

type stubReader struct {
	mu    sync.Mutex
	calls []string
}

func (s *stubReader) Indicator(_ context.Context, name string) (types.Reading, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls = append(s.calls, name)
	switch name {
	case "broken":
		return types.Reading{}, errors.New("unknown indicator")
	case "cpi":
		return types.Reading{Name: name, Source: "static"}, nil
	}
	return types.Reading{Name: name, Source: "fred"}, nil
}

func TestWarmOnceCountsLiveReadings(t *testing.T) {
	r := &stubReader{}
	w := NewWarmer(r, []string{"unemployment", "cpi", "broken", "dxy"})

	assert.Equal(t, 2, w.WarmOnce(context.Background()))
	assert.Equal(t, []string{"unemployment", "cpi", "broken", "dxy"}, r.calls)
}

func TestWarmerRejectsBadSchedule(t *testing.T) {
	w := NewWarmer(&stubReader{}, nil)
	require.Error(t, w.Start("not a schedule"))
}
