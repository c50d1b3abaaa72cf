package orchestrator

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/robfig/cron/v3"

	"github.com/johannkk1/MacroCharts/types"
)

// IndicatorReader is the part of marketdata.Provider the warmer touches.
type IndicatorReader interface {
	Indicator(ctx context.Context, name string) (types.Reading, error)
}

// Warmer refreshes the indicator cache on a cron schedule so dashboard
// requests rarely wait on upstream APIs.
type Warmer struct {
	reader  IndicatorReader
	names   []string
	timeout time.Duration
	cron    *cron.Cron
	cronID  cron.EntryID
	mu      sync.Mutex
	running bool
}

// NewWarmer creates a warmer over the named indicators.
func NewWarmer(reader IndicatorReader, names []string) *Warmer {
	return &Warmer{
		reader:  reader,
		names:   names,
		timeout: 2 * time.Minute,
		cron:    cron.New(),
	}
}

// Start schedules the warm-up and runs it once immediately.
func (w *Warmer) Start(schedule string) error {
	id, err := w.cron.AddFunc(schedule, func() {
		w.WarmOnce(context.Background())
	})
	if err != nil {
		return fmt.Errorf("failed to add cron job: %w", err)
	}
	w.cronID = id
	w.cron.Start()
	log.Info().Str("schedule", schedule).Int("indicators", len(w.names)).Msg("⏰ indicator warmer started")

	go w.WarmOnce(context.Background())
	return nil
}

// Stop halts the schedule and waits for a running job to finish.
func (w *Warmer) Stop() {
	<-w.cron.Stop().Done()
}

// WarmOnce reads every indicator through the cache. It returns how many
// readings came from a live source. Overlapping calls are skipped.
func (w *Warmer) WarmOnce(ctx context.Context) int {
	w.mu.Lock()
	if w.running {
		w.mu.Unlock()
		log.Debug().Msg("indicator warm-up already running, skipping")
		return 0
	}
	w.running = true
	w.mu.Unlock()
	defer func() {
		w.mu.Lock()
		w.running = false
		w.mu.Unlock()
	}()

	ctx, cancel := context.WithTimeout(ctx, w.timeout)
	defer cancel()

	live := 0
	for _, name := range w.names {
		r, err := w.reader.Indicator(ctx, name)
		if err != nil {
			log.Warn().Err(err).Str("indicator", name).Msg("⚠️ indicator warm-up failed")
			continue
		}
		if r.Source != "static" {
			live++
		}
	}
	log.Info().Int("live", live).Int("total", len(w.names)).Msg("🔥 indicator cache warmed")
	return live
}
