package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"github.com/johannkk1/MacroCharts/api"
	"github.com/johannkk1/MacroCharts/common"
	"github.com/johannkk1/MacroCharts/config"
	"github.com/johannkk1/MacroCharts/marketdata"
	"github.com/johannkk1/MacroCharts/orchestrator"
)

func main() {
	// Load environment variables from .env if present (non-fatal if missing)
	_ = godotenv.Load()
	cfg := config.Load()
	common.SetupLogging(cfg.LogLevel, cfg.LogPretty)

	rt := orchestrator.NewRuntime(context.Background(), cfg)
	defer rt.Close()

	warmer := orchestrator.NewWarmer(rt.Market, marketdata.Names())
	if err := warmer.Start(cfg.IndicatorRefreshCron); err != nil {
		log.Error().Err(err).Msg("❌ indicator warmer not started")
	}

	deps := api.Deps{
		News:        rt.Service,
		Market:      rt.Market,
		NewsTimeout: cfg.NewsTimeout,
	}
	if rt.Archive != nil {
		deps.Snapshots = rt.Archive
	}
	if rt.Producer != nil {
		deps.Refresh = rt.Producer
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           api.NewRouter(deps),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info().Str("addr", srv.Addr).Msg("🚀 Starting API server")
		log.Info().Msg("API endpoints available:")
		log.Info().Msg("  GET  /api/health")
		log.Info().Msg("  GET  /api/news/:country")
		log.Info().Msg("  POST /api/news/:country/refresh")
		log.Info().Msg("  GET  /api/economic-data")
		log.Info().Msg("  GET  /api/indicators/:name")
		log.Info().Msg("  POST /api/classify")
		if deps.Snapshots != nil {
			log.Info().Msg("  GET  /api/snapshots/:country/latest")
		}
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	log.Info().Msg("Shutting down...")
	warmer.Stop()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("shutdown error")
	}
}
