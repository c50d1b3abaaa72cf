package main

import (
	"context"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"github.com/johannkk1/MacroCharts/common"
	"github.com/johannkk1/MacroCharts/config"
	"github.com/johannkk1/MacroCharts/orchestrator"
	"github.com/johannkk1/MacroCharts/shared/kafka"
	"github.com/johannkk1/MacroCharts/types"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()
	common.SetupLogging(cfg.LogLevel, cfg.LogPretty)

	log.Info().Msg("📨 Refresh worker - Starting...")

	if len(cfg.KafkaBrokers) == 0 {
		log.Fatal().Msg("❌ KAFKA_BROKERS is required for the worker")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	rt := orchestrator.NewRuntime(ctx, cfg)
	defer rt.Close()

	handler := &kafka.TypedMessageHandler[types.RefreshRequest]{
		Validate: func(req *types.RefreshRequest) bool {
			return strings.TrimSpace(req.Country) != ""
		},
		Process: func(ctx context.Context, req *types.RefreshRequest) error {
			runCtx, cancel := context.WithTimeout(ctx, cfg.NewsTimeout)
			defer cancel()

			resp := rt.Service.GetNews(runCtx, req.Country)
			log.Info().
				Str("country", req.Country).
				Str("requested_by", req.RequestedBy).
				Int("articles", len(resp.News)).
				Float64("score", resp.Hexagon.Center.Score).
				Str("regime", string(resp.Hexagon.Center.Regime)).
				Msg("✅ Refresh complete")
			return nil
		},
		AlwaysMark: true,
	}

	consumer, err := kafka.NewConsumer(kafka.ConsumerConfig{
		Brokers: cfg.KafkaBrokers,
		Topic:   cfg.KafkaRefreshTopic,
		GroupID: cfg.KafkaGroupID,
		Handler: handler,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("❌ Failed to create Kafka consumer")
	}

	log.Info().Strs("brokers", cfg.KafkaBrokers).Msg("🔗 Kafka Brokers")
	log.Info().Str("topic", cfg.KafkaRefreshTopic).Msg("📋 Topic")
	log.Info().Str("group", cfg.KafkaGroupID).Msg("👥 Consumer Group")

	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
		<-sigChan
		log.Info().Msg("Shutting down...")
		cancel()
	}()

	if err := consumer.Start(ctx); err != nil {
		log.Error().Err(err).Msg("❌ Kafka consumer failed to start")
	}
	<-ctx.Done()

	if err := consumer.Close(); err != nil {
		log.Error().Err(err).Msg("❌ Failed to close consumer")
	}
}
