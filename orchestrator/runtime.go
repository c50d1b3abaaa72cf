package orchestrator

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/johannkk1/MacroCharts/cache"
	"github.com/johannkk1/MacroCharts/common"
	"github.com/johannkk1/MacroCharts/config"
	"github.com/johannkk1/MacroCharts/hexagon"
	"github.com/johannkk1/MacroCharts/marketdata"
	"github.com/johannkk1/MacroCharts/rssfeeds"
	"github.com/johannkk1/MacroCharts/shared/kafka"
	"github.com/johannkk1/MacroCharts/summary"
	"github.com/johannkk1/MacroCharts/yahoo"
)

// Runtime bundles the long-lived clients built from configuration.
// Optional backends that are unset or unreachable are left nil.
type Runtime struct {
	Service  *Service
	Market   *marketdata.Provider
	Archive  *common.SnapshotArchiver
	Producer *kafka.Producer

	closers []func() error
}

// NewRuntime wires the pipeline from cfg. It never fails: Redis falls back
// to the in-process cache, and S3 or Kafka problems disable those sinks.
func NewRuntime(ctx context.Context, cfg config.Config) *Runtime {
	rt := &Runtime{}

	rt.Market = marketdata.NewFromConfig(cfg, rt.initCache(cfg))
	rt.Archive = initArchive(ctx, cfg)
	rt.Producer = rt.initProducer(cfg)

	vendor := yahoo.NewNewsSource(yahoo.WithNewsCount(cfg.VendorNewsCount))
	feeds := rssfeeds.NewSourceFromConfig(cfg)

	var opts []Option
	if rt.Archive != nil {
		opts = append(opts, WithArchiver(rt.Archive))
	}
	if rt.Producer != nil {
		opts = append(opts, WithPublisher(rt.Producer))
	}
	rt.Service = NewService(vendor, feeds, summary.NewGenerator(rt.Market), hexagon.NewScorer(), opts...)
	return rt
}

func (rt *Runtime) initCache(cfg config.Config) cache.Cache {
	if cfg.RedisAddr != "" {
		r, err := cache.NewRedis(cache.RedisConfig{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPass,
			DB:       cfg.RedisDB,
			Prefix:   "macro:",
		})
		if err == nil {
			log.Info().Str("addr", cfg.RedisAddr).Msg("✅ Redis indicator cache connected")
			rt.closers = append(rt.closers, r.Close)
			return r
		}
		log.Warn().Err(err).Msg("⚠️ Redis unavailable, using in-process cache")
	}

	m, err := cache.NewMemory(cfg.CacheSize)
	if err != nil {
		log.Warn().Err(err).Msg("⚠️ cache disabled")
		return nil
	}
	return m
}

// initArchive returns nil unless S3_BUCKET is set.
func initArchive(ctx context.Context, cfg config.Config) *common.SnapshotArchiver {
	if cfg.S3Bucket == "" {
		log.Info().Msg("S3 not configured; snapshots will not be archived")
		return nil
	}
	store, err := common.NewS3(ctx, common.S3Config{
		Region:       cfg.S3Region,
		Profile:      cfg.S3Profile,
		UsePathStyle: cfg.S3UsePathStyle,
		Endpoint:     cfg.S3Endpoint,
		AccessKey:    cfg.S3AccessKey,
		SecretKey:    cfg.S3SecretKey,
	})
	if err != nil {
		log.Warn().Err(err).Msg("⚠️ failed to init S3 client, archiving disabled")
		return nil
	}
	log.Info().Str("bucket", cfg.S3Bucket).Str("prefix", cfg.S3Prefix).Msg("☁️ snapshot archive enabled")
	return common.NewSnapshotArchiver(store, cfg.S3Bucket, cfg.S3Prefix)
}

func (rt *Runtime) initProducer(cfg config.Config) *kafka.Producer {
	if len(cfg.KafkaBrokers) == 0 {
		return nil
	}
	p, err := kafka.NewProducer(cfg.KafkaBrokers, kafka.Topics{
		Scorecards: cfg.KafkaScorecardTopic,
		Refresh:    cfg.KafkaRefreshTopic,
	})
	if err != nil {
		log.Warn().Err(err).Msg("⚠️ Kafka unavailable, scorecard events disabled")
		return nil
	}
	rt.closers = append(rt.closers, p.Close)
	log.Info().Strs("brokers", cfg.KafkaBrokers).Str("topic", cfg.KafkaScorecardTopic).Msg("✅ Kafka producer connected")
	return p
}

// Close releases every backend connection.
func (rt *Runtime) Close() {
	for i := len(rt.closers) - 1; i >= 0; i-- {
		if err := rt.closers[i](); err != nil {
			log.Warn().Err(err).Msg("close failed")
		}
	}
}
