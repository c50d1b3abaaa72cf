package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config is the runtime configuration read from the environment.
type Config struct {
	Port      string
	LogLevel  string
	LogPretty bool

	NewsTimeout        time.Duration
	FeedItemsPerFeed   int
	FeedConcurrency    int
	FeedExtractContent bool
	VendorNewsCount    int

	FredAPIKey    string
	NinjasAPIKey  string
	MarketDataRPS float64

	RedisAddr string
	RedisPass string
	RedisDB   int
	CacheSize int

	S3Bucket       string
	S3Region       string
	S3Profile      string
	S3Prefix       string
	S3UsePathStyle bool
	S3Endpoint     string
	S3AccessKey    string
	S3SecretKey    string

	KafkaBrokers        []string
	KafkaScorecardTopic string
	KafkaRefreshTopic   string
	KafkaGroupID        string

	IndicatorRefreshCron string
}

// Load reads configuration from environment variables, applying defaults.
// Call godotenv.Load first if a .env file should be honoured.
func Load() Config {
	return Config{
		Port:      GetEnvOrDefault("PORT", "8080"),
		LogLevel:  GetEnvOrDefault("LOG_LEVEL", "info"),
		LogPretty: GetEnvBool("LOG_PRETTY", false),

		NewsTimeout:        GetEnvDuration("NEWS_TIMEOUT", 45*time.Second),
		FeedItemsPerFeed:   GetEnvInt("FEED_ITEMS_PER_FEED", DefaultFeedItemsPerFeed),
		FeedConcurrency:    GetEnvInt("FEED_CONCURRENCY", DefaultFeedConcurrency),
		FeedExtractContent: GetEnvBool("FEED_EXTRACT_CONTENT", false),
		VendorNewsCount:    GetEnvInt("VENDOR_NEWS_COUNT", DefaultVendorNewsCount),

		FredAPIKey:    strings.TrimSpace(os.Getenv("FRED_API_KEY")),
		NinjasAPIKey:  strings.TrimSpace(os.Getenv("API_NINJAS_KEY")),
		MarketDataRPS: GetEnvFloat("MARKETDATA_RPS", 2),

		RedisAddr: strings.TrimSpace(os.Getenv("REDIS_ADDR")),
		RedisPass: os.Getenv("REDIS_PASS"),
		RedisDB:   GetEnvInt("REDIS_DB", 0),
		CacheSize: GetEnvInt("CACHE_SIZE", 512),

		S3Bucket:       strings.TrimSpace(os.Getenv("S3_BUCKET")),
		S3Region:       strings.TrimSpace(os.Getenv("S3_REGION")),
		S3Profile:      strings.TrimSpace(os.Getenv("S3_PROFILE")),
		S3Prefix:       normalizePrefix(os.Getenv("S3_PREFIX")),
		S3UsePathStyle: GetEnvBool("S3_USE_PATH_STYLE", false),
		S3Endpoint:     strings.TrimSpace(os.Getenv("S3_ENDPOINT")),
		S3AccessKey:    strings.TrimSpace(os.Getenv("S3_ACCESS_KEY")),
		S3SecretKey:    strings.TrimSpace(os.Getenv("S3_SECRET_KEY")),

		KafkaBrokers:        splitList(os.Getenv("KAFKA_BROKERS")),
		KafkaScorecardTopic: GetEnvOrDefault("KAFKA_SCORECARD_TOPIC", "macro.scorecards"),
		KafkaRefreshTopic:   GetEnvOrDefault("KAFKA_REFRESH_TOPIC", "macro.refresh-requests"),
		KafkaGroupID:        GetEnvOrDefault("KAFKA_GROUP_ID", "macro-worker"),

		IndicatorRefreshCron: GetEnvOrDefault("INDICATOR_REFRESH_CRON", "*/15 * * * *"),
	}
}

// GetEnvOrDefault returns the trimmed value of key, or def when unset.
func GetEnvOrDefault(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

// GetEnvInt parses key as an int, falling back to def on absence or error.
func GetEnvInt(key string, def int) int {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

// GetEnvFloat parses key as a float64.
func GetEnvFloat(key string, def float64) float64 {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return def
}

// GetEnvBool parses key with strconv.ParseBool.
func GetEnvBool(key string, def bool) bool {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return def
}

// GetEnvDuration accepts Go duration strings ("30s") or plain seconds ("30").
func GetEnvDuration(key string, def time.Duration) time.Duration {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	if d, err := time.ParseDuration(v); err == nil && d > 0 {
		return d
	}
	if secs, err := strconv.Atoi(v); err == nil && secs > 0 {
		return time.Duration(secs) * time.Second
	}
	return def
}

func normalizePrefix(p string) string {
	p = strings.Trim(strings.TrimSpace(p), "/")
	if p == "" {
		return ""
	}
	return p + "/"
}

func splitList(v string) []string {
	var out []string
	for _, part := range strings.Split(v, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
