package config

import "time"

// Summary damping: scores reach full weight once this many items back them.
const (
	OverallDampingItems  = 10
	CategoryDampingItems = 5

	// SentimentThreshold splits Bullish/Neutral/Bearish on the damped average.
	SentimentThreshold = 2.0

	// TopTopicCount is how many recurring title words are reported.
	TopTopicCount = 5
	// MinTopicLength excludes short tokens from topic counting.
	MinTopicLength = 3
	// TopNewsCount is how many leading items are echoed in the summary.
	TopNewsCount = 3
)

// Scorecard weights; they sum to 1.
const (
	WeightMonetary  = 0.20
	WeightInflation = 0.20
	WeightCurrency  = 0.10
	WeightPolitical = 0.15
	WeightSentiment = 0.15
	WeightFiscal    = 0.10
	WeightExternal  = 0.10

	// BaselineScore is where every dimension starts before news moves it.
	BaselineScore = 50.0
)

// Narrative limits.
const (
	DriverScanLimit   = 5
	TopSourceLimit    = 3
	InsightScanLimit  = 10
	ExampleTitleChars = 60
	RelatedNewsLimit  = 3
)

// Fetch limits.
const (
	DefaultFeedItemsPerFeed = 5
	DefaultFeedConcurrency  = 4
	DefaultVendorNewsCount  = 10
	FeedFetchTimeout        = 10 * time.Second
	ExtractorTimeout        = 30 * time.Second
	ExtractorWorkers        = 5
)

// Indicator cache TTLs.
const (
	TTLPriceSeries  = 60 * time.Second
	TTLDefault      = 300 * time.Second
	TTLCommodity    = time.Hour
	TTLMonthlyMacro = 12 * time.Hour
	TTLPolicyRate   = 24 * time.Hour
)

// BrowserUserAgent is sent to feed and quote hosts that reject bare clients.
const BrowserUserAgent = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"
