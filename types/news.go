package types

import (
	"crypto/sha256"
	"encoding/hex"
	"time"
)

// Category is the topical bucket an item is assigned to.
type Category string

const (
	CategoryEconomy    Category = "Economy"
	CategoryFinance    Category = "Finance"
	CategoryPolitics   Category = "Politics"
	CategoryTechnology Category = "Technology"
	CategoryEnergy     Category = "Energy"
	CategoryGeneral    Category = "General"
)

// Sentiment is the directional tone of a headline.
type Sentiment string

const (
	SentimentPositive Sentiment = "Positive"
	SentimentNegative Sentiment = "Negative"
	SentimentNeutral  Sentiment = "Neutral"
)

// SourceType records which kind of source produced an item.
type SourceType string

const (
	SourceYahoo SourceType = "Yahoo"
	SourceRSS   SourceType = "RSS"
)

// RawNewsItem is what a news source hands back before classification.
// A zero PublishedAt with DateMissing unset means the source sent a date
// that could not be parsed. DateMissing means it sent none at all.
type RawNewsItem struct {
	ID          string    `json:"id,omitempty"`
	Title       string    `json:"title"`
	Summary     string    `json:"summary"`
	Publisher   string    `json:"publisher"`
	Link        string    `json:"link"`
	PublishedAt time.Time `json:"published_at"`
	DateMissing bool      `json:"date_missing,omitempty"`
}

// GenerateID creates a short, stable ID from a URL or GUID.
func GenerateID(input string) string {
	hash := sha256.Sum256([]byte(input))
	return hex.EncodeToString(hash[:])[:16]
}

// NewsItem is a classified, display-ready headline.
type NewsItem struct {
	Title          string         `json:"title"`
	Summary        string         `json:"summary"`
	Publisher      string         `json:"publisher"`
	Link           string         `json:"link"`
	Time           string         `json:"time"`
	Timestamp      float64        `json:"timestamp"`
	Category       Category       `json:"category"`
	Sentiment      Sentiment      `json:"sentiment"`
	SentimentScore int            `json:"sentiment_score"`
	Impact         int            `json:"impact"`
	SourceType     SourceType     `json:"source_type"`
	Analysis       AnalysisBundle `json:"analysis"`
}

// ChainStep is one link of a simulated market chain reaction.
type ChainStep struct {
	Step   string `json:"step"`
	Detail string `json:"detail"`
}

// Lookback is a simulated T+0..T+5 price path for a reference asset.
type Lookback struct {
	Asset  string    `json:"asset"`
	Labels []string  `json:"labels"`
	Data   []float64 `json:"data"`
}

// SocialSentiment is a simulated crowd positioning split in percent.
type SocialSentiment struct {
	Bullish int `json:"bullish"`
	Bearish int `json:"bearish"`
	Neutral int `json:"neutral"`
}

// AnalysisBundle is the per-item narrative attached to each headline.
type AnalysisBundle struct {
	MarketImpact       string          `json:"market_impact"`
	InvestorSentiment  string          `json:"investor_sentiment"`
	ChainReaction      []ChainStep     `json:"chain_reaction"`
	HistoricalLookback Lookback        `json:"historical_lookback"`
	AffectedAssets     []string        `json:"affected_assets"`
	SocialSentiment    SocialSentiment `json:"social_sentiment"`
}

// NewsResponse is the full payload returned for one country.
type NewsResponse struct {
	News    []NewsItem       `json:"news"`
	Summary CountrySummary   `json:"summary"`
	Hexagon HexagonScorecard `json:"hexagon"`
}
