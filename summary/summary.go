package summary

import (
	"context"
	"fmt"
	"math"
	"regexp"
	"sort"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/rs/zerolog/log"

	"github.com/johannkk1/MacroCharts/classify"
	"github.com/johannkk1/MacroCharts/config"
	"github.com/johannkk1/MacroCharts/types"
)

// MarketDataProvider supplies the price and economic series behind macro_data.
type MarketDataProvider interface {
	PriceSeries(ctx context.Context, symbol, period string) ([]types.Bar, error)
	Indicator(ctx context.Context, name string) (types.Reading, error)
	History(ctx context.Context, seriesID string) (types.Series, error)
}

// Generator rolls classified items up into a CountrySummary.
type Generator struct {
	market  MarketDataProvider
	now     func() time.Time
	newRand func() classify.Rand
}

// NewGenerator returns a Generator backed by market. market may be nil, in
// which case macro data is built from static defaults only.
func NewGenerator(market MarketDataProvider) *Generator {
	return &Generator{
		market: market,
		now:    time.Now,
		newRand: func() classify.Rand {
			return classify.NewRand(uint64(time.Now().UnixNano()))
		},
	}
}

// WithClock replaces the wall clock used for simulated series dates.
func (g *Generator) WithClock(now func() time.Time) *Generator {
	g.now = now
	return g
}

// WithSeed fixes the jitter of simulated series.
func (g *Generator) WithSeed(seed uint64) *Generator {
	g.newRand = func() classify.Rand { return classify.NewRand(seed) }
	return g
}

// Empty is the summary reported for a country with no items.
func Empty() types.CountrySummary {
	return types.CountrySummary{
		MarketSentiment: "Neutral",
		TopTopics:       []string{},
		Verdict:         "No data available.",
		MacroData:       []types.MacroIndicator{},
		TopNews:         []types.NewsItem{},
	}
}

// Summarize scores the batch and attaches macro indicators for country.
func (g *Generator) Summarize(ctx context.Context, items []types.NewsItem, country string) types.CountrySummary {
	if len(items) == 0 {
		return Empty()
	}

	s := Score(items)
	s.MacroData = g.MacroData(ctx, country, items)

	log.Debug().
		Str("country", country).
		Int("count", s.ArticleCount).
		Str("sentiment", s.MarketSentiment).
		Int("indicators", len(s.MacroData)).
		Msg("summary built")
	return s
}

// Score computes everything in the summary except macro data. It is pure.
func Score(items []types.NewsItem) types.CountrySummary {
	if len(items) == 0 {
		return Empty()
	}

	var total, eco, pol float64
	var ecoCount, polCount int
	for _, item := range items {
		v := float64(item.SentimentScore)
		total += v
		switch item.Category {
		case types.CategoryEconomy:
			eco += v
			ecoCount++
		case types.CategoryPolitics:
			pol += v
			polCount++
		}
	}

	n := len(items)
	avg := dampedAverage(total, n, config.OverallDampingItems)
	ecoScore := dampedAverage(eco, ecoCount, config.CategoryDampingItems)
	polScore := dampedAverage(pol, polCount, config.CategoryDampingItems)

	label := "Neutral"
	switch {
	case avg > config.SentimentThreshold:
		label = "Bullish"
	case avg < -config.SentimentThreshold:
		label = "Bearish"
	}

	topics := TopTopics(items)
	top := items[:min(config.TopNewsCount, n)]

	return types.CountrySummary{
		EcoScore:        round1(ecoScore),
		PolScore:        round1(polScore),
		MarketSentiment: label,
		SentimentScore:  round1(avg),
		TopTopics:       topics,
		Verdict:         verdict(n, label, ecoScore, ecoCount, polScore, polCount, topics),
		ArticleCount:    n,
		MacroData:       []types.MacroIndicator{},
		TopNews:         append([]types.NewsItem(nil), top...),
	}
}

// dampedAverage scales sum/n*10 by min(n, full)/full so thin samples read
// closer to zero.
func dampedAverage(sum float64, n, full int) float64 {
	if n == 0 {
		return 0
	}
	raw := sum / float64(n) * 10
	return raw * (float64(min(n, full)) / float64(full))
}

func verdict(n int, label string, eco float64, ecoCount int, pol float64, polCount int, topics []string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Based on %d analyzed reports, the market sentiment is %s.", n, strings.ToLower(label))

	switch {
	case math.Abs(eco) > config.SentimentThreshold:
		dir := "negatively"
		if eco > 0 {
			dir = "positively"
		}
		fmt.Fprintf(&b, " Economic indicators are trending %s (%d reports).", dir, ecoCount)
	case ecoCount > 0:
		b.WriteString(" Economic signals are currently mixed or neutral.")
	}

	switch {
	case math.Abs(pol) > config.SentimentThreshold:
		dir := "a concern"
		if pol > 0 {
			dir = "improving"
		}
		fmt.Fprintf(&b, " Political stability is %s (%d reports).", dir, polCount)
	case polCount > 0:
		b.WriteString(" The political landscape appears relatively stable.")
	}

	if len(topics) > 0 {
		fmt.Fprintf(&b, " Key themes include %s.", strings.Join(topics[:min(3, len(topics))], ", "))
	}
	return b.String()
}

var wordRe = regexp.MustCompile(`[\p{L}\p{N}_]+`)

var stopWords = map[string]struct{}{}

func init() {
	for _, w := range strings.Fields(`the a an in on at to for of and or with is are was were be has have had
		it that this from by as but not will would can could should may might must new us says
		stock market stocks markets year after before up down high low report news video watch`) {
		stopWords[w] = struct{}{}
	}
}

// TopTopics ranks recurring title words by count, ties broken by first
// appearance, and keeps the leading few.
func TopTopics(items []types.NewsItem) []string {
	counts := make(map[string]int)
	var order []string
	for _, item := range items {
		for _, w := range wordRe.FindAllString(strings.ToLower(item.Title), -1) {
			if _, stop := stopWords[w]; stop || utf8.RuneCountInString(w) <= config.MinTopicLength {
				continue
			}
			if counts[w] == 0 {
				order = append(order, w)
			}
			counts[w]++
		}
	}

	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})
	if len(order) > config.TopTopicCount {
		order = order[:config.TopTopicCount]
	}
	if order == nil {
		return []string{}
	}
	return order
}

func round1(v float64) float64 {
	return math.RoundToEven(v*10) / 10
}
