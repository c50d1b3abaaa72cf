package deduplication

import (
	"sort"
	"time"

	"github.com/johannkk1/MacroCharts/classify"
	"github.com/johannkk1/MacroCharts/types"

	"github.com/rs/zerolog/log"
)

// BuildFunc turns a raw item into a classified one.
type BuildFunc func(raw types.RawNewsItem, src types.SourceType) types.NewsItem

// Aggregator merges vendor and feed items into one ordered, title-unique list.
// Titles are compared exactly; the seen set lives only for one Aggregate call.
type Aggregator struct {
	classifier *classify.Classifier
	now        func() time.Time
	build      BuildFunc
}

// NewAggregator wires an aggregator around a classifier. now supplies the
// fallback timestamp for items whose date could not be parsed.
func NewAggregator(c *classify.Classifier, now func() time.Time) *Aggregator {
	if now == nil {
		now = time.Now
	}
	a := &Aggregator{classifier: c, now: now}
	a.build = a.Build
	return a
}

// Build classifies a raw item and attaches its analysis bundle.
func (a *Aggregator) Build(raw types.RawNewsItem, src types.SourceType) types.NewsItem {
	summary := raw.Summary
	if summary == "" && src == types.SourceYahoo {
		summary = raw.Title
	}

	// Undated items keep timestamp 0 and sort last.
	var clock string
	var ts float64
	if !raw.DateMissing {
		published := raw.PublishedAt
		if published.IsZero() {
			published = a.now()
		}
		published = published.UTC()
		clock = published.Format("15:04")
		ts = float64(published.UnixNano()) / float64(time.Second)
	}

	res := a.classifier.Classify(raw.Title)
	return types.NewsItem{
		Title:          raw.Title,
		Summary:        summary,
		Publisher:      raw.Publisher,
		Link:           raw.Link,
		Time:           clock,
		Timestamp:      ts,
		Category:       res.Category,
		Sentiment:      res.Sentiment,
		SentimentScore: res.SentimentScore,
		Impact:         res.Impact,
		SourceType:     src,
		Analysis:       a.classifier.Analyze(raw.Title, summary, res),
	}
}

// BuildAll classifies a batch from one source, dropping items that fail.
func (a *Aggregator) BuildAll(raws []types.RawNewsItem, src types.SourceType) []types.NewsItem {
	out := make([]types.NewsItem, 0, len(raws))
	for _, raw := range raws {
		if item, ok := a.safeBuild(raw, src); ok {
			out = append(out, item)
		}
	}
	return out
}

// Aggregate keeps the first occurrence of each title, vendor items first,
// then sorts newest first. Equal timestamps keep their merge order.
func (a *Aggregator) Aggregate(vendor []types.RawNewsItem, feed []types.NewsItem) []types.NewsItem {
	seen := make(map[string]struct{}, len(vendor)+len(feed))
	out := make([]types.NewsItem, 0, len(vendor)+len(feed))

	for _, raw := range vendor {
		if raw.Title == "" {
			continue
		}
		if _, dup := seen[raw.Title]; dup {
			continue
		}
		item, ok := a.safeBuild(raw, types.SourceYahoo)
		if !ok {
			continue
		}
		seen[raw.Title] = struct{}{}
		out = append(out, item)
	}

	for _, item := range feed {
		if item.Title == "" {
			continue
		}
		if _, dup := seen[item.Title]; dup {
			continue
		}
		seen[item.Title] = struct{}{}
		out = append(out, item)
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Timestamp > out[j].Timestamp
	})

	log.Debug().
		Int("vendor", len(vendor)).
		Int("feed", len(feed)).
		Int("kept", len(out)).
		Msg("aggregated news items")
	return out
}

func (a *Aggregator) safeBuild(raw types.RawNewsItem, src types.SourceType) (item types.NewsItem, ok bool) {
	defer func() {
		if r := recover(); r != nil {
			log.Warn().
				Str("title", raw.Title).
				Str("source", string(src)).
				Interface("panic", r).
				Msg("⚠️ dropping item that failed to classify")
			ok = false
		}
	}()
	return a.build(raw, src), true
}
