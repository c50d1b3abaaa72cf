package insight

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/johannkk1/MacroCharts/config"
	"github.com/johannkk1/MacroCharts/types"
)

// Narrate builds the full breakdown for one scored dimension. A failure in
// any narrative step degrades to the plain fallback text instead of
// failing the scorecard.
func Narrate(d types.Dimension, score float64, items []types.NewsItem, country string) (b types.Breakdown) {
	info, ok := Info(d)
	if !ok {
		return Fallback(d, score, len(items), country)
	}

	defer func() {
		if r := recover(); r != nil {
			log.Warn().Str("dimension", string(d)).Interface("panic", r).Msg("⚠️ narrative generation failed, using fallback")
			b = Fallback(d, score, len(items), country)
		}
	}()

	relevant := RelevantItems(items, info.Relevance, config.DriverScanLimit)
	sources := relevant
	if len(sources) > config.TopSourceLimit {
		sources = sources[:config.TopSourceLimit]
	}

	return types.Breakdown{
		Description:        info.Description,
		MarketImplications: MarketImplications(d, score, items, country),
		DataPoints:         DataPoints(d, score, items),
		ScoreDrivers:       ScoreDrivers(d, score, relevant),
		TopSources:         TopSources(sources),
	}
}

// Fallback is the minimal breakdown used when narration cannot run.
func Fallback(d types.Dimension, score float64, n int, country string) types.Breakdown {
	label := labelFor(d)
	description := ""
	if info, ok := Info(d); ok {
		description = info.Description
	}
	return types.Breakdown{
		Description:        description,
		MarketImplications: FallbackImplications(d, score, n, country),
		DataPoints:         []string{fmt.Sprintf("Insufficient %s data from recent news", strings.ToLower(label))},
		ScoreDrivers: []string{
			fmt.Sprintf("Score based on general %s conditions", strings.ToLower(label)),
			"Limited recent news coverage for this metric",
		},
		TopSources: []types.SourceRef{},
	}
}
