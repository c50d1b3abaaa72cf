package hexagon

import (
	"fmt"
	"math"
	"strings"

	"github.com/johannkk1/MacroCharts/insight"
	"github.com/johannkk1/MacroCharts/textfeatures"
	"github.com/johannkk1/MacroCharts/types"
)

var (
	dovishKeywords  = []string{"rate cut", "dovish", "stimulus", "easing", "accommodation"}
	hawkishKeywords = []string{"rate hike", "hawkish", "tightening", "restrictive"}

	inflationRising  = []string{"rising", "surge", "surging", "spike", "spiking"}
	inflationFalling = []string{"falling", "decline", "declining", "ease", "easing"}

	currencyPositive = []string{"export", "trade surplus"}
	currencyNegative = []string{"import", "trade deficit"}

	fiscalNegative = []string{"deficit", "debt crisis"}
	fiscalPositive = []string{"surplus", "fiscal responsibility"}

	externalNegative = []string{"sanctions", "tariff", "trade war"}
	externalPositive = []string{"trade deal", "cooperation"}
)

// NarrateFunc builds the breakdown text for one dimension.
type NarrateFunc func(d types.Dimension, score float64, items []types.NewsItem, country string) types.Breakdown

// Scorer turns a classified news batch into a HexagonScorecard.
type Scorer struct {
	narrate NarrateFunc
}

// NewScorer returns a Scorer using the standard narrative generator.
func NewScorer() *Scorer {
	return &Scorer{narrate: insight.Narrate}
}

// Accumulate applies every item's keyword deltas to the baseline and clamps
// the result once at the end.
func Accumulate(items []types.NewsItem) Scores {
	s := Baseline()
	for _, item := range items {
		text := strings.ToLower(item.Title + " " + item.Summary)

		if textfeatures.ContainsAny(text, dovishKeywords) {
			s.Monetary += 5
		}
		if textfeatures.ContainsAny(text, hawkishKeywords) {
			s.Monetary -= 5
		}

		if strings.Contains(text, "inflation") {
			switch {
			case textfeatures.ContainsAny(text, inflationRising):
				s.Inflation -= 4
			case textfeatures.ContainsAny(text, inflationFalling):
				s.Inflation += 4
			}
		}

		if textfeatures.ContainsAny(text, currencyPositive) {
			s.Currency += 3
		}
		if textfeatures.ContainsAny(text, currencyNegative) {
			s.Currency -= 3
		}

		if item.Category == types.CategoryPolitics {
			switch item.Sentiment {
			case types.SentimentPositive:
				s.Political += 4
			case types.SentimentNegative:
				s.Political -= 4
			}
		}

		switch item.Sentiment {
		case types.SentimentPositive:
			s.Sentiment += 2
		case types.SentimentNegative:
			s.Sentiment -= 2
		}

		if textfeatures.ContainsAny(text, fiscalNegative) {
			s.Fiscal -= 3
		}
		if textfeatures.ContainsAny(text, fiscalPositive) {
			s.Fiscal += 3
		}

		if textfeatures.ContainsAny(text, externalNegative) {
			s.External -= 4
		}
		if textfeatures.ContainsAny(text, externalPositive) {
			s.External += 4
		}
	}
	return s.clamp()
}

// Score builds the scorecard for a batch. An empty batch yields the
// simulated scorecard for country.
func (sc *Scorer) Score(items []types.NewsItem, country string) types.HexagonScorecard {
	if len(items) == 0 {
		return Simulated(country)
	}

	narrate := sc.narrate
	if narrate == nil {
		narrate = insight.Narrate
	}

	scores := Accumulate(items)
	composite := scores.Composite()
	regime := ClassifyRegime(scores, composite)

	card := types.HexagonScorecard{
		Center: types.Center{
			Score:     round1(composite),
			Label:     "Macro Score",
			Regime:    regime,
			Breakdown: centerBreakdown(scores, composite, regime, len(items)),
		},
		Hexagons: make([]types.Hexagon, 0, len(types.Dimensions)),
	}

	for _, info := range insight.Dimensions() {
		v := scores.Get(info.Dimension)
		card.Hexagons = append(card.Hexagons, types.Hexagon{
			Position:  info.Position,
			Label:     info.Label,
			Dimension: info.Dimension,
			Score:     round1(v),
			Detail:    fmt.Sprintf("%d%% %s", pct(v), info.Detail),
			Breakdown: narrate(info.Dimension, v, items, country),
		})
	}
	return card
}

func centerBreakdown(s Scores, composite float64, regime types.Regime, n int) types.Breakdown {
	outlook := "Defensive positioning recommended given elevated risks."
	switch {
	case composite >= 65:
		outlook = "Favorable for risk assets with accommodative conditions."
	case composite >= 45:
		outlook = "Mixed conditions require selective positioning."
	}

	return types.Breakdown{
		Description:        fmt.Sprintf("Composite macro health score aggregating %d news sources across 7 key metrics.", n),
		MarketImplications: fmt.Sprintf("Current regime suggests a %s environment. %s", strings.ToLower(string(regime)), outlook),
		Components: []string{
			fmt.Sprintf("Monetary Policy: %d%%", pct(s.Monetary)),
			fmt.Sprintf("Inflation/Growth: %d%%", pct(s.Inflation)),
			fmt.Sprintf("Currency: %d%%", pct(s.Currency)),
			fmt.Sprintf("Politics: %d%%", pct(s.Political)),
			fmt.Sprintf("Sentiment: %d%%", pct(s.Sentiment)),
			fmt.Sprintf("Fiscal: %d%%", pct(s.Fiscal)),
			fmt.Sprintf("External: %d%%", pct(s.External)),
		},
	}
}

func pct(v float64) int {
	return int(math.RoundToEven(v))
}
