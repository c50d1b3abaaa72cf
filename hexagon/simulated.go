package hexagon

import (
	"fmt"
	"hash/fnv"
	"strings"

	"github.com/johannkk1/MacroCharts/classify"
	"github.com/johannkk1/MacroCharts/insight"
	"github.com/johannkk1/MacroCharts/types"
)

// simulatedRange is the inclusive draw range for one dimension.
type simulatedRange struct {
	dim    types.Dimension
	title  string
	lo, hi int
}

// Draw order matters: the same seed must always give the same scores.
var simulatedRanges = []simulatedRange{
	{types.DimensionMonetary, "Monetary", 45, 75},
	{types.DimensionInflation, "Inflation", 40, 70},
	{types.DimensionCurrency, "Currency", 45, 65},
	{types.DimensionPolitical, "Political", 50, 70},
	{types.DimensionSentiment, "Sentiment", 45, 75},
	{types.DimensionFiscal, "Fiscal", 40, 65},
	{types.DimensionExternal, "External", 45, 70},
}

// SeedFor derives the simulation seed from a country code.
func SeedFor(country string) uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(country))
	return h.Sum64()
}

// SimulatedScores draws the demo scores for country.
func SimulatedScores(country string) Scores {
	return drawScores(classify.NewRand(SeedFor(country)))
}

func drawScores(rng classify.Rand) Scores {
	var s Scores
	for _, r := range simulatedRanges {
		v := float64(r.lo + rng.IntN(r.hi-r.lo+1))
		switch r.dim {
		case types.DimensionMonetary:
			s.Monetary = v
		case types.DimensionInflation:
			s.Inflation = v
		case types.DimensionCurrency:
			s.Currency = v
		case types.DimensionPolitical:
			s.Political = v
		case types.DimensionSentiment:
			s.Sentiment = v
		case types.DimensionFiscal:
			s.Fiscal = v
		case types.DimensionExternal:
			s.External = v
		}
	}
	return s
}

// SimulatedRegime bands the plain mean of the demo scores.
func SimulatedRegime(master float64) types.Regime {
	switch {
	case master >= 65:
		return types.RegimeRiskOn
	case master >= 55:
		return types.RegimeCautiouslyOptimistic
	case master >= 45:
		return types.RegimeNeutral
	}
	return types.RegimeCautious
}

// Simulated is the demo scorecard shown when a country has no news.
// It is deterministic per country code.
func Simulated(country string) types.HexagonScorecard {
	scores := SimulatedScores(country)
	master := scores.Mean()
	regime := SimulatedRegime(master)

	components := make([]string, 0, len(simulatedRanges))
	for _, r := range simulatedRanges {
		components = append(components, fmt.Sprintf("%s: %d%%", r.title, int(scores.Get(r.dim))))
	}

	card := types.HexagonScorecard{
		Center: types.Center{
			Score:  round1(master),
			Label:  "Macro Score",
			Regime: regime,
			Breakdown: types.Breakdown{
				Description:        fmt.Sprintf("Simulated macro health score for %s (limited news data).", country),
				MarketImplications: fmt.Sprintf("Demo mode: showing sample %s environment.", strings.ToLower(string(regime))),
				Components:         components,
			},
		},
	}

	for _, info := range insight.Dimensions() {
		v := scores.Get(info.Dimension)
		card.Hexagons = append(card.Hexagons, types.Hexagon{
			Position:  info.Position,
			Label:     info.Label,
			Dimension: info.Dimension,
			Score:     v,
			Detail:    fmt.Sprintf("%d%% %s", int(v), info.DemoDetail),
			Breakdown: types.Breakdown{
				Description:        info.DemoNote,
				MarketImplications: "Simulated data",
				DataPoints:         []string{"Demo mode active"},
			},
		})
	}
	return card
}
