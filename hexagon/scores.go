package hexagon

import (
	"math"

	"github.com/johannkk1/MacroCharts/config"
	"github.com/johannkk1/MacroCharts/types"
)

// Scores holds the seven dimension values on a 0..100 scale.
type Scores struct {
	Monetary  float64
	Inflation float64
	Currency  float64
	Political float64
	Sentiment float64
	Fiscal    float64
	External  float64
}

// Baseline returns every dimension at the neutral midpoint.
func Baseline() Scores {
	b := config.BaselineScore
	return Scores{b, b, b, b, b, b, b}
}

// Get returns the value for d, or 0 for an unknown dimension.
func (s Scores) Get(d types.Dimension) float64 {
	switch d {
	case types.DimensionMonetary:
		return s.Monetary
	case types.DimensionInflation:
		return s.Inflation
	case types.DimensionCurrency:
		return s.Currency
	case types.DimensionPolitical:
		return s.Political
	case types.DimensionSentiment:
		return s.Sentiment
	case types.DimensionFiscal:
		return s.Fiscal
	case types.DimensionExternal:
		return s.External
	}
	return 0
}

// Composite is the weighted sum of all dimensions.
func (s Scores) Composite() float64 {
	return config.WeightMonetary*s.Monetary +
		config.WeightInflation*s.Inflation +
		config.WeightCurrency*s.Currency +
		config.WeightPolitical*s.Political +
		config.WeightSentiment*s.Sentiment +
		config.WeightFiscal*s.Fiscal +
		config.WeightExternal*s.External
}

// Mean is the unweighted average used by the simulated scorecard.
func (s Scores) Mean() float64 {
	return (s.Monetary + s.Inflation + s.Currency + s.Political + s.Sentiment + s.Fiscal + s.External) / 7
}

func (s Scores) clamp() Scores {
	c := func(v float64) float64 { return math.Max(0, math.Min(100, v)) }
	return Scores{
		Monetary:  c(s.Monetary),
		Inflation: c(s.Inflation),
		Currency:  c(s.Currency),
		Political: c(s.Political),
		Sentiment: c(s.Sentiment),
		Fiscal:    c(s.Fiscal),
		External:  c(s.External),
	}
}

// ClassifyRegime maps dimension scores and their composite to a regime.
// The stagflation check runs first and overrides the composite bands.
func ClassifyRegime(s Scores, composite float64) types.Regime {
	switch {
	case s.Inflation < 40 && s.Monetary < 45:
		return types.RegimeStagflationWatch
	case composite >= 70:
		if s.Sentiment >= 60 {
			return types.RegimeRiskOn
		}
		return types.RegimeBullish
	case composite >= 55:
		return types.RegimeCautiouslyOptimistic
	case composite <= 30:
		if s.Sentiment <= 40 {
			return types.RegimeRiskOff
		}
		return types.RegimeDefensive
	case composite <= 45:
		return types.RegimeCautious
	}
	return types.RegimeNeutral
}

func round1(v float64) float64 {
	return math.RoundToEven(v*10) / 10
}
