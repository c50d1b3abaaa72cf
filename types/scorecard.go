package types

// Regime is the coarse market environment label derived from the scorecard.
type Regime string

const (
	RegimeRiskOn               Regime = "Risk-On"
	RegimeBullish              Regime = "Bullish"
	RegimeCautiouslyOptimistic Regime = "Cautiously Optimistic"
	RegimeNeutral              Regime = "Neutral"
	RegimeCautious             Regime = "Cautious"
	RegimeDefensive            Regime = "Defensive"
	RegimeRiskOff              Regime = "Risk-Off"
	RegimeStagflationWatch     Regime = "Stagflation Watch"
)

// Dimension identifies one of the seven scorecard axes.
type Dimension string

const (
	DimensionMonetary  Dimension = "monetary"
	DimensionInflation Dimension = "inflation"
	DimensionCurrency  Dimension = "currency"
	DimensionPolitical Dimension = "political"
	DimensionSentiment Dimension = "sentiment"
	DimensionFiscal    Dimension = "fiscal"
	DimensionExternal  Dimension = "external"
)

// Dimensions lists the axes in display order.
var Dimensions = [...]Dimension{
	DimensionMonetary,
	DimensionInflation,
	DimensionCurrency,
	DimensionPolitical,
	DimensionSentiment,
	DimensionFiscal,
	DimensionExternal,
}

// SourceRef points at a headline that fed a dimension.
type SourceRef struct {
	Title     string `json:"title"`
	URL       string `json:"url"`
	Publisher string `json:"publisher"`
}

// Breakdown is the explanation attached to a score.
type Breakdown struct {
	Description        string      `json:"description"`
	MarketImplications string      `json:"market_implications"`
	DataPoints         []string    `json:"data_points,omitempty"`
	ScoreDrivers       []string    `json:"score_drivers,omitempty"`
	TopSources         []SourceRef `json:"top_sources,omitempty"`
	Components         []string    `json:"components,omitempty"`
}

// Center is the composite score in the middle of the hexagon.
type Center struct {
	Score     float64   `json:"score"`
	Label     string    `json:"label"`
	Regime    Regime    `json:"regime"`
	Breakdown Breakdown `json:"breakdown"`
}

// Hexagon is one scored dimension.
type Hexagon struct {
	Position  string    `json:"position"`
	Label     string    `json:"label"`
	Dimension Dimension `json:"dimension"`
	Score     float64   `json:"score"`
	Detail    string    `json:"detail"`
	Breakdown Breakdown `json:"breakdown"`
}

// HexagonScorecard is the seven-dimension macro-health result.
type HexagonScorecard struct {
	Center   Center    `json:"center"`
	Hexagons []Hexagon `json:"hexagons"`
}
