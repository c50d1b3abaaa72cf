package insight

import (
	"strings"

	"github.com/johannkk1/MacroCharts/textfeatures"
	"github.com/johannkk1/MacroCharts/types"
)

// DimensionInfo is the static metadata for one scorecard axis.
type DimensionInfo struct {
	Dimension   types.Dimension
	Label       string
	Position    string
	Detail      string
	DemoDetail  string
	Description string
	DemoNote    string
	// Relevance selects the headlines that explain this dimension.
	Relevance []string
	// Coverage counts how much of the batch talks about this dimension.
	Coverage []string
}

var dimensionTable = []DimensionInfo{
	{
		Dimension:   types.DimensionMonetary,
		Label:       "Monetary Policy",
		Position:    "top",
		Detail:      "favorable stance",
		DemoDetail:  "stance",
		Description: "Central bank policy stance affecting liquidity and borrowing costs.",
		DemoNote:    "Demo: Central bank policy.",
		Relevance:   []string{"rate", "fed", "ecb", "boj", "monetary", "policy"},
		Coverage:    []string{"rate", "fed", "ecb", "boj", "monetary", "policy"},
	},
	{
		Dimension:   types.DimensionInflation,
		Label:       "Inflation & Growth",
		Position:    "topRight",
		Detail:      "growth outlook",
		DemoDetail:  "outlook",
		Description: "Assesses economic growth momentum, inflation trajectory, and stagflation risk through GDP, CPI, and employment data.",
		DemoNote:    "Demo: Price stability.",
		Relevance:   []string{"inflation", "cpi", "gdp", "growth", "recession"},
		Coverage:    []string{"inflation", "cpi", "gdp", "growth", "recession"},
	},
	{
		Dimension:   types.DimensionCurrency,
		Label:       "Currency Strength",
		Position:    "right",
		Detail:      "strength",
		DemoDetail:  "strength",
		Description: "Tracks currency valuation, FX interventions, and exchange rate stability impacting trade competitiveness.",
		DemoNote:    "Demo: FX dynamics.",
		Relevance:   []string{"dollar", "euro", "yen", "forex", "fx", "currency"},
		Coverage:    []string{"dollar", "euro", "yen", "forex", "fx", "currency"},
	},
	{
		Dimension:   types.DimensionPolitical,
		Label:       "Political Risk",
		Position:    "bottomRight",
		Detail:      "stability",
		DemoDetail:  "stability",
		Description: "Evaluates political stability, regulatory certainty, trade policy, and geopolitical tensions.",
		DemoNote:    "Demo: Governance.",
		Relevance:   []string{"election", "government", "political", "tariff", "trade war", "sanctions"},
		Coverage:    []string{"election", "government", "political", "tariff", "trade war"},
	},
	{
		Dimension:   types.DimensionSentiment,
		Label:       "Investor Sentiment",
		Position:    "bottomLeft",
		Detail:      "positive flows",
		DemoDetail:  "positive",
		Description: "Measures market risk appetite, volatility levels, and positioning through equity flows and sentiment indicators.",
		DemoNote:    "Demo: Market psychology.",
		Relevance:   []string{"market", "stock", "rally", "selloff", "volatility"},
		Coverage:    []string{"market", "stock", "rally", "selloff"},
	},
	{
		Dimension:   types.DimensionFiscal,
		Label:       "Fiscal Health",
		Position:    "left",
		Detail:      "sustainability",
		DemoDetail:  "sustainability",
		Description: "Analyzes government debt sustainability, deficit trends, and fiscal policy space for countercyclical measures.",
		DemoNote:    "Demo: Govt finances.",
		Relevance:   []string{"debt", "deficit", "budget", "spending", "fiscal"},
		Coverage:    []string{"debt", "deficit", "budget", "spending", "fiscal"},
	},
	{
		Dimension:   types.DimensionExternal,
		Label:       "External Vulnerability",
		Position:    "topLeft",
		Detail:      "resilience",
		DemoDetail:  "resilience",
		Description: "Assesses trade balance, foreign reserve adequacy, sanctions exposure, and dependence on external financing.",
		DemoNote:    "Demo: External shocks.",
		Relevance:   []string{"trade", "sanctions", "tariff", "reserves", "balance"},
		Coverage:    []string{"trade", "sanctions", "tariff", "reserves"},
	},
}

// Dimensions returns the metadata for every axis in display order.
func Dimensions() []DimensionInfo {
	return append([]DimensionInfo(nil), dimensionTable...)
}

// Info returns the metadata for one axis.
func Info(d types.Dimension) (DimensionInfo, bool) {
	for _, info := range dimensionTable {
		if info.Dimension == d {
			return info, true
		}
	}
	return DimensionInfo{}, false
}

// ItemText is the lowercased title and summary used for keyword checks.
func ItemText(item types.NewsItem) string {
	return strings.ToLower(item.Title + " " + item.Summary)
}

// RelevantItems returns up to limit items mentioning any of keywords, in order.
func RelevantItems(items []types.NewsItem, keywords []string, limit int) []types.NewsItem {
	out := make([]types.NewsItem, 0, limit)
	for _, item := range items {
		if len(out) == limit {
			break
		}
		if textfeatures.ContainsAny(ItemText(item), keywords) {
			out = append(out, item)
		}
	}
	return out
}

// CountMentions counts items whose text contains any of keywords.
func CountMentions(items []types.NewsItem, keywords []string) int {
	n := 0
	for _, item := range items {
		if textfeatures.ContainsAny(ItemText(item), keywords) {
			n++
		}
	}
	return n
}

// TopSources lists the leading relevant items as source references.
func TopSources(items []types.NewsItem) []types.SourceRef {
	refs := make([]types.SourceRef, 0, len(items))
	for _, item := range items {
		publisher := item.Publisher
		if publisher == "" {
			publisher = "Unknown"
		}
		refs = append(refs, types.SourceRef{Title: item.Title, URL: item.Link, Publisher: publisher})
	}
	return refs
}

func joinText(items []types.NewsItem) string {
	parts := make([]string, len(items))
	for i, item := range items {
		parts[i] = item.Title + " " + item.Summary
	}
	return strings.Join(parts, " ")
}
