package insight

import (
	"fmt"
	"strings"

	"github.com/johannkk1/MacroCharts/config"
	"github.com/johannkk1/MacroCharts/textfeatures"
	"github.com/johannkk1/MacroCharts/types"
)

// driverRule fires when any trigger appears in the joined titles. If
// examples is set, the first title containing one of them is quoted.
type driverRule struct {
	triggers []string
	text     string
	suffix   string
	examples []string
}

var driverRules = map[types.Dimension][]driverRule{
	types.DimensionMonetary: {
		{triggers: []string{"cut", "lower", "dovish"}, text: "📉 **Rate cut signals** detected", examples: []string{"cut", "lower", "dovish"}},
		{triggers: []string{"hike", "raise", "hawkish"}, text: "📈 **Rate hike expectations**", examples: []string{"hike", "raise", "hawkish"}},
		{triggers: []string{"pause", "hold"}, text: "⏸️ **Policy pause** or wait-and-see stance indicated"},
		{triggers: []string{"inflation"}, text: "💹 **Inflation data** influencing policy trajectory"},
	},
	types.DimensionInflation: {
		{triggers: []string{"inflation", "cpi", "pce", "prices"}, text: "📊 **Inflation data releases**", examples: []string{"inflation", "cpi", "pce"}},
		{triggers: []string{"gdp", "growth", "expansion", "recession"}, text: "📈 **Economic growth updates**", examples: []string{"gdp", "growth", "recession"}},
		{triggers: []string{"jobs", "employment", "unemployment"}, text: "👥 **Labor market** developments affecting outlook"},
	},
	types.DimensionPolitical: {
		{triggers: []string{"tariff", "trade war", "sanctions", "trade"}, text: "🌐 **Trade policy developments**", examples: []string{"tariff", "trade war", "sanctions"}},
		{triggers: []string{"election", "vote", "government"}, text: "🗳️ **Political events** and electoral developments"},
		{triggers: []string{"geopolitical", "tension", "conflict", "war"}, text: "⚠️ **Geopolitical tensions**", examples: []string{"tension", "conflict"}},
		{triggers: []string{"regulation", "policy", "reform"}, text: "📜 **Regulatory changes** affecting business environment"},
	},
	types.DimensionCurrency: {
		{triggers: []string{"dollar", "euro", "yen", "yuan", "forex", "fx"}, text: "💱 **FX market movements** impacting competitiveness"},
		{triggers: []string{"intervention"}, text: "🏦 **Central bank intervention** actions in currency markets"},
	},
	types.DimensionSentiment: {
		{triggers: []string{"rally", "gain", "surge", "rise", "bull"}, text: "📈 **Risk-on sentiment**", examples: []string{"rally", "surge", "gain"}},
		{triggers: []string{"fall", "drop", "plunge", "decline", "bear"}, text: "📉 **Market selloffs**", examples: []string{"fall", "drop", "decline"}},
		{triggers: []string{"volatility", "vix", "uncertainty"}, text: "📊 **Elevated volatility** and uncertainty"},
	},
	types.DimensionFiscal: {
		{triggers: []string{"debt", "deficit", "budget"}, text: "💰 **Debt/deficit concerns** shaping fiscal outlook"},
		{triggers: []string{"spending", "stimulus", "package"}, text: "💵 **Fiscal stimulus** programs proposed/enacted"},
	},
	types.DimensionExternal: {
		{triggers: []string{"reserves", "balance", "trade"}, text: "📊 **Trade balance** and reserve levels monitored"},
		{triggers: []string{"sanctions", "embargo"}, text: "🚫 **Sanctions/restrictions**", examples: []string{"sanctions", "embargo"}},
	},
}

// ScoreDrivers explains what moved a dimension's score using the leading
// relevant headlines. items should already be filtered for relevance.
func ScoreDrivers(d types.Dimension, score float64, items []types.NewsItem) []string {
	label := strings.ToLower(labelFor(d))
	if len(items) == 0 {
		return []string{
			fmt.Sprintf("Score based on general %s conditions", label),
			"Limited recent news coverage for this metric",
		}
	}

	if len(items) > config.DriverScanLimit {
		items = items[:config.DriverScanLimit]
	}
	titles := make([]string, len(items))
	for i, item := range items {
		titles[i] = item.Title
	}
	allText := strings.ToLower(strings.Join(titles, " "))

	drivers := []string{}
	for _, rule := range driverRules[d] {
		if !textfeatures.ContainsAny(allText, rule.triggers) {
			continue
		}
		line := rule.text
		if len(rule.examples) > 0 {
			if ex, ok := firstTitleWith(titles, rule.examples); ok {
				line += fmt.Sprintf(" (e.g., \"%s...\")", truncate(ex, config.ExampleTitleChars))
			}
		}
		drivers = append(drivers, line)
	}

	drivers = append(drivers, fmt.Sprintf("📰 **Based on %d recent %s headlines**", len(titles), label))
	drivers = append(drivers, scoreBucket(score))
	return drivers
}

func scoreBucket(score float64) string {
	switch {
	case score > 70:
		return fmt.Sprintf("✅ **Strong positive signals** → %.0f/100 score", score)
	case score > 50:
		return fmt.Sprintf("🟡 **Moderately positive** → %.0f/100 score", score)
	case score > 30:
		return fmt.Sprintf("⚠️ **Mixed/cautious signals** → %.0f/100 score", score)
	default:
		return fmt.Sprintf("🔴 **Concerning developments** → %.0f/100 score", score)
	}
}

func firstTitleWith(titles []string, words []string) (string, bool) {
	for _, t := range titles {
		if textfeatures.ContainsAny(strings.ToLower(t), words) {
			return t, true
		}
	}
	return "", false
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}

func labelFor(d types.Dimension) string {
	if info, ok := Info(d); ok {
		return info.Label
	}
	return string(d)
}
