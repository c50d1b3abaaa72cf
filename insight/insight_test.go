package insight

import (
	"fmt"
	"strings"
	"testing"

	"github.com/johannkk1/MacroCharts/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func item(title, summary string) types.NewsItem {
	return types.NewsItem{Title: title, Summary: summary}
}

func TestScoreDriversEmpty(t *testing.T) {
	got := ScoreDrivers(types.DimensionFiscal, 50, nil)
	assert.Equal(t, []string{
		"Score based on general fiscal health conditions",
		"Limited recent news coverage for this metric",
	}, got)
}

func TestScoreDriversMonetaryExamples(t *testing.T) {
	items := []types.NewsItem{
		item("Fed signals rate cut in March", ""),
		item("ECB stays hawkish on wages", ""),
	}

	got := ScoreDrivers(types.DimensionMonetary, 72, items)

	assert.Equal(t, []string{
		`📉 **Rate cut signals** detected (e.g., "Fed signals rate cut in March...")`,
		`📈 **Rate hike expectations** (e.g., "ECB stays hawkish on wages...")`,
		"📰 **Based on 2 recent monetary policy headlines**",
		"✅ **Strong positive signals** → 72/100 score",
	}, got)
}

func TestScoreDriversOmitsExampleWhenNoneMatches(t *testing.T) {
	got := ScoreDrivers(types.DimensionPolitical, 45, []types.NewsItem{item("Trade talks resume in Geneva", "")})

	assert.Equal(t, []string{
		"🌐 **Trade policy developments**",
		"📰 **Based on 1 recent political risk headlines**",
		"⚠️ **Mixed/cautious signals** → 45/100 score",
	}, got)
}

func TestScoreDriversTruncatesExample(t *testing.T) {
	long := "Stocks rally " + strings.Repeat("x", 80)
	got := ScoreDrivers(types.DimensionSentiment, 20, []types.NewsItem{item(long, "")})

	require.NotEmpty(t, got)
	assert.Equal(t, fmt.Sprintf("📈 **Risk-on sentiment** (e.g., \"%s...\")", long[:60]), got[0])
	assert.Equal(t, "🔴 **Concerning developments** → 20/100 score", got[len(got)-1])
}

func TestScoreDriversScansAtMostFiveTitles(t *testing.T) {
	var items []types.NewsItem
	for i := 0; i < 8; i++ {
		items = append(items, item(fmt.Sprintf("Budget headline %d", i), ""))
	}
	got := ScoreDrivers(types.DimensionFiscal, 55, items)
	assert.Contains(t, got, "📰 **Based on 5 recent fiscal health headlines**")
	assert.Contains(t, got, "🟡 **Moderately positive** → 55/100 score")
}

func TestMonetaryDataPoints(t *testing.T) {
	items := []types.NewsItem{
		item("Fed cuts rates by 25 bps", "Policy rate to 4.75% after Sep 18 meeting; decision was unanimous."),
		item("ECB holds steady", "Deposit rate at 3.5% as officials stay data-dependent."),
	}

	got := MonetaryDataPoints(items, 55)

	assert.Equal(t, []string{
		"📅 **Latest Action**: Rate cut (25bps)",
		"🗓️ **Meeting Date**: Sep 18",
		"✅ **Vote**: Unanimous consensus",
		"💰 **Policy Rate**: 3.5% (↘ 1.25pp dovish easing)",
		"📈 **Cumulative Moves**: 25bps tightening (avg 25bps per move)",
		"🎯 **Forward Guidance**: Data-dependent approach",
		"🏛️ **Institutions**: Fed, ECB",
		"📰 **Media Coverage**: 2 articles (100% of total) - Dovish tone",
	}, got)
}

func TestMonetaryDataPointsWithoutActions(t *testing.T) {
	assert.Equal(t, []string{"📊 **Policy Stance**: Hawkish (restrictive)"}, MonetaryDataPoints(nil, 30))
	assert.Equal(t, []string{"📊 **Policy Stance**: Dovish (supportive)"}, MonetaryDataPoints(nil, 61))
}

func TestMonetaryDataPointsSplitVote(t *testing.T) {
	items := []types.NewsItem{item("BOE raises rates in 7-2 vote", "")}
	got := MonetaryDataPoints(items, 40)
	assert.Contains(t, got, "🗳️ **Vote**: 7-2 split decision")
	assert.Contains(t, got, "📅 **Latest Action**: Rate hike announced")
}

func TestInflationDataPoints(t *testing.T) {
	items := []types.NewsItem{
		item("US inflation: 3.4% in May", "Core CPI 3.6% while GDP: 2.1% and unemployment 3.9%."),
	}

	got := InflationDataPoints(items, 50)

	assert.Contains(t, got, "📊 **Headline CPI**: 3.6% | **Core**: 3.6% (spread: +0.0pp)")
	assert.Contains(t, got, "📉 **Recent Move**: ↗ accelerated 1.8pp vs prior period")
	assert.Contains(t, got, "→ **Trend**: Stable (+0.3pp) - range-bound")
	assert.Contains(t, got, "🎯 **vs Target**: 1.9pp above 2% target - significant overshoot")
	assert.Contains(t, got, "💹 **GDP Growth**: +2.1% (moderate growth)")
	assert.Contains(t, got, "👥 **Unemployment**: 3.9% (tight labor market)")
	assert.Contains(t, got, "🟡 **Outlook**: Moderate trajectory, data-dependent")
	assert.Equal(t, "📰 **Coverage**: 1 inflation, 1 growth, 1 employment (3 total)", got[len(got)-1])
}

func TestInflationDataPointsTrendIsFormatted(t *testing.T) {
	got := InflationDataPoints([]types.NewsItem{item("Prices 5% then 4% now 3%", "")}, 20)

	assert.Contains(t, got, "✅ **Trend**: Decelerating (-2.0pp) - disinflationary")
	assert.Contains(t, got, "🔴 **Outlook**: Severe contraction/recession risk")
	for _, p := range got {
		assert.NotContains(t, p, "{")
	}
}

func TestInflationDataPointsNoNumbers(t *testing.T) {
	got := InflationDataPoints([]types.NewsItem{item("Recession fears grow", "")}, 35)
	assert.Equal(t, []string{
		"⚠️ **Recession Risk**: 1 mentions - elevated macro uncertainty",
		"🟠 **Outlook**: Stagflation concerns (weak growth + sticky inflation)",
		"📰 **Coverage**: 0 inflation, 1 growth, 0 employment (1 total)",
	}, got)
}

func TestTwoLineDataPoints(t *testing.T) {
	items := []types.NewsItem{item("Dollar slides", ""), item("Election called", "")}

	assert.Equal(t, []string{"FX Sentiment: Strong", "Currency News Coverage: 1 mentions"},
		DataPoints(types.DimensionCurrency, 65, items))
	assert.Equal(t, []string{"Political Stability: Moderate", "Policy Events Tracked: 1 developments"},
		DataPoints(types.DimensionPolitical, 41, items))
	assert.Equal(t, []string{"Risk Appetite: Risk-Off", "Market Sentiment Coverage: 0 articles"},
		DataPoints(types.DimensionSentiment, 39, items))
	assert.Equal(t, []string{"Fiscal Condition: Moderate", "Fiscal Policy News: 0 mentions"},
		DataPoints(types.DimensionFiscal, 50, items))
	assert.Equal(t, []string{"External Risk: High", "Trade/Sanction News: 0 events"},
		DataPoints(types.DimensionExternal, 10, items))
}

func TestMarketImplicationsBranches(t *testing.T) {
	cut := []types.NewsItem{item("Fed weighs a cut", "")}

	assert.True(t, strings.HasPrefix(MarketImplications(types.DimensionMonetary, 70, cut, "US"), "**Dovish pivot** in US"))
	assert.True(t, strings.HasPrefix(MarketImplications(types.DimensionMonetary, 70, nil, "US"), "**Accommodative stance** in US"))
	assert.True(t, strings.HasPrefix(MarketImplications(types.DimensionMonetary, 30, nil, "US"), "**Hawkish policy** in US"))
	assert.True(t, strings.HasPrefix(MarketImplications(types.DimensionCurrency, 50, nil, "JP"), "**Stable JP FX**"))
	assert.True(t, strings.HasPrefix(MarketImplications(types.DimensionInflation, 30,
		[]types.NewsItem{item("Recession looms", "")}, "DE"), "**Recession risk** elevated in DE"))
	assert.True(t, strings.HasPrefix(MarketImplications(types.DimensionPolitical, 30,
		[]types.NewsItem{item("New tariff round", "")}, "CN"), "**Trade policy uncertainty** in CN"))
}

func TestMarketImplicationsScansFirstTenItems(t *testing.T) {
	var items []types.NewsItem
	for i := 0; i < 10; i++ {
		items = append(items, item("Quiet day", ""))
	}
	items = append(items, item("Surprise cut", ""))

	got := MarketImplications(types.DimensionMonetary, 70, items, "US")
	assert.True(t, strings.HasPrefix(got, "**Accommodative stance**"))
}

func TestFallbackImplications(t *testing.T) {
	assert.Equal(t, "Score based on 3 news sources. US bogus at 50/100.",
		MarketImplications(types.Dimension("bogus"), 50, make([]types.NewsItem, 3), "US"))
}

func TestRelevantItemsKeepsOrderAndLimit(t *testing.T) {
	items := []types.NewsItem{
		item("Fed minutes", ""),
		item("Sports", ""),
		item("Rate outlook", ""),
		item("Policy review", ""),
	}
	got := RelevantItems(items, []string{"fed", "rate", "policy"}, 2)
	require.Len(t, got, 2)
	assert.Equal(t, "Fed minutes", got[0].Title)
	assert.Equal(t, "Rate outlook", got[1].Title)
}

func TestNarrateLimitsSources(t *testing.T) {
	var items []types.NewsItem
	for i := 0; i < 6; i++ {
		items = append(items, types.NewsItem{Title: fmt.Sprintf("Fed policy note %d", i), Link: "https://x"})
	}

	b := Narrate(types.DimensionMonetary, 50, items, "US")

	assert.Equal(t, "Central bank policy stance affecting liquidity and borrowing costs.", b.Description)
	require.Len(t, b.TopSources, 3)
	assert.Equal(t, "Unknown", b.TopSources[0].Publisher)
	assert.Contains(t, b.ScoreDrivers, "📰 **Based on 5 recent monetary policy headlines**")
	assert.NotEmpty(t, b.DataPoints)
	assert.NotEmpty(t, b.MarketImplications)
}

func TestNarrateUnknownDimensionFallsBack(t *testing.T) {
	b := Narrate(types.Dimension("bogus"), 42, nil, "UK")
	assert.Equal(t, "Score based on 0 news sources. UK bogus at 42/100.", b.MarketImplications)
	assert.Len(t, b.ScoreDrivers, 2)
}

func TestDimensionsOrder(t *testing.T) {
	dims := Dimensions()
	require.Len(t, dims, len(types.Dimensions))
	for i, d := range types.Dimensions {
		assert.Equal(t, d, dims[i].Dimension)
	}
}
