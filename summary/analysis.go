package summary

// indicatorAnalysis is the standing commentary shipped with an indicator.
type indicatorAnalysis struct {
	structural string
	trend      string
	relevance  string
	drivers    []string
}

var analyses = map[string]indicatorAnalysis{
	"Equity Market": {
		structural: "The equity market is currently navigating a transition from high-inflation headwinds to a potential soft-landing scenario. Valuations remain elevated in tech, driven by AI optimism, while broader indices show caution regarding rate cut timing.",
		trend:      `Long-term trend remains bullish, supported by technological innovation and corporate earnings resilience. However, the era of "free money" is over, demanding higher quality from balance sheets.`,
		relevance:  "Equities represent the primary growth engine for capital. They are a leading indicator of economic sentiment and corporate health, often pricing in economic shifts 6-12 months in advance.",
		drivers:    []string{"Corporate Earnings", "Fed Policy", "AI Innovation", "Consumer Spending"},
	},
	"10Y Yield": {
		structural: `The 10-Year Treasury yield is hovering in a restrictive territory, reflecting a "higher for longer" rate regime. Recent volatility suggests market uncertainty about the neutral rate (r*) and long-term inflation expectations.`,
		trend:      "We are in a secular bear market for bonds (rising yields) after a 40-year bull run ended in 2020. This structural shift implies higher borrowing costs for the foreseeable future.",
		relevance:  `The "risk-free" rate against which all other assets are valued. Rising yields compress stock valuations (P/E ratios) and increase mortgage rates, directly impacting housing and tech.`,
		drivers:    []string{"Inflation Expectations", "Fed Funds Rate", "Term Premium", "Global Demand"},
	},
	"GDP Growth": {
		structural: "GDP growth has defied recession calls, powered by robust consumer spending and fiscal stimulus. However, divergences are emerging, with manufacturing softening while services remain resilient.",
		trend:      "Trend growth is slowing in developed markets due to demographics (aging population) and productivity challenges, though AI adoption may offer a productivity boost in the coming decade.",
		relevance:  "The ultimate scorecard for economic health. Two consecutive quarters of negative growth defines a technical recession. Strong growth supports corporate earnings but can reignite inflation.",
		drivers:    []string{"Consumer Spending", "Business Investment", "Government Expenditure", "Net Exports"},
	},
	"Inflation (CPI)": {
		structural: `Disinflation is progressing, but the "last mile" to the 2% target is proving difficult due to sticky services inflation and shelter costs. Goods deflation has largely played out.`,
		trend:      `We have moved from a regime of chronic disinflation (2008-2020) to a volatile inflation regime, driven by deglobalization, decarbonization, and demographics (the "3 Ds").`,
		relevance:  "Inflation erodes purchasing power. It is the primary driver of Central Bank policy. High inflation forces rate hikes; stable inflation allows for accommodation and economic stability.",
		drivers:    []string{"Energy Prices", "Housing/Shelter", "Wage Growth", "Supply Chains"},
	},
	"Unemployment": {
		structural: "The labor market remains historically tight, though cracks are forming in hiring rates and quit rates. This resilience supports consumption but keeps upward pressure on wages.",
		trend:      "Structural labor shortages are likely to persist due to retirement waves (Boomers) and lower immigration in some regions, shifting power from capital to labor.",
		relevance:  "The pulse of the consumer. Low unemployment supports spending and confidence. Rising unemployment is the most reliable signal of an oncoming recession and typically triggers Fed rate cuts.",
		drivers:    []string{"Labor Participation", "Job Openings", "Wage Growth", "Demographics"},
	},
	"Currency": {
		structural: `Currency strength is currently driven by relative interest rate differentials and economic growth divergence. The "higher for longer" Fed stance has supported the USD, weighing on peers.`,
		trend:      "Currencies are moving from a period of synchronized global easing to divergent tightening cycles. The USD retains its dominance as the global reserve currency and safe haven during geopolitical stress.",
		relevance:  "Currency strength affects export competitiveness and inflation. A strong currency lowers import costs (disinflationary) but hurts exporters. A weak currency boosts exports but imports inflation.",
		drivers:    []string{"Interest Rate Differentials", "Economic Growth Gap", "Safe Haven Flows", "Trade Balance"},
	},
}

var unknownAnalysis = indicatorAnalysis{
	structural: "Detailed analysis unavailable.",
	trend:      "Trend data unavailable.",
	relevance:  "Relevance data unavailable.",
	drivers:    []string{},
}

func analysisFor(indicator string) indicatorAnalysis {
	if a, ok := analyses[indicator]; ok {
		return a
	}
	return unknownAnalysis
}
