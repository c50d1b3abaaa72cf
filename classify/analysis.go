package classify

import (
	"fmt"
	"math"
	"strings"

	"github.com/johannkk1/MacroCharts/types"
)

var lookbackLabels = []string{"Day 0", "Day 1", "Day 2", "Day 3", "Day 4", "Day 5"}

// Analyze builds the narrative bundle shown when a headline is expanded.
// The lookback path and social split are simulated from the classifier's
// random source.
func (c *Classifier) Analyze(title, summary string, res Result) types.AnalysisBundle {
	return types.AnalysisBundle{
		MarketImpact:       impactText(res.Category, res.Impact),
		InvestorSentiment:  sentimentText(res.Sentiment),
		ChainReaction:      chainReaction(res.Category, res.Sentiment),
		HistoricalLookback: c.lookback(res.Category, res.Sentiment),
		AffectedAssets:     AffectedAssets(title, res.Category),
		SocialSentiment:    c.socialSentiment(res.SentimentScore),
	}
}

func impactText(cat types.Category, impact int) string {
	name := strings.ToLower(string(cat))
	switch {
	case impact >= 8:
		text := fmt.Sprintf("This development represents a significant shift in the %s landscape. ", name) +
			"Analysts expect immediate volatility in related sectors. "
		switch cat {
		case types.CategoryEconomy:
			text += "Central bank policy expectations may be repriced accordingly."
		case types.CategoryTechnology:
			text += "This could trigger a broader sector rotation or re-rating of growth stocks."
		case types.CategoryEnergy:
			text += "Commodity prices are likely to react sharply, influencing global input costs."
		}
		return text
	case impact >= 5:
		return fmt.Sprintf("This is a noteworthy development for %s watchers. ", name) +
			"While immediate market disruption may be limited, it contributes to the broader narrative. " +
			"Investors should monitor follow-up reports for confirmation of the trend."
	default:
		return "The immediate market impact is expected to be muted. " +
			"However, this adds to the cumulative data points for the current quarter. " +
			"Specific assets directly linked to this news may see minor intraday moves."
	}
}

func sentimentText(s types.Sentiment) string {
	switch s {
	case types.SentimentPositive:
		return "Investor sentiment is likely to be buoyed by this news. " +
			"Risk appetite may increase, favoring equities and growth-oriented assets. " +
			"Institutional flows could shift towards capitalizing on this momentum."
	case types.SentimentNegative:
		return "This news is likely to weigh on investor sentiment. " +
			"We may see a flight to safety or defensive positioning in the short term. " +
			"Traders should exercise caution and watch for key support levels breaking."
	default:
		return "The market reaction appears mixed or neutral at this stage. " +
			"Investors are likely digesting the details before committing to a directional bias. " +
			"Volatility may compress as the market awaits further clarity."
	}
}

func chainReaction(cat types.Category, s types.Sentiment) []types.ChainStep {
	positive := s == types.SentimentPositive
	switch {
	case cat == types.CategoryEconomy && positive:
		return []types.ChainStep{
			{Step: "Economic Data Beats", Detail: "Stronger than expected growth"},
			{Step: "Yields Rise", Detail: "Bond market prices in higher rates"},
			{Step: "Currency Strengthens", Detail: "Capital inflows chase yield"},
			{Step: "Cyclicals Rally", Detail: "Banks & Industrials outperform"},
		}
	case cat == types.CategoryEconomy:
		return []types.ChainStep{
			{Step: "Economic Data Misses", Detail: "Signs of slowdown emerge"},
			{Step: "Yields Fall", Detail: "Safe haven buying in bonds"},
			{Step: "Growth Stocks Bid", Detail: "Lower rates favor tech valuations"},
			{Step: "Defensives Outperform", Detail: "Rotation into Utilities & Staples"},
		}
	case cat == types.CategoryPolitics:
		return []types.ChainStep{
			{Step: "Political Event", Detail: "Policy change or uncertainty"},
			{Step: "Volatility Spikes", Detail: "VIX index moves higher"},
			{Step: "Sector Rotation", Detail: "Policy-favored sectors gain"},
			{Step: "Market Repricing", Detail: "Long-term risk premiums adjust"},
		}
	case cat == types.CategoryEnergy && positive:
		return []types.ChainStep{
			{Step: "Supply Constraint", Detail: "Production cuts or geopolitical tension"},
			{Step: "Crude Spikes", Detail: "Oil prices break resistance"},
			{Step: "Energy Stocks Rally", Detail: "XLE and majors gain"},
			{Step: "Inflation Fears", Detail: "Input costs rise for broader market"},
		}
	case cat == types.CategoryEnergy:
		return []types.ChainStep{
			{Step: "Oversupply / Weak Demand", Detail: "Inventories build up"},
			{Step: "Crude Slides", Detail: "Oil tests support levels"},
			{Step: "Transport Stocks Gain", Detail: "Airlines & Logistics benefit"},
			{Step: "Disinflationary Impulse", Detail: "Reduced pressure on CPI"},
		}
	case cat == types.CategoryTechnology:
		return []types.ChainStep{
			{Step: "Tech Catalyst", Detail: "Earnings beat or AI breakthrough"},
			{Step: "Nasdaq Rally", Detail: "Momentum traders pile in"},
			{Step: "Semi Leadership", Detail: "Chip stocks lead the advance"},
			{Step: "Broad Market Lift", Detail: "Mega-caps pull indices higher"},
		}
	default:
		return []types.ChainStep{
			{Step: "News Break", Detail: "Market digesting information"},
			{Step: "Volume Spike", Detail: "Increased trading activity"},
			{Step: "Price Discovery", Detail: "Buyers and sellers find equilibrium"},
			{Step: "Trend Continuation", Detail: "Market incorporates new baseline"},
		}
	}
}

func (c *Classifier) lookback(cat types.Category, s types.Sentiment) types.Lookback {
	trend := -1.0
	if s == types.SentimentPositive {
		trend = 1.0
	}
	volatility := 0.5 + c.rng.Float64()

	data := make([]float64, 0, len(lookbackLabels))
	data = append(data, 0)
	current := 0.0
	for i := 1; i < len(lookbackLabels); i++ {
		move := (0.2*trend + 0.3*c.rng.NormFloat64()) * volatility
		current += move
		data = append(data, math.RoundToEven(current*100)/100)
	}

	asset := "S&P 500"
	if cat == types.CategoryTechnology {
		asset = "Nasdaq 100"
	}
	return types.Lookback{
		Asset:  asset,
		Labels: append([]string(nil), lookbackLabels...),
		Data:   data,
	}
}

// AffectedAssets maps headline keywords to up to three tickers, falling back
// to broad category proxies when nothing matches.
func AffectedAssets(title string, cat types.Category) []string {
	lower := strings.ToLower(title)
	assets := make([]string, 0, 3)
	seen := make(map[string]bool)
	for _, a := range assetMap {
		if len(assets) == 3 {
			break
		}
		if strings.Contains(lower, a.keyword) && !seen[a.ticker] {
			seen[a.ticker] = true
			assets = append(assets, a.ticker)
		}
	}
	if len(assets) > 0 {
		return assets
	}
	if d, ok := defaultAssets[cat]; ok {
		return append([]string(nil), d...)
	}
	return append([]string(nil), fallbackAssets...)
}

func (c *Classifier) socialSentiment(score int) types.SocialSentiment {
	shift := score * 30
	bull := 33 + shift + c.rng.IntN(11) - 5
	bear := 33 - shift + c.rng.IntN(11) - 5
	bull = min(90, max(5, bull))
	bear = min(90, max(5, bear))
	return types.SocialSentiment{
		Bullish: bull,
		Bearish: bear,
		Neutral: 100 - bull - bear,
	}
}
