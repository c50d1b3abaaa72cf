package insight

import (
	"fmt"
	"strings"

	"github.com/johannkk1/MacroCharts/config"
	"github.com/johannkk1/MacroCharts/types"
)

// MarketImplications writes the investor-facing paragraph for a dimension.
// Only the first few items are read for keyword branches.
func MarketImplications(d types.Dimension, score float64, items []types.NewsItem, country string) string {
	scan := items
	if len(scan) > config.InsightScanLimit {
		scan = scan[:config.InsightScanLimit]
	}
	text := strings.ToLower(joinText(scan))
	has := func(words ...string) bool {
		for _, w := range words {
			if strings.Contains(text, w) {
				return true
			}
		}
		return false
	}

	switch d {
	case types.DimensionMonetary:
		switch {
		case score > 65 && has("cut", "dovish"):
			return fmt.Sprintf("**Dovish pivot** in %s supports **risk assets**. Implications: ✅ Growth equities, real estate, EM debt benefit from easier financial conditions. Watch: Duration risk if inflation reaccelerates.", country)
		case score > 65:
			return fmt.Sprintf("**Accommodative stance** in %s maintains liquidity. Implications: ✅ Credit spreads tight, equity multiples supported. Risk: Policy error if growth slows.", country)
		case score < 40:
			return fmt.Sprintf("**Hawkish policy** in %s tightening financial conditions. Implications: ⚠️ Defensive positioning warranted. Favor: Value over growth, quality credit, short duration. Pressure on: High-multiple tech, leveraged names.", country)
		}
		return fmt.Sprintf("**Neutral policy** in %s - data-dependent approach. Implications: 🔄 Tactical rotations based on incoming data. Monitor: CPI prints, labor market, Fed communications.", country)

	case types.DimensionInflation:
		switch {
		case score > 65:
			return fmt.Sprintf("**Goldilocks scenario** in %s - robust growth with controlled inflation. Implications: ✅ Cyclicals, banks, industrials outperform. Stable inflation supports: Corporate margins, consumer spending power.", country)
		case score < 40 && has("recession", "contraction"):
			return fmt.Sprintf("**Recession risk** elevated in %s. Implications: 🛡️ Flight to quality underway. Favor: Utilities, staples, healthcare, long-duration Treasuries. Avoid: Cyclicals, discretionary, small caps.", country)
		case score < 40:
			return fmt.Sprintf("**Stagflation concerns** in %s - weak growth + sticky inflation. Implications: ⚠️ Challenging for equities. Consider: Commodities, TIPS, value stocks. Avoid: Long-duration growth.", country)
		}
		return fmt.Sprintf("**Mixed economic signals** in %s. Implications: 🎯 Sector-specific approach. Monitor: Leading indicators (PMI, yield curve) for directional clarity.", country)

	case types.DimensionPolitical:
		switch {
		case score < 40 && has("tariff", "trade war"):
			return fmt.Sprintf("**Trade policy uncertainty** in %s elevates risk premiums. Implications: ⚠️ Supply chain disruptions possible. Favor: Domestic-oriented names, hedged multinationals. Monitor: Negotiation developments.", country)
		case score < 40:
			return fmt.Sprintf("**Political instability** in %s increases volatility. Implications: 💰 Risk premium in sovereign spreads. Favor: Quality over beta, gold, defensive sectors.", country)
		}
		return fmt.Sprintf("**Stable political environment** in %s supports investment. Implications: ✅ Regulatory clarity enables long-term capex. Infrastructure, regulated utilities benefit.", country)

	case types.DimensionCurrency:
		switch {
		case score > 60:
			return fmt.Sprintf("**Strong %s currency** reduces import costs but hurts exporters. Implications: ✅ Importers, retailers, travel/hospitality benefit. ⚠️ Multinationals with high foreign revenue exposure face headwinds.", country)
		case score < 40:
			return fmt.Sprintf("**Weak %s currency** boosts export competitiveness. Implications: ✅ Exporters, manufacturers, tourism operators gain. ⚠️ Import-dependent sectors (energy, autos) face margin pressure.", country)
		}
		return fmt.Sprintf("**Stable %s FX** provides predictability. Implications: 🔄 Focus on fundamentals vs currency swings. Natural hedges valuable.", country)

	case types.DimensionSentiment:
		switch {
		case score > 65:
			return fmt.Sprintf("**Risk-on environment** in %s markets. Implications: 📈 Strong momentum in growth/cyclicals. Caution: Elevated sentiment can signal crowding - watch for mean reversion signals (VIX spike, breadth divergence).", country)
		case score < 40:
			return fmt.Sprintf("**Risk-off positioning** in %s. Implications: 💎 Contrarian opportunities in oversold quality names. Defensive sectors (utilities, staples) outperforming. Entry points emerging.", country)
		}
		return fmt.Sprintf("**Neutral sentiment** in %s. Implications: 📊 Balanced positioning. Use fundamental analysis vs momentum. Stock-picking environment.", country)

	case types.DimensionFiscal:
		if score < 40 {
			return fmt.Sprintf("**Fiscal concerns** in %s pressuring sovereign outlook. Implications: ⚠️ Sovereign CDS widening risk. Austerity measures may drag growth. Consider: Foreign diversification, inflation hedges.", country)
		}
		return fmt.Sprintf("**Solid fiscal position** in %s provides policy flexibility. Implications: ✅ Countercyclical capacity available if downturn materializes. Infrastructure investment sustainable.", country)

	case types.DimensionExternal:
		if score < 40 {
			return fmt.Sprintf("**High external vulnerability** in %s amplifies global shock transmission. Implications: ⚠️ Sanctions/tariff exposure elevated. Diversify: Less correlated regions, maintain tail-risk hedges (options, gold).", country)
		}
		return fmt.Sprintf("**Low external vulnerability** in %s provides insulation. Implications: ✅ Domestic assets less correlated with global volatility events. Resilient to external shocks.", country)
	}

	return FallbackImplications(d, score, len(items), country)
}

// FallbackImplications is the plain sentence used when no template applies.
func FallbackImplications(d types.Dimension, score float64, n int, country string) string {
	label := string(d)
	if info, ok := Info(d); ok {
		label = info.Label
	}
	return fmt.Sprintf("Score based on %d news sources. %s %s at %.0f/100.", n, country, strings.ToLower(label), score)
}
