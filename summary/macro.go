package summary

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/johannkk1/MacroCharts/classify"
	"github.com/johannkk1/MacroCharts/config"
	"github.com/johannkk1/MacroCharts/textfeatures"
	"github.com/johannkk1/MacroCharts/types"
)

// countryTickers are the market symbols charted for a country. An empty
// yield means no benchmark is charted.
type countryTickers struct {
	equity, yield, fx string
}

var macroTickers = map[string]countryTickers{
	"US":     {equity: "^GSPC", yield: "^TNX", fx: "DX-Y.NYB"},
	"DE":     {equity: "^GDAXI", fx: "EURUSD=X"},
	"UK":     {equity: "^FTSE", fx: "GBPUSD=X"},
	"CN":     {equity: "000001.SS", fx: "CNY=X"},
	"JP":     {equity: "^N225", fx: "JPY=X"},
	"Global": {equity: "^MS_WORLD", yield: "^TNX", fx: "DX-Y.NYB"},
}

// FRED series with real history; only used for US and Global.
const (
	seriesGDP          = "A191RL1Q225SBEA"
	seriesCPI          = "CPIAUCSL"
	seriesUnemployment = "UNRATE"
)

// chartPeriod is the lookback requested for price charts.
const chartPeriod = "max"

var (
	equityNews       = []string{"stocks", "market", "equity", "sp500"}
	yieldNews        = []string{"yield", "bond", "treasury", "rates"}
	gdpNews          = []string{"gdp", "growth", "economy", "recession"}
	cpiNews          = []string{"inflation", "cpi", "prices", "cost of living"}
	unemploymentNews = []string{"jobs", "unemployment", "labor", "hiring"}
	currencyNews     = []string{"currency", "dollar", "euro", "yen", "fx"}
)

func tickersFor(country string) countryTickers {
	if t, ok := macroTickers[country]; ok {
		return t
	}
	return macroTickers["Global"]
}

func hasFredHistory(country string) bool {
	return country == "US" || country == "Global"
}

// MacroData builds the indicator panel for country. Provider failures drop
// market entries and degrade economic trends to simulated series; they never
// fail the caller.
func (g *Generator) MacroData(ctx context.Context, country string, items []types.NewsItem) []types.MacroIndicator {
	rng := g.newRand()
	tickers := tickersFor(country)
	out := []types.MacroIndicator{}

	if ind, ok := g.priceIndicator(ctx, tickers.equity, "Equity Market", items); ok {
		out = append(out, ind)
	}
	if tickers.yield != "" {
		if ind, ok := g.priceIndicator(ctx, tickers.yield, "10Y Yield", items); ok {
			out = append(out, ind)
		}
	}

	out = append(out, g.gdpIndicator(ctx, country, items, rng))
	out = append(out, g.cpiIndicator(ctx, country, items, rng))
	out = append(out, g.unemploymentIndicator(ctx, country, items, rng))

	if ind, ok := g.priceIndicator(ctx, tickers.fx, currencyLabel(country), items); ok {
		out = append(out, ind)
	}
	return out
}

func currencyLabel(country string) string {
	if country == "US" {
		return "USD Index"
	}
	return country + "/USD"
}

// priceIndicator charts a daily close series. Equity, yield and currency
// entries only differ in formatting.
func (g *Generator) priceIndicator(ctx context.Context, symbol, label string, items []types.NewsItem) (types.MacroIndicator, bool) {
	if g.market == nil || symbol == "" {
		return types.MacroIndicator{}, false
	}
	bars, err := g.market.PriceSeries(ctx, symbol, chartPeriod)
	if err != nil || len(bars) < 2 {
		log.Warn().Err(err).Str("symbol", symbol).Int("bars", len(bars)).Msg("price series unavailable, skipping indicator")
		return types.MacroIndicator{}, false
	}

	current := bars[len(bars)-1].Close
	prev := bars[len(bars)-2].Close
	trend := types.Series{Dates: make([]string, len(bars)), Values: make([]float64, len(bars))}
	for i, b := range bars {
		trend.Dates[i] = b.Date
		trend.Values[i] = b.Close
	}

	ind := types.MacroIndicator{
		Label:     label,
		Trend:     trend,
		Frequency: "daily",
		Format:    "number",
	}

	switch label {
	case "Equity Market":
		ind.Change = pctChange(current, prev)
		ind.Value = formatThousands(current)
		ind.ChangeLabel = fmt.Sprintf("%+.2f%%", ind.Change)
		ind.Details = details(label, items, equityNews)
	case "10Y Yield":
		ind.Change = current - prev
		ind.Value = fmt.Sprintf("%.2f%%", current)
		ind.ChangeLabel = fmt.Sprintf("%+.2fbp", ind.Change)
		ind.Format = "percent"
		ind.Inverse = true
		ind.Details = details(label, items, yieldNews)
	default:
		ind.Change = pctChange(current, prev)
		ind.Value = fmt.Sprintf("%.2f", current)
		ind.ChangeLabel = fmt.Sprintf("%+.2f%%", ind.Change)
		ind.Details = details("Currency", items, currencyNews)
	}
	return ind, true
}

func pctChange(current, prev float64) float64 {
	if prev == 0 {
		return 0
	}
	return (current - prev) / prev * 100
}

func (g *Generator) gdpIndicator(ctx context.Context, country string, items []types.NewsItem, rng classify.Rand) types.MacroIndicator {
	value := 2.9
	switch country {
	case "US":
		value = 3.1
	case "CN":
		value = 5.2
	case "DE":
		value = -0.3
	}

	return types.MacroIndicator{
		Label:       "GDP Growth",
		Value:       fmt.Sprintf("%.1f%%", value),
		Change:      0,
		ChangeLabel: "Stable",
		Trend:       g.history(ctx, country, seriesGDP, value, 20, 90, 0.5, rng),
		Frequency:   "quarterly",
		Format:      "percent",
		Details:     details("GDP Growth", items, gdpNews),
	}
}

func (g *Generator) cpiIndicator(ctx context.Context, country string, items []types.NewsItem, rng classify.Rand) types.MacroIndicator {
	value, change := 3.2, -0.1
	if r, ok := g.reading(ctx, "cpi"); ok {
		value, change = r.Value, r.Change
	}
	switch country {
	case "CN":
		value = 0.7
	case "UK":
		value = 3.4
	case "DE":
		value = 2.5
	}

	label := "Rising"
	if change < 0 {
		label = "Cooling"
	}
	return types.MacroIndicator{
		Label:       "Inflation (CPI)",
		Value:       fmt.Sprintf("%.1f%%", value),
		Change:      change,
		ChangeLabel: label,
		Trend:       g.history(ctx, country, seriesCPI, value, 60, 30, 0.5, rng),
		Frequency:   "monthly",
		Format:      "percent",
		Inverse:     true,
		Details:     details("Inflation (CPI)", items, cpiNews),
	}
}

func (g *Generator) unemploymentIndicator(ctx context.Context, country string, items []types.NewsItem, rng classify.Rand) types.MacroIndicator {
	value, change := 3.9, 0.0
	if r, ok := g.reading(ctx, "unemployment"); ok {
		value, change = r.Value, r.Change
	}
	switch country {
	case "DE":
		value = 5.9
	case "UK":
		value = 4.2
	}

	return types.MacroIndicator{
		Label:       "Unemployment",
		Value:       fmt.Sprintf("%.1f%%", value),
		Change:      change,
		ChangeLabel: "Steady",
		Trend:       g.history(ctx, country, seriesUnemployment, value, 60, 30, 0.2, rng),
		Frequency:   "monthly",
		Format:      "percent",
		Inverse:     true,
		Details:     details("Unemployment", items, unemploymentNews),
	}
}

func (g *Generator) reading(ctx context.Context, name string) (types.Reading, bool) {
	if g.market == nil {
		return types.Reading{}, false
	}
	r, err := g.market.Indicator(ctx, name)
	if err != nil {
		log.Warn().Err(err).Str("indicator", name).Msg("indicator unavailable, using default")
		return types.Reading{}, false
	}
	return r, true
}

// history returns the FRED series where one exists for country, otherwise
// a simulated series of points spaced stepDays apart around value.
func (g *Generator) history(ctx context.Context, country, seriesID string, value float64, points, stepDays int, spread float64, rng classify.Rand) types.Series {
	if g.market != nil && hasFredHistory(country) {
		s, err := g.market.History(ctx, seriesID)
		if err == nil && len(s.Values) > 0 {
			return s
		}
		log.Warn().Err(err).Str("series", seriesID).Msg("history unavailable, simulating")
	}
	return SimulatedSeries(g.now(), value, points, stepDays, spread, rng)
}

// SimulatedSeries produces points values jittered uniformly by ±spread,
// dated stepDays apart and ending at end. Oldest first.
func SimulatedSeries(end time.Time, value float64, points, stepDays int, spread float64, rng classify.Rand) types.Series {
	s := types.Series{Dates: make([]string, points), Values: make([]float64, points)}
	for i := 0; i < points; i++ {
		back := points - 1 - i
		s.Dates[i] = end.AddDate(0, 0, -back*stepDays).Format("2006-01-02")
	}
	for i := 0; i < points; i++ {
		s.Values[i] = value + (rng.Float64()*2-1)*spread
	}
	return s
}

func details(indicator string, items []types.NewsItem, keywords []string) types.IndicatorDetails {
	a := analysisFor(indicator)
	related := []types.NewsItem{}
	for _, item := range items {
		if len(related) == config.RelatedNewsLimit {
			break
		}
		if textfeatures.ContainsAny(strings.ToLower(item.Title+" "+item.Summary), keywords) {
			related = append(related, item)
		}
	}
	return types.IndicatorDetails{
		StructuralAnalysis: a.structural,
		LargerTrend:        a.trend,
		Relevance:          a.relevance,
		KeyDrivers:         append([]string{}, a.drivers...),
		RelatedNews:        related,
	}
}

// formatThousands renders v rounded to an integer with comma grouping.
func formatThousands(v float64) string {
	s := strconv.FormatFloat(math.RoundToEven(v), 'f', 0, 64)
	sign := ""
	if strings.HasPrefix(s, "-") {
		sign, s = "-", s[1:]
	}
	var b strings.Builder
	for i, r := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	return sign + b.String()
}
