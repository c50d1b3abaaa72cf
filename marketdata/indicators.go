package marketdata

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/johannkk1/MacroCharts/cache"
	"github.com/johannkk1/MacroCharts/config"
	"github.com/johannkk1/MacroCharts/types"
)

// ErrUnknownIndicator is returned for names outside the catalogue.
var ErrUnknownIndicator = errors.New("unknown indicator")

type point struct {
	value  float64
	prior  float64
	source string
	asOf   string
}

type source func(ctx context.Context, p *Provider) (point, error)

type fallback struct {
	value, change, changePct float64
}

type indicatorSpec struct {
	name        string
	label       string
	ticker      string
	unit        string
	description string
	impact      string
	ttl         time.Duration
	valueDigits int
	diffDigits  int
	// scale applies to value and prior only; change stays in source units.
	scale    float64
	sources  []source
	fallback fallback
}

var catalogue = []indicatorSpec{
	{
		name: "jobless_claims", label: "Jobless Claims", ticker: "ICSA",
		description: "The number of individuals who filed for unemployment insurance for the first time during the past week.",
		impact:      "📉 Rising claims signal economic weakness, often bearish for stocks as consumer spending weakens. However, bonds may rally as the Fed is less likely to hike rates. A sustained rise above 250K historically precedes recessions.",
		ttl:         config.TTLDefault,
		sources:     []source{fredPair("ICSA")},
		fallback:    fallback{225000, -5000, -2.2},
	},
	{
		name: "cpi", label: "CPI (YoY)", ticker: "CPIAUCSL", unit: "%",
		description: "The Consumer Price Index (CPI) measures the average change in prices paid by consumers for a basket of goods and services.",
		impact:      "📈 Rising inflation (>3%) forces the Fed to raise rates, which is bearish for growth stocks and tech. Commodities and inflation-protected securities (TIPS) benefit. Falling CPI (<2%) allows rate cuts, bullish for stocks.",
		ttl:         config.TTLMonthlyMacro,
		valueDigits: 1, diffDigits: 2,
		sources:  []source{ninjasInflation, fredRate("CPIAUCSL_PC1"), fredLevelYoY("CPIAUCSL")},
		fallback: fallback{3.2, -0.1, -3.0},
	},
	{
		name: "pmi", label: "PMI", ticker: "NAPM",
		description: "The ISM Manufacturing PMI tracks the economic health of the manufacturing sector. Values above 50 indicate expansion.",
		impact:      "📊 PMI >50 indicates manufacturing expansion, bullish for industrials and cyclical stocks. PMI <50 signals contraction, bearish for stocks but may support defensive sectors and bonds. Sudden drops often lead broader market weakness.",
		ttl:         config.TTLDefault,
		valueDigits: 1, diffDigits: 1,
		sources:  []source{fredPair("NAPM")},
		fallback: fallback{52.4, 1.2, 2.3},
	},
	{
		name: "ism_services", label: "ISM Services", ticker: "ISM_SERVICES",
		description: "The ISM Services PMI measures the economic health of the services sector, which represents about 80% of US GDP.",
		impact:      "📊 Services >50 is strongly bullish for the economy. The services sector drives most US employment and consumer spending.",
		ttl:         config.TTLDefault,
		valueDigits: 1, diffDigits: 1,
		fallback: fallback{53.4, 0.8, 1.5},
	},
	{
		name: "interest_rate", label: "Fed Funds Rate", ticker: "DFF", unit: "%",
		description: "The interest rate at which depository institutions trade federal funds (balances held at Federal Reserve Banks) with each other overnight.",
		impact:      "💰 Rising rates tighten conditions, bearish for stocks. Falling rates stimulate growth, bullish for risk assets.",
		ttl:         config.TTLPolicyRate,
		valueDigits: 2, diffDigits: 2,
		sources:  []source{fredPair("DFF"), ninjasPolicyRate},
		fallback: fallback{5.33, 0, 0},
	},
	{
		name: "treasury_10y", label: "10Y Treasury", ticker: "DGS10", unit: "%",
		description: "The yield on the 10-year US Treasury note. A benchmark for long-term borrowing costs, including mortgages.",
		impact:      "📊 Rising 10Y yields (>4.5%) increase discount rates, bearish for high-growth stocks and tech. Mortgage rates rise, weakening housing. Falling yields (<3.5%) often signal recession fears or Fed rate cut expectations, bullish for bonds but mixed for stocks.",
		ttl:         config.TTLDefault,
		valueDigits: 2, diffDigits: 2,
		sources:  []source{fredPair("DGS10")},
		fallback: fallback{4.25, 0.05, 1.2},
	},
	{
		name: "treasury_2y", label: "2Y Treasury", ticker: "DGS2", unit: "%",
		description: "The yield on the 2-year US Treasury note. Highly sensitive to Federal Reserve interest rate policy expectations.",
		impact:      "⚠️ The 2Y yield closely tracks Fed policy. When 2Y > 10Y (yield curve inversion), it has predicted every recession since 1970. Inversions signal tightening ahead, bearish for stocks. Steepening (2Y < 10Y) supports growth.",
		ttl:         config.TTLDefault,
		valueDigits: 2, diffDigits: 2,
		sources:  []source{fredPair("DGS2")},
		fallback: fallback{4.15, 0.03, 0.7},
	},
	{
		name: "dxy", label: "DXY (USD Index)", ticker: "DTWEXBGS",
		description: "A measure of the value of the U.S. dollar relative to a basket of foreign currencies.",
		impact:      "💵 A rising DXY (>105) strengthens the dollar, hurting US exporters and multinationals. Bearish for commodities (priced in USD). Falling DXY (<95) boosts exports and commodities, bullish for emerging markets.",
		ttl:         config.TTLDefault,
		valueDigits: 2, diffDigits: 2,
		sources:  []source{fredPair("DTWEXBGS")},
		fallback: fallback{104.50, -0.25, -0.2},
	},
	{
		name: "m2", label: "M2 Money Supply", ticker: "M2SL", unit: "T",
		description: "A measure of the money supply that includes cash, checking deposits, and easily convertible near money.",
		impact:      "💧 M2 growth fuels asset inflation. Rising M2 is bullish for stocks, crypto, and real estate as liquidity floods markets. Contracting M2 has historically preceded major market corrections.",
		ttl:         config.TTLDefault,
		valueDigits: 2, diffDigits: 0,
		scale:    0.001,
		sources:  []source{fredPair("M2SL")},
		fallback: fallback{21.05, 15, 0.1},
	},
	{
		name: "unemployment", label: "Unemployment", ticker: "UNRATE", unit: "%",
		description: "The percentage of the total labor force that is unemployed but actively seeking employment.",
		impact:      "👥 Low unemployment (<4%) supports consumer spending, bullish for retail and services. However, very tight labor markets (<3.5%) can fuel wage inflation, forcing Fed rate hikes. Rising unemployment (>5%) signals recession risk, bearish for stocks.",
		ttl:         config.TTLDefault,
		valueDigits: 1, diffDigits: 1,
		sources:  []source{fredPair("UNRATE")},
		fallback: fallback{3.9, 0.1, 2.6},
	},
	{
		name: "gold", label: "Gold (USD/oz)", ticker: "GOLDAMGBD228NLBM",
		description: "The price of one troy ounce of gold in US Dollars.",
		impact:      "🥇 Gold thrives during uncertainty, inflation, and dollar weakness. It rallies when real interest rates fall. Central bank buying, geopolitical crises, and Fed dovishness are bullish. Rising real rates (>2%) are bearish.",
		ttl:         config.TTLCommodity,
		valueDigits: 0, diffDigits: 2,
		sources:  []source{fredPair("GOLDAMGBD228NLBM"), ninjasCommodity("Gold")},
		fallback: fallback{2050, 12.50, 0.6},
	},
	{
		name: "oil", label: "Oil (WTI)", ticker: "DCOILWTICO",
		description: "West Texas Intermediate (WTI) crude oil price per barrel.",
		impact:      "🛢️ Oil is a global growth barometer. Rising prices (>$90/bbl) increase production costs and inflation, bearish for consumer discretionary stocks. Falling prices (<$60) reduce inflation but may signal demand weakness.",
		ttl:         config.TTLCommodity,
		valueDigits: 2, diffDigits: 2,
		sources:  []source{fredPair("DCOILWTICO"), ninjasCommodity("WTI Crude Oil"), ninjasCommodity("Brent Crude Oil")},
		fallback: fallback{78.50, -1.25, -1.6},
	},
}

var catalogueIndex = func() map[string]int {
	m := make(map[string]int, len(catalogue))
	for i, s := range catalogue {
		m[s.name] = i
	}
	return m
}()

// Names lists the catalogue in display order.
func Names() []string {
	out := make([]string, len(catalogue))
	for i, s := range catalogue {
		out[i] = s.name
	}
	return out
}

// TTL reports how long a reading of name stays fresh.
func TTL(name string) (time.Duration, bool) {
	i, ok := catalogueIndex[name]
	if !ok {
		return 0, false
	}
	return catalogue[i].ttl, true
}

// Indicator returns the latest reading for name. Upstreams are tried in
// order, FRED before API Ninjas except for CPI; when all fail the static
// fallback is returned with Source "static".
func (p *Provider) Indicator(ctx context.Context, name string) (types.Reading, error) {
	i, ok := catalogueIndex[name]
	if !ok {
		return types.Reading{}, fmt.Errorf("%q: %w", name, ErrUnknownIndicator)
	}
	spec := catalogue[i]
	return cache.GetOrFetch(ctx, p.cache, "indicator:"+name, spec.ttl, func(ctx context.Context) (types.Reading, error) {
		return p.resolve(ctx, spec), nil
	})
}

func (p *Provider) resolve(ctx context.Context, spec indicatorSpec) types.Reading {
	for _, src := range spec.sources {
		pt, err := src(ctx, p)
		if err != nil {
			if !errors.Is(err, errNoKey) {
				log.Warn().Err(err).Str("indicator", spec.name).Msg("indicator source failed")
			}
			continue
		}
		return spec.reading(pt)
	}

	r := spec.base()
	r.Value = spec.fallback.value
	r.Change = spec.fallback.change
	r.ChangePct = spec.fallback.changePct
	r.Prior = roundTo(r.Value-r.Change, spec.valueDigits)
	r.Source = "static"
	return r
}

func (s indicatorSpec) base() types.Reading {
	return types.Reading{
		Name:        s.name,
		Label:       s.label,
		Unit:        s.unit,
		Ticker:      s.ticker,
		Description: s.description,
		Impact:      s.impact,
	}
}

func (s indicatorSpec) reading(pt point) types.Reading {
	scale := s.scale
	if scale == 0 {
		scale = 1
	}
	change := pt.value - pt.prior
	var pct float64
	if pt.prior != 0 {
		pct = change / pt.prior * 100
	}

	r := s.base()
	r.Value = roundTo(pt.value*scale, s.valueDigits)
	r.Prior = roundTo(pt.prior*scale, s.valueDigits)
	r.Change = roundTo(change, s.diffDigits)
	r.ChangePct = roundTo(pct, 1)
	r.Source = pt.source
	r.AsOf = pt.asOf
	return r
}

// PolicyStance labels the policy rate: above 5% restrictive, below 2.5%
// accommodative.
func PolicyStance(rate float64) string {
	switch {
	case rate > 5.0:
		return "Restrictive"
	case rate < 2.5:
		return "Accommodative"
	default:
		return "Neutral"
	}
}

// EconomicData resolves the whole catalogue concurrently.
func (p *Provider) EconomicData(ctx context.Context) types.EconomicData {
	readings := make([]types.Reading, len(catalogue))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(4)
	for i, spec := range catalogue {
		g.Go(func() error {
			r, err := p.Indicator(gctx, spec.name)
			if err != nil {
				return err
			}
			readings[i] = r
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		log.Error().Err(err).Msg("economic data incomplete")
	}

	var policy string
	for _, r := range readings {
		if r.Name == "interest_rate" {
			policy = PolicyStance(r.Value)
		}
	}
	return types.EconomicData{
		Indicators:  readings,
		Policy:      policy,
		LastUpdated: p.now().Format("2006-01-02 15:04:05"),
	}
}

func roundTo(v float64, digits int) float64 {
	f := math.Pow10(digits)
	return math.RoundToEven(v*f) / f
}

// fredPair uses the two latest observations.
func fredPair(series string) source {
	return func(ctx context.Context, p *Provider) (point, error) {
		obs, err := p.latest(ctx, series, 2)
		if err != nil {
			return point{}, err
		}
		if len(obs) < 2 {
			return point{}, fmt.Errorf("fred %s: %w", series, ErrNoData)
		}
		return point{value: obs[0].Value, prior: obs[1].Value, source: "fred", asOf: obs[0].Date}, nil
	}
}

// fredRate is fredPair tolerating a single observation.
func fredRate(series string) source {
	return func(ctx context.Context, p *Provider) (point, error) {
		obs, err := p.latest(ctx, series, 2)
		if err != nil {
			return point{}, err
		}
		prior := obs[0].Value
		if len(obs) > 1 {
			prior = obs[1].Value
		}
		return point{value: obs[0].Value, prior: prior, source: "fred", asOf: obs[0].Date}, nil
	}
}

// fredLevelYoY derives year-over-year rates from monthly index levels.
func fredLevelYoY(series string) source {
	return func(ctx context.Context, p *Provider) (point, error) {
		obs, err := p.latest(ctx, series, 14)
		if err != nil {
			return point{}, err
		}
		if len(obs) < 14 || obs[12].Value == 0 || obs[13].Value == 0 {
			return point{}, fmt.Errorf("fred %s yoy: %w", series, ErrNoData)
		}
		yoy := (obs[0].Value - obs[12].Value) / obs[12].Value * 100
		prev := (obs[1].Value - obs[13].Value) / obs[13].Value * 100
		return point{value: yoy, prior: prev, source: "fred", asOf: obs[0].Date}, nil
	}
}

func ninjasInflation(ctx context.Context, p *Provider) (point, error) {
	rows, err := p.inflation(ctx)
	if err != nil {
		return point{}, err
	}
	prior := rows[0].YearlyRatePct
	if len(rows) > 1 {
		prior = rows[1].YearlyRatePct
	}
	return point{value: rows[0].YearlyRatePct, prior: prior, source: "api-ninjas", asOf: rows[0].Period}, nil
}

func ninjasPolicyRate(ctx context.Context, p *Provider) (point, error) {
	v, err := p.centralBankRate(ctx)
	if err != nil {
		return point{}, err
	}
	return point{value: v, prior: v, source: "api-ninjas"}, nil
}

func ninjasCommodity(name string) source {
	return func(ctx context.Context, p *Provider) (point, error) {
		v, err := p.commodityPrice(ctx, name)
		if err != nil {
			return point{}, err
		}
		return point{value: v, prior: v, source: "api-ninjas"}, nil
	}
}
