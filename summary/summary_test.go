package summary

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/johannkk1/MacroCharts/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2024, 6, 3, 12, 0, 0, 0, time.UTC)

func item(title string, cat types.Category, score int) types.NewsItem {
	return types.NewsItem{Title: title, Category: cat, SentimentScore: score}
}

func mixedBatch() []types.NewsItem {
	return []types.NewsItem{
		item("Exports boost GDP growth", types.CategoryEconomy, 1),
		item("Exports surge as jobs growth holds", types.CategoryEconomy, 1),
		item("Exports rally lifts economy outlook", types.CategoryEconomy, 1),
		item("Exports record strong gains", types.CategoryEconomy, 1),
		item("Election protest fears deepen", types.CategoryPolitics, -1),
		item("Senate scandal sparks panic", types.CategoryPolitics, -1),
	}
}

// fakeMarket serves canned series; failing makes every call error.
type fakeMarket struct {
	failing  bool
	bars     map[string][]types.Bar
	readings map[string]types.Reading
	history  types.Series
	calls    map[string]int
}

func newFakeMarket() *fakeMarket {
	return &fakeMarket{
		bars: map[string][]types.Bar{
			"^GSPC":    {{Date: "2024-05-31", Close: 5000}, {Date: "2024-06-03", Close: 5050}},
			"^TNX":     {{Date: "2024-05-31", Close: 4.20}, {Date: "2024-06-03", Close: 4.25}},
			"DX-Y.NYB": {{Date: "2024-05-31", Close: 104}, {Date: "2024-06-03", Close: 104.52}},
			"^GDAXI":   {{Date: "2024-05-31", Close: 18000}, {Date: "2024-06-03", Close: 18100}},
			"EURUSD=X": {{Date: "2024-05-31", Close: 1.08}, {Date: "2024-06-03", Close: 1.09}},
		},
		readings: map[string]types.Reading{
			"cpi":          {Name: "cpi", Value: 3.0, Change: -0.2},
			"unemployment": {Name: "unemployment", Value: 4.1, Change: 0.1},
		},
		history: types.Series{Dates: []string{"2024-01-01"}, Values: []float64{1.5}},
		calls:   map[string]int{},
	}
}

var errUnavailable = errors.New("unavailable")

func (f *fakeMarket) PriceSeries(_ context.Context, symbol, _ string) ([]types.Bar, error) {
	f.calls["price:"+symbol]++
	if f.failing {
		return nil, errUnavailable
	}
	return f.bars[symbol], nil
}

func (f *fakeMarket) Indicator(_ context.Context, name string) (types.Reading, error) {
	f.calls["indicator:"+name]++
	if f.failing {
		return types.Reading{}, errUnavailable
	}
	r, ok := f.readings[name]
	if !ok {
		return types.Reading{}, errUnavailable
	}
	return r, nil
}

func (f *fakeMarket) History(_ context.Context, seriesID string) (types.Series, error) {
	f.calls["history:"+seriesID]++
	if f.failing {
		return types.Series{}, errUnavailable
	}
	return f.history, nil
}

func labels(ms []types.MacroIndicator) []string {
	out := make([]string, len(ms))
	for i, m := range ms {
		out[i] = m.Label
	}
	return out
}

func TestScoreEmpty(t *testing.T) {
	s := Score(nil)
	assert.Equal(t, 0.0, s.EcoScore)
	assert.Equal(t, 0.0, s.PolScore)
	assert.Equal(t, "Neutral", s.MarketSentiment)
	assert.Equal(t, []string{}, s.TopTopics)
	assert.Equal(t, "No data available.", s.Verdict)
}

func TestScoreMixedBatch(t *testing.T) {
	s := Score(mixedBatch())

	assert.Equal(t, 8.0, s.EcoScore)
	assert.Equal(t, -4.0, s.PolScore)
	assert.Equal(t, "Neutral", s.MarketSentiment)
	assert.Equal(t, 2.0, s.SentimentScore)
	assert.Equal(t, 6, s.ArticleCount)
	assert.Equal(t, []string{"exports", "growth", "boost", "surge", "jobs"}, s.TopTopics)
	assert.Equal(t, "Based on 6 analyzed reports, the market sentiment is neutral."+
		" Economic indicators are trending positively (4 reports)."+
		" Political stability is a concern (2 reports)."+
		" Key themes include exports, growth, boost.", s.Verdict)
	require.Len(t, s.TopNews, 3)
	assert.Equal(t, "Exports boost GDP growth", s.TopNews[0].Title)
}

func TestScoreDampsThinSamples(t *testing.T) {
	s := Score([]types.NewsItem{item("Rally extends", types.CategoryFinance, 1)})

	// 1/1*10 scaled by 1/10.
	assert.Equal(t, 1.0, s.SentimentScore)
	assert.Equal(t, "Neutral", s.MarketSentiment)
	assert.Equal(t, "Based on 1 analyzed reports, the market sentiment is neutral. Key themes include rally, extends.", s.Verdict)
}

func TestScoreRoundsHalvesToEven(t *testing.T) {
	items := []types.NewsItem{item("Output beats", types.CategoryEconomy, 1)}
	for i := 0; i < 7; i++ {
		items = append(items, item("Output flat", types.CategoryEconomy, 0))
	}

	s := Score(items)

	// 1/8*10 = 1.25, undamped at 8 items.
	assert.Equal(t, 1.2, s.EcoScore)
	assert.Equal(t, 1.0, s.SentimentScore)
}

func TestScoreBearishWithMixedClauses(t *testing.T) {
	var items []types.NewsItem
	for i := 0; i < 10; i++ {
		items = append(items, item("Crash", types.CategoryFinance, -1))
	}
	items = append(items, item("Budget", types.CategoryEconomy, 0), item("Vote", types.CategoryPolitics, 0))

	s := Score(items)
	assert.Equal(t, "Bearish", s.MarketSentiment)
	assert.Contains(t, s.Verdict, " Economic signals are currently mixed or neutral.")
	assert.Contains(t, s.Verdict, " The political landscape appears relatively stable.")
}

func TestTopTopicsFiltersAndOrders(t *testing.T) {
	items := []types.NewsItem{
		{Title: "The market says stocks rally"},
		{Title: "Tariffs hit tariffs; Börse reacts"},
		{Title: "Rally fades as Börse slips"},
	}
	assert.Equal(t, []string{"rally", "tariffs", "börse", "reacts", "fades"}, TopTopics(items))
}

func TestSummarizeEmptyDoesNotTouchProvider(t *testing.T) {
	m := newFakeMarket()
	s := NewGenerator(m).Summarize(context.Background(), nil, "US")
	assert.Equal(t, Empty(), s)
	assert.Empty(t, m.calls)
}

func TestMacroDataUS(t *testing.T) {
	m := newFakeMarket()
	g := NewGenerator(m).WithClock(func() time.Time { return fixedNow }).WithSeed(1)
	items := []types.NewsItem{
		{Title: "Stocks climb on earnings"},
		{Title: "Treasury yield steadies"},
		{Title: "Dollar slips"},
	}

	macro := g.MacroData(context.Background(), "US", items)

	require.Equal(t, []string{"Equity Market", "10Y Yield", "GDP Growth", "Inflation (CPI)", "Unemployment", "USD Index"}, labels(macro))

	equity := macro[0]
	assert.Equal(t, "5,050", equity.Value)
	assert.Equal(t, "+1.00%", equity.ChangeLabel)
	assert.Equal(t, "daily", equity.Frequency)
	assert.Equal(t, []string{"2024-05-31", "2024-06-03"}, equity.Trend.Dates)
	require.Len(t, equity.Details.RelatedNews, 1)
	assert.Equal(t, "Stocks climb on earnings", equity.Details.RelatedNews[0].Title)

	yield := macro[1]
	assert.Equal(t, "4.25%", yield.Value)
	assert.Equal(t, "+0.05bp", yield.ChangeLabel)
	assert.True(t, yield.Inverse)
	assert.Equal(t, "percent", yield.Format)

	gdp := macro[2]
	assert.Equal(t, "3.1%", gdp.Value)
	assert.Equal(t, "Stable", gdp.ChangeLabel)
	assert.Equal(t, m.history, gdp.Trend)

	cpi := macro[3]
	assert.Equal(t, "3.0%", cpi.Value)
	assert.Equal(t, -0.2, cpi.Change)
	assert.Equal(t, "Cooling", cpi.ChangeLabel)

	unemp := macro[4]
	assert.Equal(t, "4.1%", unemp.Value)
	assert.Equal(t, "Steady", unemp.ChangeLabel)

	fx := macro[5]
	assert.Equal(t, "104.52", fx.Value)
	assert.Equal(t, "+0.50%", fx.ChangeLabel)
	assert.Equal(t, []string{"Interest Rate Differentials", "Economic Growth Gap", "Safe Haven Flows", "Trade Balance"}, fx.Details.KeyDrivers)
}

func TestMacroDataNonUSUsesOverridesAndSimulatedTrends(t *testing.T) {
	m := newFakeMarket()
	g := NewGenerator(m).WithClock(func() time.Time { return fixedNow }).WithSeed(1)

	macro := g.MacroData(context.Background(), "DE", nil)

	require.Equal(t, []string{"Equity Market", "GDP Growth", "Inflation (CPI)", "Unemployment", "DE/USD"}, labels(macro))
	assert.Equal(t, "18,100", macro[0].Value)
	assert.Equal(t, "-0.3%", macro[1].Value)
	assert.Equal(t, "2.5%", macro[2].Value)
	assert.Equal(t, "5.9%", macro[3].Value)
	assert.Zero(t, m.calls["history:"+seriesGDP])
	assert.Len(t, macro[1].Trend.Values, 20)
	assert.Equal(t, "2024-06-03", macro[1].Trend.Dates[19])
}

func TestMacroDataDegradesWhenProviderFails(t *testing.T) {
	m := newFakeMarket()
	m.failing = true
	g := NewGenerator(m).WithClock(func() time.Time { return fixedNow }).WithSeed(3)

	macro := g.MacroData(context.Background(), "US", nil)

	require.Equal(t, []string{"GDP Growth", "Inflation (CPI)", "Unemployment"}, labels(macro))

	gdp := macro[0]
	require.Len(t, gdp.Trend.Values, 20)
	assert.Equal(t, "2024-06-03", gdp.Trend.Dates[19])
	assert.Equal(t, fixedNow.AddDate(0, 0, -19*90).Format("2006-01-02"), gdp.Trend.Dates[0])
	for _, v := range gdp.Trend.Values {
		assert.InDelta(t, 3.1, v, 0.5)
	}

	cpi := macro[1]
	assert.Equal(t, "3.2%", cpi.Value)
	assert.Equal(t, -0.1, cpi.Change)
	assert.Equal(t, "Cooling", cpi.ChangeLabel)
	assert.Len(t, cpi.Trend.Values, 60)

	unemp := macro[2]
	assert.Equal(t, "3.9%", unemp.Value)
	for _, v := range unemp.Trend.Values {
		assert.InDelta(t, 3.9, v, 0.2)
	}
}

func TestMacroDataWithoutProvider(t *testing.T) {
	g := NewGenerator(nil).WithClock(func() time.Time { return fixedNow }).WithSeed(9)
	a := g.MacroData(context.Background(), "JP", nil)
	b := g.MacroData(context.Background(), "JP", nil)

	assert.Equal(t, []string{"GDP Growth", "Inflation (CPI)", "Unemployment"}, labels(a))
	assert.Equal(t, a, b)
}

func TestSummarizeAttachesMacroData(t *testing.T) {
	g := NewGenerator(newFakeMarket()).WithClock(func() time.Time { return fixedNow }).WithSeed(1)
	s := g.Summarize(context.Background(), mixedBatch(), "US")

	assert.Equal(t, 8.0, s.EcoScore)
	assert.Len(t, s.MacroData, 6)
	gdp := s.MacroData[2]
	require.NotEmpty(t, gdp.Details.RelatedNews)
	assert.Equal(t, "Exports boost GDP growth", gdp.Details.RelatedNews[0].Title)
}

func TestFormatThousands(t *testing.T) {
	tests := map[float64]string{
		0:         "0",
		999:       "999",
		1000:      "1,000",
		18100.4:   "18,100",
		1234567.6: "1,234,568",
		-1234.6:   "-1,235",
	}
	for in, want := range tests {
		assert.Equal(t, want, formatThousands(in), "%v", in)
	}
}
