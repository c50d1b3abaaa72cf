package classify

import (
	"testing"

	"github.com/johannkk1/MacroCharts/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifyCategories(t *testing.T) {
	c := New(NewRand(1))

	cases := []struct {
		name     string
		title    string
		category types.Category
	}{
		{"no keywords", "Museum opens doors", types.CategoryGeneral},
		{"economy beats finance on tie", "Tariff talks weigh on bonds", types.CategoryEconomy},
		{"finance beats politics on tie", "Senate probes bitcoin", types.CategoryFinance},
		{"clear politics", "Election protest fears deepen", types.CategoryPolitics},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.category, c.Classify(tc.title).Category)
		})
	}
}

func TestClassifySentiment(t *testing.T) {
	c := New(NewRand(2))

	cases := []struct {
		title     string
		sentiment types.Sentiment
		score     int
	}{
		{"Stocks rally to record", types.SentimentPositive, 1},
		{"Shares plunge on weak outlook", types.SentimentNegative, -1},
		{"Gains offset by losses", types.SentimentNeutral, 0},
	}

	for _, tc := range cases {
		t.Run(tc.title, func(t *testing.T) {
			res := c.Classify(tc.title)
			assert.Equal(t, tc.sentiment, res.Sentiment)
			assert.Equal(t, tc.score, res.SentimentScore)
		})
	}
}

func TestClassifyEmptyTitle(t *testing.T) {
	res := New(NewRand(3)).Classify("")
	assert.Equal(t, Result{Category: types.CategoryGeneral, Sentiment: types.SentimentNeutral}, res)
}

func TestClassifyImpactBounds(t *testing.T) {
	titles := []string{
		"Museum opens doors",
		"Stocks rally to record",
		"Fed rate cut fuels stock market rally as inflation cools growth",
	}
	for seed := uint64(0); seed < 200; seed++ {
		c := New(NewRand(seed))
		for _, title := range titles {
			res := c.Classify(title)
			require.GreaterOrEqual(t, res.Impact, 3, title)
			require.LessOrEqual(t, res.Impact, 10, title)
		}
	}
}

func TestClassifyImpactWithoutKeywordsIsLow(t *testing.T) {
	for seed := uint64(0); seed < 100; seed++ {
		res := New(NewRand(seed)).Classify("Museum opens doors")
		assert.Contains(t, []int{3, 4}, res.Impact)
	}
}

func TestClassifyImpactSaturates(t *testing.T) {
	res := New(NewRand(4)).Classify("Fed rate cut fuels stock market rally as inflation cools growth")
	assert.Equal(t, 10, res.Impact)
}

func TestClassifyIsDeterministicForSeed(t *testing.T) {
	a := New(NewRand(42))
	b := New(NewRand(42))
	for _, title := range []string{"Museum opens doors", "Stocks rally to record", "Gains offset by losses"} {
		assert.Equal(t, a.Classify(title), b.Classify(title))
	}
}

func TestAffectedAssets(t *testing.T) {
	cases := []struct {
		name     string
		title    string
		category types.Category
		want     []string
	}{
		{"keyword order", "Oil and gold rally", types.CategoryFinance, []string{"CL=F", "GC=F"}},
		{"unique tickers", "Nvidia chip ai demand", types.CategoryTechnology, []string{"NVDA"}},
		{"capped at three", "Oil gold bitcoin apple", types.CategoryFinance, []string{"CL=F", "GC=F", "BTC-USD"}},
		{"technology default", "Museum opens doors", types.CategoryTechnology, []string{"^IXIC", "XLK"}},
		{"general default", "Museum opens doors", types.CategoryGeneral, []string{"^GSPC", "^DJI"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, AffectedAssets(tc.title, tc.category))
		})
	}
}

func TestAnalyzeBundle(t *testing.T) {
	c := New(NewRand(7))
	res := Result{Category: types.CategoryTechnology, Sentiment: types.SentimentPositive, Impact: 9, SentimentScore: 1}

	bundle := c.Analyze("Chip stocks soar", "", res)

	assert.Contains(t, bundle.MarketImpact, "significant shift in the technology landscape")
	assert.Contains(t, bundle.MarketImpact, "re-rating of growth stocks")
	assert.Contains(t, bundle.InvestorSentiment, "buoyed")
	require.Len(t, bundle.ChainReaction, 4)
	assert.Equal(t, "Tech Catalyst", bundle.ChainReaction[0].Step)

	lb := bundle.HistoricalLookback
	assert.Equal(t, "Nasdaq 100", lb.Asset)
	assert.Len(t, lb.Labels, 6)
	require.Len(t, lb.Data, 6)
	assert.Equal(t, 0.0, lb.Data[0])

	assert.Equal(t, []string{"NVDA"}, bundle.AffectedAssets)
}

func TestSocialSentimentStaysInRange(t *testing.T) {
	for seed := uint64(0); seed < 100; seed++ {
		c := New(NewRand(seed))
		for _, score := range []int{-1, 0, 1} {
			s := c.socialSentiment(score)
			assert.GreaterOrEqual(t, s.Bullish, 5)
			assert.LessOrEqual(t, s.Bullish, 90)
			assert.GreaterOrEqual(t, s.Bearish, 5)
			assert.LessOrEqual(t, s.Bearish, 90)
			assert.Equal(t, 100, s.Bullish+s.Bearish+s.Neutral)
		}
	}
}

func TestImpactTextBands(t *testing.T) {
	assert.Contains(t, impactText(types.CategoryEconomy, 8), "Central bank policy expectations")
	assert.Contains(t, impactText(types.CategoryFinance, 6), "noteworthy development for finance watchers")
	assert.Contains(t, impactText(types.CategoryGeneral, 3), "muted")
}

func TestKeywordTablesAreCopies(t *testing.T) {
	cats := Categories()
	require.Len(t, cats, 5)
	assert.Equal(t, types.CategoryEconomy, cats[0].Category)

	cats[0], cats[1] = cats[1], cats[0]
	cats[1].Keywords[0] = "changed"
	bull := BullishWords()
	bull[0] = "changed"
	BearishWords()[0] = "museum"

	c := New(NewRand(1))
	assert.Equal(t, types.CategoryEconomy, c.Classify("Tariff talks weigh on bonds").Category)
	assert.Equal(t, types.SentimentPositive, c.Classify("Stocks surge").Sentiment)
	assert.Equal(t, types.SentimentNeutral, c.Classify("Museum opens doors").Sentiment)

	assert.Equal(t, "inflation", Categories()[0].Keywords[0])
	assert.Equal(t, "surge", BullishWords()[0])
	assert.Equal(t, "plunge", BearishWords()[0])
}
