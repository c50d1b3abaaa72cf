package types

// CountrySummary rolls a batch of classified items up into a short report.
type CountrySummary struct {
	EcoScore        float64          `json:"eco_score"`
	PolScore        float64          `json:"pol_score"`
	MarketSentiment string           `json:"market_sentiment"`
	SentimentScore  float64          `json:"sentiment_score"`
	TopTopics       []string         `json:"top_topics"`
	Verdict         string           `json:"verdict"`
	ArticleCount    int              `json:"article_count"`
	MacroData       []MacroIndicator `json:"macro_data"`
	TopNews         []NewsItem       `json:"top_news"`
}

// Series is a dated sequence of values, oldest first.
type Series struct {
	Dates  []string  `json:"dates"`
	Values []float64 `json:"values"`
}

// IndicatorDetails is the explanatory text shipped with a macro indicator.
type IndicatorDetails struct {
	StructuralAnalysis string     `json:"structural_analysis"`
	LargerTrend        string     `json:"larger_trend"`
	Relevance          string     `json:"relevance"`
	KeyDrivers         []string   `json:"key_drivers"`
	RelatedNews        []NewsItem `json:"related_news"`
}

// MacroIndicator is one market or economic reading shown next to a summary.
type MacroIndicator struct {
	Label       string           `json:"label"`
	Value       string           `json:"value"`
	Change      float64          `json:"change"`
	ChangeLabel string           `json:"change_label,omitempty"`
	Trend       Series           `json:"trend"`
	Frequency   string           `json:"frequency"`
	Format      string           `json:"format"`
	Inverse     bool             `json:"inverse"`
	Details     IndicatorDetails `json:"details"`
}

// Bar is one daily OHLCV observation.
type Bar struct {
	Date   string  `json:"date"`
	Open   float64 `json:"open"`
	High   float64 `json:"high"`
	Low    float64 `json:"low"`
	Close  float64 `json:"close"`
	Volume float64 `json:"volume"`
}

// Reading is the latest value of an economic indicator.
type Reading struct {
	Name        string  `json:"name"`
	Label       string  `json:"label"`
	Value       float64 `json:"value"`
	Prior       float64 `json:"prior"`
	Change      float64 `json:"change"`
	ChangePct   float64 `json:"change_pct"`
	Unit        string  `json:"unit"`
	Ticker      string  `json:"ticker"`
	Source      string  `json:"source"`
	Description string  `json:"description,omitempty"`
	Impact      string  `json:"impact,omitempty"`
	AsOf        string  `json:"as_of,omitempty"`
}
