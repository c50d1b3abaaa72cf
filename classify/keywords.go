package classify

import "github.com/johannkk1/MacroCharts/types"

// CategoryKeywords pairs a category with the substrings that vote for it.
type CategoryKeywords struct {
	Category types.Category
	Keywords []string
}

// categoryTable is scanned in order; on a tie the earlier entry wins.
var categoryTable = []CategoryKeywords{
	{types.CategoryEconomy, []string{
		"inflation", "gdp", "rate", "fed", "central bank", "jobs", "unemployment", "cpi", "ppi",
		"economy", "recession", "growth", "debt", "deficit", "spending", "tax", "policy", "trade",
		"tariff", "export", "import",
	}},
	{types.CategoryFinance, []string{
		"stock", "market", "bond", "yield", "currency", "forex", "dollar", "euro", "yen", "yuan",
		"gold", "oil", "crypto", "bitcoin", "earnings", "revenue", "profit", "ipo", "merger",
		"acquisition", "dividend", "buyback",
	}},
	{types.CategoryPolitics, []string{
		"election", "vote", "president", "minister", "parliament", "congress", "senate", "law",
		"bill", "regulation", "sanction", "geopolitics", "war", "conflict", "treaty", "agreement",
		"diplomacy", "campaign", "scandal", "protest",
	}},
	{types.CategoryTechnology, []string{
		"tech", "ai", "artificial intelligence", "chip", "semiconductor", "software", "cloud",
		"cyber", "internet", "mobile", "app", "startup", "venture", "innovation", "robotics",
		"automation", "data", "privacy",
	}},
	{types.CategoryEnergy, []string{
		"energy", "oil", "gas", "renewable", "solar", "wind", "nuclear", "power", "grid", "utility",
		"climate", "carbon", "emission", "green", "battery", "ev", "electric vehicle",
	}},
}

// bullishWords push a headline towards Positive.
var bullishWords = []string{
	"surge", "jump", "rally", "soar", "gain", "record", "high", "beat", "exceed", "strong",
	"growth", "positive", "optimism", "bull", "buy", "upgrade", "profit",
}

// bearishWords push a headline towards Negative.
var bearishWords = []string{
	"plunge", "drop", "fall", "sink", "loss", "low", "miss", "weak", "decline", "negative",
	"pessimism", "bear", "sell", "downgrade", "crash", "crisis", "recession", "inflation",
	"fear", "panic",
}

// Categories returns a copy of the category table in tie-break order.
func Categories() []CategoryKeywords {
	out := make([]CategoryKeywords, len(categoryTable))
	for i, c := range categoryTable {
		out[i] = CategoryKeywords{Category: c.Category, Keywords: append([]string(nil), c.Keywords...)}
	}
	return out
}

// BullishWords returns a copy of the positive sentiment words.
func BullishWords() []string {
	return append([]string(nil), bullishWords...)
}

// BearishWords returns a copy of the negative sentiment words.
func BearishWords() []string {
	return append([]string(nil), bearishWords...)
}

type assetKeyword struct {
	keyword string
	ticker  string
}

// assetMap is scanned in order when naming affected tickers.
var assetMap = []assetKeyword{
	{"oil", "CL=F"}, {"crude", "CL=F"}, {"energy", "XLE"},
	{"gold", "GC=F"}, {"silver", "SI=F"},
	{"bitcoin", "BTC-USD"}, {"crypto", "ETH-USD"},
	{"apple", "AAPL"}, {"iphone", "AAPL"},
	{"microsoft", "MSFT"}, {"windows", "MSFT"}, {"azure", "MSFT"},
	{"google", "GOOGL"}, {"alphabet", "GOOGL"},
	{"amazon", "AMZN"},
	{"tesla", "TSLA"}, {"ev", "TSLA"},
	{"nvidia", "NVDA"}, {"chip", "NVDA"}, {"ai", "NVDA"},
	{"bank", "XLF"}, {"jpmorgan", "JPM"},
	{"fed", "^TNX"}, {"rate", "^TNX"}, {"yield", "^TNX"},
	{"inflation", "^TNX"}, {"cpi", "^TNX"},
}

var defaultAssets = map[types.Category][]string{
	types.CategoryTechnology: {"^IXIC", "XLK"},
	types.CategoryEnergy:     {"CL=F", "XLE"},
	types.CategoryFinance:    {"^GSPC", "XLF"},
}

var fallbackAssets = []string{"^GSPC", "^DJI"}
