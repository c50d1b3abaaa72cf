package rssfeeds

import (
	"net/url"
	"strings"
)

// FeedConfig represents the configuration for a single RSS feed
type FeedConfig struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// GoogleNewsURL is the search feed template; %s is the encoded query.
const GoogleNewsURL = "https://news.google.com/rss/search?q=%s&hl=en-US&gl=US&ceid=US:en"

// CountryNames maps region codes to the names used in search queries.
var CountryNames = map[string]string{
	"US":     "United States",
	"DE":     "Germany",
	"UK":     "United Kingdom",
	"CN":     "China",
	"JP":     "Japan",
	"Global": "Global Economy",
}

// searchTopics are appended to the country name, one feed each.
var searchTopics = []string{
	"economy",
	"politics neutral",
	"financial market",
	"energy sector",
	"technology news",
}

// StaticFeeds are the per-country outlets fetched alongside search feeds.
var StaticFeeds = map[string][]FeedConfig{
	"US": {
		{Name: "MarketWatch", URL: "http://feeds.marketwatch.com/marketwatch/topstories/"},
		{Name: "CNBC Finance", URL: "https://search.cnbc.com/rs/search/combinedcms/view.xml?partnerId=wrss01&id=10000664"},
		{Name: "BBC Business", URL: "https://feeds.bbci.co.uk/news/business/rss.xml"},
		{Name: "Reuters Business", URL: "http://feeds.reuters.com/reuters/businessNews"},
	},
	"DE": {
		{Name: "tagesschau Wirtschaft", URL: "https://www.tagesschau.de/wirtschaft/index~rss2.xml"},
		{Name: "SPIEGEL Wirtschaft", URL: "https://www.spiegel.de/wirtschaft/index.rss"},
	},
	"UK": {
		{Name: "BBC Business", URL: "http://feeds.bbci.co.uk/news/business/rss.xml"},
		{Name: "Guardian Business", URL: "https://www.theguardian.com/uk/business/rss"},
	},
	"CN": {
		{Name: "China Daily Business", URL: "http://www.chinadaily.com.cn/rss/bizchina_rss.xml"},
	},
	"JP": {
		{Name: "NHK Business", URL: "https://www3.nhk.or.jp/rss/news/cat6.xml"},
	},
	"Global": {
		{Name: "Bloomberg Markets", URL: "https://feeds.bloomberg.com/markets/news.rss"},
		{Name: "Economist Finance", URL: "https://www.economist.com/finance-and-economics/rss.xml"},
	},
}

// CountryName returns the search name for a region code.
func CountryName(country string) string {
	if name, ok := CountryNames[country]; ok {
		return name
	}
	return CountryNames["Global"]
}

// GoogleNewsFeeds builds one search feed per topic for the country.
func GoogleNewsFeeds(countryName string) []FeedConfig {
	out := make([]FeedConfig, 0, len(searchTopics))
	for _, topic := range searchTopics {
		q := countryName + " " + topic
		out = append(out, FeedConfig{
			Name: "Google News: " + q,
			URL:  strings.Replace(GoogleNewsURL, "%s", url.QueryEscape(q), 1),
		})
	}
	return out
}

// FeedsFor lists search feeds then static feeds for country, without
// repeating a URL.
func FeedsFor(country string) []FeedConfig {
	all := append(GoogleNewsFeeds(CountryName(country)), StaticFeeds[country]...)
	seen := make(map[string]struct{}, len(all))
	out := all[:0]
	for _, f := range all {
		if _, dup := seen[f.URL]; dup {
			continue
		}
		seen[f.URL] = struct{}{}
		out = append(out, f)
	}
	return out
}
