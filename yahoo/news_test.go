package yahoo

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func searchServer(t *testing.T, bodies map[string]string) (*httptest.Server, *[]string) {
	t.Helper()
	var mu sync.Mutex
	var asked []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		mu.Lock()
		asked = append(asked, q.Get("q"))
		mu.Unlock()
		if q.Get("quotesCount") != "0" || q.Get("newsCount") != "3" {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		body, ok := bodies[q.Get("q")]
		if !ok {
			w.WriteHeader(http.StatusTooManyRequests)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv, &asked
}

func newTestSource(srv *httptest.Server) *NewsSource {
	return NewNewsSource(
		WithSearchURL(srv.URL),
		WithHTTPClient(srv.Client()),
		WithNewsCount(3),
		WithRateLimit(0),
	)
}

func TestFetchMapsBothPayloadShapes(t *testing.T) {
	srv, asked := searchServer(t, map[string]string{
		"^GDAXI": `{"news":[
			{"uuid":"u1","title":"DAX hits record","publisher":"Handelsblatt","link":"https://hb.example/dax","providerPublishTime":1717405200},
			{"uuid":"u2","title":"","publisher":"x"},
			{"uuid":"u3","title":"Bund yields ease"}
		]}`,
		"SIE.DE": `{"news":[{"content":{"id":"c1","title":"Siemens lifts outlook","summary":"Orders beat.",
			"pubDate":"2024-06-03T08:30:00Z","canonicalUrl":{"url":"https://news.example/siemens"},
			"provider":{"displayName":"Reuters"}}}]}`,
	})

	items, err := newTestSource(srv).Fetch(context.Background(), "DE")
	require.NoError(t, err)
	assert.Equal(t, CountryTickers["DE"], *asked)
	require.Len(t, items, 3)

	assert.Equal(t, "DAX hits record", items[0].Title)
	assert.Equal(t, "Handelsblatt", items[0].Publisher)
	assert.Equal(t, "https://hb.example/dax", items[0].Link)
	assert.Equal(t, time.Unix(1717405200, 0).UTC(), items[0].PublishedAt)

	assert.Equal(t, "Bund yields ease", items[1].Title)
	assert.Equal(t, "Yahoo Finance", items[1].Publisher)
	assert.Equal(t, "https://finance.yahoo.com/quote/^GDAXI", items[1].Link)
	assert.True(t, items[1].PublishedAt.IsZero())
	assert.True(t, items[1].DateMissing)
	assert.False(t, items[0].DateMissing)
	assert.False(t, items[2].DateMissing)

	assert.Equal(t, "c1", items[2].ID)
	assert.Equal(t, "Siemens lifts outlook", items[2].Title)
	assert.Equal(t, "Orders beat.", items[2].Summary)
	assert.Equal(t, "Reuters", items[2].Publisher)
	assert.Equal(t, "https://news.example/siemens", items[2].Link)
	assert.Equal(t, time.Date(2024, 6, 3, 8, 30, 0, 0, time.UTC), items[2].PublishedAt)
}

func TestFetchFailsWhenEveryTickerFails(t *testing.T) {
	srv, _ := searchServer(t, nil)
	_, err := newTestSource(srv).Fetch(context.Background(), "JP")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "all 6 tickers failed for JP")
}

func TestUnknownCountryUsesGlobalTickers(t *testing.T) {
	srv, asked := searchServer(t, map[string]string{"GC=F": `{"news":[{"title":"Gold steadies"}]}`})

	items, err := newTestSource(srv).Fetch(context.Background(), "BR")
	require.NoError(t, err)
	assert.Equal(t, CountryTickers["Global"], *asked)
	require.Len(t, items, 1)
	assert.Equal(t, "https://finance.yahoo.com/quote/GC=F", items[0].Link)
}

func TestFetchSeparatesMissingFromBadDates(t *testing.T) {
	srv, _ := searchServer(t, map[string]string{"GC=F": `{"news":[
		{"content":{"title":"Gold undated"}},
		{"content":{"title":"Gold garbled","pubDate":"yesterday-ish"}}
	]}`})

	items, err := newTestSource(srv).Fetch(context.Background(), "Global")
	require.NoError(t, err)
	require.Len(t, items, 2)

	assert.True(t, items[0].DateMissing)
	assert.False(t, items[1].DateMissing)
	assert.True(t, items[1].PublishedAt.IsZero())
}
