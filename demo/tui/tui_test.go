package tui

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/johannkk1/MacroCharts/types"
)

func sampleResponse() *types.NewsResponse {
	return &types.NewsResponse{
		News: []types.NewsItem{
			{Title: "Stocks rally", Publisher: "Reuters", SentimentScore: 1},
			{Title: "Yields climb", Publisher: "FT", SentimentScore: -1},
		},
		Summary: types.CountrySummary{MarketSentiment: "Bullish", ArticleCount: 2, Verdict: "Markets lean positive."},
		Hexagon: types.HexagonScorecard{
			Center: types.Center{Label: "Macro Score", Score: 61.5, Regime: types.RegimeBullish},
			Hexagons: []types.Hexagon{
				{Label: "Monetary Policy", Dimension: types.DimensionMonetary, Score: 70},
			},
		},
	}
}

func TestNewsClient(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodGet && r.URL.Path == "/api/news/DE":
			_ = json.NewEncoder(w).Encode(sampleResponse())
		case r.Method == http.MethodPost && r.URL.Path == "/api/news/DE/refresh":
			w.WriteHeader(http.StatusAccepted)
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer srv.Close()

	c := NewNewsClient(srv.URL)
	resp, err := c.GetNews("DE")
	require.NoError(t, err)
	assert.Equal(t, types.RegimeBullish, resp.Hexagon.Center.Regime)
	require.NoError(t, c.Refresh("DE"))

	_, err = c.GetNews("XX")
	assert.ErrorContains(t, err, "server returned 404")
}

func TestUpdateLoadsAndRenders(t *testing.T) {
	m := NewModel("http://unused", []string{"US", "DE"})
	assert.True(t, m.Loading)

	next, _ := m.Update(NewsLoadedMsg{Country: "US", Response: sampleResponse()})
	m = next.(Model)
	assert.False(t, m.Loading)

	view := m.View()
	assert.Contains(t, view, "Macro Score 61.5")
	assert.Contains(t, view, "Bullish")
	assert.Contains(t, view, "Monetary Policy")
	assert.Contains(t, view, "Stocks rally")
	assert.Contains(t, view, "Loaded US: 2 headlines")
}

func TestUpdateIgnoresStaleCountry(t *testing.T) {
	m := NewModel("http://unused", []string{"US", "DE"})
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRight})
	m = next.(Model)
	assert.Equal(t, "DE", m.Country())
	assert.NotNil(t, cmd)

	next, _ = m.Update(NewsLoadedMsg{Country: "US", Response: sampleResponse()})
	m = next.(Model)
	assert.True(t, m.Loading)
	assert.Nil(t, m.Response)
}

func TestCountrySelectionWraps(t *testing.T) {
	m := NewModel("http://unused", []string{"US", "DE", "JP"})
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyLeft})
	assert.Equal(t, "JP", next.(Model).Country())
}

func TestUpdateShowsError(t *testing.T) {
	m := NewModel("http://unused", nil)
	next, _ := m.Update(NewsLoadedMsg{Country: "US", Err: errors.New("connection refused")})
	m = next.(Model)
	assert.Contains(t, m.View(), "connection refused")
}

func TestBar(t *testing.T) {
	assert.Equal(t, "█████░░░░░", Bar(50, 10))
	assert.Equal(t, "░░░░░░░░░░", Bar(-5, 10))
	assert.Equal(t, "██████████", Bar(130, 10))
}
