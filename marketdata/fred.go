package marketdata

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"sort"
	"strconv"

	"github.com/rs/zerolog/log"

	"github.com/johannkk1/MacroCharts/cache"
	"github.com/johannkk1/MacroCharts/config"
	"github.com/johannkk1/MacroCharts/types"
)

var errNoKey = errors.New("api key not configured")

type observation struct {
	Date  string
	Value float64
}

type fredResponse struct {
	Observations []struct {
		Date  string `json:"date"`
		Value string `json:"value"`
	} `json:"observations"`
}

// seriesUnits requests a transformed series where the raw one is an index
// level rather than a rate.
var seriesUnits = map[string]string{
	"CPIAUCSL": "pc1",
}

// latest returns up to limit observations of seriesID, newest first. FRED's
// "." placeholders for missing values are dropped.
func (p *Provider) latest(ctx context.Context, seriesID string, limit int) ([]observation, error) {
	params := url.Values{}
	params.Set("sort_order", "desc")
	params.Set("limit", strconv.Itoa(limit))
	return p.observations(ctx, seriesID, params)
}

func (p *Provider) observations(ctx context.Context, seriesID string, params url.Values) ([]observation, error) {
	if p.fredKey == "" {
		return nil, errNoKey
	}
	params.Set("series_id", seriesID)
	params.Set("api_key", p.fredKey)
	params.Set("file_type", "json")

	var resp fredResponse
	if err := p.getJSON(ctx, p.fredURL, params, nil, &resp); err != nil {
		return nil, fmt.Errorf("fred %s: %w", seriesID, err)
	}

	out := make([]observation, 0, len(resp.Observations))
	for _, o := range resp.Observations {
		v, err := strconv.ParseFloat(o.Value, 64)
		if err != nil {
			continue
		}
		out = append(out, observation{Date: o.Date, Value: v})
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("fred %s: %w", seriesID, ErrNoData)
	}
	return out, nil
}

// History returns the full history of a FRED series, oldest first. CPI
// prefers API Ninjas; without upstream data a static approximation of the
// US series is returned.
func (p *Provider) History(ctx context.Context, seriesID string) (types.Series, error) {
	return cache.GetOrFetch(ctx, p.cache, "history:"+seriesID, config.TTLMonthlyMacro, func(ctx context.Context) (types.Series, error) {
		return p.fetchHistory(ctx, seriesID)
	})
}

func (p *Provider) fetchHistory(ctx context.Context, seriesID string) (types.Series, error) {
	if seriesID == "CPIAUCSL" && p.ninjasKey != "" {
		s, err := p.inflationHistory(ctx)
		if err == nil {
			return s, nil
		}
		log.Warn().Err(err).Msg("ninjas inflation history failed, trying fred")
	}

	if p.fredKey != "" {
		params := url.Values{}
		params.Set("observation_start", "1900-01-01")
		params.Set("observation_end", p.now().Format("2006-01-02"))
		if u, ok := seriesUnits[seriesID]; ok {
			params.Set("units", u)
		}
		obs, err := p.observations(ctx, seriesID, params)
		if err == nil {
			sort.SliceStable(obs, func(i, j int) bool { return obs[i].Date < obs[j].Date })
			s := types.Series{Dates: make([]string, len(obs)), Values: make([]float64, len(obs))}
			for i, o := range obs {
				s.Dates[i] = o.Date
				s.Values[i] = o.Value
			}
			return s, nil
		}
		log.Warn().Err(err).Str("series", seriesID).Msg("fred history failed, using static")
	}

	if s, ok := StaticHistory(seriesID, p.now()); ok {
		return s, nil
	}
	return types.Series{}, fmt.Errorf("history %s: %w", seriesID, ErrNoData)
}
