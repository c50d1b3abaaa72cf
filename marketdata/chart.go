package marketdata

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/johannkk1/MacroCharts/cache"
	"github.com/johannkk1/MacroCharts/config"
	"github.com/johannkk1/MacroCharts/types"
)

type chartResponse struct {
	Chart struct {
		Result []struct {
			Timestamp  []int64 `json:"timestamp"`
			Indicators struct {
				Quote []struct {
					Open   []*float64 `json:"open"`
					High   []*float64 `json:"high"`
					Low    []*float64 `json:"low"`
					Close  []*float64 `json:"close"`
					Volume []*float64 `json:"volume"`
				} `json:"quote"`
			} `json:"indicators"`
		} `json:"result"`
		Error *struct {
			Code        string `json:"code"`
			Description string `json:"description"`
		} `json:"error"`
	} `json:"chart"`
}

// PriceSeries returns daily bars for symbol over period (a Yahoo range such
// as "1mo", "1y" or "max"), oldest first. Bars without a close are skipped.
func (p *Provider) PriceSeries(ctx context.Context, symbol, period string) ([]types.Bar, error) {
	key := "chart:" + symbol + ":" + period
	return cache.GetOrFetch(ctx, p.cache, key, config.TTLPriceSeries, func(ctx context.Context) ([]types.Bar, error) {
		return p.fetchChart(ctx, symbol, period)
	})
}

func (p *Provider) fetchChart(ctx context.Context, symbol, period string) ([]types.Bar, error) {
	params := url.Values{}
	params.Set("range", period)
	params.Set("interval", "1d")

	var resp chartResponse
	if err := p.getJSON(ctx, p.chartURL+"/"+url.PathEscape(symbol), params, nil, &resp); err != nil {
		return nil, fmt.Errorf("chart %s: %w", symbol, err)
	}
	if resp.Chart.Error != nil {
		return nil, fmt.Errorf("chart %s: %s: %w", symbol, resp.Chart.Error.Description, ErrNoData)
	}
	if len(resp.Chart.Result) == 0 || len(resp.Chart.Result[0].Indicators.Quote) == 0 {
		return nil, fmt.Errorf("chart %s: %w", symbol, ErrNoData)
	}

	r := resp.Chart.Result[0]
	q := r.Indicators.Quote[0]
	bars := make([]types.Bar, 0, len(r.Timestamp))
	for i, ts := range r.Timestamp {
		c := at(q.Close, i)
		if c == nil {
			continue
		}
		bars = append(bars, types.Bar{
			Date:   time.Unix(ts, 0).UTC().Format("2006-01-02"),
			Open:   deref(at(q.Open, i)),
			High:   deref(at(q.High, i)),
			Low:    deref(at(q.Low, i)),
			Close:  *c,
			Volume: deref(at(q.Volume, i)),
		})
	}
	if len(bars) == 0 {
		return nil, fmt.Errorf("chart %s: %w", symbol, ErrNoData)
	}
	return bars, nil
}

func at(vs []*float64, i int) *float64 {
	if i < len(vs) {
		return vs[i]
	}
	return nil
}

func deref(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}
