package marketdata

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"sort"
	"time"

	"github.com/johannkk1/MacroCharts/types"
)

const ninjasCountry = "United States"

type inflationRow struct {
	Country       string  `json:"country"`
	Period        string  `json:"period"`
	MonthlyRate   float64 `json:"monthly_rate_pct"`
	YearlyRatePct float64 `json:"yearly_rate_pct"`
}

type interestRateResponse struct {
	CentralBankRates []struct {
		CentralBank string  `json:"central_bank"`
		RatePct     float64 `json:"rate_pct"`
		LastUpdated string  `json:"last_updated"`
	} `json:"central_bank_rates"`
}

type commodityResponse struct {
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

func (p *Provider) ninjas(ctx context.Context, path string, params url.Values, out any) error {
	if p.ninjasKey == "" {
		return errNoKey
	}
	h := http.Header{}
	h.Set("X-Api-Key", p.ninjasKey)
	if err := p.getJSON(ctx, p.ninjasURL+path, params, h, out); err != nil {
		return fmt.Errorf("api ninjas %s: %w", path, err)
	}
	return nil
}

// inflation returns yearly CPI rates, latest first.
func (p *Provider) inflation(ctx context.Context) ([]inflationRow, error) {
	var rows []inflationRow
	if err := p.ninjas(ctx, "/inflation", url.Values{"country": {ninjasCountry}}, &rows); err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("api ninjas inflation: %w", ErrNoData)
	}
	return rows, nil
}

func (p *Provider) inflationHistory(ctx context.Context) (types.Series, error) {
	rows, err := p.inflation(ctx)
	if err != nil {
		return types.Series{}, err
	}
	type point struct {
		t time.Time
		v float64
	}
	var pts []point
	for _, r := range rows {
		t, err := time.Parse("2006-01", r.Period)
		if err != nil {
			continue
		}
		pts = append(pts, point{t, r.YearlyRatePct})
	}
	if len(pts) == 0 {
		return types.Series{}, fmt.Errorf("api ninjas inflation history: %w", ErrNoData)
	}
	sort.SliceStable(pts, func(i, j int) bool { return pts[i].t.Before(pts[j].t) })

	s := types.Series{Dates: make([]string, len(pts)), Values: make([]float64, len(pts))}
	for i, pt := range pts {
		s.Dates[i] = pt.t.Format("2006-01-02")
		s.Values[i] = pt.v
	}
	return s, nil
}

func (p *Provider) centralBankRate(ctx context.Context) (float64, error) {
	var resp interestRateResponse
	if err := p.ninjas(ctx, "/interestrate", url.Values{"name": {ninjasCountry}}, &resp); err != nil {
		return 0, err
	}
	if len(resp.CentralBankRates) == 0 {
		return 0, fmt.Errorf("api ninjas interest rate: %w", ErrNoData)
	}
	return resp.CentralBankRates[0].RatePct, nil
}

func (p *Provider) commodityPrice(ctx context.Context, name string) (float64, error) {
	var resp commodityResponse
	if err := p.ninjas(ctx, "/commodityprice", url.Values{"name": {name}}, &resp); err != nil {
		return 0, err
	}
	if resp.Price == 0 {
		return 0, fmt.Errorf("api ninjas commodity %s: %w", name, ErrNoData)
	}
	return resp.Price, nil
}
