package api

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/johannkk1/MacroCharts/types"
)

// NewsService is the pipeline entry point; orchestrator.Service implements it.
type NewsService interface {
	GetNews(ctx context.Context, country string) types.NewsResponse
}

// MarketData serves the indicator catalogue; marketdata.Provider implements it.
type MarketData interface {
	Indicator(ctx context.Context, name string) (types.Reading, error)
	EconomicData(ctx context.Context) types.EconomicData
}

// SnapshotStore reads archived raw snapshots.
type SnapshotStore interface {
	Latest(ctx context.Context, country string) (types.Snapshot, error)
}

// RefreshRequester queues a background recompute for a country.
type RefreshRequester interface {
	RequestRefresh(ctx context.Context, req types.RefreshRequest) error
}

// Deps are the services the routes call into. News and Market are
// required; the rest switch their routes off when nil.
type Deps struct {
	News        NewsService
	Market      MarketData
	Snapshots   SnapshotStore
	Refresh     RefreshRequester
	NewsTimeout time.Duration
}

// NewRouter constructs a Gin engine with registered routes.
func NewRouter(d Deps) *gin.Engine {
	r := gin.New()
	// Minimal middleware: recovery; logger optional to reduce verbosity
	r.Use(gin.Recovery())

	RegisterHealthRoutes(r)
	RegisterNewsRoutes(r, d)
	RegisterEconomicRoutes(r, d.Market)
	RegisterClassifyRoutes(r)
	RegisterSnapshotRoutes(r, d.Snapshots)
	return r
}
