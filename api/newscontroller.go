package api

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/johannkk1/MacroCharts/types"
)

type newsController struct {
	news    NewsService
	refresh RefreshRequester
	timeout time.Duration
}

// RegisterNewsRoutes registers the per-country news endpoints.
func RegisterNewsRoutes(r *gin.Engine, d Deps) {
	nc := &newsController{news: d.News, refresh: d.Refresh, timeout: d.NewsTimeout}
	if nc.timeout <= 0 {
		nc.timeout = 45 * time.Second
	}

	g := r.Group("/api/news")
	g.GET("/:country", nc.handleGetNews)
	g.POST("/:country/refresh", nc.handleRefresh)
}

func countryParam(c *gin.Context) (string, bool) {
	country := strings.TrimSpace(c.Param("country"))
	if country == "" || len(country) > 16 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid country code"})
		return "", false
	}
	return country, true
}

// handleGetNews runs the pipeline under the request deadline. The pipeline
// degrades instead of failing, so this always answers 200.
func (nc *newsController) handleGetNews(c *gin.Context) {
	country, ok := countryParam(c)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), nc.timeout)
	defer cancel()

	c.JSON(http.StatusOK, nc.news.GetNews(ctx, country))
}

// handleRefresh queues a recompute and returns 202 immediately. With no
// queue configured the run happens in-process.
func (nc *newsController) handleRefresh(c *gin.Context) {
	country, ok := countryParam(c)
	if !ok {
		return
	}

	if nc.refresh != nil {
		req := types.RefreshRequest{Country: country, RequestedBy: c.ClientIP()}
		if err := nc.refresh.RequestRefresh(c.Request.Context(), req); err != nil {
			log.Error().Err(err).Str("country", country).Msg("❌ refresh request failed")
			c.JSON(http.StatusBadGateway, gin.H{"error": "failed to queue refresh: " + err.Error()})
			return
		}
		c.JSON(http.StatusAccepted, gin.H{"status": "refresh queued", "country": country})
		return
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), nc.timeout)
		defer cancel()
		_ = nc.news.GetNews(ctx, country)
	}()
	c.JSON(http.StatusAccepted, gin.H{"status": "refresh started", "country": country})
}
