package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/johannkk1/MacroCharts/classify"
	"github.com/johannkk1/MacroCharts/deduplication"
	"github.com/johannkk1/MacroCharts/types"
)

// RegisterClassifyRoutes registers the single-headline classification endpoint.
func RegisterClassifyRoutes(r *gin.Engine) {
	r.POST("/api/classify", handleClassify)
}

// ClassifyRequest is one headline to label.
type ClassifyRequest struct {
	Title     string `json:"title" binding:"required"`
	Summary   string `json:"summary"`
	Publisher string `json:"publisher"`
	Link      string `json:"link"`
	// Seed fixes the impact jitter; zero draws a fresh one.
	Seed uint64 `json:"seed"`
}

// handleClassify returns the headline as a fully built NewsItem, analysis included.
func handleClassify(c *gin.Context) {
	var req ClassifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	seed := req.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	agg := deduplication.NewAggregator(classify.New(classify.NewRand(seed)), time.Now)
	item := agg.Build(types.RawNewsItem{
		Title:     req.Title,
		Summary:   req.Summary,
		Publisher: req.Publisher,
		Link:      req.Link,
	}, types.SourceRSS)

	c.JSON(http.StatusOK, item)
}
