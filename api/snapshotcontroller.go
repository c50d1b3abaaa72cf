package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/johannkk1/MacroCharts/common"
)

// RegisterSnapshotRoutes exposes the latest archived raw snapshot per country.
// Nothing is registered when no store is configured.
func RegisterSnapshotRoutes(r *gin.Engine, store SnapshotStore) {
	if store == nil {
		return
	}
	r.GET("/api/snapshots/:country/latest", func(c *gin.Context) {
		country, ok := countryParam(c)
		if !ok {
			return
		}
		snap, err := store.Latest(c.Request.Context(), country)
		if err != nil {
			if errors.Is(err, common.ErrNoSnapshot) {
				c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
				return
			}
			c.JSON(http.StatusBadGateway, gin.H{"error": "failed to read archive: " + err.Error()})
			return
		}
		c.JSON(http.StatusOK, snap)
	})
}
