package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/johannkk1/MacroCharts/marketdata"
)

type economicController struct {
	market MarketData
}

// RegisterEconomicRoutes registers the indicator endpoints.
func RegisterEconomicRoutes(r *gin.Engine, market MarketData) {
	ec := &economicController{market: market}
	r.GET("/api/economic-data", ec.handleEconomicData)
	r.GET("/api/indicators/:name", ec.handleIndicator)
}

func (ec *economicController) handleEconomicData(c *gin.Context) {
	c.JSON(http.StatusOK, ec.market.EconomicData(c.Request.Context()))
}

func (ec *economicController) handleIndicator(c *gin.Context) {
	name := c.Param("name")
	reading, err := ec.market.Indicator(c.Request.Context(), name)
	if err != nil {
		if errors.Is(err, marketdata.ErrUnknownIndicator) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error(), "available": marketdata.Names()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, reading)
}
