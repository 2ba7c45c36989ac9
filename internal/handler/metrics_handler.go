package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/invopt/inventory_api/internal/facts"
	"github.com/invopt/inventory_api/internal/utils"
)

// MetricsHandler serves the KPI aggregation endpoint.
type MetricsHandler struct {
	calculator *facts.Calculator
}

// NewMetricsHandler constructs a MetricsHandler.
func NewMetricsHandler(calculator *facts.Calculator) *MetricsHandler {
	return &MetricsHandler{calculator: calculator}
}

// GetKPIs computes fill-rate and stockout-rate metrics over the requested
// date window.
func (h *MetricsHandler) GetKPIs(c *gin.Context) {
	startDate := queryDefault(c, "start_date", DefaultStartDate)
	endDate := queryDefault(c, "end_date", DefaultEndDate)

	report, err := h.calculator.KPIs(c.Request.Context(), startDate, endDate)
	if err != nil {
		utils.Error(c, 500, "Error calculating KPIs: "+err.Error())
		return
	}

	c.JSON(200, report)
}
