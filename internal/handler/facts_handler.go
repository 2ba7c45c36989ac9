package handler

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/invopt/inventory_api/internal/export"
	"github.com/invopt/inventory_api/internal/facts"
	"github.com/invopt/inventory_api/internal/utils"
)

// Default date window served when the caller supplies no range.
const (
	DefaultStartDate = "2024-01-01"
	DefaultEndDate   = "2024-03-31"
)

const factsFilename = "inventory_daily_facts.csv"

// FactsHandler serves the denormalized daily facts export.
type FactsHandler struct {
	joiner *facts.Joiner
}

// NewFactsHandler constructs a FactsHandler.
func NewFactsHandler(joiner *facts.Joiner) *FactsHandler {
	return &FactsHandler{joiner: joiner}
}

// GetDailyFactsCSV returns joined daily facts as a CSV attachment. Matching
// zero rows yields 404; any store failure yields 500.
func (h *FactsHandler) GetDailyFactsCSV(c *gin.Context) {
	q := facts.FactQuery{
		StartDate: queryDefault(c, "start_date", DefaultStartDate),
		EndDate:   queryDefault(c, "end_date", DefaultEndDate),
		Category:  c.Query("category"),
	}
	// A present but unparsable limit is ignored; limit=0 is honored and
	// truncates to zero rows.
	if v := c.Query("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			q.Limit = &n
		}
	}

	rows, err := h.joiner.DailyFacts(c.Request.Context(), q)
	if err != nil {
		if errors.Is(err, utils.ErrNoData) {
			utils.Error(c, 404, "No data found for the specified criteria")
			return
		}
		utils.Error(c, 500, "Error generating CSV: "+err.Error())
		return
	}

	body, err := export.FactsCSV(rows)
	if err != nil {
		utils.Error(c, 500, "Error generating CSV: "+err.Error())
		return
	}

	c.Header("Content-Disposition", "attachment; filename="+factsFilename)
	c.Data(200, "text/csv", body)
}

func queryDefault(c *gin.Context, key, def string) string {
	if v := c.Query(key); v != "" {
		return v
	}
	return def
}
