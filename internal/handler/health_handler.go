package handler

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/invopt/inventory_api/internal/store"
	"github.com/invopt/inventory_api/internal/utils"
)

// ServiceName identifies this service in status responses.
const ServiceName = "Inventory Optimization API"

// HealthHandler provides the status and health endpoints.
type HealthHandler struct {
	store    store.RecordStore
	database string
}

// NewHealthHandler creates a new HealthHandler. database is reported in
// status payloads so consumers can tell which dataset they are reading.
func NewHealthHandler(s store.RecordStore, database string) *HealthHandler {
	return &HealthHandler{store: s, database: database}
}

// GetRoot responds with a lightweight service status.
func (h *HealthHandler) GetRoot(c *gin.Context) {
	c.JSON(200, gin.H{
		"status":    "healthy",
		"service":   ServiceName,
		"database":  h.database,
		"timestamp": time.Now().Format(time.RFC3339),
	})
}

// GetHealth pings the record store and reports per-collection document
// counts. Any store failure maps to a 500.
func (h *HealthHandler) GetHealth(c *gin.Context) {
	ctx := c.Request.Context()

	if err := h.store.Ping(ctx); err != nil {
		utils.Error(c, 500, "Database connection failed: "+err.Error())
		return
	}

	counts, err := h.store.CollectionCounts(ctx)
	if err != nil {
		utils.Error(c, 500, "Database connection failed: "+err.Error())
		return
	}

	c.JSON(200, gin.H{
		"status":      "healthy",
		"mongodb":     "connected",
		"database":    h.database,
		"collections": counts,
		"timestamp":   time.Now().Format(time.RFC3339),
	})
}
