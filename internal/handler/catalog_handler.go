package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/invopt/inventory_api/internal/models"
	"github.com/invopt/inventory_api/internal/store"
	"github.com/invopt/inventory_api/internal/utils"
)

// CatalogHandler serves product catalog lookups.
type CatalogHandler struct {
	store store.RecordStore
}

// NewCatalogHandler constructs a CatalogHandler.
func NewCatalogHandler(s store.RecordStore) *CatalogHandler {
	return &CatalogHandler{store: s}
}

// GetProducts returns the catalog, optionally restricted to an exact
// category match.
func (h *CatalogHandler) GetProducts(c *gin.Context) {
	products, err := h.store.Products(c.Request.Context(), c.Query("category"))
	if err != nil {
		utils.Error(c, 500, "Error fetching products: "+err.Error())
		return
	}
	if products == nil {
		products = []models.Product{}
	}

	c.JSON(200, gin.H{
		"products": products,
		"count":    len(products),
	})
}

// GetCategories returns the distinct category values of the catalog.
func (h *CatalogHandler) GetCategories(c *gin.Context) {
	categories, err := h.store.DistinctCategories(c.Request.Context())
	if err != nil {
		utils.Error(c, 500, "Error fetching categories: "+err.Error())
		return
	}
	if categories == nil {
		categories = []string{}
	}

	c.JSON(200, gin.H{"categories": categories})
}
