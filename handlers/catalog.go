package handlers

import (
	"net/http"
	"strconv"

	"habi/services/catalog"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// CatalogHandler exposes the services catalog endpoints.
type CatalogHandler struct {
	Svc    catalog.CatalogService
	Logger *zap.Logger
}

func NewCatalogHandler(svc catalog.CatalogService, logger *zap.Logger) *CatalogHandler {
	return &CatalogHandler{Svc: svc, Logger: logger}
}

// ListCategories handles GET /api/services/categories.
func (h *CatalogHandler) ListCategories(c *gin.Context) {
	c.JSON(http.StatusOK, h.Svc.ListCategories(c.Request.Context()))
}

// ProvidersByCategory handles GET /api/services/providers?category=&limit=.
func (h *CatalogHandler) ProvidersByCategory(c *gin.Context) {
	category := c.Query("category")
	if category == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing category", "message": "you must provide a category query parameter"})
		return
	}

	limit := 0
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid limit", "message": "limit must be a non-negative integer"})
			return
		}
		limit = parsed
	}

	c.JSON(http.StatusOK, h.Svc.ProvidersByCategory(c.Request.Context(), category, limit))
}

// SearchProviders handles GET /api/services/search?q=&location=.
func (h *CatalogHandler) SearchProviders(c *gin.Context) {
	term := c.Query("q")
	location := c.Query("location")
	c.JSON(http.StatusOK, h.Svc.SearchProviders(c.Request.Context(), term, location))
}
