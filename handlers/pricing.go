package handlers

import (
	"net/http"

	catalogRepo "photostudio/database/repository/catalog"
	"photostudio/models"
	"photostudio/services/pricing"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// PricingHandler serves the catalog selector: categories, packages, quotes.
type PricingHandler struct {
	Catalog catalogRepo.CatalogRepository
	Quotes  pricing.QuoteService
}

func NewPricingHandler(catalog catalogRepo.CatalogRepository, quotes pricing.QuoteService) *PricingHandler {
	return &PricingHandler{Catalog: catalog, Quotes: quotes}
}

// GetCategoriesHandler handles GET /pricing/categories.
func (h *PricingHandler) GetCategoriesHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"categories": h.Catalog.Categories()})
}

// GetPackagesHandler handles GET /pricing/categories/:id/packages.
func (h *PricingHandler) GetPackagesHandler(c *gin.Context) {
	categoryID := models.CategoryID(c.Param("id"))
	packages, err := h.Catalog.PackagesByCategory(categoryID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	category, _ := h.Catalog.GetCategory(categoryID)
	c.JSON(http.StatusOK, gin.H{
		"category": category,
		"packages": packages,
	})
}

// GetPackageHandler handles GET /pricing/packages/:id.
func (h *PricingHandler) GetPackageHandler(c *gin.Context) {
	pkg, err := h.Catalog.GetPackage(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, pkg)
}

// QuoteHandler handles POST /pricing/quote.
func (h *PricingHandler) QuoteHandler(c *gin.Context) {
	var req struct {
		PackageID    string              `json:"packageId" binding:"required"`
		AddOns       []string            `json:"addOns"`
		BillingCycle models.BillingCycle `json:"billingCycle"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	if req.BillingCycle == "" {
		req.BillingCycle = models.BillingOneTime
	}

	quote, err := h.Quotes.BuildQuote(req.PackageID, req.AddOns, req.BillingCycle)
	if err != nil {
		zap.L().Warn("Quote request rejected", zap.String("package", req.PackageID), zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, quote)
}
