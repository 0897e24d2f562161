package handlers

import (
	"errors"
	"net/http"

	catalogRepo "photostudio/database/repository/catalog"
	"photostudio/services/availability"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AvailabilityHandler exposes city availability and location detection.
type AvailabilityHandler struct {
	Catalog catalogRepo.CatalogRepository
	Service availability.Service
}

func NewAvailabilityHandler(catalog catalogRepo.CatalogRepository, svc availability.Service) *AvailabilityHandler {
	return &AvailabilityHandler{Catalog: catalog, Service: svc}
}

// ListCitiesHandler handles GET /availability/cities.
func (h *AvailabilityHandler) ListCitiesHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"cities": h.Catalog.Cities()})
}

// CheckCityHandler handles GET /availability/cities/:id. An unknown city id
// yields a cleared result, not an error.
func (h *AvailabilityHandler) CheckCityHandler(c *gin.Context) {
	check := h.Service.CheckAvailability(c.Param("id"))
	c.JSON(http.StatusOK, gin.H{"availability": check})
}

// DetectLocationHandler handles POST /availability/detect. The body carries
// the device coordinates; an empty body models a denied location permission.
func (h *AvailabilityHandler) DetectLocationHandler(c *gin.Context) {
	var coords *availability.Coordinates
	var req availability.Coordinates
	if err := c.ShouldBindJSON(&req); err == nil {
		coords = &req
	}

	city, err := h.Service.DetectLocation(c.Request.Context(), coords)
	if err != nil {
		var denied availability.LocationPermissionError
		if errors.As(err, &denied) {
			c.JSON(http.StatusBadRequest, gin.H{"error": denied.Message})
			return
		}
		zap.L().Error("Location detection failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to detect location"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"city":         city,
		"availability": h.Service.CheckAvailability(city.ID),
	})
}
