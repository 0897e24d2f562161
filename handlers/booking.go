package handlers

import (
	"errors"
	"net/http"

	catalogRepo "photostudio/database/repository/catalog"
	"photostudio/models"
	"photostudio/services/booking"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// PricingRedirect is returned alongside a missing-selection error so clients
// can route the user back to the catalog selector.
const PricingRedirect = "/api/pricing/categories"

// BookingHandler exposes the booking configurator over HTTP.
type BookingHandler struct {
	Service booking.SessionService
	Catalog catalogRepo.CatalogRepository
	Logger  *zap.Logger
}

func NewBookingHandler(svc booking.SessionService, catalog catalogRepo.CatalogRepository, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{Service: svc, Catalog: catalog, Logger: logger}
}

// GetTimeSlots handles GET /booking/timeslots.
func (h *BookingHandler) GetTimeSlots(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"timeSlots": h.Catalog.TimeSlots()})
}

func currentUserID(c *gin.Context) string {
	if v, ok := c.Get("userID"); ok {
		if id, ok := v.(string); ok {
			return id
		}
	}
	return ""
}

// InitiateSession handles POST /booking/session. The request body is the
// package selection carried from the pricing view; without a valid one the
// booking flow may not begin.
func (h *BookingHandler) InitiateSession(c *gin.Context) {
	var selection models.PackageSelection
	if err := c.ShouldBindJSON(&selection); err != nil {
		// An unreadable body is the same situation as no selection at all.
		selection = models.PackageSelection{}
	}

	session, err := h.Service.CreateSession(currentUserID(c), selection)
	if err != nil {
		var missing booking.MissingSelectionError
		if errors.As(err, &missing) {
			c.JSON(http.StatusConflict, gin.H{
				"error":    missing.Error(),
				"redirect": PricingRedirect,
			})
			return
		}
		h.Logger.Error("Failed to create booking session", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create booking session"})
		return
	}

	addOns, _ := h.Service.EligibleAddOns(session.SessionID)
	c.JSON(http.StatusOK, gin.H{
		"session": session,
		"addOns":  addOns,
	})
}

// GetSession handles GET /booking/session/:sessionID.
func (h *BookingHandler) GetSession(c *gin.Context) {
	session, err := h.Service.GetSession(c.Param("sessionID"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, session)
}

// UpdateSession handles PATCH /booking/session/:sessionID.
func (h *BookingHandler) UpdateSession(c *gin.Context) {
	var update booking.SessionUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	session, err := h.Service.UpdateSession(c.Param("sessionID"), update)
	if err != nil {
		if errors.Is(err, booking.ErrSessionNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, session)
}

// ToggleAddOn handles POST /booking/session/:sessionID/addons/:addOnID.
func (h *BookingHandler) ToggleAddOn(c *gin.Context) {
	session, err := h.Service.ToggleAddOn(c.Param("sessionID"), c.Param("addOnID"))
	if err != nil {
		if errors.Is(err, booking.ErrSessionNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, session)
}

// GetEligibleAddOns handles GET /booking/session/:sessionID/addons.
func (h *BookingHandler) GetEligibleAddOns(c *gin.Context) {
	addOns, err := h.Service.EligibleAddOns(c.Param("sessionID"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"addOns": addOns})
}

// GetSessionQuote handles GET /booking/session/:sessionID/quote.
func (h *BookingHandler) GetSessionQuote(c *gin.Context) {
	quote, err := h.Service.Quote(c.Param("sessionID"))
	if err != nil {
		if errors.Is(err, booking.ErrSessionNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, quote)
}

// ConfirmBooking handles POST /booking/session/:sessionID/confirm.
func (h *BookingHandler) ConfirmBooking(c *gin.Context) {
	confirmation, err := h.Service.Confirm(c.Param("sessionID"))
	if err != nil {
		if errors.Is(err, booking.ErrSessionNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		var invalid booking.ValidationError
		if errors.As(err, &invalid) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": invalid.Message,
				"rule":  invalid.Rule,
			})
			return
		}
		h.Logger.Error("Failed to confirm booking", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to confirm booking"})
		return
	}
	c.JSON(http.StatusOK, confirmation)
}

// CancelSession handles DELETE /booking/session/:sessionID.
func (h *BookingHandler) CancelSession(c *gin.Context) {
	if err := h.Service.CancelSession(c.Param("sessionID")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Booking session cancelled"})
}
