// File: photostudio/handlers/admin.go
package handlers

import (
	"net/http"

	recordsRepo "photostudio/database/repository/records"
	"photostudio/services/user"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AdminHandler encapsulates elevated admin-level operations. All views are
// read-only.
type AdminHandler struct {
	UserService user.UserService
	Records     recordsRepo.RecordRepository
}

// NewAdminHandler creates a new AdminHandler.
func NewAdminHandler(us user.UserService, records recordsRepo.RecordRepository) *AdminHandler {
	return &AdminHandler{
		UserService: us,
		Records:     records,
	}
}

// GetAllUsersHandler returns all users (sensitive fields excluded by model tags).
func (ah *AdminHandler) GetAllUsersHandler(c *gin.Context) {
	users, err := ah.UserService.GetAllUsers()
	if err != nil {
		zap.L().Error("Failed to fetch all users", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch users"})
		return
	}
	c.JSON(http.StatusOK, users)
}

// GetAllBookingsHandler returns all confirmed booking records.
func (ah *AdminHandler) GetAllBookingsHandler(c *gin.Context) {
	bookings, err := ah.Records.GetAll()
	if err != nil {
		zap.L().Error("Failed to fetch all bookings", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch bookings"})
		return
	}
	c.JSON(http.StatusOK, bookings)
}
