// File: photostudio/handlers/bundle.go
package handlers

import (
	userRepoPkg "photostudio/database/repository/user"

	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	UserRepo userRepoPkg.UserRepository

	// Pricing endpoints
	GetCategoriesHandler gin.HandlerFunc
	GetPackagesHandler   gin.HandlerFunc
	GetPackageHandler    gin.HandlerFunc
	QuoteHandler         gin.HandlerFunc

	// Booking endpoints
	InitiateSession     gin.HandlerFunc
	GetSession          gin.HandlerFunc
	UpdateSession       gin.HandlerFunc
	ToggleAddOn         gin.HandlerFunc
	GetEligibleAddOns   gin.HandlerFunc
	GetSessionQuote     gin.HandlerFunc
	ConfirmBooking      gin.HandlerFunc
	CancelSession       gin.HandlerFunc
	GetTimeSlotsHandler gin.HandlerFunc

	// Availability endpoints
	ListCitiesHandler     gin.HandlerFunc
	CheckCityHandler      gin.HandlerFunc
	DetectLocationHandler gin.HandlerFunc

	// User endpoints
	RegisterUserHandler        gin.HandlerFunc
	AuthenticateUserHandler    gin.HandlerFunc
	GetCurrentUserHandler      gin.HandlerFunc
	UpdateCurrentUserHandler   gin.HandlerFunc
	GetMyBookingsHandler       gin.HandlerFunc
	RevokeUserAuthTokenHandler gin.HandlerFunc

	// Admin endpoints
	AdminHandler *AdminHandler
}
