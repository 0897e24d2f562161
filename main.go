// File: photostudio/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"photostudio/config"
	catalogRepo "photostudio/database/repository/catalog"
	recordsRepo "photostudio/database/repository/records"
	userRepoPkg "photostudio/database/repository/user"
	"photostudio/handlers"
	"photostudio/middleware"
	"photostudio/models"
	"photostudio/routes"
	"photostudio/services/availability"
	"photostudio/services/booking"
	"photostudio/services/pricing"
	"photostudio/services/user"
	"photostudio/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	utils.InitRedis()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	catalog := catalogRepo.NewStaticCatalogRepo()
	userRepo := userRepoPkg.NewMemoryUserRepo()
	records := recordsRepo.NewMemoryRecordRepo()

	// services.
	userService := &user.DefaultUserService{
		Repo: userRepo,
	}
	handlers.SetUserService(userService)
	handlers.SetRecordRepository(records)

	quoteService := &pricing.DefaultQuoteService{
		Catalog: catalog,
	}

	availabilityService := &availability.DefaultAvailabilityService{
		Catalog: catalog,
		Resolver: &availability.RandomCityResolver{
			Catalog: catalog,
			Delay:   1500 * time.Millisecond,
		},
	}

	sessionTTL := time.Duration(config.AppConfig.SessionTTLMinutes) * time.Minute
	var sessionStore booking.SessionStore
	if cacheClient := utils.GetBookingCacheClient(); cacheClient != nil {
		sessionStore = &booking.RedisSessionStore{Client: cacheClient, TTL: sessionTTL}
	} else {
		sessionStore = booking.NewMemorySessionStore(sessionTTL)
	}

	bookingService := &booking.DefaultBookingSessionService{
		Catalog:      catalog,
		Quotes:       quoteService,
		Availability: availabilityService,
		Records:      records,
		Store:        sessionStore,
	}

	pricingHandler := handlers.NewPricingHandler(catalog, quoteService)
	bookingHandler := handlers.NewBookingHandler(bookingService, catalog, logger)
	availabilityHandler := handlers.NewAvailabilityHandler(catalog, availabilityService)
	adminHandler := handlers.NewAdminHandler(userService, records)

	seedDemoData(userService, records)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		UserRepo: userRepo,

		// Pricing endpoints.
		GetCategoriesHandler: pricingHandler.GetCategoriesHandler,
		GetPackagesHandler:   pricingHandler.GetPackagesHandler,
		GetPackageHandler:    pricingHandler.GetPackageHandler,
		QuoteHandler:         pricingHandler.QuoteHandler,

		// Booking endpoints.
		InitiateSession:     bookingHandler.InitiateSession,
		GetSession:          bookingHandler.GetSession,
		UpdateSession:       bookingHandler.UpdateSession,
		ToggleAddOn:         bookingHandler.ToggleAddOn,
		GetEligibleAddOns:   bookingHandler.GetEligibleAddOns,
		GetSessionQuote:     bookingHandler.GetSessionQuote,
		ConfirmBooking:      bookingHandler.ConfirmBooking,
		CancelSession:       bookingHandler.CancelSession,
		GetTimeSlotsHandler: bookingHandler.GetTimeSlots,

		// Availability endpoints.
		ListCitiesHandler:     availabilityHandler.ListCitiesHandler,
		CheckCityHandler:      availabilityHandler.CheckCityHandler,
		DetectLocationHandler: availabilityHandler.DetectLocationHandler,

		// User endpoints.
		RegisterUserHandler:        handlers.RegisterUserHandler,
		AuthenticateUserHandler:    handlers.AuthenticateUserHandler,
		GetCurrentUserHandler:      handlers.GetCurrentUserHandler,
		UpdateCurrentUserHandler:   handlers.UpdateCurrentUserHandler,
		GetMyBookingsHandler:       handlers.GetMyBookingsHandler,
		RevokeUserAuthTokenHandler: handlers.RevokeUserAuthTokenHandler,

		// Admin endpoints.
		AdminHandler: adminHandler,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}

// seedDemoData creates the default admin account and a handful of booking
// records so the dashboards have something to show. All of it lives in memory
// only.
func seedDemoData(userService user.UserService, records recordsRepo.RecordRepository) {
	logger := utils.GetLogger()

	admin, err := userService.RegisterUser(models.User{
		FirstName: "Studio",
		LastName:  "Admin",
		Email:     "admin@studio.local",
		Password:  "Admin@12345",
		Role:      models.RoleAdmin,
	})
	if err != nil {
		logger.Sugar().Warnf("seed: failed to create admin account: %v", err)
		return
	}

	demo, err := userService.RegisterUser(models.User{
		FirstName:   "Priya",
		LastName:    "Sharma",
		Email:       "priya@example.com",
		Password:    "Demo@12345",
		PhoneNumber: "+91 98765 43210",
	})
	if err != nil {
		logger.Sugar().Warnf("seed: failed to create demo account: %v", err)
		return
	}

	demoBookings := []models.Booking{
		{
			ID:     "b7b3e8d2-demo-0001",
			UserID: demo.ID,
			Selection: models.PackageSelection{
				SelectedPackage: "wedding-premium",
				PackageName:     "Premium",
				PackagePrice:    89999,
				PackageCategory: models.CategoryWedding,
				BillingCycle:    models.BillingOneTime,
			},
			AddOns:   []string{"drone"},
			Date:     time.Now().AddDate(0, 1, 0).Format("2006-01-02"),
			TimeSlot: "2:00 PM",
			CityID:   "mumbai",
			Contact: models.ContactInfo{
				Name:  "Priya Sharma",
				Email: "priya@example.com",
				Phone: "+91 98765 43210",
			},
			Total:     99998,
			CreatedAt: time.Now().AddDate(0, 0, -7),
		},
		{
			ID:     "b7b3e8d2-demo-0002",
			UserID: demo.ID,
			Selection: models.PackageSelection{
				SelectedPackage: "portrait-basic",
				PackageName:     "Basic",
				PackagePrice:    7999,
				PackageCategory: models.CategoryPortrait,
				BillingCycle:    models.BillingOneTime,
			},
			Date:     time.Now().AddDate(0, 2, 0).Format("2006-01-02"),
			TimeSlot: "11:00 AM",
			CityID:   "pune",
			Contact: models.ContactInfo{
				Name:  "Priya Sharma",
				Email: "priya@example.com",
				Phone: "+91 98765 43210",
			},
			Total:     7999,
			CreatedAt: time.Now().AddDate(0, 0, -2),
		},
	}
	for _, b := range demoBookings {
		if err := records.Insert(b); err != nil {
			logger.Sugar().Warnf("seed: failed to insert demo booking: %v", err)
		}
	}

	logger.Sugar().Infof("seed: demo data ready (admin %s, user %s)", admin.ID, demo.ID)
}
