package availability

import (
	"context"
	"fmt"

	catalogRepo "photostudio/database/repository/catalog"
	"photostudio/models"

	"go.uber.org/zap"
)

// Coordinates is a device location reported by the client. Absent coordinates
// mean the client could not (or was not allowed to) read the device location.
type Coordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// LocationPermissionError surfaces as an inline warning; it never blocks
// manual city selection.
type LocationPermissionError struct {
	Message string
}

func (e LocationPermissionError) Error() string {
	return e.Message
}

// Service answers whether the studio serves a city and resolves a device
// location to a serviceable city.
type Service interface {
	// CheckAvailability is a pure lookup against the static city list. An
	// unknown city id yields a nil result rather than an error.
	CheckAvailability(cityID string) *models.AvailabilityCheck
	// DetectLocation resolves coordinates to a city via the configured
	// resolver. Nil coordinates model a denied or unsupported location
	// permission.
	DetectLocation(ctx context.Context, coords *Coordinates) (*models.City, error)
}

// DefaultAvailabilityService is the concrete implementation.
type DefaultAvailabilityService struct {
	Catalog  catalogRepo.CatalogRepository
	Resolver CityResolver
}

func (s *DefaultAvailabilityService) CheckAvailability(cityID string) *models.AvailabilityCheck {
	city, err := s.Catalog.GetCity(cityID)
	if err != nil {
		return nil
	}
	if city.Available {
		return &models.AvailabilityCheck{
			CityID:    city.ID,
			Available: true,
			Message:   fmt.Sprintf("Great news! Our photography services are available in %s.", city.Name),
		}
	}
	message := city.AlternativeMessage
	if message == "" {
		message = fmt.Sprintf("We're sorry, our services are not currently available in %s.", city.Name)
	}
	return &models.AvailabilityCheck{
		CityID:    city.ID,
		Available: false,
		Message:   message,
	}
}

func (s *DefaultAvailabilityService) DetectLocation(ctx context.Context, coords *Coordinates) (*models.City, error) {
	if coords == nil {
		return nil, LocationPermissionError{
			Message: "Location access denied. Please select your city manually.",
		}
	}

	cityID, err := s.Resolver.ResolveCity(ctx, coords.Latitude, coords.Longitude)
	if err != nil {
		zap.L().Warn("City resolution failed", zap.Error(err))
		return nil, LocationPermissionError{
			Message: "Could not determine your city. Please select manually.",
		}
	}

	city, err := s.Catalog.GetCity(cityID)
	if err != nil {
		return nil, fmt.Errorf("resolver returned unknown city %q: %w", cityID, err)
	}
	return city, nil
}
