package availability

import (
	"context"
	"fmt"
	"testing"
	"time"

	catalogRepo "photostudio/database/repository/catalog"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixedResolver struct {
	cityID string
	err    error
}

func (r fixedResolver) ResolveCity(context.Context, float64, float64) (string, error) {
	return r.cityID, r.err
}

func newAvailabilityService(resolver CityResolver) *DefaultAvailabilityService {
	return &DefaultAvailabilityService{
		Catalog:  catalogRepo.NewStaticCatalogRepo(),
		Resolver: resolver,
	}
}

func TestCheckAvailabilityAvailableCity(t *testing.T) {
	svc := newAvailabilityService(nil)

	check := svc.CheckAvailability("mumbai")
	require.NotNil(t, check)
	assert.True(t, check.Available)
	assert.Equal(t, "Great news! Our photography services are available in Mumbai.", check.Message)
}

func TestCheckAvailabilityUnavailableCity(t *testing.T) {
	svc := newAvailabilityService(nil)

	check := svc.CheckAvailability("kolkata")
	require.NotNil(t, check)
	assert.False(t, check.Available)
	assert.Equal(t, "We'll be launching in Kolkata next month. Please check back soon!", check.Message)
}

func TestCheckAvailabilityUnknownCity(t *testing.T) {
	svc := newAvailabilityService(nil)

	assert.Nil(t, svc.CheckAvailability("atlantis"))
}

func TestDetectLocationWithoutCoordinates(t *testing.T) {
	svc := newAvailabilityService(fixedResolver{cityID: "goa"})

	_, err := svc.DetectLocation(context.Background(), nil)
	var perm LocationPermissionError
	require.ErrorAs(t, err, &perm)
	assert.Equal(t, "Location access denied. Please select your city manually.", perm.Message)
}

func TestDetectLocationResolvesCity(t *testing.T) {
	svc := newAvailabilityService(fixedResolver{cityID: "goa"})

	city, err := svc.DetectLocation(context.Background(), &Coordinates{Latitude: 15.3, Longitude: 74.1})
	require.NoError(t, err)
	assert.Equal(t, "Goa", city.Name)
	assert.True(t, city.Available)
}

func TestDetectLocationResolverFailure(t *testing.T) {
	svc := newAvailabilityService(fixedResolver{err: fmt.Errorf("geocoder down")})

	_, err := svc.DetectLocation(context.Background(), &Coordinates{Latitude: 1, Longitude: 1})
	var perm LocationPermissionError
	require.ErrorAs(t, err, &perm)
	assert.Equal(t, "Could not determine your city. Please select manually.", perm.Message)
}

func TestRandomCityResolverPicksAvailableCity(t *testing.T) {
	catalog := catalogRepo.NewStaticCatalogRepo()
	resolver := &RandomCityResolver{Catalog: catalog}

	for i := 0; i < 25; i++ {
		cityID, err := resolver.ResolveCity(context.Background(), 19.07, 72.87)
		require.NoError(t, err)

		city, err := catalog.GetCity(cityID)
		require.NoError(t, err)
		assert.True(t, city.Available, cityID)
	}
}

func TestRandomCityResolverHonorsContext(t *testing.T) {
	resolver := &RandomCityResolver{
		Catalog: catalogRepo.NewStaticCatalogRepo(),
		Delay:   time.Second,
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	_, err := resolver.ResolveCity(ctx, 19.07, 72.87)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}
