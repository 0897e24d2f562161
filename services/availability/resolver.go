package availability

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	catalogRepo "photostudio/database/repository/catalog"
)

// CityResolver maps device coordinates to a city id. This is the integration
// point for a real reverse-geocoding provider.
type CityResolver interface {
	ResolveCity(ctx context.Context, lat, lng float64) (string, error)
}

// RandomCityResolver is a development stand-in for reverse geocoding: after a
// fixed artificial delay it picks a uniformly random available city,
// disregarding the coordinates. Replace with a real resolver before relying
// on detected locations.
type RandomCityResolver struct {
	Catalog catalogRepo.CatalogRepository
	Delay   time.Duration
}

func (r *RandomCityResolver) ResolveCity(ctx context.Context, _, _ float64) (string, error) {
	if r.Delay > 0 {
		select {
		case <-time.After(r.Delay):
		case <-ctx.Done():
			return "", ctx.Err()
		}
	}

	var available []string
	for _, city := range r.Catalog.Cities() {
		if city.Available {
			available = append(available, city.ID)
		}
	}
	if len(available) == 0 {
		return "", fmt.Errorf("no available cities to resolve to")
	}
	return available[rand.Intn(len(available))], nil
}
