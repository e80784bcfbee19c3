package geoprobe

import (
	"context"
	"fmt"

	"googlemaps.github.io/maps"

	"go-lifelink/geocode"
	"go-lifelink/types"
)

// Locator is the geolocation collaborator: one-shot, no watch semantics.
type Locator interface {
	CurrentPosition(ctx context.Context) (types.Coordinate, error)
}

// MapsLocator resolves the caller's position with the Google Maps Geolocation
// API. It is a best-effort IP-based fix; failure is expected and non-fatal.
type MapsLocator struct{}

func (MapsLocator) CurrentPosition(ctx context.Context) (types.Coordinate, error) {
	client, err := geocode.InitMapsClient()
	if err != nil {
		return types.Coordinate{}, err
	}

	result, err := client.Geolocate(ctx, &maps.GeolocationRequest{ConsiderIP: true})
	if err != nil {
		return types.Coordinate{}, fmt.Errorf("geolocate: %w", err)
	}

	return types.Coordinate{Lat: result.Location.Lat, Long: result.Location.Lng}, nil
}
