package geocode

import (
	"context"
	"fmt"
	"log"
	"os"
	"sync"

	"googlemaps.github.io/maps"

	"go-lifelink/types"
)

// mapsClient is a singleton maps client instance.
var (
	mapsClient *maps.Client
	clientOnce sync.Once
)

// InitMapsClient initializes and returns a singleton Google Maps client.
func InitMapsClient() (*maps.Client, error) {
	var err error
	clientOnce.Do(func() {
		apiKey := os.Getenv("MAPS_CREDENTIALS")
		if apiKey == "" {
			err = fmt.Errorf("MAPS_CREDENTIALS environment variable not set")
			return
		}
		mapsClient, err = maps.NewClient(maps.WithAPIKey(apiKey))
		if err != nil {
			log.Fatalf("Failed to create maps client: %v", err)
		}
	})
	return mapsClient, err
}

// RegionCoordinate geocodes a free-text region descriptor to a coordinate.
// Used as the search origin when the device location is unknown but the user
// typed a region into the dashboard.
func RegionCoordinate(ctx context.Context, region string) (types.Coordinate, error) {
	client, err := InitMapsClient()
	if err != nil {
		return types.Coordinate{}, err
	}

	req := &maps.GeocodingRequest{
		Address: region,
	}

	results, err := client.Geocode(ctx, req)
	if err != nil {
		return types.Coordinate{}, err
	}
	if len(results) == 0 {
		return types.Coordinate{}, fmt.Errorf("no geocode results for %q", region)
	}

	loc := results[0].Geometry.Location
	return types.Coordinate{Lat: loc.Lat, Long: loc.Lng}, nil
}
