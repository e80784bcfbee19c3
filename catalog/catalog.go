package catalog

import (
	"context"
	"fmt"
	"math"
	"sort"
	"time"

	"go-lifelink/types"
)

const (
	earthRadiusKM = 6371.0

	// Rough urban travel model: minutes per km of straight-line distance.
	etaMinutesPerKM = 2.5

	// The dashboard only ever shows the nearest handful of centers.
	maxResults = 5
)

// Searcher produces the result set for one search request. The caller is
// responsible for discarding stale responses; a Searcher just answers.
type Searcher interface {
	Search(ctx context.Context, req types.SearchRequest) ([]types.Center, error)
}

// Facility is a catalog entry before projection against a search request.
type Facility struct {
	ID            string
	Name          string
	Address       string
	Location      types.Coordinate
	ContactNumber string
	Inventory     map[types.BloodType]int

	// TrafficFactor scales the eta model for facilities on congested
	// corridors. Zero means 1.0. This is what lets eta order diverge from
	// distance order.
	TrafficFactor float64
}

// Service is an in-memory Searcher over a fixed facility catalog. Latency is
// simulated so the orchestration layer can be exercised against slow and
// out-of-order responses the way a real backend would produce them.
type Service struct {
	facilities []Facility
	delay      time.Duration
}

// NewService builds a Service over the default catalog.
func NewService(delay time.Duration) *Service {
	return &Service{facilities: defaultFacilities(), delay: delay}
}

// NewServiceWithFacilities builds a Service over a caller-supplied catalog.
func NewServiceWithFacilities(facilities []Facility, delay time.Duration) *Service {
	return &Service{facilities: facilities, delay: delay}
}

// Search projects every facility against the request's blood type, computes
// distance and eta from the request origin, orders by the requested sort key
// (ties keep catalog insertion order) and truncates to the nearest five.
// The projection uses the blood type captured in the request, so a filter
// change after issue can never leak into this response.
func (s *Service) Search(ctx context.Context, req types.SearchRequest) ([]types.Center, error) {
	if s.delay > 0 {
		select {
		case <-time.After(s.delay):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	} else if err := ctx.Err(); err != nil {
		return nil, err
	}

	results := make([]types.Center, 0, len(s.facilities))
	for _, f := range s.facilities {
		dist := HaversineKM(req.Origin, f.Location)
		traffic := f.TrafficFactor
		if traffic <= 0 {
			traffic = 1
		}
		inventory := make(map[types.BloodType]int, len(f.Inventory))
		for bt, units := range f.Inventory {
			inventory[bt] = units
		}
		results = append(results, types.Center{
			ID:             f.ID,
			Name:           f.Name,
			Address:        f.Address,
			Location:       f.Location,
			ContactNumber:  f.ContactNumber,
			UnitsAvailable: f.Inventory[req.BloodType],
			FullInventory:  inventory,
			DistanceKM:     round2(dist),
			ETAMinutes:     round2(dist * etaMinutesPerKM * traffic),
			RoutingURL:     RoutingURL(f.Location),
		})
	}

	if req.SortKey == types.SortByETA {
		sort.SliceStable(results, func(i, j int) bool {
			return results[i].ETAMinutes < results[j].ETAMinutes
		})
	} else {
		sort.SliceStable(results, func(i, j int) bool {
			return results[i].DistanceKM < results[j].DistanceKM
		})
	}

	if len(results) > maxResults {
		results = results[:maxResults]
	}
	return results, nil
}

// RoutingURL builds a Google Maps directions link to the given coordinate.
func RoutingURL(to types.Coordinate) string {
	return fmt.Sprintf("https://www.google.com/maps/dir/?api=1&destination=%f,%f", to.Lat, to.Long)
}

// HaversineKM returns the great-circle distance between two coordinates.
func HaversineKM(a, b types.Coordinate) float64 {
	lat1 := a.Lat * math.Pi / 180
	lat2 := b.Lat * math.Pi / 180
	dLat := (b.Lat - a.Lat) * math.Pi / 180
	dLon := (b.Long - a.Long) * math.Pi / 180

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
	return earthRadiusKM * c
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
