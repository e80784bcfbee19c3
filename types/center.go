package types

// Coordinate is an immutable lat/long pair.
type Coordinate struct {
	Lat  float64 `json:"lat"`
	Long float64 `json:"long"`
}

type SortKey string

const (
	SortByDistance SortKey = "distance"
	SortByETA      SortKey = "eta"
)

// SearchRequest identifies which result set is current. A response arriving
// for a superseded request must be discarded by the caller.
type SearchRequest struct {
	BloodType BloodType  `json:"bloodType"`
	SortKey   SortKey    `json:"sortKey"`
	Origin    Coordinate `json:"origin"`
}

// Center is a blood-supply facility as projected for one search request.
// UnitsAvailable is always derived from FullInventory at projection time
// using the blood type the request was issued with, never stored on its own.
type Center struct {
	ID             string            `json:"id"`
	Name           string            `json:"name"`
	Address        string            `json:"address"`
	Location       Coordinate        `json:"location"`
	ContactNumber  string            `json:"contactNumber"`
	UnitsAvailable int               `json:"unitsAvailable"`
	FullInventory  map[BloodType]int `json:"inventory"`
	DistanceKM     float64           `json:"distanceKm"`
	ETAMinutes     float64           `json:"etaMinutes"`
	RoutingURL     string            `json:"routingUrl"`
}

type StockTier string

const (
	StockCritical StockTier = "critical"
	StockLow      StockTier = "low"
	StockHealthy  StockTier = "healthy"
)

// TierForUnits buckets an available-unit count into the three-tier
// stock-level policy: 0 critical, 1-10 low, above 10 healthy.
func TierForUnits(units int) StockTier {
	switch {
	case units == 0:
		return StockCritical
	case units <= 10:
		return StockLow
	default:
		return StockHealthy
	}
}
