package mapsync

import (
	"errors"
	"fmt"

	"go-lifelink/types"
)

type State int

const (
	Uninitialized State = iota
	Ready
)

const (
	tileURL         = "https://{s}.tile.openstreetmap.org/{z}/{x}/{y}.png"
	tileAttribution = "&copy; OpenStreetMap contributors"

	initialZoom = 12
	fitPadding  = 48
	fitMaxZoom  = 14

	userIcon = "user"
)

var (
	ErrAlreadyInitialized = errors.New("mapsync: map already initialized")
	ErrNotReady           = errors.New("mapsync: engine not initialized")
)

// Engine owns a single persistent map instance and reconciles it against the
// latest committed result set, user location and blood type. The map is
// created exactly once per engine lifetime and mutated in place afterwards;
// re-running Init on a live engine is a correctness bug (it would leak maps)
// and is rejected.
type Engine struct {
	renderer    Renderer
	state       State
	mapRef      MapRef
	markerLayer LayerRef
}

func NewEngine(r Renderer) *Engine {
	return &Engine{renderer: r}
}

func (e *Engine) State() State {
	return e.state
}

// Init performs the one-time Uninitialized -> Ready transition: camera at the
// given coordinate, base tile layer, empty marker layer.
func (e *Engine) Init(initial types.Coordinate) error {
	if e.state == Ready {
		return ErrAlreadyInitialized
	}
	m, err := e.renderer.CreateMap(initial, initialZoom)
	if err != nil {
		return fmt.Errorf("create map: %w", err)
	}
	e.renderer.AddTileLayer(m, tileURL, tileAttribution)
	e.mapRef = m
	e.markerLayer = e.renderer.CreateMarkerLayer(m)
	e.state = Ready
	return nil
}

// Reconcile makes the displayed markers match the given state: clears the
// marker layer, re-adds the user marker (if any) and one marker per center
// color-coded by stock tier, then refits the camera around every marker.
// With no markers at all the camera is left where it was. Reconcile is a pure
// function of its inputs; running it twice with the same arguments yields the
// same marker set and bounds.
func (e *Engine) Reconcile(userLoc *types.Coordinate, centers []types.Center, bloodType types.BloodType) error {
	if e.state != Ready {
		return ErrNotReady
	}

	e.renderer.ClearLayer(e.markerLayer)

	var bounds []types.Coordinate
	if userLoc != nil {
		e.renderer.AddMarker(e.markerLayer, Marker{
			At:        *userLoc,
			Icon:      userIcon,
			PopupHTML: "<b>You are here</b>",
		})
		bounds = append(bounds, *userLoc)
	}

	for _, c := range centers {
		e.renderer.AddMarker(e.markerLayer, Marker{
			At:        c.Location,
			Icon:      string(types.TierForUnits(c.UnitsAvailable)),
			PopupHTML: centerPopup(c, bloodType),
		})
		bounds = append(bounds, c.Location)
	}

	if len(bounds) > 0 {
		e.renderer.FitBounds(e.mapRef, bounds, fitPadding, fitMaxZoom)
	}
	return nil
}

// Teardown releases the map instance and returns the engine to Uninitialized.
func (e *Engine) Teardown() {
	if e.state != Ready {
		return
	}
	e.renderer.DestroyMap(e.mapRef)
	e.mapRef = 0
	e.markerLayer = 0
	e.state = Uninitialized
}

func centerPopup(c types.Center, bloodType types.BloodType) string {
	return fmt.Sprintf(
		"<b>%s</b><br>%s<br>%s units: %d<br><a href=%q target=\"_blank\">Get directions</a>",
		c.Name, c.Address, bloodType, c.UnitsAvailable, c.RoutingURL,
	)
}
