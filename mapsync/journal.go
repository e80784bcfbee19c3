package mapsync

import (
	"sync"

	"go-lifelink/types"
)

// Command is one renderer operation recorded for the browser bridge to replay
// against its tile library.
type Command struct {
	Op          string             `json:"op"`
	Map         MapRef             `json:"map,omitempty"`
	Layer       LayerRef           `json:"layer,omitempty"`
	Center      *types.Coordinate  `json:"center,omitempty"`
	Zoom        int                `json:"zoom,omitempty"`
	TileURL     string             `json:"tileUrl,omitempty"`
	Attribution string             `json:"attribution,omitempty"`
	Marker      *Marker            `json:"marker,omitempty"`
	Bounds      []types.Coordinate `json:"bounds,omitempty"`
	Padding     int                `json:"padding,omitempty"`
	MaxZoom     int                `json:"maxZoom,omitempty"`
}

// Camera is the journal's view of where the map was last pointed.
type Camera struct {
	Center  types.Coordinate   `json:"center"`
	Zoom    int                `json:"zoom"`
	Bounds  []types.Coordinate `json:"bounds,omitempty"`
	Padding int                `json:"padding,omitempty"`
	MaxZoom int                `json:"maxZoom,omitempty"`
}

// Journal is a Renderer that records every command and tracks the resulting
// view state. It backs both the browser bridge (which replays commands) and
// the tests (which assert on markers and camera).
type Journal struct {
	mu       sync.Mutex
	nextRef  int
	commands []Command
	markers  map[LayerRef][]Marker
	cameras  map[MapRef]Camera
	live     map[MapRef]bool
}

func NewJournal() *Journal {
	return &Journal{
		markers: make(map[LayerRef][]Marker),
		cameras: make(map[MapRef]Camera),
		live:    make(map[MapRef]bool),
	}
}

func (j *Journal) CreateMap(center types.Coordinate, zoom int) (MapRef, error) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.nextRef++
	m := MapRef(j.nextRef)
	j.live[m] = true
	j.cameras[m] = Camera{Center: center, Zoom: zoom}
	c := center
	j.commands = append(j.commands, Command{Op: "createMap", Map: m, Center: &c, Zoom: zoom})
	return m, nil
}

func (j *Journal) AddTileLayer(m MapRef, url, attribution string) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.commands = append(j.commands, Command{Op: "addTileLayer", Map: m, TileURL: url, Attribution: attribution})
}

func (j *Journal) CreateMarkerLayer(m MapRef) LayerRef {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.nextRef++
	l := LayerRef(j.nextRef)
	j.markers[l] = nil
	j.commands = append(j.commands, Command{Op: "createMarkerLayer", Map: m, Layer: l})
	return l
}

func (j *Journal) ClearLayer(l LayerRef) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.markers[l] = nil
	j.commands = append(j.commands, Command{Op: "clearLayer", Layer: l})
}

func (j *Journal) AddMarker(l LayerRef, marker Marker) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.markers[l] = append(j.markers[l], marker)
	mk := marker
	j.commands = append(j.commands, Command{Op: "addMarker", Layer: l, Marker: &mk})
}

func (j *Journal) FitBounds(m MapRef, coords []types.Coordinate, padding, maxZoom int) {
	j.mu.Lock()
	defer j.mu.Unlock()
	cam := j.cameras[m]
	cam.Bounds = append([]types.Coordinate(nil), coords...)
	cam.Padding = padding
	cam.MaxZoom = maxZoom
	j.cameras[m] = cam
	j.commands = append(j.commands, Command{Op: "fitBounds", Map: m, Bounds: cam.Bounds, Padding: padding, MaxZoom: maxZoom})
}

func (j *Journal) DestroyMap(m MapRef) {
	j.mu.Lock()
	defer j.mu.Unlock()
	delete(j.live, m)
	delete(j.cameras, m)
	j.commands = append(j.commands, Command{Op: "destroyMap", Map: m})
}

// CommandsSince returns commands recorded at or after the given cursor, plus
// the next cursor. The browser bridge polls with its last cursor.
func (j *Journal) CommandsSince(cursor int) ([]Command, int) {
	j.mu.Lock()
	defer j.mu.Unlock()
	if cursor < 0 || cursor > len(j.commands) {
		cursor = len(j.commands)
	}
	out := append([]Command(nil), j.commands[cursor:]...)
	return out, len(j.commands)
}

// Markers returns a copy of the current marker set on a layer.
func (j *Journal) Markers(l LayerRef) []Marker {
	j.mu.Lock()
	defer j.mu.Unlock()
	return append([]Marker(nil), j.markers[l]...)
}

// Camera returns the current camera for a map, false if the map was destroyed.
func (j *Journal) Camera(m MapRef) (Camera, bool) {
	j.mu.Lock()
	defer j.mu.Unlock()
	cam, ok := j.cameras[m]
	return cam, ok
}

// LiveMaps reports how many maps exist and have not been destroyed.
func (j *Journal) LiveMaps() int {
	j.mu.Lock()
	defer j.mu.Unlock()
	return len(j.live)
}
