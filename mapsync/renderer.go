package mapsync

import "go-lifelink/types"

// MapRef and LayerRef are opaque handles issued by a Renderer.
type MapRef int

type LayerRef int

// Marker is one pin placed on a marker layer.
type Marker struct {
	At        types.Coordinate `json:"at"`
	Icon      string           `json:"icon"`
	PopupHTML string           `json:"popupHtml"`
}

// Renderer is the generic mapping collaborator. Any tile-serving library that
// can satisfy this shape is substitutable; the engine never depends on tile or
// marker rendering internals.
type Renderer interface {
	CreateMap(center types.Coordinate, zoom int) (MapRef, error)
	AddTileLayer(m MapRef, url, attribution string)
	CreateMarkerLayer(m MapRef) LayerRef
	ClearLayer(l LayerRef)
	AddMarker(l LayerRef, marker Marker)
	FitBounds(m MapRef, coords []types.Coordinate, padding, maxZoom int)
	DestroyMap(m MapRef)
}
