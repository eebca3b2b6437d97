// Package mapview computes the viewport-filtered subset for map mode: the
// list beside the map always equals the markers inside the current bounds
// intersected with the status filter, never the full dataset.
package mapview

import (
	"backend_hatid/pkg/models"

	"backend_hatid/pkg/listing"
)

// DefaultCenter is the fixed initial viewport center (Manila).
var DefaultCenter = models.Location{Lat: 14.5995, Lng: 120.9842}

// DefaultZoom is the fixed initial zoom level.
const DefaultZoom = 12

// Bounds is the current viewport rectangle.
type Bounds struct {
	North float64 `json:"north" form:"north"`
	South float64 `json:"south" form:"south"`
	East  float64 `json:"east" form:"east"`
	West  float64 `json:"west" form:"west"`
}

// Contains reports whether the coordinate falls inside the viewport.
func (b Bounds) Contains(loc models.Location) bool {
	return loc.Lat <= b.North && loc.Lat >= b.South &&
		loc.Lng <= b.East && loc.Lng >= b.West
}

// View holds the map camera. Init is idempotent: toggling map mode on and
// off never re-centers an already initialized view.
type View struct {
	Center      models.Location
	Zoom        int
	initialized bool
}

func (v *View) Init() {
	if v.initialized {
		return
	}
	v.Center = DefaultCenter
	v.Zoom = DefaultZoom
	v.initialized = true
}

// Recenter resets the viewport to the fixed default. Filter and selection
// state are untouched.
func (v *View) Recenter() {
	v.Center = DefaultCenter
	v.Zoom = DefaultZoom
	v.initialized = true
}

// VisibleWithin returns the entities that have coordinates, fall within the
// bounds, and pass the status filter.
func VisibleWithin[T any](items []T, loc func(T) *models.Location, status func(T) string, b Bounds, statusFilter string) []T {
	out := make([]T, 0)
	for _, item := range items {
		l := loc(item)
		if l == nil || !b.Contains(*l) {
			continue
		}
		if statusFilter != listing.StatusAll && statusFilter != "" && status(item) != statusFilter {
			continue
		}
		out = append(out, item)
	}
	return out
}
