package entity

// Point is a WGS84 coordinate in degrees.
type Point struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// BoundingBox is a rectangular lat/lon window, inclusive on all sides.
// When WrapsAntimeridian is set the longitude window runs from MinLon east
// through 180 to MaxLon, so MinLon > MaxLon.
type BoundingBox struct {
	MinLat            float64 `json:"min_lat"`
	MaxLat            float64 `json:"max_lat"`
	MinLon            float64 `json:"min_lon"`
	MaxLon            float64 `json:"max_lon"`
	WrapsAntimeridian bool    `json:"wraps_antimeridian"`
}

// Contains reports whether p lies inside the box.
func (b BoundingBox) Contains(p Point) bool {
	if p.Latitude < b.MinLat || p.Latitude > b.MaxLat {
		return false
	}
	if b.WrapsAntimeridian {
		return p.Longitude >= b.MinLon || p.Longitude <= b.MaxLon
	}
	return p.Longitude >= b.MinLon && p.Longitude <= b.MaxLon
}
