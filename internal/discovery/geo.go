package discovery

import (
	"math"

	"mos3ef-api/internal/domain/entity"
)

const (
	// EarthRadiusKm is the mean Earth radius used by the haversine formula.
	EarthRadiusKm = 6371.0

	// kmPerDegree approximates the length of one degree of latitude.
	kmPerDegree = 111.0
)

func toRadians(deg float64) float64 {
	return deg * math.Pi / 180
}

// DistanceKm returns the great-circle distance between a and b in kilometers.
func DistanceKm(a, b entity.Point) float64 {
	lat1 := toRadians(a.Latitude)
	lat2 := toRadians(b.Latitude)
	dLat := lat2 - lat1
	dLon := toRadians(b.Longitude) - toRadians(a.Longitude)

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return EarthRadiusKm * c
}

// DistanceToHospital is the distance from origin to the hospital, or nil when
// the origin is unknown or the hospital has no coordinates.
func DistanceToHospital(origin *entity.Point, hospital *entity.Hospital) *float64 {
	if origin == nil {
		return nil
	}
	location, ok := hospital.Location()
	if !ok {
		return nil
	}
	d := DistanceKm(*origin, location)
	return &d
}

// BoundingBoxAround returns the lat/lon window enclosing a circle of radiusKm.
// The box is a superset of the circle: corners lie farther than radiusKm.
func BoundingBoxAround(center entity.Point, radiusKm float64) entity.BoundingBox {
	latDelta := radiusKm / kmPerDegree
	lonDelta := math.Abs(radiusKm / (kmPerDegree * math.Cos(toRadians(center.Latitude))))

	box := entity.BoundingBox{
		MinLat: center.Latitude - latDelta,
		MaxLat: center.Latitude + latDelta,
		MinLon: center.Longitude - lonDelta,
		MaxLon: center.Longitude + lonDelta,
	}
	// Near the poles the longitude window degenerates; open it up entirely.
	if math.IsInf(lonDelta, 0) || math.IsNaN(lonDelta) || lonDelta >= 180 {
		box.MinLon, box.MaxLon = -180, 180
		return box
	}

	// A window crossing ±180 continues on the other side of the antimeridian.
	switch {
	case box.MinLon < -180:
		box.MinLon += 360
		box.WrapsAntimeridian = true
	case box.MaxLon > 180:
		box.MaxLon -= 360
		box.WrapsAntimeridian = true
	}
	return box
}
