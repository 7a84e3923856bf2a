package discovery

import (
	"math"
	"testing"

	"mos3ef-api/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDistanceKm_SamePointIsZero(t *testing.T) {
	points := []entity.Point{
		{Latitude: 0, Longitude: 0},
		{Latitude: 30.0444, Longitude: 31.2357},
		{Latitude: -33.8688, Longitude: 151.2093},
		{Latitude: 89.9, Longitude: -179.9},
	}
	for _, p := range points {
		assert.Equal(t, 0.0, DistanceKm(p, p))
	}
}

func TestDistanceKm_Symmetric(t *testing.T) {
	pairs := [][2]entity.Point{
		{{Latitude: 30.0444, Longitude: 31.2357}, {Latitude: 31.2001, Longitude: 29.9187}},
		{{Latitude: 51.5074, Longitude: -0.1278}, {Latitude: 40.7128, Longitude: -74.0060}},
		{{Latitude: -45, Longitude: 170}, {Latitude: 45, Longitude: -170}},
	}
	for _, pair := range pairs {
		ab := DistanceKm(pair[0], pair[1])
		ba := DistanceKm(pair[1], pair[0])
		assert.InEpsilon(t, ab, ba, 1e-9)
	}
}

func TestDistanceKm_KnownDistance(t *testing.T) {
	// One degree of latitude along a meridian.
	d := DistanceKm(entity.Point{Latitude: 0, Longitude: 0}, entity.Point{Latitude: 1, Longitude: 0})
	assert.InDelta(t, EarthRadiusKm*math.Pi/180, d, 1e-9)

	// Cairo to Alexandria is roughly 180 km.
	d = DistanceKm(entity.Point{Latitude: 30.0444, Longitude: 31.2357}, entity.Point{Latitude: 31.2001, Longitude: 29.9187})
	assert.InDelta(t, 179, d, 5)
}

func TestDistanceToHospital(t *testing.T) {
	lat, lon := 30.1, 31.1
	origin := &entity.Point{Latitude: 30, Longitude: 31}

	t.Run("both coordinates", func(t *testing.T) {
		d := DistanceToHospital(origin, &entity.Hospital{Latitude: &lat, Longitude: &lon})
		require.NotNil(t, d)
		assert.Greater(t, *d, 0.0)
	})

	t.Run("missing longitude", func(t *testing.T) {
		assert.Nil(t, DistanceToHospital(origin, &entity.Hospital{Latitude: &lat}))
	})

	t.Run("no origin", func(t *testing.T) {
		assert.Nil(t, DistanceToHospital(nil, &entity.Hospital{Latitude: &lat, Longitude: &lon}))
	})

	t.Run("no hospital", func(t *testing.T) {
		assert.Nil(t, DistanceToHospital(origin, nil))
	})
}

func TestBoundingBoxAround(t *testing.T) {
	center := entity.Point{Latitude: 30, Longitude: 31}
	box := BoundingBoxAround(center, 50)

	latDelta := 50 / 111.0
	lonDelta := 50 / (111.0 * math.Cos(30*math.Pi/180))
	assert.InDelta(t, 30-latDelta, box.MinLat, 1e-12)
	assert.InDelta(t, 30+latDelta, box.MaxLat, 1e-12)
	assert.InDelta(t, 31-lonDelta, box.MinLon, 1e-12)
	assert.InDelta(t, 31+lonDelta, box.MaxLon, 1e-12)
}

// The box is a coarse prefilter: it keeps points slightly beyond the exact radius.
func TestBoundingBoxAround_IsSupersetOfRadius(t *testing.T) {
	center := entity.Point{Latitude: 30, Longitude: 31}
	box := BoundingBoxAround(center, 50)

	north := entity.Point{Latitude: 30 + (50.0001/EarthRadiusKm)*180/math.Pi, Longitude: 31}
	assert.Greater(t, DistanceKm(center, north), 50.0)
	assert.True(t, box.Contains(north))

	// A corner of the box is well outside the circle yet still inside the box.
	corner := entity.Point{Latitude: box.MaxLat, Longitude: box.MaxLon}
	assert.Greater(t, DistanceKm(center, corner), 50.0)
	assert.True(t, box.Contains(corner))

	// Every point on the circle lies inside the box.
	for bearing := 0.0; bearing < 360; bearing += 15 {
		p := destination(center, 50, bearing)
		assert.True(t, box.Contains(p), "bearing %v", bearing)
	}
}

func TestBoundingBoxAround_AcrossAntimeridian(t *testing.T) {
	tests := []struct {
		name   string
		center entity.Point
		across entity.Point
	}{
		{"east of the line", entity.Point{Latitude: 0, Longitude: 179.9}, entity.Point{Latitude: 0, Longitude: -179.9}},
		{"west of the line", entity.Point{Latitude: 0, Longitude: -179.9}, entity.Point{Latitude: 0, Longitude: 179.9}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			box := BoundingBoxAround(tt.center, 50)

			assert.True(t, box.WrapsAntimeridian)
			assert.GreaterOrEqual(t, box.MinLon, -180.0)
			assert.LessOrEqual(t, box.MaxLon, 180.0)

			require.Less(t, DistanceKm(tt.center, tt.across), 50.0)
			assert.True(t, box.Contains(tt.across), "a match across the line stays in the box")
			assert.False(t, box.Contains(entity.Point{Latitude: 0, Longitude: 0}))

			for bearing := 0.0; bearing < 360; bearing += 15 {
				p := destination(tt.center, 50, bearing)
				p.Longitude = normalizeLongitude(p.Longitude)
				assert.True(t, box.Contains(p), "bearing %v", bearing)
			}
		})
	}
}

func TestBoundingBoxAround_NoWrapAwayFromLine(t *testing.T) {
	box := BoundingBoxAround(entity.Point{Latitude: 30, Longitude: 31}, 50)
	assert.False(t, box.WrapsAntimeridian)
}

func TestBoundingBoxAround_Pole(t *testing.T) {
	box := BoundingBoxAround(entity.Point{Latitude: 90, Longitude: 0}, 10)
	assert.Equal(t, -180.0, box.MinLon)
	assert.Equal(t, 180.0, box.MaxLon)
}

// normalizeLongitude maps lon into [-180, 180].
func normalizeLongitude(lon float64) float64 {
	for lon > 180 {
		lon -= 360
	}
	for lon < -180 {
		lon += 360
	}
	return lon
}

// destination walks distKm from p along bearing (degrees) on the sphere.
func destination(p entity.Point, distKm, bearing float64) entity.Point {
	lat1 := toRadians(p.Latitude)
	lon1 := toRadians(p.Longitude)
	brg := toRadians(bearing)
	ang := distKm / EarthRadiusKm

	lat2 := math.Asin(math.Sin(lat1)*math.Cos(ang) + math.Cos(lat1)*math.Sin(ang)*math.Cos(brg))
	lon2 := lon1 + math.Atan2(math.Sin(brg)*math.Sin(ang)*math.Cos(lat1), math.Cos(ang)-math.Sin(lat1)*math.Sin(lat2))

	return entity.Point{Latitude: lat2 * 180 / math.Pi, Longitude: lon2 * 180 / math.Pi}
}
