package geo_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tamirban/tamirban-api/internal/domain/geo"
)

func TestDistanceMeters_Symmetry(t *testing.T) {
	pairs := [][4]float64{
		{35.6892, 51.3890, 35.8400, 50.9391},  // Tehran - Karaj
		{35.6892, 51.3890, 29.5918, 52.5837},  // Tehran - Shiraz
		{0, 0, 0, 180},                        // antipodal on the equator
		{-33.45, -70.66, 35.70, 51.40},        // across hemispheres
	}
	for _, p := range pairs {
		ab := geo.DistanceMeters(p[0], p[1], p[2], p[3])
		ba := geo.DistanceMeters(p[2], p[3], p[0], p[1])
		assert.InDelta(t, ab, ba, 1e-6)
		assert.GreaterOrEqual(t, ab, 0.0)
	}
}

func TestDistanceMeters_SamePointIsZero(t *testing.T) {
	assert.Equal(t, 0.0, geo.DistanceMeters(35.6892, 51.3890, 35.6892, 51.3890))
}

func TestDistanceMeters_OneDegreeOfLatitude(t *testing.T) {
	// One degree of latitude along a meridian is R * pi/180 ≈ 111194.93 m.
	d := geo.DistanceMeters(0, 0, 1, 0)
	assert.InDelta(t, 111194.93, d, 0.5)
}

func TestDistanceMeters_MonotoneAlongMeridian(t *testing.T) {
	near := geo.DistanceMeters(35.70, 51.40, 35.71, 51.40)
	far := geo.DistanceMeters(35.70, 51.40, 35.80, 51.40)
	assert.Less(t, near, far)
}

func TestDistanceMeters_NaNPropagates(t *testing.T) {
	assert.True(t, math.IsNaN(geo.DistanceMeters(math.NaN(), 0, 0, 0)))
}
