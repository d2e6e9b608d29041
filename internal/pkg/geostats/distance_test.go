package geostats

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/joglog/joglog/internal/pkg/models"
)

func sample(lat, lon float64) models.LocationSample {
	return models.LocationSample{Latitude: lat, Longitude: lon}
}

func TestDistanceMeters_Identity(t *testing.T) {
	points := []models.LocationSample{
		sample(0, 0),
		sample(-6.2088, 106.8456),
		sample(51.5074, -0.1278),
		sample(-89.9, 179.9),
	}

	for _, p := range points {
		assert.Equal(t, 0.0, DistanceMeters(p, p))
	}
}

func TestDistanceMeters_Symmetry(t *testing.T) {
	a := sample(-6.2088, 106.8456)
	b := sample(-6.9175, 107.6191)

	assert.Equal(t, DistanceMeters(a, b), DistanceMeters(b, a))
}

func TestDistanceMeters_KnownDistance(t *testing.T) {
	// Jakarta to Bandung is roughly 115-120 km great-circle.
	a := sample(-6.2088, 106.8456)
	b := sample(-6.9175, 107.6191)

	d := DistanceMeters(a, b)
	assert.Greater(t, d, 100_000.0)
	assert.Less(t, d, 140_000.0)
}

func TestDistanceMeters_EquatorDegreeApproximation(t *testing.T) {
	// 0.009 degrees of latitude is ~1000m; the spherical Earth radius
	// approximation keeps the result within about 1%.
	a := sample(0, 0)
	b := sample(0.009, 0)

	d := DistanceMeters(a, b)
	assert.InDelta(t, 1000.0, d, 10.0)
}

func TestDistanceMeters_NaNPropagates(t *testing.T) {
	a := sample(math.NaN(), 0)
	b := sample(0.009, 0)

	assert.True(t, math.IsNaN(DistanceMeters(a, b)))
}
