// Package geostats converts an ordered route of GPS samples into
// distance, speed, and duration metrics, and classifies speeds for
// route rendering. Every function is a pure computation over its
// arguments: no I/O, no shared state, safe to call from any goroutine.
package geostats

import (
	"math"

	"github.com/joglog/joglog/internal/pkg/models"
)

// earthRadiusMeters is the mean Earth radius used by the haversine formula.
const earthRadiusMeters = 6371000.0

// DistanceMeters calculates the great-circle distance between two
// samples in meters using the haversine formula. NaN inputs propagate;
// there is no coordinate validation.
func DistanceMeters(a, b models.LocationSample) float64 {
	lat1 := a.Latitude * math.Pi / 180.0
	lat2 := b.Latitude * math.Pi / 180.0
	dLat := (b.Latitude - a.Latitude) * math.Pi / 180.0
	dLon := (b.Longitude - a.Longitude) * math.Pi / 180.0

	h := math.Sin(dLat/2)*math.Sin(dLat/2) + math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return earthRadiusMeters * c
}
