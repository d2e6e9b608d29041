package geostats

import "github.com/joglog/joglog/internal/pkg/models"

// TotalDistance sums the haversine distance between every consecutive
// pair of samples, in insertion order. Routes with fewer than two
// samples have no pairs and yield 0.
func TotalDistance(route []models.LocationSample) float64 {
	var total float64
	for i := 1; i < len(route); i++ {
		total += DistanceMeters(route[i-1], route[i])
	}
	return total
}

// AverageSpeed returns the arithmetic mean of the speeds the sensor
// actually reported. Samples without a speed are excluded from both
// numerator and denominator, never treated as zero. Routes with fewer
// than two samples yield 0 regardless of speed presence.
func AverageSpeed(route []models.LocationSample) float64 {
	if len(route) < 2 {
		return 0
	}

	var sum float64
	var count int
	for _, s := range route {
		if s.Speed == nil {
			continue
		}
		sum += *s.Speed
		count++
	}

	if count == 0 {
		return 0
	}
	return sum / float64(count)
}

// MaxSpeed returns the highest reported speed on the route, or 0 when
// the route is empty or no sample carries a speed. Unlike AverageSpeed
// a single-sample route is eligible here.
func MaxSpeed(route []models.LocationSample) float64 {
	var max float64
	var found bool
	for _, s := range route {
		if s.Speed == nil {
			continue
		}
		if !found || *s.Speed > max {
			max = *s.Speed
			found = true
		}
	}

	if !found {
		return 0
	}
	return max
}

// Summarize bundles the route aggregates into a SessionSummary. The
// duration is supplied by the caller; the engine never derives it from
// sample timestamps.
func Summarize(route []models.LocationSample, durationSec float64) models.SessionSummary {
	return models.SessionSummary{
		Distance: TotalDistance(route),
		AvgSpeed: AverageSpeed(route),
		MaxSpeed: MaxSpeed(route),
		Duration: durationSec,
	}
}
