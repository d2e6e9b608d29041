package geostats

import (
	"fmt"
	"math"
)

// FormatDistance renders a distance in meters as kilometers with
// exactly two decimal places.
func FormatDistance(meters float64) string {
	return fmt.Sprintf("%.2f", meters/1000)
}

// FormatDuration renders a duration in seconds as MM:SS, or HH:MM:SS
// once the duration reaches an hour. A NaN duration renders as "00:00".
func FormatDuration(seconds float64) string {
	if math.IsNaN(seconds) {
		return "00:00"
	}

	total := int(seconds)
	hours := total / 3600
	minutes := (total % 3600) / 60
	secs := total % 60

	if hours > 0 {
		return fmt.Sprintf("%02d:%02d:%02d", hours, minutes, secs)
	}
	return fmt.Sprintf("%02d:%02d", minutes, secs)
}

// FormatSpeed renders a speed in m/s as km/h with one decimal place.
func FormatSpeed(metersPerSecond float64) string {
	return fmt.Sprintf("%.1f", metersPerSecond*3.6)
}
