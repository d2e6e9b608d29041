package geostats

import "github.com/joglog/joglog/internal/pkg/models"

// Activity is the coarse activity classification of a speed value.
type Activity string

const (
	ActivityWalking Activity = "walking"
	ActivityJogging Activity = "jogging"
	ActivityRunning Activity = "running"
)

// Color is the display color band of a speed value, used for
// route-segment rendering.
type Color string

const (
	ColorBlue   Color = "blue"
	ColorGreen  Color = "green"
	ColorYellow Color = "yellow"
	ColorOrange Color = "orange"
	ColorRed    Color = "red"
)

// hexByColor maps each band to the hex value rendering clients use.
var hexByColor = map[Color]string{
	ColorBlue:   "#2196F3",
	ColorGreen:  "#4CAF50",
	ColorYellow: "#FFEB3B",
	ColorOrange: "#FF9800",
	ColorRed:    "#F44336",
}

// Hex returns the display hex value for the color band.
func (c Color) Hex() string {
	return hexByColor[c]
}

// ActivityType classifies a speed in m/s into walking, jogging or
// running.
func ActivityType(speed float64) Activity {
	switch {
	case speed < 1.5:
		return ActivityWalking
	case speed < 3.0:
		return ActivityJogging
	default:
		return ActivityRunning
	}
}

// SpeedColor maps a speed in m/s to its display color band. The
// thresholds intentionally differ from ActivityType's and the two must
// not be unified.
func SpeedColor(speed float64) Color {
	switch {
	case speed < 1.0:
		return ColorBlue
	case speed < 2.0:
		return ColorGreen
	case speed < 3.0:
		return ColorYellow
	case speed < 4.0:
		return ColorOrange
	default:
		return ColorRed
	}
}

// Segment is one consecutive pair of samples on a route, colored for
// rendering by the destination sample's speed.
type Segment struct {
	From  models.LocationSample `json:"from"`
	To    models.LocationSample `json:"to"`
	Speed float64               `json:"speed"`
	Color Color                 `json:"color"`
	Hex   string                `json:"hex"`
}

// Segments splits a route into renderable segments. A destination
// sample without a reported speed is treated as stationary for
// coloring purposes.
func Segments(route []models.LocationSample) []Segment {
	if len(route) < 2 {
		return nil
	}

	segments := make([]Segment, 0, len(route)-1)
	for i := 1; i < len(route); i++ {
		var speed float64
		if route[i].Speed != nil {
			speed = *route[i].Speed
		}
		color := SpeedColor(speed)
		segments = append(segments, Segment{
			From:  route[i-1],
			To:    route[i],
			Speed: speed,
			Color: color,
			Hex:   color.Hex(),
		})
	}
	return segments
}
