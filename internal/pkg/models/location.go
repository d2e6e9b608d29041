package models

// LocationSample is a single GPS observation recorded during a session.
// Coordinates are WGS84 degrees and pass through unvalidated; Timestamp
// is milliseconds since epoch. Speed is meters per second and nil when
// the sensor did not report one.
type LocationSample struct {
	Latitude  float64  `json:"latitude" db:"latitude"`
	Longitude float64  `json:"longitude" db:"longitude"`
	Timestamp int64    `json:"timestamp" db:"timestamp"`
	Speed     *float64 `json:"speed,omitempty" db:"speed"`
}

// LocationUpdate is a sample pushed for a specific session, either over
// HTTP or on the location.update NATS subject.
type LocationUpdate struct {
	SessionID string         `json:"session_id"`
	Sample    LocationSample `json:"sample"`
}
