package models

import "time"

// SessionState represents the lifecycle state of a tracking session
type SessionState string

const (
	SessionStateActive   SessionState = "ACTIVE"
	SessionStatePaused   SessionState = "PAUSED"
	SessionStateFinished SessionState = "FINISHED"
)

// SessionSummary holds the aggregate statistics derived from a route.
// Duration is supplied by the session lifecycle, not derived from
// sample timestamps.
type SessionSummary struct {
	Distance float64 `json:"distance"`  // meters
	AvgSpeed float64 `json:"avg_speed"` // m/s
	MaxSpeed float64 `json:"max_speed"` // m/s
	Duration float64 `json:"duration"`  // seconds
}

// Session is one tracked jogging activity, bounded by explicit start
// and stop actions. Summary fields are nullable: a session row exists
// before its statistics do.
type Session struct {
	ID             string     `json:"id" db:"id"`
	StartTime      time.Time  `json:"start_time" db:"start_time"`
	EndTime        *time.Time `json:"end_time,omitempty" db:"end_time"`
	Distance       *float64   `json:"distance,omitempty" db:"distance"`
	AvgSpeed       *float64   `json:"avg_speed,omitempty" db:"avg_speed"`
	MaxSpeed       *float64   `json:"max_speed,omitempty" db:"max_speed"`
	Duration       *float64   `json:"duration,omitempty" db:"duration"`
	StartLatitude  float64    `json:"start_latitude" db:"start_latitude"`
	StartLongitude float64    `json:"start_longitude" db:"start_longitude"`
	StartGeohash   string     `json:"-" db:"start_geohash"`
}

// LiveSession is the in-flight state of an active session held in Redis
// until the session is stopped and persisted.
type LiveSession struct {
	ID           string       `json:"id"`
	State        SessionState `json:"state"`
	StartedAt    int64        `json:"started_at"`     // ms since epoch
	PausedMillis int64        `json:"paused_millis"`  // accumulated paused time
	PausedAt     int64        `json:"paused_at"`      // ms since epoch, 0 when not paused
}

// SessionCompletedEvent is published to NATS when a session is stopped
// and its summary has been persisted.
type SessionCompletedEvent struct {
	SessionID string         `json:"session_id"`
	StartTime time.Time      `json:"start_time"`
	EndTime   time.Time      `json:"end_time"`
	Summary   SessionSummary `json:"summary"`
	Points    int            `json:"points"`
}
