package models

// SessionStats carries the display-formatted statistics of a finished
// session: distance in km, duration as MM:SS or HH:MM:SS, speeds in
// km/h, plus the coarse activity classification of the average speed.
type SessionStats struct {
	Distance string `json:"distance"`
	Duration string `json:"duration"`
	AvgSpeed string `json:"avg_speed"`
	MaxSpeed string `json:"max_speed"`
	Activity string `json:"activity"`
}

// SessionDetail is a stored session together with its formatted stats.
type SessionDetail struct {
	Session Session       `json:"session"`
	Stats   *SessionStats `json:"stats,omitempty"`
}

// AuthResponse is returned by a successful login.
type AuthResponse struct {
	Token     string `json:"token"`
	ExpiresAt int64  `json:"expires_at"`
}
