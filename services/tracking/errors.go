package tracking

import "errors"

var (
	// ErrSessionNotFound is returned when no live or stored session
	// exists for the given ID
	ErrSessionNotFound = errors.New("session not found")

	// ErrSessionNotActive is returned when samples are pushed to, or a
	// pause is requested for, a session that is not currently recording
	ErrSessionNotActive = errors.New("session is not active")

	// ErrSessionNotPaused is returned when resuming a session that is
	// not paused
	ErrSessionNotPaused = errors.New("session is not paused")

	// ErrInvalidCredentials is returned on a failed login
	ErrInvalidCredentials = errors.New("invalid credentials")
)
