package constants

// NATS Subjects
const (
	// Tracking Service
	SubjectLocationUpdate   = "location.update"
	SubjectSessionCompleted = "session.completed"
)
