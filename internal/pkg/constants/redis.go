package constants

// Redis key formats
const (
	// Tracking Service
	KeySessionState = "session:state:%s" // Format: session:state:{session_id}, hash
	KeySessionRoute = "session:route:%s" // Format: session:route:{session_id}, list of JSON samples
)

// Redis hash fields
const (
	FieldStatus       = "status"
	FieldStartedAt    = "started_at"
	FieldPausedMillis = "paused_ms"
	FieldPausedAt     = "paused_at"
)
