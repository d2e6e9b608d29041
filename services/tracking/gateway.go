package tracking

import (
	"context"

	"github.com/joglog/joglog/internal/pkg/models"
)

// TrackingGW defines the interface for tracking gateway operations
type TrackingGW interface {
	// PublishSessionCompleted publishes a session completed event to NATS
	PublishSessionCompleted(ctx context.Context, event *models.SessionCompletedEvent) error
}
