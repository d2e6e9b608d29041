package tracking

import (
	"context"

	"github.com/joglog/joglog/internal/pkg/geostats"
	"github.com/joglog/joglog/internal/pkg/models"
)

// TrackingUC defines the interface for session tracking business logic
type TrackingUC interface {
	// Authentication
	Login(ctx context.Context, username, password string) (*models.AuthResponse, error)

	// Session lifecycle
	StartSession(ctx context.Context) (*models.Session, error)
	AddSample(ctx context.Context, update *models.LocationUpdate) error
	PauseSession(ctx context.Context, sessionID string) error
	ResumeSession(ctx context.Context, sessionID string) error
	StopSession(ctx context.Context, sessionID string) (*models.Session, error)

	// Session queries
	GetSession(ctx context.Context, sessionID string) (*models.SessionDetail, error)
	ListSessions(ctx context.Context) ([]*models.Session, error)
	GetRoute(ctx context.Context, sessionID string) ([]geostats.Segment, error)
	ListNearby(ctx context.Context, latitude, longitude, radiusKm float64) ([]*models.Session, error)
}
