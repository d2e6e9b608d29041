package tracking

import (
	"context"

	"github.com/joglog/joglog/internal/pkg/models"
)

// SessionRepo defines the interface for the persistent session store
type SessionRepo interface {
	// SaveSession stores a finished session and its route in one transaction
	SaveSession(ctx context.Context, session *models.Session, route []models.LocationSample) error
	GetSession(ctx context.Context, sessionID string) (*models.Session, error)
	ListSessions(ctx context.Context) ([]*models.Session, error)
	GetRoute(ctx context.Context, sessionID string) ([]models.LocationSample, error)
	// ListByGeohashPrefixes returns sessions whose start point falls in
	// one of the given geohash cells
	ListByGeohashPrefixes(ctx context.Context, prefixes []string) ([]*models.Session, error)
}

// LiveRepo defines the interface for the in-flight session state held
// in Redis while a session is being recorded
type LiveRepo interface {
	CreateLiveSession(ctx context.Context, live *models.LiveSession) error
	GetLiveSession(ctx context.Context, sessionID string) (*models.LiveSession, error)
	UpdateLiveSession(ctx context.Context, live *models.LiveSession) error
	AppendSample(ctx context.Context, sessionID string, sample models.LocationSample) error
	GetRoute(ctx context.Context, sessionID string) ([]models.LocationSample, error)
	DeleteLiveSession(ctx context.Context, sessionID string) error
}
