package usecase

import (
	"context"
	"fmt"

	"github.com/mmcloughlin/geohash"

	"github.com/joglog/joglog/internal/pkg/geostats"
	"github.com/joglog/joglog/internal/pkg/models"
)

// nearbyPrefixPrecision is the geohash precision used to preselect
// candidate sessions. A precision-4 cell is roughly 39x20 km, wide
// enough that cell-plus-neighbors covers any sensible jogging radius;
// the exact radius is enforced with a haversine filter afterwards.
const nearbyPrefixPrecision = 4

// GetSession retrieves a stored session together with its formatted
// display statistics
func (uc *TrackingUC) GetSession(ctx context.Context, sessionID string) (*models.SessionDetail, error) {
	session, err := uc.sessionRepo.GetSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	return &models.SessionDetail{
		Session: *session,
		Stats:   formatStats(session),
	}, nil
}

// ListSessions retrieves all stored sessions, most recent first
func (uc *TrackingUC) ListSessions(ctx context.Context) ([]*models.Session, error) {
	return uc.sessionRepo.ListSessions(ctx)
}

// GetRoute returns the stored route of a session as renderable
// segments, each colored by the destination sample's speed
func (uc *TrackingUC) GetRoute(ctx context.Context, sessionID string) ([]geostats.Segment, error) {
	// Ensure the session exists so a missing ID is distinguishable
	// from a stored session without points
	if _, err := uc.sessionRepo.GetSession(ctx, sessionID); err != nil {
		return nil, err
	}

	route, err := uc.sessionRepo.GetRoute(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	return geostats.Segments(route), nil
}

// ListNearby returns sessions whose start point lies within radiusKm
// of the given coordinates. Candidates are preselected by geohash cell
// and then filtered by exact distance.
func (uc *TrackingUC) ListNearby(ctx context.Context, latitude, longitude, radiusKm float64) ([]*models.Session, error) {
	if radiusKm <= 0 {
		radiusKm = uc.cfg.Tracking.NearbyRadiusKm
	}

	center := geohash.EncodeWithPrecision(latitude, longitude, nearbyPrefixPrecision)
	prefixes := append(geohash.Neighbors(center), center)

	candidates, err := uc.sessionRepo.ListByGeohashPrefixes(ctx, prefixes)
	if err != nil {
		return nil, fmt.Errorf("failed to find nearby sessions: %w", err)
	}

	query := models.LocationSample{Latitude: latitude, Longitude: longitude}
	sessions := make([]*models.Session, 0, len(candidates))
	for _, s := range candidates {
		start := models.LocationSample{Latitude: s.StartLatitude, Longitude: s.StartLongitude}
		if geostats.DistanceMeters(query, start) <= radiusKm*1000 {
			sessions = append(sessions, s)
		}
	}

	return sessions, nil
}

// formatStats renders the stored summary for display. Sessions stopped
// before any statistics were computed have no stats.
func formatStats(session *models.Session) *models.SessionStats {
	if session.Distance == nil || session.AvgSpeed == nil || session.MaxSpeed == nil || session.Duration == nil {
		return nil
	}

	return &models.SessionStats{
		Distance: geostats.FormatDistance(*session.Distance),
		Duration: geostats.FormatDuration(*session.Duration),
		AvgSpeed: geostats.FormatSpeed(*session.AvgSpeed),
		MaxSpeed: geostats.FormatSpeed(*session.MaxSpeed),
		Activity: string(geostats.ActivityType(*session.AvgSpeed)),
	}
}
