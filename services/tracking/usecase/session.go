package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/mmcloughlin/geohash"
	"golang.org/x/crypto/bcrypt"

	"github.com/joglog/joglog/internal/pkg/geostats"
	jwtpkg "github.com/joglog/joglog/internal/pkg/jwt"
	"github.com/joglog/joglog/internal/pkg/logger"
	"github.com/joglog/joglog/internal/pkg/models"
	"github.com/joglog/joglog/services/tracking"
)

// TrackingUC implements the tracking.TrackingUC interface
type TrackingUC struct {
	cfg         *models.Config
	sessionRepo tracking.SessionRepo
	liveRepo    tracking.LiveRepo
	gw          tracking.TrackingGW
}

// NewTrackingUC creates a new tracking use case
func NewTrackingUC(
	cfg *models.Config,
	sessionRepo tracking.SessionRepo,
	liveRepo tracking.LiveRepo,
	gw tracking.TrackingGW,
) *TrackingUC {
	return &TrackingUC{
		cfg:         cfg,
		sessionRepo: sessionRepo,
		liveRepo:    liveRepo,
		gw:          gw,
	}
}

// Login verifies the configured account credentials and issues a JWT
func (uc *TrackingUC) Login(ctx context.Context, username, password string) (*models.AuthResponse, error) {
	if username != uc.cfg.Auth.Username {
		return nil, tracking.ErrInvalidCredentials
	}

	err := bcrypt.CompareHashAndPassword([]byte(uc.cfg.Auth.PasswordHash), []byte(password))
	if err != nil {
		return nil, tracking.ErrInvalidCredentials
	}

	token, expiresAt, err := jwtpkg.GenerateToken(username, uc.cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	return &models.AuthResponse{
		Token:     token,
		ExpiresAt: expiresAt,
	}, nil
}

// StartSession begins a new tracking session
func (uc *TrackingUC) StartSession(ctx context.Context) (*models.Session, error) {
	now := time.Now()

	live := &models.LiveSession{
		ID:        uuid.New().String(),
		State:     models.SessionStateActive,
		StartedAt: now.UnixMilli(),
	}

	if err := uc.liveRepo.CreateLiveSession(ctx, live); err != nil {
		return nil, err
	}

	logger.Info("session started", logger.String("session_id", live.ID))

	return &models.Session{
		ID:        live.ID,
		StartTime: now,
	}, nil
}

// AddSample appends a location sample to an active session's route.
// Samples arriving while the session is paused are rejected.
func (uc *TrackingUC) AddSample(ctx context.Context, update *models.LocationUpdate) error {
	if update == nil || update.SessionID == "" {
		return fmt.Errorf("location update requires a session id")
	}

	live, err := uc.liveRepo.GetLiveSession(ctx, update.SessionID)
	if err != nil {
		return err
	}

	if live.State != models.SessionStateActive {
		return tracking.ErrSessionNotActive
	}

	sample := update.Sample
	if sample.Timestamp == 0 {
		sample.Timestamp = time.Now().UnixMilli()
	}

	return uc.liveRepo.AppendSample(ctx, update.SessionID, sample)
}

// PauseSession suspends an active session
func (uc *TrackingUC) PauseSession(ctx context.Context, sessionID string) error {
	live, err := uc.liveRepo.GetLiveSession(ctx, sessionID)
	if err != nil {
		return err
	}

	if live.State != models.SessionStateActive {
		return tracking.ErrSessionNotActive
	}

	live.State = models.SessionStatePaused
	live.PausedAt = time.Now().UnixMilli()

	return uc.liveRepo.UpdateLiveSession(ctx, live)
}

// ResumeSession reactivates a paused session, accumulating the time
// spent paused so it is excluded from the session duration
func (uc *TrackingUC) ResumeSession(ctx context.Context, sessionID string) error {
	live, err := uc.liveRepo.GetLiveSession(ctx, sessionID)
	if err != nil {
		return err
	}

	if live.State != models.SessionStatePaused {
		return tracking.ErrSessionNotPaused
	}

	live.PausedMillis += time.Now().UnixMilli() - live.PausedAt
	live.PausedAt = 0
	live.State = models.SessionStateActive

	return uc.liveRepo.UpdateLiveSession(ctx, live)
}

// StopSession finishes a session: it drains the live route, computes
// the summary statistics, persists the session with its points, and
// publishes a session completed event
func (uc *TrackingUC) StopSession(ctx context.Context, sessionID string) (*models.Session, error) {
	live, err := uc.liveRepo.GetLiveSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	route, err := uc.liveRepo.GetRoute(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	endMillis := now.UnixMilli()

	// Paused time is excluded from the duration. A session stopped
	// while paused counts the final pause as well.
	pausedMillis := live.PausedMillis
	if live.State == models.SessionStatePaused && live.PausedAt > 0 {
		pausedMillis += endMillis - live.PausedAt
	}
	durationSec := float64(endMillis-live.StartedAt-pausedMillis) / 1000.0

	summary := geostats.Summarize(route, durationSec)

	session := &models.Session{
		ID:        sessionID,
		StartTime: time.UnixMilli(live.StartedAt),
		EndTime:   &now,
		Distance:  &summary.Distance,
		AvgSpeed:  &summary.AvgSpeed,
		MaxSpeed:  &summary.MaxSpeed,
		Duration:  &summary.Duration,
	}

	if len(route) > 0 {
		session.StartLatitude = route[0].Latitude
		session.StartLongitude = route[0].Longitude
		session.StartGeohash = geohash.EncodeWithPrecision(
			route[0].Latitude, route[0].Longitude, uc.cfg.Tracking.GeohashPrecision)
	}

	if err := uc.sessionRepo.SaveSession(ctx, session, route); err != nil {
		return nil, err
	}

	// The event is best effort: a failed publish must not lose the
	// already persisted session
	event := &models.SessionCompletedEvent{
		SessionID: sessionID,
		StartTime: session.StartTime,
		EndTime:   now,
		Summary:   summary,
		Points:    len(route),
	}
	if err := uc.gw.PublishSessionCompleted(ctx, event); err != nil {
		logger.Warn("failed to publish session completed event",
			logger.String("session_id", sessionID),
			logger.Err(err))
	}

	if err := uc.liveRepo.DeleteLiveSession(ctx, sessionID); err != nil {
		logger.Warn("failed to delete live session keys",
			logger.String("session_id", sessionID),
			logger.Err(err))
	}

	logger.Info("session stopped",
		logger.String("session_id", sessionID),
		logger.Float64("distance_m", summary.Distance),
		logger.Float64("duration_s", summary.Duration),
		logger.Int("points", len(route)))

	return session, nil
}
