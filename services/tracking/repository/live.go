package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/joglog/joglog/internal/pkg/constants"
	"github.com/joglog/joglog/internal/pkg/database"
	"github.com/joglog/joglog/internal/pkg/models"
	"github.com/joglog/joglog/services/tracking"
)

// LiveRepo implements the tracking.LiveRepo interface on Redis. The
// live keys carry a TTL so a session that is never stopped eventually
// expires instead of accumulating forever.
type LiveRepo struct {
	redisClient *database.RedisClient
	ttl         time.Duration
}

// NewLiveRepo creates a new live session repository
func NewLiveRepo(cfg *models.Config, redisClient *database.RedisClient) *LiveRepo {
	ttlHours := cfg.Tracking.LiveTTLHours
	if ttlHours <= 0 {
		ttlHours = 24
	}

	return &LiveRepo{
		redisClient: redisClient,
		ttl:         time.Duration(ttlHours) * time.Hour,
	}
}

// CreateLiveSession stores the initial state of a freshly started session
func (r *LiveRepo) CreateLiveSession(ctx context.Context, live *models.LiveSession) error {
	if err := r.writeState(ctx, live); err != nil {
		return fmt.Errorf("failed to create live session: %w", err)
	}
	return nil
}

// GetLiveSession retrieves the in-flight state of a session
func (r *LiveRepo) GetLiveSession(ctx context.Context, sessionID string) (*models.LiveSession, error) {
	stateKey := fmt.Sprintf(constants.KeySessionState, sessionID)

	values, err := r.redisClient.HGetAll(ctx, stateKey)
	if err != nil {
		return nil, fmt.Errorf("failed to get live session: %w", err)
	}
	if len(values) == 0 {
		return nil, tracking.ErrSessionNotFound
	}

	startedAt, err := strconv.ParseInt(values[constants.FieldStartedAt], 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid started_at value: %w", err)
	}

	pausedMillis, _ := strconv.ParseInt(values[constants.FieldPausedMillis], 10, 64)
	pausedAt, _ := strconv.ParseInt(values[constants.FieldPausedAt], 10, 64)

	return &models.LiveSession{
		ID:           sessionID,
		State:        models.SessionState(values[constants.FieldStatus]),
		StartedAt:    startedAt,
		PausedMillis: pausedMillis,
		PausedAt:     pausedAt,
	}, nil
}

// UpdateLiveSession overwrites the in-flight state of a session
func (r *LiveRepo) UpdateLiveSession(ctx context.Context, live *models.LiveSession) error {
	if err := r.writeState(ctx, live); err != nil {
		return fmt.Errorf("failed to update live session: %w", err)
	}
	return nil
}

// AppendSample appends a location sample to the live route
func (r *LiveRepo) AppendSample(ctx context.Context, sessionID string, sample models.LocationSample) error {
	routeKey := fmt.Sprintf(constants.KeySessionRoute, sessionID)

	data, err := json.Marshal(sample)
	if err != nil {
		return fmt.Errorf("failed to marshal sample: %w", err)
	}

	if err := r.redisClient.RPush(ctx, routeKey, data); err != nil {
		return fmt.Errorf("failed to append sample: %w", err)
	}

	// Refresh the TTL alongside the data
	if err := r.redisClient.Expire(ctx, routeKey, r.ttl); err != nil {
		return fmt.Errorf("failed to set route TTL: %w", err)
	}

	return nil
}

// GetRoute returns the accumulated live route in insertion order
func (r *LiveRepo) GetRoute(ctx context.Context, sessionID string) ([]models.LocationSample, error) {
	routeKey := fmt.Sprintf(constants.KeySessionRoute, sessionID)

	values, err := r.redisClient.LRange(ctx, routeKey, 0, -1)
	if err != nil {
		return nil, fmt.Errorf("failed to get live route: %w", err)
	}

	route := make([]models.LocationSample, 0, len(values))
	for _, v := range values {
		var sample models.LocationSample
		if err := json.Unmarshal([]byte(v), &sample); err != nil {
			return nil, fmt.Errorf("failed to unmarshal sample: %w", err)
		}
		route = append(route, sample)
	}

	return route, nil
}

// DeleteLiveSession removes all live keys of a session
func (r *LiveRepo) DeleteLiveSession(ctx context.Context, sessionID string) error {
	stateKey := fmt.Sprintf(constants.KeySessionState, sessionID)
	routeKey := fmt.Sprintf(constants.KeySessionRoute, sessionID)

	if err := r.redisClient.Delete(ctx, stateKey, routeKey); err != nil {
		return fmt.Errorf("failed to delete live session: %w", err)
	}
	return nil
}

func (r *LiveRepo) writeState(ctx context.Context, live *models.LiveSession) error {
	stateKey := fmt.Sprintf(constants.KeySessionState, live.ID)

	state := map[string]interface{}{
		constants.FieldStatus:       string(live.State),
		constants.FieldStartedAt:    strconv.FormatInt(live.StartedAt, 10),
		constants.FieldPausedMillis: strconv.FormatInt(live.PausedMillis, 10),
		constants.FieldPausedAt:     strconv.FormatInt(live.PausedAt, 10),
	}

	if err := r.redisClient.HSet(ctx, stateKey, state); err != nil {
		return err
	}

	return r.redisClient.Expire(ctx, stateKey, r.ttl)
}
