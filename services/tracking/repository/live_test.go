package repository

import (
	"context"
	"fmt"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joglog/joglog/internal/pkg/constants"
	"github.com/joglog/joglog/internal/pkg/database"
	"github.com/joglog/joglog/internal/pkg/models"
	"github.com/joglog/joglog/services/tracking"
)

func setupLiveRepo(t *testing.T) (*LiveRepo, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	cfg := &models.Config{
		Tracking: models.TrackingConfig{LiveTTLHours: 24},
	}
	return NewLiveRepo(cfg, database.NewRedisClientFromConn(client)), mr
}

func TestLiveSessionRoundTrip(t *testing.T) {
	repo, mr := setupLiveRepo(t)
	ctx := context.Background()

	live := &models.LiveSession{
		ID:           "session-1",
		State:        models.SessionStateActive,
		StartedAt:    1700000000000,
		PausedMillis: 0,
		PausedAt:     0,
	}

	require.NoError(t, repo.CreateLiveSession(ctx, live))

	got, err := repo.GetLiveSession(ctx, "session-1")
	require.NoError(t, err)
	assert.Equal(t, live, got)

	// Abandoned sessions must expire
	stateKey := fmt.Sprintf(constants.KeySessionState, "session-1")
	assert.Greater(t, mr.TTL(stateKey).Hours(), 23.0)
}

func TestGetLiveSession_NotFound(t *testing.T) {
	repo, _ := setupLiveRepo(t)

	got, err := repo.GetLiveSession(context.Background(), "ghost")

	assert.ErrorIs(t, err, tracking.ErrSessionNotFound)
	assert.Nil(t, got)
}

func TestGetLiveSession_CorruptState(t *testing.T) {
	repo, mr := setupLiveRepo(t)

	stateKey := fmt.Sprintf(constants.KeySessionState, "session-1")
	mr.HSet(stateKey, constants.FieldStatus, "ACTIVE")
	mr.HSet(stateKey, constants.FieldStartedAt, "not-a-number")

	got, err := repo.GetLiveSession(context.Background(), "session-1")

	assert.Error(t, err)
	assert.Nil(t, got)
}

func TestUpdateLiveSession(t *testing.T) {
	repo, _ := setupLiveRepo(t)
	ctx := context.Background()

	live := &models.LiveSession{
		ID:        "session-1",
		State:     models.SessionStateActive,
		StartedAt: 1700000000000,
	}
	require.NoError(t, repo.CreateLiveSession(ctx, live))

	live.State = models.SessionStatePaused
	live.PausedAt = 1700000060000
	require.NoError(t, repo.UpdateLiveSession(ctx, live))

	got, err := repo.GetLiveSession(ctx, "session-1")
	require.NoError(t, err)
	assert.Equal(t, models.SessionStatePaused, got.State)
	assert.Equal(t, int64(1700000060000), got.PausedAt)
}

func TestAppendSampleAndGetRoute(t *testing.T) {
	repo, mr := setupLiveRepo(t)
	ctx := context.Background()

	speed := 2.5
	samples := []models.LocationSample{
		{Latitude: -6.2088, Longitude: 106.8456, Timestamp: 1, Speed: &speed},
		{Latitude: -6.2100, Longitude: 106.8470, Timestamp: 2, Speed: nil},
		{Latitude: -6.2110, Longitude: 106.8480, Timestamp: 3, Speed: &speed},
	}
	for _, s := range samples {
		require.NoError(t, repo.AppendSample(ctx, "session-1", s))
	}

	route, err := repo.GetRoute(ctx, "session-1")

	require.NoError(t, err)
	assert.Equal(t, samples, route)

	routeKey := fmt.Sprintf(constants.KeySessionRoute, "session-1")
	assert.Greater(t, mr.TTL(routeKey).Hours(), 23.0)
}

func TestGetRoute_EmptyLiveRoute(t *testing.T) {
	repo, _ := setupLiveRepo(t)

	route, err := repo.GetRoute(context.Background(), "session-1")

	require.NoError(t, err)
	assert.Empty(t, route)
}

func TestDeleteLiveSession(t *testing.T) {
	repo, mr := setupLiveRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.CreateLiveSession(ctx, &models.LiveSession{
		ID:        "session-1",
		State:     models.SessionStateActive,
		StartedAt: 1700000000000,
	}))
	require.NoError(t, repo.AppendSample(ctx, "session-1", models.LocationSample{Latitude: -6.2, Longitude: 106.8, Timestamp: 1}))

	require.NoError(t, repo.DeleteLiveSession(ctx, "session-1"))

	assert.False(t, mr.Exists(fmt.Sprintf(constants.KeySessionState, "session-1")))
	assert.False(t, mr.Exists(fmt.Sprintf(constants.KeySessionRoute, "session-1")))

	_, err := repo.GetLiveSession(ctx, "session-1")
	assert.ErrorIs(t, err, tracking.ErrSessionNotFound)
}
