package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joglog/joglog/internal/pkg/models"
	"github.com/joglog/joglog/services/tracking"
	"github.com/joglog/joglog/services/tracking/mocks"
)

func floatPtr(v float64) *float64 {
	return &v
}

func TestGetSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSessionRepo := mocks.NewMockSessionRepo(ctrl)
	uc := NewTrackingUC(testConfig(t), mockSessionRepo, mocks.NewMockLiveRepo(ctrl), mocks.NewMockTrackingGW(ctrl))

	stored := &models.Session{
		ID:        "session-1",
		StartTime: time.Now().Add(-time.Hour),
		Distance:  floatPtr(3420.0),
		AvgSpeed:  floatPtr(2.5),
		MaxSpeed:  floatPtr(4.2),
		Duration:  floatPtr(1368.0),
	}
	mockSessionRepo.EXPECT().
		GetSession(gomock.Any(), "session-1").
		Return(stored, nil)

	detail, err := uc.GetSession(context.Background(), "session-1")

	require.NoError(t, err)
	assert.Equal(t, *stored, detail.Session)
	require.NotNil(t, detail.Stats)
	assert.Equal(t, "3.42", detail.Stats.Distance)
	assert.Equal(t, "22:48", detail.Stats.Duration)
	assert.Equal(t, "9.0", detail.Stats.AvgSpeed)
	assert.Equal(t, "15.1", detail.Stats.MaxSpeed)
	assert.Equal(t, "jogging", detail.Stats.Activity)
}

func TestGetSession_NoSummary(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSessionRepo := mocks.NewMockSessionRepo(ctrl)
	uc := NewTrackingUC(testConfig(t), mockSessionRepo, mocks.NewMockLiveRepo(ctrl), mocks.NewMockTrackingGW(ctrl))

	mockSessionRepo.EXPECT().
		GetSession(gomock.Any(), "session-1").
		Return(&models.Session{ID: "session-1", StartTime: time.Now()}, nil)

	detail, err := uc.GetSession(context.Background(), "session-1")

	require.NoError(t, err)
	assert.Nil(t, detail.Stats)
}

func TestGetSession_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSessionRepo := mocks.NewMockSessionRepo(ctrl)
	uc := NewTrackingUC(testConfig(t), mockSessionRepo, mocks.NewMockLiveRepo(ctrl), mocks.NewMockTrackingGW(ctrl))

	mockSessionRepo.EXPECT().
		GetSession(gomock.Any(), "ghost").
		Return(nil, tracking.ErrSessionNotFound)

	detail, err := uc.GetSession(context.Background(), "ghost")

	assert.ErrorIs(t, err, tracking.ErrSessionNotFound)
	assert.Nil(t, detail)
}

func TestListSessions(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSessionRepo := mocks.NewMockSessionRepo(ctrl)
	uc := NewTrackingUC(testConfig(t), mockSessionRepo, mocks.NewMockLiveRepo(ctrl), mocks.NewMockTrackingGW(ctrl))

	stored := []*models.Session{
		{ID: "session-2"},
		{ID: "session-1"},
	}
	mockSessionRepo.EXPECT().ListSessions(gomock.Any()).Return(stored, nil)

	sessions, err := uc.ListSessions(context.Background())

	require.NoError(t, err)
	assert.Equal(t, stored, sessions)
}

func TestGetRoute(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSessionRepo := mocks.NewMockSessionRepo(ctrl)
	uc := NewTrackingUC(testConfig(t), mockSessionRepo, mocks.NewMockLiveRepo(ctrl), mocks.NewMockTrackingGW(ctrl))

	route := []models.LocationSample{
		{Latitude: -6.20, Longitude: 106.84, Timestamp: 1, Speed: floatPtr(0.5)},
		{Latitude: -6.21, Longitude: 106.85, Timestamp: 2, Speed: floatPtr(2.5)},
		{Latitude: -6.22, Longitude: 106.86, Timestamp: 3, Speed: floatPtr(4.5)},
	}
	mockSessionRepo.EXPECT().
		GetSession(gomock.Any(), "session-1").
		Return(&models.Session{ID: "session-1"}, nil)
	mockSessionRepo.EXPECT().
		GetRoute(gomock.Any(), "session-1").
		Return(route, nil)

	segments, err := uc.GetRoute(context.Background(), "session-1")

	require.NoError(t, err)
	require.Len(t, segments, 2)
	assert.Equal(t, route[0], segments[0].From)
	assert.Equal(t, route[1], segments[0].To)
	assert.Equal(t, 2.5, segments[0].Speed)
	assert.Equal(t, 4.5, segments[1].Speed)
}

func TestGetRoute_SessionNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSessionRepo := mocks.NewMockSessionRepo(ctrl)
	uc := NewTrackingUC(testConfig(t), mockSessionRepo, mocks.NewMockLiveRepo(ctrl), mocks.NewMockTrackingGW(ctrl))

	mockSessionRepo.EXPECT().
		GetSession(gomock.Any(), "ghost").
		Return(nil, tracking.ErrSessionNotFound)

	segments, err := uc.GetRoute(context.Background(), "ghost")

	assert.ErrorIs(t, err, tracking.ErrSessionNotFound)
	assert.Nil(t, segments)
}

func TestListNearby(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSessionRepo := mocks.NewMockSessionRepo(ctrl)
	uc := NewTrackingUC(testConfig(t), mockSessionRepo, mocks.NewMockLiveRepo(ctrl), mocks.NewMockTrackingGW(ctrl))

	// Monas, Jakarta
	queryLat, queryLon := -6.1754, 106.8272

	near := &models.Session{ID: "near", StartLatitude: -6.1800, StartLongitude: 106.8300}
	far := &models.Session{ID: "far", StartLatitude: -6.3500, StartLongitude: 106.9500}

	var prefixes []string
	mockSessionRepo.EXPECT().
		ListByGeohashPrefixes(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, p []string) ([]*models.Session, error) {
			prefixes = p
			return []*models.Session{near, far}, nil
		})

	sessions, err := uc.ListNearby(context.Background(), queryLat, queryLon, 5.0)

	require.NoError(t, err)
	require.Len(t, sessions, 1)
	assert.Equal(t, "near", sessions[0].ID)

	// Center cell plus its eight neighbors
	assert.Len(t, prefixes, 9)
	for _, p := range prefixes {
		assert.Len(t, p, nearbyPrefixPrecision)
	}
}

func TestListNearby_DefaultRadius(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSessionRepo := mocks.NewMockSessionRepo(ctrl)
	uc := NewTrackingUC(testConfig(t), mockSessionRepo, mocks.NewMockLiveRepo(ctrl), mocks.NewMockTrackingGW(ctrl))

	// ~7.7 km away from the query point, outside the configured 5 km default
	outside := &models.Session{ID: "outside", StartLatitude: -6.2450, StartLongitude: 106.8272}
	mockSessionRepo.EXPECT().
		ListByGeohashPrefixes(gomock.Any(), gomock.Any()).
		Return([]*models.Session{outside}, nil)

	sessions, err := uc.ListNearby(context.Background(), -6.1754, 106.8272, 0)

	require.NoError(t, err)
	assert.Empty(t, sessions)
}

func TestListNearby_RepoError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSessionRepo := mocks.NewMockSessionRepo(ctrl)
	uc := NewTrackingUC(testConfig(t), mockSessionRepo, mocks.NewMockLiveRepo(ctrl), mocks.NewMockTrackingGW(ctrl))

	mockSessionRepo.EXPECT().
		ListByGeohashPrefixes(gomock.Any(), gomock.Any()).
		Return(nil, errors.New("query failed"))

	sessions, err := uc.ListNearby(context.Background(), -6.1754, 106.8272, 5.0)

	assert.Error(t, err)
	assert.Nil(t, sessions)
}
