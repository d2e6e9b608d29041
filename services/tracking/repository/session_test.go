package repository

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joglog/joglog/internal/pkg/models"
	"github.com/joglog/joglog/services/tracking"
)

var sessionColumns = []string{
	"id", "start_time", "end_time", "distance", "avg_speed", "max_speed",
	"duration", "start_latitude", "start_longitude", "start_geohash",
}

func setupSessionRepo(t *testing.T) (*SessionRepo, sqlmock.Sqlmock) {
	t.Helper()

	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { mockDB.Close() })

	db := sqlx.NewDb(mockDB, "sqlmock")
	return NewSessionRepo(&models.Config{}, db), mock
}

func TestSaveSession(t *testing.T) {
	repo, mock := setupSessionRepo(t)

	speed := 2.5
	distance := 3420.0
	now := time.Now()
	session := &models.Session{
		ID:             "session-1",
		StartTime:      now.Add(-time.Hour),
		EndTime:        &now,
		Distance:       &distance,
		AvgSpeed:       &speed,
		MaxSpeed:       &speed,
		Duration:       &distance,
		StartLatitude:  -6.2088,
		StartLongitude: 106.8456,
		StartGeohash:   "qqguyu",
	}
	route := []models.LocationSample{
		{Latitude: -6.2088, Longitude: 106.8456, Timestamp: 1, Speed: &speed},
		{Latitude: -6.2100, Longitude: 106.8470, Timestamp: 2, Speed: nil},
	}

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO sessions").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec("INSERT INTO points").
		WillReturnResult(sqlmock.NewResult(2, 2))
	mock.ExpectCommit()

	err := repo.SaveSession(context.Background(), session, route)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSaveSession_EmptyRoute(t *testing.T) {
	repo, mock := setupSessionRepo(t)

	session := &models.Session{
		ID:        "session-1",
		StartTime: time.Now(),
	}

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO sessions").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	err := repo.SaveSession(context.Background(), session, nil)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSaveSession_InsertError(t *testing.T) {
	repo, mock := setupSessionRepo(t)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO sessions").
		WillReturnError(sql.ErrConnDone)
	mock.ExpectRollback()

	err := repo.SaveSession(context.Background(), &models.Session{ID: "session-1", StartTime: time.Now()}, nil)

	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetSession(t *testing.T) {
	repo, mock := setupSessionRepo(t)

	start := time.Now().Add(-time.Hour)
	end := time.Now()
	rows := sqlmock.NewRows(sessionColumns).
		AddRow("session-1", start, end, 3420.0, 2.5, 4.2, 1368.0, -6.2088, 106.8456, "qqguyu")

	mock.ExpectQuery("SELECT (.+) FROM sessions WHERE id = \\?").
		WithArgs("session-1").
		WillReturnRows(rows)

	session, err := repo.GetSession(context.Background(), "session-1")

	require.NoError(t, err)
	assert.Equal(t, "session-1", session.ID)
	require.NotNil(t, session.Distance)
	assert.Equal(t, 3420.0, *session.Distance)
	assert.Equal(t, "qqguyu", session.StartGeohash)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetSession_NotFound(t *testing.T) {
	repo, mock := setupSessionRepo(t)

	mock.ExpectQuery("SELECT (.+) FROM sessions WHERE id = \\?").
		WithArgs("ghost").
		WillReturnError(sql.ErrNoRows)

	session, err := repo.GetSession(context.Background(), "ghost")

	assert.ErrorIs(t, err, tracking.ErrSessionNotFound)
	assert.Nil(t, session)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListSessions(t *testing.T) {
	repo, mock := setupSessionRepo(t)

	rows := sqlmock.NewRows(sessionColumns).
		AddRow("session-2", time.Now(), nil, nil, nil, nil, nil, 0.0, 0.0, "").
		AddRow("session-1", time.Now().Add(-time.Hour), nil, nil, nil, nil, nil, 0.0, 0.0, "")

	mock.ExpectQuery("SELECT (.+) FROM sessions ORDER BY start_time DESC").
		WillReturnRows(rows)

	sessions, err := repo.ListSessions(context.Background())

	require.NoError(t, err)
	require.Len(t, sessions, 2)
	assert.Equal(t, "session-2", sessions[0].ID)
	assert.Equal(t, "session-1", sessions[1].ID)
	assert.Nil(t, sessions[0].Distance)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetRoute(t *testing.T) {
	repo, mock := setupSessionRepo(t)

	rows := sqlmock.NewRows([]string{"latitude", "longitude", "timestamp", "speed"}).
		AddRow(-6.2088, 106.8456, int64(1700000000000), 2.5).
		AddRow(-6.2100, 106.8470, int64(1700000005000), nil)

	mock.ExpectQuery("SELECT (.+) FROM points WHERE session_id = \\? ORDER BY id ASC").
		WithArgs("session-1").
		WillReturnRows(rows)

	route, err := repo.GetRoute(context.Background(), "session-1")

	require.NoError(t, err)
	require.Len(t, route, 2)
	require.NotNil(t, route[0].Speed)
	assert.Equal(t, 2.5, *route[0].Speed)
	assert.Nil(t, route[1].Speed)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetRoute_KeepsInsertionOrder(t *testing.T) {
	repo, mock := setupSessionRepo(t)

	// A device clock can jump backwards mid-run; the stored order is
	// canonical and must not be re-sorted by timestamp.
	rows := sqlmock.NewRows([]string{"latitude", "longitude", "timestamp", "speed"}).
		AddRow(-6.2088, 106.8456, int64(1700000010000), nil).
		AddRow(-6.2100, 106.8470, int64(1700000005000), nil).
		AddRow(-6.2110, 106.8480, int64(1700000020000), nil)

	mock.ExpectQuery("SELECT (.+) FROM points WHERE session_id = \\? ORDER BY id ASC").
		WithArgs("session-1").
		WillReturnRows(rows)

	route, err := repo.GetRoute(context.Background(), "session-1")

	require.NoError(t, err)
	require.Len(t, route, 3)
	assert.Equal(t, int64(1700000010000), route[0].Timestamp)
	assert.Equal(t, int64(1700000005000), route[1].Timestamp)
	assert.Equal(t, int64(1700000020000), route[2].Timestamp)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetRoute_Empty(t *testing.T) {
	repo, mock := setupSessionRepo(t)

	mock.ExpectQuery("SELECT (.+) FROM points WHERE session_id = \\?").
		WithArgs("session-1").
		WillReturnRows(sqlmock.NewRows([]string{"latitude", "longitude", "timestamp", "speed"}))

	route, err := repo.GetRoute(context.Background(), "session-1")

	require.NoError(t, err)
	assert.Empty(t, route)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListByGeohashPrefixes(t *testing.T) {
	repo, mock := setupSessionRepo(t)

	rows := sqlmock.NewRows(sessionColumns).
		AddRow("session-1", time.Now(), nil, nil, nil, nil, nil, -6.2088, 106.8456, "qqguyu")

	mock.ExpectQuery("substr\\(start_geohash, 1, 4\\) IN").
		WithArgs("qqgu", "qqgv", "qqgs").
		WillReturnRows(rows)

	sessions, err := repo.ListByGeohashPrefixes(context.Background(), []string{"qqgu", "qqgv", "qqgs"})

	require.NoError(t, err)
	require.Len(t, sessions, 1)
	assert.Equal(t, "session-1", sessions[0].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListByGeohashPrefixes_NoPrefixes(t *testing.T) {
	repo, mock := setupSessionRepo(t)

	sessions, err := repo.ListByGeohashPrefixes(context.Background(), nil)

	require.NoError(t, err)
	assert.Empty(t, sessions)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestInitSchema(t *testing.T) {
	repo, mock := setupSessionRepo(t)

	mock.ExpectExec("CREATE TABLE IF NOT EXISTS sessions").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.InitSchema(context.Background())

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
