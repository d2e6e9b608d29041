package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/joglog/joglog/internal/pkg/models"
	"github.com/joglog/joglog/services/tracking"
)

const schema = `
CREATE TABLE IF NOT EXISTS sessions (
	id              TEXT PRIMARY KEY,
	start_time      TIMESTAMP NOT NULL,
	end_time        TIMESTAMP,
	distance        REAL,
	avg_speed       REAL,
	max_speed       REAL,
	duration        REAL,
	start_latitude  REAL NOT NULL DEFAULT 0,
	start_longitude REAL NOT NULL DEFAULT 0,
	start_geohash   TEXT NOT NULL DEFAULT ''
);

CREATE TABLE IF NOT EXISTS points (
	id         INTEGER PRIMARY KEY AUTOINCREMENT,
	session_id TEXT NOT NULL REFERENCES sessions(id) ON DELETE CASCADE,
	latitude   REAL NOT NULL,
	longitude  REAL NOT NULL,
	timestamp  INTEGER NOT NULL,
	speed      REAL
);

CREATE INDEX IF NOT EXISTS idx_points_session ON points(session_id);
CREATE INDEX IF NOT EXISTS idx_sessions_geohash ON sessions(start_geohash);
`

// SessionRepo implements the tracking.SessionRepo interface on SQLite
type SessionRepo struct {
	db  *sqlx.DB
	cfg *models.Config
}

// NewSessionRepo creates a new persistent session repository
func NewSessionRepo(cfg *models.Config, db *sqlx.DB) *SessionRepo {
	return &SessionRepo{
		db:  db,
		cfg: cfg,
	}
}

// InitSchema creates the sessions and points tables if they don't exist
func (r *SessionRepo) InitSchema(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("failed to initialize schema: %w", err)
	}
	return nil
}

// pointRow is the points table shape of a location sample
type pointRow struct {
	SessionID string   `db:"session_id"`
	Latitude  float64  `db:"latitude"`
	Longitude float64  `db:"longitude"`
	Timestamp int64    `db:"timestamp"`
	Speed     *float64 `db:"speed"`
}

// SaveSession stores a finished session and its route in one transaction
func (r *SessionRepo) SaveSession(ctx context.Context, session *models.Session, route []models.LocationSample) error {
	// Begin transaction
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	// Insert session
	query := `
		INSERT INTO sessions (id, start_time, end_time, distance, avg_speed, max_speed,
			duration, start_latitude, start_longitude, start_geohash
		) VALUES (:id, :start_time, :end_time, :distance, :avg_speed, :max_speed,
			:duration, :start_latitude, :start_longitude, :start_geohash)
	`
	_, err = tx.NamedExecContext(ctx, query, session)
	if err != nil {
		return fmt.Errorf("failed to insert session: %w", err)
	}

	// Insert route points
	if len(route) > 0 {
		rows := make([]pointRow, 0, len(route))
		for _, s := range route {
			rows = append(rows, pointRow{
				SessionID: session.ID,
				Latitude:  s.Latitude,
				Longitude: s.Longitude,
				Timestamp: s.Timestamp,
				Speed:     s.Speed,
			})
		}

		pointQuery := `
			INSERT INTO points (session_id, latitude, longitude, timestamp, speed)
			VALUES (:session_id, :latitude, :longitude, :timestamp, :speed)
		`
		_, err = tx.NamedExecContext(ctx, pointQuery, rows)
		if err != nil {
			return fmt.Errorf("failed to insert points: %w", err)
		}
	}

	// Commit transaction
	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// GetSession retrieves a stored session by ID
func (r *SessionRepo) GetSession(ctx context.Context, sessionID string) (*models.Session, error) {
	query := `
		SELECT id, start_time, end_time, distance, avg_speed, max_speed,
			duration, start_latitude, start_longitude, start_geohash
		FROM sessions
		WHERE id = ?
	`

	var session models.Session
	err := r.db.GetContext(ctx, &session, query, sessionID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, tracking.ErrSessionNotFound
		}
		return nil, fmt.Errorf("failed to get session: %w", err)
	}

	return &session, nil
}

// ListSessions retrieves all stored sessions, most recent first
func (r *SessionRepo) ListSessions(ctx context.Context) ([]*models.Session, error) {
	query := `
		SELECT id, start_time, end_time, distance, avg_speed, max_speed,
			duration, start_latitude, start_longitude, start_geohash
		FROM sessions
		ORDER BY start_time DESC
	`

	sessions := []*models.Session{}
	err := r.db.SelectContext(ctx, &sessions, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list sessions: %w", err)
	}

	return sessions, nil
}

// GetRoute retrieves the stored route of a session in insertion order.
// The route order is canonical and timestamps may not be monotonic, so
// rows are never re-sorted by timestamp.
func (r *SessionRepo) GetRoute(ctx context.Context, sessionID string) ([]models.LocationSample, error) {
	query := `
		SELECT latitude, longitude, timestamp, speed
		FROM points
		WHERE session_id = ?
		ORDER BY id ASC
	`

	route := []models.LocationSample{}
	err := r.db.SelectContext(ctx, &route, query, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to get route: %w", err)
	}

	return route, nil
}

// ListByGeohashPrefixes returns sessions whose start geohash falls in
// one of the given cells
func (r *SessionRepo) ListByGeohashPrefixes(ctx context.Context, prefixes []string) ([]*models.Session, error) {
	if len(prefixes) == 0 {
		return []*models.Session{}, nil
	}

	query := fmt.Sprintf(`
		SELECT id, start_time, end_time, distance, avg_speed, max_speed,
			duration, start_latitude, start_longitude, start_geohash
		FROM sessions
		WHERE substr(start_geohash, 1, %d) IN (?)
		ORDER BY start_time DESC
	`, len(prefixes[0]))

	query, args, err := sqlx.In(query, prefixes)
	if err != nil {
		return nil, fmt.Errorf("failed to build geohash query: %w", err)
	}

	sessions := []*models.Session{}
	err = r.db.SelectContext(ctx, &sessions, r.db.Rebind(query), args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list sessions by geohash: %w", err)
	}

	return sessions, nil
}
