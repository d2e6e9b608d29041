package database

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"

	"github.com/joglog/joglog/internal/pkg/models"
)

// SQLiteClient represents the local SQLite database handle. It is
// constructed once at startup and injected into the repositories that
// need it; nothing holds a process-wide database singleton.
type SQLiteClient struct {
	db *sqlx.DB
}

// NewSQLiteClient opens (and creates if necessary) the local database file
func NewSQLiteClient(config models.DatabaseConfig) (*SQLiteClient, error) {
	// Create the data directory if it doesn't exist
	dir := filepath.Dir(config.Path)
	if dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	dsn := fmt.Sprintf("file:%s?_busy_timeout=%d&_foreign_keys=on", config.Path, config.BusyTimeout)

	db, err := sqlx.Connect("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite database: %w", err)
	}

	// SQLite serializes writers; keep the pool small
	if config.MaxOpenConns > 0 {
		db.SetMaxOpenConns(config.MaxOpenConns)
	}

	return &SQLiteClient{db: db}, nil
}

// GetDB returns the underlying sqlx DB instance
func (c *SQLiteClient) GetDB() *sqlx.DB {
	return c.db
}

// Close closes the database handle
func (c *SQLiteClient) Close() error {
	return c.db.Close()
}
