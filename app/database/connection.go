package database

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

// DB wraps *sql.DB for the SQLite database
type DB struct {
	*sql.DB
}

// NewConnection opens the SQLite database at the given path. The connection
// pool is capped at a single connection: SQLite serializes writes anyway and
// a single connection avoids SQLITE_BUSY under concurrent requests.
func NewConnection(path string) (*DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database %s: %w", path, err)
	}

	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &DB{db}, nil
}
