package database

import (
	"database/sql"
	"fmt"
	"time"
)

// sessionRepository handles database operations for issued admin tokens
type sessionRepository struct {
	db *DB
}

// NewSessionRepository creates a new session repository
func NewSessionRepository(db *DB) SessionRepository {
	return &sessionRepository{db: db}
}

// CreateSession records the hash of a freshly issued token
func (r *sessionRepository) CreateSession(tokenHash string, expiresAt time.Time) error {
	_, err := r.db.Exec(`
		INSERT INTO sessions (token_hash, created_at, expires_at)
		VALUES (?, ?, ?)
	`, tokenHash, time.Now().UTC(), expiresAt.UTC())
	if err != nil {
		return fmt.Errorf("failed to create session: %w", err)
	}
	return nil
}

// ValidateSession reports whether a session with the given token hash exists
// and has not expired. Expired rows are deleted as they are encountered.
func (r *sessionRepository) ValidateSession(tokenHash string) (bool, error) {
	var expiresAt time.Time
	err := r.db.QueryRow(`
		SELECT expires_at FROM sessions WHERE token_hash = ?
	`, tokenHash).Scan(&expiresAt)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to look up session: %w", err)
	}

	if time.Now().After(expiresAt) {
		if _, err := r.db.Exec(`DELETE FROM sessions WHERE token_hash = ?`, tokenHash); err != nil {
			return false, fmt.Errorf("failed to delete expired session: %w", err)
		}
		return false, nil
	}

	return true, nil
}

// GetActiveSessionCount returns the number of unexpired sessions
func (r *sessionRepository) GetActiveSessionCount() (int, error) {
	var count int
	err := r.db.QueryRow(`
		SELECT COUNT(*) FROM sessions WHERE expires_at > ?
	`, time.Now().UTC()).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to get session count: %w", err)
	}
	return count, nil
}
