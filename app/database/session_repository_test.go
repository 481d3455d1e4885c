package database

import (
	"testing"
	"time"
)

func TestSessionLifecycle(t *testing.T) {
	repo := NewSessionRepository(newTestDB(t))

	if err := repo.CreateSession("abc123", time.Now().Add(time.Hour)); err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	ok, err := repo.ValidateSession("abc123")
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if !ok {
		t.Error("Expected stored session to be valid")
	}

	ok, err = repo.ValidateSession("never-issued")
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if ok {
		t.Error("Expected unknown session to be invalid")
	}
}

func TestSessionExpiry(t *testing.T) {
	repo := NewSessionRepository(newTestDB(t))

	if err := repo.CreateSession("expired", time.Now().Add(-time.Minute)); err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	ok, err := repo.ValidateSession("expired")
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if ok {
		t.Error("Expected expired session to be invalid")
	}

	// Expired row was deleted on validation
	count, err := repo.GetActiveSessionCount()
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if count != 0 {
		t.Errorf("Expected 0 active sessions, got: %d", count)
	}
}

func TestGetActiveSessionCount(t *testing.T) {
	repo := NewSessionRepository(newTestDB(t))

	if err := repo.CreateSession("live-1", time.Now().Add(time.Hour)); err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if err := repo.CreateSession("live-2", time.Now().Add(time.Hour)); err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if err := repo.CreateSession("dead", time.Now().Add(-time.Hour)); err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}

	count, err := repo.GetActiveSessionCount()
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if count != 2 {
		t.Errorf("Expected 2 active sessions, got: %d", count)
	}
}
