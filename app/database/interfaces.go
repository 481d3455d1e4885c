package database

import (
	"time"
)

type ContactRepository interface {
	CreateContact(name, email, subject, message string) (*Contact, error)
	GetAllContacts() ([]Contact, error)
	UpdateContactStatus(id int64, status string) (bool, error)
	GetContactCount() (int, error)
}

type PostRepository interface {
	GetPublishedPosts() ([]Post, error)
	GetPostBySlug(slug string) (*Post, error)
}

type SessionRepository interface {
	CreateSession(tokenHash string, expiresAt time.Time) error
	ValidateSession(tokenHash string) (bool, error)
	GetActiveSessionCount() (int, error)
}
