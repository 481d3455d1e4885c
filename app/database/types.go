package database

import (
	"time"
)

// Contact lifecycle statuses. New rows always start as StatusNew; the admin
// API may move a contact to any status, including its current one.
const (
	StatusNew     = "new"
	StatusRead    = "read"
	StatusReplied = "replied"
)

// ValidContactStatus reports whether s is one of the allowed statuses
func ValidContactStatus(s string) bool {
	return s == StatusNew || s == StatusRead || s == StatusReplied
}

type Contact struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Subject   string    `json:"subject"`
	Message   string    `json:"message"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Post is a locally stored blog post. Rows are maintained out of band; the
// API only ever reads them.
type Post struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Slug      string    `json:"slug"`
	Content   string    `json:"content,omitempty"`
	Excerpt   string    `json:"excerpt"`
	Published bool      `json:"-"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Session records an issued admin token. Only the SHA-256 hash of the token
// is stored; the plaintext token exists client-side only.
type Session struct {
	ID        int64
	TokenHash string
	CreatedAt time.Time
	ExpiresAt time.Time
}
