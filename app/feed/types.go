package feed

import (
	"time"
)

// Post is a summary of one external blog article, shaped for the
// presentation layer
type Post struct {
	Title        string    `json:"title"`
	ExternalURL  string    `json:"external_url"`
	Excerpt      string    `json:"excerpt"`
	ThumbnailURL *string   `json:"thumbnail_url"`
	Source       string    `json:"source"`
	CreatedAt    time.Time `json:"created_at"`
}
