package api

import (
	"github.com/Sassan1019/enthusiasts/app/auth"
	"github.com/Sassan1019/enthusiasts/app/database"
	"github.com/Sassan1019/enthusiasts/app/feed"
)

// Post sources selectable via configuration
const (
	PostsSourceFeed  = "feed"
	PostsSourceStore = "store"
)

type Handler struct {
	client        *feed.Client
	extractor     *feed.Extractor
	postsSource   string
	postRepo      database.PostRepository
	contactRepo   database.ContactRepository
	sessionRepo   database.SessionRepository
	authenticator *auth.Authenticator
}

type ContactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

type LoginRequest struct {
	Password string `json:"password"`
}

type StatusUpdateRequest struct {
	Status string `json:"status"`
}
