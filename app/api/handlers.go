package api

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Sassan1019/enthusiasts/app/auth"
	"github.com/Sassan1019/enthusiasts/app/database"
	"github.com/Sassan1019/enthusiasts/app/feed"
)

func NewHandler(client *feed.Client, extractor *feed.Extractor, postsSource string,
	postRepo database.PostRepository, contactRepo database.ContactRepository,
	sessionRepo database.SessionRepository, authenticator *auth.Authenticator) *Handler {
	return &Handler{
		client:        client,
		extractor:     extractor,
		postsSource:   postsSource,
		postRepo:      postRepo,
		contactRepo:   contactRepo,
		sessionRepo:   sessionRepo,
		authenticator: authenticator,
	}
}

// GetPosts returns the published post list for the active source. In feed
// mode the list is recomputed from the external feed on every call and any
// fetch or parse failure degrades to an empty list: the marketing page must
// render regardless of third-party feed health.
func (h *Handler) GetPosts(c *gin.Context) {
	if h.postsSource == PostsSourceStore {
		posts, err := h.postRepo.GetPublishedPosts()
		if err != nil {
			slog.Error("Database error", "operation", "get_posts", "error", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
			return
		}
		if posts == nil {
			posts = []database.Post{}
		}
		c.JSON(http.StatusOK, gin.H{"posts": posts})
		return
	}

	posts := h.fetchFeedPosts(c)
	c.JSON(http.StatusOK, gin.H{"posts": posts})
}

func (h *Handler) fetchFeedPosts(c *gin.Context) []feed.Post {
	data, err := h.client.Fetch(c.Request.Context())
	if err != nil {
		slog.Error("Feed fetch failed", "error", err)
		return []feed.Post{}
	}

	posts, err := h.extractor.Run(data)
	if err != nil {
		slog.Error("Feed extraction failed", "error", err)
		return []feed.Post{}
	}

	if posts == nil {
		posts = []feed.Post{}
	}
	return posts
}

// GetPostBySlug returns a single published post. Only meaningful for the
// store source; feed-sourced posts have no slug and link out directly.
func (h *Handler) GetPostBySlug(c *gin.Context) {
	if h.postsSource != PostsSourceStore {
		c.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
		return
	}

	slug := c.Param("slug")

	post, err := h.postRepo.GetPostBySlug(slug)
	if err != nil {
		slog.Error("Database error", "operation", "get_post_by_slug", "slug", slug, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	if post == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"post": post})
}

// SubmitContact validates and stores a visitor contact submission
func (h *Handler) SubmitContact(c *gin.Context) {
	var req ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	if req.Name == "" || req.Email == "" || req.Message == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Name, email, and message are required"})
		return
	}

	contact, err := h.contactRepo.CreateContact(req.Name, req.Email, req.Subject, req.Message)
	if err != nil {
		slog.Error("Database error", "operation", "create_contact", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save message"})
		return
	}

	slog.Info("Contact submitted", "id", contact.ID)

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Thank you for your message. We will get back to you soon.",
	})
}

// Login verifies the admin password and issues a session token
func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	if req.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Password is required"})
		return
	}

	token, err := h.authenticator.Login(req.Password)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidPassword) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid password"})
			return
		}
		slog.Error("Login failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"token":   token,
	})
}

// ListContacts returns every contact submission, newest first
func (h *Handler) ListContacts(c *gin.Context) {
	contacts, err := h.contactRepo.GetAllContacts()
	if err != nil {
		slog.Error("Database error", "operation", "get_contacts", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	if contacts == nil {
		contacts = []database.Contact{}
	}

	c.JSON(http.StatusOK, gin.H{"contacts": contacts})
}

// UpdateContactStatus transitions a contact's triage status. Any status may
// move to any other status; a no-op transition still refreshes updated_at.
func (h *Handler) UpdateContactStatus(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid contact id"})
		return
	}

	var req StatusUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	if !database.ValidContactStatus(req.Status) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid status"})
		return
	}

	found, err := h.contactRepo.UpdateContactStatus(id, req.Status)
	if err != nil {
		slog.Error("Database error", "operation", "update_contact_status", "id", id, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
		return
	}

	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "Contact not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (h *Handler) GetHealth(c *gin.Context) {
	health := map[string]interface{}{
		"timestamp":    time.Now().In(time.Local).Format(time.RFC3339),
		"posts_source": h.postsSource,
	}

	if contactCount, err := h.contactRepo.GetContactCount(); err == nil {
		health["contacts"] = contactCount
	}

	if sessionCount, err := h.sessionRepo.GetActiveSessionCount(); err == nil {
		health["active_sessions"] = sessionCount
	}

	c.JSON(http.StatusOK, health)
}
