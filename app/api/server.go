package api

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Sassan1019/enthusiasts/app/auth"
	"github.com/Sassan1019/enthusiasts/app/cfg"
)

// NewServer creates a new HTTP server with all routes configured
func NewServer(handler *Handler) *gin.Engine {
	// Set Gin mode (can be controlled via GIN_MODE environment variable)
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()

	// Middleware
	r.Use(gin.LoggerWithConfig(gin.LoggerConfig{
		Formatter: func(param gin.LogFormatterParams) string {
			return fmt.Sprintf("%s - [%s] \"%s %s %s %d %s \"%s\" %s\"\n",
				param.ClientIP,
				param.TimeStamp.Format(time.RFC3339),
				param.Method,
				param.Path,
				param.Request.Proto,
				param.StatusCode,
				param.Latency,
				param.Request.UserAgent(),
				param.ErrorMessage,
			)
		},
	}))

	r.Use(gin.Recovery())

	// CORS middleware: the presentation layer is served from a different
	// origin and calls /api/* without credentials
	r.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PATCH, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Accept, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	// Routes
	setupRoutes(r, handler)

	return r
}

// setupRoutes configures all the application routes
func setupRoutes(r *gin.Engine, handler *Handler) {
	// Public blog endpoints
	r.GET("/api/posts", handler.GetPosts)
	r.GET("/api/posts/:slug", handler.GetPostBySlug)

	// Contact submission, rate limited per IP
	contactLimiter := newRateLimiter(10, time.Minute)
	r.POST("/api/contact", contactLimiter.Middleware(), handler.SubmitContact)

	// Admin login, rate limited tighter against password guessing
	loginLimiter := newRateLimiter(5, time.Minute)
	r.POST("/api/admin/login", loginLimiter.Middleware(), handler.Login)

	// Admin endpoints behind bearer-token authorization
	admin := r.Group("/api/admin")
	admin.Use(authMiddleware(handler.authenticator))
	{
		admin.GET("/contacts", handler.ListContacts)
		admin.PATCH("/contacts/:id", handler.UpdateContactStatus)
	}

	// Health and status endpoints
	r.GET("/health", handler.GetHealth)

	// Root endpoint with basic information
	r.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"service": "Enthusiasts API",
			"version": cfg.GetVersion(),
			"endpoints": map[string]string{
				"posts":   "/api/posts",
				"post":    "/api/posts/<slug>",
				"contact": "/api/contact (POST)",
				"login":   "/api/admin/login (POST)",
				"health":  "/health",
			},
		})
	})

	// Favicon handler (return 204 to avoid 404s)
	r.GET("/favicon.ico", func(c *gin.Context) {
		c.Status(204)
	})
}

// authMiddleware gates admin endpoints on a bearer token that the
// authenticator actually issued. A missing or malformed header is rejected
// before the token is looked up.
func authMiddleware(authenticator *auth.Authenticator) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")

		token, ok := strings.CutPrefix(authHeader, "Bearer ")
		if !ok || token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization required"})
			return
		}

		if err := authenticator.Validate(token); err != nil {
			if errors.Is(err, auth.ErrInvalidToken) {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
				return
			}
			slog.Error("Session validation failed", "error", err)
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Internal error"})
			return
		}

		c.Next()
	}
}
