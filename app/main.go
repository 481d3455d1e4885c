package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Sassan1019/enthusiasts/app/api"
	"github.com/Sassan1019/enthusiasts/app/auth"
	"github.com/Sassan1019/enthusiasts/app/cfg"
	"github.com/Sassan1019/enthusiasts/app/config"
	"github.com/Sassan1019/enthusiasts/app/database"
	"github.com/Sassan1019/enthusiasts/app/feed"
)

func main() {
	appConfig, err := cfg.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}
	if appConfig == nil {
		// Help was shown, exit gracefully
		return
	}

	logLevel := slog.LevelInfo
	if appConfig.Debug {
		logLevel = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: logLevel})))

	slog.Info("Starting Enthusiasts API server...", "version", appConfig.Version)

	// Database connection and migrations
	db, err := database.NewConnection(appConfig.DBPath)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	version, dirty, err := database.RunMigrations(db)
	if err != nil {
		slog.Error("Failed to run migrations", "error", err)
		os.Exit(1)
	}
	slog.Info("Database ready", "path", appConfig.DBPath, "migration_version", version, "dirty", dirty)

	// Blog source configuration
	blogLoader := config.NewLoader(appConfig.FeedURL, appConfig.FetchTimeout, appConfig.BlogConfig)
	blogConfig, err := blogLoader.Load()
	if err != nil {
		slog.Error("Failed to load blog configuration", "error", err)
		os.Exit(1)
	}
	slog.Info("Blog source configured",
		"url", blogConfig.Feed.URL,
		"source", blogConfig.Feed.Source,
		"max_posts", blogConfig.Settings.MaxPosts)

	// Initialize repositories
	contactRepo := database.NewContactRepository(db)
	postRepo := database.NewPostRepository(db)
	sessionRepo := database.NewSessionRepository(db)

	// Initialize core components
	feedClient := feed.NewClient(blogConfig.Feed.URL, appConfig.UserAgent, blogConfig.Settings.GetTimeout())
	extractor := feed.NewExtractor(blogConfig.Settings.MaxPosts, blogConfig.Settings.ExcerptLength, blogConfig.Feed.Source)
	authenticator := auth.NewAuthenticator(appConfig.AdminPasswordHash, sessionRepo)

	// Initialize HTTP server
	apiHandler := api.NewHandler(feedClient, extractor, appConfig.PostsSource,
		postRepo, contactRepo, sessionRepo, authenticator)
	server := api.NewServer(apiHandler)

	httpServer := &http.Server{
		Addr:         ":" + appConfig.Port,
		Handler:      server,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	serverErrChan := make(chan error, 1)
	go func() {
		slog.Info("HTTP server listening", "port", appConfig.Port, "posts_source", appConfig.PostsSource)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErrChan <- fmt.Errorf("HTTP server error: %w", err)
		}
	}()

	// Wait for interrupt signal or server error
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	select {
	case sig := <-sigChan:
		slog.Info("Received signal", "signal", sig.String())
	case err := <-serverErrChan:
		slog.Error("Server error", "error", err)
	}

	// Graceful shutdown
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	} else {
		slog.Info("HTTP server stopped")
	}

	slog.Info("Shutdown complete")
}
