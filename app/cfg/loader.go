package cfg

import (
	"cmp"
	"fmt"
	"time"

	"github.com/jessevdk/go-flags"
)

// Version is set at build time via -ldflags
var Version = "dev"

func GetVersion() string {
	return cmp.Or(Version, "unknown")
}

type rawCfg struct {
	// Server configuration
	Port   string `long:"port" env:"PORT" default:"8080" description:"HTTP server port"`
	DBPath string `long:"db-path" env:"DB_PATH" default:"./enthusiasts.db" description:"Path to the SQLite database file"`

	// Blog feed configuration
	FeedURL      string `long:"feed-url" env:"FEED_URL" default:"https://note.com/enthusiasts_jp/rss" description:"External blog feed URL"`
	BlogConfig   string `long:"blog-config" env:"BLOG_CONFIG" description:"Optional YAML file overriding blog source settings"`
	PostsSource  string `long:"posts-source" env:"POSTS_SOURCE" default:"feed" choice:"feed" choice:"store" description:"Where published posts come from"`
	FetchTimeout int    `long:"fetch-timeout" env:"FETCH_TIMEOUT" default:"10" description:"Feed fetch timeout in seconds"`

	// Admin configuration
	AdminPasswordHash string `long:"admin-password-hash" env:"ADMIN_PASSWORD_HASH" required:"true" description:"SHA-256 hex digest of the admin password (required)"`

	// Application metadata
	UserAgent string `long:"user-agent" env:"USER_AGENT" default:"Enthusiasts/1.0" description:"User agent string for HTTP requests"`
	Timezone  string `long:"timezone" env:"TZ" default:"UTC" description:"Timezone for timestamps (e.g., UTC, Asia/Tokyo)"`
	Debug     bool   `long:"debug" env:"DEBUG" description:"Enable debug logging"`
}

var globalCfg *Cfg

func Load() (*Cfg, error) {
	var raw rawCfg

	parser := flags.NewParser(&raw, flags.Default)

	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok {
			if flagsErr.Type == flags.ErrHelp {
				return nil, nil
			}
		}
		return nil, fmt.Errorf("failed to parse configuration: %w", err)
	}

	cfg := &Cfg{
		Port:              raw.Port,
		DBPath:            raw.DBPath,
		FeedURL:           raw.FeedURL,
		BlogConfig:        raw.BlogConfig,
		PostsSource:       raw.PostsSource,
		FetchTimeout:      raw.FetchTimeout,
		AdminPasswordHash: raw.AdminPasswordHash,
		UserAgent:         raw.UserAgent,
		Timezone:          raw.Timezone,
		Debug:             raw.Debug,
		Version:           GetVersion(),
	}

	if err := applyTimezone(cfg.Timezone); err != nil {
		fmt.Printf("Warning: Invalid timezone '%s', using system default: %v\n", cfg.Timezone, err)
	}

	globalCfg = cfg

	return cfg, nil
}

func Get() *Cfg {
	if globalCfg == nil {
		panic("configuration not loaded - call cfg.Load() first")
	}
	return globalCfg
}

func applyTimezone(timezone string) error {
	if timezone != "" {
		if loc, err := time.LoadLocation(timezone); err != nil {
			return err
		} else {
			time.Local = loc
		}
	}
	return nil
}
