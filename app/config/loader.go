package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Loader handles loading and validation of the blog source configuration
type Loader struct {
	feedURL string
	timeout int
	path    string
}

// NewLoader creates a new configuration loader. feedURL and timeout act as
// defaults when the optional config file does not override them; path may be
// empty, in which case defaults are used as-is.
func NewLoader(feedURL string, timeout int, path string) *Loader {
	return &Loader{feedURL: feedURL, timeout: timeout, path: path}
}

// Load returns the blog source configuration with defaults applied
func (l *Loader) Load() (*BlogConfig, error) {
	config := &BlogConfig{}

	if l.path != "" {
		data, err := os.ReadFile(l.path)
		if err != nil {
			return nil, fmt.Errorf("failed to read file: %w", err)
		}

		if err := yaml.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("failed to parse YAML: %w", err)
		}
	}

	l.setDefaults(config)

	if err := l.validate(config); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return config, nil
}

// setDefaults applies default values to configuration
func (l *Loader) setDefaults(config *BlogConfig) {
	if config.Feed.URL == "" {
		config.Feed.URL = l.feedURL
	}
	if config.Feed.Source == "" {
		config.Feed.Source = "note"
	}
	if config.Settings.MaxPosts == 0 {
		config.Settings.MaxPosts = 3
	}
	if config.Settings.ExcerptLength == 0 {
		config.Settings.ExcerptLength = 150
	}
	if config.Settings.Timeout == 0 {
		config.Settings.Timeout = l.timeout
	}
	if config.Settings.Timeout == 0 {
		config.Settings.Timeout = 10 // seconds
	}
}

// validate validates the configuration
func (l *Loader) validate(config *BlogConfig) error {
	if config.Feed.URL == "" {
		return fmt.Errorf("feed URL is required")
	}
	if config.Settings.MaxPosts < 0 {
		return fmt.Errorf("max posts must be non-negative")
	}
	if config.Settings.ExcerptLength < 0 {
		return fmt.Errorf("excerpt length must be non-negative")
	}
	if config.Settings.Timeout < 0 {
		return fmt.Errorf("timeout must be non-negative")
	}
	return nil
}
