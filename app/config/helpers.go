package config

import (
	"time"
)

// GetTimeout returns the fetch timeout as time.Duration
func (s *Settings) GetTimeout() time.Duration {
	if s.Timeout <= 0 {
		return 10 * time.Second // default 10 seconds
	}
	return time.Duration(s.Timeout) * time.Second
}
