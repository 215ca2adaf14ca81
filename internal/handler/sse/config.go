package sse

import (
	"time"

	"freelancedesk/internal/config"
)

// Config holds configuration for SSE connections
type Config struct {
	// KeepAliveInterval is how often a comment line is written to keep
	// proxies from closing an idle stream
	KeepAliveInterval time.Duration

	// Retry is sent once as the client's reconnect delay
	Retry time.Duration
}

// DefaultConfig returns the default SSE configuration
func DefaultConfig() *Config {
	return &Config{
		KeepAliveInterval: config.KeepAliveInterval,
		Retry:             3 * time.Second,
	}
}
