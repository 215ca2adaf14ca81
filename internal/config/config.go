package config

import (
	"os"
	"strconv"
	"time"
)

// Link strategies for the freelancer <-> task relation.
const (
	// LinkStrategyChild updates the single foreign key on the task.
	LinkStrategyChild = "child"
	// LinkStrategyArray rewrites the freelancer's task id array (read-modify-write).
	LinkStrategyArray = "array"
)

type Config struct {
	Port        string
	Environment string
	CORSOrigins string
	// GraphQL API
	GraphQLURL     string
	GraphQLTimeout time.Duration
	// Session storage (in-memory when DatabaseURL is empty)
	DatabaseURL   string
	TablePrefix   string
	SessionCookie string
	SessionTTL    time.Duration
	// Token verification (optional, see auth.NewTokenInspector)
	JWKSURL   string
	JWTSecret string
	// Directory behaviour
	PollInterval time.Duration
	PageSize     int
	LinkStrategy string
	// Logging
	LogDir      string
	LogMaxFiles int
	// Credentials accepted by the in-memory API
	DevUser     string
	DevPassword string
}

func Load() *Config {
	env := getEnv("ENVIRONMENT", "dev")

	return &Config{
		Port:           getEnv("PORT", "8080"),
		Environment:    env,
		CORSOrigins:    getEnv("CORS_ORIGINS", "http://localhost:3000"),
		GraphQLURL:     getEnv("GRAPHQL_URL", ""),
		GraphQLTimeout: getDuration("GRAPHQL_TIMEOUT", 15*time.Second),
		DatabaseURL:    getEnv("DATABASE_URL", ""),
		TablePrefix:    getTablePrefix(env),
		SessionCookie:  getEnv("SESSION_COOKIE", "fd_session"),
		SessionTTL:     getDuration("SESSION_TTL", 24*time.Hour),
		JWKSURL:        getEnv("JWKS_URL", ""),
		JWTSecret:      getEnv("JWT_SECRET", ""),
		PollInterval:   getDuration("POLL_INTERVAL", DefaultPollInterval),
		PageSize:       getPageSize(),
		LinkStrategy:   getLinkStrategy(),
		LogDir:         getEnv("LOG_DIR", ""),
		LogMaxFiles:    getInt("LOG_MAX_FILES", 10),
		DevUser:        getEnv("DEV_USER", "admin"),
		DevPassword:    getEnv("DEV_PASSWORD", "admin"),
	}
}

// InMemoryAPI reports whether the server should run against the built-in
// in-memory API instead of a remote GraphQL endpoint (dev only).
func (c *Config) InMemoryAPI() bool {
	return c.GraphQLURL == "" || c.GraphQLURL == "memory://"
}

// SecureCookies reports whether session cookies need HTTPS
func (c *Config) SecureCookies() bool {
	return c.Environment == "prod"
}

// getTablePrefix returns the table prefix based on environment
func getTablePrefix(env string) string {
	// Allow manual override via TABLE_PREFIX env var
	if prefix := os.Getenv("TABLE_PREFIX"); prefix != "" {
		return prefix
	}

	switch env {
	case "prod":
		return "prod_"
	case "test":
		return "test_"
	default:
		return "dev_"
	}
}

// getPageSize clamps PAGE_SIZE to (0, DefaultPageSize]
func getPageSize() int {
	size := getInt("PAGE_SIZE", DefaultPageSize)
	if size <= 0 || size > DefaultPageSize {
		return DefaultPageSize
	}
	return size
}

func getLinkStrategy() string {
	if getEnv("LINK_STRATEGY", LinkStrategyChild) == LinkStrategyArray {
		return LinkStrategyArray
	}
	return LinkStrategyChild
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getInt(key string, defaultValue int) int {
	if n, err := strconv.Atoi(os.Getenv(key)); err == nil {
		return n
	}
	return defaultValue
}

func getDuration(key string, defaultValue time.Duration) time.Duration {
	if d, err := time.ParseDuration(os.Getenv(key)); err == nil && d > 0 {
		return d
	}
	return defaultValue
}
