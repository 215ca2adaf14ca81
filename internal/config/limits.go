package config

import "time"

const (
	// MaxNameLength is the maximum length for entity names (first/last name,
	// customer name, project name, task name).
	MaxNameLength = 255

	// MaxDescriptionLength bounds free-text description fields.
	MaxDescriptionLength = 10000

	// MaxRating is the upper bound of a freelancer rating.
	MaxRating = 5

	// DefaultPageSize is the fixed page size used by every directory query.
	// The admin never paginates beyond one page.
	DefaultPageSize = 1000

	// DefaultPollInterval is how often watched directories are re-fetched.
	DefaultPollInterval = 2 * time.Second

	// SubmitTimeout bounds one collapsed form submission, which outlives the
	// request that started it.
	SubmitTimeout = 30 * time.Second

	// KeepAliveInterval is the SSE comment interval for directory event streams.
	KeepAliveInterval = 15 * time.Second
)
