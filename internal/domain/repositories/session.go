package repositories

import (
	"context"
	"time"

	"freelancedesk/internal/domain/models"
)

// SessionRepository persists login sessions
type SessionRepository interface {
	// Create stores a new session
	Create(ctx context.Context, session *models.Session) error

	// GetByID retrieves a session; returns domain.ErrNotFound when absent
	GetByID(ctx context.Context, id string) (*models.Session, error)

	// Delete removes a session; deleting a missing session is not an error
	Delete(ctx context.Context, id string) error

	// DeleteExpired removes sessions that expired before now and returns how many
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}
