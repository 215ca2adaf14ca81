package httputil

import (
	"context"
	"net/http"

	"freelancedesk/internal/domain/models"
	"freelancedesk/internal/domain/services"
)

// Context key type to avoid collisions
type contextKey string

const (
	sessionKey  contextKey = "session"
	servicesKey contextKey = "services"
)

// WithSession adds the authenticated session and its service set to the request context
func WithSession(r *http.Request, session *models.Session, set *services.Set) *http.Request {
	ctx := context.WithValue(r.Context(), sessionKey, session)
	ctx = context.WithValue(ctx, servicesKey, set)
	return r.WithContext(ctx)
}

// GetSession retrieves the session from context, returns nil if not found
func GetSession(r *http.Request) *models.Session {
	session, _ := r.Context().Value(sessionKey).(*models.Session)
	return session
}

// GetServices retrieves the session's service set, returns nil if not found
func GetServices(r *http.Request) *services.Set {
	set, _ := r.Context().Value(servicesKey).(*services.Set)
	return set
}
