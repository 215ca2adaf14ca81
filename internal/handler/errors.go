package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"freelancedesk/internal/domain"
	"freelancedesk/internal/domain/services"
	"freelancedesk/internal/httputil"
)

// Responder turns service errors into problem documents. An API
// authentication failure also ends the session, since its token is dead.
type Responder struct {
	sessions   services.SessionService
	cookieName string
	secure     bool
	logger     *slog.Logger
}

// NewResponder creates the error responder shared by all handlers
func NewResponder(sessions services.SessionService, cookieName string, secure bool, logger *slog.Logger) *Responder {
	return &Responder{
		sessions:   sessions,
		cookieName: cookieName,
		secure:     secure,
		logger:     logger,
	}
}

// handleError converts domain errors to HTTP responses
func (rs *Responder) handleError(w http.ResponseWriter, r *http.Request, err error) {
	var (
		validationErr *domain.ValidationError
		dependentsErr *domain.DependentsError
		upstreamErr   *domain.UpstreamError
	)

	switch {
	case errors.As(err, &validationErr):
		var extras map[string]interface{}
		if len(validationErr.Fields) > 0 {
			extras = map[string]interface{}{"errors": validationErr.Fields}
		}
		httputil.RespondErrorWithExtras(w, http.StatusUnprocessableEntity, validationErr.Error(), extras)
	case errors.As(err, &dependentsErr):
		httputil.RespondErrorWithExtras(w, http.StatusConflict, dependentsErr.Error(), map[string]interface{}{
			"dependentType": dependentsErr.DependentType,
			"dependents":    dependentsErr.Count,
		})
	case errors.Is(err, domain.ErrConflict):
		httputil.RespondError(w, http.StatusConflict, err.Error())
	case errors.Is(err, domain.ErrNotFound):
		httputil.RespondError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, domain.ErrUnauthorized):
		rs.dropSession(w, r)
		httputil.RespondError(w, http.StatusUnauthorized, err.Error())
	case errors.Is(err, domain.ErrForbidden):
		httputil.RespondError(w, http.StatusForbidden, err.Error())
	case errors.As(err, &upstreamErr):
		rs.logger.Error("api request failed",
			"operation", upstreamErr.Operation,
			"error", upstreamErr.Err,
			"path", r.URL.Path,
		)
		httputil.RespondError(w, http.StatusBadGateway, "The API request failed ("+upstreamErr.Operation+"). Please try again.")
	default:
		rs.logger.Error("unexpected error",
			"error", err,
			"path", r.URL.Path,
			"method", r.Method,
		)
		httputil.RespondError(w, http.StatusInternalServerError, "internal server error")
	}
}

func (rs *Responder) dropSession(w http.ResponseWriter, r *http.Request) {
	session := httputil.GetSession(r)
	if session == nil {
		return
	}
	if err := rs.sessions.Logout(r.Context(), session.ID); err != nil {
		rs.logger.Warn("failed to drop session", "session_id", session.ID, "error", err)
	}
	httputil.ClearSessionCookie(w, rs.cookieName, rs.secure)
}
