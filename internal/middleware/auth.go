package middleware

import (
	"errors"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"freelancedesk/internal/domain"
	"freelancedesk/internal/domain/services"
	"freelancedesk/internal/httputil"
)

// SessionConfig configures RequireSession
type SessionConfig struct {
	Sessions   services.SessionService
	Factory    services.Factory
	CookieName string
	Secure     bool
	Logger     *slog.Logger
}

// publicPaths are served without a session
var publicPaths = []string{"/login", "/health"}

func isPublic(path string) bool {
	for _, p := range publicPaths {
		if path == p || strings.HasPrefix(path, p+"/") {
			return true
		}
	}
	return false
}

// RequireSession resolves the session cookie and attaches the session and its
// service set to the request context. Requests without a live session are
// redirected (303) to /login?next=<original path>.
func RequireSession(cfg *SessionConfig) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if isPublic(r.URL.Path) || r.Method == http.MethodOptions {
				next.ServeHTTP(w, r)
				return
			}

			id := httputil.SessionID(r, cfg.CookieName)
			if id == "" {
				redirectToLogin(w, r)
				return
			}

			session, err := cfg.Sessions.Get(r.Context(), id)
			if err != nil {
				if !errors.Is(err, domain.ErrUnauthorized) {
					cfg.Logger.Error("session lookup failed", "error", err, "path", r.URL.Path)
					httputil.RespondError(w, http.StatusInternalServerError, "internal server error")
					return
				}
				httputil.ClearSessionCookie(w, cfg.CookieName, cfg.Secure)
				redirectToLogin(w, r)
				return
			}

			next.ServeHTTP(w, httputil.WithSession(r, session, cfg.Factory(session)))
		})
	}
}

func redirectToLogin(w http.ResponseWriter, r *http.Request) {
	httputil.RespondRedirect(w, r, "/login?next="+url.QueryEscape(r.URL.RequestURI()))
}
