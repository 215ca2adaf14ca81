package middleware

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"freelancedesk/internal/domain"
	"freelancedesk/internal/domain/models"
	"freelancedesk/internal/domain/services"
	"freelancedesk/internal/httputil"
)

type fakeSessions struct {
	sessions map[string]*models.Session
}

func (f *fakeSessions) Login(context.Context, *services.LoginRequest) (*services.LoginResult, error) {
	return nil, nil
}

func (f *fakeSessions) LoginWithToken(context.Context, *services.TokenLoginRequest) (*services.LoginResult, error) {
	return nil, nil
}

func (f *fakeSessions) Get(_ context.Context, id string) (*models.Session, error) {
	if s, ok := f.sessions[id]; ok {
		return s, nil
	}
	return nil, &domain.UnauthorizedError{Message: "session expired"}
}

func (f *fakeSessions) Logout(context.Context, string) error { return nil }

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newGuarded(t *testing.T) http.Handler {
	t.Helper()
	cfg := &SessionConfig{
		Sessions: &fakeSessions{sessions: map[string]*models.Session{
			"s1": {ID: "s1", User: models.User{ID: "7", Username: "ada"}},
		}},
		Factory:    func(*models.Session) *services.Set { return &services.Set{} },
		CookieName: "fd_session",
		Logger:     testLogger(),
	}
	return RequireSession(cfg)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		session := httputil.GetSession(r)
		if session != nil && httputil.GetServices(r) == nil {
			t.Error("session attached without services")
		}
		name := "anonymous"
		if session != nil {
			name = session.User.Username
		}
		io.WriteString(w, name)
	}))
}

func TestRequireSession(t *testing.T) {
	tests := []struct {
		name         string
		target       string
		cookie       string
		wantStatus   int
		wantLocation string
		wantBody     string
	}{
		{name: "live session", target: "/freelancers/42", cookie: "s1", wantStatus: http.StatusOK, wantBody: "ada"},
		{name: "no cookie", target: "/freelancers/42", wantStatus: http.StatusSeeOther, wantLocation: "/login?next=%2Ffreelancers%2F42"},
		{name: "query kept", target: "/tasks?search=wire", wantStatus: http.StatusSeeOther, wantLocation: "/login?next=%2Ftasks%3Fsearch%3Dwire"},
		{name: "unknown session", target: "/", cookie: "gone", wantStatus: http.StatusSeeOther, wantLocation: "/login?next=%2F"},
		{name: "login is public", target: "/login", wantStatus: http.StatusOK, wantBody: "anonymous"},
		{name: "login token is public", target: "/login/token", wantStatus: http.StatusOK, wantBody: "anonymous"},
		{name: "health is public", target: "/health", wantStatus: http.StatusOK, wantBody: "anonymous"},
		{name: "prefix is not public", target: "/loginx", wantStatus: http.StatusSeeOther, wantLocation: "/login?next=%2Floginx"},
	}

	handler := newGuarded(t)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.target, nil)
			if tt.cookie != "" {
				req.AddCookie(&http.Cookie{Name: "fd_session", Value: tt.cookie})
			}
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			if rec.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
			if tt.wantLocation != "" && rec.Header().Get("Location") != tt.wantLocation {
				t.Errorf("Location = %q, want %q", rec.Header().Get("Location"), tt.wantLocation)
			}
			if tt.wantBody != "" && rec.Body.String() != tt.wantBody {
				t.Errorf("body = %q, want %q", rec.Body.String(), tt.wantBody)
			}
		})
	}
}

func TestRecovery(t *testing.T) {
	handler := Recovery(testLogger())(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	}))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	if rec.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want 500", rec.Code)
	}
}

func TestRequestLoggerSetsRequestID(t *testing.T) {
	handler := RequestLogger(testLogger())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	if rec.Code != http.StatusTeapot {
		t.Errorf("status = %d", rec.Code)
	}
	if rec.Header().Get(headerRequestID) == "" {
		t.Error("missing request id header")
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(headerRequestID, "abc")
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	if got := rec.Header().Get(headerRequestID); got != "abc" {
		t.Errorf("request id = %q, want abc", got)
	}
}
