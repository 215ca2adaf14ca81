package handler

import (
	"log/slog"
	"net/http"
	"time"

	"freelancedesk/internal/domain/models"
	"freelancedesk/internal/domain/services"
	"freelancedesk/internal/httputil"
	"freelancedesk/internal/service"
)

// SessionHandler handles login and logout
type SessionHandler struct {
	*Responder
	sessions services.SessionService
	logger   *slog.Logger
}

// NewSessionHandler creates a new session handler
func NewSessionHandler(sessions services.SessionService, responder *Responder, logger *slog.Logger) *SessionHandler {
	return &SessionHandler{
		Responder: responder,
		sessions:  sessions,
		logger:    logger,
	}
}

// loginView tells the client how to sign in and where it goes next
type loginView struct {
	Next    string   `json:"next"`
	Methods []string `json:"methods"`
}

// loginResponse is returned after a successful login
type loginResponse struct {
	User      models.User `json:"user"`
	ExpiresAt time.Time   `json:"expiresAt"`
	Redirect  string      `json:"redirect"`
}

// LoginPage describes the login form
// GET /login
func (h *SessionHandler) LoginPage(w http.ResponseWriter, r *http.Request) {
	httputil.RespondJSON(w, http.StatusOK, loginView{
		Next:    service.SafeRedirect(r.URL.Query().Get("next")),
		Methods: []string{"password", "token"},
	})
}

// Login signs in with identifier and password
// POST /login
func (h *SessionHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req services.LoginRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if req.Next == "" {
		req.Next = r.URL.Query().Get("next")
	}

	result, err := h.sessions.Login(r.Context(), &req)
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	h.startSession(w, result)
}

// LoginWithToken signs in with an existing API token
// POST /login/token
func (h *SessionHandler) LoginWithToken(w http.ResponseWriter, r *http.Request) {
	var req services.TokenLoginRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if req.Next == "" {
		req.Next = r.URL.Query().Get("next")
	}

	result, err := h.sessions.LoginWithToken(r.Context(), &req)
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	h.startSession(w, result)
}

func (h *SessionHandler) startSession(w http.ResponseWriter, result *services.LoginResult) {
	session := result.Session
	httputil.SetSessionCookie(w, h.cookieName, session.ID, session.ExpiresAt, h.secure)
	httputil.RespondJSON(w, http.StatusOK, loginResponse{
		User:      session.User,
		ExpiresAt: session.ExpiresAt,
		Redirect:  result.Redirect,
	})
}

// Logout deletes the session and clears the cookie
// POST /logout
func (h *SessionHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if session := httputil.GetSession(r); session != nil {
		if err := h.sessions.Logout(r.Context(), session.ID); err != nil {
			h.handleError(w, r, err)
			return
		}
	}
	httputil.ClearSessionCookie(w, h.cookieName, h.secure)
	httputil.RespondJSON(w, http.StatusOK, map[string]string{"redirect": "/login"})
}
