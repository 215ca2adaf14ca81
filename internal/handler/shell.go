package handler

import (
	"log/slog"
	"net/http"
	"time"

	"freelancedesk/internal/config"
	"freelancedesk/internal/domain/models"
	"freelancedesk/internal/httputil"
)

// ShellHandler serves the dashboard, settings and fallbacks
type ShellHandler struct {
	*Responder
	cfg    *config.Config
	logger *slog.Logger
}

// NewShellHandler creates a new shell handler
func NewShellHandler(cfg *config.Config, responder *Responder, logger *slog.Logger) *ShellHandler {
	return &ShellHandler{
		Responder: responder,
		cfg:       cfg,
		logger:    logger,
	}
}

type dashboardView struct {
	User       models.User               `json:"user"`
	Navigation []navItem                 `json:"navigation"`
	Counts     map[models.EntityKind]int `json:"counts"`
}

type navItem struct {
	Label string `json:"label"`
	Route string `json:"route"`
}

type settingsView struct {
	User         models.User `json:"user"`
	ExpiresAt    time.Time   `json:"expiresAt"`
	Environment  string      `json:"environment"`
	LinkStrategy string      `json:"linkStrategy"`
	PollInterval string      `json:"pollInterval"`
}

// Dashboard shows record counts per entity
// GET /
func (h *ShellHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	set, ok := sessionServices(w, r)
	if !ok {
		return
	}

	dashboard, err := set.Dashboard.Dashboard(r.Context())
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	nav := make([]navItem, 0, len(models.AllEntities))
	for _, kind := range models.AllEntities {
		nav = append(nav, navItem{Label: kind.Label() + "s", Route: kind.IndexRoute()})
	}

	httputil.RespondJSON(w, http.StatusOK, dashboardView{
		User:       httputil.GetSession(r).User,
		Navigation: nav,
		Counts:     dashboard.Counts,
	})
}

// Settings shows the session user and expiry
// GET /settings
func (h *ShellHandler) Settings(w http.ResponseWriter, r *http.Request) {
	session := httputil.GetSession(r)
	if session == nil {
		httputil.RespondError(w, http.StatusUnauthorized, "no session")
		return
	}

	httputil.RespondJSON(w, http.StatusOK, settingsView{
		User:         session.User,
		ExpiresAt:    session.ExpiresAt,
		Environment:  h.cfg.Environment,
		LinkStrategy: h.cfg.LinkStrategy,
		PollInterval: h.cfg.PollInterval.String(),
	})
}

// HealthCheck is a simple health check endpoint
func (h *ShellHandler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	httputil.RespondJSON(w, http.StatusOK, map[string]interface{}{
		"status": "ok",
		"time":   time.Now(),
	})
}

// NotFound answers unknown routes
func (h *ShellHandler) NotFound(w http.ResponseWriter, r *http.Request) {
	httputil.RespondError(w, http.StatusNotFound, "no page at "+r.URL.Path)
}
