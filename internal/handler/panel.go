package handler

import (
	"log/slog"
	"net/http"

	"freelancedesk/internal/domain/models"
	"freelancedesk/internal/httputil"
)

// PanelHandler serves detail panels
type PanelHandler struct {
	*Responder
	logger *slog.Logger
}

// NewPanelHandler creates a new panel handler
func NewPanelHandler(responder *Responder, logger *slog.Logger) *PanelHandler {
	return &PanelHandler{
		Responder: responder,
		logger:    logger,
	}
}

// Panel renders the panel for the mode encoded in the path
// GET /freelancers/add, /freelancers/{id}, /projects/select, ...
// A missing record answers 200 with notFound set.
func (h *PanelHandler) Panel(w http.ResponseWriter, r *http.Request) {
	set, ok := sessionServices(w, r)
	if !ok {
		return
	}

	kind, mode, err := models.ParsePanelRoute(r.URL.Path)
	if err != nil {
		httputil.RespondError(w, http.StatusNotFound, err.Error())
		return
	}

	panel, err := set.Panels.Panel(r.Context(), kind, mode)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	httputil.RespondJSON(w, http.StatusOK, panel)
}
