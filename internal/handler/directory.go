package handler

import (
	"log/slog"
	"net/http"

	"freelancedesk/internal/domain/models"
	"freelancedesk/internal/httputil"
)

// DirectoryHandler serves the list side of each entity
type DirectoryHandler struct {
	*Responder
	logger *slog.Logger
}

// NewDirectoryHandler creates a new directory handler
func NewDirectoryHandler(responder *Responder, logger *slog.Logger) *DirectoryHandler {
	return &DirectoryHandler{
		Responder: responder,
		logger:    logger,
	}
}

// indexView is the entity index: the directory next to an empty panel
type indexView struct {
	Directory *models.Directory `json:"directory"`
	Panel     *models.Panel     `json:"panel"`
}

// Index lists records of kind, filtered by ?search=
// GET /freelancers, /customers, /projects, /tasks
func (h *DirectoryHandler) Index(kind models.EntityKind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		set, ok := sessionServices(w, r)
		if !ok {
			return
		}

		search := r.URL.Query().Get("search")
		directory, err := set.Directory.List(r.Context(), kind, search)
		if err != nil {
			h.handleError(w, r, err)
			return
		}

		panel, err := set.Panels.Panel(r.Context(), kind, models.NotSelected())
		if err != nil {
			h.handleError(w, r, err)
			return
		}

		httputil.RespondJSON(w, http.StatusOK, indexView{Directory: directory, Panel: panel})
	}
}
