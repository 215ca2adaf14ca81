package handler

import (
	"log/slog"
	"net/http"

	"freelancedesk/internal/domain/models"
)

// ProjectHandler handles the project description form. Projects are created
// from their customer's panel.
type ProjectHandler struct {
	*Responder
	logger *slog.Logger
}

// NewProjectHandler creates a new project handler
func NewProjectHandler(responder *Responder, logger *slog.Logger) *ProjectHandler {
	return &ProjectHandler{
		Responder: responder,
		logger:    logger,
	}
}

// CreateForCustomer creates a project owned by the customer
// POST /customers/{id}/projects
func (h *ProjectHandler) CreateForCustomer(w http.ResponseWriter, r *http.Request) {
	set, ok := sessionServices(w, r)
	if !ok {
		return
	}
	customerID, ok := PathParam(w, r, "id", "Customer ID")
	if !ok {
		return
	}

	var attrs models.ProjectAttributes
	if !decodeBody(w, r, &attrs) {
		return
	}

	result, err := set.Projects.CreateForCustomer(r.Context(), customerID, &attrs)
	h.respondSave(w, r, http.StatusCreated, result, err)
}

// FormForCustomer validates a draft of the customer's "add project" form
// POST /customers/{id}/projects/form
func (h *ProjectHandler) FormForCustomer(w http.ResponseWriter, r *http.Request) {
	set, ok := sessionServices(w, r)
	if !ok {
		return
	}
	customerID, ok := PathParam(w, r, "id", "Customer ID")
	if !ok {
		return
	}

	var req formRequest[models.ProjectAttributes]
	if !decodeBody(w, r, &req) {
		return
	}

	state, err := set.Projects.FormForCustomer(r.Context(), customerID, &req.Draft)
	h.respondForm(w, r, state, err)
}

// Update saves the description form
// PUT /projects/{id}
func (h *ProjectHandler) Update(w http.ResponseWriter, r *http.Request) {
	set, ok := sessionServices(w, r)
	if !ok {
		return
	}
	id, ok := PathParam(w, r, "id", "Project ID")
	if !ok {
		return
	}

	var attrs models.ProjectAttributes
	if !decodeBody(w, r, &attrs) {
		return
	}

	result, err := set.Projects.Update(r.Context(), id, &attrs)
	h.respondSave(w, r, http.StatusOK, result, err)
}

// Delete deletes a project without tasks
// DELETE /projects/{id}
func (h *ProjectHandler) Delete(w http.ResponseWriter, r *http.Request) {
	set, ok := sessionServices(w, r)
	if !ok {
		return
	}
	id, ok := PathParam(w, r, "id", "Project ID")
	if !ok {
		return
	}

	result, err := set.Projects.Delete(r.Context(), id)
	h.respondSave(w, r, http.StatusOK, result, err)
}

// Form validates a draft without saving
// POST /projects/form
func (h *ProjectHandler) Form(w http.ResponseWriter, r *http.Request) {
	set, ok := sessionServices(w, r)
	if !ok {
		return
	}

	var req formRequest[models.ProjectAttributes]
	if !decodeBody(w, r, &req) {
		return
	}

	state, err := set.Projects.Form(r.Context(), req.mode(), &req.Draft)
	h.respondForm(w, r, state, err)
}
