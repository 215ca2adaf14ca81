package handler

import (
	"log/slog"
	"net/http"

	"freelancedesk/internal/domain/models"
)

// TaskHandler handles the task description form. Tasks are created
// from their project's panel.
type TaskHandler struct {
	*Responder
	logger *slog.Logger
}

// NewTaskHandler creates a new task handler
func NewTaskHandler(responder *Responder, logger *slog.Logger) *TaskHandler {
	return &TaskHandler{
		Responder: responder,
		logger:    logger,
	}
}

// CreateForProject creates a task owned by the project
// POST /projects/{id}/tasks
func (h *TaskHandler) CreateForProject(w http.ResponseWriter, r *http.Request) {
	set, ok := sessionServices(w, r)
	if !ok {
		return
	}
	projectID, ok := PathParam(w, r, "id", "Project ID")
	if !ok {
		return
	}

	var attrs models.TaskAttributes
	if !decodeBody(w, r, &attrs) {
		return
	}

	result, err := set.Tasks.CreateForProject(r.Context(), projectID, &attrs)
	h.respondSave(w, r, http.StatusCreated, result, err)
}

// FormForProject validates a draft of the project's "add task" form
// POST /projects/{id}/tasks/form
func (h *TaskHandler) FormForProject(w http.ResponseWriter, r *http.Request) {
	set, ok := sessionServices(w, r)
	if !ok {
		return
	}
	projectID, ok := PathParam(w, r, "id", "Project ID")
	if !ok {
		return
	}

	var req formRequest[models.TaskAttributes]
	if !decodeBody(w, r, &req) {
		return
	}

	state, err := set.Tasks.FormForProject(r.Context(), projectID, &req.Draft)
	h.respondForm(w, r, state, err)
}

// Update saves the description form
// PUT /tasks/{id}
func (h *TaskHandler) Update(w http.ResponseWriter, r *http.Request) {
	set, ok := sessionServices(w, r)
	if !ok {
		return
	}
	id, ok := PathParam(w, r, "id", "Task ID")
	if !ok {
		return
	}

	var attrs models.TaskAttributes
	if !decodeBody(w, r, &attrs) {
		return
	}

	result, err := set.Tasks.Update(r.Context(), id, &attrs)
	h.respondSave(w, r, http.StatusOK, result, err)
}

// Delete deletes a task
// DELETE /tasks/{id}
func (h *TaskHandler) Delete(w http.ResponseWriter, r *http.Request) {
	set, ok := sessionServices(w, r)
	if !ok {
		return
	}
	id, ok := PathParam(w, r, "id", "Task ID")
	if !ok {
		return
	}

	result, err := set.Tasks.Delete(r.Context(), id)
	h.respondSave(w, r, http.StatusOK, result, err)
}

// Form validates a draft without saving
// POST /tasks/form
func (h *TaskHandler) Form(w http.ResponseWriter, r *http.Request) {
	set, ok := sessionServices(w, r)
	if !ok {
		return
	}

	var req formRequest[models.TaskAttributes]
	if !decodeBody(w, r, &req) {
		return
	}

	state, err := set.Tasks.Form(r.Context(), req.mode(), &req.Draft)
	h.respondForm(w, r, state, err)
}
