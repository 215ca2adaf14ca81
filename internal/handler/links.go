package handler

import (
	"context"
	"log/slog"
	"net/http"

	"freelancedesk/internal/domain"
	"freelancedesk/internal/domain/models"
	"freelancedesk/internal/domain/services"
	"freelancedesk/internal/httputil"
)

// LinkHandler serves relation tabs and link/unlink actions
type LinkHandler struct {
	*Responder
	logger *slog.Logger
}

// NewLinkHandler creates a new link handler
func NewLinkHandler(responder *Responder, logger *slog.Logger) *LinkHandler {
	return &LinkHandler{
		Responder: responder,
		logger:    logger,
	}
}

type relationFn func(ctx context.Context, links services.LinkService, r *http.Request) (*models.RelationList, error)

// relation resolves the session, runs fn and answers with the list
func (h *LinkHandler) relation(fn relationFn) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		set, ok := sessionServices(w, r)
		if !ok {
			return
		}
		if _, ok := PathParam(w, r, "id", "ID"); !ok {
			return
		}

		list, err := fn(r.Context(), set.Links, r)
		if err != nil {
			h.handleError(w, r, err)
			return
		}
		httputil.RespondJSON(w, http.StatusOK, list)
	}
}

// FreelancerTasks lists the tasks linked to a freelancer
// GET /freelancers/{id}/tasks
func (h *LinkHandler) FreelancerTasks() http.HandlerFunc {
	return h.relation(func(ctx context.Context, links services.LinkService, r *http.Request) (*models.RelationList, error) {
		return links.FreelancerTasks(ctx, r.PathValue("id"))
	})
}

// FreelancerProjects lists projects the freelancer has tasks in
// GET /freelancers/{id}/projects
func (h *LinkHandler) FreelancerProjects() http.HandlerFunc {
	return h.relation(func(ctx context.Context, links services.LinkService, r *http.Request) (*models.RelationList, error) {
		return links.FreelancerProjects(ctx, r.PathValue("id"))
	})
}

// TaskCandidates lists unassigned tasks for the link picker
// GET /freelancers/{id}/tasks/candidates?search=
func (h *LinkHandler) TaskCandidates() http.HandlerFunc {
	return h.relation(func(ctx context.Context, links services.LinkService, r *http.Request) (*models.RelationList, error) {
		return links.TaskCandidates(ctx, r.PathValue("id"), r.URL.Query().Get("search"))
	})
}

// LinkTask links a task to the freelancer
// POST /freelancers/{id}/tasks/{taskId}
func (h *LinkHandler) LinkTask() http.HandlerFunc {
	return h.relation(func(ctx context.Context, links services.LinkService, r *http.Request) (*models.RelationList, error) {
		return links.LinkTask(ctx, r.PathValue("id"), r.PathValue("taskId"))
	})
}

// UnlinkTask removes a task from the freelancer
// DELETE /freelancers/{id}/tasks/{taskId}
func (h *LinkHandler) UnlinkTask() http.HandlerFunc {
	return h.relation(func(ctx context.Context, links services.LinkService, r *http.Request) (*models.RelationList, error) {
		return links.UnlinkTask(ctx, r.PathValue("id"), r.PathValue("taskId"))
	})
}

// CustomerProjects lists a customer's projects
// GET /customers/{id}/projects
func (h *LinkHandler) CustomerProjects() http.HandlerFunc {
	return h.relation(func(ctx context.Context, links services.LinkService, r *http.Request) (*models.RelationList, error) {
		return links.CustomerProjects(ctx, r.PathValue("id"))
	})
}

// ProjectTasks lists a project's tasks
// GET /projects/{id}/tasks
func (h *LinkHandler) ProjectTasks() http.HandlerFunc {
	return h.relation(func(ctx context.Context, links services.LinkService, r *http.Request) (*models.RelationList, error) {
		return links.ProjectTasks(ctx, r.PathValue("id"))
	})
}

// TaskFreelancer lists the freelancer assigned to a task
// GET /tasks/{id}/freelancer
func (h *LinkHandler) TaskFreelancer() http.HandlerFunc {
	return h.relation(func(ctx context.Context, links services.LinkService, r *http.Request) (*models.RelationList, error) {
		return links.TaskFreelancer(ctx, r.PathValue("id"))
	})
}

// UnassignFreelancer clears the task's freelancer
// DELETE /tasks/{id}/freelancer
func (h *LinkHandler) UnassignFreelancer() http.HandlerFunc {
	return h.relation(func(ctx context.Context, links services.LinkService, r *http.Request) (*models.RelationList, error) {
		return links.UnassignFreelancer(ctx, r.PathValue("id"))
	})
}

// assignRequest is the body of PUT /tasks/{id}/freelancer
type assignRequest struct {
	FreelancerID string `json:"freelancerId"`
}

// AssignFreelancer links the task to a freelancer from the task side
// PUT /tasks/{id}/freelancer
func (h *LinkHandler) AssignFreelancer(w http.ResponseWriter, r *http.Request) {
	set, ok := sessionServices(w, r)
	if !ok {
		return
	}
	taskID, ok := PathParam(w, r, "id", "Task ID")
	if !ok {
		return
	}

	var req assignRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if req.FreelancerID == "" {
		h.handleError(w, r, &domain.ValidationError{
			Message: "freelancer is required",
			Fields:  map[string]string{"freelancerId": "Freelancer is required"},
		})
		return
	}

	list, err := set.Links.AssignFreelancer(r.Context(), taskID, req.FreelancerID)
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	httputil.RespondJSON(w, http.StatusOK, list)
}
