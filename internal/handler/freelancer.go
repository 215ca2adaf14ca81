package handler

import (
	"log/slog"
	"net/http"

	"freelancedesk/internal/domain/models"
)

// FreelancerHandler handles the freelancer profile form
type FreelancerHandler struct {
	*Responder
	logger *slog.Logger
}

// NewFreelancerHandler creates a new freelancer handler
func NewFreelancerHandler(responder *Responder, logger *slog.Logger) *FreelancerHandler {
	return &FreelancerHandler{
		Responder: responder,
		logger:    logger,
	}
}

// Create creates a freelancer and redirects to its panel
// POST /freelancers/add
func (h *FreelancerHandler) Create(w http.ResponseWriter, r *http.Request) {
	set, ok := sessionServices(w, r)
	if !ok {
		return
	}

	var attrs models.FreelancerAttributes
	if !decodeBody(w, r, &attrs) {
		return
	}

	result, err := set.Freelancers.Create(r.Context(), &attrs)
	h.respondSave(w, r, http.StatusCreated, result, err)
}

// Update saves the profile form
// PUT /freelancers/{id}
func (h *FreelancerHandler) Update(w http.ResponseWriter, r *http.Request) {
	set, ok := sessionServices(w, r)
	if !ok {
		return
	}
	id, ok := PathParam(w, r, "id", "Freelancer ID")
	if !ok {
		return
	}

	var attrs models.FreelancerAttributes
	if !decodeBody(w, r, &attrs) {
		return
	}

	result, err := set.Freelancers.Update(r.Context(), id, &attrs)
	h.respondSave(w, r, http.StatusOK, result, err)
}

// Delete deletes a freelancer without linked tasks
// DELETE /freelancers/{id}
func (h *FreelancerHandler) Delete(w http.ResponseWriter, r *http.Request) {
	set, ok := sessionServices(w, r)
	if !ok {
		return
	}
	id, ok := PathParam(w, r, "id", "Freelancer ID")
	if !ok {
		return
	}

	result, err := set.Freelancers.Delete(r.Context(), id)
	h.respondSave(w, r, http.StatusOK, result, err)
}

// Form validates a draft without saving
// POST /freelancers/form
func (h *FreelancerHandler) Form(w http.ResponseWriter, r *http.Request) {
	set, ok := sessionServices(w, r)
	if !ok {
		return
	}

	var req formRequest[models.FreelancerAttributes]
	if !decodeBody(w, r, &req) {
		return
	}

	state, err := set.Freelancers.Form(r.Context(), req.mode(), &req.Draft)
	h.respondForm(w, r, state, err)
}
