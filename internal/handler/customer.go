package handler

import (
	"log/slog"
	"net/http"

	"freelancedesk/internal/domain/models"
)

// CustomerHandler handles the customer profile form
type CustomerHandler struct {
	*Responder
	logger *slog.Logger
}

// NewCustomerHandler creates a new customer handler
func NewCustomerHandler(responder *Responder, logger *slog.Logger) *CustomerHandler {
	return &CustomerHandler{
		Responder: responder,
		logger:    logger,
	}
}

// Create creates a customer and redirects to its panel
// POST /customers/add
func (h *CustomerHandler) Create(w http.ResponseWriter, r *http.Request) {
	set, ok := sessionServices(w, r)
	if !ok {
		return
	}

	var attrs models.CustomerAttributes
	if !decodeBody(w, r, &attrs) {
		return
	}

	result, err := set.Customers.Create(r.Context(), &attrs)
	h.respondSave(w, r, http.StatusCreated, result, err)
}

// Update saves the profile form
// PUT /customers/{id}
func (h *CustomerHandler) Update(w http.ResponseWriter, r *http.Request) {
	set, ok := sessionServices(w, r)
	if !ok {
		return
	}
	id, ok := PathParam(w, r, "id", "Customer ID")
	if !ok {
		return
	}

	var attrs models.CustomerAttributes
	if !decodeBody(w, r, &attrs) {
		return
	}

	result, err := set.Customers.Update(r.Context(), id, &attrs)
	h.respondSave(w, r, http.StatusOK, result, err)
}

// Delete deletes a customer without projects
// DELETE /customers/{id}
func (h *CustomerHandler) Delete(w http.ResponseWriter, r *http.Request) {
	set, ok := sessionServices(w, r)
	if !ok {
		return
	}
	id, ok := PathParam(w, r, "id", "Customer ID")
	if !ok {
		return
	}

	result, err := set.Customers.Delete(r.Context(), id)
	h.respondSave(w, r, http.StatusOK, result, err)
}

// Form validates a draft without saving
// POST /customers/form
func (h *CustomerHandler) Form(w http.ResponseWriter, r *http.Request) {
	set, ok := sessionServices(w, r)
	if !ok {
		return
	}

	var req formRequest[models.CustomerAttributes]
	if !decodeBody(w, r, &req) {
		return
	}

	state, err := set.Customers.Form(r.Context(), req.mode(), &req.Draft)
	h.respondForm(w, r, state, err)
}
