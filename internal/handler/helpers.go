package handler

import (
	"errors"
	"net/http"

	"freelancedesk/internal/domain/services"
	"freelancedesk/internal/httputil"
)

// PathParam reads a required path wildcard. It answers 400 and returns false
// when the value is empty.
func PathParam(w http.ResponseWriter, r *http.Request, name, label string) (string, bool) {
	value := r.PathValue(name)
	if value == "" {
		httputil.RespondError(w, http.StatusBadRequest, label+" is required")
		return "", false
	}
	return value, true
}

// sessionServices returns the service set RequireSession attached to the request
func sessionServices(w http.ResponseWriter, r *http.Request) (*services.Set, bool) {
	set := httputil.GetServices(r)
	if set == nil {
		httputil.RespondError(w, http.StatusUnauthorized, "no session")
		return nil, false
	}
	return set, true
}

// decodeBody parses a JSON body into dest, answering 400 on malformed input
func decodeBody(w http.ResponseWriter, r *http.Request, dest interface{}) bool {
	if err := httputil.ParseJSON(w, r, dest); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			httputil.RespondError(w, http.StatusRequestEntityTooLarge, "request body too large")
			return false
		}
		httputil.RespondError(w, http.StatusBadRequest, err.Error())
		return false
	}
	return true
}
