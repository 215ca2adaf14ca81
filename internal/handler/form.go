package handler

import (
	"net/http"

	"freelancedesk/internal/domain/models"
	"freelancedesk/internal/httputil"
)

// formRequest is the body of POST /{entity}/form. An empty id evaluates the
// draft as an add form.
type formRequest[A any] struct {
	ID    string `json:"id"`
	Draft A      `json:"draft"`
}

func (f *formRequest[A]) mode() models.PanelMode {
	if f.ID == "" {
		return models.AddMode()
	}
	return models.EditMode(f.ID)
}

// respondSave answers a create/update/delete. Validation and dependents
// failures keep the client's draft; nothing was written.
func (rs *Responder) respondSave(w http.ResponseWriter, r *http.Request, status int, result *models.SaveResult, err error) {
	if err != nil {
		rs.handleError(w, r, err)
		return
	}
	if !result.Saved {
		status = http.StatusOK
	}
	httputil.RespondJSON(w, status, result)
}

func (rs *Responder) respondForm(w http.ResponseWriter, r *http.Request, state *models.FormState, err error) {
	if err != nil {
		rs.handleError(w, r, err)
		return
	}
	httputil.RespondJSON(w, http.StatusOK, state)
}
