package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/lumastack/lightsd/internal/models"
)

func (h *Handlers) getState(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.ctrl.State())
}

func (h *Handlers) getLights(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{"lights": h.ctrl.State().Lights})
}

func (h *Handlers) getLight(w http.ResponseWriter, r *http.Request) {
	ls, appErr := h.ctrl.GetLight(chi.URLParam(r, "name"))
	if appErr != nil {
		writeError(w, appErr)
		return
	}
	writeJSON(w, http.StatusOK, ls)
}

func (h *Handlers) setLight(w http.ResponseWriter, r *http.Request) {
	d, ok := h.devices[chi.URLParam(r, "name")]
	if !ok {
		writeError(w, models.ErrNotFound("no such light"))
		return
	}
	var ls models.LightState
	if err := json.NewDecoder(r.Body).Decode(&ls); err != nil {
		writeError(w, models.ErrBadRequest("invalid JSON: "+err.Error()))
		return
	}
	state, appErr := d.Set(r.Context(), ls)
	if appErr != nil {
		writeError(w, appErr)
		return
	}
	writeJSON(w, http.StatusOK, state)
}

func (h *Handlers) lightOff(w http.ResponseWriter, r *http.Request) {
	d, ok := h.devices[chi.URLParam(r, "name")]
	if !ok {
		writeError(w, models.ErrNotFound("no such light"))
		return
	}
	state, appErr := d.Off(r.Context())
	if appErr != nil {
		writeError(w, appErr)
		return
	}
	writeJSON(w, http.StatusOK, state)
}
