package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/lumastack/lightsd/internal/models"
)

func (h *Handlers) getProps(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{"props": h.props.All()})
}

func (h *Handlers) getProp(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "key")
	writeJSON(w, http.StatusOK, map[string]string{
		"key":   key,
		"value": h.props.Get(key),
	})
}

func (h *Handlers) setProp(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "key")
	var upd models.PropUpdate
	if err := json.NewDecoder(r.Body).Decode(&upd); err != nil {
		writeError(w, models.ErrBadRequest("invalid JSON: "+err.Error()))
		return
	}
	if err := h.props.Set(key, upd.Value); err != nil {
		writeError(w, models.ErrInternal("persist property: "+err.Error()))
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{
		"key":   key,
		"value": upd.Value,
	})
}
