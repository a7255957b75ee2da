// Package api implements the HTTP REST API for lightsd.
package api

import (
	"encoding/json"
	"net/http"

	"github.com/lumastack/lightsd/internal/controller"
	"github.com/lumastack/lightsd/internal/models"
)

// Handlers holds dependencies for all HTTP handlers. One light device
// is opened per supported light when the router is built; every set
// request goes through that persistent handle.
type Handlers struct {
	ctrl    *controller.Controller
	devices map[string]*controller.Device
	props   PropStore
	events  EventBus
}

// PropStore is the interface the handlers use to read and change
// configuration properties.
type PropStore interface {
	Get(key string) string
	All() map[string]string
	Set(key, value string) error
}

// EventBus is the interface for subscribing to state change events.
type EventBus interface {
	Subscribe() (string, <-chan models.State)
	Unsubscribe(id string)
}

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError writes an AppError as a JSON response.
func writeError(w http.ResponseWriter, err error) {
	w.Header().Set("Content-Type", "application/json")
	if appErr, ok := err.(*models.AppError); ok {
		w.WriteHeader(appErr.Status)
		_ = json.NewEncoder(w).Encode(appErr)
		return
	}
	w.WriteHeader(http.StatusInternalServerError)
	_ = json.NewEncoder(w).Encode(models.ErrInternal(err.Error()))
}
