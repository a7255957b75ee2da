package api

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/lumastack/lightsd/internal/controller"
	"github.com/lumastack/lightsd/internal/metrics"
)

// NewRouter creates the main HTTP router. It opens a device handle for
// every light the board supports; the error return covers a handle that
// cannot be opened.
func NewRouter(ctrl *controller.Controller, store PropStore, bus EventBus) (http.Handler, error) {
	h := &Handlers{
		ctrl:    ctrl,
		devices: make(map[string]*controller.Device),
		props:   store,
		events:  bus,
	}
	for _, name := range ctrl.Supported() {
		d, err := ctrl.Open(name)
		if err != nil {
			return nil, fmt.Errorf("open %s device: %w", name, err)
		}
		h.devices[name] = d
	}

	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RealIP)
	r.Use(corsMiddleware)
	r.Use(middleware.CleanPath)

	// System state
	r.Get("/api", h.getState)
	r.Get("/api/", h.getState)

	// Lights
	r.Get("/api/lights", h.getLights)
	r.Get("/api/lights/{name}", h.getLight)
	r.Patch("/api/lights/{name}", h.setLight)
	r.Post("/api/lights/{name}/off", h.lightOff)

	// Configuration properties
	r.Get("/api/props", h.getProps)
	r.Get("/api/props/{key}", h.getProp)
	r.Put("/api/props/{key}", h.setProp)

	// System
	r.Get("/api/info", h.getInfo)

	// SSE
	r.Get("/api/subscribe", h.sseEvents)

	// Prometheus
	r.Method(http.MethodGet, "/metrics", metrics.HTTPHandler())

	return r, nil
}

// corsMiddleware adds permissive CORS headers for local network access.
func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PATCH, PUT, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}
