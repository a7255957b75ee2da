// Package metrics exposes Prometheus collectors for the lights daemon.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	hwWrites = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "lightsd",
		Subsystem: "hw",
		Name:      "writes_total",
		Help:      "Device file write attempts by path and result",
	}, []string{"path", "result"})

	lightSets = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "lightsd",
		Name:      "light_sets_total",
		Help:      "Accepted light state updates by light name",
	}, []string{"light"})

	arbitrations = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "lightsd",
		Name:      "arbitrations_total",
		Help:      "Shared-LED arbitration passes by winning light",
	}, []string{"winner"})

	attentionLevel = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "lightsd",
		Name:      "attention_level",
		Help:      "Current attention level, 0 while inactive",
	})
)

// Results for IncHWWrite.
const (
	ResultOK         = "ok"
	ResultOpenError  = "open_error"
	ResultWriteError = "write_error"
)

// IncHWWrite counts one device write attempt and its outcome.
func IncHWWrite(path, result string) {
	hwWrites.WithLabelValues(path, result).Inc()
}

// IncLightSet counts one accepted state update for a light.
func IncLightSet(light string) {
	lightSets.WithLabelValues(light).Inc()
}

// IncArbitration counts one arbitration pass by winning light.
func IncArbitration(winner string) {
	arbitrations.WithLabelValues(winner).Inc()
}

// SetAttentionLevel publishes the current attention level.
func SetAttentionLevel(level int) {
	attentionLevel.Set(float64(level))
}

// HTTPHandler returns the Prometheus metrics HTTP handler.
// This collects all promauto-registered metrics automatically.
func HTTPHandler() http.Handler {
	return promhttp.Handler()
}
