package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-qa-board/internal/metrics"
)

// newMetricsRouter exposes the collector registry at /metrics. It is
// served on its own listener and is not behind the API-key gate.
func newMetricsRouter(collector *metrics.Collector) http.Handler {
	router := chi.NewRouter()
	router.Handle("/metrics", collector.Handler())
	return router
}
