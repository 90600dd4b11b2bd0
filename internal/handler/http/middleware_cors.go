package http

import (
	"net/http"

	"github.com/go-chi/cors"

	"github.com/MKhiriev/go-qa-board/internal/utils"
)

// withCORS answers preflight requests for the configured origins. It sits
// in front of the API-key gate since browsers never send custom headers on
// preflight.
func (h *Handler) withCORS() func(http.Handler) http.Handler {
	return cors.Handler(cors.Options{
		AllowedOrigins:   h.corsOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"Accept", "Content-Type", "Content-Encoding", utils.APIKeyHeader, traceIDHeader},
		ExposedHeaders:   []string{traceIDHeader},
		AllowCredentials: false,
		MaxAge:           300,
	})
}
