package http

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/MKhiriev/go-qa-board/internal/app"
	"github.com/MKhiriev/go-qa-board/internal/utils"
)

// idParam matches numeric ids only; anything else falls through to 404.
const idParam = "{id:[0-9]+}"

// Init builds the router. Every request, including unknown paths, passes
// the API-key gate before any handler runs.
func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()

	router.Use(
		h.withTraceID,
		h.withLogging,
		h.withMetrics,
		h.withRecovery,
		middleware.StripSlashes,
	)
	if len(h.corsOrigins) > 0 {
		router.Use(h.withCORS())
	}
	router.Use(h.withAPIKey, withGZip)

	router.NotFound(h.notFound)
	router.MethodNotAllowed(h.methodNotAllowed)

	router.Group(h.registerRoutes)
	router.Route("/api", h.registerRoutes)

	return router
}

func (h *Handler) registerRoutes(r chi.Router) {
	r.Route("/questions", func(r chi.Router) {
		r.Get("/", h.listQuestions)
		r.Post("/", h.createQuestion)

		r.Route("/"+idParam, func(r chi.Router) {
			r.Get("/", h.getQuestion)
			r.Delete("/", h.deleteQuestion)
			r.Post("/answers", h.createAnswer)
		})
	})

	r.Route("/answers/"+idParam, func(r chi.Router) {
		r.Get("/", h.getAnswer)
		r.Delete("/", h.deleteAnswer)
	})

	r.Get("/version", h.getServerVersion)
}

func (h *Handler) notFound(w http.ResponseWriter, r *http.Request) {
	utils.WriteError(w, app.MsgNotFound, http.StatusNotFound)
}

func (h *Handler) methodNotAllowed(w http.ResponseWriter, r *http.Request) {
	utils.WriteError(w, fmt.Sprintf(app.MsgMethodNotAllowed, r.Method), http.StatusMethodNotAllowed)
}
