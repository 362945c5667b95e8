package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(withGZip)

	router.NotFound(routeNotFound)
	router.MethodNotAllowed(methodNotAllowed)

	// read-only routes
	router.Route("/api", func(r chi.Router) {
		r.Get("/version", h.getServerVersion)
		r.Get("/overrides", h.getOverrides)
		r.Get("/config", h.getConfig)
		r.Get("/config/*", h.getConfigPath)
	})

	return router
}
