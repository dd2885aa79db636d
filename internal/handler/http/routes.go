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

	router.Route("/api/pengguna", func(r chi.Router) {
		r.Get("/", h.listPage)
		r.Get("/all", h.listAll)
		r.Get("/export", h.exportCSV)
		r.Post("/", h.create)
		r.Put("/{id}", h.update)
		r.Delete("/{id}", h.delete)
	})

	return router
}
