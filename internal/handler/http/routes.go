package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, withLogging)

	// routes without authorization
	router.Get("/api/version", h.getVersion)

	router.Group(func(r chi.Router) {
		r.Use(h.auth)
		r.Get("/api/passwords", h.getPasswords)
		r.Get("/api/accounts", h.getAccounts)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
