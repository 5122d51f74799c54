package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(withGZip)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Use(h.withRequestContext)
		r.Get("/api/version", h.getServerVersion)
		r.Get("/v2/person/search/{id}", h.personV2.search)
		r.Post("/v2/person/update", h.personV2.update)
	})

	// routes behind bearer authentication
	router.Group(func(r chi.Router) {
		r.Use(h.auth)
		r.Use(h.withRequestContext)
		r.Get("/v1/person/securitytest", h.personV1.securityTest)
		r.Get("/v2/person/securitytest", h.personV2.securityTest)
	})

	// static uploads
	if h.uploadsDir != "" {
		fileServer := http.StripPrefix("/uploads/", http.FileServer(http.Dir(h.uploadsDir)))
		router.Handle("/uploads/*", fileServer)
	}

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
