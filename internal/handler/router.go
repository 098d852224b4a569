package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// NewRouter mounts the /api routes and, when site is non-nil, the frontend.
func NewRouter(h *APIHandler, site *StaticSite) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(CORS())

	r.Get("/api/health", h.Health)
	r.Get("/api/ready", h.Ready)
	r.Get("/api/customers", h.ListCustomers)
	r.Get("/api/interactions", h.ListInteractions)
	r.Get("/api/stats", h.Stats)

	// Unknown /api paths fall through to the index too.
	if site != nil {
		site.Mount(r)
	}

	return r
}

// CORS allows any http(s) origin with credentials; the frontend dev
// server runs on another port.
func CORS() func(http.Handler) http.Handler {
	return cors.Handler(cors.Options{
		AllowedOrigins:       []string{"https://*", "http://*"},
		AllowedMethods:       []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:       []string{"*"},
		AllowCredentials:     true,
		OptionsSuccessStatus: http.StatusNoContent,
	})
}
