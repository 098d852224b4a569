package controller

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// NewRouter mounts the viewer routes.
func NewRouter(c *ViewerController) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Get("/", c.Index)
	r.Get("/health", c.Health)
	r.Get("/ready", c.Ready)
	r.Get("/api/customers", c.ListCustomers)
	r.Get("/api/interactions", c.ListInteractions)

	return r
}
