// Package http provides the inbound HTTP adapter including routing and server lifecycle.
package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Firegrill/docs/internal/adapters/http/handlers"
)

// NewRouter creates an HTTP handler with all application routes registered.
//
// Global middleware (recovery, request IDs, tracing, logging, timeout)
// applies to every route. Page middleware (language, page context, learning
// track) applies only to the page routes, so health probes skip the
// contextualization pipeline.
func NewRouter(
	pageHandler *handlers.PageHandler,
	healthHandler *handlers.HealthHandler,
	global []func(http.Handler) http.Handler,
	page []func(http.Handler) http.Handler,
) http.Handler {
	r := chi.NewRouter()

	for _, mw := range global {
		r.Use(mw)
	}

	// Health endpoints stay outside the page pipeline.
	r.Get("/health/live", healthHandler.Liveness)
	r.Get("/health/ready", healthHandler.Readiness)

	// Every remaining path is a potential documentation page.
	r.Group(func(r chi.Router) {
		for _, mw := range page {
			r.Use(mw)
		}
		r.Get("/*", pageHandler.ServePage)
	})

	return r
}
