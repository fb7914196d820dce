// SPDX-License-Identifier: MIT

package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Handler returns the preview routes with the middleware stack applied.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()

	// Recoverer outermost, then correlation, then the rest.
	r.Use(recoverer)
	r.Use(requestID)
	r.Use(requestLogger)
	r.Use(securityHeaders)

	r.Get("/", s.handleIndex)
	r.Get("/svg", s.handleSVG)
	r.Get("/status", s.handleStatus)
	r.Get("/healthz", s.handleHealth)
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	// Exports are expensive; cap manual triggers per client.
	r.With(refreshRateLimit()).Post("/refresh", s.handleRefresh)

	return r
}
