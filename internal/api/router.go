package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// buildRouter creates the HTTP router with all routes and middleware.
func (s *Server) buildRouter() http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(s.requestIDMiddleware)
	r.Use(s.loggingMiddleware)
	r.Use(s.recoveryMiddleware)
	r.Use(s.corsMiddleware)
	r.Use(s.bodySizeLimitMiddleware)
	r.Use(s.identityMiddleware)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/health", s.handleHealth)
		r.Get("/site", s.handleSite)
		r.Get("/auth/me", s.handleAuthMe)

		// Sensor catalog and telemetry reads are open to all callers.
		r.Get("/sensors", s.handleSensors)
		r.Route("/areas", func(r chi.Router) {
			r.Get("/", s.handleListAreas)
			r.Get("/{id}", s.handleGetArea)
			r.Get("/{id}/history", s.handleAreaHistory)
		})

		r.Route("/notifications", func(r chi.Router) {
			r.Get("/", s.handleListNotifications)
			r.Delete("/{index}", s.handleDismissNotification)
		})

		// Warning rule CRUD; mutations are permission-gated per identity.
		r.Route("/warnings", func(r chi.Router) {
			r.Get("/", s.handleListWarnings)
			r.Post("/", s.handleCreateWarning)

			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", s.handleGetWarning)
				r.Patch("/", s.handleUpdateWarning)
				r.Delete("/", s.handleDeleteWarning)
			})
		})

		r.Get("/messages", s.handleListMessages)

		r.Get("/ws", s.handleWebSocket)
	})

	return r
}

// handleHealth returns the server health status.
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":  "ok",
		"version": s.version,
	})
}

// handleSite returns the merged site content fetched from the upstream home
// service at startup, defaults filled in for anything it omitted.
func (s *Server) handleSite(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.site)
}

// handleAuthMe returns the caller's resolved identity and permissions.
func (s *Server) handleAuthMe(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, identityFrom(r))
}
