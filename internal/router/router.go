// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package router sets up all HTTP routes and middleware chains for the
// ContentHub server.
package router

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"contenthub/internal/handlers"
	"contenthub/internal/metrics"
	"contenthub/internal/middleware"
)

// Deps are the collaborators the routes are built from.
type Deps struct {
	Log          *zap.Logger
	Sessions     middleware.SessionGetter
	Sidebar      middleware.SidebarResolver
	Auth         *handlers.Auth
	Seed         *handlers.Seed
	LoginLimiter *middleware.RateLimiter

	// SecureCookies marks the CSRF cookie Secure (TLS only).
	SecureCookies bool
}

// New creates and returns the configured Chi router with all middleware
// and route groups wired up.
func New(d Deps) chi.Router {
	r := chi.NewRouter()

	// Global middleware, applied to every request.
	r.Use(middleware.Recoverer(d.Log))
	r.Use(middleware.Logger(d.Log))
	r.Use(middleware.SecureHeaders)
	r.Use(middleware.NewCSRF(d.SecureCookies))
	r.Use(middleware.LoadSession(d.Sessions, d.Log))

	// Probes, no auth.
	r.Get("/health", healthHandler)
	r.Method(http.MethodGet, "/metrics", metrics.Handler())

	// Login is reachable before a CSRF cookie exists; it is rate-limited instead.
	r.With(d.LoginLimiter.Middleware).Post("/login", d.Auth.Login)
	r.With(middleware.RequireAuth, middleware.VerifyCSRF).Post("/logout", d.Auth.Logout)

	r.With(middleware.Sidebar(d.Sidebar, d.Log)).Get("/api/sidebar", handlers.Sidebar)

	// Admin API. Authorization runs before the CSRF check so callers
	// without a session see 401 and non-admins 403.
	r.Route("/api/admin", func(r chi.Router) {
		r.Use(middleware.RequireAdmin)
		r.Use(middleware.VerifyCSRF)
		r.Post("/seed-{topic}", d.Seed.Trigger)
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusNotFound, map[string]string{"status": "error", "message": "Not found"})
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusMethodNotAllowed, map[string]string{"status": "error", "message": "Method not allowed"})
	})

	return r
}

// healthHandler returns a simple JSON health check response.
func healthHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func writeJSON(w http.ResponseWriter, status int, body map[string]string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
