// Librarium - Author and Book Catalog Services
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/librarium

package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/tomtom215/librarium/internal/middleware"
)

// Router assembles the HTTP handler for one service.
type Router struct {
	resource      Resource
	health        *HealthHandler
	chiMiddleware *ChiMiddleware
	maxBodyBytes  int64
}

// RouterOption customizes a Router.
type RouterOption func(*Router)

// WithChiMiddleware sets the CORS and rate limit configuration.
func WithChiMiddleware(m *ChiMiddleware) RouterOption {
	return func(r *Router) {
		r.chiMiddleware = m
	}
}

// WithMaxBodyBytes caps request bodies. Zero keeps the default.
func WithMaxBodyBytes(n int64) RouterOption {
	return func(r *Router) {
		r.maxBodyBytes = n
	}
}

// NewRouter creates a router serving resource and the health probes.
func NewRouter(resource Resource, health *HealthHandler, opts ...RouterOption) *Router {
	router := &Router{
		resource:      resource,
		health:        health,
		chiMiddleware: NewChiMiddleware(nil),
		maxBodyBytes:  middleware.DefaultMaxBodySize,
	}
	for _, opt := range opts {
		opt(router)
	}
	return router
}

// SetupChi configures all HTTP routes using Chi router.
func (router *Router) SetupChi() http.Handler {
	r := chi.NewRouter()

	// Global middleware, applied in order
	r.Use(middleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer) // endpoint panics are counted by metrics.Observe first
	r.Use(router.chiMiddleware.CORS()) // must be global to answer OPTIONS preflight

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		NewResponseWriter(w, r).NotFound("Route not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		NewResponseWriter(w, r).MethodNotAllowed()
	})

	r.Route("/api/v1/health", func(r chi.Router) {
		r.Use(router.chiMiddleware.HealthRateLimit())
		r.Use(APISecurityHeaders())
		r.Get("/live", router.health.HealthLive)
		r.Get("/ready", router.health.HealthReady)
	})

	r.Route("/api/v1/"+router.resource.Name(), func(r chi.Router) {
		r.Use(router.chiMiddleware.RateLimit())
		r.Use(APISecurityHeaders())
		r.Use(middleware.PrometheusMetrics)
		r.Use(middleware.MaxBodySize(router.maxBodyBytes))
		router.resource.Routes(r)
	})

	r.Handle("/metrics", promhttp.Handler())

	return r
}
