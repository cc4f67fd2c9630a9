// Librarium - Author and Book Catalog Services
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/librarium

package api

import (
	"net/http"
	"time"
)

// HealthChecker reports whether a dependency is usable.
type HealthChecker interface {
	Healthy() bool
}

// HealthHandler serves the liveness and readiness probes.
type HealthHandler struct {
	service   string
	bus       HealthChecker
	startTime time.Time
}

// NewHealthHandler creates probes for service. A nil bus is always ready.
func NewHealthHandler(service string, bus HealthChecker) *HealthHandler {
	return &HealthHandler{service: service, bus: bus, startTime: time.Now()}
}

// HealthLive returns 200 while the process is running, regardless of
// dependencies.
func (h *HealthHandler) HealthLive(w http.ResponseWriter, r *http.Request) {
	NewResponseWriter(w, r).OK(map[string]interface{}{
		"alive":   true,
		"service": h.service,
		"uptime":  time.Since(h.startTime).Seconds(),
	})
}

// HealthReady returns 200 when the message bus is connected and 503
// otherwise. Creates still succeed while not ready; their notifications are
// dropped.
func (h *HealthHandler) HealthReady(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	busHealthy := h.bus == nil || h.bus.Healthy()
	if !busHealthy {
		rw.ServiceUnavailable("Message bus is not connected")
		return
	}

	rw.OK(map[string]interface{}{
		"ready":       true,
		"service":     h.service,
		"bus_healthy": busHealthy,
	})
}
