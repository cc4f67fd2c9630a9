// Librarium - Author and Book Catalog Services
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/librarium

package api

import (
	"net/http"
	"testing"

	"github.com/tomtom215/librarium/internal/eventbus"
)

func TestHealthLive(t *testing.T) {
	t.Parallel()

	h := newAuthorsHandler("health_live", downBus{})
	w := doRequest(t, h, http.MethodGet, "/api/v1/health/live", "")

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 even with the bus down", w.Code)
	}
	var body map[string]interface{}
	decodeBody(t, w, &body)
	if body["alive"] != true {
		t.Errorf("alive = %v", body["alive"])
	}
	if body["service"] != "health_live" {
		t.Errorf("service = %v", body["service"])
	}
}

func TestHealthReady(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		bus        eventbus.Bus
		wantStatus int
	}{
		{"bus connected", eventbus.NewMemoryBus(nil), http.StatusOK},
		{"bus down", downBus{}, http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			h := newAuthorsHandler("health_ready", tt.bus)
			w := doRequest(t, h, http.MethodGet, "/api/v1/health/ready", "")
			if w.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", w.Code, tt.wantStatus)
			}
			if tt.wantStatus == http.StatusServiceUnavailable {
				if apiErr := decodeError(t, w); apiErr.Code != ErrCodeServiceUnavailable {
					t.Errorf("code = %s", apiErr.Code)
				}
			}
		})
	}
}

func TestHealthReady_NilBus(t *testing.T) {
	t.Parallel()

	h := NewHealthHandler("standalone", nil)
	w := doRequest(t, http.HandlerFunc(h.HealthReady), http.MethodGet, "/ready", "")
	if w.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", w.Code)
	}
}
