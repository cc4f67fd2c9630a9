// Librarium - Author and Book Catalog Services
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/librarium

package middleware

import (
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestMaxBodySize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		body    string
		limit   int64
		wantErr bool
	}{
		{name: "under limit", body: `{"title":"Dune"}`, limit: 64},
		{name: "over limit", body: strings.Repeat("a", 65), limit: 64, wantErr: true},
		{name: "zero uses default", body: strings.Repeat("a", 1024), limit: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var readErr error
			handler := MaxBodySize(tt.limit)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				_, readErr = io.ReadAll(r.Body)
			}))

			req := httptest.NewRequest(http.MethodPost, "/api/v1/books", strings.NewReader(tt.body))
			handler.ServeHTTP(httptest.NewRecorder(), req)

			var maxErr *http.MaxBytesError
			if tt.wantErr && !errors.As(readErr, &maxErr) {
				t.Errorf("expected *http.MaxBytesError, got %v", readErr)
			}
			if !tt.wantErr && readErr != nil {
				t.Errorf("unexpected error: %v", readErr)
			}
		})
	}
}
