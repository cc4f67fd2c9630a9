// Librarium - Author and Book Catalog Services
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/librarium

package api

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/tomtom215/librarium/internal/logging"
	"github.com/tomtom215/librarium/internal/validation"
)

func TestResponseWriter_OKIsBare(t *testing.T) {
	t.Parallel()

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/test", nil)

	NewResponseWriter(w, r).OK(map[string]string{"title": "Dune"})

	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}
	var body map[string]string
	decodeBody(t, w, &body)
	if len(body) != 1 || body["title"] != "Dune" {
		t.Errorf("body = %v, want the data without an envelope", body)
	}
}

func TestResponseWriter_ErrorEnvelope(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		write      func(rw *ResponseWriter)
		wantStatus int
		wantCode   string
	}{
		{"bad request", func(rw *ResponseWriter) { rw.BadRequest("bad") }, http.StatusBadRequest, ErrCodeBadRequest},
		{"not found", func(rw *ResponseWriter) { rw.NotFound("missing") }, http.StatusNotFound, ErrCodeNotFound},
		{"method not allowed", func(rw *ResponseWriter) { rw.MethodNotAllowed() }, http.StatusMethodNotAllowed, ErrCodeMethodNotAllowed},
		{"too many requests", func(rw *ResponseWriter) { rw.TooManyRequests("slow down") }, http.StatusTooManyRequests, ErrCodeTooManyRequests},
		{"internal", func(rw *ResponseWriter) { rw.InternalError(errors.New("boom")) }, http.StatusInternalServerError, ErrCodeInternalError},
		{"unavailable", func(rw *ResponseWriter) { rw.ServiceUnavailable("later") }, http.StatusServiceUnavailable, ErrCodeServiceUnavailable},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			w := httptest.NewRecorder()
			r := httptest.NewRequest(http.MethodGet, "/test", nil)
			r = r.WithContext(logging.ContextWithRequestID(r.Context(), "req-1"))

			tt.write(NewResponseWriter(w, r))

			if w.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", w.Code, tt.wantStatus)
			}
			var resp ErrorEnvelope
			decodeBody(t, w, &resp)
			if resp.Success {
				t.Error("Expected Success to be false")
			}
			if resp.Error == nil || resp.Error.Code != tt.wantCode {
				t.Fatalf("error = %+v, want code %s", resp.Error, tt.wantCode)
			}
			if resp.Error.RequestID != "req-1" {
				t.Errorf("request_id = %q", resp.Error.RequestID)
			}
			if resp.Meta == nil || resp.Meta.Timestamp.IsZero() {
				t.Error("Expected Meta with a timestamp")
			}
		})
	}
}

func TestResponseWriter_InternalErrorHidesCause(t *testing.T) {
	t.Parallel()

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/test", nil)
	NewResponseWriter(w, r).InternalError(errors.New("secret database detail"))

	var resp ErrorEnvelope
	decodeBody(t, w, &resp)
	if resp.Error.Message == "secret database detail" {
		t.Error("internal error message should not leak the cause")
	}
}

func TestResponseWriter_ValidationError(t *testing.T) {
	t.Parallel()

	type command struct {
		AuthorID string `json:"authorId" validate:"omitempty,uuid"`
	}
	verr := validation.ValidateStruct(command{AuthorID: "x"})
	if verr == nil {
		t.Fatal("expected validation to fail")
	}

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/test", nil)
	NewResponseWriter(w, r).ValidationError(verr)

	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d", w.Code)
	}
	var resp struct {
		Error struct {
			Code    string `json:"code"`
			Details struct {
				Fields []struct {
					Field string `json:"field"`
					Tag   string `json:"tag"`
				} `json:"fields"`
			} `json:"details"`
		} `json:"error"`
	}
	decodeBody(t, w, &resp)
	if resp.Error.Code != ErrCodeValidationFailed {
		t.Errorf("code = %s", resp.Error.Code)
	}
	if len(resp.Error.Details.Fields) != 1 || resp.Error.Details.Fields[0].Field != "authorId" {
		t.Errorf("fields = %+v", resp.Error.Details.Fields)
	}
	if resp.Error.Details.Fields[0].Tag != "uuid" {
		t.Errorf("tag = %s", resp.Error.Details.Fields[0].Tag)
	}
}
