// Librarium - Author and Book Catalog Services
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/librarium

package api

import (
	"net/http"
	"time"

	"github.com/goccy/go-json"

	"github.com/tomtom215/librarium/internal/logging"
	"github.com/tomtom215/librarium/internal/validation"
)

// ErrorEnvelope is the body of every non-2xx catalog response. Projections
// are written bare so a created entity reads the same as its notification.
type ErrorEnvelope struct {
	Success bool       `json:"success"` // always false
	Error   *ErrorBody `json:"error,omitempty"`
	Meta    *ErrorMeta `json:"meta,omitempty"`
}

// ErrorBody describes what went wrong.
type ErrorBody struct {
	Code      string      `json:"code"`
	Message   string      `json:"message"`
	Details   interface{} `json:"details,omitempty"`
	RequestID string      `json:"request_id,omitempty"`
}

// ErrorMeta carries timing for the failed request.
type ErrorMeta struct {
	RequestID  string    `json:"request_id,omitempty"`
	Timestamp  time.Time `json:"timestamp"`
	DurationMs int64     `json:"duration_ms"`
}

// Error codes.
const (
	ErrCodeBadRequest         = "BAD_REQUEST"
	ErrCodeNotFound           = "NOT_FOUND"
	ErrCodeMethodNotAllowed   = "METHOD_NOT_ALLOWED"
	ErrCodeTooManyRequests    = "TOO_MANY_REQUESTS"
	ErrCodeInternalError      = "INTERNAL_ERROR"
	ErrCodeServiceUnavailable = "SERVICE_UNAVAILABLE"
	ErrCodeValidationFailed   = validation.CodeValidationFailed
)

// ResponseWriter writes the JSON response of one catalog request.
type ResponseWriter struct {
	w       http.ResponseWriter
	r       *http.Request
	started time.Time
}

func NewResponseWriter(w http.ResponseWriter, r *http.Request) *ResponseWriter {
	return &ResponseWriter{w: w, r: r, started: time.Now()}
}

// OK writes v as a bare 200 body.
func (rw *ResponseWriter) OK(v interface{}) {
	rw.writeJSON(http.StatusOK, v)
}

func (rw *ResponseWriter) BadRequest(message string) {
	rw.fail(http.StatusBadRequest, ErrCodeBadRequest, message, nil)
}

func (rw *ResponseWriter) NotFound(message string) {
	rw.fail(http.StatusNotFound, ErrCodeNotFound, message, nil)
}

func (rw *ResponseWriter) MethodNotAllowed() {
	rw.fail(http.StatusMethodNotAllowed, ErrCodeMethodNotAllowed, "Method not allowed", nil)
}

func (rw *ResponseWriter) TooManyRequests(message string) {
	rw.fail(http.StatusTooManyRequests, ErrCodeTooManyRequests, message, nil)
}

func (rw *ResponseWriter) ServiceUnavailable(message string) {
	rw.fail(http.StatusServiceUnavailable, ErrCodeServiceUnavailable, message, nil)
}

// InternalError logs err with the request id and answers 500 without
// exposing it.
func (rw *ResponseWriter) InternalError(err error) {
	logging.Ctx(rw.r.Context()).Error().Err(err).
		Str("method", rw.r.Method).
		Str("path", rw.r.URL.Path).
		Msg("Request failed")
	rw.fail(http.StatusInternalServerError, ErrCodeInternalError, "An internal error occurred", nil)
}

// ValidationError answers 400 with one entry per rejected command field.
func (rw *ResponseWriter) ValidationError(verr *validation.RequestValidationError) {
	e := verr.ToAPIError()
	rw.fail(http.StatusBadRequest, e.Code, e.Message, e.Details)
}

func (rw *ResponseWriter) fail(status int, code, message string, details interface{}) {
	id := logging.RequestIDFromContext(rw.r.Context())
	rw.writeJSON(status, ErrorEnvelope{
		Error: &ErrorBody{Code: code, Message: message, Details: details, RequestID: id},
		Meta: &ErrorMeta{
			RequestID:  id,
			Timestamp:  time.Now().UTC(),
			DurationMs: time.Since(rw.started).Milliseconds(),
		},
	})
}

func (rw *ResponseWriter) writeJSON(status int, v interface{}) {
	rw.w.Header().Set("Content-Type", "application/json; charset=utf-8")
	rw.w.WriteHeader(status)

	if err := json.NewEncoder(rw.w).Encode(v); err != nil {
		logging.Ctx(rw.r.Context()).Error().Err(err).Msg("Failed to encode JSON response")
	}
}
