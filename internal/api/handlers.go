// Librarium - Author and Book Catalog Services
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/librarium

package api

import (
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"github.com/google/uuid"

	"github.com/tomtom215/librarium/internal/catalog"
	"github.com/tomtom215/librarium/internal/metrics"
	"github.com/tomtom215/librarium/internal/store"
	"github.com/tomtom215/librarium/internal/validation"
)

// Resource is a catalog resource that can mount its routes.
type Resource interface {
	// Name is the plural resource name, also the URL segment.
	Name() string
	Routes(r chi.Router)
}

// ResourceHandler serves list, get and create for one catalog endpoint.
type ResourceHandler[E store.Entity, C any, P any] struct {
	endpoint *catalog.Endpoint[E, C, P]
}

// NewResourceHandler wraps endpoint in HTTP handlers.
func NewResourceHandler[E store.Entity, C any, P any](endpoint *catalog.Endpoint[E, C, P]) *ResourceHandler[E, C, P] {
	return &ResourceHandler[E, C, P]{endpoint: endpoint}
}

// Name implements Resource.
func (h *ResourceHandler[E, C, P]) Name() string {
	return h.endpoint.Resource()
}

// Routes implements Resource.
func (h *ResourceHandler[E, C, P]) Routes(r chi.Router) {
	r.Get("/", h.List)
	r.Post("/", h.Create)
	r.Get("/{id}", h.Get)
}

// List handles GET /api/v1/{resource}.
func (h *ResourceHandler[E, C, P]) List(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	items, err := h.endpoint.List(r.Context())
	if err != nil {
		rw.InternalError(err)
		return
	}
	rw.OK(items)
}

// Get handles GET /api/v1/{resource}/{id}.
func (h *ResourceHandler[E, C, P]) Get(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		metrics.RecordClientError(h.Name(), metrics.KindBadID)
		rw.BadRequest(ErrInvalidID.Error())
		return
	}

	item, err := h.endpoint.Get(r.Context(), id)
	switch {
	case errors.Is(err, catalog.ErrNotFound):
		// counted once by the endpoint's error counter
		rw.NotFound(err.Error())
	case err != nil:
		rw.InternalError(err)
	default:
		rw.OK(item)
	}
}

// Create handles POST /api/v1/{resource}. The response body is the same
// projection that was published.
func (h *ResourceHandler[E, C, P]) Create(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	var cmd C
	if err := decodeJSON(r, &cmd); err != nil {
		metrics.RecordClientError(h.Name(), metrics.KindDecode)
		rw.BadRequest(err.Error())
		return
	}

	if verr := validation.ValidateStruct(cmd); verr != nil {
		metrics.RecordClientError(h.Name(), metrics.KindValidation)
		rw.ValidationError(verr)
		return
	}

	item, err := h.endpoint.Create(r.Context(), cmd)
	if err != nil {
		rw.InternalError(err)
		return
	}
	rw.OK(item)
}

// decodeJSON reads one JSON value from the request body into v. Unknown
// fields are ignored.
func decodeJSON(r *http.Request, v interface{}) error {
	if r.Body == nil {
		return ErrEmptyBody
	}

	err := json.NewDecoder(r.Body).Decode(v)
	if err == nil {
		return nil
	}

	var maxBytesErr *http.MaxBytesError
	switch {
	case errors.As(err, &maxBytesErr):
		return ErrBodyTooLarge
	case errors.Is(err, io.EOF):
		return ErrEmptyBody
	default:
		return ErrInvalidJSON
	}
}
