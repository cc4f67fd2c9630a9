// Librarium - Author and Book Catalog Services
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/librarium

package api

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/goccy/go-json"

	"github.com/tomtom215/librarium/internal/catalog"
	"github.com/tomtom215/librarium/internal/eventbus"
)

// downBus rejects every publish, like a NATS connection that is down.
type downBus struct{}

func (downBus) Publish(context.Context, string, *message.Message) error {
	return eventbus.ErrNotConnected
}
func (downBus) Healthy() bool { return false }
func (downBus) Close() error  { return nil }

// noRateLimit keeps handler tests independent of the per-IP limiter.
func noRateLimit() RouterOption {
	cfg := DefaultChiMiddlewareConfig()
	cfg.RateLimitDisabled = true
	return WithChiMiddleware(NewChiMiddleware(cfg))
}

// newAuthorsHandler serves an author endpoint under /api/v1/{resource}.
// Tests pass a unique resource so metric label values are not shared.
func newAuthorsHandler(resource string, bus eventbus.Bus, opts ...RouterOption) http.Handler {
	endpoint := catalog.NewEndpoint(catalog.EndpointConfig[catalog.Author, catalog.AuthorResponse]{
		Resource: resource,
		Kind:     "author",
		Topic:    resource,
		Project:  catalog.ToAuthorResponse,
	}, catalog.NewAuthorService(nil), eventbus.NewNotifier(bus, resource))

	opts = append([]RouterOption{noRateLimit()}, opts...)
	return NewRouter(NewResourceHandler(endpoint), NewHealthHandler(resource, bus), opts...).SetupChi()
}

func newBooksHandler(resource string, bus eventbus.Bus) http.Handler {
	endpoint := catalog.NewEndpoint(catalog.EndpointConfig[catalog.Book, catalog.BookResponse]{
		Resource: resource,
		Kind:     "book",
		Topic:    resource,
		Project:  catalog.ToBookResponse,
	}, catalog.NewBookService(nil), eventbus.NewNotifier(bus, resource))

	return NewRouter(NewResourceHandler(endpoint), NewHealthHandler(resource, bus), noRateLimit()).SetupChi()
}

func doRequest(t *testing.T, h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.Unmarshal(w.Body.Bytes(), v); err != nil {
		t.Fatalf("failed to decode body %q: %v", w.Body.String(), err)
	}
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) *ErrorBody {
	t.Helper()
	var resp ErrorEnvelope
	decodeBody(t, w, &resp)
	if resp.Success {
		t.Error("error envelope has success=true")
	}
	if resp.Error == nil {
		t.Fatalf("error envelope has no error: %s", w.Body.String())
	}
	return resp.Error
}
