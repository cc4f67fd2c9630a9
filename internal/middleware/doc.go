// Librarium - Author and Book Catalog Services
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/librarium

/*
Package middleware provides infrastructure HTTP middleware shared by the
authors and books services.

Key Components:

  - RequestID: accepts or generates an X-Request-ID and stores it (plus a
    fresh correlation ID) in the request context for logging.Ctx
  - PrometheusMetrics: records api_requests_total,
    api_request_duration_seconds and api_active_requests
  - MaxBodySize: caps request bodies read by handlers

All middleware has the standard func(http.Handler) http.Handler shape so it
can be passed directly to chi's Router.Use:

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.PrometheusMetrics)
	r.Use(middleware.MaxBodySize(1 << 20))

PrometheusMetrics labels requests with the matched chi route pattern
(for example /api/v1/authors/{id}) rather than the raw path, so entity
IDs never become label values.
*/
package middleware
