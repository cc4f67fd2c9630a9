// Librarium - Author and Book Catalog Services
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/librarium

/*
Package metrics provides the Prometheus instrumentation shared by the
authors and books services.

All collectors are registered once at package initialization through
promauto and live for the lifetime of the process. They are never reset,
so counters are monotonically non-decreasing.

# Catalog Metrics

Every entry point of a resource endpoint runs inside Observe:

	author, err := metrics.Observe("authors", "create", func() (AuthorResponse, error) {
	    return e.create(ctx, cmd)
	})

Observe increments request_count_total{resource,operation}, records
execution_duration_seconds{resource}, and increments
error_count_total{resource} once when fn returns an error or panics. The
fault itself is returned (or re-panicked) unchanged.

Faults raised by the HTTP boundary before an endpoint runs (malformed body,
failed validation, malformed id) are counted with RecordClientError, which
also increments error_count_total so the per-service error counter sees
every fault the service rejected.

# Notification Metrics

  - notifications_published_total{resource}
  - notifications_failed_total{resource,reason}

# HTTP Metrics

  - api_requests_total{method,endpoint,status_code}
  - api_request_duration_seconds{method,endpoint}
  - api_active_requests

# Export

The collectors are exposed at /metrics with promhttp.Handler().
*/
package metrics
