// Librarium - Author and Book Catalog Services
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/librarium

/*
Package api provides the HTTP boundary for the author and book services.

Each service process mounts exactly one resource under /api/v1/{resource}:

	GET  /api/v1/{resource}       list every stored projection
	GET  /api/v1/{resource}/{id}  fetch one projection by UUID
	POST /api/v1/{resource}       create an entity and return its projection

plus the liveness and readiness probes under /api/v1/health and the
Prometheus exposition at /metrics.

Successful responses carry the bare projection (or an array of them).
Failures use the ErrorEnvelope with one of the ErrCode constants so
clients can branch on a machine-readable code:

	{"success":false,"error":{"code":"NOT_FOUND","message":"author isn't found","request_id":"..."},"meta":{...}}

Request decoding and validation happen here, before the catalog endpoint is
called. Faults detected at this layer are counted through
metrics.RecordClientError; faults inside the endpoint are already counted by
its metrics decorator.
*/
package api
