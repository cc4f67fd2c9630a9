// Librarium - Author and Book Catalog Services
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/librarium

// Package services adapts the HTTP server, the embedded NATS server and the
// event bus to suture.Service so the supervisor tree can run them.
package services
