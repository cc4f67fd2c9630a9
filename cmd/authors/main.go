// Librarium - Author and Book Catalog Services
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/librarium

// Command authors serves the author catalog.
//
// It exposes GET/POST /api/v1/authors and GET /api/v1/authors/{id}, and
// publishes every created author to the configured bus topic (default
// "authors").
//
// Configuration is layered (highest priority wins):
//   - Environment variables (HTTP_PORT, BUS_DRIVER, NATS_URL, BUS_TOPIC, LOG_LEVEL, ...)
//   - Config file (CONFIG_PATH, or /etc/librarium/config.yaml)
//   - Built-in defaults (port 8081, NATS at nats://127.0.0.1:4222)
//
// Example:
//
//	BUS_DRIVER=embedded LOG_FORMAT=console ./authors
package main

import (
	"github.com/tomtom215/librarium/internal/app"
	"github.com/tomtom215/librarium/internal/config"
)

func main() {
	app.Main(config.ServiceAuthors)
}
