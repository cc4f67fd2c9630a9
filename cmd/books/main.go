// Librarium - Author and Book Catalog Services
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/librarium

// Command books serves the book catalog.
//
// It exposes GET/POST /api/v1/books and GET /api/v1/books/{id}, and
// publishes every created book to the configured bus topic (default
// "books"). Book author ids are stored as given; the author service is
// never consulted.
//
// Built-in defaults: port 8082, NATS at nats://127.0.0.1:4222. See the
// authors command for the configuration layers.
package main

import (
	"github.com/tomtom215/librarium/internal/app"
	"github.com/tomtom215/librarium/internal/config"
)

func main() {
	app.Main(config.ServiceBooks)
}
