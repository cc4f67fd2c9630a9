// Librarium - Author and Book Catalog Services
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/librarium

// Package logging provides centralized zerolog-based structured logging for Librarium.
//
// Both catalog services (authors and books) log through a single global
// zerolog logger configured once at startup. JSON output is the default;
// console output is available for local development.
//
// # Quick Start
//
//	logging.Init(logging.Config{
//	    Level:  "info",
//	    Format: "json",
//	})
//
//	logging.Info().Str("resource", "authors").Msg("Create authors")
//	logging.Ctx(ctx).Error().Err(err).Msg("Push notification failed")
//
// # Configuration
//
// Environment Variables (mapped by internal/config):
//
//	LOG_LEVEL   - trace, debug, info, warn, error (default: info)
//	LOG_FORMAT  - json, console (default: json)
//	LOG_CALLER  - include caller file:line (default: false)
//
// # Adapters
//
// Two third-party libraries expect their own logger interfaces:
//
//   - suture/sutureslog wants a *slog.Logger: use NewSlogLogger
//   - Watermill publishers want a watermill.LoggerAdapter: use NewWatermillLogger
//
// Both adapters write through the global zerolog logger so that every line
// shares the same format and level.
//
// # Context
//
// The HTTP layer stores request_id and correlation_id in the request context.
// Ctx(ctx) returns a logger that adds both fields automatically:
//
//	logging.Ctx(r.Context()).Info().Msg("Find authors by id")
package logging
