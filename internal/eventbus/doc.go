// Librarium - Author and Book Catalog Services
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/librarium

/*
Package eventbus publishes create notifications for catalog entities.

# Architecture

	Endpoint.Create
	     │ Notify(ctx, topic, projection)
	     ▼
	┌──────────┐   indented JSON   ┌──────────────────────────┐
	│ Notifier │ ────────────────▶ │ Bus                      │
	└──────────┘                   │  NATSBus   (core NATS)   │
	  logs + counts failures       │  MemoryBus (gochannel)   │
	  never returns them           └──────────────────────────┘

The Notifier is best effort: it attempts exactly one publish per call, on
the caller's goroutine, and absorbs every failure (serialization, transport,
broker, or a panic inside the transport). A failure is logged once at error
level and counted in notifications_failed_total. Callers never observe it.

# Transports

NATSBus publishes through Watermill's NATS publisher with JetStream
disabled, which gives plain fire-and-forget pub/sub. Reconnect buffering is
disabled so that publishing while the broker is unreachable fails at once
instead of queueing, and a gobreaker circuit breaker stops calling the
broker after repeated failures:

	bus, err := eventbus.NewNATSBus(eventbus.NATSConfig{
	    URL:            "nats://127.0.0.1:4222",
	    PublishTimeout: 2 * time.Second,
	}, logging.NewWatermillLogger())

MemoryBus publishes to an in-process Watermill GoChannel and supports
Subscribe, which makes it the transport of choice for tests and
single-process runs.

EmbeddedServer runs a nats-server inside the process for self-contained
deployments and transport tests.

# Tracing

Every Notify runs inside an OpenTelemetry span named "eventbus.publish".
No exporter is configured here; a deployment may install a global
TracerProvider.
*/
package eventbus
