// Librarium - Author and Book Catalog Services
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/librarium

/*
Package supervisor runs the long-lived parts of a catalog service under a
suture v4 supervisor tree.

The tree has two layers so that a failing broker connection never takes the
HTTP server down with it:

	RootSupervisor (service name, e.g. "authors")
	├── MessagingSupervisor ("messaging-layer")
	│   ├── EmbeddedNATSService (bus.driver = embedded)
	│   └── BusService (closes the event bus on shutdown)
	└── APISupervisor ("api-layer")
	    └── HTTPServerService

Supervisor events (starts, failures, backoff) are logged through
sutureslog, which the caller wires to the zerolog-backed slog handler from
the logging package:

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.TreeConfig{
	    Name:            "books",
	    ShutdownTimeout: cfg.Server.ShutdownTimeout,
	})
	tree.AddMessagingService(services.NewBusService(bus))
	tree.AddAPIService(services.NewHTTPServerService("books-http", srv, cfg.Server.ShutdownTimeout))
	err = tree.Serve(ctx)

Crashed services are restarted with suture's backoff; canceling ctx shuts
the whole tree down within ShutdownTimeout.
*/
package supervisor
