// Librarium - Author and Book Catalog Services
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/librarium

/*
Package config loads and validates runtime configuration for the authors and
books services.

Configuration is layered with Koanf v2. Later layers override earlier ones:

 1. Defaults: built-in values for the named service (Load("authors"))
 2. Config file: optional YAML, from CONFIG_PATH or the default search paths
 3. Environment variables: an explicit allow-list, see envTransformFunc

Example config.yaml:

	server:
	  port: 8081
	bus:
	  driver: nats
	  url: nats://nats:4222
	  topic: authors
	  publish_timeout: 2s
	logging:
	  level: debug

Example environment overrides:

	HTTP_PORT=9000
	BUS_DRIVER=memory
	NATS_URL=nats://broker:4222
	BUS_TOPIC=catalog.authors
	CORS_ORIGINS=https://a.example,https://b.example
	LOG_LEVEL=debug

The returned *Config has already passed Validate.
*/
package config
