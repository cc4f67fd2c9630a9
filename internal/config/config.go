// Librarium - Author and Book Catalog Services
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/librarium

package config

import "time"

// Service names.
const (
	ServiceAuthors = "authors"
	ServiceBooks   = "books"
)

// Bus drivers.
const (
	// BusDriverNATS publishes to an external NATS server at Bus.URL.
	BusDriverNATS = "nats"
	// BusDriverEmbedded starts an in-process NATS server and publishes to it.
	BusDriverEmbedded = "embedded"
	// BusDriverMemory publishes to an in-process Watermill channel.
	BusDriverMemory = "memory"
)

// Config holds all application configuration.
type Config struct {
	Service  ServiceConfig  `koanf:"service"`
	Server   ServerConfig   `koanf:"server"`
	Bus      BusConfig      `koanf:"bus"`
	Security SecurityConfig `koanf:"security"`
	Logging  LoggingConfig  `koanf:"logging"`
}

// ServiceConfig identifies which catalog resource this process serves.
type ServiceConfig struct {
	Name string `koanf:"name"` // "authors" or "books"
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `koanf:"host"`
	Port            int           `koanf:"port"`
	ReadTimeout     time.Duration `koanf:"read_timeout"`
	WriteTimeout    time.Duration `koanf:"write_timeout"`
	IdleTimeout     time.Duration `koanf:"idle_timeout"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
	MaxBodyBytes    int64         `koanf:"max_body_bytes"`
}

// BusConfig holds publish/subscribe settings for create notifications.
type BusConfig struct {
	Driver string `koanf:"driver"`
	URL    string `koanf:"url"`
	Topic  string `koanf:"topic"`

	// PublishTimeout bounds a single publish, including the flush round trip.
	PublishTimeout time.Duration `koanf:"publish_timeout"`
	ConnectTimeout time.Duration `koanf:"connect_timeout"`

	Embedded       EmbeddedNATSConfig   `koanf:"embedded"`
	CircuitBreaker CircuitBreakerConfig `koanf:"circuit_breaker"`
}

// EmbeddedNATSConfig configures the in-process NATS server used by the
// embedded driver.
type EmbeddedNATSConfig struct {
	Host string `koanf:"host"`
	Port int    `koanf:"port"`
}

// CircuitBreakerConfig configures the publish circuit breaker.
type CircuitBreakerConfig struct {
	Enabled          bool          `koanf:"enabled"`
	MaxRequests      uint32        `koanf:"max_requests"`
	Interval         time.Duration `koanf:"interval"`
	Timeout          time.Duration `koanf:"timeout"`
	FailureThreshold uint32        `koanf:"failure_threshold"`
}

// SecurityConfig holds CORS and rate limit settings.
type SecurityConfig struct {
	CORSOrigins       []string      `koanf:"cors_origins"`
	RateLimitReqs     int           `koanf:"rate_limit_reqs"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: trace, debug, info, warn, error.
	// Default: info
	Level string `koanf:"level"`

	// Format is the output format: json or console.
	// Default: json
	Format string `koanf:"format"`

	// Caller adds file:line to every entry.
	Caller bool `koanf:"caller"`
}

// Addr returns the host:port the HTTP server listens on.
func (s ServerConfig) Addr() string {
	return joinHostPort(s.Host, s.Port)
}

// EmbeddedURL returns the client URL of the embedded NATS server.
func (b BusConfig) EmbeddedURL() string {
	return "nats://" + joinHostPort(b.Embedded.Host, b.Embedded.Port)
}
