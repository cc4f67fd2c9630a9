// Librarium - Author and Book Catalog Services
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/librarium

package eventbus

import "time"

// NATSConfig configures a NATSBus.
type NATSConfig struct {
	URL        string
	ClientName string

	// PublishTimeout bounds the flush round trip after each publish.
	PublishTimeout time.Duration

	// ConnectTimeout bounds each dial attempt.
	ConnectTimeout time.Duration

	// ReconnectWait is the delay between reconnect attempts. Reconnects
	// continue forever; buffering while disconnected is disabled.
	ReconnectWait time.Duration

	// CircuitBreaker is optional. A nil breaker publishes unguarded.
	CircuitBreaker *CircuitBreakerConfig
}

// CircuitBreakerConfig configures the publish circuit breaker.
type CircuitBreakerConfig struct {
	Name             string
	MaxRequests      uint32
	Interval         time.Duration
	Timeout          time.Duration
	FailureThreshold uint32
}

// ServerConfig configures an EmbeddedServer.
type ServerConfig struct {
	Host string
	Port int // -1 picks a random free port

	// ReadyTimeout bounds how long startup waits for the listener.
	ReadyTimeout time.Duration
}

// DefaultNATSConfig returns a config for url with conservative timeouts.
func DefaultNATSConfig(url string) NATSConfig {
	return NATSConfig{
		URL:            url,
		ClientName:     "librarium",
		PublishTimeout: 2 * time.Second,
		ConnectTimeout: 2 * time.Second,
		ReconnectWait:  2 * time.Second,
	}
}

func (c *NATSConfig) setDefaults() {
	d := DefaultNATSConfig(c.URL)
	if c.ClientName == "" {
		c.ClientName = d.ClientName
	}
	if c.PublishTimeout <= 0 {
		c.PublishTimeout = d.PublishTimeout
	}
	if c.ConnectTimeout <= 0 {
		c.ConnectTimeout = d.ConnectTimeout
	}
	if c.ReconnectWait <= 0 {
		c.ReconnectWait = d.ReconnectWait
	}
}
