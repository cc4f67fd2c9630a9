// Librarium - Author and Book Catalog Services
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/librarium

package config

import (
	"strings"
	"testing"
)

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{name: "defaults", mutate: func(c *Config) {}},
		{name: "unknown service", mutate: func(c *Config) { c.Service.Name = "reviews" }, wantErr: "SERVICE_NAME"},
		{name: "port zero", mutate: func(c *Config) { c.Server.Port = 0 }, wantErr: "HTTP_PORT"},
		{name: "port too large", mutate: func(c *Config) { c.Server.Port = 70000 }, wantErr: "HTTP_PORT"},
		{name: "empty topic", mutate: func(c *Config) { c.Bus.Topic = "  " }, wantErr: "BUS_TOPIC"},
		{name: "zero publish timeout", mutate: func(c *Config) { c.Bus.PublishTimeout = 0 }, wantErr: "BUS_PUBLISH_TIMEOUT"},
		{name: "bad driver", mutate: func(c *Config) { c.Bus.Driver = "redis" }, wantErr: "BUS_DRIVER"},
		{name: "http nats url", mutate: func(c *Config) { c.Bus.URL = "http://localhost:4222" }, wantErr: "NATS_URL"},
		{name: "memory driver ignores url", mutate: func(c *Config) {
			c.Bus.Driver = BusDriverMemory
			c.Bus.URL = ""
		}},
		{name: "embedded fixed port", mutate: func(c *Config) {
			c.Bus.Driver = BusDriverEmbedded
			c.Bus.Embedded.Port = 14222
		}},
		{name: "embedded random port", mutate: func(c *Config) {
			c.Bus.Driver = BusDriverEmbedded
			c.Bus.Embedded.Port = -1
		}, wantErr: "NATS_EMBEDDED_PORT"},
		{name: "breaker without threshold", mutate: func(c *Config) { c.Bus.CircuitBreaker.FailureThreshold = 0 }, wantErr: "BUS_BREAKER_FAILURES"},
		{name: "rate limit zero", mutate: func(c *Config) { c.Security.RateLimitReqs = 0 }, wantErr: "RATE_LIMIT_REQUESTS"},
		{name: "rate limit disabled", mutate: func(c *Config) {
			c.Security.RateLimitDisabled = true
			c.Security.RateLimitReqs = 0
		}},
		{name: "bad log level", mutate: func(c *Config) { c.Logging.Level = "loud" }, wantErr: "LOG_LEVEL"},
		{name: "numeric log level", mutate: func(c *Config) { c.Logging.Level = "1" }, wantErr: "LOG_LEVEL"},
		{name: "warning alias", mutate: func(c *Config) { c.Logging.Level = "WARNING" }},
		{name: "bad log format", mutate: func(c *Config) { c.Logging.Format = "xml" }, wantErr: "LOG_FORMAT"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := defaultConfig(ServiceAuthors)
			tt.mutate(cfg)
			err := cfg.Validate()

			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Validate() error = %v, want mention of %s", err, tt.wantErr)
			}
		})
	}
}
