// Librarium - Author and Book Catalog Services
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/librarium

package config

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/tomtom215/librarium/internal/logging"
)

// Validate checks that required configuration is present and valid
func (c *Config) Validate() error {
	validators := []func() error{
		c.validateService,
		c.validateServer,
		c.validateBus,
		c.validateSecurity,
		c.validateLogging,
	}

	for _, validate := range validators {
		if err := validate(); err != nil {
			return err
		}
	}
	return nil
}

func (c *Config) validateService() error {
	switch c.Service.Name {
	case ServiceAuthors, ServiceBooks:
		return nil
	}
	return fmt.Errorf("SERVICE_NAME must be %q or %q, got %q", ServiceAuthors, ServiceBooks, c.Service.Name)
}

func (c *Config) validateServer() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("HTTP_PORT must be between 1 and 65535, got %d", c.Server.Port)
	}
	if c.Server.ReadTimeout <= 0 || c.Server.WriteTimeout <= 0 {
		return fmt.Errorf("HTTP_READ_TIMEOUT and HTTP_WRITE_TIMEOUT must be positive")
	}
	if c.Server.MaxBodyBytes <= 0 {
		return fmt.Errorf("HTTP_MAX_BODY_BYTES must be positive, got %d", c.Server.MaxBodyBytes)
	}
	return nil
}

func (c *Config) validateBus() error {
	if strings.TrimSpace(c.Bus.Topic) == "" {
		return fmt.Errorf("BUS_TOPIC must not be empty")
	}
	if c.Bus.PublishTimeout <= 0 {
		return fmt.Errorf("BUS_PUBLISH_TIMEOUT must be positive, got %v", c.Bus.PublishTimeout)
	}

	switch c.Bus.Driver {
	case BusDriverMemory:
		return nil
	case BusDriverEmbedded:
		// the publisher dials a fixed URL, so a random port cannot be used here
		if c.Bus.Embedded.Port < 1 || c.Bus.Embedded.Port > 65535 {
			return fmt.Errorf("NATS_EMBEDDED_PORT must be between 1 and 65535, got %d", c.Bus.Embedded.Port)
		}
	case BusDriverNATS:
		if err := validateNATSURL(c.Bus.URL); err != nil {
			return fmt.Errorf("NATS_URL is invalid: %w", err)
		}
	default:
		return fmt.Errorf("BUS_DRIVER must be one of nats, embedded, memory, got %q", c.Bus.Driver)
	}

	if c.Bus.CircuitBreaker.Enabled && c.Bus.CircuitBreaker.FailureThreshold == 0 {
		return fmt.Errorf("BUS_BREAKER_FAILURES must be at least 1 when the circuit breaker is enabled")
	}
	return nil
}

func (c *Config) validateSecurity() error {
	if c.Security.RateLimitDisabled {
		return nil
	}
	if c.Security.RateLimitReqs < 1 {
		return fmt.Errorf("RATE_LIMIT_REQUESTS must be at least 1, got %d", c.Security.RateLimitReqs)
	}
	if c.Security.RateLimitWindow <= 0 {
		return fmt.Errorf("RATE_LIMIT_WINDOW must be positive, got %v", c.Security.RateLimitWindow)
	}
	return nil
}

func (c *Config) validateLogging() error {
	if !logging.ValidLevel(c.Logging.Level) {
		return fmt.Errorf("LOG_LEVEL must be a level name such as debug, info, warn or error, got %q", c.Logging.Level)
	}
	if c.Logging.Format != "json" && c.Logging.Format != "console" {
		return fmt.Errorf("LOG_FORMAT must be json or console, got %q", c.Logging.Format)
	}
	return nil
}

// validateNATSURL validates that the NATS URL is properly formatted
// Supports: nats://, tls://, and ws:// schemes with IP addresses/hostnames and optional ports
func validateNATSURL(rawURL string) error {
	parsedURL, err := url.Parse(rawURL)
	if err != nil {
		return fmt.Errorf("failed to parse URL: %w", err)
	}

	validSchemes := map[string]bool{"nats": true, "tls": true, "ws": true, "wss": true}
	if !validSchemes[parsedURL.Scheme] {
		return fmt.Errorf("scheme must be nats, tls, ws, or wss, got: %s", parsedURL.Scheme)
	}

	if parsedURL.Host == "" {
		return fmt.Errorf("host is required (e.g., localhost:4222, nats.example.com)")
	}

	return nil
}
