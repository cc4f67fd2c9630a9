// Librarium - Author and Book Catalog Services
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/librarium

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

// TestDefaultConfig verifies that defaultConfig() returns proper defaults
func TestDefaultConfig(t *testing.T) {
	t.Parallel()

	cfg := defaultConfig(ServiceAuthors)

	if cfg.Service.Name != ServiceAuthors {
		t.Errorf("Service.Name = %q, want authors", cfg.Service.Name)
	}
	if cfg.Server.Port != 8081 {
		t.Errorf("Server.Port = %d, want 8081", cfg.Server.Port)
	}
	if cfg.Bus.Topic != ServiceAuthors {
		t.Errorf("Bus.Topic = %q, want authors", cfg.Bus.Topic)
	}
	if cfg.Bus.Driver != BusDriverNATS {
		t.Errorf("Bus.Driver = %q, want nats", cfg.Bus.Driver)
	}
	if cfg.Bus.PublishTimeout != 2*time.Second {
		t.Errorf("Bus.PublishTimeout = %v, want 2s", cfg.Bus.PublishTimeout)
	}
	if !cfg.Bus.CircuitBreaker.Enabled || cfg.Bus.CircuitBreaker.FailureThreshold != 5 {
		t.Errorf("unexpected circuit breaker defaults: %+v", cfg.Bus.CircuitBreaker)
	}
	if len(cfg.Security.CORSOrigins) != 1 || cfg.Security.CORSOrigins[0] != "*" {
		t.Errorf("Security.CORSOrigins = %v, want [*]", cfg.Security.CORSOrigins)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("Logging.Level = %q, want info", cfg.Logging.Level)
	}

	if books := defaultConfig(ServiceBooks); books.Server.Port != 8082 || books.Bus.Topic != ServiceBooks {
		t.Errorf("unexpected books defaults: port=%d topic=%q", books.Server.Port, books.Bus.Topic)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}
}

// TestEnvTransformFunc verifies environment variable name transformations
func TestEnvTransformFunc(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input    string
		expected string
	}{
		{"HTTP_PORT", "server.port"},
		{"HTTP_HOST", "server.host"},
		{"BUS_DRIVER", "bus.driver"},
		{"NATS_URL", "bus.url"},
		{"BUS_TOPIC", "bus.topic"},
		{"BUS_PUBLISH_TIMEOUT", "bus.publish_timeout"},
		{"NATS_EMBEDDED_PORT", "bus.embedded.port"},
		{"BUS_BREAKER_FAILURES", "bus.circuit_breaker.failure_threshold"},
		{"CORS_ORIGINS", "security.cors_origins"},
		{"DISABLE_RATE_LIMIT", "security.rate_limit_disabled"},
		{"LOG_LEVEL", "logging.level"},
		{"log_format", "logging.format"},

		// Unknown (should return empty)
		{"RANDOM_VAR", ""},
		{"PATH", ""},
		{"HOME", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()
			if result := envTransformFunc(tt.input); result != tt.expected {
				t.Errorf("envTransformFunc(%q) = %q, want %q", tt.input, result, tt.expected)
			}
		})
	}
}

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}
	return path
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv(ConfigPathEnvVar, filepath.Join(t.TempDir(), "missing.yaml"))
	t.Setenv("HTTP_PORT", "")
	t.Setenv("BUS_TOPIC", "")

	cfg, err := Load(ServiceBooks)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Service.Name != ServiceBooks {
		t.Errorf("Service.Name = %q, want books", cfg.Service.Name)
	}
	if cfg.Server.Port != 8082 {
		t.Errorf("Server.Port = %d, want 8082", cfg.Server.Port)
	}
	if cfg.Bus.Topic != ServiceBooks {
		t.Errorf("Bus.Topic = %q, want books", cfg.Bus.Topic)
	}
}

func TestLoad_FileThenEnv(t *testing.T) {
	path := writeConfigFile(t, `
server:
  port: 9100
bus:
  driver: memory
  topic: catalog.authors
  publish_timeout: 500ms
logging:
  level: debug
`)
	t.Setenv(ConfigPathEnvVar, path)
	t.Setenv("HTTP_PORT", "9200")
	t.Setenv("CORS_ORIGINS", "https://a.example, https://b.example")
	t.Setenv("BUS_TOPIC", "")

	cfg, err := Load(ServiceAuthors)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Server.Port != 9200 {
		t.Errorf("env should override file: Server.Port = %d, want 9200", cfg.Server.Port)
	}
	if cfg.Bus.Driver != BusDriverMemory {
		t.Errorf("Bus.Driver = %q, want memory", cfg.Bus.Driver)
	}
	if cfg.Bus.Topic != "catalog.authors" {
		t.Errorf("Bus.Topic = %q, want catalog.authors", cfg.Bus.Topic)
	}
	if cfg.Bus.PublishTimeout != 500*time.Millisecond {
		t.Errorf("Bus.PublishTimeout = %v, want 500ms", cfg.Bus.PublishTimeout)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("Logging.Level = %q, want debug", cfg.Logging.Level)
	}
	want := []string{"https://a.example", "https://b.example"}
	if len(cfg.Security.CORSOrigins) != 2 || cfg.Security.CORSOrigins[0] != want[0] || cfg.Security.CORSOrigins[1] != want[1] {
		t.Errorf("Security.CORSOrigins = %v, want %v", cfg.Security.CORSOrigins, want)
	}
	// untouched sections keep their defaults
	if cfg.Server.ReadTimeout != 15*time.Second {
		t.Errorf("Server.ReadTimeout = %v, want 15s", cfg.Server.ReadTimeout)
	}
}

func TestLoad_InvalidFile(t *testing.T) {
	t.Setenv(ConfigPathEnvVar, writeConfigFile(t, "server: [unclosed"))

	if _, err := Load(ServiceAuthors); err == nil {
		t.Error("expected error for malformed YAML")
	}
}

func TestLoad_ValidationFailure(t *testing.T) {
	t.Setenv(ConfigPathEnvVar, writeConfigFile(t, "bus:\n  driver: kafka\n"))

	if _, err := Load(ServiceAuthors); err == nil {
		t.Error("expected validation error for unknown bus driver")
	}
}

func TestServerConfigAddr(t *testing.T) {
	t.Parallel()

	s := ServerConfig{Host: "127.0.0.1", Port: 8081}
	if got := s.Addr(); got != "127.0.0.1:8081" {
		t.Errorf("Addr() = %q, want 127.0.0.1:8081", got)
	}
}

func TestEnvValueFunc_SkipsEmpty(t *testing.T) {
	t.Parallel()

	if key, _ := envValueFunc("HTTP_PORT", ""); key != "" {
		t.Errorf("expected empty value to be skipped, got key %q", key)
	}
	if key, val := envValueFunc("HTTP_PORT", "9000"); key != "server.port" || val != "9000" {
		t.Errorf("envValueFunc() = (%q, %v)", key, val)
	}
}
