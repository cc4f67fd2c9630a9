// Librarium - Author and Book Catalog Services
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/librarium

package services

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/tomtom215/librarium/internal/eventbus"
	"github.com/tomtom215/librarium/internal/logging"
)

// EmbeddedNATSService runs an in-process NATS server for the bus.
//
// The NATS bus connects with retry, so it may be created before this
// service has started; it connects as soon as the server is ready.
type EmbeddedNATSService struct {
	config          eventbus.ServerConfig
	shutdownTimeout time.Duration

	mu     sync.RWMutex
	server *eventbus.EmbeddedServer
}

// NewEmbeddedNATSService creates the service. The server is started by
// Serve, not here.
func NewEmbeddedNATSService(cfg eventbus.ServerConfig, shutdownTimeout time.Duration) *EmbeddedNATSService {
	if shutdownTimeout <= 0 {
		shutdownTimeout = 10 * time.Second
	}
	return &EmbeddedNATSService{config: cfg, shutdownTimeout: shutdownTimeout}
}

// Serve implements suture.Service.
func (s *EmbeddedNATSService) Serve(ctx context.Context) error {
	srv, err := eventbus.NewEmbeddedServer(s.config)
	if err != nil {
		return fmt.Errorf("embedded NATS start failed: %w", err)
	}

	s.mu.Lock()
	s.server = srv
	s.mu.Unlock()

	logging.Info().Str("url", srv.ClientURL()).Msg("Embedded NATS server started")

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logging.Warn().Err(err).Msg("Embedded NATS server did not stop cleanly")
	}

	s.mu.Lock()
	s.server = nil
	s.mu.Unlock()

	return ctx.Err()
}

// ClientURL returns the running server's URL, or "" when it is not running.
func (s *EmbeddedNATSService) ClientURL() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.server == nil {
		return ""
	}
	return s.server.ClientURL()
}

// IsRunning reports whether the server accepts connections.
func (s *EmbeddedNATSService) IsRunning() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.server != nil && s.server.IsRunning()
}

func (s *EmbeddedNATSService) String() string {
	return "embedded-nats"
}
