// Librarium - Author and Book Catalog Services
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/librarium

package services

import (
	"context"

	"github.com/tomtom215/librarium/internal/eventbus"
	"github.com/tomtom215/librarium/internal/logging"
)

// BusService ties the event bus lifetime to the supervisor: the bus is
// closed when the tree shuts down.
type BusService struct {
	bus eventbus.Bus
}

// NewBusService creates the service for bus.
func NewBusService(bus eventbus.Bus) *BusService {
	return &BusService{bus: bus}
}

// Serve implements suture.Service.
func (s *BusService) Serve(ctx context.Context) error {
	<-ctx.Done()

	if err := s.bus.Close(); err != nil {
		logging.Warn().Err(err).Msg("Failed to close event bus")
	}
	return ctx.Err()
}

func (s *BusService) String() string {
	return "event-bus"
}
