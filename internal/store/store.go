// Librarium - Author and Book Catalog Services
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/librarium

// Package store provides a concurrency-safe in-memory entity store keyed by
// UUID. Contents live for the lifetime of the process.
package store

import (
	"sync"

	"github.com/google/uuid"
)

// Entity is anything with a stable identifier.
type Entity interface {
	EntityID() uuid.UUID
}

// Store holds entities of one type. The zero value is not usable; call New.
type Store[T Entity] struct {
	mu    sync.RWMutex
	items map[uuid.UUID]T
	order []uuid.UUID
}

// New returns an empty store.
func New[T Entity]() *Store[T] {
	return &Store[T]{items: make(map[uuid.UUID]T)}
}

// Insert stores entity under its id and reports whether the id was new. An
// entity already stored under the same id is replaced and keeps its position
// in List.
func (s *Store[T]) Insert(entity T) (added bool) {
	id := entity.EntityID()

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.items[id]; !exists {
		s.order = append(s.order, id)
		added = true
	}
	s.items[id] = entity
	return added
}

// Get returns the entity stored under id. If it does not exist, ok is false.
func (s *Store[T]) Get(id uuid.UUID) (entity T, ok bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entity, ok = s.items[id]
	return entity, ok
}

// List returns a snapshot of all entities in insertion order. The slice is
// owned by the caller; later inserts do not affect it.
func (s *Store[T]) List() []T {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]T, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.items[id])
	}
	return out
}

// Len returns the number of stored entities.
func (s *Store[T]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}
