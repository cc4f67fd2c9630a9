// Librarium - Author and Book Catalog Services
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/librarium

package catalog

import (
	"context"

	"github.com/google/uuid"

	"github.com/tomtom215/librarium/internal/metrics"
	"github.com/tomtom215/librarium/internal/store"
)

// Resource names, used as metric labels and default topics.
const (
	ResourceAuthors = "authors"
	ResourceBooks   = "books"
)

// IDGenerator produces entity identifiers.
type IDGenerator interface {
	NewID() uuid.UUID
}

// IDGeneratorFunc adapts a function to IDGenerator.
type IDGeneratorFunc func() uuid.UUID

// NewID calls f.
func (f IDGeneratorFunc) NewID() uuid.UUID { return f() }

// RandomIDs generates random (version 4) UUIDs.
var RandomIDs IDGenerator = IDGeneratorFunc(uuid.New)

// BuildFunc turns a command into an entity with the given id.
type BuildFunc[E store.Entity, C any] func(id uuid.UUID, cmd C) (E, error)

// Service creates and looks up entities of one resource.
type Service[E store.Entity, C any] struct {
	resource string
	store    *store.Store[E]
	ids      IDGenerator
	build    BuildFunc[E, C]
}

// NewService wires a service from explicit dependencies. A nil ids uses
// RandomIDs.
func NewService[E store.Entity, C any](resource string, s *store.Store[E], ids IDGenerator, build BuildFunc[E, C]) *Service[E, C] {
	if ids == nil {
		ids = RandomIDs
	}
	return &Service[E, C]{resource: resource, store: s, ids: ids, build: build}
}

// AuthorService is the service for authors.
type AuthorService = Service[Author, CreateAuthorCommand]

// BookService is the service for books.
type BookService = Service[Book, CreateBookCommand]

// NewAuthorService returns an author service with an empty store.
func NewAuthorService(ids IDGenerator) *AuthorService {
	return NewService[Author, CreateAuthorCommand](ResourceAuthors, store.New[Author](), ids, buildAuthor)
}

// NewBookService returns a book service with an empty store.
func NewBookService(ids IDGenerator) *BookService {
	return NewService[Book, CreateBookCommand](ResourceBooks, store.New[Book](), ids, buildBook)
}

// Create assigns a new id, builds the entity and stores it. The returned
// entity is already visible to FindByID and List.
func (s *Service[E, C]) Create(_ context.Context, cmd C) (E, error) {
	entity, err := s.build(s.ids.NewID(), cmd)
	if err != nil {
		var zero E
		return zero, err
	}

	if s.store.Insert(entity) {
		metrics.RecordStoreInsert(s.resource)
	}
	return entity, nil
}

// FindByID returns the entity stored under id. Absence is reported with
// ok == false and is not an error.
func (s *Service[E, C]) FindByID(_ context.Context, id uuid.UUID) (entity E, ok bool) {
	return s.store.Get(id)
}

// List returns every stored entity.
func (s *Service[E, C]) List(_ context.Context) []E {
	return s.store.List()
}

// Resource returns the resource name this service serves.
func (s *Service[E, C]) Resource() string {
	return s.resource
}
