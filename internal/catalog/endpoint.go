// Librarium - Author and Book Catalog Services
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/librarium

package catalog

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/tomtom215/librarium/internal/logging"
	"github.com/tomtom215/librarium/internal/metrics"
	"github.com/tomtom215/librarium/internal/store"
)

// Operation names used as metric labels.
const (
	OpList   = "list"
	OpGet    = "get"
	OpCreate = "create"
)

// Notifier publishes a projection after a successful create. It must not
// fail or panic; eventbus.Notifier is the production implementation.
type Notifier interface {
	Notify(ctx context.Context, topic string, projection interface{})
}

// Endpoint exposes list, get and create for one resource.
type Endpoint[E store.Entity, C any, P any] struct {
	resource string
	kind     string
	topic    string
	service  *Service[E, C]
	project  func(E) P
	notifier Notifier
}

// EndpointConfig holds the resource-specific parts of an Endpoint.
type EndpointConfig[E store.Entity, P any] struct {
	// Resource is the plural name used for metrics and log lines.
	Resource string
	// Kind is the singular name used in not-found errors.
	Kind    string
	Topic   string
	Project func(E) P
}

// NewEndpoint wires an endpoint around service.
func NewEndpoint[E store.Entity, C any, P any](cfg EndpointConfig[E, P], service *Service[E, C], notifier Notifier) *Endpoint[E, C, P] {
	return &Endpoint[E, C, P]{
		resource: cfg.Resource,
		kind:     cfg.Kind,
		topic:    cfg.Topic,
		service:  service,
		project:  cfg.Project,
		notifier: notifier,
	}
}

// AuthorEndpoint serves authors.
type AuthorEndpoint = Endpoint[Author, CreateAuthorCommand, AuthorResponse]

// BookEndpoint serves books.
type BookEndpoint = Endpoint[Book, CreateBookCommand, BookResponse]

// NewAuthorEndpoint returns the author endpoint publishing to topic.
func NewAuthorEndpoint(service *AuthorService, notifier Notifier, topic string) *AuthorEndpoint {
	return NewEndpoint(EndpointConfig[Author, AuthorResponse]{
		Resource: ResourceAuthors,
		Kind:     "author",
		Topic:    topic,
		Project:  ToAuthorResponse,
	}, service, notifier)
}

// NewBookEndpoint returns the book endpoint publishing to topic.
func NewBookEndpoint(service *BookService, notifier Notifier, topic string) *BookEndpoint {
	return NewEndpoint(EndpointConfig[Book, BookResponse]{
		Resource: ResourceBooks,
		Kind:     "book",
		Topic:    topic,
		Project:  ToBookResponse,
	}, service, notifier)
}

// Resource returns the plural resource name.
func (e *Endpoint[E, C, P]) Resource() string { return e.resource }

// List returns the projections of all stored entities.
func (e *Endpoint[E, C, P]) List(ctx context.Context) ([]P, error) {
	return metrics.Observe(e.resource, OpList, func() ([]P, error) {
		logging.Ctx(ctx).Info().Msgf("Get %s", e.resource)

		entities := e.service.List(ctx)
		out := make([]P, len(entities))
		for i, entity := range entities {
			out[i] = e.project(entity)
		}
		return out, nil
	})
}

// Get returns the projection of the entity stored under id, or a
// *NotFoundError.
func (e *Endpoint[E, C, P]) Get(ctx context.Context, id uuid.UUID) (P, error) {
	return metrics.Observe(e.resource, OpGet, func() (P, error) {
		logging.Ctx(ctx).Info().Msgf("Find %s by %s", e.resource, id)

		entity, ok := e.service.FindByID(ctx, id)
		if !ok {
			var zero P
			return zero, &NotFoundError{Kind: e.kind, ID: id}
		}
		return e.project(entity), nil
	})
}

// Create stores a new entity, publishes its projection, and returns the
// projection. The publish outcome does not affect the result.
func (e *Endpoint[E, C, P]) Create(ctx context.Context, cmd C) (P, error) {
	return metrics.Observe(e.resource, OpCreate, func() (P, error) {
		logging.Ctx(ctx).Info().Msgf("Create %s", e.resource)

		entity, err := e.service.Create(ctx, cmd)
		if err != nil {
			var zero P
			return zero, fmt.Errorf("create %s: %w", e.kind, err)
		}

		projection := e.project(entity)
		if e.notifier != nil {
			e.notifier.Notify(ctx, e.topic, projection)
		}
		return projection, nil
	})
}
