// Librarium - Author and Book Catalog Services
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/librarium

/*
Package catalog implements the author and book resources.

A resource is assembled from two generic pieces:

  - Service[E, C] owns creation and lookup of entities of type E from
    commands of type C. It generates the identifier, builds the entity,
    and inserts it into a store.Store. It never publishes.
  - Endpoint[E, C, P] is the entry point used by the HTTP boundary. It
    wraps every operation in metrics.Observe, turns entities into their
    public projection P, and on create hands the projection to a Notifier
    after the store write has completed.

The ordering on create is fixed:

	store write → projection → Notifier.Notify → return projection

Notify is best effort and has no return value, so a failed publish can
never change what Create returns.

Both resources are built from the same generic code:

	authors := catalog.NewAuthorEndpoint(catalog.NewAuthorService(nil), notifier, "authors")
	books := catalog.NewBookEndpoint(catalog.NewBookService(nil), notifier, "books")
*/
package catalog
