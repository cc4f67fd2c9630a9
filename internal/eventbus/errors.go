// Librarium - Author and Book Catalog Services
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/librarium

package eventbus

import "errors"

var (
	// ErrBusClosed is returned when publishing to a closed bus.
	ErrBusClosed = errors.New("eventbus: bus is closed")

	// ErrNotConnected is returned when the broker connection is down.
	ErrNotConnected = errors.New("eventbus: not connected to broker")

	// ErrEmptyTopic is returned when publishing without a topic.
	ErrEmptyTopic = errors.New("eventbus: topic is empty")

	// ErrServerNotReady is returned when the embedded server fails to accept
	// connections in time.
	ErrServerNotReady = errors.New("eventbus: embedded NATS server not ready")
)
