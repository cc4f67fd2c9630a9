// Librarium - Author and Book Catalog Services
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/librarium

package eventbus

import (
	"context"

	"github.com/ThreeDotsLabs/watermill/message"
)

// Metadata keys set on every notification.
const (
	MetadataResource    = "resource"
	MetadataContentType = "content_type"
)

// ContentTypeJSON is the content type of notification payloads.
const ContentTypeJSON = "application/json"

// Bus is a publish/subscribe transport.
type Bus interface {
	// Publish sends msg to topic. It returns once the transport has accepted
	// or rejected the message.
	Publish(ctx context.Context, topic string, msg *message.Message) error

	// Healthy reports whether the transport can currently publish.
	Healthy() bool

	Close() error
}
