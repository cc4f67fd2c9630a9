// Librarium - Author and Book Catalog Services
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/librarium

package eventbus

import (
	"context"
	"sync"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

// MemoryBus is an in-process bus backed by a Watermill GoChannel.
// Messages published without a subscriber are discarded.
type MemoryBus struct {
	pubsub *gochannel.GoChannel

	mu     sync.RWMutex
	closed bool
}

// NewMemoryBus creates an in-process bus.
func NewMemoryBus(logger watermill.LoggerAdapter) *MemoryBus {
	return &MemoryBus{
		pubsub: gochannel.NewGoChannel(gochannel.Config{
			OutputChannelBuffer: 64,
		}, logger),
	}
}

// Publish hands msg to the current subscribers of topic.
func (b *MemoryBus) Publish(_ context.Context, topic string, msg *message.Message) error {
	if topic == "" {
		return ErrEmptyTopic
	}

	b.mu.RLock()
	defer b.mu.RUnlock()
	if b.closed {
		return ErrBusClosed
	}
	return b.pubsub.Publish(topic, msg)
}

// Subscribe returns a channel of messages published to topic after the call.
// Each message must be acked before the next one is delivered.
func (b *MemoryBus) Subscribe(ctx context.Context, topic string) (<-chan *message.Message, error) {
	return b.pubsub.Subscribe(ctx, topic)
}

// Healthy reports whether the bus is open.
func (b *MemoryBus) Healthy() bool {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return !b.closed
}

// Close closes the bus and all subscriptions.
func (b *MemoryBus) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return nil
	}
	b.closed = true
	return b.pubsub.Close()
}
