// Librarium - Author and Book Catalog Services
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/librarium

package eventbus

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	wmNats "github.com/ThreeDotsLabs/watermill-nats/v2/pkg/nats"
	"github.com/ThreeDotsLabs/watermill/message"
	natsgo "github.com/nats-io/nats.go"
	gobreaker "github.com/sony/gobreaker/v2"
)

// NATSBus publishes over core NATS through a Watermill publisher.
type NATSBus struct {
	conn           *natsgo.Conn
	publisher      message.Publisher
	circuitBreaker *gobreaker.CircuitBreaker[interface{}]
	publishTimeout time.Duration
	logger         watermill.LoggerAdapter

	mu     sync.RWMutex
	closed bool
}

// NewNATSBus connects to cfg.URL and returns a ready bus.
//
// An unreachable broker is not an error: the connection keeps retrying in
// the background and Publish fails with ErrNotConnected until it succeeds.
func NewNATSBus(cfg NATSConfig, logger watermill.LoggerAdapter) (*NATSBus, error) {
	if logger == nil {
		logger = watermill.NopLogger{}
	}
	cfg.setDefaults()

	natsOpts := []natsgo.Option{
		natsgo.Name(cfg.ClientName),
		natsgo.Timeout(cfg.ConnectTimeout),
		natsgo.RetryOnFailedConnect(true),
		natsgo.MaxReconnects(-1),
		natsgo.ReconnectWait(cfg.ReconnectWait),
		// Fail publishes while disconnected instead of buffering them.
		natsgo.ReconnectBufSize(-1),
		natsgo.ConnectHandler(func(nc *natsgo.Conn) {
			logger.Info("NATS connected", watermill.LogFields{"url": nc.ConnectedUrl()})
		}),
		natsgo.DisconnectErrHandler(func(nc *natsgo.Conn, err error) {
			if err != nil {
				logger.Error("NATS disconnected", err, nil)
			}
		}),
		natsgo.ReconnectHandler(func(nc *natsgo.Conn) {
			logger.Info("NATS reconnected", watermill.LogFields{"url": nc.ConnectedUrl()})
		}),
		natsgo.ErrorHandler(func(nc *natsgo.Conn, sub *natsgo.Subscription, err error) {
			fields := watermill.LogFields{}
			if sub != nil {
				fields["subject"] = sub.Subject
			}
			logger.Error("NATS error", err, fields)
		}),
	}

	conn, err := natsgo.Connect(cfg.URL, natsOpts...)
	if err != nil {
		return nil, fmt.Errorf("connect to NATS at %s: %w", cfg.URL, err)
	}

	wmConfig := wmNats.PublisherConfig{
		URL:       cfg.URL,
		Marshaler: &wmNats.NATSMarshaler{},
		JetStream: wmNats.JetStreamConfig{Disabled: true},
	}

	pub, err := wmNats.NewPublisherWithNatsConn(conn, wmConfig.GetPublisherPublishConfig(), logger)
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("create watermill publisher: %w", err)
	}

	bus := &NATSBus{
		conn:           conn,
		publisher:      pub,
		publishTimeout: cfg.PublishTimeout,
		logger:         logger,
	}
	if cfg.CircuitBreaker != nil {
		bus.circuitBreaker = NewCircuitBreaker(*cfg.CircuitBreaker)
	}
	return bus, nil
}

// Publish sends msg and waits for the broker to acknowledge the flush,
// bounded by the publish timeout and ctx.
func (b *NATSBus) Publish(ctx context.Context, topic string, msg *message.Message) error {
	if topic == "" {
		return ErrEmptyTopic
	}

	b.mu.RLock()
	defer b.mu.RUnlock()
	if b.closed {
		return ErrBusClosed
	}

	if b.circuitBreaker == nil {
		return b.publish(ctx, topic, msg)
	}
	_, err := b.circuitBreaker.Execute(func() (interface{}, error) {
		return nil, b.publish(ctx, topic, msg)
	})
	return err
}

func (b *NATSBus) publish(ctx context.Context, topic string, msg *message.Message) error {
	if !b.conn.IsConnected() {
		return ErrNotConnected
	}

	if err := b.publisher.Publish(topic, msg); err != nil {
		return fmt.Errorf("publish to %s: %w", topic, err)
	}

	flushCtx, cancel := context.WithTimeout(ctx, b.publishTimeout)
	defer cancel()
	if err := b.conn.FlushWithContext(flushCtx); err != nil {
		return fmt.Errorf("flush %s: %w", topic, err)
	}
	return nil
}

// Healthy reports whether the connection is up and the breaker is not open.
func (b *NATSBus) Healthy() bool {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if b.closed || !b.conn.IsConnected() {
		return false
	}
	return b.circuitBreaker == nil || b.circuitBreaker.State() != gobreaker.StateOpen
}

// BreakerState returns the circuit breaker state, or "disabled".
func (b *NATSBus) BreakerState() string {
	if b.circuitBreaker == nil {
		return "disabled"
	}
	return b.circuitBreaker.State().String()
}

// Close shuts down the publisher and the connection.
func (b *NATSBus) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return nil
	}
	b.closed = true

	err := b.publisher.Close()
	b.conn.Close()
	return err
}
