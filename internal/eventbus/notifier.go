// Librarium - Author and Book Catalog Services
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/librarium

package eventbus

import (
	"context"
	"errors"
	"fmt"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/goccy/go-json"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/tomtom215/librarium/internal/logging"
	"github.com/tomtom215/librarium/internal/metrics"
)

const tracerName = "github.com/tomtom215/librarium/internal/eventbus"

// SpanName is the name of the span wrapping each notification.
const SpanName = "eventbus.publish"

// Failure reasons recorded in notifications_failed_total.
const (
	ReasonSerialize = "serialize"
	ReasonPublish   = "publish"
	ReasonPanic     = "panic"
)

var errPublishPanic = errors.New("panic during publish")

// Notifier publishes entity projections on a best-effort basis.
type Notifier struct {
	bus      Bus
	resource string
	tracer   trace.Tracer
}

// NotifierOption configures a Notifier.
type NotifierOption func(*Notifier)

// WithTracerProvider overrides the global OpenTelemetry tracer provider.
func WithTracerProvider(tp trace.TracerProvider) NotifierOption {
	return func(n *Notifier) {
		n.tracer = tp.Tracer(tracerName)
	}
}

// NewNotifier returns a Notifier publishing resource projections on bus.
func NewNotifier(bus Bus, resource string, opts ...NotifierOption) *Notifier {
	n := &Notifier{
		bus:      bus,
		resource: resource,
		tracer:   otel.GetTracerProvider().Tracer(tracerName),
	}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

// Notify serializes projection as indented JSON and publishes it once to
// topic. It never fails and never panics: any problem is logged at error
// level, counted, and dropped.
func (n *Notifier) Notify(ctx context.Context, topic string, projection interface{}) {
	ctx, span := n.tracer.Start(ctx, SpanName,
		trace.WithSpanKind(trace.SpanKindProducer),
		trace.WithAttributes(
			attribute.String("messaging.destination.name", topic),
			attribute.String("librarium.resource", n.resource),
		),
	)
	defer span.End()

	reason, err := n.publish(ctx, topic, projection)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "push notification failed")
		metrics.RecordNotificationFailed(n.resource, reason)
		logging.Ctx(ctx).Error().
			Err(err).
			Str("resource", n.resource).
			Str("topic", topic).
			Str("reason", reason).
			Msg("Push notification failed")
		return
	}

	metrics.RecordNotificationPublished(n.resource)
}

func (n *Notifier) publish(ctx context.Context, topic string, projection interface{}) (reason string, err error) {
	defer func() {
		if r := recover(); r != nil {
			reason = ReasonPanic
			err = fmt.Errorf("%w: %v", errPublishPanic, r)
		}
	}()

	payload, err := json.MarshalIndent(projection, "", "  ")
	if err != nil {
		return ReasonSerialize, fmt.Errorf("serialize notification: %w", err)
	}

	msg := message.NewMessageWithContext(ctx, watermill.NewUUID(), payload)
	msg.Metadata.Set(MetadataResource, n.resource)
	msg.Metadata.Set(MetadataContentType, ContentTypeJSON)

	if err := n.bus.Publish(ctx, topic, msg); err != nil {
		return ReasonPublish, err
	}
	return "", nil
}
