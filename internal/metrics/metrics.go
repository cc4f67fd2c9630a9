// Librarium - Author and Book Catalog Services
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/librarium

package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Catalog Metrics
	RequestCount = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "request_count_total",
			Help: "Total number of catalog operations invoked",
		},
		[]string{"resource", "operation"},
	)

	ExecutionDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "execution_duration_seconds",
			Help:    "Wall-clock duration of catalog operations in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"resource"},
	)

	ErrorCount = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "error_count_total",
			Help: "Total number of faults raised by catalog operations",
		},
		[]string{"resource"},
	)

	ClientErrorCount = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "client_error_count_total",
			Help: "Total number of faults caused by the caller (decode, validation, not found)",
		},
		[]string{"resource", "kind"},
	)

	StoreEntities = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "store_entities",
			Help: "Current number of entities held in the in-memory store",
		},
		[]string{"resource"},
	)

	// Notification Metrics
	NotificationsPublished = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "notifications_published_total",
			Help: "Total number of create notifications published",
		},
		[]string{"resource"},
	)

	NotificationsFailed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "notifications_failed_total",
			Help: "Total number of create notifications that could not be published",
		},
		[]string{"resource", "reason"}, // "serialize", "publish", "panic"
	)

	// API Metrics
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "api_request_duration_seconds",
			Help:    "API request latency in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		},
		[]string{"method", "endpoint"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "api_active_requests",
			Help: "Number of API requests currently being processed",
		},
	)
)

// Client error kinds.
const (
	KindDecode     = "decode"
	KindValidation = "validation"
	KindBadID      = "bad_id"
)

// RecordError counts a fault for resource that did not pass through Observe.
func RecordError(resource string) {
	ErrorCount.WithLabelValues(resource).Inc()
}

// RecordClientError counts a caller-induced fault. The shared per-resource
// error counter is incremented as well.
func RecordClientError(resource, kind string) {
	ClientErrorCount.WithLabelValues(resource, kind).Inc()
	RecordError(resource)
}

// RecordNotificationPublished counts a successful create notification.
func RecordNotificationPublished(resource string) {
	NotificationsPublished.WithLabelValues(resource).Inc()
}

// RecordNotificationFailed counts a dropped create notification.
func RecordNotificationFailed(resource, reason string) {
	NotificationsFailed.WithLabelValues(resource, reason).Inc()
}

// RecordStoreInsert counts one entity added to the store for resource.
// Replacements of an existing id are not recorded.
func RecordStoreInsert(resource string) {
	StoreEntities.WithLabelValues(resource).Inc()
}

// RecordAPIRequest records one served HTTP request.
func RecordAPIRequest(method, endpoint, statusCode string, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, statusCode).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// TrackActiveRequest increments or decrements the in-flight request gauge.
func TrackActiveRequest(inc bool) {
	if inc {
		APIActiveRequests.Inc()
	} else {
		APIActiveRequests.Dec()
	}
}
