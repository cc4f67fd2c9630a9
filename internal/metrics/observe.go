// Librarium - Author and Book Catalog Services
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/librarium

package metrics

import "time"

// Observe runs fn as one invocation of operation on resource.
//
// The request counter is incremented before fn runs and the duration is
// recorded when it returns, whatever the outcome. An error returned by fn
// increments the error counter exactly once and is returned unchanged. A
// panic in fn is counted the same way and then re-raised.
func Observe[T any](resource, operation string, fn func() (T, error)) (T, error) {
	RequestCount.WithLabelValues(resource, operation).Inc()
	start := time.Now()

	completed := false
	defer func() {
		ExecutionDuration.WithLabelValues(resource).Observe(time.Since(start).Seconds())
		if !completed {
			// fn panicked; the panic keeps unwinding after this returns
			ErrorCount.WithLabelValues(resource).Inc()
		}
	}()

	result, err := fn()
	completed = true
	if err != nil {
		ErrorCount.WithLabelValues(resource).Inc()
	}
	return result, err
}
