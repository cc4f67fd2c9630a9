// Librarium - Author and Book Catalog Services
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/librarium

package api

import "errors"

// Request body errors reported as BAD_REQUEST.
var (
	ErrEmptyBody    = errors.New("request body is empty")
	ErrBodyTooLarge = errors.New("request body is too large")
	ErrInvalidJSON  = errors.New("request body is not valid JSON")
	ErrInvalidID    = errors.New("id must be a valid UUID")
)
