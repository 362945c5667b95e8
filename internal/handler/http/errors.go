// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors rendered as JSON error bodies. Callers can match against
// them with [errors.Is].
var (
	// ErrPathNotFound is returned when a configuration path does not resolve.
	ErrPathNotFound = errors.New("configuration path not found")

	// ErrRouteNotFound is returned for requests outside the API.
	ErrRouteNotFound = errors.New("route not found")

	// ErrMethodNotAllowed is returned for any method other than GET.
	ErrMethodNotAllowed = errors.New("method not allowed")

	// ErrInvalidPath is returned when a path segment cannot be unescaped.
	ErrInvalidPath = errors.New("invalid configuration path")
)
