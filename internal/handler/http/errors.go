// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Request parsing errors. Callers can match against them with [errors.Is].
var (
	// ErrInvalidTileCoordinates is returned when a z/x/y path segment is not
	// an integer.
	ErrInvalidTileCoordinates = errors.New("invalid tile coordinates")

	// ErrInvalidTapLocation is returned when lat, lon or zoom query
	// parameters are missing or not numbers.
	ErrInvalidTapLocation = errors.New("invalid tap location")

	// ErrInvalidTimeWindow is returned for a filter whose since is after its
	// until or whose timestamps are not RFC 3339.
	ErrInvalidTimeWindow = errors.New("invalid time window")
)
