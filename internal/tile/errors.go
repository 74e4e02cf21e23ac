// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tile

import "errors"

var (
	// ErrNoDrawingSurface is the only hard rendering failure: the bitmap to
	// draw into could not be allocated. It fails that request only.
	ErrNoDrawingSurface = errors.New("no drawing surface")

	// ErrInvalidTile is returned for coordinates outside the pyramid.
	ErrInvalidTile = errors.New("invalid tile coordinate")
)
