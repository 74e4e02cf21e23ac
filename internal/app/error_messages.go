// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used by the map
// host handlers.
//
// All Msg* constants are human-readable message strings written into HTTP
// response bodies or log entries to describe the outcome of a request.
package app

const (
	// MsgInvalidDataProvided is returned when a request body cannot be
	// decoded.
	MsgInvalidDataProvided = "invalid data provided"

	// MsgInternalServerError is returned when an unexpected failure occurs
	// that the caller cannot resolve.
	MsgInternalServerError = "internal server error"

	// MsgInvalidTileCoordinates is returned when z/x/y of a tile request are
	// not integers or lie outside the tile pyramid.
	MsgInvalidTileCoordinates = "invalid tile coordinates"

	// MsgInvalidTapLocation is returned when lat, lon or zoom of a feature
	// request are missing or malformed.
	MsgInvalidTapLocation = "invalid tap location"

	// MsgInvalidTimeWindow is returned when since/until of a filter are not
	// RFC 3339 timestamps or since is after until.
	MsgInvalidTimeWindow = "invalid time window"

	// MsgObservationNotFound is returned when the observation id of the path
	// resolves to no local record.
	MsgObservationNotFound = "observation not found"

	// MsgAttachmentNotFound is returned when the attachment id of the path
	// resolves to no local record.
	MsgAttachmentNotFound = "attachment not found"

	// MsgTileRenderingFailed is returned when the drawing surface of a tile
	// could not be allocated.
	MsgTileRenderingFailed = "tile rendering failed"

	// MsgSyncFailed is returned when at least one repository failed to list
	// its push candidates during a manual sync.
	MsgSyncFailed = "sync failed"
)
