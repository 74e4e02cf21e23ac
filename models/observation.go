// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"time"

	"github.com/paulmach/orb"
)

// ObservationModel is an immutable snapshot of a locally stored observation.
type ObservationModel struct {
	// Key is the local identity of the observation.
	Key ObjectKey

	// RemoteID is the server-assigned identifier. Empty until the
	// observation has been seen by the server at least once.
	RemoteID string

	// EventID is the MAGE event the observation belongs to.
	EventID int64

	// UserID is the server id of the user who created the observation.
	UserID string

	// Geometry is the primary geometry of the observation.
	Geometry orb.Geometry

	// Timestamp is when the observation was recorded in the field.
	Timestamp time.Time

	// LastModified is when the record was last written locally.
	LastModified time.Time

	// Properties is the raw properties bag (forms, field values).
	Properties map[string]any

	// Dirty marks a local mutation not yet confirmed by the server.
	Dirty bool

	// MarkedForDeletion is a soft delete awaiting sync.
	MarkedForDeletion bool
}

// Synced reports whether the server has acknowledged this observation at
// least once.
func (o ObservationModel) Synced() bool {
	return o.RemoteID != ""
}

// ObservationFilter narrows observation and map item queries. Zero values
// mean "no constraint".
type ObservationFilter struct {
	// EventID restricts results to one event.
	EventID int64

	// Since and Until bound the observation timestamp (inclusive).
	Since time.Time
	Until time.Time

	// ImportantOnly keeps only observations currently flagged important.
	ImportantOnly bool

	// Bounds keeps only records whose bounding box intersects the box.
	Bounds *MapBoundingBox

	// Limit and Offset page through the ordered result.
	Limit  uint64
	Offset uint64
}

// PrimaryMapItem derives the map item of the primary geometry. The form is
// the first entry of properties.forms; accuracy and provider are read from
// the properties of the location fix.
func (o ObservationModel) PrimaryMapItem() ObservationMapItem {
	item := ObservationMapItem{
		ObservationKey:      o.Key,
		ObservationRemoteID: o.RemoteID,
		EventID:             o.EventID,
		Geometry:            o.Geometry,
		Timestamp:           o.Timestamp,
	}

	if forms, ok := o.Properties["forms"].([]any); ok && len(forms) > 0 {
		if form, ok := forms[0].(map[string]any); ok {
			item.FormID = int64(number(form["formId"]))
		}
	}
	item.Accuracy = number(o.Properties["accuracy"])
	item.Provider, _ = o.Properties["provider"].(string)

	return item.WithComputedBounds()
}

func number(v any) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case int:
		return float64(n)
	case int64:
		return float64(n)
	default:
		return 0
	}
}
