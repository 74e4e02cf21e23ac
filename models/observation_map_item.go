// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"time"

	"github.com/paulmach/orb"
)

// MapItemStyle carries the drawing style of a non-point geometry.
type MapItemStyle struct {
	// StrokeColor and FillColor are "#RRGGBB" or "#RRGGBBAA" hex strings.
	StrokeColor string
	FillColor   string

	// LineWidth is the stroke width in points (scaled by the screen scale).
	LineWidth float64
}

// ObservationMapItem is the spatial projection of one geometry-bearing field
// of an observation (or of its primary geometry). It is what map tiles and
// tap-to-select operate on.
//
// The bounding box always contains Geometry; it is computed when the record
// is written and used to prune spatial queries before precise hit-testing.
type ObservationMapItem struct {
	// Key is the local key of the observation location record.
	Key ObjectKey

	// ObservationKey is the observation the location belongs to.
	ObservationKey ObjectKey

	// ObservationRemoteID is the server id of that observation, if any.
	ObservationRemoteID string

	EventID   int64
	FormID    int64
	FieldName string

	// PrimaryFieldValue and SecondaryFieldValue select the form icon.
	PrimaryFieldValue   string
	SecondaryFieldValue string

	Geometry orb.Geometry

	MinLatitude  float64
	MaxLatitude  float64
	MinLongitude float64
	MaxLongitude float64

	Timestamp time.Time
	Important bool

	// Accuracy is the horizontal accuracy radius in meters of a point
	// location; zero when unknown.
	Accuracy float64
	Provider string

	Style MapItemStyle
}

// Bound returns the stored bounding box of the item.
func (i ObservationMapItem) Bound() orb.Bound {
	return orb.Bound{
		Min: orb.Point{i.MinLongitude, i.MinLatitude},
		Max: orb.Point{i.MaxLongitude, i.MaxLatitude},
	}
}

// Coordinate returns the anchor point of the item: the point itself for
// point geometries and the bounding box center otherwise.
func (i ObservationMapItem) Coordinate() orb.Point {
	if p, ok := i.Geometry.(orb.Point); ok {
		return p
	}
	return i.Bound().Center()
}

// WithComputedBounds returns a copy of the item with its bounding box set
// from its geometry.
func (i ObservationMapItem) WithComputedBounds() ObservationMapItem {
	if i.Geometry == nil {
		return i
	}
	b := i.Geometry.Bound()
	i.MinLongitude, i.MinLatitude = b.Min.X(), b.Min.Y()
	i.MaxLongitude, i.MaxLatitude = b.Max.X(), b.Max.Y()
	return i
}
