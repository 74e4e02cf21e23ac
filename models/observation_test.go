// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
)

func TestObservationModel_PrimaryMapItem(t *testing.T) {
	o := ObservationModel{
		Key:      NewObjectKey(EntityObservation, "1"),
		RemoteID: "r1",
		EventID:  3,
		Geometry: orb.Point{10, 20},
		Properties: map[string]any{
			"forms":    []any{map[string]any{"formId": float64(7)}, map[string]any{"formId": float64(8)}},
			"accuracy": float64(12.5),
			"provider": "gps",
		},
	}

	item := o.PrimaryMapItem()
	assert.Equal(t, o.Key, item.ObservationKey)
	assert.Equal(t, "r1", item.ObservationRemoteID)
	assert.Equal(t, int64(3), item.EventID)
	assert.Equal(t, int64(7), item.FormID)
	assert.Equal(t, 12.5, item.Accuracy)
	assert.Equal(t, "gps", item.Provider)
	assert.Equal(t, orb.Bound{Min: orb.Point{10, 20}, Max: orb.Point{10, 20}}, item.Bound())
}

func TestObservationModel_PrimaryMapItem_NoForms(t *testing.T) {
	o := ObservationModel{
		Geometry:   orb.Polygon{{{0, 0}, {2, 0}, {2, 1}, {0, 0}}},
		Properties: map[string]any{"forms": "broken"},
	}

	item := o.PrimaryMapItem()
	assert.Zero(t, item.FormID)
	assert.Zero(t, item.Accuracy)
	assert.Equal(t, 2.0, item.MaxLongitude)
	assert.Equal(t, 1.0, item.MaxLatitude)
	assert.Equal(t, orb.Point{1, 0.5}, item.Coordinate())
}

func TestObjectKey(t *testing.T) {
	k := NewObjectKey(EntityAttachment, "abc")
	assert.Equal(t, EntityAttachment, k.Entity())
	assert.Equal(t, "abc", k.ID())
	assert.True(t, k.Is(EntityAttachment))
	assert.False(t, k.Is(EntityObservation))

	for _, bad := range []string{"", "abc", "mage://", "mage://attachment", "mage://attachment/", "mage://a/b/c", "http://attachment/1"} {
		_, err := ParseObjectKey(bad)
		assert.ErrorIs(t, err, ErrInvalidObjectKey, bad)
	}

	parsed, err := ParseObjectKey(string(k))
	assert.NoError(t, err)
	assert.Equal(t, k, parsed)
}
