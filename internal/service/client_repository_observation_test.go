// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-mage/internal/mock"
	"github.com/MKhiriev/go-mage/models"
)

func TestObservationRepository_SaveDerivesPrimaryItem(t *testing.T) {
	s := newTestStorages(t)
	repo := NewObservationRepository(s.Observations, s.ObservationLocations)
	locations := NewObservationLocationRepository(s.ObservationLocations)
	ctx := testContext()

	o, err := repo.Save(ctx, models.ObservationModel{
		EventID:  2,
		Geometry: orb.Point{30, 40},
		Properties: map[string]any{
			"forms":    []any{map[string]any{"formId": float64(9)}},
			"accuracy": float64(25),
		},
	})
	require.NoError(t, err)

	items, err := locations.GetMapItems(ctx, o.Key)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, int64(9), items[0].FormID)
	assert.Equal(t, 25.0, items[0].Accuracy)
	assert.Equal(t, orb.Point{30, 40}, items[0].Geometry)
	assert.Equal(t, 30.0, items[0].MinLongitude)

	got, ok := locations.Get(ctx, items[0].Key)
	require.True(t, ok)
	assert.Equal(t, o.Key, got.ObservationKey)
}

func TestObservationRepository_SaveWithExplicitLocations(t *testing.T) {
	s := newTestStorages(t)
	repo := NewObservationRepository(s.Observations, s.ObservationLocations)
	locations := NewObservationLocationRepository(s.ObservationLocations)
	ctx := testContext()

	o, err := repo.Save(ctx, models.ObservationModel{EventID: 2, Geometry: orb.Point{0, 0}},
		models.ObservationMapItem{FieldName: "area", Geometry: orb.Polygon{{{1, 1}, {3, 1}, {3, 2}, {1, 1}}}},
		models.ObservationMapItem{FieldName: "route", Geometry: orb.LineString{{5, 5}, {6, 7}}},
	)
	require.NoError(t, err)

	items, err := locations.GetMapItems(ctx, o.Key)
	require.NoError(t, err)
	assert.Len(t, items, 2)

	keys, err := locations.Keys(ctx, models.ObservationFilter{EventID: 2})
	require.NoError(t, err)
	assert.Len(t, keys, 2)

	box := models.NewMapBoundingBox(4, 4, 8, 8)
	inBounds, err := locations.GetMapItemsInBounds(ctx, models.ObservationFilter{Bounds: &box})
	require.NoError(t, err)
	require.Len(t, inBounds, 1)
	assert.Equal(t, "route", inBounds[0].FieldName)

	// saving again replaces the items
	_, err = repo.Save(ctx, o)
	require.NoError(t, err)
	items, err = locations.GetMapItems(ctx, o.Key)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Empty(t, items[0].FieldName)
}

func TestObservationRepository_SoftDelete(t *testing.T) {
	s := newTestStorages(t)
	repo := NewObservationRepository(s.Observations, s.ObservationLocations)
	ctx := testContext()

	o, err := repo.Save(ctx, models.ObservationModel{EventID: 1, Geometry: orb.Point{0, 0}})
	require.NoError(t, err)

	require.NoError(t, repo.MarkForDeletion(ctx, o.Key))
	got, ok := repo.Get(ctx, o.Key)
	require.True(t, ok)
	assert.True(t, got.MarkedForDeletion)

	require.NoError(t, repo.Undelete(ctx, o.Key))
	many, err := repo.GetMany(ctx, models.ObservationFilter{EventID: 1})
	require.NoError(t, err)
	require.Len(t, many, 1)
	assert.False(t, many[0].MarkedForDeletion)
}

func TestObservationRepository_SaveErrors(t *testing.T) {
	ctrl := gomock.NewController(t)
	observations := mock.NewMockObservationLocalDataSource(ctrl)
	locations := mock.NewMockObservationLocationLocalDataSource(ctrl)
	repo := NewObservationRepository(observations, locations)
	ctx := testContext()

	o := models.ObservationModel{Key: models.NewObjectKey(models.EntityObservation, "1"), Geometry: orb.Point{1, 2}}

	observations.EXPECT().Save(gomock.Any(), o).Return(o, errors.New("readonly"))
	_, err := repo.Save(ctx, o)
	assert.ErrorIs(t, err, ErrSavingObservation)

	observations.EXPECT().Save(gomock.Any(), o).Return(o, nil)
	locations.EXPECT().ReplaceForObservation(gomock.Any(), o.Key, gomock.Any()).Return(nil, errors.New("readonly"))
	_, err = repo.Save(ctx, o)
	assert.ErrorIs(t, err, ErrSavingObservation)
}

func TestObservationRepository_SaveWithoutGeometryClearsItems(t *testing.T) {
	ctrl := gomock.NewController(t)
	observations := mock.NewMockObservationLocalDataSource(ctrl)
	locations := mock.NewMockObservationLocationLocalDataSource(ctrl)
	repo := NewObservationRepository(observations, locations)

	o := models.ObservationModel{Key: models.NewObjectKey(models.EntityObservation, "1")}
	observations.EXPECT().Save(gomock.Any(), o).Return(o, nil)
	locations.EXPECT().ReplaceForObservation(gomock.Any(), o.Key).Return([]models.ObservationMapItem{}, nil)

	_, err := repo.Save(testContext(), o)
	assert.NoError(t, err)
}
