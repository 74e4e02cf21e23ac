// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-mage/internal/changes"
	"github.com/MKhiriev/go-mage/internal/store"
	"github.com/MKhiriev/go-mage/models"
)

type observationRepository struct {
	observations store.ObservationLocalDataSource
	locations    store.ObservationLocationLocalDataSource
}

func NewObservationRepository(observations store.ObservationLocalDataSource, locations store.ObservationLocationLocalDataSource) ObservationRepository {
	return &observationRepository{
		observations: observations,
		locations:    locations,
	}
}

func (r *observationRepository) Get(ctx context.Context, key models.ObjectKey) (models.ObservationModel, bool) {
	return r.observations.Get(ctx, key)
}

func (r *observationRepository) GetMany(ctx context.Context, filter models.ObservationFilter) ([]models.ObservationModel, error) {
	return r.observations.GetMany(ctx, filter)
}

func (r *observationRepository) ObserveMany(ctx context.Context, filter models.ObservationFilter) *changes.Subscription[changes.Diff[models.ObservationModel]] {
	return r.observations.ObserveMany(ctx, filter)
}

func (r *observationRepository) Observe(ctx context.Context, key models.ObjectKey) *changes.Subscription[[]models.ObservationModel] {
	return r.observations.Observe(ctx, key)
}

func (r *observationRepository) Save(ctx context.Context, observation models.ObservationModel, locations ...models.ObservationMapItem) (models.ObservationModel, error) {
	saved, err := r.observations.Save(ctx, observation)
	if err != nil {
		return saved, fmt.Errorf("%w: %w", ErrSavingObservation, err)
	}

	if len(locations) == 0 && saved.Geometry != nil {
		locations = []models.ObservationMapItem{saved.PrimaryMapItem()}
	}
	if _, err := r.locations.ReplaceForObservation(ctx, saved.Key, locations...); err != nil {
		return saved, fmt.Errorf("%w: %w", ErrSavingObservation, err)
	}

	return saved, nil
}

func (r *observationRepository) MarkForDeletion(ctx context.Context, key models.ObjectKey) error {
	return r.observations.MarkForDeletion(ctx, key)
}

func (r *observationRepository) Undelete(ctx context.Context, key models.ObjectKey) error {
	return r.observations.Undelete(ctx, key)
}

type observationLocationRepository struct {
	local store.ObservationLocationLocalDataSource
}

func NewObservationLocationRepository(local store.ObservationLocationLocalDataSource) ObservationLocationRepository {
	return &observationLocationRepository{local: local}
}

func (r *observationLocationRepository) Get(ctx context.Context, key models.ObjectKey) (models.ObservationMapItem, bool) {
	return r.local.Get(ctx, key)
}

func (r *observationLocationRepository) GetMapItems(ctx context.Context, observationKey models.ObjectKey) ([]models.ObservationMapItem, error) {
	return r.local.GetMapItems(ctx, observationKey)
}

func (r *observationLocationRepository) GetMapItemsInBounds(ctx context.Context, filter models.ObservationFilter) ([]models.ObservationMapItem, error) {
	return r.local.GetMapItemsInBounds(ctx, filter)
}

func (r *observationLocationRepository) Keys(ctx context.Context, filter models.ObservationFilter) ([]string, error) {
	return r.local.Keys(ctx, filter)
}

func (r *observationLocationRepository) ObserveMapItems(ctx context.Context, observationKey models.ObjectKey) *changes.Subscription[changes.Diff[models.ObservationMapItem]] {
	return r.local.ObserveMapItems(ctx, observationKey)
}

func (r *observationLocationRepository) ObserveLocations(ctx context.Context, filter models.ObservationFilter) *changes.Subscription[changes.Diff[models.ObservationMapItem]] {
	return r.local.ObserveLocations(ctx, filter)
}
