// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-mage/internal/adapter"
	"github.com/MKhiriev/go-mage/internal/changes"
	"github.com/MKhiriev/go-mage/internal/metrics"
	"github.com/MKhiriev/go-mage/internal/store"
	"github.com/MKhiriev/go-mage/models"
)

type observationImportantRepository struct {
	*eagerPusher[models.ObservationImportantModel]

	local       store.ObservationImportantLocalDataSource
	remote      adapter.ImportantRemoteDataSource
	pushes      *pushCoordinator[models.ObservationImportantModel]
	concurrency int
}

// NewObservationImportantRepository wires the important flag local and
// remote data sources. concurrency bounds parallel pushes within one Sync.
func NewObservationImportantRepository(local store.ObservationImportantLocalDataSource, remote adapter.ImportantRemoteDataSource,
	recorder *metrics.Recorder, concurrency int) ObservationImportantRepository {
	r := &observationImportantRepository{
		local:       local,
		remote:      remote,
		concurrency: concurrency,
	}

	r.pushes = newPushCoordinator[models.ObservationImportantModel](string(models.EntityObservationImportant), recorder)
	r.pushes.push = remote.PushImportant
	r.pushes.reconcile = local.Reconcile
	r.pushes.refresh = func(ctx context.Context, m models.ObservationImportantModel) (models.ObservationImportantModel, bool) {
		current, ok := local.Get(ctx, m.ObservationKey)
		return current, ok && current.PushCandidate()
	}

	r.eagerPusher = &eagerPusher[models.ObservationImportantModel]{
		name:        "important push candidates",
		observe:     local.ObservePushCandidates,
		coordinator: r.pushes,
	}
	return r
}

func (r *observationImportantRepository) Get(ctx context.Context, observationKey models.ObjectKey) (models.ObservationImportantModel, bool) {
	return r.local.Get(ctx, observationKey)
}

func (r *observationImportantRepository) ObserveImportant(ctx context.Context, observationKey models.ObjectKey) *changes.Subscription[[]models.ObservationImportantModel] {
	return r.local.ObserveImportant(ctx, observationKey)
}

func (r *observationImportantRepository) FlagImportant(ctx context.Context, observationKey models.ObjectKey, reason, userID string) error {
	return r.local.FlagImportant(ctx, observationKey, reason, userID)
}

func (r *observationImportantRepository) RemoveImportant(ctx context.Context, observationKey models.ObjectKey, userID string) error {
	return r.local.RemoveImportant(ctx, observationKey, userID)
}

func (r *observationImportantRepository) Sync(ctx context.Context) error {
	candidates, err := r.local.PushCandidates(ctx)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrListingPushCandidates, err)
	}

	r.pushes.PushAll(ctx, candidates, r.concurrency)
	return nil
}
