// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/go-mage/internal/changes"
	"github.com/MKhiriev/go-mage/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/store_mock.go -package=mock

// ObservationLocalDataSource is the local store of observations.
type ObservationLocalDataSource interface {
	// Get returns false when key does not resolve to a stored observation.
	Get(ctx context.Context, key models.ObjectKey) (models.ObservationModel, bool)
	GetMany(ctx context.Context, filter models.ObservationFilter) ([]models.ObservationModel, error)
	ObserveMany(ctx context.Context, filter models.ObservationFilter) *changes.Subscription[changes.Diff[models.ObservationModel]]
	Observe(ctx context.Context, key models.ObjectKey) *changes.Subscription[[]models.ObservationModel]
	Save(ctx context.Context, observation models.ObservationModel) (models.ObservationModel, error)
	MarkForDeletion(ctx context.Context, key models.ObjectKey) error
	Undelete(ctx context.Context, key models.ObjectKey) error
}

// ObservationImportantLocalDataSource stores the important flag of
// observations and reconciles it with server acknowledgements.
type ObservationImportantLocalDataSource interface {
	Get(ctx context.Context, observationKey models.ObjectKey) (models.ObservationImportantModel, bool)
	ObserveImportant(ctx context.Context, observationKey models.ObjectKey) *changes.Subscription[[]models.ObservationImportantModel]
	FlagImportant(ctx context.Context, observationKey models.ObjectKey, reason, userID string) error
	RemoveImportant(ctx context.Context, observationKey models.ObjectKey, userID string) error

	// PushCandidates lists dirty flags of observations known to the server.
	PushCandidates(ctx context.Context) ([]models.ObservationImportantModel, error)
	// ObservePushCandidates emits a flag every time it newly becomes a push
	// candidate, including after each further local write.
	ObservePushCandidates(ctx context.Context) *changes.Stream[models.ObservationImportantModel]
	Reconcile(ctx context.Context, pushed models.ObservationImportantModel, response map[string]any) error
}

// ObservationLocationLocalDataSource stores the spatial items of
// observations, one per geometry-bearing field.
type ObservationLocationLocalDataSource interface {
	Get(ctx context.Context, key models.ObjectKey) (models.ObservationMapItem, bool)
	GetMapItems(ctx context.Context, observationKey models.ObjectKey) ([]models.ObservationMapItem, error)
	GetMapItemsInBounds(ctx context.Context, filter models.ObservationFilter) ([]models.ObservationMapItem, error)
	Keys(ctx context.Context, filter models.ObservationFilter) ([]string, error)
	ObserveMapItems(ctx context.Context, observationKey models.ObjectKey) *changes.Subscription[changes.Diff[models.ObservationMapItem]]
	ObserveLocations(ctx context.Context, filter models.ObservationFilter) *changes.Subscription[changes.Diff[models.ObservationMapItem]]
	ReplaceForObservation(ctx context.Context, observationKey models.ObjectKey, items ...models.ObservationMapItem) ([]models.ObservationMapItem, error)
}

// AttachmentLocalDataSource stores observation attachments.
type AttachmentLocalDataSource interface {
	Get(ctx context.Context, key models.ObjectKey) (models.AttachmentModel, bool)
	GetAttachments(ctx context.Context, filter models.AttachmentFilter) ([]models.AttachmentModel, error)
	ObserveAttachments(ctx context.Context, filter models.AttachmentFilter) *changes.Subscription[changes.Diff[models.AttachmentModel]]
	Observe(ctx context.Context, key models.ObjectKey) *changes.Subscription[[]models.AttachmentModel]
	Save(ctx context.Context, attachment models.AttachmentModel) (models.AttachmentModel, error)
	SaveLocalPath(ctx context.Context, key models.ObjectKey, localPath string) error
	MarkForDeletion(ctx context.Context, key models.ObjectKey) error
	Undelete(ctx context.Context, key models.ObjectKey) error

	DeletionCandidates(ctx context.Context) ([]models.AttachmentModel, error)
	ObserveDeletionCandidates(ctx context.Context) *changes.Stream[models.AttachmentModel]
	ReconcileDeletion(ctx context.Context, pushed models.AttachmentModel, response map[string]any) error
}
