// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-mage/internal/changes"
	"github.com/MKhiriev/go-mage/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/service_mock.go -package=mock

// Syncer pushes every current push candidate of one entity.
type Syncer interface {
	// Sync pushes each candidate at most once per call and skips keys whose
	// push is already in flight. Push failures are not errors: the record
	// stays dirty for the next call. Only a failing candidate query is
	// returned.
	Sync(ctx context.Context) error
}

// EagerPusher follows the local push-candidate stream and pushes candidates
// as soon as they appear.
type EagerPusher interface {
	// Start stops any running listener and starts a new one bound to ctx.
	Start(ctx context.Context)
	// Stop cancels the listener and waits for in-flight pushes to finish.
	Stop()
}

// ObservationImportantRepository is the important flag of observations,
// replicated to the server.
type ObservationImportantRepository interface {
	Syncer
	EagerPusher

	Get(ctx context.Context, observationKey models.ObjectKey) (models.ObservationImportantModel, bool)
	ObserveImportant(ctx context.Context, observationKey models.ObjectKey) *changes.Subscription[[]models.ObservationImportantModel]

	// FlagImportant and RemoveImportant write the flag locally and mark it
	// dirty. The eager listener pushes it.
	FlagImportant(ctx context.Context, observationKey models.ObjectKey, reason, userID string) error
	RemoveImportant(ctx context.Context, observationKey models.ObjectKey, userID string) error
}

// AttachmentRepository is the attachments of observations with deletions
// replicated to the server.
type AttachmentRepository interface {
	Syncer
	EagerPusher

	Get(ctx context.Context, key models.ObjectKey) (models.AttachmentModel, bool)
	GetAttachments(ctx context.Context, filter models.AttachmentFilter) ([]models.AttachmentModel, error)
	ObserveAttachments(ctx context.Context, filter models.AttachmentFilter) *changes.Subscription[changes.Diff[models.AttachmentModel]]
	Observe(ctx context.Context, key models.ObjectKey) *changes.Subscription[[]models.AttachmentModel]
	Save(ctx context.Context, attachment models.AttachmentModel) (models.AttachmentModel, error)
	SaveLocalPath(ctx context.Context, key models.ObjectKey, localPath string) error
	MarkForDeletion(ctx context.Context, key models.ObjectKey) error
	Undelete(ctx context.Context, key models.ObjectKey) error
}

// ObservationLocationRepository is the read side of observation map items.
type ObservationLocationRepository interface {
	Get(ctx context.Context, key models.ObjectKey) (models.ObservationMapItem, bool)
	GetMapItems(ctx context.Context, observationKey models.ObjectKey) ([]models.ObservationMapItem, error)
	GetMapItemsInBounds(ctx context.Context, filter models.ObservationFilter) ([]models.ObservationMapItem, error)
	Keys(ctx context.Context, filter models.ObservationFilter) ([]string, error)
	ObserveMapItems(ctx context.Context, observationKey models.ObjectKey) *changes.Subscription[changes.Diff[models.ObservationMapItem]]
	ObserveLocations(ctx context.Context, filter models.ObservationFilter) *changes.Subscription[changes.Diff[models.ObservationMapItem]]
}

// ObservationRepository stores observations together with their map items.
type ObservationRepository interface {
	Get(ctx context.Context, key models.ObjectKey) (models.ObservationModel, bool)
	GetMany(ctx context.Context, filter models.ObservationFilter) ([]models.ObservationModel, error)
	ObserveMany(ctx context.Context, filter models.ObservationFilter) *changes.Subscription[changes.Diff[models.ObservationModel]]
	Observe(ctx context.Context, key models.ObjectKey) *changes.Subscription[[]models.ObservationModel]

	// Save writes the observation and replaces its map items with locations.
	// Without locations a single item is derived from the primary geometry.
	Save(ctx context.Context, observation models.ObservationModel, locations ...models.ObservationMapItem) (models.ObservationModel, error)
	MarkForDeletion(ctx context.Context, key models.ObjectKey) error
	Undelete(ctx context.Context, key models.ObjectKey) error
}

// ClientSyncJob periodically calls Sync on a set of repositories.
type ClientSyncJob interface {
	// Start launches the background sync goroutine. It syncs every interval,
	// defaulting to 5 minutes if interval is zero or negative. Any previously
	// running job is stopped before the new one begins.
	Start(ctx context.Context, interval time.Duration)

	// Stop signals the background goroutine to exit and blocks until it has
	// fully terminated.
	Stop()

	// SyncNow runs one sync round over every repository.
	SyncNow(ctx context.Context) error
}
