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

type attachmentRepository struct {
	*eagerPusher[models.AttachmentModel]

	local       store.AttachmentLocalDataSource
	remote      adapter.AttachmentRemoteDataSource
	pushes      *pushCoordinator[models.AttachmentModel]
	concurrency int
}

// NewAttachmentRepository wires the attachment data sources. Only deletions
// are pushed; uploads belong to the observation sync.
func NewAttachmentRepository(local store.AttachmentLocalDataSource, remote adapter.AttachmentRemoteDataSource,
	recorder *metrics.Recorder, concurrency int) AttachmentRepository {
	r := &attachmentRepository{
		local:       local,
		remote:      remote,
		concurrency: concurrency,
	}

	r.pushes = newPushCoordinator[models.AttachmentModel](string(models.EntityAttachment), recorder)
	r.pushes.push = remote.DeleteAttachment
	r.pushes.reconcile = local.ReconcileDeletion
	r.pushes.refresh = func(ctx context.Context, a models.AttachmentModel) (models.AttachmentModel, bool) {
		current, ok := local.Get(ctx, a.Key)
		return current, ok && current.DeletionCandidate()
	}

	r.eagerPusher = &eagerPusher[models.AttachmentModel]{
		name:        "attachment deletion candidates",
		observe:     local.ObserveDeletionCandidates,
		coordinator: r.pushes,
	}
	return r
}

func (r *attachmentRepository) Get(ctx context.Context, key models.ObjectKey) (models.AttachmentModel, bool) {
	return r.local.Get(ctx, key)
}

func (r *attachmentRepository) GetAttachments(ctx context.Context, filter models.AttachmentFilter) ([]models.AttachmentModel, error) {
	return r.local.GetAttachments(ctx, filter)
}

func (r *attachmentRepository) ObserveAttachments(ctx context.Context, filter models.AttachmentFilter) *changes.Subscription[changes.Diff[models.AttachmentModel]] {
	return r.local.ObserveAttachments(ctx, filter)
}

func (r *attachmentRepository) Observe(ctx context.Context, key models.ObjectKey) *changes.Subscription[[]models.AttachmentModel] {
	return r.local.Observe(ctx, key)
}

func (r *attachmentRepository) Save(ctx context.Context, attachment models.AttachmentModel) (models.AttachmentModel, error) {
	return r.local.Save(ctx, attachment)
}

func (r *attachmentRepository) SaveLocalPath(ctx context.Context, key models.ObjectKey, localPath string) error {
	return r.local.SaveLocalPath(ctx, key, localPath)
}

func (r *attachmentRepository) MarkForDeletion(ctx context.Context, key models.ObjectKey) error {
	return r.local.MarkForDeletion(ctx, key)
}

func (r *attachmentRepository) Undelete(ctx context.Context, key models.ObjectKey) error {
	return r.local.Undelete(ctx, key)
}

func (r *attachmentRepository) Sync(ctx context.Context) error {
	candidates, err := r.local.DeletionCandidates(ctx)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrListingPushCandidates, err)
	}

	r.pushes.PushAll(ctx, candidates, r.concurrency)
	return nil
}
