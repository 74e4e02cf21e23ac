// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-mage/internal/changes"
	"github.com/MKhiriev/go-mage/internal/logger"
	"github.com/MKhiriev/go-mage/models"
)

var attachmentColumns = []string{
	"a.key", "a.remote_id", "a.observation_key", "o.remote_id", "o.event_id",
	"a.observation_form_id", "a.field_name", "a.name", "a.content_type", "a.size",
	"a.url", "a.local_path", "a.ord", "a.timestamp", "a.last_modified",
	"a.dirty", "a.marked_for_deletion",
}

type attachmentLocalDataSource struct {
	*DB
	logger *logger.Logger
}

func NewAttachmentLocalDataSource(db *DB, logger *logger.Logger) AttachmentLocalDataSource {
	return &attachmentLocalDataSource{
		DB:     db,
		logger: logger,
	}
}

func scanAttachment(row rowScanner) (models.AttachmentModel, error) {
	var (
		a                       models.AttachmentModel
		key, obsKey             string
		timestamp, lastModified int64
	)
	if err := row.Scan(&key, &a.RemoteID, &obsKey, &a.ObservationRemoteID, &a.EventID,
		&a.ObservationFormID, &a.FieldName, &a.Name, &a.ContentType, &a.Size,
		&a.URL, &a.LocalPath, &a.Order, &timestamp, &lastModified,
		&a.Dirty, &a.MarkedForDeletion); err != nil {
		return a, err
	}
	a.Key = models.ObjectKey(key)
	a.ObservationKey = models.ObjectKey(obsKey)
	a.Timestamp = fromNanos(timestamp)
	a.LastModified = fromNanos(lastModified)
	return a, nil
}

func attachmentKey(a models.AttachmentModel) string {
	return string(a.Key)
}

func attachmentsQuery() sq.SelectBuilder {
	return sq.Select(attachmentColumns...).
		From("attachments a").
		Join("observations o ON o.key = a.observation_key")
}

func filteredAttachmentsQuery(filter models.AttachmentFilter) sq.SelectBuilder {
	query := attachmentsQuery()
	if filter.ObservationKey != "" {
		query = query.Where(sq.Eq{"a.observation_key": string(filter.ObservationKey)})
	}
	if filter.ObservationFormID != "" {
		query = query.Where(sq.Eq{"a.observation_form_id": filter.ObservationFormID})
	}
	if filter.FieldName != "" {
		query = query.Where(sq.Eq{"a.field_name": filter.FieldName})
	}
	if !filter.IncludeDeleted {
		query = query.Where(sq.Eq{"a.marked_for_deletion": false})
	}
	return query.OrderBy("a.observation_form_id", "a.field_name", "a.ord", "a.key")
}

func (d *attachmentLocalDataSource) get(ctx context.Context, q queryer, key models.ObjectKey) (models.AttachmentModel, error) {
	if !key.Is(models.EntityAttachment) {
		return models.AttachmentModel{}, errRecordNotFound
	}
	return selectOne(ctx, q, attachmentsQuery().Where(sq.Eq{"a.key": string(key)}), scanAttachment)
}

func (d *attachmentLocalDataSource) Get(ctx context.Context, key models.ObjectKey) (models.AttachmentModel, bool) {
	log := logger.FromContext(ctx)

	a, err := d.get(ctx, d.DB, key)
	if err != nil {
		if !errors.Is(err, errRecordNotFound) {
			log.Err(err).
				Str("func", "attachmentLocalDataSource.Get").
				Str("key", key.String()).
				Msg("failed to get attachment")
		}
		return models.AttachmentModel{}, false
	}
	return a, true
}

func (d *attachmentLocalDataSource) GetAttachments(ctx context.Context, filter models.AttachmentFilter) ([]models.AttachmentModel, error) {
	log := logger.FromContext(ctx)

	items, err := selectAll(ctx, d.DB, filteredAttachmentsQuery(filter), scanAttachment)
	if err != nil {
		log.Err(err).
			Str("func", "attachmentLocalDataSource.GetAttachments").
			Str("observation_key", filter.ObservationKey.String()).
			Msg("failed to query attachments")
		return nil, err
	}
	return items, nil
}

func (d *attachmentLocalDataSource) ObserveAttachments(ctx context.Context, filter models.AttachmentFilter) *changes.Subscription[changes.Diff[models.AttachmentModel]] {
	return changes.PublishDiffs(ctx, d.notifier, liveQuery("attachments",
		attachmentKey,
		func(ctx context.Context) ([]models.AttachmentModel, error) {
			return selectAll(ctx, d.DB, filteredAttachmentsQuery(filter), scanAttachment)
		},
		models.EntityAttachment, models.EntityObservation,
	))
}

func (d *attachmentLocalDataSource) Observe(ctx context.Context, key models.ObjectKey) *changes.Subscription[[]models.AttachmentModel] {
	return changes.PublishSnapshots(ctx, d.notifier, liveQuery("attachment",
		attachmentKey,
		func(ctx context.Context) ([]models.AttachmentModel, error) {
			a, err := d.get(ctx, d.DB, key)
			if errors.Is(err, errRecordNotFound) {
				return []models.AttachmentModel{}, nil
			}
			if err != nil {
				return nil, err
			}
			return []models.AttachmentModel{a}, nil
		},
		models.EntityAttachment, models.EntityObservation,
	))
}

func (d *attachmentLocalDataSource) Save(ctx context.Context, a models.AttachmentModel) (models.AttachmentModel, error) {
	log := logger.FromContext(ctx)

	if a.Key == "" {
		a.Key = d.ids.NewKey(models.EntityAttachment)
	} else if !a.Key.Is(models.EntityAttachment) {
		return a, ErrInvalidKey
	}

	err := d.Perform(ctx, func(tx *Tx) error {
		a.LastModified = d.now()
		if a.Timestamp.IsZero() {
			a.Timestamp = a.LastModified
		}

		stmt := sq.Insert("attachments").
			Columns("key", "remote_id", "observation_key", "observation_form_id", "field_name",
				"name", "content_type", "size", "url", "local_path", "ord",
				"timestamp", "last_modified", "dirty", "marked_for_deletion").
			Values(string(a.Key), a.RemoteID, string(a.ObservationKey), a.ObservationFormID, a.FieldName,
				a.Name, a.ContentType, a.Size, a.URL, a.LocalPath, a.Order,
				toNanos(a.Timestamp), toNanos(a.LastModified), a.Dirty, a.MarkedForDeletion).
			Suffix(`ON CONFLICT (key) DO UPDATE SET
				remote_id = excluded.remote_id,
				observation_form_id = excluded.observation_form_id,
				field_name = excluded.field_name,
				name = excluded.name,
				content_type = excluded.content_type,
				size = excluded.size,
				url = excluded.url,
				local_path = excluded.local_path,
				ord = excluded.ord,
				timestamp = excluded.timestamp,
				last_modified = excluded.last_modified,
				dirty = excluded.dirty,
				marked_for_deletion = excluded.marked_for_deletion`)
		if _, err := exec(ctx, tx, stmt); err != nil {
			return err
		}
		tx.Touch(models.EntityAttachment)
		return nil
	})
	if err != nil {
		log.Err(err).
			Str("func", "attachmentLocalDataSource.Save").
			Str("key", a.Key.String()).
			Msg("failed to save attachment")
		return a, err
	}

	return a, nil
}

// SaveLocalPath records where the attachment file lives on this device. It
// is local bookkeeping and does not make the record dirty.
func (d *attachmentLocalDataSource) SaveLocalPath(ctx context.Context, key models.ObjectKey, localPath string) error {
	return d.update(ctx, "attachmentLocalDataSource.SaveLocalPath", key, func(u sq.UpdateBuilder) sq.UpdateBuilder {
		return u.Set("local_path", localPath)
	})
}

func (d *attachmentLocalDataSource) MarkForDeletion(ctx context.Context, key models.ObjectKey) error {
	return d.update(ctx, "attachmentLocalDataSource.MarkForDeletion", key, func(u sq.UpdateBuilder) sq.UpdateBuilder {
		return u.Set("marked_for_deletion", true).Set("dirty", true)
	})
}

// Undelete revives a soft-deleted attachment. An attachment the server has
// never seen stays dirty as a pending upload.
func (d *attachmentLocalDataSource) Undelete(ctx context.Context, key models.ObjectKey) error {
	return d.update(ctx, "attachmentLocalDataSource.Undelete", key, func(u sq.UpdateBuilder) sq.UpdateBuilder {
		return u.Set("marked_for_deletion", false).Set("dirty", sq.Expr("remote_id = ''"))
	})
}

func (d *attachmentLocalDataSource) update(ctx context.Context, fn string, key models.ObjectKey, set func(sq.UpdateBuilder) sq.UpdateBuilder) error {
	log := logger.FromContext(ctx)

	if !key.Is(models.EntityAttachment) {
		return ErrInvalidKey
	}

	err := d.Perform(ctx, func(tx *Tx) error {
		stmt := set(sq.Update("attachments")).
			Set("last_modified", toNanos(d.now())).
			Where(sq.Eq{"key": string(key)})
		n, err := exec(ctx, tx, stmt)
		if err != nil {
			return err
		}
		if n == 0 {
			log.Debug().Str("func", fn).Str("key", key.String()).Msg("attachment not found")
			return nil
		}
		tx.Touch(models.EntityAttachment)
		return nil
	})
	if err != nil {
		log.Err(err).Str("func", fn).Str("key", key.String()).Msg("failed to update attachment")
	}
	return err
}

func deletionCandidatesQuery() sq.SelectBuilder {
	return attachmentsQuery().
		Where(sq.Eq{"a.marked_for_deletion": true, "a.dirty": true}).
		Where(sq.NotEq{"a.remote_id": ""}).
		Where(sq.NotEq{"o.remote_id": ""}).
		OrderBy("a.last_modified", "a.key")
}

func (d *attachmentLocalDataSource) DeletionCandidates(ctx context.Context) ([]models.AttachmentModel, error) {
	log := logger.FromContext(ctx)

	items, err := selectAll(ctx, d.DB, deletionCandidatesQuery(), scanAttachment)
	if err != nil {
		log.Err(err).
			Str("func", "attachmentLocalDataSource.DeletionCandidates").
			Msg("failed to query deletion candidates")
		return nil, err
	}
	return items, nil
}

func (d *attachmentLocalDataSource) ObserveDeletionCandidates(ctx context.Context) *changes.Stream[models.AttachmentModel] {
	return changes.Insertions(changes.PublishDiffs(ctx, d.notifier, liveQuery("attachment deletion candidates",
		attachmentKey,
		func(ctx context.Context) ([]models.AttachmentModel, error) {
			return selectAll(ctx, d.DB, deletionCandidatesQuery(), scanAttachment)
		},
		models.EntityAttachment, models.EntityObservation,
	)))
}

// ReconcileDeletion applies the server acknowledgement of a deletion push.
// An empty response changes nothing. Otherwise the row is removed, unless it
// was undeleted meanwhile: the server copy is gone, so it becomes a pending
// upload again.
func (d *attachmentLocalDataSource) ReconcileDeletion(ctx context.Context, pushed models.AttachmentModel, response map[string]any) error {
	log := logger.FromContext(ctx).WithStr("key", pushed.Key.String())

	if len(response) == 0 {
		log.Debug().Str("func", "attachmentLocalDataSource.ReconcileDeletion").Msg("empty push response, leaving attachment dirty")
		return nil
	}

	err := d.Perform(ctx, func(tx *Tx) error {
		current, err := d.get(ctx, tx, pushed.Key)
		if errors.Is(err, errRecordNotFound) {
			return nil
		}
		if err != nil {
			return err
		}

		var stmt sq.Sqlizer
		if current.MarkedForDeletion {
			stmt = sq.Delete("attachments").Where(sq.Eq{"key": string(current.Key)})
		} else {
			log.Info().Str("func", "attachmentLocalDataSource.ReconcileDeletion").Msg("attachment undeleted during push, re-queueing upload")
			stmt = sq.Update("attachments").
				Set("remote_id", "").
				Set("url", "").
				Set("dirty", true).
				Set("last_modified", toNanos(d.now())).
				Where(sq.Eq{"key": string(current.Key)})
		}

		n, err := exec(ctx, tx, stmt)
		if err != nil {
			return err
		}
		if n > 0 {
			tx.Touch(models.EntityAttachment)
		}
		return nil
	})
	if err != nil {
		log.Err(err).Str("func", "attachmentLocalDataSource.ReconcileDeletion").Msg("failed to reconcile attachment deletion")
	}
	return err
}
