// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"fmt"
	"math"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-mage/internal/changes"
	"github.com/MKhiriev/go-mage/internal/logger"
	"github.com/MKhiriev/go-mage/models"
)

var observationColumns = []string{
	"o.key", "o.remote_id", "o.event_id", "o.user_id", "o.geometry", "o.properties",
	"o.timestamp", "o.last_modified", "o.dirty", "o.marked_for_deletion",
}

type observationLocalDataSource struct {
	*DB
	logger *logger.Logger
}

func NewObservationLocalDataSource(db *DB, logger *logger.Logger) ObservationLocalDataSource {
	return &observationLocalDataSource{
		DB:     db,
		logger: logger,
	}
}

func scanObservation(row rowScanner) (models.ObservationModel, error) {
	var (
		o                      models.ObservationModel
		key, geometry, props   string
		timestamp, lastChanged int64
	)
	if err := row.Scan(&key, &o.RemoteID, &o.EventID, &o.UserID, &geometry, &props,
		&timestamp, &lastChanged, &o.Dirty, &o.MarkedForDeletion); err != nil {
		return o, err
	}

	var err error
	o.Key = models.ObjectKey(key)
	o.Timestamp = fromNanos(timestamp)
	o.LastModified = fromNanos(lastChanged)
	if o.Geometry, err = decodeGeometry(geometry); err != nil {
		return o, fmt.Errorf("geometry of %s: %w", key, err)
	}
	if o.Properties, err = decodeProperties(props); err != nil {
		return o, fmt.Errorf("properties of %s: %w", key, err)
	}
	return o, nil
}

func observationsQuery(filter models.ObservationFilter) sq.SelectBuilder {
	query := sq.Select(observationColumns...).From("observations o")

	if filter.EventID != 0 {
		query = query.Where(sq.Eq{"o.event_id": filter.EventID})
	}
	if !filter.Since.IsZero() {
		query = query.Where(sq.GtOrEq{"o.timestamp": toNanos(filter.Since)})
	}
	if !filter.Until.IsZero() {
		query = query.Where(sq.LtOrEq{"o.timestamp": toNanos(filter.Until)})
	}
	if filter.ImportantOnly {
		query = query.Where("EXISTS (SELECT 1 FROM observation_important i WHERE i.observation_key = o.key AND i.important = 1)")
	}
	if filter.Bounds != nil {
		inBounds, args, _ := boundsPredicate("l.", *filter.Bounds).ToSql()
		query = query.Where("EXISTS (SELECT 1 FROM observation_locations l WHERE l.observation_key = o.key AND "+inBounds+")", args...)
	}
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}
	if filter.Offset > 0 {
		if filter.Limit == 0 {
			// sqlite only accepts OFFSET after LIMIT
			query = query.Limit(math.MaxInt64)
		}
		query = query.Offset(filter.Offset)
	}

	return query.OrderBy("o.timestamp DESC", "o.key")
}

func (d *observationLocalDataSource) Get(ctx context.Context, key models.ObjectKey) (models.ObservationModel, bool) {
	log := logger.FromContext(ctx)

	o, err := d.get(ctx, d.DB, key)
	if err != nil {
		if !errors.Is(err, errRecordNotFound) {
			log.Err(err).
				Str("func", "observationLocalDataSource.Get").
				Str("key", key.String()).
				Msg("failed to get observation")
		}
		return models.ObservationModel{}, false
	}
	return o, true
}

func (d *observationLocalDataSource) get(ctx context.Context, q queryer, key models.ObjectKey) (models.ObservationModel, error) {
	if !key.Is(models.EntityObservation) {
		return models.ObservationModel{}, errRecordNotFound
	}
	return selectOne(ctx, q, sq.Select(observationColumns...).From("observations o").Where(sq.Eq{"o.key": string(key)}), scanObservation)
}

func (d *observationLocalDataSource) GetMany(ctx context.Context, filter models.ObservationFilter) ([]models.ObservationModel, error) {
	log := logger.FromContext(ctx)

	items, err := selectAll(ctx, d.DB, observationsQuery(filter), scanObservation)
	if err != nil {
		log.Err(err).
			Str("func", "observationLocalDataSource.GetMany").
			Int64("event_id", filter.EventID).
			Msg("failed to query observations")
		return nil, err
	}
	return items, nil
}

func (d *observationLocalDataSource) ObserveMany(ctx context.Context, filter models.ObservationFilter) *changes.Subscription[changes.Diff[models.ObservationModel]] {
	return changes.PublishDiffs(ctx, d.notifier, liveQuery("observations",
		func(o models.ObservationModel) string { return string(o.Key) },
		func(ctx context.Context) ([]models.ObservationModel, error) {
			return selectAll(ctx, d.DB, observationsQuery(filter), scanObservation)
		},
		models.EntityObservation, models.EntityObservationImportant, models.EntityObservationLocation,
	))
}

func (d *observationLocalDataSource) Observe(ctx context.Context, key models.ObjectKey) *changes.Subscription[[]models.ObservationModel] {
	return changes.PublishSnapshots(ctx, d.notifier, liveQuery("observation",
		func(o models.ObservationModel) string { return string(o.Key) },
		func(ctx context.Context) ([]models.ObservationModel, error) {
			o, err := d.get(ctx, d.DB, key)
			if errors.Is(err, errRecordNotFound) {
				return []models.ObservationModel{}, nil
			}
			if err != nil {
				return nil, err
			}
			return []models.ObservationModel{o}, nil
		},
		models.EntityObservation,
	))
}

func (d *observationLocalDataSource) Save(ctx context.Context, o models.ObservationModel) (models.ObservationModel, error) {
	log := logger.FromContext(ctx)

	if o.Key == "" {
		o.Key = d.ids.NewKey(models.EntityObservation)
	} else if !o.Key.Is(models.EntityObservation) {
		return o, ErrInvalidKey
	}

	geometry, err := encodeGeometry(o.Geometry)
	if err != nil {
		return o, err
	}
	props, err := encodeProperties(o.Properties)
	if err != nil {
		return o, err
	}

	err = d.Perform(ctx, func(tx *Tx) error {
		o.LastModified = d.now()
		if o.Timestamp.IsZero() {
			o.Timestamp = o.LastModified
		}

		stmt := sq.Insert("observations").
			Columns("key", "remote_id", "event_id", "user_id", "geometry", "properties",
				"timestamp", "last_modified", "dirty", "marked_for_deletion").
			Values(string(o.Key), o.RemoteID, o.EventID, o.UserID, geometry, props,
				toNanos(o.Timestamp), toNanos(o.LastModified), o.Dirty, o.MarkedForDeletion).
			Suffix(`ON CONFLICT (key) DO UPDATE SET
				remote_id = excluded.remote_id,
				event_id = excluded.event_id,
				user_id = excluded.user_id,
				geometry = excluded.geometry,
				properties = excluded.properties,
				timestamp = excluded.timestamp,
				last_modified = excluded.last_modified,
				dirty = excluded.dirty,
				marked_for_deletion = excluded.marked_for_deletion`)

		if _, err := exec(ctx, tx, stmt); err != nil {
			return err
		}
		tx.Touch(models.EntityObservation)
		return nil
	})
	if err != nil {
		log.Err(err).
			Str("func", "observationLocalDataSource.Save").
			Str("key", o.Key.String()).
			Msg("failed to save observation")
		return o, err
	}

	return o, nil
}

func (d *observationLocalDataSource) MarkForDeletion(ctx context.Context, key models.ObjectKey) error {
	return d.setDeleted(ctx, "observationLocalDataSource.MarkForDeletion", key, true)
}

func (d *observationLocalDataSource) Undelete(ctx context.Context, key models.ObjectKey) error {
	return d.setDeleted(ctx, "observationLocalDataSource.Undelete", key, false)
}

func (d *observationLocalDataSource) setDeleted(ctx context.Context, fn string, key models.ObjectKey, deleted bool) error {
	log := logger.FromContext(ctx)

	if !key.Is(models.EntityObservation) {
		return ErrInvalidKey
	}

	err := d.Perform(ctx, func(tx *Tx) error {
		n, err := exec(ctx, tx, sq.Update("observations").
			Set("marked_for_deletion", deleted).
			Set("dirty", true).
			Set("last_modified", toNanos(d.now())).
			Where(sq.Eq{"key": string(key)}))
		if err != nil {
			return err
		}
		if n == 0 {
			log.Debug().Str("func", fn).Str("key", key.String()).Msg("observation not found")
			return nil
		}
		tx.Touch(models.EntityObservation)
		return nil
	})
	if err != nil {
		log.Err(err).Str("func", fn).Str("key", key.String()).Msg("failed to update observation")
	}
	return err
}
