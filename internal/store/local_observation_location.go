// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"math"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-mage/internal/changes"
	"github.com/MKhiriev/go-mage/internal/logger"
	"github.com/MKhiriev/go-mage/models"
)

var locationColumns = []string{
	"l.key", "l.observation_key", "o.remote_id", "l.event_id", "l.form_id", "l.field_name",
	"l.primary_field_value", "l.secondary_field_value", "l.geometry",
	"l.min_latitude", "l.max_latitude", "l.min_longitude", "l.max_longitude",
	"o.timestamp", "COALESCE(i.important, 0)", "l.accuracy", "l.provider",
	"l.stroke_color", "l.fill_color", "l.line_width",
}

// locationEntities invalidate map item queries: the items join their
// observation and its important flag.
var locationEntities = []models.Entity{
	models.EntityObservationLocation, models.EntityObservation, models.EntityObservationImportant,
}

type observationLocationLocalDataSource struct {
	*DB
	logger *logger.Logger
}

func NewObservationLocationLocalDataSource(db *DB, logger *logger.Logger) ObservationLocationLocalDataSource {
	return &observationLocationLocalDataSource{
		DB:     db,
		logger: logger,
	}
}

func scanMapItem(row rowScanner) (models.ObservationMapItem, error) {
	var (
		item              models.ObservationMapItem
		key, obsKey, geom string
		timestamp         int64
	)
	if err := row.Scan(&key, &obsKey, &item.ObservationRemoteID, &item.EventID, &item.FormID, &item.FieldName,
		&item.PrimaryFieldValue, &item.SecondaryFieldValue, &geom,
		&item.MinLatitude, &item.MaxLatitude, &item.MinLongitude, &item.MaxLongitude,
		&timestamp, &item.Important, &item.Accuracy, &item.Provider,
		&item.Style.StrokeColor, &item.Style.FillColor, &item.Style.LineWidth); err != nil {
		return item, err
	}

	var err error
	item.Key = models.ObjectKey(key)
	item.ObservationKey = models.ObjectKey(obsKey)
	item.Timestamp = fromNanos(timestamp)
	if item.Geometry, err = decodeGeometry(geom); err != nil {
		return item, fmt.Errorf("geometry of %s: %w", key, err)
	}
	return item, nil
}

func mapItemKey(i models.ObservationMapItem) string {
	return string(i.Key)
}

func locationsQuery(columns ...string) sq.SelectBuilder {
	return sq.Select(columns...).
		From("observation_locations l").
		Join("observations o ON o.key = l.observation_key").
		LeftJoin("observation_important i ON i.observation_key = l.observation_key")
}

func filteredLocationsQuery(filter models.ObservationFilter, columns ...string) sq.SelectBuilder {
	query := locationsQuery(columns...).Where(sq.Eq{"o.marked_for_deletion": false})

	if filter.EventID != 0 {
		query = query.Where(sq.Eq{"l.event_id": filter.EventID})
	}
	if !filter.Since.IsZero() {
		query = query.Where(sq.GtOrEq{"o.timestamp": toNanos(filter.Since)})
	}
	if !filter.Until.IsZero() {
		query = query.Where(sq.LtOrEq{"o.timestamp": toNanos(filter.Until)})
	}
	if filter.ImportantOnly {
		query = query.Where(sq.Eq{"i.important": true})
	}
	if filter.Bounds != nil {
		query = query.Where(boundsPredicate("l.", *filter.Bounds))
	}
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}
	if filter.Offset > 0 {
		if filter.Limit == 0 {
			query = query.Limit(math.MaxInt64)
		}
		query = query.Offset(filter.Offset)
	}

	return query.OrderBy("o.timestamp DESC", "l.key")
}

func (d *observationLocationLocalDataSource) Get(ctx context.Context, key models.ObjectKey) (models.ObservationMapItem, bool) {
	log := logger.FromContext(ctx)

	item, err := selectOne(ctx, d.DB, locationsQuery(locationColumns...).Where(sq.Eq{"l.key": string(key)}), scanMapItem)
	if err != nil {
		if !errors.Is(err, errRecordNotFound) {
			log.Err(err).
				Str("func", "observationLocationLocalDataSource.Get").
				Str("key", key.String()).
				Msg("failed to get map item")
		}
		return models.ObservationMapItem{}, false
	}
	return item, true
}

func (d *observationLocationLocalDataSource) getMapItems(ctx context.Context, observationKey models.ObjectKey) ([]models.ObservationMapItem, error) {
	return selectAll(ctx, d.DB,
		locationsQuery(locationColumns...).
			Where(sq.Eq{"l.observation_key": string(observationKey)}).
			OrderBy("l.form_id", "l.field_name", "l.key"),
		scanMapItem)
}

func (d *observationLocationLocalDataSource) GetMapItems(ctx context.Context, observationKey models.ObjectKey) ([]models.ObservationMapItem, error) {
	log := logger.FromContext(ctx)

	items, err := d.getMapItems(ctx, observationKey)
	if err != nil {
		log.Err(err).
			Str("func", "observationLocationLocalDataSource.GetMapItems").
			Str("observation_key", observationKey.String()).
			Msg("failed to query map items")
		return nil, err
	}
	return items, nil
}

func (d *observationLocationLocalDataSource) GetMapItemsInBounds(ctx context.Context, filter models.ObservationFilter) ([]models.ObservationMapItem, error) {
	log := logger.FromContext(ctx)

	items, err := selectAll(ctx, d.DB, filteredLocationsQuery(filter, locationColumns...), scanMapItem)
	if err != nil {
		log.Err(err).
			Str("func", "observationLocationLocalDataSource.GetMapItemsInBounds").
			Int64("event_id", filter.EventID).
			Msg("failed to query map items")
		return nil, err
	}
	return items, nil
}

func (d *observationLocationLocalDataSource) Keys(ctx context.Context, filter models.ObservationFilter) ([]string, error) {
	log := logger.FromContext(ctx)

	keys, err := selectAll(ctx, d.DB, filteredLocationsQuery(filter, "l.key"), func(row rowScanner) (string, error) {
		var key string
		err := row.Scan(&key)
		return key, err
	})
	if err != nil {
		log.Err(err).
			Str("func", "observationLocationLocalDataSource.Keys").
			Int64("event_id", filter.EventID).
			Msg("failed to query map item keys")
		return nil, err
	}
	return keys, nil
}

func (d *observationLocationLocalDataSource) ObserveMapItems(ctx context.Context, observationKey models.ObjectKey) *changes.Subscription[changes.Diff[models.ObservationMapItem]] {
	return changes.PublishDiffs(ctx, d.notifier, liveQuery("observation map items",
		mapItemKey,
		func(ctx context.Context) ([]models.ObservationMapItem, error) {
			return d.getMapItems(ctx, observationKey)
		},
		locationEntities...,
	))
}

func (d *observationLocationLocalDataSource) ObserveLocations(ctx context.Context, filter models.ObservationFilter) *changes.Subscription[changes.Diff[models.ObservationMapItem]] {
	return changes.PublishDiffs(ctx, d.notifier, liveQuery("observation locations",
		mapItemKey,
		func(ctx context.Context) ([]models.ObservationMapItem, error) {
			return selectAll(ctx, d.DB, filteredLocationsQuery(filter, locationColumns...), scanMapItem)
		},
		locationEntities...,
	))
}

// ReplaceForObservation swaps the stored locations of an observation for
// items. Bounding boxes are recomputed from each item's geometry.
func (d *observationLocationLocalDataSource) ReplaceForObservation(ctx context.Context, observationKey models.ObjectKey, items ...models.ObservationMapItem) ([]models.ObservationMapItem, error) {
	log := logger.FromContext(ctx)

	if !observationKey.Is(models.EntityObservation) {
		return nil, ErrInvalidKey
	}

	saved := make([]models.ObservationMapItem, 0, len(items))
	err := d.Perform(ctx, func(tx *Tx) error {
		var eventID int64
		err := tx.QueryRowContext(ctx, `SELECT event_id FROM observations WHERE key = ?`, string(observationKey)).Scan(&eventID)
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug().
				Str("func", "observationLocationLocalDataSource.ReplaceForObservation").
				Str("observation_key", observationKey.String()).
				Msg("observation not found")
			return nil
		}
		if err != nil {
			return fmt.Errorf("%w: observation %s: %w", ErrExecutingQuery, observationKey, err)
		}

		if _, err := exec(ctx, tx, sq.Delete("observation_locations").Where(sq.Eq{"observation_key": string(observationKey)})); err != nil {
			return err
		}

		for _, item := range items {
			if item.Geometry == nil {
				continue
			}
			item = item.WithComputedBounds()
			item.ObservationKey = observationKey
			item.EventID = eventID
			if item.Key == "" {
				item.Key = d.ids.NewKey(models.EntityObservationLocation)
			}

			geom, err := encodeGeometry(item.Geometry)
			if err != nil {
				return err
			}

			stmt := sq.Insert("observation_locations").
				Columns("key", "observation_key", "event_id", "form_id", "field_name",
					"primary_field_value", "secondary_field_value", "geometry",
					"min_latitude", "max_latitude", "min_longitude", "max_longitude",
					"accuracy", "provider", "stroke_color", "fill_color", "line_width").
				Values(string(item.Key), string(item.ObservationKey), item.EventID, item.FormID, item.FieldName,
					item.PrimaryFieldValue, item.SecondaryFieldValue, geom,
					item.MinLatitude, item.MaxLatitude, item.MinLongitude, item.MaxLongitude,
					item.Accuracy, item.Provider, item.Style.StrokeColor, item.Style.FillColor, item.Style.LineWidth)
			if _, err := exec(ctx, tx, stmt); err != nil {
				return err
			}
			saved = append(saved, item)
		}

		tx.Touch(models.EntityObservationLocation)
		return nil
	})
	if err != nil {
		log.Err(err).
			Str("func", "observationLocationLocalDataSource.ReplaceForObservation").
			Str("observation_key", observationKey.String()).
			Msg("failed to save observation locations")
		return nil, err
	}

	return saved, nil
}
