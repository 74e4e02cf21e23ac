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

var importantColumns = []string{
	"i.observation_key", "o.remote_id", "o.event_id", "i.important", "i.reason",
	"i.user_id", "i.timestamp", "i.dirty",
}

type observationImportantLocalDataSource struct {
	*DB
	logger *logger.Logger
}

func NewObservationImportantLocalDataSource(db *DB, logger *logger.Logger) ObservationImportantLocalDataSource {
	return &observationImportantLocalDataSource{
		DB:     db,
		logger: logger,
	}
}

func scanImportant(row rowScanner) (models.ObservationImportantModel, error) {
	var (
		m         models.ObservationImportantModel
		key       string
		timestamp int64
	)
	if err := row.Scan(&key, &m.ObservationRemoteID, &m.EventID, &m.Important, &m.Reason,
		&m.UserID, &timestamp, &m.Dirty); err != nil {
		return m, err
	}
	m.ObservationKey = models.ObjectKey(key)
	m.Timestamp = fromNanos(timestamp)
	return m, nil
}

func importantQuery() sq.SelectBuilder {
	return sq.Select(importantColumns...).
		From("observation_important i").
		Join("observations o ON o.key = i.observation_key")
}

func importantKey(m models.ObservationImportantModel) string {
	return string(m.ObservationKey)
}

func (d *observationImportantLocalDataSource) Get(ctx context.Context, observationKey models.ObjectKey) (models.ObservationImportantModel, bool) {
	log := logger.FromContext(ctx)

	m, err := d.get(ctx, d.DB, observationKey)
	if err != nil {
		if !errors.Is(err, errRecordNotFound) {
			log.Err(err).
				Str("func", "observationImportantLocalDataSource.Get").
				Str("key", observationKey.String()).
				Msg("failed to get important flag")
		}
		return models.ObservationImportantModel{}, false
	}
	return m, true
}

func (d *observationImportantLocalDataSource) get(ctx context.Context, q queryer, observationKey models.ObjectKey) (models.ObservationImportantModel, error) {
	return selectOne(ctx, q, importantQuery().Where(sq.Eq{"i.observation_key": string(observationKey)}), scanImportant)
}

func (d *observationImportantLocalDataSource) ObserveImportant(ctx context.Context, observationKey models.ObjectKey) *changes.Subscription[[]models.ObservationImportantModel] {
	return changes.PublishSnapshots(ctx, d.notifier, liveQuery("observation important",
		importantKey,
		func(ctx context.Context) ([]models.ObservationImportantModel, error) {
			m, err := d.get(ctx, d.DB, observationKey)
			if errors.Is(err, errRecordNotFound) {
				return []models.ObservationImportantModel{}, nil
			}
			if err != nil {
				return nil, err
			}
			return []models.ObservationImportantModel{m}, nil
		},
		models.EntityObservationImportant, models.EntityObservation,
	))
}

func (d *observationImportantLocalDataSource) FlagImportant(ctx context.Context, observationKey models.ObjectKey, reason, userID string) error {
	return d.setImportant(ctx, "observationImportantLocalDataSource.FlagImportant", observationKey, true, reason, userID)
}

func (d *observationImportantLocalDataSource) RemoveImportant(ctx context.Context, observationKey models.ObjectKey, userID string) error {
	return d.setImportant(ctx, "observationImportantLocalDataSource.RemoveImportant", observationKey, false, "", userID)
}

// setImportant writes the locally requested flag. Every call marks the record
// dirty with a fresh timestamp, even when the value does not change, so a
// write made while a push is in flight always wins over that push's ack.
func (d *observationImportantLocalDataSource) setImportant(ctx context.Context, fn string, observationKey models.ObjectKey, important bool, reason, userID string) error {
	log := logger.FromContext(ctx)

	if !observationKey.Is(models.EntityObservation) {
		return ErrInvalidKey
	}

	err := d.Perform(ctx, func(tx *Tx) error {
		var exists int
		err := tx.QueryRowContext(ctx, `SELECT COUNT(*) FROM observations WHERE key = ?`, string(observationKey)).Scan(&exists)
		if err != nil {
			return err
		}
		if exists == 0 {
			log.Debug().Str("func", fn).Str("key", observationKey.String()).Msg("observation not found")
			return nil
		}

		stmt := sq.Insert("observation_important").
			Columns("observation_key", "important", "reason", "user_id", "timestamp", "dirty").
			Values(string(observationKey), important, reason, userID, toNanos(d.now()), true).
			Suffix(`ON CONFLICT (observation_key) DO UPDATE SET
				important = excluded.important,
				reason = excluded.reason,
				user_id = excluded.user_id,
				timestamp = excluded.timestamp,
				dirty = excluded.dirty`)
		if _, err := exec(ctx, tx, stmt); err != nil {
			return err
		}
		tx.Touch(models.EntityObservationImportant)
		return nil
	})
	if err != nil {
		log.Err(err).
			Str("func", fn).
			Str("key", observationKey.String()).
			Bool("important", important).
			Msg("failed to write important flag")
	}
	return err
}

func pushCandidatesQuery() sq.SelectBuilder {
	return importantQuery().
		Where(sq.Eq{"i.dirty": true}).
		Where(sq.NotEq{"o.remote_id": ""}).
		OrderBy("i.timestamp", "i.observation_key")
}

func (d *observationImportantLocalDataSource) PushCandidates(ctx context.Context) ([]models.ObservationImportantModel, error) {
	log := logger.FromContext(ctx)

	items, err := selectAll(ctx, d.DB, pushCandidatesQuery(), scanImportant)
	if err != nil {
		log.Err(err).
			Str("func", "observationImportantLocalDataSource.PushCandidates").
			Msg("failed to query push candidates")
		return nil, err
	}
	return items, nil
}

func (d *observationImportantLocalDataSource) ObservePushCandidates(ctx context.Context) *changes.Stream[models.ObservationImportantModel] {
	return changes.Insertions(changes.PublishDiffs(ctx, d.notifier, liveQuery("important push candidates",
		importantKey,
		func(ctx context.Context) ([]models.ObservationImportantModel, error) {
			return selectAll(ctx, d.DB, pushCandidatesQuery(), scanImportant)
		},
		models.EntityObservationImportant, models.EntityObservation,
	)))
}

// Reconcile applies the server acknowledgement of a push of pushed.
//
// An empty response is a failed push and changes nothing. A local write
// newer than the pushed snapshot keeps the record dirty. Otherwise a server
// value equal to the local one clears dirty, and a different one keeps it
// dirty with a fresh timestamp so it is pushed again.
func (d *observationImportantLocalDataSource) Reconcile(ctx context.Context, pushed models.ObservationImportantModel, response map[string]any) error {
	log := logger.FromContext(ctx).WithStr("key", pushed.ObservationKey.String())

	if len(response) == 0 {
		log.Debug().Str("func", "observationImportantLocalDataSource.Reconcile").Msg("empty push response, leaving record dirty")
		return nil
	}
	serverImportant := ServerImportantValue(response)

	err := d.Perform(ctx, func(tx *Tx) error {
		current, err := d.get(ctx, tx, pushed.ObservationKey)
		if errors.Is(err, errRecordNotFound) {
			return nil
		}
		if err != nil {
			return err
		}

		if current.Timestamp.After(pushed.Timestamp) {
			log.Debug().Str("func", "observationImportantLocalDataSource.Reconcile").Msg("superseded by a newer local write")
			return nil
		}

		update := sq.Update("observation_important").
			Where(sq.Eq{"observation_key": string(current.ObservationKey), "timestamp": toNanos(current.Timestamp)})
		if serverImportant == current.Important {
			update = update.Set("dirty", false)
		} else {
			log.Info().
				Str("func", "observationImportantLocalDataSource.Reconcile").
				Bool("local", current.Important).
				Bool("server", serverImportant).
				Msg("server disagrees with local flag, re-queueing")
			update = update.Set("dirty", true).Set("timestamp", toNanos(d.now()))
		}

		n, err := exec(ctx, tx, update)
		if err != nil {
			return err
		}
		if n > 0 {
			tx.Touch(models.EntityObservationImportant)
		}
		return nil
	})
	if err != nil {
		log.Err(err).Str("func", "observationImportantLocalDataSource.Reconcile").Msg("failed to reconcile important flag")
	}
	return err
}

// ServerImportantValue reads the authoritative flag from a push response.
// The server either sends a boolean or the important object of the
// observation, which is absent when the flag is cleared.
func ServerImportantValue(response map[string]any) bool {
	switch v := response["important"].(type) {
	case bool:
		return v
	case map[string]any:
		return true
	default:
		return false
	}
}
