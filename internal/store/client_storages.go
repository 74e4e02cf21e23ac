// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-mage/internal/changes"
	"github.com/MKhiriev/go-mage/internal/config"
	"github.com/MKhiriev/go-mage/internal/logger"
)

// ClientStorages groups the local data sources over one SQLite store.
type ClientStorages struct {
	DB *DB

	Observations         ObservationLocalDataSource
	ObservationImportant ObservationImportantLocalDataSource
	ObservationLocations ObservationLocationLocalDataSource
	Attachments          AttachmentLocalDataSource
}

// NewClientStorages opens the SQLite store named by cfg.DB.DSN, runs pending
// migrations and builds the data sources on top of it. Committed writes are
// announced on notifier.
func NewClientStorages(ctx context.Context, cfg config.ClientStorage, notifier *changes.Notifier, logger *logger.Logger) (*ClientStorages, error) {
	logger.Info().Msg("creating new storages...")

	db, err := NewConnectSQLite(ctx, cfg.DB, notifier, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err := db.Migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return newClientStorages(db, logger), nil
}

func newClientStorages(db *DB, logger *logger.Logger) *ClientStorages {
	return &ClientStorages{
		DB:                   db,
		Observations:         NewObservationLocalDataSource(db, logger),
		ObservationImportant: NewObservationImportantLocalDataSource(db, logger),
		ObservationLocations: NewObservationLocationLocalDataSource(db, logger),
		Attachments:          NewAttachmentLocalDataSource(db, logger),
	}
}

// Close closes the underlying database.
func (s *ClientStorages) Close() error {
	return s.DB.Close()
}
