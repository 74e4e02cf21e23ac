// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/MKhiriev/go-mage/internal/changes"
	"github.com/MKhiriev/go-mage/internal/logger"
	"github.com/MKhiriev/go-mage/internal/utils"
	"github.com/MKhiriev/go-mage/migrations"
	"github.com/MKhiriev/go-mage/models"
)

// DB is the local SQLite store.
//
// The pool holds a single connection, so every statement and transaction is
// serialized by database/sql itself. Mutations go through [DB.Perform]; once
// a block commits, the entities it touched are announced on the notifier.
type DB struct {
	*sql.DB
	notifier *changes.Notifier
	logger   *logger.Logger
	ids      *utils.UUIDGenerator

	clockMu sync.Mutex
	clock   func() time.Time
	last    time.Time
}

// queryer is satisfied by both *sql.DB and *sql.Tx so reads can run inside
// and outside of Perform blocks.
type queryer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// Tx is the transaction handed to a Perform block.
type Tx struct {
	*sql.Tx
	touched []models.Entity
}

// Touch records that the block changed rows of the given entities.
func (tx *Tx) Touch(entities ...models.Entity) {
	for _, e := range entities {
		if !slices.Contains(tx.touched, e) {
			tx.touched = append(tx.touched, e)
		}
	}
}

func newDB(conn *sql.DB, notifier *changes.Notifier, log *logger.Logger) *DB {
	if notifier == nil {
		notifier = changes.NewNotifier()
	}
	return &DB{
		DB:       conn,
		notifier: notifier,
		logger:   log,
		ids:      utils.NewUUIDGenerator(),
		clock:    time.Now,
	}
}

// Notifier returns the change notifier writes are announced on.
func (db *DB) Notifier() *changes.Notifier {
	return db.notifier
}

// Perform runs fn in a transaction. The block must only use tx: the pool has
// one connection and it is held by tx until Perform returns.
func (db *DB) Perform(ctx context.Context, fn func(tx *Tx) error) (err error) {
	log := logger.FromContext(ctx)

	sqlTx, err := db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "DB.Perform").Msg("failed to begin transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}

	tx := &Tx{Tx: sqlTx}
	defer func() {
		if err != nil {
			if rbErr := sqlTx.Rollback(); rbErr != nil && !errors.Is(rbErr, sql.ErrTxDone) {
				log.Err(rbErr).Str("func", "DB.Perform").Msg("failed to roll back transaction")
			}
		}
	}()

	if err = fn(tx); err != nil {
		return err
	}

	if err = sqlTx.Commit(); err != nil {
		log.Err(err).Str("func", "DB.Perform").Msg("failed to commit transaction")
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	if len(tx.touched) > 0 {
		db.notifier.Notify(changes.Notification{Entities: tx.touched})
	}

	return nil
}

// now returns the current time, strictly after any value it returned before.
// Local writes use it as their causality token.
func (db *DB) now() time.Time {
	db.clockMu.Lock()
	defer db.clockMu.Unlock()

	t := db.clock()
	if !t.After(db.last) {
		t = db.last.Add(time.Nanosecond)
	}
	db.last = t
	return t
}

// Migrate applies the embedded schema migrations.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB)
}

func toNanos(t time.Time) int64 {
	if t.IsZero() {
		return 0
	}
	return t.UnixNano()
}

func fromNanos(n int64) time.Time {
	if n == 0 {
		return time.Time{}
	}
	return time.Unix(0, n)
}
