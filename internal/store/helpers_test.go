// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-mage/internal/config"
	"github.com/MKhiriev/go-mage/internal/logger"
	"github.com/MKhiriev/go-mage/models"
)

const waitFor = 2 * time.Second

func testContext() context.Context {
	return logger.ContextWith(context.Background(), logger.Nop())
}

// newTestStorages opens a migrated SQLite store in a temp dir.
func newTestStorages(t *testing.T) *ClientStorages {
	t.Helper()

	cfg := config.ClientStorage{DB: config.ClientDB{DSN: filepath.Join(t.TempDir(), "mage.db")}}
	s, err := NewClientStorages(testContext(), cfg, nil, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func saveObservation(t *testing.T, s *ClientStorages, o models.ObservationModel) models.ObservationModel {
	t.Helper()
	if o.EventID == 0 {
		o.EventID = 1
	}
	if o.Geometry == nil {
		o.Geometry = orb.Point{0, 0}
	}
	saved, err := s.Observations.Save(testContext(), o)
	require.NoError(t, err)
	return saved
}

func recv[V any](t *testing.T, ch <-chan V) V {
	t.Helper()
	select {
	case v, ok := <-ch:
		require.True(t, ok, "channel closed")
		return v
	case <-time.After(waitFor):
		t.Fatal("timed out waiting for a value")
	}
	var zero V
	return zero
}

func expectNone[V any](t *testing.T, ch <-chan V) {
	t.Helper()
	select {
	case v, ok := <-ch:
		if ok {
			t.Fatalf("unexpected value %+v", v)
		}
	case <-time.After(100 * time.Millisecond):
	}
}
