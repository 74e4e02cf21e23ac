// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/paulmach/orb"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-mage/internal/changes"
	"github.com/MKhiriev/go-mage/internal/config"
	"github.com/MKhiriev/go-mage/internal/logger"
	"github.com/MKhiriev/go-mage/internal/metrics"
	"github.com/MKhiriev/go-mage/internal/store"
	"github.com/MKhiriev/go-mage/models"
)

func newTestStorages(t *testing.T) *store.ClientStorages {
	t.Helper()

	cfg := config.ClientStorage{DB: config.ClientDB{DSN: filepath.Join(t.TempDir(), "mage.db")}}
	s, err := store.NewClientStorages(testContext(), cfg, changes.NewNotifier(), logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func saveRemoteObservation(t *testing.T, s *store.ClientStorages, remoteID string) models.ObservationModel {
	t.Helper()

	o, err := s.Observations.Save(testContext(), models.ObservationModel{RemoteID: remoteID, EventID: 1, Geometry: orb.Point{0, 0}})
	require.NoError(t, err)
	return o
}

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	require.Eventually(t, cond, 3*time.Second, 10*time.Millisecond)
}

func testutilValue(r *metrics.Recorder, entity, result string) float64 {
	return testutil.ToFloat64(r.PushCounter(entity, result))
}
