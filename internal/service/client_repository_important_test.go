// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-mage/internal/metrics"
	"github.com/MKhiriev/go-mage/internal/mock"
	"github.com/MKhiriev/go-mage/models"
)

func importantModel(id string) models.ObservationImportantModel {
	return models.ObservationImportantModel{
		ObservationKey:      models.NewObjectKey(models.EntityObservation, id),
		ObservationRemoteID: "remote-" + id,
		Important:           true,
		Dirty:               true,
	}
}

func TestImportantRepository_SyncPushesAndReconciles(t *testing.T) {
	ctrl := gomock.NewController(t)
	local := mock.NewMockObservationImportantLocalDataSource(ctrl)
	remote := mock.NewMockImportantRemoteDataSource(ctrl)
	repo := NewObservationImportantRepository(local, remote, metrics.NewRecorder(), 1)
	ctx := testContext()

	acked, failed := importantModel("1"), importantModel("2")
	ack := map[string]any{"important": map[string]any{"userId": "u1"}}

	local.EXPECT().PushCandidates(gomock.Any()).Return([]models.ObservationImportantModel{acked, failed}, nil)
	remote.EXPECT().PushImportant(gomock.Any(), acked).Return(ack)
	remote.EXPECT().PushImportant(gomock.Any(), failed).Return(map[string]any{})
	local.EXPECT().Reconcile(gomock.Any(), acked, ack).Return(nil)

	require.NoError(t, repo.Sync(ctx))
}

func TestImportantRepository_SyncCandidateQueryFails(t *testing.T) {
	ctrl := gomock.NewController(t)
	local := mock.NewMockObservationImportantLocalDataSource(ctrl)
	remote := mock.NewMockImportantRemoteDataSource(ctrl)
	repo := NewObservationImportantRepository(local, remote, metrics.NewRecorder(), 1)

	local.EXPECT().PushCandidates(gomock.Any()).Return(nil, errors.New("no such table"))

	assert.ErrorIs(t, repo.Sync(testContext()), ErrListingPushCandidates)
}

func TestImportantRepository_ConcurrentSyncsShareOnePush(t *testing.T) {
	ctrl := gomock.NewController(t)
	local := mock.NewMockObservationImportantLocalDataSource(ctrl)
	remote := mock.NewMockImportantRemoteDataSource(ctrl)
	repo := NewObservationImportantRepository(local, remote, metrics.NewRecorder(), 4)
	ctx := testContext()

	m := importantModel("1")
	entered := make(chan struct{})
	release := make(chan struct{})

	local.EXPECT().PushCandidates(gomock.Any()).Return([]models.ObservationImportantModel{m}, nil).Times(6)
	remote.EXPECT().PushImportant(gomock.Any(), m).DoAndReturn(func(context.Context, models.ObservationImportantModel) map[string]any {
		close(entered)
		<-release
		return map[string]any{"important": true}
	}).Times(1)
	local.EXPECT().Reconcile(gomock.Any(), m, gomock.Any()).Return(nil).Times(1)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		assert.NoError(t, repo.Sync(ctx))
	}()
	<-entered

	for range 5 {
		assert.NoError(t, repo.Sync(ctx))
	}
	close(release)
	wg.Wait()
}

func TestImportantRepository_Delegates(t *testing.T) {
	ctrl := gomock.NewController(t)
	local := mock.NewMockObservationImportantLocalDataSource(ctrl)
	remote := mock.NewMockImportantRemoteDataSource(ctrl)
	repo := NewObservationImportantRepository(local, remote, metrics.NewRecorder(), 1)
	ctx := testContext()
	key := models.NewObjectKey(models.EntityObservation, "1")

	local.EXPECT().FlagImportant(gomock.Any(), key, "flooding", "u1").Return(nil)
	local.EXPECT().RemoveImportant(gomock.Any(), key, "u1").Return(nil)
	local.EXPECT().Get(gomock.Any(), key).Return(importantModel("1"), true)

	require.NoError(t, repo.FlagImportant(ctx, key, "flooding", "u1"))
	require.NoError(t, repo.RemoveImportant(ctx, key, "u1"))
	got, ok := repo.Get(ctx, key)
	assert.True(t, ok)
	assert.True(t, got.Important)
}

// The scenario below runs against a real store: flag with the server
// unreachable, then sync twice.
func TestImportantRepository_FailedPushIsRetriedOnNextSync(t *testing.T) {
	ctrl := gomock.NewController(t)
	s := newTestStorages(t)
	remote := mock.NewMockImportantRemoteDataSource(ctrl)
	repo := NewObservationImportantRepository(s.ObservationImportant, remote, metrics.NewRecorder(), 1)
	ctx := testContext()

	o := saveRemoteObservation(t, s, "r1")
	require.NoError(t, repo.FlagImportant(ctx, o.Key, "", "u1"))

	flagged, ok := repo.Get(ctx, o.Key)
	require.True(t, ok)
	require.True(t, flagged.Dirty)

	gomock.InOrder(
		remote.EXPECT().PushImportant(gomock.Any(), gomock.Any()).Return(map[string]any{}),
		remote.EXPECT().PushImportant(gomock.Any(), gomock.Any()).Return(map[string]any{"important": true}),
	)

	require.NoError(t, repo.Sync(ctx))
	afterFailure, _ := repo.Get(ctx, o.Key)
	assert.True(t, afterFailure.Dirty)
	assert.False(t, repo.(*observationImportantRepository).pushes.Pending(o.Key.String()))

	require.NoError(t, repo.Sync(ctx))
	afterAck, _ := repo.Get(ctx, o.Key)
	assert.False(t, afterAck.Dirty)
	assert.True(t, afterAck.Important)
}

func TestImportantRepository_StaleAckDoesNotOverwriteNewerWrite(t *testing.T) {
	ctrl := gomock.NewController(t)
	s := newTestStorages(t)
	remote := mock.NewMockImportantRemoteDataSource(ctrl)
	repo := NewObservationImportantRepository(s.ObservationImportant, remote, metrics.NewRecorder(), 1)
	ctx := testContext()

	o := saveRemoteObservation(t, s, "r1")
	require.NoError(t, repo.FlagImportant(ctx, o.Key, "", "u1"))

	remote.EXPECT().PushImportant(gomock.Any(), gomock.Any()).DoAndReturn(func(ctx context.Context, m models.ObservationImportantModel) map[string]any {
		assert.True(t, m.Important)
		// the user clears the flag while the push is on the wire
		require.NoError(t, repo.RemoveImportant(ctx, o.Key, "u1"))
		return map[string]any{"important": true}
	})

	require.NoError(t, repo.Sync(ctx))

	got, ok := repo.Get(ctx, o.Key)
	require.True(t, ok)
	assert.True(t, got.Dirty)
	assert.False(t, got.Important)

	// the newer value goes out on the next sync
	remote.EXPECT().PushImportant(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, m models.ObservationImportantModel) map[string]any {
		assert.False(t, m.Important)
		return map[string]any{"id": "r1"}
	})
	require.NoError(t, repo.Sync(ctx))

	got, _ = repo.Get(ctx, o.Key)
	assert.False(t, got.Dirty)
}

func TestImportantRepository_EagerPushOnLocalWrite(t *testing.T) {
	ctrl := gomock.NewController(t)
	s := newTestStorages(t)
	remote := mock.NewMockImportantRemoteDataSource(ctrl)
	repo := NewObservationImportantRepository(s.ObservationImportant, remote, metrics.NewRecorder(), 1)
	ctx := testContext()

	o := saveRemoteObservation(t, s, "r1")
	remote.EXPECT().PushImportant(gomock.Any(), gomock.Any()).Return(map[string]any{"important": true}).MinTimes(1)

	repo.Start(ctx)
	defer repo.Stop()

	require.NoError(t, repo.FlagImportant(ctx, o.Key, "", "u1"))
	waitFor(t, func() bool {
		got, ok := repo.Get(ctx, o.Key)
		return ok && !got.Dirty
	})
}

func TestImportantRepository_StopWaitsAndIsIdempotent(t *testing.T) {
	ctrl := gomock.NewController(t)
	s := newTestStorages(t)
	remote := mock.NewMockImportantRemoteDataSource(ctrl)
	repo := NewObservationImportantRepository(s.ObservationImportant, remote, metrics.NewRecorder(), 1)

	assert.NotPanics(t, repo.Stop)
	repo.Start(testContext())
	repo.Stop()
	repo.Stop()

	// no push after Stop
	o := saveRemoteObservation(t, s, "r1")
	require.NoError(t, repo.FlagImportant(testContext(), o.Key, "", "u1"))
}
