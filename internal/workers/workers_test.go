// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-mage/internal/config"
	"github.com/MKhiriev/go-mage/internal/logger"
	"github.com/MKhiriev/go-mage/internal/mock"
	"github.com/MKhiriev/go-mage/internal/service"
)

// fakeServer blocks in RunServer until Shutdown.
type fakeServer struct {
	mu       sync.Mutex
	running  chan struct{}
	stop     chan struct{}
	shutdown int
}

func newFakeServer() *fakeServer {
	return &fakeServer{running: make(chan struct{}), stop: make(chan struct{})}
}

func (f *fakeServer) RunServer() {
	close(f.running)
	<-f.stop
}

func (f *fakeServer) Shutdown() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.shutdown++
	close(f.stop)
}

type testServices struct {
	important   *mock.MockObservationImportantRepository
	attachments *mock.MockAttachmentRepository
	syncJob     *mock.MockClientSyncJob
	services    *service.ClientServices
}

func newTestServices(t *testing.T) *testServices {
	ctrl := gomock.NewController(t)
	ts := &testServices{
		important:   mock.NewMockObservationImportantRepository(ctrl),
		attachments: mock.NewMockAttachmentRepository(ctrl),
		syncJob:     mock.NewMockClientSyncJob(ctrl),
	}
	ts.services = &service.ClientServices{
		ObservationImportant: ts.important,
		Attachments:          ts.attachments,
		SyncJob:              ts.syncJob,
	}
	return ts
}

func TestWorkers_RunStartsInOrder(t *testing.T) {
	ts := newTestServices(t)
	ctx := context.Background()
	interval := 3 * time.Minute

	gomock.InOrder(
		ts.important.EXPECT().Start(ctx),
		ts.attachments.EXPECT().Start(ctx),
		ts.syncJob.EXPECT().Start(ctx, interval),
	)

	w := NewWorkers(ts.services, nil, config.ClientWorkers{SyncInterval: interval}, logger.Nop())
	w.Run(ctx)
}

func TestWorkers_StopInReverseOrder(t *testing.T) {
	ts := newTestServices(t)
	srv := newFakeServer()

	ts.important.EXPECT().Start(gomock.Any())
	ts.attachments.EXPECT().Start(gomock.Any())
	ts.syncJob.EXPECT().Start(gomock.Any(), gomock.Any())

	w := NewWorkers(ts.services, srv, config.ClientWorkers{}, logger.Nop())
	w.Run(context.Background())

	select {
	case <-srv.running:
	case <-time.After(time.Second):
		t.Fatal("tile server was not started")
	}

	var order []string
	record := func(name string) func() {
		return func() { order = append(order, name) }
	}
	ts.syncJob.EXPECT().Stop().Do(record("sync"))
	ts.attachments.EXPECT().Stop().Do(record("attachments"))
	ts.important.EXPECT().Stop().Do(record("important"))

	w.Stop()

	assert.Equal(t, 1, srv.shutdown)
	assert.Equal(t, []string{"sync", "attachments", "important"}, order)
}

func TestWorkers_Names(t *testing.T) {
	ts := newTestServices(t)

	w := NewWorkers(ts.services, newFakeServer(), config.ClientWorkers{}, logger.Nop())

	names := make([]string, 0, len(w.workers))
	for _, worker := range w.workers {
		names = append(names, worker.Name())
	}
	assert.Equal(t, []string{"eager pusher 1", "eager pusher 2", "sync job", "tile server"}, names)
}

func TestServerWorker_StopWithoutRun(t *testing.T) {
	srv := newFakeServer()
	worker := newServerWorker(srv)

	worker.Stop()

	assert.Zero(t, srv.shutdown)
}

func TestServerWorker_StopWaitsForRunServer(t *testing.T) {
	srv := newFakeServer()
	worker := newServerWorker(srv)

	worker.Run(context.Background())
	<-srv.running
	worker.Stop()

	require.Equal(t, 1, srv.shutdown)
	worker.Stop()
	assert.Equal(t, 1, srv.shutdown, "a second Stop is a no-op")
}
