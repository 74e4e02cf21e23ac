// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/MKhiriev/go-mage/internal/config"
	"github.com/MKhiriev/go-mage/internal/logger"
	"github.com/MKhiriev/go-mage/internal/server"
	"github.com/MKhiriev/go-mage/internal/service"
)

type Workers struct {
	workers []Worker
	logger  *logger.Logger
}

// NewWorkers builds the worker set of the client. srv may be nil when the
// tile host is disabled.
func NewWorkers(services *service.ClientServices, srv server.Server, cfg config.ClientWorkers, logger *logger.Logger) *Workers {
	w := &Workers{logger: logger}

	for i, pusher := range services.EagerPushers() {
		w.workers = append(w.workers, &eagerPushWorker{name: fmt.Sprintf("eager pusher %d", i+1), pusher: pusher})
	}
	w.workers = append(w.workers, &syncJobWorker{job: services.SyncJob, interval: cfg.SyncInterval})
	if srv != nil {
		w.workers = append(w.workers, newServerWorker(srv))
	}
	return w
}

// Run starts every worker in order.
func (w *Workers) Run(ctx context.Context) {
	for _, worker := range w.workers {
		w.logger.Info().Str("worker", worker.Name()).Msg("starting worker")
		worker.Run(ctx)
	}
}

// Stop stops the workers in reverse start order, so the tile host goes
// first and in-flight pushes finish last.
func (w *Workers) Stop() {
	for _, worker := range slices.Backward(w.workers) {
		worker.Stop()
		w.logger.Info().Str("worker", worker.Name()).Msg("worker stopped")
	}
}

type eagerPushWorker struct {
	name   string
	pusher service.EagerPusher
}

func (e *eagerPushWorker) Name() string { return e.name }
func (e *eagerPushWorker) Run(ctx context.Context) { e.pusher.Start(ctx) }
func (e *eagerPushWorker) Stop() { e.pusher.Stop() }

type syncJobWorker struct {
	job      service.ClientSyncJob
	interval time.Duration
}

func (s *syncJobWorker) Name() string { return "sync job" }
func (s *syncJobWorker) Run(ctx context.Context) { s.job.Start(ctx, s.interval) }
func (s *syncJobWorker) Stop() { s.job.Stop() }

type serverWorker struct {
	server  server.Server
	stopped chan struct{}
}

func newServerWorker(srv server.Server) *serverWorker {
	return &serverWorker{server: srv}
}

func (s *serverWorker) Name() string { return "tile server" }

func (s *serverWorker) Run(_ context.Context) {
	s.stopped = make(chan struct{})
	go func() {
		defer close(s.stopped)
		s.server.RunServer()
	}()
}

func (s *serverWorker) Stop() {
	if s.stopped == nil {
		return
	}
	s.server.Shutdown()
	<-s.stopped
	s.stopped = nil
}
