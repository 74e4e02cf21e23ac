// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/MKhiriev/go-mage/internal/logger"
)

type clientSyncJob struct {
	syncers []Syncer

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewClientSyncJob creates a clientSyncJob that calls Sync of every syncer
// on a ticker. The job is idle until Start is called.
func NewClientSyncJob(syncers ...Syncer) ClientSyncJob {
	return &clientSyncJob{syncers: syncers}
}

// Start implements ClientSyncJob. It stops any previously running job, then
// launches a background goroutine that syncs every interval. If interval is
// zero or negative it defaults to 5 minutes. The goroutine exits when ctx is
// cancelled or Stop is called.
func (j *clientSyncJob) Start(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = 5 * time.Minute
	}

	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	go func() {
		defer j.wg.Done()
		t := time.NewTicker(interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				if err := j.SyncNow(jobCtx); err != nil && jobCtx.Err() == nil {
					logger.FromContext(jobCtx).Err(err).
						Str("func", "clientSyncJob.Start").
						Msg("sync round failed")
				}
			}
		}
	}()
}

// SyncNow syncs every repository in order and joins their errors. A failing
// repository does not stop the others.
func (j *clientSyncJob) SyncNow(ctx context.Context) error {
	var errs []error
	for _, s := range j.syncers {
		if err := s.Sync(ctx); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Stop implements ClientSyncJob. It cancels the background goroutine's context and
// blocks until the goroutine has fully exited. Safe to call when the job is not
// running (no-op in that case).
func (j *clientSyncJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}
