// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package viewmodel

import (
	"context"
	"sync"

	"github.com/MKhiriev/go-mage/internal/changes"
	"github.com/MKhiriev/go-mage/internal/logger"
)

// follower runs one subscription at a time and signals every applied value
// on a coalescing updates channel.
type follower struct {
	mu     sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}

	updates chan struct{}
}

func newFollower() follower {
	return follower{updates: make(chan struct{}, 1)}
}

func follow[V any](ctx context.Context, f *follower, name string, subscribe func(ctx context.Context) *changes.Subscription[V], apply func(V) error) {
	f.stop()

	runCtx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})
	f.mu.Lock()
	f.cancel, f.done = cancel, done
	f.mu.Unlock()

	sub := subscribe(runCtx)
	go func() {
		defer close(done)
		defer sub.Cancel()

		log := logger.FromContext(runCtx).WithStr("view_model", name)
		sub.Request(1)
		for v := range sub.Values() {
			if err := apply(v); err != nil {
				log.Err(err).Str("func", "viewmodel.follow").Msg("failed to apply update")
				return
			}
			f.notify()
			sub.Request(1)
		}
		if err := sub.Err(); err != nil {
			log.Err(err).Str("func", "viewmodel.follow").Msg("subscription failed")
		}
	}()
}

func (f *follower) notify() {
	select {
	case f.updates <- struct{}{}:
	default:
	}
}

// Updates receives a value after each change of the state, coalesced.
func (f *follower) Updates() <-chan struct{} {
	return f.updates
}

// Stop cancels the subscription and waits for it to exit.
func (f *follower) Stop() {
	f.stop()
}

func (f *follower) stop() {
	f.mu.Lock()
	cancel, done := f.cancel, f.done
	f.cancel, f.done = nil, nil
	f.mu.Unlock()

	if cancel != nil {
		cancel()
		<-done
	}
}
