// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/MKhiriev/go-mage/internal/changes"
	"github.com/MKhiriev/go-mage/internal/logger"
	"github.com/MKhiriev/go-mage/internal/metrics"
)

// pushable is a value model with an identity in the pending-push set.
type pushable interface {
	PushKey() string
}

// pushCoordinator owns the pending-push set of one entity. For a given key
// at most one round trip (remote push, then local reconcile) is in flight.
type pushCoordinator[T pushable] struct {
	entity string

	// push calls the remote data source; an empty response is a failure.
	push func(ctx context.Context, item T) map[string]any
	// reconcile feeds the response back into the local data source.
	reconcile func(ctx context.Context, pushed T, response map[string]any) error
	// refresh reloads a requeued candidate; false drops it.
	refresh func(ctx context.Context, item T) (T, bool)

	metrics *metrics.Recorder

	mu      sync.Mutex
	pending map[string]T
	requeue map[string]struct{}
}

func newPushCoordinator[T pushable](entity string, recorder *metrics.Recorder) *pushCoordinator[T] {
	return &pushCoordinator[T]{
		entity:  entity,
		metrics: recorder,
		pending: make(map[string]T),
		requeue: make(map[string]struct{}),
	}
}

// Push runs the round trip of item unless its key is already pending, and
// reports whether it did.
//
// With requeue set, a candidate that finds its key busy is remembered: once
// the in-flight round trip completes, the current local state of the record
// is reloaded and pushed again while the key stays pending.
func (c *pushCoordinator[T]) Push(ctx context.Context, item T, requeue bool) bool {
	key := item.PushKey()

	c.mu.Lock()
	if _, busy := c.pending[key]; busy {
		if requeue {
			c.requeue[key] = struct{}{}
		}
		c.mu.Unlock()
		c.metrics.PushFinished(c.entity, metrics.PushSkipped)
		return false
	}
	c.pending[key] = item
	c.mu.Unlock()
	c.metrics.PushStarted(c.entity)

	defer func() {
		c.mu.Lock()
		delete(c.pending, key)
		delete(c.requeue, key)
		c.mu.Unlock()
		c.metrics.PushEnded(c.entity)
	}()

	for {
		c.roundTrip(ctx, item)

		c.mu.Lock()
		_, again := c.requeue[key]
		delete(c.requeue, key)
		c.mu.Unlock()

		if !again || ctx.Err() != nil {
			return true
		}

		next, ok := c.refresh(ctx, item)
		if !ok {
			return true
		}
		c.mu.Lock()
		c.pending[key] = next
		c.mu.Unlock()
		item = next
	}
}

func (c *pushCoordinator[T]) roundTrip(ctx context.Context, item T) {
	log := logger.FromContext(ctx).WithStr("entity", c.entity).WithStr("key", item.PushKey())

	response := c.push(ctx, item)
	if len(response) == 0 {
		c.metrics.PushFinished(c.entity, metrics.PushFailed)
		log.Debug().Str("func", "pushCoordinator.roundTrip").Msg("push not acknowledged, record stays dirty")
		return
	}

	if err := c.reconcile(ctx, item, response); err != nil {
		c.metrics.PushFinished(c.entity, metrics.PushFailed)
		log.Err(err).Str("func", "pushCoordinator.roundTrip").Msg("failed to reconcile push response")
		return
	}
	c.metrics.PushFinished(c.entity, metrics.PushSynced)
}

// Pending reports whether key is in flight.
func (c *pushCoordinator[T]) Pending(key string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, ok := c.pending[key]
	return ok
}

// PushAll pushes every item once, with at most limit round trips in
// parallel. Busy keys are skipped.
func (c *pushCoordinator[T]) PushAll(ctx context.Context, items []T, limit int) {
	if limit < 1 {
		limit = 1
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)
	for _, item := range items {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			c.Push(gctx, item, false)
			return nil
		})
	}
	_ = g.Wait()
}

// eagerPusher pushes every element of a push-candidate stream as it
// arrives, one goroutine per candidate.
type eagerPusher[T pushable] struct {
	name        string
	observe     func(ctx context.Context) *changes.Stream[T]
	coordinator *pushCoordinator[T]

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

func (e *eagerPusher[T]) Start(ctx context.Context) {
	e.Stop()

	e.mu.Lock()
	runCtx, cancel := context.WithCancel(ctx)
	e.cancel = cancel
	e.wg.Add(1)
	e.mu.Unlock()

	stream := e.observe(runCtx)

	go func() {
		defer e.wg.Done()
		defer stream.Cancel()

		for item := range stream.C() {
			e.wg.Add(1)
			go func() {
				defer e.wg.Done()
				e.coordinator.Push(runCtx, item, true)
			}()
		}

		if err := stream.Err(); err != nil && !errors.Is(err, context.Canceled) {
			logger.FromContext(runCtx).Err(err).
				Str("func", "eagerPusher.Start").
				Str("stream", e.name).
				Msg("push candidate stream failed, eager pushes stopped until restart")
		}
	}()
}

// Stop is a no-op when the listener is not running.
func (e *eagerPusher[T]) Stop() {
	e.mu.Lock()
	cancel := e.cancel
	e.cancel = nil
	e.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	e.wg.Wait()
}
