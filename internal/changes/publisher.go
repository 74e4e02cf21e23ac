// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package changes turns store change notifications into reactive streams of
// live query results.
//
// A [Query] describes what to fetch and how to identify its elements.
// [PublishDiffs] and [PublishSnapshots] start a cold, demand-driven
// subscription: nothing is fetched until the subscriber calls
// [Subscription.Request], every store write touching the query's entities
// marks the result stale, and a stale result is re-fetched and emitted only
// while demand is positive. Store changes that arrive while demand is zero
// are coalesced into a single emission against the last value sent.
package changes

import (
	"context"
	"fmt"
	"math"
	"slices"
	"sync"

	"github.com/MKhiriev/go-mage/internal/logger"
	"github.com/MKhiriev/go-mage/models"
)

// Unlimited demand never runs out.
const Unlimited = math.MaxInt

// Query is a live query over the store.
type Query[T any] struct {
	// Name labels the query in logs.
	Name string

	// Entities lists the store entities whose writes invalidate the result.
	Entities []models.Entity

	// Fetch runs the query and returns the ordered, transformed result.
	Fetch func(ctx context.Context) ([]T, error)

	// Key returns the stable identity of an element.
	Key func(T) string

	// Fingerprint returns a string that changes whenever the element's
	// content changes. Defaults to the %+v rendering of the element.
	Fingerprint func(T) string
}

// Subscription delivers values of a live query. It must be cancelled by the
// subscriber once no longer needed.
type Subscription[V any] struct {
	values chan V
	demand chan int
	cancel context.CancelFunc
	done   chan struct{}

	mu  sync.Mutex
	err error
}

// Values returns the channel the subscription emits on. It is closed after
// cancellation or a terminal failure.
func (s *Subscription[V]) Values() <-chan V {
	return s.values
}

// Request adds n to the outstanding demand. Non-positive n is ignored.
func (s *Subscription[V]) Request(n int) {
	if n <= 0 {
		return
	}
	select {
	case s.demand <- n:
	case <-s.done:
	}
}

// Cancel stops the subscription and waits until its producer has exited.
// No value is delivered after Cancel returns, even if a store change was
// already queued.
func (s *Subscription[V]) Cancel() {
	s.cancel()
	<-s.done
}

// Done is closed once the subscription has stopped producing.
func (s *Subscription[V]) Done() <-chan struct{} {
	return s.done
}

// Err returns the terminal failure, if any. It wraps [ErrQueryFailed].
func (s *Subscription[V]) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}

func (s *Subscription[V]) fail(err error) {
	s.mu.Lock()
	s.err = err
	s.mu.Unlock()
}

// PublishDiffs subscribes to q and emits [Diff] values: the first emission
// inserts the whole initial result, later ones carry only the changes since
// the last emitted state.
func PublishDiffs[T any](ctx context.Context, n *Notifier, q Query[T]) *Subscription[Diff[T]] {
	return publish(ctx, n, q, func(prev, next []T, first bool) (Diff[T], bool) {
		if first {
			return InsertAll(next), true
		}
		d := Compute(prev, next, q.Key, q.Fingerprint)
		return d, !d.IsEmpty()
	})
}

// PublishSnapshots subscribes to q and emits the full ordered result every
// time it changes.
func PublishSnapshots[T any](ctx context.Context, n *Notifier, q Query[T]) *Subscription[[]T] {
	fingerprint := q.Fingerprint
	if fingerprint == nil {
		fingerprint = defaultFingerprint[T]
	}
	return publish(ctx, n, q, func(prev, next []T, first bool) ([]T, bool) {
		if first {
			return next, true
		}
		same := slices.EqualFunc(prev, next, func(a, b T) bool {
			return q.Key(a) == q.Key(b) && fingerprint(a) == fingerprint(b)
		})
		return next, !same
	})
}

func publish[T, V any](ctx context.Context, n *Notifier, q Query[T], emit func(prev, next []T, first bool) (V, bool)) *Subscription[V] {
	subCtx, cancel := context.WithCancel(ctx)
	s := &Subscription[V]{
		values: make(chan V),
		demand: make(chan int),
		cancel: cancel,
		done:   make(chan struct{}),
	}

	// registered before the first fetch so no write can slip in between
	wake, stop := n.Listen(q.Entities...)

	go func() {
		defer close(s.done)
		defer close(s.values)
		defer stop()

		runQuery(subCtx, s, wake, q, emit)
	}()

	return s
}

func runQuery[T, V any](ctx context.Context, s *Subscription[V], wake <-chan struct{}, q Query[T], emit func(prev, next []T, first bool) (V, bool)) {
	log := logger.FromContext(ctx)

	var (
		demand  int
		last    []T
		started bool
		stale   = true
	)

	for {
		if demand > 0 && stale {
			// a cancellation that raced with a queued notification wins
			if ctx.Err() != nil {
				return
			}

			next, err := q.Fetch(ctx)
			if err != nil {
				if ctx.Err() != nil {
					return
				}
				log.Err(err).
					Str("func", "changes.runQuery").
					Str("query", q.Name).
					Bool("initial", !started).
					Msg("live query failed, completing subscription")
				s.fail(fmt.Errorf("%w: %s: %w", ErrQueryFailed, q.Name, err))
				return
			}
			stale = false

			v, ok := emit(last, next, !started)
			started = true
			if ok && !deliver(ctx, s, v, &demand) {
				return
			}
			last = next
			continue
		}

		select {
		case <-ctx.Done():
			return
		case add := <-s.demand:
			demand = addDemand(demand, add)
		case <-wake:
			stale = true
		}
	}
}

// deliver blocks until v is received or the subscription is cancelled.
// Demand keeps being accepted meanwhile so Request never deadlocks against
// a pending send.
func deliver[V any](ctx context.Context, s *Subscription[V], v V, demand *int) bool {
	for {
		select {
		case s.values <- v:
			if *demand != Unlimited {
				*demand--
			}
			return true
		case add := <-s.demand:
			*demand = addDemand(*demand, add)
		case <-ctx.Done():
			return false
		}
	}
}

func addDemand(current, add int) int {
	if current == Unlimited || add == Unlimited || current > Unlimited-add {
		return Unlimited
	}
	return current + add
}
