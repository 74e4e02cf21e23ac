// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package metrics records push and tile rendering metrics with prometheus.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Push results. A failed push got an empty response, a skipped one found
// its key already in flight.
const (
	PushSynced  = "synced"
	PushFailed  = "failed"
	PushSkipped = "skipped"
)

// Recorder owns a registry with the go-mage collectors.
type Recorder struct {
	registry *prometheus.Registry

	pushes      *prometheus.CounterVec
	inflight    *prometheus.GaugeVec
	tileRenders prometheus.Histogram
	tileCache   *prometheus.CounterVec
}

// NewRecorder creates a Recorder on a fresh registry, so several recorders
// can live in one process (tests).
func NewRecorder() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		pushes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "mage",
			Subsystem: "sync",
			Name:      "pushes_total",
			Help:      "Pushes of local changes by entity and result.",
		}, []string{"entity", "result"}),
		inflight: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: "mage",
			Subsystem: "sync",
			Name:      "pushes_in_flight",
			Help:      "Records currently in the pending-push set.",
		}, []string{"entity"}),
		tileRenders: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "mage",
			Subsystem: "tiles",
			Name:      "render_duration_seconds",
			Help:      "Time spent querying and rasterizing one tile.",
			Buckets:   prometheus.ExponentialBuckets(0.001, 2, 12),
		}),
		tileCache: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "mage",
			Subsystem: "tiles",
			Name:      "cache_requests_total",
			Help:      "Tile cache lookups by outcome.",
		}, []string{"outcome"}),
	}

	r.registry.MustRegister(r.pushes, r.inflight, r.tileRenders, r.tileCache)
	return r
}

// PushFinished counts one push round trip of entity with result.
func (r *Recorder) PushFinished(entity, result string) {
	r.pushes.WithLabelValues(entity, result).Inc()
}

// PushCounter returns the counter of entity pushes with result.
func (r *Recorder) PushCounter(entity, result string) prometheus.Counter {
	return r.pushes.WithLabelValues(entity, result)
}

// PushStarted and PushEnded track the size of the pending-push set.
func (r *Recorder) PushStarted(entity string) {
	r.inflight.WithLabelValues(entity).Inc()
}

func (r *Recorder) PushEnded(entity string) {
	r.inflight.WithLabelValues(entity).Dec()
}

// TileRendered observes the render time of one tile.
func (r *Recorder) TileRendered(d time.Duration) {
	r.tileRenders.Observe(d.Seconds())
}

// TileCacheLookup counts a cache hit or miss.
func (r *Recorder) TileCacheLookup(hit bool) {
	r.TileCacheCounter(hit).Inc()
}

func (r *Recorder) TileCacheCounter(hit bool) prometheus.Counter {
	outcome := "miss"
	if hit {
		outcome = "hit"
	}
	return r.tileCache.WithLabelValues(outcome)
}

// Handler serves the registry in the prometheus exposition format.
func (r *Recorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{Registry: r.registry})
}

// Registry exposes the underlying registry, e.g. for gathering in tests.
func (r *Recorder) Registry() *prometheus.Registry {
	return r.registry
}
