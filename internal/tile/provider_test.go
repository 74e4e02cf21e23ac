// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tile

import (
	"bytes"
	"context"
	"image/png"
	"sync"
	"testing"

	"github.com/paulmach/orb"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-mage/internal/metrics"
	"github.com/MKhiriev/go-mage/internal/utils"
	"github.com/MKhiriev/go-mage/models"
)

// memorySource keeps map items in memory and filters them by bounding box.
type memorySource struct {
	mu     sync.Mutex
	items  []models.ObservationMapItem
	before func(ctx context.Context)
}

func (s *memorySource) add(key string, g orb.Geometry) {
	s.mu.Lock()
	defer s.mu.Unlock()
	item := models.ObservationMapItem{Key: models.ObjectKey(key), Geometry: g}.WithComputedBounds()
	s.items = append(s.items, item)
}

func (s *memorySource) match(filter models.ObservationFilter) []models.ObservationMapItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []models.ObservationMapItem
	for _, i := range s.items {
		if filter.Bounds == nil || filter.Bounds.Intersects(i.MinLongitude, i.MinLatitude, i.MaxLongitude, i.MaxLatitude) {
			out = append(out, i)
		}
	}
	return out
}

func (s *memorySource) GetMapItemsInBounds(ctx context.Context, filter models.ObservationFilter) ([]models.ObservationMapItem, error) {
	if s.before != nil {
		s.before(ctx)
	}
	return s.match(filter), nil
}

func (s *memorySource) Keys(_ context.Context, filter models.ObservationFilter) ([]string, error) {
	var keys []string
	for _, i := range s.match(filter) {
		keys = append(keys, string(i.Key))
	}
	return keys, nil
}

func newTestProvider(t *testing.T, source *memorySource) (*Provider, *metrics.Recorder) {
	t.Helper()
	recorder := metrics.NewRecorder()
	hasher := utils.NewHasher("test")
	p, err := NewProvider(newTestRepository(t, source), hasher, 8, recorder)
	require.NoError(t, err)
	return p, recorder
}

var centerTile = models.TileCoordinate{Zoom: 2, X: 2, Y: 1}

func TestProvider_TileIsPNG(t *testing.T) {
	source := &memorySource{}
	source.add("ObservationLocation/a", orb.Point{45, 30})
	p, recorder := newTestProvider(t, source)

	data, err := p.Tile(context.Background(), centerTile)
	require.NoError(t, err)

	img, err := png.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, Size, img.Bounds().Dx())
	assert.Equal(t, Size, img.Bounds().Dy())

	assert.Equal(t, 1.0, testutil.ToFloat64(recorder.TileCacheCounter(false)))
}

func TestProvider_EmptyTile(t *testing.T) {
	p, _ := newTestProvider(t, &memorySource{})

	data, err := p.Tile(context.Background(), models.TileCoordinate{Zoom: 0})
	require.NoError(t, err)
	_, err = png.Decode(bytes.NewReader(data))
	assert.NoError(t, err)
}

func TestProvider_CachesUntilItemsOrFilterChange(t *testing.T) {
	source := &memorySource{}
	source.add("ObservationLocation/a", orb.Point{45, 30})
	p, recorder := newTestProvider(t, source)
	ctx := context.Background()

	first, err := p.Tile(ctx, centerTile)
	require.NoError(t, err)
	second, err := p.Tile(ctx, centerTile)
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, 1.0, testutil.ToFloat64(recorder.TileCacheCounter(true)))

	// a new item in the tile changes the key
	source.add("ObservationLocation/b", orb.Point{50, 35})
	third, err := p.Tile(ctx, centerTile)
	require.NoError(t, err)
	assert.NotEqual(t, first, third)
	assert.Equal(t, 2.0, testutil.ToFloat64(recorder.TileCacheCounter(false)))

	p.Repository().SetFilter(models.ObservationFilter{ImportantOnly: true})
	_, err = p.Tile(ctx, centerTile)
	require.NoError(t, err)
	assert.Equal(t, 3.0, testutil.ToFloat64(recorder.TileCacheCounter(false)))
}

func TestProvider_ClearCache(t *testing.T) {
	p, recorder := newTestProvider(t, &memorySource{})
	ctx := context.Background()

	_, err := p.Tile(ctx, centerTile)
	require.NoError(t, err)
	p.ClearCache()
	_, err = p.Tile(ctx, centerTile)
	require.NoError(t, err)

	assert.Equal(t, 2.0, testutil.ToFloat64(recorder.TileCacheCounter(false)))
	assert.Zero(t, testutil.ToFloat64(recorder.TileCacheCounter(true)))
}

func TestProvider_CanceledBeforeRendering(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	source := &memorySource{before: func(context.Context) { cancel() }}
	source.add("ObservationLocation/a", orb.Point{45, 30})
	p, recorder := newTestProvider(t, source)

	_, err := p.Tile(ctx, centerTile)
	assert.ErrorIs(t, err, context.Canceled)

	// nothing was cached for the canceled request
	source.before = nil
	_, err = p.Tile(context.Background(), centerTile)
	require.NoError(t, err)
	assert.Equal(t, 2.0, testutil.ToFloat64(recorder.TileCacheCounter(false)))
}

func TestProvider_InvalidTile(t *testing.T) {
	p, _ := newTestProvider(t, &memorySource{})

	_, err := p.Tile(context.Background(), models.TileCoordinate{Zoom: 1, X: 2})
	assert.ErrorIs(t, err, ErrInvalidTile)
	_, err = p.Features(context.Background(), orb.Point{0, 0}, MaxZoom+1)
	assert.ErrorIs(t, err, ErrInvalidTile)
}

func TestProvider_Features(t *testing.T) {
	source := &memorySource{}
	source.add("ObservationLocation/area", orb.Polygon{{{40, 25}, {50, 25}, {50, 35}, {40, 35}, {40, 25}}})
	source.add("ObservationLocation/elsewhere", orb.Polygon{{{-50, -35}, {-40, -35}, {-40, -25}, {-50, -25}, {-50, -35}}})
	p, _ := newTestProvider(t, source)

	found, err := p.Features(context.Background(), orb.Point{45, 30}, 5)
	require.NoError(t, err)
	assert.Equal(t, []models.ObjectKey{"ObservationLocation/area"}, itemKeys(found))
}
