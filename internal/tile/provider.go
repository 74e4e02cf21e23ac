// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tile

import (
	"bytes"
	"context"
	"fmt"
	"image/png"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/paulmach/orb"

	"github.com/MKhiriev/go-mage/internal/logger"
	"github.com/MKhiriev/go-mage/internal/metrics"
	"github.com/MKhiriev/go-mage/internal/utils"
	"github.com/MKhiriev/go-mage/models"
)

// Provider renders PNG tiles of an ObservationsTileRepository and caches
// them by content. Entries are keyed on the cache source key of the
// repository, the tile and the keys of the items it covers; they are only
// dropped by ClearCache or eviction.
type Provider struct {
	repository *ObservationsTileRepository
	hasher     *utils.Hasher
	cache      *lru.Cache[string, []byte]
	metrics    *metrics.Recorder
}

func NewProvider(repository *ObservationsTileRepository, hasher *utils.Hasher, cacheSize int, recorder *metrics.Recorder) (*Provider, error) {
	cache, err := lru.New[string, []byte](cacheSize)
	if err != nil {
		return nil, fmt.Errorf("tile cache: %w", err)
	}
	return &Provider{
		repository: repository,
		hasher:     hasher,
		cache:      cache,
		metrics:    recorder,
	}, nil
}

func (p *Provider) cacheKey(ctx context.Context, coord models.TileCoordinate, box models.MapBoundingBox) (string, error) {
	keys, err := p.repository.GetItemKeys(ctx, box, coord.Zoom)
	if err != nil {
		return "", err
	}
	return p.hasher.HexString(append([]string{p.repository.CacheSourceKey(), coord.String()}, keys...)...), nil
}

// Tile returns the PNG of coord. A tile without items is a valid
// transparent image. Cancellation of ctx between the item query and
// rasterizing discards the tile.
func (p *Provider) Tile(ctx context.Context, coord models.TileCoordinate) ([]byte, error) {
	log := logger.FromContext(ctx).WithStr("tile", coord.String())

	box, err := Bounds(coord)
	if err != nil {
		return nil, err
	}

	key, err := p.cacheKey(ctx, coord, box)
	if err != nil {
		return nil, err
	}
	if data, ok := p.cache.Get(key); ok {
		p.metrics.TileCacheLookup(true)
		return data, nil
	}
	p.metrics.TileCacheLookup(false)

	start := time.Now()
	images, err := p.repository.GetTileableItems(ctx, TileQuery{Bounds: box, Zoom: coord.Zoom})
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		log.Debug().Str("func", "Provider.Tile").Msg("tile request canceled before rendering")
		return nil, err
	}

	style, _ := p.repository.Style(ctx, coord.Zoom)
	img, err := Render(newPixelSpace(box), images, style)
	if err != nil {
		log.Err(err).Str("func", "Provider.Tile").Msg("failed to render tile")
		return nil, err
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("encode tile %s: %w", coord, err)
	}
	p.metrics.TileRendered(time.Since(start))

	data := buf.Bytes()
	p.cache.Add(key, data)
	log.Debug().Str("func", "Provider.Tile").Int("items", len(images)).Msg("tile rendered")
	return data, nil
}

// Features returns the items rendered under the geographic point tap at
// zoom.
func (p *Provider) Features(ctx context.Context, tap orb.Point, zoom int) ([]DataSourceImage, error) {
	if zoom < 0 || zoom > MaxZoom {
		return nil, fmt.Errorf("%w: zoom %d", ErrInvalidTile, zoom)
	}
	coord := TileAt(tap, zoom)
	box, err := Bounds(coord)
	if err != nil {
		return nil, err
	}
	return p.repository.GetTileableItems(ctx, TileQuery{Bounds: box, Zoom: zoom, Precise: true, Tap: tap})
}

// ClearCache drops every rendered tile.
func (p *Provider) ClearCache() {
	p.cache.Purge()
}

// Filter returns the observation filter tiles are rendered with.
func (p *Provider) Filter() models.ObservationFilter {
	return p.repository.Filter()
}

// SetFilter replaces the observation filter. Tiles cached under another
// filter stay in the cache but are no longer served.
func (p *Provider) SetFilter(filter models.ObservationFilter) {
	p.repository.SetFilter(filter)
}

// Repository returns the repository tiles are rendered from.
func (p *Provider) Repository() *ObservationsTileRepository {
	return p.repository
}
