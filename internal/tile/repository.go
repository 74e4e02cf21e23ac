// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tile

import (
	"context"
	"fmt"
	"image"
	"sort"
	"strconv"
	"sync"

	"github.com/paulmach/orb"

	"github.com/MKhiriev/go-mage/internal/logger"
	"github.com/MKhiriev/go-mage/internal/utils"
	"github.com/MKhiriev/go-mage/models"
)

// MapItemSource is the spatial query side of the observation locations.
type MapItemSource interface {
	GetMapItemsInBounds(ctx context.Context, filter models.ObservationFilter) ([]models.ObservationMapItem, error)
	Keys(ctx context.Context, filter models.ObservationFilter) ([]string, error)
}

// Icons resolves the icon of a point item and the largest icon
// height/width ratio of an event.
type Icons interface {
	Icon(ctx context.Context, item models.ObservationMapItem) image.Image
	MaxRatio(ctx context.Context, eventID int64) float64
}

// TileQuery selects the items drawn into, or tapped on, one tile.
type TileQuery struct {
	Bounds models.MapBoundingBox
	Zoom   int

	// Precise keeps only items whose rendering covers Tap.
	Precise bool
	Tap     orb.Point
}

// ObservationsTileRepository answers which observation map items fall into
// a tile under the current filter.
type ObservationsTileRepository struct {
	source      MapItemSource
	icons       Icons
	hasher      *utils.Hasher
	screenScale float64

	mu     sync.RWMutex
	filter models.ObservationFilter
}

func NewObservationsTileRepository(source MapItemSource, icons Icons, hasher *utils.Hasher, screenScale float64) *ObservationsTileRepository {
	if screenScale <= 0 {
		screenScale = 1
	}
	return &ObservationsTileRepository{
		source:      source,
		icons:       icons,
		hasher:      hasher,
		screenScale: screenScale,
	}
}

// SetFilter replaces the event, time and importance filter. Bounds, Limit
// and Offset of filter are ignored.
func (r *ObservationsTileRepository) SetFilter(filter models.ObservationFilter) {
	filter.Bounds = nil
	filter.Limit, filter.Offset = 0, 0

	r.mu.Lock()
	r.filter = filter
	r.mu.Unlock()
}

func (r *ObservationsTileRepository) Filter() models.ObservationFilter {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.filter
}

// CacheSourceKey fingerprints the filter. Any change of the filter changes
// the key.
func (r *ObservationsTileRepository) CacheSourceKey() string {
	f := r.Filter()
	return r.hasher.HexString(
		"observations",
		strconv.FormatInt(f.EventID, 10),
		strconv.FormatInt(f.Since.UnixNano(), 10),
		strconv.FormatInt(f.Until.UnixNano(), 10),
		strconv.FormatBool(f.ImportantOnly),
	)
}

// Style is the drawing style of tiles at zoom for the event of the filter.
func (r *ObservationsTileRepository) Style(ctx context.Context, zoom int) (Style, float64) {
	width := IconWidth(zoom, r.screenScale)
	return Style{IconWidth: width, ScreenScale: r.screenScale}, width * r.icons.MaxRatio(ctx, r.Filter().EventID)
}

// queryBoxes returns the padded box and its copies one world away, so
// items stored with longitudes beyond ±180 are found from either side.
func (r *ObservationsTileRepository) queryBoxes(ctx context.Context, box models.MapBoundingBox, zoom int) []models.MapBoundingBox {
	style, iconHeight := r.Style(ctx, zoom)
	padded := Tolerance(box, zoom, style.IconWidth, iconHeight)

	boxes := []models.MapBoundingBox{padded}
	for _, dx := range []float64{-360, 360} {
		boxes = append(boxes, models.NewMapBoundingBox(
			padded.MinLongitude+dx, padded.MinLatitude, padded.MaxLongitude+dx, padded.MaxLatitude))
	}
	return boxes
}

// GetTileableItems returns the items whose icon or shape may overlap the
// query box. With Precise set, only items whose rendering covers the tap
// are kept.
func (r *ObservationsTileRepository) GetTileableItems(ctx context.Context, q TileQuery) ([]DataSourceImage, error) {
	log := logger.FromContext(ctx)

	filter := r.Filter()
	seen := make(map[models.ObjectKey]struct{})
	var items []models.ObservationMapItem
	for _, box := range r.queryBoxes(ctx, q.Bounds, q.Zoom) {
		filter.Bounds = &box
		found, err := r.source.GetMapItemsInBounds(ctx, filter)
		if err != nil {
			log.Err(err).
				Str("func", "ObservationsTileRepository.GetTileableItems").
				Int("zoom", q.Zoom).
				Msg("failed to query map items")
			return nil, fmt.Errorf("query map items: %w", err)
		}
		for _, item := range found {
			if _, dup := seen[item.Key]; dup {
				continue
			}
			seen[item.Key] = struct{}{}
			items = append(items, item)
		}
	}

	// oldest first, so the newest icons end up on top
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Timestamp.Before(items[j].Timestamp)
	})

	images := make([]DataSourceImage, 0, len(items))
	for _, item := range items {
		d := DataSourceImage{Item: item}
		if d.IsPoint() {
			d.Icon = r.icons.Icon(ctx, item)
		}
		images = append(images, d)
	}

	if !q.Precise {
		return images, nil
	}

	space := newPixelSpace(q.Bounds)
	style, _ := r.Style(ctx, q.Zoom)
	tap := space.Point(q.Tap)

	hits := images[:0]
	for _, d := range images {
		if d.Hit(space, tap, style) {
			hits = append(hits, d)
		}
	}
	return hits, nil
}

// GetItemKeys returns the keys of the items GetTileableItems would consider
// for the box, without loading them.
func (r *ObservationsTileRepository) GetItemKeys(ctx context.Context, box models.MapBoundingBox, zoom int) ([]string, error) {
	filter := r.Filter()
	seen := make(map[string]struct{})
	var keys []string
	for _, b := range r.queryBoxes(ctx, box, zoom) {
		filter.Bounds = &b
		found, err := r.source.Keys(ctx, filter)
		if err != nil {
			logger.FromContext(ctx).Err(err).
				Str("func", "ObservationsTileRepository.GetItemKeys").
				Int("zoom", zoom).
				Msg("failed to query map item keys")
			return nil, fmt.Errorf("query map item keys: %w", err)
		}
		for _, k := range found {
			if _, dup := seen[k]; !dup {
				seen[k] = struct{}{}
				keys = append(keys, k)
			}
		}
	}
	sort.Strings(keys)
	return keys, nil
}
