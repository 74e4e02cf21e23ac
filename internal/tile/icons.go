// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tile

import (
	"context"
	"errors"
	"image"
	"image/color"
	_ "image/png"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/image/vector"

	"github.com/MKhiriev/go-mage/internal/logger"
	"github.com/MKhiriev/go-mage/models"
)

const iconFile = "icon.png"

// IconRepository resolves the form icons of map items from the downloaded
// icon tree:
//
//	<dir>/<eventId>/<formId>/<primary>/<secondary>/icon.png
//
// falling back to <formId>/<primary>/icon.png, <formId>/icon.png and
// <eventId>/icon.png, then to a built-in marker.
type IconRepository struct {
	dir   string
	cache *lru.Cache[string, image.Image]

	mu     sync.Mutex
	ratios map[int64]float64
}

func NewIconRepository(dir string, cacheSize int) (*IconRepository, error) {
	cache, err := lru.New[string, image.Image](cacheSize)
	if err != nil {
		return nil, err
	}
	return &IconRepository{
		dir:    dir,
		cache:  cache,
		ratios: make(map[int64]float64),
	}, nil
}

func (r *IconRepository) candidates(item models.ObservationMapItem) []string {
	event := filepath.Join(r.dir, strconv.FormatInt(item.EventID, 10))
	form := filepath.Join(event, strconv.FormatInt(item.FormID, 10))

	paths := make([]string, 0, 4)
	if item.PrimaryFieldValue != "" {
		if item.SecondaryFieldValue != "" {
			paths = append(paths, filepath.Join(form, item.PrimaryFieldValue, item.SecondaryFieldValue, iconFile))
		}
		paths = append(paths, filepath.Join(form, item.PrimaryFieldValue, iconFile))
	}
	return append(paths, filepath.Join(form, iconFile), filepath.Join(event, iconFile))
}

// Icon returns the icon of item. It never fails: unreadable or missing
// icons resolve to the default marker.
func (r *IconRepository) Icon(ctx context.Context, item models.ObservationMapItem) image.Image {
	cacheKey := strconv.FormatInt(item.EventID, 10) + "/" + strconv.FormatInt(item.FormID, 10) + "/" +
		item.PrimaryFieldValue + "/" + item.SecondaryFieldValue
	if icon, ok := r.cache.Get(cacheKey); ok {
		return icon
	}

	icon := r.load(ctx, item)
	r.cache.Add(cacheKey, icon)
	return icon
}

func (r *IconRepository) load(ctx context.Context, item models.ObservationMapItem) image.Image {
	log := logger.FromContext(ctx)

	if r.dir != "" {
		for _, path := range r.candidates(item) {
			icon, err := decodeIcon(path)
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			if err != nil {
				log.Warn().Err(err).Str("func", "IconRepository.load").Str("path", path).Msg("unreadable icon")
				continue
			}
			return icon
		}
	}

	log.Debug().
		Str("func", "IconRepository.load").
		Int64("event_id", item.EventID).
		Int64("form_id", item.FormID).
		Msg("no icon found, using default marker")
	return DefaultMarker()
}

func decodeIcon(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	return img, err
}

// MaxRatio returns the largest height/width ratio of the icons of an event
// (of all events for eventID 0). The value is measured once per event and
// kept until [IconRepository.ResetRatios].
func (r *IconRepository) MaxRatio(ctx context.Context, eventID int64) float64 {
	r.mu.Lock()
	defer r.mu.Unlock()

	if ratio, ok := r.ratios[eventID]; ok {
		return ratio
	}
	ratio := r.measure(ctx, eventID)
	r.ratios[eventID] = ratio
	return ratio
}

func (r *IconRepository) measure(ctx context.Context, eventID int64) float64 {
	ratio := iconRatio(DefaultMarker().Bounds())
	if r.dir == "" {
		return ratio
	}

	root := r.dir
	if eventID != 0 {
		root = filepath.Join(r.dir, strconv.FormatInt(eventID, 10))
	}

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || d.Name() != iconFile {
			return nil
		}

		f, err := os.Open(path)
		if err != nil {
			return nil
		}
		defer f.Close()
		cfg, _, err := image.DecodeConfig(f)
		if err != nil || cfg.Width == 0 {
			return nil
		}
		ratio = max(ratio, float64(cfg.Height)/float64(cfg.Width))
		return nil
	})
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		logger.FromContext(ctx).Warn().Err(err).
			Str("func", "IconRepository.measure").
			Int64("event_id", eventID).
			Msg("failed to walk icons")
	}
	return ratio
}

// ResetRatios forgets the measured ratios, e.g. after new icons were
// downloaded.
func (r *IconRepository) ResetRatios() {
	r.mu.Lock()
	defer r.mu.Unlock()
	clear(r.ratios)
}

func iconRatio(b image.Rectangle) float64 {
	if b.Dx() == 0 {
		return 1
	}
	return float64(b.Dy()) / float64(b.Dx())
}

var markerColor = color.NRGBA{R: 0x1e, G: 0x88, B: 0xe5, A: 0xff}

// DefaultMarker is a pin drawn for items without an icon: a disc on top of
// a point touching the bottom edge.
var DefaultMarker = sync.OnceValue(func() image.Image {
	const w, h = 48, 64

	r := vector.NewRasterizer(w, h)
	const cx, cy, radius = w / 2, w / 2, w/2 - 2

	// disc
	r.MoveTo(cx+radius, cy)
	r.CubeTo(cx+radius, cy+radius*0.5523, cx+radius*0.5523, cy+radius, cx, cy+radius)
	r.CubeTo(cx-radius*0.5523, cy+radius, cx-radius, cy+radius*0.5523, cx-radius, cy)
	r.CubeTo(cx-radius, cy-radius*0.5523, cx-radius*0.5523, cy-radius, cx, cy-radius)
	r.CubeTo(cx+radius*0.5523, cy-radius, cx+radius, cy-radius*0.5523, cx+radius, cy)
	r.ClosePath()

	// point, wound like the disc so the overlap stays filled
	r.MoveTo(cx+radius*0.7, cy+radius*0.7)
	r.LineTo(cx, h)
	r.LineTo(cx-radius*0.7, cy+radius*0.7)
	r.ClosePath()

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	r.Draw(img, img.Bounds(), image.NewUniform(markerColor), image.Point{})
	return img
})
