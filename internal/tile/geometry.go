// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tile

import (
	"fmt"
	"math"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/maptile"
	"github.com/paulmach/orb/project"

	"github.com/MKhiriev/go-mage/models"
)

const (
	// Size is the edge of a rendered tile in pixels.
	Size = 512

	// MaxZoom is the deepest zoom level tiles are rendered for.
	MaxZoom = 24

	earthRadius = 6378137.0
	worldMeters = 2 * math.Pi * earthRadius
)

// Bounds returns the box of coord in degrees and EPSG:3857 meters.
func Bounds(coord models.TileCoordinate) (models.MapBoundingBox, error) {
	if coord.Zoom < 0 || coord.Zoom > MaxZoom {
		return models.MapBoundingBox{}, fmt.Errorf("%w: zoom %d", ErrInvalidTile, coord.Zoom)
	}
	n := 1 << coord.Zoom
	if coord.X < 0 || coord.Y < 0 || coord.X >= n || coord.Y >= n {
		return models.MapBoundingBox{}, fmt.Errorf("%w: %s", ErrInvalidTile, coord)
	}

	b := maptile.New(uint32(coord.X), uint32(coord.Y), maptile.Zoom(coord.Zoom)).Bound()
	return models.BoundingBoxFromBound(b), nil
}

// TileAt returns the tile containing the geographic point at zoom.
func TileAt(p orb.Point, zoom int) models.TileCoordinate {
	lon := math.Mod(p.Lon()+540, 360) - 180
	t := maptile.At(orb.Point{lon, p.Lat()}, maptile.Zoom(zoom))
	return models.TileCoordinate{Zoom: zoom, X: int(t.X), Y: int(t.Y)}
}

// IconWidth is the pixel width of point icons at zoom. Icons reach full size
// at zoom 18 and never shrink below 30% of it.
func IconWidth(zoom int, screenScale float64) float64 {
	return 35 * screenScale * math.Max(0.3, math.Min(1, float64(zoom)/18))
}

// degreesPerPixel returns the longitude and latitude spanned by one tile
// pixel at zoom near latitude lat.
func degreesPerPixel(zoom int, lat float64) (float64, float64) {
	lon := 360 / (Size * math.Exp2(float64(zoom)))
	return lon, lon * math.Cos(lat*math.Pi/180)
}

// Tolerance pads box by the icon footprint at zoom so that an item whose
// icon, not only its point, overlaps the box is part of a query over it.
func Tolerance(box models.MapBoundingBox, zoom int, iconWidth, iconHeight float64) models.MapBoundingBox {
	// the latitude nearest the equator has the largest degree per pixel
	lat := 0.0
	if box.MinLatitude > 0 {
		lat = box.MinLatitude
	} else if box.MaxLatitude < 0 {
		lat = box.MaxLatitude
	}

	lonPerPx, latPerPx := degreesPerPixel(zoom, lat)
	return box.Pad(lonPerPx*iconWidth, latPerPx*iconHeight)
}

// pixelSpace maps EPSG:3857 meters onto the pixels of one tile.
type pixelSpace struct {
	box   models.MapBoundingBox
	scale float64 // pixels per meter
}

func newPixelSpace(box models.MapBoundingBox) pixelSpace {
	return pixelSpace{box: box, scale: Size / (box.MaxX - box.MinX)}
}

// worldPixels is the width of the whole world at the zoom of the tile.
func (s pixelSpace) worldPixels() float64 {
	return worldMeters * s.scale
}

func (s pixelSpace) meters(p orb.Point) orb.Point {
	return project.WGS84.ToMercator(p)
}

// wrapOffset returns the multiple of the world width that brings the
// mercator x closest to the tile center.
func (s pixelSpace) wrapOffset(x float64) float64 {
	center := (s.box.MinX + s.box.MaxX) / 2
	return math.Round((center-x)/worldMeters) * worldMeters
}

func (s pixelSpace) toPixel(m orb.Point, offset float64) orb.Point {
	return orb.Point{
		(m.X() + offset - s.box.MinX) * s.scale,
		(s.box.MaxY - m.Y()) * s.scale,
	}
}

// Point projects a geographic point into tile pixels, on the copy of the
// world closest to the tile.
func (s pixelSpace) Point(p orb.Point) orb.Point {
	m := s.meters(p)
	return s.toPixel(m, s.wrapOffset(m.X()))
}

// Geometry projects g into tile pixels. All vertices share one wrap offset,
// chosen from the center of the geometry, so shapes crossing the
// antimeridian keep their form.
func (s pixelSpace) Geometry(g orb.Geometry) orb.Geometry {
	center := s.meters(g.Bound().Center())
	offset := s.wrapOffset(center.X())

	projected := project.Geometry(orb.Clone(g), project.WGS84.ToMercator)
	return project.Geometry(projected, func(m orb.Point) orb.Point {
		return s.toPixel(m, offset)
	})
}

// MetersToPixels converts a ground distance at latitude lat.
func (s pixelSpace) MetersToPixels(meters, lat float64) float64 {
	return meters / math.Cos(lat*math.Pi/180) * s.scale
}

// shift translates a pixel geometry horizontally.
func shift(g orb.Geometry, dx float64) orb.Geometry {
	return project.Geometry(orb.Clone(g), func(p orb.Point) orb.Point {
		return orb.Point{p.X() + dx, p.Y()}
	})
}
