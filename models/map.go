// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"fmt"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/project"
)

// TileCoordinate identifies one raster tile of the web-mercator pyramid.
type TileCoordinate struct {
	Zoom int
	X    int
	Y    int
}

func (t TileCoordinate) String() string {
	return fmt.Sprintf("%d/%d/%d", t.Zoom, t.X, t.Y)
}

// MapBoundingBox is a rectangle carried in both geographic degrees (used by
// item queries) and EPSG:3857 meters (used for pixel placement).
type MapBoundingBox struct {
	MinLatitude  float64
	MinLongitude float64
	MaxLatitude  float64
	MaxLongitude float64

	MinX float64
	MinY float64
	MaxX float64
	MaxY float64
}

// NewMapBoundingBox builds a box from geographic corners and projects it.
func NewMapBoundingBox(minLon, minLat, maxLon, maxLat float64) MapBoundingBox {
	lo := project.WGS84.ToMercator(orb.Point{minLon, minLat})
	hi := project.WGS84.ToMercator(orb.Point{maxLon, maxLat})

	return MapBoundingBox{
		MinLatitude:  minLat,
		MinLongitude: minLon,
		MaxLatitude:  maxLat,
		MaxLongitude: maxLon,
		MinX:         lo.X(),
		MinY:         lo.Y(),
		MaxX:         hi.X(),
		MaxY:         hi.Y(),
	}
}

// BoundingBoxFromBound converts a geographic orb.Bound.
func BoundingBoxFromBound(b orb.Bound) MapBoundingBox {
	return NewMapBoundingBox(b.Min.X(), b.Min.Y(), b.Max.X(), b.Max.Y())
}

// Geographic returns the degree corners as an orb.Bound (x = lon, y = lat).
func (b MapBoundingBox) Geographic() orb.Bound {
	return orb.Bound{
		Min: orb.Point{b.MinLongitude, b.MinLatitude},
		Max: orb.Point{b.MaxLongitude, b.MaxLatitude},
	}
}

// Mercator returns the EPSG:3857 corners as an orb.Bound.
func (b MapBoundingBox) Mercator() orb.Bound {
	return orb.Bound{
		Min: orb.Point{b.MinX, b.MinY},
		Max: orb.Point{b.MaxX, b.MaxY},
	}
}

// Pad grows the box by the given degrees on every side and re-projects it.
// Latitudes are clamped to the mercator limits.
func (b MapBoundingBox) Pad(lonDegrees, latDegrees float64) MapBoundingBox {
	return NewMapBoundingBox(
		b.MinLongitude-lonDegrees,
		clampLatitude(b.MinLatitude-latDegrees),
		b.MaxLongitude+lonDegrees,
		clampLatitude(b.MaxLatitude+latDegrees),
	)
}

// Intersects reports whether the geographic extents overlap (edges count).
func (b MapBoundingBox) Intersects(minLon, minLat, maxLon, maxLat float64) bool {
	return maxLat >= b.MinLatitude && minLat <= b.MaxLatitude &&
		maxLon >= b.MinLongitude && minLon <= b.MaxLongitude
}

const maxMercatorLatitude = 85.05112877980659

func clampLatitude(lat float64) float64 {
	switch {
	case lat > maxMercatorLatitude:
		return maxMercatorLatitude
	case lat < -maxMercatorLatitude:
		return -maxMercatorLatitude
	default:
		return lat
	}
}
