// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tile

import (
	"image"
	"image/color"
	"math"
	"strconv"
	"strings"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/clip"
	"github.com/paulmach/orb/planar"
	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/vector"

	"github.com/MKhiriev/go-mage/models"
)

// DataSourceImage is one map item ready to be drawn into tiles. Point items
// carry their icon; shapes are drawn from their geometry and style.
type DataSourceImage struct {
	Item models.ObservationMapItem
	Icon image.Image
}

// IsPoint reports whether the item is drawn as an icon.
func (d DataSourceImage) IsPoint() bool {
	_, ok := d.Item.Geometry.(orb.Point)
	return ok
}

// Style is the drawing configuration shared by all items of a tile.
type Style struct {
	// IconWidth is the pixel width of point icons; their height follows
	// each icon's own aspect ratio.
	IconWidth float64

	// ScreenScale multiplies line widths.
	ScreenScale float64
}

var (
	defaultStroke  = color.NRGBA{A: 0xff}
	defaultFill    = color.NRGBA{A: 0x26}
	accuracyFill   = color.NRGBA{R: 0x1e, G: 0x88, B: 0xe5, A: 0x33}
	accuracyStroke = color.NRGBA{R: 0x1e, G: 0x88, B: 0xe5, A: 0x99}
)

const (
	circleSegments = 64
	minStrokeWidth = 1.0
	maxSurfaceEdge = 8192

	// surfaceMargin surrounds the tile on the shape canvas; shapes are
	// clipped at half of it.
	surfaceMargin   = 64
	surfaceClipEdge = surfaceMargin / 2
)

// newSurface allocates the bitmap a tile is drawn into.
func newSurface(width, height int) (*image.RGBA, error) {
	if width <= 0 || height <= 0 || width > maxSurfaceEdge || height > maxSurfaceEdge {
		return nil, ErrNoDrawingSurface
	}
	return image.NewRGBA(image.Rect(0, 0, width, height)), nil
}

// Render draws images into a new tile of the given pixel space. Shapes go
// below icons. Zero images give a valid transparent tile.
func Render(space pixelSpace, images []DataSourceImage, style Style) (*image.RGBA, error) {
	dst, err := newSurface(Size, Size)
	if err != nil {
		return nil, err
	}

	shapes := newShapeCanvas()
	for _, d := range images {
		if d.Item.Geometry == nil {
			continue
		}
		if !d.IsPoint() {
			shapes.drawShape(space, d.Item, style)
		} else if d.Item.Accuracy > 0 {
			shapes.drawAccuracy(space, d.Item)
		}
	}
	shapes.compositeOnto(dst)

	for _, d := range images {
		if d.IsPoint() {
			drawIcon(dst, space, d, style)
		}
	}
	return dst, nil
}

// iconRect is where the icon of a point item lands: anchored bottom-center
// on the projected point.
func iconRect(space pixelSpace, d DataSourceImage, style Style) image.Rectangle {
	p := space.Point(d.Item.Geometry.(orb.Point))
	w := style.IconWidth
	h := w * iconRatio(d.Icon.Bounds())

	return image.Rect(
		int(math.Round(p.X()-w/2)), int(math.Round(p.Y()-h)),
		int(math.Round(p.X()+w/2)), int(math.Round(p.Y())),
	)
}

func drawIcon(dst *image.RGBA, space pixelSpace, d DataSourceImage, style Style) {
	if d.Icon == nil {
		d.Icon = DefaultMarker()
	}
	r := iconRect(space, d, style)
	if !r.Overlaps(dst.Bounds()) {
		return
	}
	xdraw.ApproxBiLinear.Scale(dst, r, d.Icon, d.Icon.Bounds(), xdraw.Over, nil)
}

// shapeCanvas rasterizes shapes into a bitmap larger than the tile so that
// paths clipped just outside the tile edges stay within the rasterizer.
type shapeCanvas struct {
	img  *image.RGBA
	r    *vector.Rasterizer
	used bool
}

func newShapeCanvas() *shapeCanvas {
	edge := Size + 2*surfaceMargin
	c := &shapeCanvas{
		img: image.NewRGBA(image.Rect(0, 0, edge, edge)),
		r:   vector.NewRasterizer(edge, edge),
	}
	c.r.DrawOp = xdraw.Over
	return c
}

var canvasClip = orb.Bound{
	Min: orb.Point{-surfaceClipEdge, -surfaceClipEdge},
	Max: orb.Point{Size + surfaceClipEdge, Size + surfaceClipEdge},
}

func (c *shapeCanvas) fill(rings []orb.Ring, col color.Color) {
	drew := false
	for _, ring := range rings {
		ring = clip.Ring(canvasClip, ring)
		if len(ring) < 3 {
			continue
		}
		c.r.MoveTo(c.canvas(ring[0]))
		for _, p := range ring[1:] {
			c.r.LineTo(c.canvas(p))
		}
		c.r.ClosePath()
		drew = true
	}
	c.flush(drew, col)
}

// stroke draws every segment as a quad of the given width. The quads share
// one winding so overlapping joints stay covered.
func (c *shapeCanvas) stroke(lines []orb.LineString, width float64, col color.Color) {
	half := math.Max(width, minStrokeWidth) / 2
	drew := false
	for _, line := range lines {
		for _, clipped := range clip.LineString(canvasClip, line) {
			for i := 1; i < len(clipped); i++ {
				a, b := clipped[i-1], clipped[i]
				dx, dy := b.X()-a.X(), b.Y()-a.Y()
				length := math.Hypot(dx, dy)
				if length == 0 {
					continue
				}
				nx, ny := -dy/length*half, dx/length*half

				c.r.MoveTo(c.canvas(orb.Point{a.X() + nx, a.Y() + ny}))
				c.r.LineTo(c.canvas(orb.Point{b.X() + nx, b.Y() + ny}))
				c.r.LineTo(c.canvas(orb.Point{b.X() - nx, b.Y() - ny}))
				c.r.LineTo(c.canvas(orb.Point{a.X() - nx, a.Y() - ny}))
				c.r.ClosePath()
				drew = true
			}
		}
	}
	c.flush(drew, col)
}

func (c *shapeCanvas) canvas(p orb.Point) (float32, float32) {
	return float32(p.X() + surfaceMargin), float32(p.Y() + surfaceMargin)
}

func (c *shapeCanvas) flush(drew bool, col color.Color) {
	if drew {
		c.r.Draw(c.img, c.img.Bounds(), image.NewUniform(col), image.Point{})
		c.used = true
	}
	edge := Size + 2*surfaceMargin
	c.r.Reset(edge, edge)
}

func (c *shapeCanvas) compositeOnto(dst *image.RGBA) {
	if !c.used {
		return
	}
	xdraw.Draw(dst, dst.Bounds(), c.img, image.Point{X: surfaceMargin, Y: surfaceMargin}, xdraw.Over)
}

// devicePaths returns the pixel geometry of item and its complementary
// copy one world width away.
func devicePaths(space pixelSpace, item models.ObservationMapItem) (orb.Geometry, orb.Geometry) {
	primary := space.Geometry(item.Geometry)

	dx := space.worldPixels()
	if primary.Bound().Center().X() > Size/2 {
		dx = -dx
	}
	return primary, shift(primary, dx)
}

func (c *shapeCanvas) drawShape(space pixelSpace, item models.ObservationMapItem, style Style) {
	stroke := parseColor(item.Style.StrokeColor, defaultStroke)
	fill := parseColor(item.Style.FillColor, defaultFill)
	width := lineWidth(item, style)

	primary, complement := devicePaths(space, item)
	for _, g := range []orb.Geometry{primary, complement} {
		if !g.Bound().Intersects(canvasClip) {
			continue
		}
		rings, lines := outline(g)
		c.fill(rings, fill)
		c.stroke(lines, width, stroke)
	}
}

func (c *shapeCanvas) drawAccuracy(space pixelSpace, item models.ObservationMapItem) {
	ring := accuracyRing(space, item)
	if !ring.Bound().Intersects(canvasClip) {
		return
	}
	c.fill([]orb.Ring{ring}, accuracyFill)
	c.stroke([]orb.LineString{orb.LineString(ring)}, minStrokeWidth, accuracyStroke)
}

func accuracyRing(space pixelSpace, item models.ObservationMapItem) orb.Ring {
	p := item.Geometry.(orb.Point)
	center := space.Point(p)
	radius := space.MetersToPixels(item.Accuracy, p.Lat())

	ring := make(orb.Ring, 0, circleSegments+1)
	for i := 0; i <= circleSegments; i++ {
		a := 2 * math.Pi * float64(i) / float64(circleSegments)
		ring = append(ring, orb.Point{center.X() + radius*math.Cos(a), center.Y() + radius*math.Sin(a)})
	}
	return ring
}

// outline splits a pixel geometry into the rings to fill and the lines to
// stroke.
func outline(g orb.Geometry) ([]orb.Ring, []orb.LineString) {
	switch g := g.(type) {
	case orb.Polygon:
		lines := make([]orb.LineString, 0, len(g))
		for _, ring := range g {
			lines = append(lines, orb.LineString(ring))
		}
		return g, lines
	case orb.MultiPolygon:
		var (
			rings []orb.Ring
			lines []orb.LineString
		)
		for _, p := range g {
			r, l := outline(p)
			rings = append(rings, r...)
			lines = append(lines, l...)
		}
		return rings, lines
	case orb.LineString:
		return nil, []orb.LineString{g}
	case orb.MultiLineString:
		return nil, g
	case orb.Ring:
		return []orb.Ring{g}, []orb.LineString{orb.LineString(g)}
	default:
		return nil, nil
	}
}

func lineWidth(item models.ObservationMapItem, style Style) float64 {
	w := item.Style.LineWidth
	if w <= 0 {
		w = 1
	}
	return w * math.Max(style.ScreenScale, 1)
}

// parseColor reads "#RRGGBB" or "#RRGGBBAA".
func parseColor(hex string, fallback color.NRGBA) color.NRGBA {
	hex = strings.TrimPrefix(strings.TrimSpace(hex), "#")
	if len(hex) != 6 && len(hex) != 8 {
		return fallback
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return fallback
	}
	if len(hex) == 6 {
		v = v<<8 | 0xff
	}
	return color.NRGBA{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}
}

// hitShape tests tap (tile pixels) against the rendered path of a shape
// item. When the primary path misses, the complementary world path is
// tested, so shapes crossing the antimeridian are hit on either side.
func hitShape(space pixelSpace, item models.ObservationMapItem, tap orb.Point, style Style) bool {
	primary, complement := devicePaths(space, item)
	half := lineWidth(item, style) / 2
	return pathContains(primary, tap, half) || pathContains(complement, tap, half)
}

func pathContains(g orb.Geometry, tap orb.Point, halfWidth float64) bool {
	switch g := g.(type) {
	case orb.Polygon:
		return planar.PolygonContains(g, tap) || linesNear(outlineLines(g), tap, halfWidth)
	case orb.MultiPolygon:
		for _, p := range g {
			if pathContains(p, tap, halfWidth) {
				return true
			}
		}
		return false
	case orb.Ring:
		return planar.RingContains(g, tap) || linesNear([]orb.LineString{orb.LineString(g)}, tap, halfWidth)
	case orb.LineString:
		return linesNear([]orb.LineString{g}, tap, halfWidth)
	case orb.MultiLineString:
		return linesNear(g, tap, halfWidth)
	default:
		return false
	}
}

func outlineLines(p orb.Polygon) []orb.LineString {
	_, lines := outline(p)
	return lines
}

func linesNear(lines []orb.LineString, tap orb.Point, halfWidth float64) bool {
	for _, line := range lines {
		for i := 1; i < len(line); i++ {
			if planar.DistanceFromSegment(line[i-1], line[i], tap) <= halfWidth {
				return true
			}
		}
	}
	return false
}

// hitIcon renders the point item alone and tests the alpha of the tapped
// pixel, so transparent corners of an icon do not select it.
func hitIcon(space pixelSpace, d DataSourceImage, tap orb.Point, style Style) bool {
	if d.Icon == nil {
		d.Icon = DefaultMarker()
	}

	x, y := int(math.Floor(tap.X())), int(math.Floor(tap.Y()))
	r := iconRect(space, d, style)
	if !image.Pt(x, y).In(r) {
		return false
	}

	probe := image.NewRGBA(r)
	xdraw.ApproxBiLinear.Scale(probe, r, d.Icon, d.Icon.Bounds(), xdraw.Over, nil)
	return probe.RGBAAt(x, y).A > 0
}

// Hit reports whether a tap at the tile pixel lands on the rendered item.
func (d DataSourceImage) Hit(space pixelSpace, tap orb.Point, style Style) bool {
	if d.Item.Geometry == nil {
		return false
	}
	if d.IsPoint() {
		return hitIcon(space, d, tap, style)
	}
	return hitShape(space, d.Item, tap, style)
}
