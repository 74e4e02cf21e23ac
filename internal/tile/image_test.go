// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tile

import (
	"image"
	"image/color"
	"math"
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-mage/models"
)

// markerStyle draws the default marker at its natural size.
var markerStyle = Style{IconWidth: 48, ScreenScale: 1}

func spaceAt(t *testing.T, p orb.Point, zoom int) pixelSpace {
	t.Helper()
	box, err := Bounds(TileAt(p, zoom))
	require.NoError(t, err)
	return newPixelSpace(box)
}

func pointImage(p orb.Point) DataSourceImage {
	return DataSourceImage{
		Item: models.ObservationMapItem{Key: "ObservationLocation/p", Geometry: p},
		Icon: DefaultMarker(),
	}
}

func alphaAt(img *image.RGBA, p orb.Point) uint8 {
	return img.RGBAAt(int(math.Floor(p.X())), int(math.Floor(p.Y()))).A
}

func TestRender_EmptyTile(t *testing.T) {
	img, err := Render(spaceAt(t, orb.Point{0, 0}, 4), nil, markerStyle)
	require.NoError(t, err)
	require.Equal(t, image.Rect(0, 0, Size, Size), img.Bounds())

	for i := 3; i < len(img.Pix); i += 4 {
		require.Zero(t, img.Pix[i])
	}
}

func TestRender_IconAnchoredBottomCenter(t *testing.T) {
	p := orb.Point{10.05, 20.05}
	space := spaceAt(t, p, 10)
	d := pointImage(p)

	img, err := Render(space, []DataSourceImage{d}, markerStyle)
	require.NoError(t, err)

	r := iconRect(space, d, markerStyle)
	at := space.Point(p)
	assert.Equal(t, 48, r.Dx())
	assert.Equal(t, 64, r.Dy())
	assert.InDelta(t, at.X(), float64(r.Min.X+r.Max.X)/2, 1)
	assert.InDelta(t, at.Y(), float64(r.Max.Y), 1)

	// disc center is opaque, icon corner and the far right are not
	disc := img.RGBAAt(r.Min.X+24, r.Min.Y+24)
	assert.Equal(t, uint8(0xff), disc.A)
	assert.Equal(t, markerColor.B, disc.B)
	assert.Zero(t, img.RGBAAt(r.Min.X, r.Min.Y).A)
	assert.Zero(t, img.RGBAAt(r.Max.X+10, r.Min.Y+24).A)
}

func TestRender_PolygonFilledAndStroked(t *testing.T) {
	center := orb.Point{10.05, 20.05}
	space := spaceAt(t, center, 10)

	square := orb.Polygon{{{10.02, 20.02}, {10.08, 20.02}, {10.08, 20.08}, {10.02, 20.08}, {10.02, 20.02}}}
	d := DataSourceImage{Item: models.ObservationMapItem{
		Geometry: square,
		Style:    models.MapItemStyle{StrokeColor: "#FF0000", FillColor: "#00FF00FF", LineWidth: 3},
	}}

	img, err := Render(space, []DataSourceImage{d}, markerStyle)
	require.NoError(t, err)

	inside := img.RGBAAt(int(space.Point(center).X()), int(space.Point(center).Y()))
	assert.Equal(t, color.RGBA{G: 0xff, A: 0xff}, inside)

	edge := space.Point(orb.Point{10.02, 20.05})
	assert.Equal(t, uint8(0xff), img.RGBAAt(int(math.Round(edge.X())), int(edge.Y())).R)

	outside := space.Point(orb.Point{10.0, 20.05})
	assert.Zero(t, alphaAt(img, outside))
}

func TestRender_PolylineAndAccuracyCircle(t *testing.T) {
	center := orb.Point{10.05, 20.05}
	space := spaceAt(t, center, 10)

	line := DataSourceImage{Item: models.ObservationMapItem{
		Geometry: orb.LineString{{10.0, 20.0}, {10.1, 20.0}},
		Style:    models.MapItemStyle{StrokeColor: "#0000FF", LineWidth: 4},
	}}
	withAccuracy := pointImage(center)
	withAccuracy.Item.Accuracy = 3000

	img, err := Render(space, []DataSourceImage{line, withAccuracy}, markerStyle)
	require.NoError(t, err)

	onLine := space.Point(orb.Point{10.05, 20.0})
	assert.Equal(t, uint8(0xff), img.RGBAAt(int(onLine.X()), int(onLine.Y())).B)
	assert.Zero(t, alphaAt(img, orb.Point{onLine.X(), onLine.Y() + 10}))

	// the circle shows to the right of the icon, below the icon row
	c := space.Point(center)
	radius := space.MetersToPixels(3000, center.Lat())
	require.Greater(t, radius, 30.0)
	assert.NotZero(t, alphaAt(img, orb.Point{c.X() + radius - 3, c.Y() + 2}))
	assert.Zero(t, alphaAt(img, orb.Point{c.X() + radius + 3, c.Y() + 2}))
}

func TestRender_ShapeAcrossTileEdge(t *testing.T) {
	box, err := Bounds(models.TileCoordinate{Zoom: 2, X: 1, Y: 1})
	require.NoError(t, err)
	space := newPixelSpace(box)

	// a square far larger than the tile still fills it after clipping
	huge := DataSourceImage{Item: models.ObservationMapItem{
		Geometry: orb.Polygon{{{-170, -80}, {170, -80}, {170, 80}, {-170, 80}, {-170, -80}}},
		Style:    models.MapItemStyle{FillColor: "#112233FF"},
	}}
	img, err := Render(space, []DataSourceImage{huge}, markerStyle)
	require.NoError(t, err)
	assert.Equal(t, color.RGBA{R: 0x11, G: 0x22, B: 0x33, A: 0xff}, img.RGBAAt(Size/2, Size/2))
	assert.Equal(t, color.RGBA{R: 0x11, G: 0x22, B: 0x33, A: 0xff}, img.RGBAAt(1, 1))
}

func TestRender_SkipsItemsWithoutGeometry(t *testing.T) {
	img, err := Render(spaceAt(t, orb.Point{0, 0}, 3), []DataSourceImage{{}}, markerStyle)
	require.NoError(t, err)
	assert.NotNil(t, img)
}

func TestNewSurface(t *testing.T) {
	_, err := newSurface(0, Size)
	assert.ErrorIs(t, err, ErrNoDrawingSurface)
	_, err = newSurface(Size, maxSurfaceEdge+1)
	assert.ErrorIs(t, err, ErrNoDrawingSurface)

	img, err := newSurface(Size, Size)
	require.NoError(t, err)
	assert.Equal(t, Size, img.Bounds().Dx())
}

func TestHit_Icon(t *testing.T) {
	p := orb.Point{10.05, 20.05}
	space := spaceAt(t, p, 12)
	d := pointImage(p)
	r := iconRect(space, d, markerStyle)

	assert.True(t, d.Hit(space, orb.Point{float64(r.Min.X) + 24.5, float64(r.Min.Y) + 24.5}, markerStyle))
	// transparent corner of the icon rectangle
	assert.False(t, d.Hit(space, orb.Point{float64(r.Min.X) + 0.5, float64(r.Min.Y) + 0.5}, markerStyle))
	assert.False(t, d.Hit(space, orb.Point{float64(r.Max.X) + 5, float64(r.Min.Y) + 24}, markerStyle))
}

func TestHit_Polyline(t *testing.T) {
	center := orb.Point{10.05, 20.05}
	space := spaceAt(t, center, 10)
	line := DataSourceImage{Item: models.ObservationMapItem{
		Geometry: orb.LineString{{10.0, 20.03}, {10.1, 20.03}},
		Style:    models.MapItemStyle{LineWidth: 6},
	}}

	on := space.Point(orb.Point{10.05, 20.03})
	assert.True(t, line.Hit(space, on, markerStyle))
	assert.True(t, line.Hit(space, orb.Point{on.X(), on.Y() + 2.5}, markerStyle))
	assert.False(t, line.Hit(space, orb.Point{on.X(), on.Y() + 5}, markerStyle))
}

func TestHit_PolygonAcrossAntimeridian(t *testing.T) {
	// literal longitudes 170..190; a tap at -178 is at 182 once wrapped
	polygon := DataSourceImage{Item: models.ObservationMapItem{
		Geometry: orb.Polygon{{{170, 0}, {190, 0}, {190, 20}, {170, 20}, {170, 0}}},
	}}

	for _, tap := range []orb.Point{{-178, 10}, {175, 10}} {
		space := spaceAt(t, tap, 3)
		assert.True(t, polygon.Hit(space, space.Point(tap), markerStyle), "tap %v", tap)
	}

	west := orb.Point{-160, 10}
	space := spaceAt(t, west, 3)
	assert.False(t, polygon.Hit(space, space.Point(west), markerStyle))
}

func TestDevicePaths_ComplementIsOneWorldAway(t *testing.T) {
	space := spaceAt(t, orb.Point{-178, 10}, 3)
	item := models.ObservationMapItem{Geometry: orb.LineString{{170, 0}, {190, 0}}}

	primary, complement := devicePaths(space, item)
	dx := complement.Bound().Min.X() - primary.Bound().Min.X()
	assert.InDelta(t, space.worldPixels(), math.Abs(dx), 1e-6)

	// the complement of a shape right of the tile is on its left
	if primary.Bound().Center().X() > Size/2 {
		assert.Negative(t, dx)
	} else {
		assert.Positive(t, dx)
	}
}

func TestParseColor(t *testing.T) {
	fallback := color.NRGBA{R: 1, A: 2}
	assert.Equal(t, color.NRGBA{R: 0xff, G: 0x80, B: 0x00, A: 0xff}, parseColor("#FF8000", fallback))
	assert.Equal(t, color.NRGBA{R: 0x00, G: 0xff, B: 0x00, A: 0x80}, parseColor(" 00FF0080 ", fallback))
	assert.Equal(t, fallback, parseColor("", fallback))
	assert.Equal(t, fallback, parseColor("#GG0000", fallback))
	assert.Equal(t, fallback, parseColor("#FFF", fallback))
}
