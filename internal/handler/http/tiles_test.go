// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-mage/internal/app"
	"github.com/MKhiriev/go-mage/internal/tile"
	"github.com/MKhiriev/go-mage/models"
)

func TestGetTile_WritesPNG(t *testing.T) {
	h, deps := newTestHandler(t)
	deps.tiles.tile = []byte("\x89PNG-bytes")

	rec := serve(h, httptest.NewRequest(http.MethodGet, "/tiles/3/2/1.png", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get("Content-Type"))
	assert.Equal(t, "\x89PNG-bytes", rec.Body.String())
	assert.Equal(t, []models.TileCoordinate{{Zoom: 3, X: 2, Y: 1}}, deps.tiles.coords)
}

func TestGetTile_NotCompressed(t *testing.T) {
	h, deps := newTestHandler(t)
	deps.tiles.tile = []byte("png")

	req := httptest.NewRequest(http.MethodGet, "/tiles/0/0/0.png", nil)
	req.Header.Set("Accept-Encoding", "gzip")
	rec := serve(h, req)

	assert.Empty(t, rec.Header().Get("Content-Encoding"))
	assert.Equal(t, "png", rec.Body.String())
}

func TestGetTile_Errors(t *testing.T) {
	tests := []struct {
		name       string
		path       string
		tileErr    error
		wantStatus int
		wantBody   string
		wantCalls  int
	}{
		{
			name:       "non numeric zoom",
			path:       "/tiles/a/0/0.png",
			wantStatus: http.StatusBadRequest,
			wantBody:   app.MsgInvalidTileCoordinates,
		},
		{
			name:       "non numeric y",
			path:       "/tiles/1/0/b.png",
			wantStatus: http.StatusBadRequest,
			wantBody:   app.MsgInvalidTileCoordinates,
		},
		{
			name:       "outside the pyramid",
			path:       "/tiles/1/5/0.png",
			tileErr:    fmt.Errorf("%w: 1/5/0", tile.ErrInvalidTile),
			wantStatus: http.StatusBadRequest,
			wantBody:   app.MsgInvalidTileCoordinates,
			wantCalls:  1,
		},
		{
			name:       "no drawing surface",
			path:       "/tiles/1/0/0.png",
			tileErr:    tile.ErrNoDrawingSurface,
			wantStatus: http.StatusInternalServerError,
			wantBody:   app.MsgTileRenderingFailed,
			wantCalls:  1,
		},
		{
			name:       "unexpected failure",
			path:       "/tiles/1/0/0.png",
			tileErr:    fmt.Errorf("query map items: %w", assert.AnError),
			wantStatus: http.StatusInternalServerError,
			wantBody:   app.MsgInternalServerError,
			wantCalls:  1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, deps := newTestHandler(t)
			deps.tiles.tileErr = tt.tileErr

			rec := serve(h, httptest.NewRequest(http.MethodGet, tt.path, nil))

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.wantBody)
			assert.Len(t, deps.tiles.coords, tt.wantCalls)
		})
	}
}

func TestGetTile_CanceledWritesNothing(t *testing.T) {
	h, deps := newTestHandler(t)
	deps.tiles.tileErr = context.Canceled

	rec := serve(h, httptest.NewRequest(http.MethodGet, "/tiles/1/0/0.png", nil))

	assert.Empty(t, rec.Body.String())
	assert.Empty(t, rec.Header().Get("Content-Type"))
}

func TestClearTiles(t *testing.T) {
	h, deps := newTestHandler(t)

	rec := serve(h, httptest.NewRequest(http.MethodDelete, "/tiles", nil))

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, 1, deps.tiles.cleared)
}

func TestGetFeatures_NewestFirst(t *testing.T) {
	h, deps := newTestHandler(t)

	older := models.ObservationMapItem{
		Key:            models.NewObjectKey(models.EntityObservationLocation, "l1"),
		ObservationKey: models.NewObjectKey(models.EntityObservation, "o1"),
		EventID:        7,
		FormID:         3,
		Geometry:       orb.Point{20, 10},
		Timestamp:      time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC),
	}
	newer := models.ObservationMapItem{
		Key:                 models.NewObjectKey(models.EntityObservationLocation, "l2"),
		ObservationKey:      models.NewObjectKey(models.EntityObservation, "o2"),
		ObservationRemoteID: "remote-2",
		EventID:             7,
		Geometry:            orb.Point{20.001, 10.001},
		Timestamp:           time.Date(2026, 2, 1, 12, 0, 0, 0, time.UTC),
		Important:           true,
		Accuracy:            12.5,
	}
	deps.tiles.features = []tile.DataSourceImage{{Item: older}, {Item: newer}}

	rec := serve(h, httptest.NewRequest(http.MethodGet, "/features?lat=10&lon=20&zoom=5", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.Equal(t, []orb.Point{{20, 10}}, deps.tiles.taps)
	assert.Equal(t, []int{5}, deps.tiles.zooms)

	fc, err := geojson.UnmarshalFeatureCollection(rec.Body.Bytes())
	require.NoError(t, err)
	require.Len(t, fc.Features, 2)

	first := fc.Features[0]
	assert.Equal(t, newer.Key.String(), first.ID)
	assert.Equal(t, "remote-2", first.Properties["observation_remote_id"])
	assert.Equal(t, true, first.Properties["important"])
	assert.Equal(t, 12.5, first.Properties["accuracy"])
	assert.Equal(t, "2026-02-01T12:00:00Z", first.Properties["timestamp"])
	assert.Equal(t, orb.Point{20.001, 10.001}, first.Geometry)

	second := fc.Features[1]
	assert.Equal(t, older.Key.String(), second.ID)
	assert.Equal(t, float64(3), second.Properties["form_id"])
	assert.NotContains(t, second.Properties, "accuracy")
	assert.NotContains(t, second.Properties, "observation_remote_id")
}

func TestGetFeatures_EmptyCollection(t *testing.T) {
	h, _ := newTestHandler(t)

	rec := serve(h, httptest.NewRequest(http.MethodGet, "/features?lat=0&lon=0&zoom=1", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	fc, err := geojson.UnmarshalFeatureCollection(rec.Body.Bytes())
	require.NoError(t, err)
	assert.Empty(t, fc.Features)
}

func TestGetFeatures_InvalidTap(t *testing.T) {
	for _, query := range []string{
		"lat=1&lon=2",
		"lat=x&lon=2&zoom=3",
		"lat=1&lon=&zoom=3",
		"lat=91&lon=2&zoom=3",
	} {
		t.Run(query, func(t *testing.T) {
			h, deps := newTestHandler(t)

			rec := serve(h, httptest.NewRequest(http.MethodGet, "/features?"+query, nil))

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Contains(t, rec.Body.String(), app.MsgInvalidTapLocation)
			assert.Empty(t, deps.tiles.taps)
		})
	}
}

func TestGetFeatures_InvalidZoom(t *testing.T) {
	h, deps := newTestHandler(t)
	deps.tiles.featuresErr = fmt.Errorf("%w: zoom 40", tile.ErrInvalidTile)

	rec := serve(h, httptest.NewRequest(http.MethodGet, "/features?lat=1&lon=2&zoom=40", nil))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
