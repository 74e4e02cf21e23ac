// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-mage/internal/logger"
	"github.com/MKhiriev/go-mage/internal/metrics"
	"github.com/MKhiriev/go-mage/internal/mock"
	"github.com/MKhiriev/go-mage/internal/service"
	"github.com/MKhiriev/go-mage/internal/tile"
	"github.com/MKhiriev/go-mage/models"
)

// fakeTiles records what the handlers asked the tile provider for.
type fakeTiles struct {
	mu sync.Mutex

	tile    []byte
	tileErr error
	coords  []models.TileCoordinate

	features    []tile.DataSourceImage
	featuresErr error
	taps        []orb.Point
	zooms       []int

	cleared int
	filter  models.ObservationFilter
}

func (f *fakeTiles) Tile(_ context.Context, coord models.TileCoordinate) ([]byte, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.coords = append(f.coords, coord)
	return f.tile, f.tileErr
}

func (f *fakeTiles) Features(_ context.Context, tap orb.Point, zoom int) ([]tile.DataSourceImage, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.taps = append(f.taps, tap)
	f.zooms = append(f.zooms, zoom)
	return f.features, f.featuresErr
}

func (f *fakeTiles) ClearCache() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.cleared++
}

func (f *fakeTiles) Filter() models.ObservationFilter {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.filter
}

func (f *fakeTiles) SetFilter(filter models.ObservationFilter) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.filter = filter
}

type testDeps struct {
	observations *mock.MockObservationRepository
	important    *mock.MockObservationImportantRepository
	attachments  *mock.MockAttachmentRepository
	syncJob      *mock.MockClientSyncJob
	tiles        *fakeTiles
}

const testUserID = "user-1"

func newTestHandler(t *testing.T) (*Handler, *testDeps) {
	t.Helper()

	ctrl := gomock.NewController(t)
	deps := &testDeps{
		observations: mock.NewMockObservationRepository(ctrl),
		important:    mock.NewMockObservationImportantRepository(ctrl),
		attachments:  mock.NewMockAttachmentRepository(ctrl),
		syncJob:      mock.NewMockClientSyncJob(ctrl),
		tiles:        &fakeTiles{},
	}
	services := &service.ClientServices{
		Observations:         deps.observations,
		ObservationImportant: deps.important,
		Attachments:          deps.attachments,
		SyncJob:              deps.syncJob,
	}

	h := NewHandler(services, deps.tiles, metrics.NewRecorder().Handler(),
		models.NewAppBuildInfo("1.2.3", "2026-10-01", "abc123"), testUserID, logger.Nop())
	return h, deps
}

func serve(h *Handler, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.Init().ServeHTTP(rec, req)
	return rec
}

func TestNewHandler_StoresDependencies(t *testing.T) {
	h, deps := newTestHandler(t)

	require.NotNil(t, h)
	assert.Same(t, deps.tiles, h.tiles)
	assert.Equal(t, testUserID, h.userID)
	assert.Equal(t, "1.2.3", h.buildInfo.BuildVersion())
	assert.NotNil(t, h.metrics)
}

func TestInit_RegistersAllRoutes(t *testing.T) {
	h, deps := newTestHandler(t)
	deps.tiles.tile = []byte("png")

	observation := models.ObservationModel{Key: models.NewObjectKey(models.EntityObservation, "o1")}
	attachment := models.AttachmentModel{Key: models.NewObjectKey(models.EntityAttachment, "a1")}
	deps.observations.EXPECT().Get(gomock.Any(), gomock.Any()).Return(observation, true).AnyTimes()
	deps.important.EXPECT().Get(gomock.Any(), gomock.Any()).Return(models.ObservationImportantModel{}, false).AnyTimes()
	deps.important.EXPECT().FlagImportant(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	deps.important.EXPECT().RemoveImportant(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	deps.attachments.EXPECT().GetAttachments(gomock.Any(), gomock.Any()).Return(nil, nil).AnyTimes()
	deps.attachments.EXPECT().Get(gomock.Any(), gomock.Any()).Return(attachment, true).AnyTimes()
	deps.attachments.EXPECT().MarkForDeletion(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	deps.attachments.EXPECT().Undelete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	deps.syncJob.EXPECT().SyncNow(gomock.Any()).Return(nil).AnyTimes()

	routes := []struct {
		method string
		path   string
		body   string
	}{
		{http.MethodGet, "/metrics", ""},
		{http.MethodGet, "/tiles/1/0/1.png", ""},
		{http.MethodDelete, "/tiles", ""},
		{http.MethodGet, "/features?lat=1&lon=2&zoom=3", ""},
		{http.MethodGet, "/api/version", ""},
		{http.MethodGet, "/api/filter", ""},
		{http.MethodPut, "/api/filter", `{"event_id":1}`},
		{http.MethodGet, "/api/observations/o1/important", ""},
		{http.MethodPut, "/api/observations/o1/important", `{"reason":"r"}`},
		{http.MethodDelete, "/api/observations/o1/important", ""},
		{http.MethodGet, "/api/observations/o1/attachments", ""},
		{http.MethodDelete, "/api/attachments/a1", ""},
		{http.MethodPost, "/api/attachments/a1/undelete", ""},
		{http.MethodPost, "/api/sync", ""},
	}

	for _, tc := range routes {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			req := httptest.NewRequest(tc.method, tc.path, strings.NewReader(tc.body))
			rec := serve(h, req)

			assert.Less(t, rec.Code, http.StatusBadRequest, "route %s %s answered %d", tc.method, tc.path, rec.Code)
		})
	}
}

func TestInit_UnknownRouteReturns404(t *testing.T) {
	h, _ := newTestHandler(t)

	for _, path := range []string{"/api/nonexistent", "/tiles/1/0", "/totally/wrong"} {
		rec := serve(h, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusNotFound, rec.Code, path)
	}
}

func TestInit_WrongMethodReturns404(t *testing.T) {
	h, _ := newTestHandler(t)

	tests := []struct {
		method string
		path   string
	}{
		{http.MethodPost, "/api/version"},
		{http.MethodPost, "/features"},
		{http.MethodGet, "/tiles"},
		{http.MethodPut, "/tiles/1/0/0.png"},
		{http.MethodPost, "/api/observations/o1/attachments"},
		{http.MethodGet, "/api/sync"},
	}

	for _, tc := range tests {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			rec := serve(h, httptest.NewRequest(tc.method, tc.path, nil))

			assert.Equal(t, http.StatusNotFound, rec.Code)
		})
	}
}

func TestInit_TraceIDHeader(t *testing.T) {
	h, _ := newTestHandler(t)

	rec := serve(h, httptest.NewRequest(http.MethodGet, "/api/version", nil))
	assert.NotEmpty(t, rec.Header().Get(traceIDHeader))

	req := httptest.NewRequest(http.MethodGet, "/api/version", nil)
	req.Header.Set(traceIDHeader, "trace-42")
	rec = serve(h, req)
	assert.Equal(t, "trace-42", rec.Header().Get(traceIDHeader))
}

func TestMetrics_ServesRecorder(t *testing.T) {
	h, _ := newTestHandler(t)

	rec := serve(h, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "mage_tiles_render_duration_seconds")
}

func TestGetVersion(t *testing.T) {
	h, _ := newTestHandler(t)

	rec := serve(h, httptest.NewRequest(http.MethodGet, "/api/version", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/plain", rec.Header().Get("Content-Type"))
	assert.Equal(t, "1.2.3", rec.Body.String())
}
