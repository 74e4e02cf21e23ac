// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"net/http"

	"github.com/paulmach/orb"

	"github.com/MKhiriev/go-mage/internal/logger"
	"github.com/MKhiriev/go-mage/internal/service"
	"github.com/MKhiriev/go-mage/internal/tile"
	"github.com/MKhiriev/go-mage/models"
)

// TileProvider renders and hit-tests observation tiles.
type TileProvider interface {
	Tile(ctx context.Context, coord models.TileCoordinate) ([]byte, error)
	Features(ctx context.Context, tap orb.Point, zoom int) ([]tile.DataSourceImage, error)
	ClearCache()

	Filter() models.ObservationFilter
	SetFilter(filter models.ObservationFilter)
}

type Handler struct {
	services  *service.ClientServices
	tiles     TileProvider
	metrics   http.Handler
	buildInfo models.AppBuildInfo

	// userID signs important flags written through the API.
	userID string

	logger *logger.Logger
}

func NewHandler(services *service.ClientServices, tiles TileProvider, metrics http.Handler,
	buildInfo models.AppBuildInfo, userID string, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:  services,
		tiles:     tiles,
		metrics:   metrics,
		buildInfo: buildInfo,
		userID:    userID,
		logger:    logger,
	}
}
