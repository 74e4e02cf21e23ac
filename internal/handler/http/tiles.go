// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"

	"github.com/MKhiriev/go-mage/internal/logger"
	"github.com/MKhiriev/go-mage/internal/tile"
	"github.com/MKhiriev/go-mage/internal/utils"
	"github.com/MKhiriev/go-mage/models"
)

func tileCoordinateFromRequest(r *http.Request) (models.TileCoordinate, error) {
	var coord models.TileCoordinate
	params := []struct {
		name string
		dst  *int
	}{
		{"z", &coord.Zoom},
		{"x", &coord.X},
		{"y", &coord.Y},
	}
	for _, p := range params {
		v, err := strconv.Atoi(chi.URLParam(r, p.name))
		if err != nil {
			return coord, fmt.Errorf("%w: %s: %w", ErrInvalidTileCoordinates, p.name, err)
		}
		*p.dst = v
	}
	return coord, nil
}

func (h *Handler) getTile(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	coord, err := tileCoordinateFromRequest(r)
	if err != nil {
		log.Err(err).Str("func", "*Handler.getTile").Msg("invalid tile path")
		writeError(w, err)
		return
	}

	data, err := h.tiles.Tile(r.Context(), coord)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			// nobody is waiting for the body
			log.Debug().Str("func", "*Handler.getTile").Str("tile", coord.String()).Msg("tile request canceled")
			return
		}
		log.Err(err).Str("func", "*Handler.getTile").Str("tile", coord.String()).Msg("failed to get tile")
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "no-cache")
	w.Write(data)
}

func (h *Handler) clearTiles(w http.ResponseWriter, r *http.Request) {
	h.tiles.ClearCache()
	logger.FromRequest(r).Info().Msg("tile cache cleared")
	w.WriteHeader(http.StatusNoContent)
}

func tapFromRequest(r *http.Request) (orb.Point, int, error) {
	query := r.URL.Query()

	lat, err := strconv.ParseFloat(query.Get("lat"), 64)
	if err != nil {
		return orb.Point{}, 0, fmt.Errorf("%w: lat: %w", ErrInvalidTapLocation, err)
	}
	lon, err := strconv.ParseFloat(query.Get("lon"), 64)
	if err != nil {
		return orb.Point{}, 0, fmt.Errorf("%w: lon: %w", ErrInvalidTapLocation, err)
	}
	zoom, err := strconv.Atoi(query.Get("zoom"))
	if err != nil {
		return orb.Point{}, 0, fmt.Errorf("%w: zoom: %w", ErrInvalidTapLocation, err)
	}
	if lat < -90 || lat > 90 {
		return orb.Point{}, 0, fmt.Errorf("%w: lat %v", ErrInvalidTapLocation, lat)
	}
	return orb.Point{lon, lat}, zoom, nil
}

// featureCollection lists tapped items newest first, the order a selection
// list shows them in.
func featureCollection(images []tile.DataSourceImage) *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()
	for i := len(images) - 1; i >= 0; i-- {
		item := images[i].Item

		f := geojson.NewFeature(item.Geometry)
		f.ID = item.Key.String()
		f.Properties["observation_key"] = item.ObservationKey.String()
		if item.ObservationRemoteID != "" {
			f.Properties["observation_remote_id"] = item.ObservationRemoteID
		}
		f.Properties["event_id"] = item.EventID
		f.Properties["form_id"] = item.FormID
		if item.FieldName != "" {
			f.Properties["field_name"] = item.FieldName
		}
		f.Properties["timestamp"] = item.Timestamp.UTC().Format(time.RFC3339)
		f.Properties["important"] = item.Important
		if item.Accuracy > 0 {
			f.Properties["accuracy"] = item.Accuracy
		}
		fc.Append(f)
	}
	return fc
}

func (h *Handler) getFeatures(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	tap, zoom, err := tapFromRequest(r)
	if err != nil {
		log.Err(err).Str("func", "*Handler.getFeatures").Msg("invalid tap")
		writeError(w, err)
		return
	}

	images, err := h.tiles.Features(r.Context(), tap, zoom)
	if err != nil {
		log.Err(err).Str("func", "*Handler.getFeatures").Msg("failed to hit-test tap")
		writeError(w, err)
		return
	}

	if _, err := utils.WriteJSON(w, featureCollection(images), http.StatusOK); err != nil {
		log.Err(err).Str("func", "*Handler.getFeatures").Msg("failed to write features")
	}
}
