// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-mage/internal/app"
	"github.com/MKhiriev/go-mage/internal/service"
	"github.com/MKhiriev/go-mage/internal/store"
	"github.com/MKhiriev/go-mage/internal/tile"
)

type errorResponse struct {
	target  error
	status  int
	message string
}

// errorResponses is matched in order, so service errors wrapping store
// errors get the service message.
var errorResponses = []errorResponse{
	{ErrInvalidTileCoordinates, http.StatusBadRequest, app.MsgInvalidTileCoordinates},
	{ErrInvalidTapLocation, http.StatusBadRequest, app.MsgInvalidTapLocation},
	{ErrInvalidTimeWindow, http.StatusBadRequest, app.MsgInvalidTimeWindow},

	{tile.ErrInvalidTile, http.StatusBadRequest, app.MsgInvalidTileCoordinates},
	{tile.ErrNoDrawingSurface, http.StatusInternalServerError, app.MsgTileRenderingFailed},

	{service.ErrListingPushCandidates, http.StatusInternalServerError, app.MsgSyncFailed},

	{store.ErrInvalidKey, http.StatusBadRequest, app.MsgInvalidDataProvided},
	{store.ErrBuildingSQLQuery, http.StatusInternalServerError, app.MsgInternalServerError},
	{store.ErrExecutingQuery, http.StatusInternalServerError, app.MsgInternalServerError},
	{store.ErrBeginningTransaction, http.StatusInternalServerError, app.MsgInternalServerError},
	{store.ErrCommitingTransaction, http.StatusInternalServerError, app.MsgInternalServerError},
	{store.ErrScanningRow, http.StatusInternalServerError, app.MsgInternalServerError},
	{store.ErrScanningRows, http.StatusInternalServerError, app.MsgInternalServerError},
}

func responseFromError(err error) (int, string) {
	for _, response := range errorResponses {
		if errors.Is(err, response.target) {
			return response.status, response.message
		}
	}
	return http.StatusInternalServerError, app.MsgInternalServerError
}

func writeError(w http.ResponseWriter, err error) {
	status, message := responseFromError(err)
	http.Error(w, message, status)
}
