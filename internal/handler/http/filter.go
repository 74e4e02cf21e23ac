// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/MKhiriev/go-mage/internal/app"
	"github.com/MKhiriev/go-mage/internal/logger"
	"github.com/MKhiriev/go-mage/internal/utils"
	"github.com/MKhiriev/go-mage/models"
)

// filterBody is the wire form of the observation filter tiles are drawn
// with. Absent timestamps leave that side of the window open.
type filterBody struct {
	EventID       int64      `json:"event_id"`
	Since         *time.Time `json:"since,omitempty"`
	Until         *time.Time `json:"until,omitempty"`
	ImportantOnly bool       `json:"important_only"`
}

func newFilterBody(filter models.ObservationFilter) filterBody {
	body := filterBody{EventID: filter.EventID, ImportantOnly: filter.ImportantOnly}
	if !filter.Since.IsZero() {
		since := filter.Since.UTC()
		body.Since = &since
	}
	if !filter.Until.IsZero() {
		until := filter.Until.UTC()
		body.Until = &until
	}
	return body
}

func (b filterBody) toFilter() (models.ObservationFilter, error) {
	filter := models.ObservationFilter{EventID: b.EventID, ImportantOnly: b.ImportantOnly}
	if b.Since != nil {
		filter.Since = *b.Since
	}
	if b.Until != nil {
		filter.Until = *b.Until
	}
	if !filter.Since.IsZero() && !filter.Until.IsZero() && filter.Since.After(filter.Until) {
		return filter, fmt.Errorf("%w: since %s is after until %s", ErrInvalidTimeWindow,
			filter.Since.Format(time.RFC3339), filter.Until.Format(time.RFC3339))
	}
	return filter, nil
}

func (h *Handler) getFilter(w http.ResponseWriter, r *http.Request) {
	if _, err := utils.WriteJSON(w, newFilterBody(h.tiles.Filter()), http.StatusOK); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.getFilter").Msg("failed to write filter")
	}
}

func (h *Handler) setFilter(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var body filterBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		log.Err(err).Str("func", "*Handler.setFilter").Msg("Invalid JSON was passed")
		http.Error(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	filter, err := body.toFilter()
	if err != nil {
		log.Err(err).Str("func", "*Handler.setFilter").Msg("invalid filter")
		writeError(w, err)
		return
	}

	h.tiles.SetFilter(filter)
	log.Info().Int64("event_id", filter.EventID).Bool("important_only", filter.ImportantOnly).Msg("tile filter changed")

	if _, err := utils.WriteJSON(w, newFilterBody(h.tiles.Filter()), http.StatusOK); err != nil {
		log.Err(err).Str("func", "*Handler.setFilter").Msg("failed to write filter")
	}
}
