// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-mage/internal/logger"
)

// syncNow runs one sync round in the request. Push failures leave records
// dirty and are not reported; only failing candidate queries are.
func (h *Handler) syncNow(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	if err := h.services.SyncJob.SyncNow(r.Context()); err != nil {
		log.Err(err).Str("func", "*Handler.syncNow").Msg("sync round failed")
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
