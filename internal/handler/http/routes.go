// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer, h.withTraceID, h.withLogging)

	router.Get("/metrics", h.metrics.ServeHTTP)

	// map surface, PNG bodies are not compressed again
	router.Group(func(r chi.Router) {
		r.Get("/tiles/{z}/{x}/{y}.png", h.getTile)
		r.Delete("/tiles", h.clearTiles)
		r.Get("/features", h.getFeatures)
	})

	router.Group(func(r chi.Router) {
		r.Use(withGZip)

		r.Get("/api/version", h.getVersion)

		r.Get("/api/filter", h.getFilter)
		r.Put("/api/filter", h.setFilter)

		r.Get("/api/observations/{id}/important", h.getImportant)
		r.Put("/api/observations/{id}/important", h.flagImportant)
		r.Delete("/api/observations/{id}/important", h.removeImportant)
		r.Get("/api/observations/{id}/attachments", h.getAttachments)

		r.Delete("/api/attachments/{id}", h.deleteAttachment)
		r.Post("/api/attachments/{id}/undelete", h.undeleteAttachment)

		r.Post("/api/sync", h.syncNow)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
