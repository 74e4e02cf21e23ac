// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-mage/internal/app"
	"github.com/MKhiriev/go-mage/internal/logger"
	"github.com/MKhiriev/go-mage/internal/utils"
	"github.com/MKhiriev/go-mage/internal/viewmodel"
	"github.com/MKhiriev/go-mage/models"
)

type importantBody struct {
	Important bool       `json:"important"`
	Reason    string     `json:"reason,omitempty"`
	UserID    string     `json:"user_id,omitempty"`
	Timestamp *time.Time `json:"timestamp,omitempty"`
	Dirty     bool       `json:"dirty"`
}

func newImportantBody(m models.ObservationImportantModel) importantBody {
	body := importantBody{
		Important: m.Important,
		Reason:    m.Reason,
		UserID:    m.UserID,
		Dirty:     m.Dirty,
	}
	if !m.Timestamp.IsZero() {
		ts := m.Timestamp.UTC()
		body.Timestamp = &ts
	}
	return body
}

type flagRequest struct {
	Reason string `json:"reason"`
}

type attachmentBody struct {
	Key               string `json:"key"`
	RemoteID          string `json:"remote_id,omitempty"`
	Name              string `json:"name"`
	ContentType       string `json:"content_type"`
	Size              int64  `json:"size"`
	URL               string `json:"url,omitempty"`
	LocalPath         string `json:"local_path,omitempty"`
	Dirty             bool   `json:"dirty"`
	MarkedForDeletion bool   `json:"marked_for_deletion"`
}

type attachmentGroupBody struct {
	ObservationFormID string           `json:"observation_form_id"`
	FieldName         string           `json:"field_name"`
	Attachments       []attachmentBody `json:"attachments"`
}

func newAttachmentGroups(groups []viewmodel.AttachmentGroup) []attachmentGroupBody {
	bodies := make([]attachmentGroupBody, 0, len(groups))
	for _, g := range groups {
		body := attachmentGroupBody{
			ObservationFormID: g.ObservationFormID,
			FieldName:         g.FieldName,
			Attachments:       make([]attachmentBody, 0, len(g.Attachments)),
		}
		for _, a := range g.Attachments {
			body.Attachments = append(body.Attachments, attachmentBody{
				Key:               a.Key.String(),
				RemoteID:          a.RemoteID,
				Name:              a.Name,
				ContentType:       a.ContentType,
				Size:              a.Size,
				URL:               a.URL,
				LocalPath:         a.LocalPath,
				Dirty:             a.Dirty,
				MarkedForDeletion: a.MarkedForDeletion,
			})
		}
		bodies = append(bodies, body)
	}
	return bodies
}

// observationFromPath resolves the {id} path parameter and writes 404 when
// there is no such observation.
func (h *Handler) observationFromPath(w http.ResponseWriter, r *http.Request) (models.ObservationModel, bool) {
	key := models.NewObjectKey(models.EntityObservation, chi.URLParam(r, "id"))
	observation, ok := h.services.Observations.Get(r.Context(), key)
	if !ok {
		http.Error(w, app.MsgObservationNotFound, http.StatusNotFound)
	}
	return observation, ok
}

func (h *Handler) writeImportant(w http.ResponseWriter, r *http.Request, key models.ObjectKey) {
	important, _ := h.services.ObservationImportant.Get(r.Context(), key)
	if _, err := utils.WriteJSON(w, newImportantBody(important), http.StatusOK); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.writeImportant").Msg("failed to write important flag")
	}
}

func (h *Handler) getImportant(w http.ResponseWriter, r *http.Request) {
	observation, ok := h.observationFromPath(w, r)
	if !ok {
		return
	}
	h.writeImportant(w, r, observation.Key)
}

func (h *Handler) flagImportant(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req flagRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		log.Err(err).Str("func", "*Handler.flagImportant").Msg("Invalid JSON was passed")
		http.Error(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	observation, ok := h.observationFromPath(w, r)
	if !ok {
		return
	}

	if err := h.services.ObservationImportant.FlagImportant(r.Context(), observation.Key, req.Reason, h.userID); err != nil {
		log.Err(err).Str("func", "*Handler.flagImportant").Str("key", observation.Key.String()).Msg("failed to flag observation important")
		writeError(w, err)
		return
	}
	h.writeImportant(w, r, observation.Key)
}

func (h *Handler) removeImportant(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	observation, ok := h.observationFromPath(w, r)
	if !ok {
		return
	}

	if err := h.services.ObservationImportant.RemoveImportant(r.Context(), observation.Key, h.userID); err != nil {
		log.Err(err).Str("func", "*Handler.removeImportant").Str("key", observation.Key.String()).Msg("failed to remove important flag")
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) getAttachments(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	observation, ok := h.observationFromPath(w, r)
	if !ok {
		return
	}

	attachments, err := h.services.Attachments.GetAttachments(r.Context(), models.AttachmentFilter{ObservationKey: observation.Key})
	if err != nil {
		log.Err(err).Str("func", "*Handler.getAttachments").Str("key", observation.Key.String()).Msg("failed to get attachments")
		writeError(w, err)
		return
	}

	groups := viewmodel.GroupAttachments(viewmodel.FormOrder(observation), attachments)
	if _, err := utils.WriteJSON(w, newAttachmentGroups(groups), http.StatusOK); err != nil {
		log.Err(err).Str("func", "*Handler.getAttachments").Msg("failed to write attachments")
	}
}

func (h *Handler) attachmentFromPath(w http.ResponseWriter, r *http.Request) (models.AttachmentModel, bool) {
	key := models.NewObjectKey(models.EntityAttachment, chi.URLParam(r, "id"))
	attachment, ok := h.services.Attachments.Get(r.Context(), key)
	if !ok {
		http.Error(w, app.MsgAttachmentNotFound, http.StatusNotFound)
	}
	return attachment, ok
}

func (h *Handler) deleteAttachment(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	attachment, ok := h.attachmentFromPath(w, r)
	if !ok {
		return
	}

	if err := h.services.Attachments.MarkForDeletion(r.Context(), attachment.Key); err != nil {
		log.Err(err).Str("func", "*Handler.deleteAttachment").Str("key", attachment.Key.String()).Msg("failed to mark attachment for deletion")
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) undeleteAttachment(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	attachment, ok := h.attachmentFromPath(w, r)
	if !ok {
		return
	}

	if err := h.services.Attachments.Undelete(r.Context(), attachment.Key); err != nil {
		log.Err(err).Str("func", "*Handler.undeleteAttachment").Str("key", attachment.Key.String()).Msg("failed to undelete attachment")
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
