// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-mage/internal/app"
	"github.com/MKhiriev/go-mage/internal/store"
	"github.com/MKhiriev/go-mage/models"
)

var (
	observationKey = models.NewObjectKey(models.EntityObservation, "o1")
	attachmentKey  = models.NewObjectKey(models.EntityAttachment, "a1")
)

func TestGetImportant(t *testing.T) {
	h, deps := newTestHandler(t)
	deps.observations.EXPECT().Get(gomock.Any(), observationKey).Return(models.ObservationModel{Key: observationKey}, true)
	deps.important.EXPECT().Get(gomock.Any(), observationKey).Return(models.ObservationImportantModel{
		ObservationKey: observationKey,
		Important:      true,
		Reason:         "road blocked",
		UserID:         "u2",
		Timestamp:      time.Date(2026, 5, 4, 3, 2, 1, 0, time.UTC),
		Dirty:          true,
	}, true)

	rec := serve(h, httptest.NewRequest(http.MethodGet, "/api/observations/o1/important", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"important":true,"reason":"road blocked","user_id":"u2","timestamp":"2026-05-04T03:02:01Z","dirty":true}`,
		rec.Body.String())
}

func TestGetImportant_NoFlag(t *testing.T) {
	h, deps := newTestHandler(t)
	deps.observations.EXPECT().Get(gomock.Any(), observationKey).Return(models.ObservationModel{Key: observationKey}, true)
	deps.important.EXPECT().Get(gomock.Any(), observationKey).Return(models.ObservationImportantModel{}, false)

	rec := serve(h, httptest.NewRequest(http.MethodGet, "/api/observations/o1/important", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"important":false,"dirty":false}`, rec.Body.String())
}

func TestGetImportant_UnknownObservation(t *testing.T) {
	h, deps := newTestHandler(t)
	deps.observations.EXPECT().Get(gomock.Any(), observationKey).Return(models.ObservationModel{}, false)

	rec := serve(h, httptest.NewRequest(http.MethodGet, "/api/observations/o1/important", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), app.MsgObservationNotFound)
}

func TestFlagImportant(t *testing.T) {
	h, deps := newTestHandler(t)
	gomock.InOrder(
		deps.observations.EXPECT().Get(gomock.Any(), observationKey).Return(models.ObservationModel{Key: observationKey}, true),
		deps.important.EXPECT().FlagImportant(gomock.Any(), observationKey, "urgent", testUserID).Return(nil),
		deps.important.EXPECT().Get(gomock.Any(), observationKey).Return(models.ObservationImportantModel{
			Important: true, Reason: "urgent", UserID: testUserID, Dirty: true,
		}, true),
	)

	rec := serve(h, httptest.NewRequest(http.MethodPut, "/api/observations/o1/important", strings.NewReader(`{"reason":"urgent"}`)))

	require.Equal(t, http.StatusOK, rec.Code)
	var got importantBody
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.True(t, got.Important)
	assert.True(t, got.Dirty)
	assert.Equal(t, "urgent", got.Reason)
}

func TestFlagImportant_EmptyBody(t *testing.T) {
	h, deps := newTestHandler(t)
	deps.observations.EXPECT().Get(gomock.Any(), observationKey).Return(models.ObservationModel{Key: observationKey}, true)
	deps.important.EXPECT().FlagImportant(gomock.Any(), observationKey, "", testUserID).Return(nil)
	deps.important.EXPECT().Get(gomock.Any(), observationKey).Return(models.ObservationImportantModel{Important: true}, true)

	rec := serve(h, httptest.NewRequest(http.MethodPut, "/api/observations/o1/important", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestFlagImportant_InvalidJSON(t *testing.T) {
	h, _ := newTestHandler(t)

	rec := serve(h, httptest.NewRequest(http.MethodPut, "/api/observations/o1/important", strings.NewReader(`{"reason":`)))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), app.MsgInvalidDataProvided)
}

func TestFlagImportant_StoreFailure(t *testing.T) {
	h, deps := newTestHandler(t)
	deps.observations.EXPECT().Get(gomock.Any(), observationKey).Return(models.ObservationModel{Key: observationKey}, true)
	deps.important.EXPECT().FlagImportant(gomock.Any(), observationKey, "r", testUserID).Return(store.ErrCommitingTransaction)

	rec := serve(h, httptest.NewRequest(http.MethodPut, "/api/observations/o1/important", strings.NewReader(`{"reason":"r"}`)))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), app.MsgInternalServerError)
}

func TestRemoveImportant(t *testing.T) {
	h, deps := newTestHandler(t)
	deps.observations.EXPECT().Get(gomock.Any(), observationKey).Return(models.ObservationModel{Key: observationKey}, true)
	deps.important.EXPECT().RemoveImportant(gomock.Any(), observationKey, testUserID).Return(nil)

	rec := serve(h, httptest.NewRequest(http.MethodDelete, "/api/observations/o1/important", nil))

	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestGetAttachments_GroupedByFormOrder(t *testing.T) {
	h, deps := newTestHandler(t)
	observation := models.ObservationModel{
		Key: observationKey,
		Properties: map[string]any{
			"forms": []any{
				map[string]any{"id": "form-b"},
				map[string]any{"id": "form-a"},
			},
		},
	}
	attachment := func(id, form, field string, order int) models.AttachmentModel {
		return models.AttachmentModel{
			Key:               models.NewObjectKey(models.EntityAttachment, id),
			ObservationKey:    observationKey,
			ObservationFormID: form,
			FieldName:         field,
			Name:              id + ".jpg",
			ContentType:       "image/jpeg",
			Order:             order,
		}
	}
	deps.observations.EXPECT().Get(gomock.Any(), observationKey).Return(observation, true)
	deps.attachments.EXPECT().
		GetAttachments(gomock.Any(), models.AttachmentFilter{ObservationKey: observationKey}).
		Return([]models.AttachmentModel{
			attachment("a1", "form-a", "photos", 0),
			attachment("b2", "form-b", "photos", 1),
			attachment("b1", "form-b", "photos", 0),
			attachment("b3", "form-b", "audio", 0),
		}, nil)

	rec := serve(h, httptest.NewRequest(http.MethodGet, "/api/observations/o1/attachments", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var groups []attachmentGroupBody
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &groups))
	require.Len(t, groups, 3)

	assert.Equal(t, "form-b", groups[0].ObservationFormID)
	assert.Equal(t, "audio", groups[0].FieldName)
	assert.Equal(t, "form-b", groups[1].ObservationFormID)
	assert.Equal(t, "photos", groups[1].FieldName)
	require.Len(t, groups[1].Attachments, 2)
	assert.Equal(t, "b1.jpg", groups[1].Attachments[0].Name)
	assert.Equal(t, "b2.jpg", groups[1].Attachments[1].Name)
	assert.Equal(t, "form-a", groups[2].ObservationFormID)
}

func TestGetAttachments_None(t *testing.T) {
	h, deps := newTestHandler(t)
	deps.observations.EXPECT().Get(gomock.Any(), observationKey).Return(models.ObservationModel{Key: observationKey}, true)
	deps.attachments.EXPECT().GetAttachments(gomock.Any(), gomock.Any()).Return(nil, nil)

	rec := serve(h, httptest.NewRequest(http.MethodGet, "/api/observations/o1/attachments", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestDeleteAttachment(t *testing.T) {
	h, deps := newTestHandler(t)
	deps.attachments.EXPECT().Get(gomock.Any(), attachmentKey).Return(models.AttachmentModel{Key: attachmentKey}, true)
	deps.attachments.EXPECT().MarkForDeletion(gomock.Any(), attachmentKey).Return(nil)

	rec := serve(h, httptest.NewRequest(http.MethodDelete, "/api/attachments/a1", nil))

	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestDeleteAttachment_Unknown(t *testing.T) {
	h, deps := newTestHandler(t)
	deps.attachments.EXPECT().Get(gomock.Any(), attachmentKey).Return(models.AttachmentModel{}, false)

	rec := serve(h, httptest.NewRequest(http.MethodDelete, "/api/attachments/a1", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), app.MsgAttachmentNotFound)
}

func TestUndeleteAttachment(t *testing.T) {
	h, deps := newTestHandler(t)
	deps.attachments.EXPECT().Get(gomock.Any(), attachmentKey).Return(models.AttachmentModel{Key: attachmentKey, MarkedForDeletion: true}, true)
	deps.attachments.EXPECT().Undelete(gomock.Any(), attachmentKey).Return(nil)

	rec := serve(h, httptest.NewRequest(http.MethodPost, "/api/attachments/a1/undelete", nil))

	assert.Equal(t, http.StatusNoContent, rec.Code)
}
