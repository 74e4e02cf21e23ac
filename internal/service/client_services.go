// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/go-mage/internal/adapter"
	"github.com/MKhiriev/go-mage/internal/metrics"
	"github.com/MKhiriev/go-mage/internal/store"
)

type ClientServices struct {
	Observations         ObservationRepository
	ObservationImportant ObservationImportantRepository
	ObservationLocations ObservationLocationRepository
	Attachments          AttachmentRepository
	SyncJob              ClientSyncJob
}

// NewClientServices builds the repositories over the local storages and the
// server adapter. pushConcurrency bounds parallel pushes per Sync call.
func NewClientServices(storages *store.ClientStorages, serverAdapter adapter.ServerAdapter, recorder *metrics.Recorder, pushConcurrency int) *ClientServices {
	important := NewObservationImportantRepository(storages.ObservationImportant, serverAdapter, recorder, pushConcurrency)
	attachments := NewAttachmentRepository(storages.Attachments, serverAdapter, recorder, pushConcurrency)

	return &ClientServices{
		Observations:         NewObservationRepository(storages.Observations, storages.ObservationLocations),
		ObservationImportant: important,
		ObservationLocations: NewObservationLocationRepository(storages.ObservationLocations),
		Attachments:          attachments,
		SyncJob:              NewClientSyncJob(important, attachments),
	}
}

// EagerPushers lists the repositories that push candidates as they appear.
func (s *ClientServices) EagerPushers() []EagerPusher {
	return []EagerPusher{s.ObservationImportant, s.Attachments}
}
