// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// AttachmentModel is a snapshot of a media attachment of an observation.
type AttachmentModel struct {
	Key      ObjectKey
	RemoteID string

	ObservationKey      ObjectKey
	ObservationRemoteID string
	EventID             int64

	// ObservationFormID and FieldName locate the attachment field inside the
	// observation forms.
	ObservationFormID string
	FieldName         string

	Name        string
	ContentType string
	Size        int64

	// URL is the server download location, LocalPath the downloaded or
	// captured file on this device.
	URL       string
	LocalPath string

	// Order is the position of the attachment within its field.
	Order int

	Timestamp    time.Time
	LastModified time.Time

	Dirty             bool
	MarkedForDeletion bool
}

// PushKey identifies the record in the pending-push set.
func (a AttachmentModel) PushKey() string {
	return string(a.Key)
}

// DeletionCandidate reports whether the attachment is soft-deleted locally
// and must be deleted on the server.
func (a AttachmentModel) DeletionCandidate() bool {
	return a.MarkedForDeletion && a.Dirty && a.RemoteID != "" && a.ObservationRemoteID != ""
}

// AttachmentFilter narrows attachment queries. Empty fields are ignored.
type AttachmentFilter struct {
	ObservationKey    ObjectKey
	ObservationFormID string
	FieldName         string

	// IncludeDeleted also returns attachments marked for deletion.
	IncludeDeleted bool
}
