// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// ObservationImportantModel is a snapshot of the "important" flag of one
// observation together with its sync state.
type ObservationImportantModel struct {
	// ObservationKey is the local key of the flagged observation. It is also
	// the key of the important record itself: one flag per observation.
	ObservationKey ObjectKey

	// ObservationRemoteID is the server id of the observation. Pushes are
	// only possible once it is set.
	ObservationRemoteID string

	// EventID is the event the observation belongs to.
	EventID int64

	// Important is the locally requested value of the flag.
	Important bool

	// Reason is the optional description entered with the flag.
	Reason string

	// UserID is the user who last changed the flag.
	UserID string

	// Timestamp is bumped on every local write and on a lost reconcile race.
	// It is the causality token that decides which write is newest.
	Timestamp time.Time

	// Dirty marks a local change not yet confirmed by the server.
	Dirty bool
}

// PushKey identifies the record in the pending-push set.
func (m ObservationImportantModel) PushKey() string {
	return string(m.ObservationKey)
}

// PushCandidate reports whether the record is dirty and its observation is
// known to the server.
func (m ObservationImportantModel) PushCandidate() bool {
	return m.Dirty && m.ObservationRemoteID != ""
}
