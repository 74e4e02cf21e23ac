// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter is the remote data source: it talks to the MAGE server
// over JSON/HTTP.
//
// Push operations never return errors. Any transport failure, non-2xx
// status or undecodable body comes back as an empty response map, which
// callers treat as "not synced yet". Descriptor and sign-in calls map HTTP
// statuses to the sentinel errors in errors.go instead, so callers can use
// [errors.Is] (e.g. [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-mage/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ImportantRemoteDataSource pushes important flags.
type ImportantRemoteDataSource interface {
	// PushImportant sets or clears the flag on the server depending on
	// important.Important and returns the decoded observation the server sends back.
	PushImportant(ctx context.Context, important models.ObservationImportantModel) map[string]any
}

// AttachmentRemoteDataSource pushes attachment deletions.
type AttachmentRemoteDataSource interface {
	DeleteAttachment(ctx context.Context, a models.AttachmentModel) map[string]any
}

// ServerAdapter is the complete HTTP surface of the MAGE server used by the
// client.
type ServerAdapter interface {
	ImportantRemoteDataSource
	AttachmentRemoteDataSource

	// SetToken stores the bearer token attached to every authenticated
	// request. Called after a successful sign-in.
	SetToken(token string)
	Token() string

	// GetServerInfo fetches the server descriptor from GET /api.
	GetServerInfo(ctx context.Context) (models.ServerInfo, error)

	// SignIn authenticates with the local username/password strategy. It
	// does not store the returned token.
	SignIn(ctx context.Context, params models.SignInParams) (models.SignInResult, error)
}
