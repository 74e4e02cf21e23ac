// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "errors"

// Validation errors returned by [ClientConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidAdapterConfigs indicates a missing server address or a
	// negative request timeout.
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	// ErrInvalidStorageConfigs indicates an empty or in-memory DSN. The
	// store is shared between connections, so it must be a file.
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidAppConfigs indicates invalid application-level settings.
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidWorkerConfigs indicates a negative interval or pool size.
	ErrInvalidWorkerConfigs = errors.New("invalid worker configuration")
	// ErrInvalidTileConfigs indicates a negative cache size or screen scale.
	ErrInvalidTileConfigs = errors.New("invalid tile configuration")
)
