// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	ErrListingPushCandidates = errors.New("failed to list push candidates")
	ErrSavingObservation     = errors.New("failed to save observation")
)
