// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "errors"

var (
	ErrNoListenAddress = errors.New("tile host listen address is not configured")
	ErrNoHandler       = errors.New("tile host has no handler")
)
