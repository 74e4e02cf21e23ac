// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package server runs the local HTTP host that serves map tiles and the
// client API to the map view.
package server
