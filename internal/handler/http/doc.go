// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the map host surface of the client.
//
// It serves rendered observation tiles, tap hit-testing as GeoJSON, the
// tile filter, important flags and attachments of local observations, a
// manual sync trigger, prometheus metrics and the build version. Request
// tracing, access logging and response compression are handled here before
// requests reach the repositories.
package http
