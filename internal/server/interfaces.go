// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

// Server defines the lifecycle contract of the tile host.
//
// RunServer blocks until the server stops; Shutdown gracefully stops it and
// frees the listener.
type Server interface {
	RunServer()
	Shutdown()
}
