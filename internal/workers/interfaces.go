// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package workers runs the long-lived background parts of the client as one
// aggregate: eager push listeners, the periodic sync job and the tile host.
package workers

import "context"

// Worker is a background component with an explicit lifecycle.
//
// Run starts the worker bound to ctx and returns without waiting for it;
// Stop ends it and blocks until its goroutines have exited.
type Worker interface {
	Name() string
	Run(ctx context.Context)
	Stop()
}
