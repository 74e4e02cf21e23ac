// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client is the composition root of the MAGE client process.
//
// It opens the local store, wires the push services and the tile host, and
// runs the background workers until the process is signaled.
package client
