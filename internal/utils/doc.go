// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package utils provides small helpers shared across go-mage: local id
// generation, keyed fingerprints, JSON HTTP responses, the resty client
// wrapper and bearer token parsing.
package utils
