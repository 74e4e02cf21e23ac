// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"github.com/google/uuid"

	"github.com/MKhiriev/go-mage/models"
)

// UUIDGenerator hands out time-ordered identifiers for local records.
type UUIDGenerator struct {
}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

// Generate returns a UUIDv7, falling back to a random v4 if the clock source
// fails.
func (g *UUIDGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}

// NewKey returns a fresh local key for a record of entity.
func (g *UUIDGenerator) NewKey(entity models.Entity) models.ObjectKey {
	return models.NewObjectKey(entity, g.Generate())
}
