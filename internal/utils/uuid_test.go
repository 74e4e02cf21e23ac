// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-mage/models"
)

func TestUUIDGenerator_GeneratesV7(t *testing.T) {
	g := NewUUIDGenerator()

	id, err := uuid.Parse(g.Generate())
	require.NoError(t, err)
	assert.Equal(t, uuid.Version(7), id.Version())
	assert.NotEqual(t, g.Generate(), g.Generate())
}

func TestUUIDGenerator_NewKey(t *testing.T) {
	key := NewUUIDGenerator().NewKey(models.EntityAttachment)

	assert.True(t, key.Is(models.EntityAttachment))
	_, err := uuid.Parse(key.ID())
	assert.NoError(t, err)
}
