// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"errors"
	"strings"
)

// Entity names a kind of locally persisted record. The same names are used
// as table-level scopes for store change notifications.
type Entity string

const (
	EntityObservation          Entity = "observation"
	EntityObservationImportant Entity = "observation_important"
	EntityObservationLocation  Entity = "observation_location"
	EntityAttachment           Entity = "attachment"
)

const objectKeyScheme = "mage://"

// ErrInvalidObjectKey is returned by [ParseObjectKey] for strings that are
// not of the form mage://<entity>/<id>.
var ErrInvalidObjectKey = errors.New("invalid object key")

// ObjectKey is the opaque, URI-like identity of a locally persisted record,
// e.g. "mage://observation/0190c0de-7a51-7b2e-8f55-3b1f0c9d2a10".
//
// Value models reference each other by key and never hold a live record.
// A key may outlive its record: resolving a dangling key is an ordinary
// "not found", never an error.
type ObjectKey string

// NewObjectKey builds the key of the record id of the given entity.
func NewObjectKey(entity Entity, id string) ObjectKey {
	return ObjectKey(objectKeyScheme + string(entity) + "/" + id)
}

// ParseObjectKey validates s and returns it as an [ObjectKey].
func ParseObjectKey(s string) (ObjectKey, error) {
	k := ObjectKey(s)
	if k.Entity() == "" || k.ID() == "" {
		return "", ErrInvalidObjectKey
	}
	return k, nil
}

// Entity returns the entity part of the key or "" for malformed keys.
func (k ObjectKey) Entity() Entity {
	entity, _, ok := k.split()
	if !ok {
		return ""
	}
	return Entity(entity)
}

// ID returns the local record id part of the key or "" for malformed keys.
func (k ObjectKey) ID() string {
	_, id, ok := k.split()
	if !ok {
		return ""
	}
	return id
}

// Is reports whether k is a well-formed key of the given entity.
func (k ObjectKey) Is(entity Entity) bool {
	return k.Entity() == entity && k.ID() != ""
}

func (k ObjectKey) String() string {
	return string(k)
}

func (k ObjectKey) split() (string, string, bool) {
	rest, ok := strings.CutPrefix(string(k), objectKeyScheme)
	if !ok {
		return "", "", false
	}
	entity, id, ok := strings.Cut(rest, "/")
	if !ok || entity == "" || id == "" || strings.Contains(id, "/") {
		return "", "", false
	}
	return entity, id, true
}
