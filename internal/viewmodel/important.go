// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package viewmodel

import (
	"context"
	"sync"

	"github.com/MKhiriev/go-mage/internal/changes"
	"github.com/MKhiriev/go-mage/internal/service"
	"github.com/MKhiriev/go-mage/models"
)

// ImportantViewModel shows and edits the important flag of one observation.
type ImportantViewModel struct {
	follower

	repository     service.ObservationImportantRepository
	observationKey models.ObjectKey
	userID         string

	mu      sync.RWMutex
	current models.ObservationImportantModel
	loaded  bool
}

func NewImportantViewModel(repository service.ObservationImportantRepository, observationKey models.ObjectKey, userID string) *ImportantViewModel {
	return &ImportantViewModel{
		follower:       newFollower(),
		repository:     repository,
		observationKey: observationKey,
		userID:         userID,
	}
}

func (vm *ImportantViewModel) Start(ctx context.Context) {
	follow(ctx, &vm.follower, "important",
		func(ctx context.Context) *changes.Subscription[[]models.ObservationImportantModel] {
			return vm.repository.ObserveImportant(ctx, vm.observationKey)
		},
		func(snapshot []models.ObservationImportantModel) error {
			vm.mu.Lock()
			defer vm.mu.Unlock()
			vm.loaded = true
			if len(snapshot) == 0 {
				vm.current = models.ObservationImportantModel{ObservationKey: vm.observationKey}
				return nil
			}
			vm.current = snapshot[0]
			return nil
		})
}

// Important returns the displayed flag; false until the first value
// arrived.
func (vm *ImportantViewModel) Important() (models.ObservationImportantModel, bool) {
	vm.mu.RLock()
	defer vm.mu.RUnlock()
	return vm.current, vm.loaded
}

// Pending reports whether the displayed flag awaits server confirmation.
func (vm *ImportantViewModel) Pending() bool {
	vm.mu.RLock()
	defer vm.mu.RUnlock()
	return vm.current.Dirty
}

func (vm *ImportantViewModel) Flag(ctx context.Context, reason string) error {
	return vm.repository.FlagImportant(ctx, vm.observationKey, reason, vm.userID)
}

func (vm *ImportantViewModel) Remove(ctx context.Context) error {
	return vm.repository.RemoveImportant(ctx, vm.observationKey, vm.userID)
}
