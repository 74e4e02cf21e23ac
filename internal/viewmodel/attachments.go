// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package viewmodel

import (
	"cmp"
	"context"
	"slices"
	"sync"

	"github.com/MKhiriev/go-mage/internal/changes"
	"github.com/MKhiriev/go-mage/internal/service"
	"github.com/MKhiriev/go-mage/models"
)

// AttachmentGroup is the attachments of one field of one observation form.
type AttachmentGroup struct {
	ObservationFormID string
	FieldName         string
	Attachments       []models.AttachmentModel
}

// FormOrder returns the ids of the observation forms in display order.
func FormOrder(o models.ObservationModel) []string {
	forms, _ := o.Properties["forms"].([]any)
	order := make([]string, 0, len(forms))
	for _, f := range forms {
		form, ok := f.(map[string]any)
		if !ok {
			continue
		}
		if id, ok := form["id"].(string); ok {
			order = append(order, id)
		}
	}
	return order
}

// GroupAttachments groups attachments by form and field. Groups follow
// formOrder, forms not listed go last; fields sort by name and attachments
// by their order within the field.
func GroupAttachments(formOrder []string, attachments []models.AttachmentModel) []AttachmentGroup {
	rank := func(formID string) int {
		if i := slices.Index(formOrder, formID); i >= 0 {
			return i
		}
		return len(formOrder)
	}

	sorted := slices.Clone(attachments)
	slices.SortStableFunc(sorted, func(a, b models.AttachmentModel) int {
		return cmp.Or(
			cmp.Compare(rank(a.ObservationFormID), rank(b.ObservationFormID)),
			cmp.Compare(a.ObservationFormID, b.ObservationFormID),
			cmp.Compare(a.FieldName, b.FieldName),
			cmp.Compare(a.Order, b.Order),
			cmp.Compare(a.Key, b.Key),
		)
	})

	var groups []AttachmentGroup
	for _, a := range sorted {
		last := len(groups) - 1
		if last < 0 || groups[last].ObservationFormID != a.ObservationFormID || groups[last].FieldName != a.FieldName {
			groups = append(groups, AttachmentGroup{ObservationFormID: a.ObservationFormID, FieldName: a.FieldName})
			last++
		}
		groups[last].Attachments = append(groups[last].Attachments, a)
	}
	return groups
}

// AttachmentsViewModel lists the attachments of one observation grouped
// for display.
type AttachmentsViewModel struct {
	follower

	repository  service.AttachmentRepository
	observation models.ObservationModel

	mu     sync.RWMutex
	items  []models.AttachmentModel
	groups []AttachmentGroup
}

func NewAttachmentsViewModel(repository service.AttachmentRepository, observation models.ObservationModel) *AttachmentsViewModel {
	return &AttachmentsViewModel{
		follower:    newFollower(),
		repository:  repository,
		observation: observation,
	}
}

func (vm *AttachmentsViewModel) Start(ctx context.Context) {
	vm.mu.Lock()
	vm.items, vm.groups = nil, nil
	vm.mu.Unlock()

	order := FormOrder(vm.observation)
	follow(ctx, &vm.follower, "attachments",
		func(ctx context.Context) *changes.Subscription[changes.Diff[models.AttachmentModel]] {
			return vm.repository.ObserveAttachments(ctx, models.AttachmentFilter{ObservationKey: vm.observation.Key})
		},
		func(diff changes.Diff[models.AttachmentModel]) error {
			vm.mu.Lock()
			defer vm.mu.Unlock()

			items, err := diff.Apply(vm.items)
			if err != nil {
				return err
			}
			vm.items = items
			vm.groups = GroupAttachments(order, items)
			return nil
		})
}

func (vm *AttachmentsViewModel) Groups() []AttachmentGroup {
	vm.mu.RLock()
	defer vm.mu.RUnlock()
	return vm.groups
}

func (vm *AttachmentsViewModel) Delete(ctx context.Context, key models.ObjectKey) error {
	return vm.repository.MarkForDeletion(ctx, key)
}

func (vm *AttachmentsViewModel) Undelete(ctx context.Context, key models.ObjectKey) error {
	return vm.repository.Undelete(ctx, key)
}
