// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package changes

import (
	"fmt"
	"slices"

	"github.com/pmezard/go-difflib/difflib"
)

// ChangeKind tells insertions from removals.
type ChangeKind int

const (
	Insert ChangeKind = iota
	Remove
)

func (k ChangeKind) String() string {
	if k == Remove {
		return "remove"
	}
	return "insert"
}

// Change is one step of a [Diff].
//
// Removal offsets index the old collection, insertion offsets index the new
// one. AssociatedWith is the offset of the paired change of the other kind
// when the same element (by key) was both removed and inserted, i.e. it
// moved or was updated in place; otherwise it is -1.
type Change[T any] struct {
	Kind           ChangeKind
	Offset         int
	Element        T
	AssociatedWith int
}

// Diff is the ordered difference between two snapshots of a live query.
type Diff[T any] struct {
	Removals   []Change[T]
	Insertions []Change[T]
}

// IsEmpty reports whether the diff changes nothing.
func (d Diff[T]) IsEmpty() bool {
	return len(d.Removals) == 0 && len(d.Insertions) == 0
}

// Apply returns a copy of collection with the diff applied: removals in
// descending offset order, then insertions in ascending offset order.
func (d Diff[T]) Apply(collection []T) ([]T, error) {
	out := slices.Clone(collection)

	for i := len(d.Removals) - 1; i >= 0; i-- {
		r := d.Removals[i]
		if r.Offset < 0 || r.Offset >= len(out) {
			return nil, fmt.Errorf("%w: removal at %d of %d", ErrDiffOutOfRange, r.Offset, len(out))
		}
		out = slices.Delete(out, r.Offset, r.Offset+1)
	}

	for _, ins := range d.Insertions {
		if ins.Offset < 0 || ins.Offset > len(out) {
			return nil, fmt.Errorf("%w: insertion at %d of %d", ErrDiffOutOfRange, ins.Offset, len(out))
		}
		out = slices.Insert(out, ins.Offset, ins.Element)
	}

	return out, nil
}

// InsertAll is the diff that builds collection from nothing.
func InsertAll[T any](collection []T) Diff[T] {
	d := Diff[T]{Insertions: make([]Change[T], 0, len(collection))}
	for i, el := range collection {
		d.Insertions = append(d.Insertions, Change[T]{Kind: Insert, Offset: i, Element: el, AssociatedWith: -1})
	}
	return d
}

// Compute diffs two ordered snapshots. Elements are compared by their
// fingerprint; equal keys on both sides are paired through AssociatedWith.
func Compute[T any](old, next []T, key, fingerprint func(T) string) Diff[T] {
	if fingerprint == nil {
		fingerprint = defaultFingerprint[T]
	}

	a := tokens(old, key, fingerprint)
	b := tokens(next, key, fingerprint)

	var d Diff[T]
	for _, op := range difflib.NewMatcher(a, b).GetOpCodes() {
		switch op.Tag {
		case 'd':
			d.Removals = appendRange(d.Removals, Remove, old, op.I1, op.I2)
		case 'i':
			d.Insertions = appendRange(d.Insertions, Insert, next, op.J1, op.J2)
		case 'r':
			d.Removals = appendRange(d.Removals, Remove, old, op.I1, op.I2)
			d.Insertions = appendRange(d.Insertions, Insert, next, op.J1, op.J2)
		}
	}

	associate(&d, key)
	return d
}

func tokens[T any](items []T, key, fingerprint func(T) string) []string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = key(it) + "\x00" + fingerprint(it)
	}
	return out
}

func appendRange[T any](dst []Change[T], kind ChangeKind, src []T, from, to int) []Change[T] {
	for i := from; i < to; i++ {
		dst = append(dst, Change[T]{Kind: kind, Offset: i, Element: src[i], AssociatedWith: -1})
	}
	return dst
}

func associate[T any](d *Diff[T], key func(T) string) {
	if len(d.Removals) == 0 || len(d.Insertions) == 0 {
		return
	}

	removed := make(map[string]int, len(d.Removals))
	for i, r := range d.Removals {
		removed[key(r.Element)] = i
	}

	for i := range d.Insertions {
		ri, ok := removed[key(d.Insertions[i].Element)]
		if !ok {
			continue
		}
		d.Insertions[i].AssociatedWith = d.Removals[ri].Offset
		d.Removals[ri].AssociatedWith = d.Insertions[i].Offset
	}
}

func defaultFingerprint[T any](v T) string {
	return fmt.Sprintf("%+v", v)
}
