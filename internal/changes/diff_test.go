// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package changes

import (
	"fmt"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type item struct {
	ID    string
	Title string
}

func itemKey(i item) string { return i.ID }

func TestCompute(t *testing.T) {
	a := item{ID: "a", Title: "A"}
	b := item{ID: "b", Title: "B"}
	c := item{ID: "c", Title: "C"}
	b2 := item{ID: "b", Title: "B2"}

	tests := []struct {
		name           string
		old, next      []item
		wantRemovals   []int
		wantInsertions []int
	}{
		{name: "no change", old: []item{a, b}, next: []item{a, b}},
		{name: "append", old: []item{a}, next: []item{a, b}, wantInsertions: []int{1}},
		{name: "delete head", old: []item{a, b, c}, next: []item{b, c}, wantRemovals: []int{0}},
		{name: "update in place", old: []item{a, b, c}, next: []item{a, b2, c}, wantRemovals: []int{1}, wantInsertions: []int{1}},
		{name: "from empty", old: nil, next: []item{a, b}, wantInsertions: []int{0, 1}},
		{name: "to empty", old: []item{a, b}, next: nil, wantRemovals: []int{0, 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := Compute(tt.old, tt.next, itemKey, nil)

			assert.Equal(t, tt.wantRemovals, offsets(d.Removals))
			assert.Equal(t, tt.wantInsertions, offsets(d.Insertions))

			got, err := d.Apply(tt.old)
			require.NoError(t, err)
			assert.Equal(t, normalize(tt.next), normalize(got))
		})
	}
}

func TestCompute_AssociatesUpdates(t *testing.T) {
	old := []item{{ID: "a", Title: "A"}, {ID: "b", Title: "B"}}
	next := []item{{ID: "a", Title: "A"}, {ID: "b", Title: "B2"}}

	d := Compute(old, next, itemKey, nil)

	require.Len(t, d.Removals, 1)
	require.Len(t, d.Insertions, 1)
	assert.Equal(t, 1, d.Removals[0].AssociatedWith)
	assert.Equal(t, 1, d.Insertions[0].AssociatedWith)
	assert.Equal(t, Remove, d.Removals[0].Kind)
	assert.Equal(t, Insert, d.Insertions[0].Kind)
}

func TestCompute_CustomFingerprintIgnoresFields(t *testing.T) {
	old := []item{{ID: "a", Title: "A"}}
	next := []item{{ID: "a", Title: "changed"}}

	d := Compute(old, next, itemKey, func(item) string { return "" })
	assert.True(t, d.IsEmpty())
}

func TestCompute_ApplyReproducesSequence(t *testing.T) {
	// insert A, insert B, delete A, update B
	states := [][]item{
		{},
		{{ID: "a", Title: "A"}},
		{{ID: "a", Title: "A"}, {ID: "b", Title: "B"}},
		{{ID: "b", Title: "B"}},
		{{ID: "b", Title: "B2"}},
	}

	view := InsertAll(states[0])
	current, err := view.Apply(nil)
	require.NoError(t, err)

	for i := 1; i < len(states); i++ {
		d := Compute(states[i-1], states[i], itemKey, nil)
		current, err = d.Apply(current)
		require.NoError(t, err)
		assert.Equal(t, normalize(states[i]), normalize(current), "step %d", i)
	}
}

func TestCompute_RandomEdits(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 11))

	state := []item{}
	for step := range 200 {
		next := mutate(rng, state, step)

		d := Compute(state, next, itemKey, nil)
		got, err := d.Apply(state)
		require.NoError(t, err)
		require.Equal(t, normalize(next), normalize(got), "step %d", step)

		state = next
	}
}

func TestDiff_ApplyOutOfRange(t *testing.T) {
	d := Diff[item]{Removals: []Change[item]{{Kind: Remove, Offset: 3, AssociatedWith: -1}}}

	_, err := d.Apply([]item{{ID: "a"}})
	assert.ErrorIs(t, err, ErrDiffOutOfRange)

	d = Diff[item]{Insertions: []Change[item]{{Kind: Insert, Offset: 5, AssociatedWith: -1}}}
	_, err = d.Apply(nil)
	assert.ErrorIs(t, err, ErrDiffOutOfRange)
}

func TestInsertAll(t *testing.T) {
	d := InsertAll([]item{{ID: "a"}, {ID: "b"}})

	assert.Empty(t, d.Removals)
	assert.Equal(t, []int{0, 1}, offsets(d.Insertions))
	for _, ins := range d.Insertions {
		assert.Equal(t, -1, ins.AssociatedWith)
	}
	assert.True(t, InsertAll[item](nil).IsEmpty())
}

func TestChangeKind_String(t *testing.T) {
	assert.Equal(t, "insert", Insert.String())
	assert.Equal(t, "remove", Remove.String())
}

func mutate(rng *rand.Rand, state []item, step int) []item {
	next := make([]item, 0, len(state)+2)
	for _, it := range state {
		switch rng.IntN(6) {
		case 0:
			// dropped
		case 1:
			next = append(next, item{ID: it.ID, Title: fmt.Sprintf("%s@%d", it.ID, step)})
		default:
			next = append(next, it)
		}
	}
	for range rng.IntN(3) {
		id := fmt.Sprintf("n%d-%d", step, rng.IntN(1000))
		pos := rng.IntN(len(next) + 1)
		next = append(next[:pos], append([]item{{ID: id, Title: id}}, next[pos:]...)...)
	}
	return next
}

func offsets(changes []Change[item]) []int {
	if len(changes) == 0 {
		return nil
	}
	out := make([]int, len(changes))
	for i, c := range changes {
		out[i] = c.Offset
	}
	return out
}

func normalize(items []item) []item {
	if len(items) == 0 {
		return []item{}
	}
	return items
}
