package ecs

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQueryIntersection(t *testing.T) {
	w := NewWorld()
	positions := StoreOf[position](w)
	velocities := StoreOf[velocity](w)

	moving := w.Create()
	Attach(w, moving, position{})
	Attach(w, moving, velocity{})

	static := w.Create()
	Attach(w, static, position{})

	got := w.Query().With(positions).With(velocities).Execute()
	assert.Equal(t, []Entity{moving}, got)

	assert.Equal(t, 2, w.Query().With(positions).Count())
}

func TestQueryWithout(t *testing.T) {
	w := NewWorld()
	positions := StoreOf[position](w)
	tags := StoreOf[tag](w)

	a := w.Create()
	Attach(w, a, position{})
	b := w.Create()
	Attach(w, b, position{})
	Attach(w, b, tag{})

	assert.Equal(t, []Entity{a}, w.Query().With(positions).Without(tags).Execute())
}

func TestQueryEmpty(t *testing.T) {
	w := NewWorld()
	assert.Empty(t, w.Query().Execute())
}

func TestQuerySkipsDestroyed(t *testing.T) {
	w := NewWorld()
	positions := StoreOf[position](w)

	a := w.Create()
	Attach(w, a, position{})
	b := w.Create()
	Attach(w, b, position{})

	w.Destroy(a)
	assert.Equal(t, []Entity{b}, w.Query().With(positions).Execute())
}

func TestQuerySnapshotSurvivesDestroyMidIteration(t *testing.T) {
	w := NewWorld()
	positions := StoreOf[position](w)

	var all []Entity
	for range 4 {
		e := w.Create()
		Attach(w, e, position{})
		all = append(all, e)
	}

	visited := 0
	for _, e := range w.Query().With(positions).Execute() {
		visited++
		// Destroy an entity the loop has not reached yet.
		if e == all[0] {
			w.Destroy(all[3])
		}
	}

	assert.Equal(t, 4, visited, "snapshot must not shrink while iterating")
	assert.Equal(t, 3, w.Query().With(positions).Count())
}

func TestQueryResultIsDeterministic(t *testing.T) {
	w := NewWorld()
	positions := StoreOf[position](w)
	var want []Entity
	for range 32 {
		e := w.Create()
		Attach(w, e, position{})
		want = append(want, e)
	}

	for range 5 {
		assert.Equal(t, want, w.Query().With(positions).Execute())
	}
}
