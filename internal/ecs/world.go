// Package ecs provides a small entity-component store for single-threaded
// simulations.
//
// Entities are stable identifiers that are never reused within a World.
// Components live in one Store per Go type, registered lazily through the
// generic helpers (Attach, Detach, StoreOf). Destruction is deferred: Destroy
// marks an entity dead immediately and Flush drops its components at the end
// of the tick, so in-flight query snapshots stay valid.
package ecs

import (
	"fmt"
	"reflect"
)

// Entity is an opaque entity identifier. The zero value is never issued.
type Entity uint64

// String formats the entity as "#id".
func (e Entity) String() string {
	return fmt.Sprintf("#%d", uint64(e))
}

// anyStore is the type-erased view of a Store used for bulk removal.
type anyStore interface {
	Has(e Entity) bool
	Remove(e Entity)
	Count() int
	Clear()
}

// World owns entity lifetime and every component store.
type World struct {
	next    Entity
	alive   map[Entity]struct{}
	pending []Entity
	stores  map[reflect.Type]anyStore
	order   []reflect.Type
}

// NewWorld creates an empty world.
func NewWorld() *World {
	return &World{
		next:   1,
		alive:  make(map[Entity]struct{}),
		stores: make(map[reflect.Type]anyStore),
	}
}

// Create reserves a new live entity.
func (w *World) Create() Entity {
	e := w.next
	w.next++
	w.alive[e] = struct{}{}
	return e
}

// Alive reports whether e exists and has not been destroyed.
func (w *World) Alive(e Entity) bool {
	_, ok := w.alive[e]
	return ok
}

// Len returns the number of live entities.
func (w *World) Len() int {
	return len(w.alive)
}

// Destroy marks e dead. Its components are removed at the next Flush.
// Destroying a dead or unknown entity is a no-op.
func (w *World) Destroy(e Entity) {
	if !w.Alive(e) {
		return
	}
	delete(w.alive, e)
	w.pending = append(w.pending, e)
}

// PendingDestroy returns the number of entities awaiting Flush.
func (w *World) PendingDestroy() int {
	return len(w.pending)
}

// Flush removes the components of every entity destroyed since the last Flush.
// Returns the number of entities removed.
func (w *World) Flush() int {
	n := len(w.pending)
	if n == 0 {
		return 0
	}
	for _, t := range w.order {
		s := w.stores[t]
		if s.Count() == 0 {
			continue
		}
		for _, e := range w.pending {
			s.Remove(e)
		}
	}
	w.pending = w.pending[:0]
	return n
}

// Clear removes every entity and component. Entity ids keep increasing.
func (w *World) Clear() {
	w.alive = make(map[Entity]struct{})
	w.pending = w.pending[:0]
	for _, t := range w.order {
		w.stores[t].Clear()
	}
}

// StoreOf returns the store for component type T, registering it on first use.
func StoreOf[T any](w *World) *Store[T] {
	t := reflect.TypeFor[T]()
	if s, ok := w.stores[t]; ok {
		return s.(*Store[T])
	}
	s := NewStore[T]()
	w.stores[t] = s
	w.order = append(w.order, t)
	return s
}

// Attach sets component c on e. Attaching to a dead entity is ignored.
func Attach[T any](w *World, e Entity, c T) {
	if !w.Alive(e) {
		return
	}
	StoreOf[T](w).Set(e, c)
}

// Detach removes the component of type T from e.
func Detach[T any](w *World, e Entity) {
	StoreOf[T](w).Remove(e)
}

// Get returns a mutable view of e's component of type T.
// Dead entities report no component even before Flush.
func Get[T any](w *World, e Entity) (*T, bool) {
	if !w.Alive(e) {
		return nil, false
	}
	return StoreOf[T](w).Get(e)
}

// Has reports whether the live entity e carries a component of type T.
func Has[T any](w *World, e Entity) bool {
	return w.Alive(e) && StoreOf[T](w).Has(e)
}
