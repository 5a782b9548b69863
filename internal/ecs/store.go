package ecs

// Store is a sparse container for one component type T.
// Components are heap-allocated so pointers returned by Get stay valid while
// other entities are attached or detached. Iteration follows insertion order.
type Store[T any] struct {
	components map[Entity]*T
	entities   []Entity
}

// NewStore creates an empty store for type T.
func NewStore[T any]() *Store[T] {
	return &Store[T]{
		components: make(map[Entity]*T),
		entities:   make([]Entity, 0, 16),
	}
}

// Set inserts or replaces the component of e.
func (s *Store[T]) Set(e Entity, val T) {
	if c, exists := s.components[e]; exists {
		*c = val
		return
	}
	v := val
	s.components[e] = &v
	s.entities = append(s.entities, e)
}

// Get returns a mutable view of the component of e.
func (s *Store[T]) Get(e Entity) (*T, bool) {
	c, ok := s.components[e]
	return c, ok
}

// Value returns a read-only copy of the component of e.
func (s *Store[T]) Value(e Entity) (T, bool) {
	c, ok := s.components[e]
	if !ok {
		var zero T
		return zero, false
	}
	return *c, true
}

// Has reports whether e carries this component.
func (s *Store[T]) Has(e Entity) bool {
	_, ok := s.components[e]
	return ok
}

// Remove deletes the component of e, keeping the order of the others.
func (s *Store[T]) Remove(e Entity) {
	if _, exists := s.components[e]; !exists {
		return
	}
	delete(s.components, e)
	for i, entity := range s.entities {
		if entity == e {
			s.entities = append(s.entities[:i], s.entities[i+1:]...)
			break
		}
	}
}

// All returns a snapshot of the entities carrying this component.
func (s *Store[T]) All() []Entity {
	result := make([]Entity, len(s.entities))
	copy(result, s.entities)
	return result
}

// Count returns the number of entities carrying this component.
func (s *Store[T]) Count() int {
	return len(s.entities)
}

// Clear removes all components from this store.
func (s *Store[T]) Clear() {
	s.components = make(map[Entity]*T)
	s.entities = s.entities[:0]
}
