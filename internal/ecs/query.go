package ecs

// Filter is the part of a Store a query needs; every *Store[T] satisfies it.
type Filter interface {
	Has(e Entity) bool
	All() []Entity
	Count() int
}

// QueryBuilder finds live entities carrying every requested component.
type QueryBuilder struct {
	world   *World
	with    []Filter
	without []Filter
}

// Query starts a new query over w.
//
// Example:
//
//	for _, e := range w.Query().With(transforms).With(velocities).Execute() {
//	    ...
//	}
func (w *World) Query() *QueryBuilder {
	return &QueryBuilder{
		world: w,
		with:  make([]Filter, 0, 4),
	}
}

// With requires the component held by store f.
func (qb *QueryBuilder) With(f Filter) *QueryBuilder {
	qb.with = append(qb.with, f)
	return qb
}

// Without excludes entities carrying the component held by store f.
func (qb *QueryBuilder) Without(f Filter) *QueryBuilder {
	qb.without = append(qb.without, f)
	return qb
}

// Execute returns a snapshot of the matching live entities.
//
// Candidates come from the smallest required store, in its insertion order,
// so results are deterministic. The snapshot is not affected by later
// Destroy or Attach calls; callers that destroy while iterating should check
// World.Alive for entities they have not visited yet.
func (qb *QueryBuilder) Execute() []Entity {
	if len(qb.with) == 0 {
		return []Entity{}
	}

	smallest := 0
	for i, f := range qb.with {
		if f.Count() < qb.with[smallest].Count() {
			smallest = i
		}
	}

	candidates := qb.with[smallest].All()
	result := candidates[:0]
	for _, e := range candidates {
		if qb.matches(e, smallest) {
			result = append(result, e)
		}
	}
	return result
}

// Count returns the number of matching live entities.
func (qb *QueryBuilder) Count() int {
	return len(qb.Execute())
}

func (qb *QueryBuilder) matches(e Entity, skip int) bool {
	if !qb.world.Alive(e) {
		return false
	}
	for i, f := range qb.with {
		if i != skip && !f.Has(e) {
			return false
		}
	}
	for _, f := range qb.without {
		if f.Has(e) {
			return false
		}
	}
	return true
}
