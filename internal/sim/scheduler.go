package sim

import "time"

// System is one step of the tick pipeline.
type System func(ctx *Context)

// Gate is a periodic trigger counted in primary ticks.
// It fires on the first tick it sees and then once every Every ticks.
type Gate struct {
	Every uint64
	seen  uint64
}

// Fire advances the gate by one tick and reports whether it fires on it.
func (g *Gate) Fire() bool {
	every := g.Every
	if every == 0 {
		every = 1
	}
	fire := g.seen%every == 0
	g.seen++
	return fire
}

type stage struct {
	name string
	gate Gate
	run  System
}

// Scheduler owns simulation time: it converts wall-clock durations into
// fixed ticks and runs its systems in registration order on every tick.
type Scheduler struct {
	rate       time.Duration // Ticks per second
	maxCatchUp int
	acc        time.Duration // Elapsed time multiplied by rate
	stages     []stage
	dropped    uint64
}

// NewScheduler creates a scheduler for tickRate ticks per second running at
// most maxCatchUp ticks per Advance call.
func NewScheduler(tickRate, maxCatchUp int) *Scheduler {
	if tickRate <= 0 {
		tickRate = 60
	}
	if maxCatchUp <= 0 {
		maxCatchUp = 1
	}
	return &Scheduler{
		rate:       time.Duration(tickRate),
		maxCatchUp: maxCatchUp,
	}
}

// Add appends a system that runs every tick.
func (s *Scheduler) Add(name string, sys System) {
	s.Every(name, 1, sys)
}

// Every appends a system that runs on the first tick and then once every
// period ticks.
func (s *Scheduler) Every(name string, period int, sys System) {
	if period <= 0 {
		period = 1
	}
	s.stages = append(s.stages, stage{
		name: name,
		gate: Gate{Every: uint64(period)},
		run:  sys,
	})
}

// Stages returns the system names in execution order.
func (s *Scheduler) Stages() []string {
	names := make([]string, len(s.stages))
	for i, st := range s.stages {
		names[i] = st.name
	}
	return names
}

// Advance adds elapsed wall-clock time and returns how many ticks are owed.
// The remainder smaller than one tick is kept for the next call. Ticks beyond
// the catch-up limit are dropped; see Dropped.
func (s *Scheduler) Advance(elapsed time.Duration) int {
	if elapsed <= 0 {
		return 0
	}
	// Scaling by the rate keeps the accumulator exact: one tick is exactly
	// one second of scaled time.
	s.acc += elapsed * s.rate
	owed := s.acc / time.Second
	s.acc -= owed * time.Second

	if int(owed) > s.maxCatchUp {
		s.dropped += uint64(int(owed) - s.maxCatchUp)
		return s.maxCatchUp
	}
	return int(owed)
}

// Dropped returns the total number of ticks discarded by the catch-up limit.
func (s *Scheduler) Dropped() uint64 {
	return s.dropped
}

// RunTick runs every due system once, in order, and counts the tick.
func (s *Scheduler) RunTick(ctx *Context) {
	for i := range s.stages {
		st := &s.stages[i]
		if st.gate.Fire() {
			st.run(ctx)
		}
	}
	ctx.Tick++
}
