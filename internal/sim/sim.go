package sim

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/kabuto/internal/config"
	"github.com/vovakirdan/kabuto/internal/core"
	"github.com/vovakirdan/kabuto/internal/ecs"
)

// Options configures a Simulation. Zero fields select defaults.
type Options struct {
	Config config.KabutoConfig
	Audio  AudioSink
	Pairer Pairer
	Logger *log.Logger
}

// Simulation is one running kabuto world with its scheduler.
// It is not safe for concurrent use.
type Simulation struct {
	ctx     *Context
	sched   *Scheduler
	pending core.InputFrame
}

// Kind is the primary role of a drawable entity.
type Kind int

const (
	KindOther Kind = iota
	KindWall
	KindActor
	KindProjectile
	KindAdversary
)

// SpriteView is what the renderer needs to draw one entity.
type SpriteView struct {
	Entity   ecs.Entity
	Kind     Kind
	Position core.Vec2
	Size     core.Vec2
	Color    core.Color
}

// Counts holds the number of live entities per role.
type Counts struct {
	Actors      int
	Projectiles int
	Adversaries int
	Walls       int
}

// New creates a simulation with the walls and the actor in place.
// A zero Options.Config selects config.Default().
func New(opts Options) *Simulation {
	cfg := opts.Config
	if cfg == (config.KabutoConfig{}) {
		cfg = config.Default()
	}

	ctx := NewContext(cfg, opts.Audio, opts.Pairer, opts.Logger)
	SpawnWalls(ctx)
	SpawnActor(ctx)

	sched := NewScheduler(cfg.World.TickRate, cfg.World.MaxCatchUp)
	sched.Every("spawn", cfg.Enemy.SpawnEvery, SpawnAdversary)
	sched.Add("move", MoveActor)
	sched.Add("fire", FireShot)
	sched.Add("integrate", Integrate)
	sched.Add("gravity", ApplyGravity)
	sched.Add("bounce", BounceOffWalls)
	sched.Add("strike", StrikeTargets)
	sched.Add("reactions", PlayReactions)
	sched.Add("despawn", DespawnStrays)
	sched.Add("end", EndTick)

	return &Simulation{
		ctx:     ctx,
		sched:   sched,
		pending: core.NewInputFrame(),
	}
}

// Step runs exactly one tick with the given input.
func (s *Simulation) Step(in core.InputFrame) {
	s.ctx.Input = in
	s.sched.RunTick(s.ctx)
	s.ctx.Input = core.NewInputFrame()
}

// Advance feeds elapsed wall-clock time and runs every owed tick.
// Held actions follow the latest input; releases are consumed by the first tick
// that runs, and are kept for later if no tick is owed yet.
// Returns the number of ticks run.
func (s *Simulation) Advance(in core.InputFrame, elapsed time.Duration) int {
	s.pending.Merge(in)

	before := s.sched.Dropped()
	n := s.sched.Advance(elapsed)
	if dropped := s.sched.Dropped() - before; dropped > 0 {
		s.ctx.Log.Debug("dropped ticks behind schedule", "dropped", dropped, "ran", n)
	}

	for range n {
		s.ctx.Input = s.pending
		s.sched.RunTick(s.ctx)
		s.pending.ClearReleased()
	}
	s.ctx.Input = core.NewInputFrame()
	return n
}

// Score returns the current score.
func (s *Simulation) Score() int {
	return s.ctx.Score.Value()
}

// Tick returns the number of completed ticks.
func (s *Simulation) Tick() uint64 {
	return s.ctx.Tick
}

// Config returns the configuration the simulation runs with.
func (s *Simulation) Config() config.KabutoConfig {
	return s.ctx.Config
}

// Stages returns the system names in tick order.
func (s *Simulation) Stages() []string {
	return s.sched.Stages()
}

// Counts returns the live entity count per role.
func (s *Simulation) Counts() Counts {
	q := func(f ecs.Filter) int { return s.ctx.World.Query().With(f).Count() }
	return Counts{
		Actors:      q(s.ctx.Actors),
		Projectiles: q(s.ctx.Projectiles),
		Adversaries: q(s.ctx.Adversaries),
		Walls:       q(s.ctx.Walls),
	}
}

// Sprites returns every drawable live entity in storage order.
func (s *Simulation) Sprites() []SpriteView {
	ctx := s.ctx
	entities := ctx.World.Query().With(ctx.Sprites).With(ctx.Transforms).Execute()
	views := make([]SpriteView, 0, len(entities))
	for _, e := range entities {
		tr, _ := ctx.Transforms.Value(e)
		sp, _ := ctx.Sprites.Value(e)
		views = append(views, SpriteView{
			Entity:   e,
			Kind:     s.kindOf(e),
			Position: tr.Position,
			Size:     tr.Size,
			Color:    sp.Color,
		})
	}
	return views
}

func (s *Simulation) kindOf(e ecs.Entity) Kind {
	switch {
	case s.ctx.Walls.Has(e):
		return KindWall
	case s.ctx.Actors.Has(e):
		return KindActor
	case s.ctx.Projectiles.Has(e):
		return KindProjectile
	case s.ctx.Adversaries.Has(e):
		return KindAdversary
	default:
		return KindOther
	}
}

func discardLogger() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{Level: log.FatalLevel})
}
