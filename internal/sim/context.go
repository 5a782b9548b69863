package sim

import (
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/kabuto/internal/config"
	"github.com/vovakirdan/kabuto/internal/core"
	"github.com/vovakirdan/kabuto/internal/ecs"
)

// AudioSink receives fire-and-forget sound triggers.
// Each method is called at most once per tick.
type AudioSink interface {
	PlayHit()
	PlayShot()
}

type silentAudio struct{}

func (silentAudio) PlayHit()  {}
func (silentAudio) PlayShot() {}

// Context is the shared state every system receives.
// It replaces process-wide globals: the world, the score, the event queues,
// the audio handles and the timestep all hang off one value.
type Context struct {
	World *ecs.World

	Transforms  *ecs.Store[Transform]
	Velocities  *ecs.Store[Velocity]
	Lifetimes   *ecs.Store[Lifetime]
	Sprites     *ecs.Store[Sprite]
	Actors      *ecs.Store[Actor]
	Projectiles *ecs.Store[Projectile]
	Adversaries *ecs.Store[Adversary]
	Targets     *ecs.Store[ProjectileTarget]
	Walls       *ecs.Store[BoundaryWall]
	Bouncers    *ecs.Store[BoundCollider]

	Score  *ScoreTracker
	Events *EventBus
	Audio  AudioSink
	Pairer Pairer
	Log    *log.Logger
	Config config.KabutoConfig

	Input core.InputFrame // Input for the tick being run
	Dt    float64         // Fixed timestep in seconds
	Tick  uint64          // Number of completed ticks
}

// NewContext wires an empty world for cfg. Nil audio, pairer or logger are
// replaced by silent, brute-force and discarding implementations.
func NewContext(cfg config.KabutoConfig, audio AudioSink, pairer Pairer, logger *log.Logger) *Context {
	if audio == nil {
		audio = silentAudio{}
	}
	if pairer == nil {
		pairer = BruteForce{}
	}
	if logger == nil {
		logger = discardLogger()
	}

	w := ecs.NewWorld()
	return &Context{
		World:       w,
		Transforms:  ecs.StoreOf[Transform](w),
		Velocities:  ecs.StoreOf[Velocity](w),
		Lifetimes:   ecs.StoreOf[Lifetime](w),
		Sprites:     ecs.StoreOf[Sprite](w),
		Actors:      ecs.StoreOf[Actor](w),
		Projectiles: ecs.StoreOf[Projectile](w),
		Adversaries: ecs.StoreOf[Adversary](w),
		Targets:     ecs.StoreOf[ProjectileTarget](w),
		Walls:       ecs.StoreOf[BoundaryWall](w),
		Bouncers:    ecs.StoreOf[BoundCollider](w),
		Score:       &ScoreTracker{},
		Events:      &EventBus{},
		Audio:       audio,
		Pairer:      pairer,
		Log:         logger,
		Config:      cfg,
		Input:       core.NewInputFrame(),
		Dt:          cfg.TimeStep(),
	}
}

// ActorEntity returns the single actor.
// It panics if the world holds zero or several actors: nothing removes or
// duplicates the actor, so that state is a programming error.
func (c *Context) ActorEntity() ecs.Entity {
	actors := c.World.Query().With(c.Actors).Execute()
	if len(actors) != 1 {
		panic(fmt.Sprintf("sim: expected exactly one actor, found %d", len(actors)))
	}
	return actors[0]
}
