// Package sim implements the kabuto simulation: a fixed-timestep entity loop
// where a single actor shoots adversaries that drift, fall, and bounce off the
// walls of the play field.
//
// All state lives in an ecs.World and a Context passed to every system. The
// package has no knowledge of terminals, sound devices, or wall-clock time
// beyond the elapsed durations handed to Simulation.Advance.
package sim

import "github.com/vovakirdan/kabuto/internal/core"

// Transform is an entity's bounding box in world coordinates.
// Position is the box center; Size is the full width and height.
type Transform struct {
	Position core.Vec2
	Size     core.Vec2
}

// Box returns the transform as an AABB.
func (t Transform) Box() core.Box {
	return core.NewBox(t.Position, t.Size)
}

// Velocity is a per-second displacement.
type Velocity struct {
	core.Vec2
}

// Lifetime is the number of seconds an adversary has existed.
type Lifetime struct {
	Seconds float64
}

// Sprite is the flat color an entity is drawn with.
type Sprite struct {
	Color core.Color
}

// Role tags. They carry no data; presence in a store is the capability.
type (
	Actor            struct{} // The player-controlled entity; exactly one exists
	Projectile       struct{} // Fired by the actor
	Adversary        struct{} // Spawned periodically, carries Lifetime
	ProjectileTarget struct{} // May be struck by projectiles
	BoundaryWall     struct{} // One of the four static edges
	BoundCollider    struct{} // Bounces off boundary walls
)
