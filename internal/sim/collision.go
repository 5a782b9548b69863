package sim

import (
	"iter"

	"github.com/vovakirdan/kabuto/internal/core"
	"github.com/vovakirdan/kabuto/internal/ecs"
)

// Pairer yields the candidate pairs a collision policy tests.
// Implementations may prune pairs that cannot overlap, but must never yield an
// entity paired with itself.
type Pairer interface {
	Pairs(as, bs []ecs.Entity) iter.Seq2[ecs.Entity, ecs.Entity]
}

// BruteForce pairs every entity of as with every entity of bs.
type BruteForce struct{}

// Pairs implements Pairer.
func (BruteForce) Pairs(as, bs []ecs.Entity) iter.Seq2[ecs.Entity, ecs.Entity] {
	return func(yield func(a, b ecs.Entity) bool) {
		for _, a := range as {
			for _, b := range bs {
				if a == b {
					continue
				}
				if !yield(a, b) {
					return
				}
			}
		}
	}
}

// BounceOffWalls reflects bouncing entities that overlap a boundary wall.
// A velocity component is negated only while it still points into the wall,
// so an entity that stays overlapped for several ticks is reflected once.
func BounceOffWalls(ctx *Context) {
	movers := ctx.World.Query().With(ctx.Bouncers).With(ctx.Velocities).With(ctx.Transforms).Execute()
	walls := ctx.World.Query().With(ctx.Walls).With(ctx.Transforms).Execute()

	for m, w := range ctx.Pairer.Pairs(movers, walls) {
		mover, _ := ctx.Transforms.Value(m)
		wall, _ := ctx.Transforms.Value(w)
		side, hit := core.Collide(mover.Box(), wall.Box())
		if !hit {
			continue
		}
		vel, _ := ctx.Velocities.Get(m)
		bounce(&vel.Vec2, side)
	}
}

func bounce(v *core.Vec2, side core.Side) {
	switch side {
	case core.SideLeft:
		if v.X > 0 {
			v.X = -v.X
		}
	case core.SideRight:
		if v.X < 0 {
			v.X = -v.X
		}
	case core.SideTop:
		if v.Y < 0 {
			v.Y = -v.Y
		}
	case core.SideBottom:
		if v.Y > 0 {
			v.Y = -v.Y
		}
	}
}

// StrikeTargets resolves projectile hits. A projectile overlapping a target
// that is also an adversary destroys it, scores, and raises EventCollision.
// The contact side is not inspected. Each adversary scores at most once, even
// when several projectiles reach it in the same tick.
func StrikeTargets(ctx *Context) {
	shots := ctx.World.Query().With(ctx.Projectiles).With(ctx.Transforms).Execute()
	targets := ctx.World.Query().With(ctx.Targets).With(ctx.Transforms).Execute()
	points := ctx.Config.Scoring.PointsPerHit

	for s, t := range ctx.Pairer.Pairs(shots, targets) {
		if !ctx.World.Alive(t) || !ctx.Adversaries.Has(t) {
			continue
		}
		shot, _ := ctx.Transforms.Value(s)
		target, _ := ctx.Transforms.Value(t)
		if _, hit := core.Collide(shot.Box(), target.Box()); !hit {
			continue
		}

		ctx.Events.Emit(EventCollision)
		ctx.World.Destroy(t)
		ctx.Score.Add(points)
		ctx.Log.Debug("adversary destroyed", "entity", t, "by", s, "score", ctx.Score.Value(), "tick", ctx.Tick)
	}
}
