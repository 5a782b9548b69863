package sim

import "github.com/vovakirdan/kabuto/internal/core"

// gravityUnit is the downward unit vector.
var gravityUnit = core.V(0, -9.8).Normalize()

// ApplyGravity ages every adversary and pulls it down harder the longer it
// has lived. The pull is applied as an impulse on top of Integrate: the
// adversary's vertical position advances a second time this tick.
func ApplyGravity(ctx *Context) {
	g := gravityUnit.Scale(ctx.Config.Enemy.GravityScale)
	q := ctx.World.Query().
		With(ctx.Adversaries).
		With(ctx.Lifetimes).
		With(ctx.Velocities).
		With(ctx.Transforms)

	for _, e := range q.Execute() {
		life, _ := ctx.Lifetimes.Get(e)
		vel, _ := ctx.Velocities.Get(e)
		tr, _ := ctx.Transforms.Get(e)

		life.Seconds += ctx.Dt
		vel.Y += g.Y * life.Seconds
		tr.Position.Y += vel.Y * ctx.Dt
	}
}
