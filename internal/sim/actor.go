package sim

import (
	"github.com/vovakirdan/kabuto/internal/core"
	"github.com/vovakirdan/kabuto/internal/ecs"
)

// MoveActor moves the actor along x by the held direction keys and clamps it
// between the side walls.
func MoveActor(ctx *Context) {
	e := ctx.ActorEntity()
	tr, ok := ctx.Transforms.Get(e)
	if !ok {
		return
	}

	dir := 0.0
	if ctx.Input.IsHeld(core.ActionLeft) {
		dir--
	}
	if ctx.Input.IsHeld(core.ActionRight) {
		dir++
	}

	lo, hi := ActorRange(ctx.Config)
	x := tr.Position.X + dir*ctx.Config.Actor.Speed*ctx.Dt
	tr.Position.X = core.ClampF(x, lo, hi)
}

// FireShot spawns one projectile above the actor when fire was released.
func FireShot(ctx *Context) {
	if !ctx.Input.JustReleased(core.ActionFire) {
		return
	}
	actor, _ := ctx.Transforms.Value(ctx.ActorEntity())
	cfg := ctx.Config.Shot

	e := ctx.World.Create()
	ecs.Attach(ctx.World, e, Transform{
		Position: actor.Position.Add(core.V(0, actor.Size.Y)),
		Size:     core.V(cfg.Width, cfg.Height),
	})
	ecs.Attach(ctx.World, e, Velocity{core.V(0, cfg.Speed)})
	ecs.Attach(ctx.World, e, Sprite{Color: core.ColorProjectile})
	ecs.Attach(ctx.World, e, Projectile{})

	ctx.Events.Emit(EventShot)
}
