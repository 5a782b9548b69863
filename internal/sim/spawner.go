package sim

import (
	"github.com/vovakirdan/kabuto/internal/core"
	"github.com/vovakirdan/kabuto/internal/ecs"
)

// SpawnAdversary creates one adversary at the configured edge position,
// moving right with zero lifetime.
func SpawnAdversary(ctx *Context) {
	cfg := ctx.Config.Enemy
	e := ctx.World.Create()
	ecs.Attach(ctx.World, e, Transform{
		Position: core.V(cfg.SpawnX, cfg.SpawnY),
		Size:     core.V(cfg.Width, cfg.Height),
	})
	ecs.Attach(ctx.World, e, Velocity{core.V(cfg.Speed, 0)})
	ecs.Attach(ctx.World, e, Lifetime{})
	ecs.Attach(ctx.World, e, Sprite{Color: core.ColorAdversary})
	ecs.Attach(ctx.World, e, Adversary{})
	ecs.Attach(ctx.World, e, ProjectileTarget{})
	ecs.Attach(ctx.World, e, BoundCollider{})

	ctx.Log.Debug("adversary spawned", "entity", e, "tick", ctx.Tick, "color", core.ColorAdversary)
}
