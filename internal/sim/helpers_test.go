package sim

import (
	"github.com/vovakirdan/kabuto/internal/config"
	"github.com/vovakirdan/kabuto/internal/core"
	"github.com/vovakirdan/kabuto/internal/ecs"
)

type recordingAudio struct {
	hits  int
	shots int
}

func (r *recordingAudio) PlayHit()  { r.hits++ }
func (r *recordingAudio) PlayShot() { r.shots++ }

func testConfig() config.KabutoConfig {
	return config.DefaultKabutoConfig()
}

// quietConfig never spawns adversaries on its own after the first tick.
func quietConfig() config.KabutoConfig {
	cfg := testConfig()
	cfg.Enemy.SpawnEvery = 1 << 20
	return cfg
}

func spawnBox(ctx *Context, tr Transform, comps ...any) ecs.Entity {
	e := ctx.World.Create()
	ecs.Attach(ctx.World, e, tr)
	for _, c := range comps {
		switch c := c.(type) {
		case Velocity:
			ecs.Attach(ctx.World, e, c)
		case Lifetime:
			ecs.Attach(ctx.World, e, c)
		case Projectile:
			ecs.Attach(ctx.World, e, c)
		case Adversary:
			ecs.Attach(ctx.World, e, c)
		case ProjectileTarget:
			ecs.Attach(ctx.World, e, c)
		case BoundCollider:
			ecs.Attach(ctx.World, e, c)
		case Actor:
			ecs.Attach(ctx.World, e, c)
		}
	}
	return e
}

func box(x, y, w, h float64) Transform {
	return Transform{Position: core.V(x, y), Size: core.V(w, h)}
}

func pressed(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Hold(a)
	}
	return in
}

func released(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Release(a)
	}
	return in
}

func onlyAdversary(t interface{ Fatalf(string, ...any) }, ctx *Context) ecs.Entity {
	all := ctx.World.Query().With(ctx.Adversaries).Execute()
	if len(all) != 1 {
		t.Fatalf("expected one adversary, found %d", len(all))
	}
	return all[0]
}
