package sim

import (
	"github.com/vovakirdan/kabuto/internal/config"
	"github.com/vovakirdan/kabuto/internal/core"
	"github.com/vovakirdan/kabuto/internal/ecs"
)

// Bounds is the visible play field in world coordinates.
type Bounds struct {
	Left, Right, Bottom, Top float64
}

// WorldBounds returns the play field edges for cfg. The origin is the center.
func WorldBounds(cfg config.KabutoConfig) Bounds {
	hw, hh := cfg.World.Width/2, cfg.World.Height/2
	return Bounds{Left: -hw, Right: hw, Bottom: -hh, Top: hh}
}

// Overlaps reports whether box intersects the play field at all.
func (b Bounds) Overlaps(box core.Box) bool {
	lo, hi := box.Min(), box.Max()
	return hi.X >= b.Left && lo.X <= b.Right && hi.Y >= b.Bottom && lo.Y <= b.Top
}

// ActorRange returns the horizontal interval the actor center may occupy.
func ActorRange(cfg config.KabutoConfig) (lo, hi float64) {
	b := WorldBounds(cfg)
	inset := cfg.World.WallThickness/2 + cfg.Actor.Width/2 + cfg.Actor.Padding
	return b.Left + inset, b.Right - inset
}

// ActorHome returns the actor's starting position, resting above the bottom wall.
func ActorHome(cfg config.KabutoConfig) core.Vec2 {
	b := WorldBounds(cfg)
	y := b.Bottom + cfg.World.WallThickness/2 + cfg.Actor.Height/2 + cfg.Actor.Padding
	return core.V(0, y)
}

// SpawnWalls creates the four static boundary walls.
func SpawnWalls(ctx *Context) []ecs.Entity {
	cfg := ctx.Config
	b := WorldBounds(cfg)
	t := cfg.World.WallThickness
	w, h := cfg.World.Width, cfg.World.Height

	walls := []Transform{
		{Position: core.V(b.Left, 0), Size: core.V(t, h+t)},
		{Position: core.V(b.Right, 0), Size: core.V(t, h+t)},
		{Position: core.V(0, b.Bottom), Size: core.V(w+t, t)},
		{Position: core.V(0, b.Top), Size: core.V(w+t, t)},
	}

	ids := make([]ecs.Entity, 0, len(walls))
	for _, tr := range walls {
		e := ctx.World.Create()
		ecs.Attach(ctx.World, e, tr)
		ecs.Attach(ctx.World, e, Sprite{Color: core.ColorWall})
		ecs.Attach(ctx.World, e, BoundaryWall{})
		ids = append(ids, e)
	}
	return ids
}

// SpawnActor creates the player-controlled actor at its home position.
func SpawnActor(ctx *Context) ecs.Entity {
	cfg := ctx.Config
	e := ctx.World.Create()
	ecs.Attach(ctx.World, e, Transform{
		Position: ActorHome(cfg),
		Size:     core.V(cfg.Actor.Width, cfg.Actor.Height),
	})
	ecs.Attach(ctx.World, e, Sprite{Color: core.ColorActor})
	ecs.Attach(ctx.World, e, Actor{})
	return e
}
