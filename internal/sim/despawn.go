package sim

// DespawnStrays destroys projectiles that have left the play field entirely.
// It does nothing unless shot.despawn_offscreen is enabled; by default
// projectiles live forever.
func DespawnStrays(ctx *Context) {
	if !ctx.Config.Shot.DespawnOffscreen {
		return
	}
	bounds := WorldBounds(ctx.Config)
	for _, e := range ctx.World.Query().With(ctx.Projectiles).With(ctx.Transforms).Execute() {
		tr, _ := ctx.Transforms.Value(e)
		if !bounds.Overlaps(tr.Box()) {
			ctx.World.Destroy(e)
		}
	}
}

// EndTick removes entities destroyed during the tick and clears the events.
func EndTick(ctx *Context) {
	ctx.World.Flush()
	ctx.Events.Reset()
}
