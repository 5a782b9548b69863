package sim

// PlayReactions turns this tick's events into at most one sound per kind.
func PlayReactions(ctx *Context) {
	if ctx.Events.Drain(EventCollision) > 0 {
		ctx.Audio.PlayHit()
	}
	if ctx.Events.Drain(EventShot) > 0 {
		ctx.Audio.PlayShot()
	}
}
