package sim

// Integrate advances every moving entity by velocity * dt.
func Integrate(ctx *Context) {
	for _, e := range ctx.World.Query().With(ctx.Velocities).With(ctx.Transforms).Execute() {
		tr, _ := ctx.Transforms.Get(e)
		v, _ := ctx.Velocities.Value(e)
		tr.Position = tr.Position.Add(v.Scale(ctx.Dt))
	}
}
