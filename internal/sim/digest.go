package sim

import (
	"encoding/binary"
	"math"

	"github.com/cespare/xxhash/v2"
)

// Digest returns a hash of the observable simulation state: tick, score, and
// every entity's id, box, velocity and lifetime in storage order. Two runs fed
// the same inputs and durations produce the same digest.
func (s *Simulation) Digest() uint64 {
	ctx := s.ctx
	d := xxhash.New()
	buf := make([]byte, 0, 64)

	buf = binary.LittleEndian.AppendUint64(buf, ctx.Tick)
	buf = binary.LittleEndian.AppendUint64(buf, uint64(ctx.Score.Value()))
	_, _ = d.Write(buf)

	for _, e := range ctx.World.Query().With(ctx.Transforms).Execute() {
		tr, _ := ctx.Transforms.Value(e)
		vel, _ := ctx.Velocities.Value(e)
		life, _ := ctx.Lifetimes.Value(e)

		buf = buf[:0]
		buf = binary.LittleEndian.AppendUint64(buf, uint64(e))
		for _, f := range [...]float64{
			tr.Position.X, tr.Position.Y,
			tr.Size.X, tr.Size.Y,
			vel.X, vel.Y,
			life.Seconds,
		} {
			buf = binary.LittleEndian.AppendUint64(buf, math.Float64bits(f))
		}
		_, _ = d.Write(buf)
	}
	return d.Sum64()
}
