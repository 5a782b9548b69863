package kabuto

import (
	"math"

	"github.com/vovakirdan/kabuto/internal/config"
	"github.com/vovakirdan/kabuto/internal/core"
	"github.com/vovakirdan/kabuto/internal/sim"
)

var glyphs = map[sim.Kind]rune{
	sim.KindOther:      '?',
	sim.KindActor:      '▲',
	sim.KindProjectile: '|',
	sim.KindAdversary:  '█',
}

// viewport maps world coordinates (origin at the center, +Y up) onto the
// screen cells inside the border. Row 0 is reserved for the HUD.
type viewport struct {
	frame  core.Rect // Border, one cell outside the field
	field  core.Rect // Cells the world interior maps onto
	bounds sim.Bounds
}

func newViewport(cfg config.KabutoConfig, w, h int) viewport {
	frame := core.NewRect(0, 1, w, h-1)
	return viewport{
		frame:  frame,
		field:  core.NewRect(frame.X+1, frame.Y+1, frame.W-2, frame.H-2),
		bounds: sim.WorldBounds(cfg),
	}
}

// cells returns the screen rectangle covering a world box, at least one cell
// in each direction and clipped to the field.
func (v viewport) cells(center, size core.Vec2) core.Rect {
	half := size.Scale(0.5)
	x0 := v.col(center.X - half.X)
	x1 := v.col(center.X + half.X)
	y0 := v.row(center.Y + half.Y)
	y1 := v.row(center.Y - half.Y)

	x0 = core.Clamp(x0, v.field.X, v.field.Right()-1)
	x1 = core.Clamp(x1, x0, v.field.Right()-1)
	y0 = core.Clamp(y0, v.field.Y, v.field.Bottom()-1)
	y1 = core.Clamp(y1, y0, v.field.Bottom()-1)
	return core.NewRect(x0, y0, x1-x0+1, y1-y0+1)
}

// visible reports whether any part of a world box is inside the field.
func (v viewport) visible(center, size core.Vec2) bool {
	return v.bounds.Overlaps(core.NewBox(center, size))
}

func (v viewport) col(x float64) int {
	t := (x - v.bounds.Left) / (v.bounds.Right - v.bounds.Left)
	return v.field.X + int(math.Floor(t*float64(v.field.W)))
}

func (v viewport) row(y float64) int {
	t := (v.bounds.Top - y) / (v.bounds.Top - v.bounds.Bottom)
	return v.field.Y + int(math.Floor(t*float64(v.field.H)))
}
