// Package core provides fundamental types shared by games and the platform.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

import "math"

// Vec2 is a 2D vector in world units.
type Vec2 struct {
	X, Y float64
}

// V returns the vector (x, y).
func V(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

// Scale returns v multiplied by s.
func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// Len returns the Euclidean length of v.
func (v Vec2) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

// Normalize returns v scaled to unit length. The zero vector is returned unchanged.
func (v Vec2) Normalize() Vec2 {
	l := v.Len()
	if l == 0 {
		return v
	}
	return v.Scale(1 / l)
}

// Box is an axis-aligned bounding box defined by its center and full size.
type Box struct {
	Center Vec2
	Size   Vec2
}

// NewBox creates a box centered at c with the given full size.
func NewBox(c, size Vec2) Box {
	return Box{Center: c, Size: size}
}

// Min returns the lower-left corner.
func (b Box) Min() Vec2 {
	return b.Center.Sub(b.Size.Scale(0.5))
}

// Max returns the upper-right corner.
func (b Box) Max() Vec2 {
	return b.Center.Add(b.Size.Scale(0.5))
}

// Side describes which side of B the box A touched, seen from A.
type Side int

const (
	SideInside Side = iota // No dominant side: containment or equal depth
	SideLeft               // A is left of B; A's right edge crossed B's left edge
	SideRight              // A is right of B
	SideTop                // A is above B
	SideBottom             // A is below B
)

// String returns a human-readable name for the side.
func (s Side) String() string {
	switch s {
	case SideLeft:
		return "Left"
	case SideRight:
		return "Right"
	case SideTop:
		return "Top"
	case SideBottom:
		return "Bottom"
	default:
		return "Inside"
	}
}

// Collide tests a against b for overlap and classifies the contact side.
// Returns false when the boxes do not overlap; touching edges are not an overlap.
//
// Each axis is classified independently. An axis where one box straddles the
// other's edge yields a side and a penetration depth; an axis where one span is
// contained in the other yields no side. With two classified axes the shallower
// penetration wins and equal depths resolve to SideInside.
func Collide(a, b Box) (Side, bool) {
	aMin, aMax := a.Min(), a.Max()
	bMin, bMax := b.Min(), b.Max()

	if aMin.X >= bMax.X || aMax.X <= bMin.X || aMin.Y >= bMax.Y || aMax.Y <= bMin.Y {
		return SideInside, false
	}

	xSide, xDepth, xOK := axisContact(aMin.X, aMax.X, bMin.X, bMax.X, SideLeft, SideRight)
	ySide, yDepth, yOK := axisContact(aMin.Y, aMax.Y, bMin.Y, bMax.Y, SideBottom, SideTop)

	switch {
	case xOK && yOK:
		if xDepth < yDepth {
			return xSide, true
		}
		if yDepth < xDepth {
			return ySide, true
		}
		return SideInside, true
	case xOK:
		return xSide, true
	case yOK:
		return ySide, true
	default:
		return SideInside, true
	}
}

// axisContact classifies one axis of an overlap. low is reported when a straddles
// b's lower edge, high when it straddles b's upper edge.
func axisContact(aMin, aMax, bMin, bMax float64, low, high Side) (Side, float64, bool) {
	if aMin < bMin && aMax > bMin && aMax < bMax {
		return low, aMax - bMin, true
	}
	if aMin > bMin && aMin < bMax && aMax > bMax {
		return high, bMax - aMin, true
	}
	return SideInside, 0, false
}

// Rect represents an integer cell rectangle used for screen drawing.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Intersects returns true if this rectangle overlaps with another.
func (r Rect) Intersects(other Rect) bool {
	if r.X >= other.Right() || other.X >= r.Right() {
		return false
	}
	if r.Y >= other.Bottom() || other.Y >= r.Bottom() {
		return false
	}
	return true
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}
