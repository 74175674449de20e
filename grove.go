package grove

import "image"

// Vec2 is a 2D vector used for positions and directions. The coordinate
// system has its origin at the top-left, with Y increasing downward.
type Vec2 struct {
	X, Y float64
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Truncate converts v to integer pixel coordinates by dropping the
// fractional part toward zero.
func (v Vec2) Truncate() image.Point {
	return image.Point{X: int(v.X), Y: int(v.Y)}
}

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Pixels returns the integer pixel rectangle covered by r, clipped to
// bounds. Partially covered pixels on the low edge are included.
func (r Rect) Pixels(bounds image.Rectangle) image.Rectangle {
	px := image.Rect(int(r.X), int(r.Y), int(r.X+r.Width), int(r.Y+r.Height))
	return px.Intersect(bounds)
}
