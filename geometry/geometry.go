// Package geometry provides the small amount of 2D math the game needs.
// It has no dependencies so entity logic stays testable without a display.
package geometry

// Vec2 is a 2D point or direction.
type Vec2 struct {
	X, Y float32
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{v.X + o.X, v.Y + o.Y}
}

// Mul returns the component-wise product of v and o.
func (v Vec2) Mul(o Vec2) Vec2 {
	return Vec2{v.X * o.X, v.Y * o.Y}
}

// Scale returns v with both components multiplied by s.
func (v Vec2) Scale(s float32) Vec2 {
	return Vec2{v.X * s, v.Y * s}
}

// Rect is an axis-aligned rectangle. Min is the top-left corner.
type Rect struct {
	Min, Max Vec2
}

// RectAt builds a rectangle anchored at pos (top-left) with the given size.
func RectAt(pos Vec2, w, h float32) Rect {
	return Rect{Min: pos, Max: Vec2{pos.X + w, pos.Y + h}}
}

// Expand grows the rectangle by m on all four sides.
func (r Rect) Expand(m float32) Rect {
	return Rect{
		Min: Vec2{r.Min.X - m, r.Min.Y - m},
		Max: Vec2{r.Max.X + m, r.Max.Y + m},
	}
}

// Contains reports whether p lies inside r. Edges count as inside.
func (r Rect) Contains(p Vec2) bool {
	return p.X >= r.Min.X && p.X <= r.Max.X && p.Y >= r.Min.Y && p.Y <= r.Max.Y
}
