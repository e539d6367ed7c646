// Package geometry provides integer pixel geometry for window-level
// coordinate math: points, sizes, rectangles, margins, edge sets, and
// rectangle regions.
//
// All values are device-independent pixels unless a function says
// otherwise. Rectangle containment is half-open: a Rect of width w at x
// contains the columns x through x+w-1.
package geometry

// Point represents a 2D position in pixel coordinates.
type Point struct {
	X int
	Y int
}

// Add returns p offset by q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns p offset by -q.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Size represents width and height dimensions in pixels.
type Size struct {
	Width  int
	Height int
}

// IsEmpty returns true if either dimension is zero or negative.
func (s Size) IsEmpty() bool {
	return s.Width <= 0 || s.Height <= 0
}

// Shrink returns the size reduced by the given margins on every edge.
func (s Size) Shrink(m Margins) Size {
	return Size{
		Width:  s.Width - m.Left - m.Right,
		Height: s.Height - m.Top - m.Bottom,
	}
}

// Grow returns the size expanded by the given margins on every edge.
func (s Size) Grow(m Margins) Size {
	return Size{
		Width:  s.Width + m.Left + m.Right,
		Height: s.Height + m.Top + m.Bottom,
	}
}

// Margins describes per-edge spacing.
type Margins struct {
	Left   int
	Top    int
	Right  int
	Bottom int
}

// UniformMargins returns margins with the same value on every edge.
func UniformMargins(v int) Margins {
	return Margins{Left: v, Top: v, Right: v, Bottom: v}
}

// Rect represents a rectangle by its top-left corner and dimensions.
type Rect struct {
	X      int
	Y      int
	Width  int
	Height int
}

// RectAt constructs a Rect from a top-left point and a size.
func RectAt(origin Point, size Size) Rect {
	return Rect{X: origin.X, Y: origin.Y, Width: size.Width, Height: size.Height}
}

// Origin returns the top-left corner.
func (r Rect) Origin() Point {
	return Point{X: r.X, Y: r.Y}
}

// Size returns the rectangle dimensions.
func (r Rect) Size() Size {
	return Size{Width: r.Width, Height: r.Height}
}

// Right returns the first x coordinate beyond the right edge.
func (r Rect) Right() int {
	return r.X + r.Width
}

// Bottom returns the first y coordinate beyond the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.Height
}

// Center returns the center point, rounded toward the top-left.
func (r Rect) Center() Point {
	return Point{X: r.X + r.Width/2, Y: r.Y + r.Height/2}
}

// IsValid returns true if the rectangle has positive area.
func (r Rect) IsValid() bool {
	return r.Width > 0 && r.Height > 0
}

// Contains returns true if p lies inside the rectangle.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X < r.Right() && p.Y >= r.Y && p.Y < r.Bottom()
}

// Intersects returns true if r and other share any area.
func (r Rect) Intersects(other Rect) bool {
	return r.X < other.Right() && other.X < r.Right() &&
		r.Y < other.Bottom() && other.Y < r.Bottom() &&
		r.IsValid() && other.IsValid()
}

// Intersect returns the overlapping area of r and other, or a zero Rect
// if they do not overlap.
func (r Rect) Intersect(other Rect) Rect {
	x := max(r.X, other.X)
	y := max(r.Y, other.Y)
	right := min(r.Right(), other.Right())
	bottom := min(r.Bottom(), other.Bottom())
	if right <= x || bottom <= y {
		return Rect{}
	}
	return Rect{X: x, Y: y, Width: right - x, Height: bottom - y}
}
