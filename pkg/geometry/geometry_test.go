package geometry

import "testing"

func TestRectContains(t *testing.T) {
	titleBar := Rect{X: 0, Y: 0, Width: 400, Height: 30}
	tests := []struct {
		name string
		rect Rect
		pos  Point
		want bool
	}{
		{"interior", titleBar, Point{X: 10, Y: 15}, true},
		{"top-left corner", titleBar, Point{X: 0, Y: 0}, true},
		{"right edge is exclusive", titleBar, Point{X: 400, Y: 15}, false},
		{"bottom edge is exclusive", titleBar, Point{X: 10, Y: 30}, false},
		{"last interior column", titleBar, Point{X: 399, Y: 29}, true},
		{"below", titleBar, Point{X: 10, Y: 50}, false},
		{"negative coordinates", titleBar, Point{X: -1, Y: 15}, false},
		{"translated rect", Rect{X: 370, Y: 0, Width: 30, Height: 30}, Point{X: 385, Y: 15}, true},
		{"empty rect contains nothing", Rect{X: 10, Y: 10}, Point{X: 10, Y: 10}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.rect.Contains(tt.pos); got != tt.want {
				t.Errorf("Contains(%v) = %v, want %v", tt.pos, got, tt.want)
			}
		})
	}
}

func TestRectIntersects(t *testing.T) {
	base := Rect{X: 0, Y: 0, Width: 100, Height: 100}
	tests := []struct {
		name  string
		other Rect
		want  bool
	}{
		{"overlapping", Rect{X: 50, Y: 50, Width: 100, Height: 100}, true},
		{"contained", Rect{X: 10, Y: 10, Width: 20, Height: 20}, true},
		{"edge-adjacent does not intersect", Rect{X: 100, Y: 0, Width: 50, Height: 100}, false},
		{"disjoint", Rect{X: 200, Y: 200, Width: 10, Height: 10}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := base.Intersects(tt.other); got != tt.want {
				t.Errorf("Intersects(%v) = %v, want %v", tt.other, got, tt.want)
			}
			if got := tt.other.Intersects(base); got != tt.want {
				t.Errorf("Intersects is not symmetric for %v", tt.other)
			}
		})
	}
}

func TestRectIntersect(t *testing.T) {
	a := Rect{X: 0, Y: 0, Width: 100, Height: 50}
	b := Rect{X: 60, Y: 20, Width: 100, Height: 100}
	got := a.Intersect(b)
	want := Rect{X: 60, Y: 20, Width: 40, Height: 30}
	if got != want {
		t.Errorf("Intersect() = %v, want %v", got, want)
	}
	if v := a.Intersect(Rect{X: 500, Y: 500, Width: 10, Height: 10}); v.IsValid() {
		t.Errorf("Intersect of disjoint rects = %v, want invalid", v)
	}
}

func TestSizeShrinkGrow(t *testing.T) {
	size := Size{Width: 400, Height: 300}
	m := UniformMargins(10)
	shrunk := size.Shrink(m)
	if shrunk != (Size{Width: 380, Height: 280}) {
		t.Errorf("Shrink() = %v", shrunk)
	}
	grown := size.Grow(m)
	if grown != (Size{Width: 420, Height: 320}) {
		t.Errorf("Grow() = %v", grown)
	}
	if shrunk.Grow(m) != size {
		t.Errorf("Grow after Shrink did not restore %v", size)
	}
}

func TestEdges(t *testing.T) {
	e := EdgeTop | EdgeLeft
	if !e.Has(EdgeTop) || !e.Has(EdgeLeft) {
		t.Error("Has() missed set edges")
	}
	if e.Has(EdgeRight) || e.Has(EdgeBottom) {
		t.Error("Has() reported unset edges")
	}
	if e.IsEmpty() {
		t.Error("IsEmpty() = true for non-empty set")
	}
	if !(Edges(0)).IsEmpty() {
		t.Error("IsEmpty() = false for empty set")
	}
}
