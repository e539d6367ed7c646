package geometry

import "testing"

// The draggable-area computation subtracts button and control
// rectangles from the title bar rectangle, so these tests mirror that
// usage: one wide strip with holes punched out of it.

func TestRegionSubtract(t *testing.T) {
	titleBar := RectAt(Point{}, Size{Width: 400, Height: 30})
	closeButton := Rect{X: 370, Y: 0, Width: 30, Height: 30}

	region := RegionOf(titleBar).Subtract(closeButton)

	tests := []struct {
		name string
		pos  Point
		want bool
	}{
		{"left of the hole", Point{X: 10, Y: 15}, true},
		{"just before the hole", Point{X: 369, Y: 15}, true},
		{"inside the hole", Point{X: 385, Y: 15}, false},
		{"hole top-left corner", Point{X: 370, Y: 0}, false},
		{"below the strip", Point{X: 10, Y: 50}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := region.Contains(tt.pos); got != tt.want {
				t.Errorf("Contains(%v) = %v, want %v", tt.pos, got, tt.want)
			}
		})
	}
}

func TestRegionSubtractMultiple(t *testing.T) {
	titleBar := RectAt(Point{}, Size{Width: 400, Height: 30})
	region := RegionOf(titleBar).
		Subtract(Rect{X: 340, Y: 0, Width: 30, Height: 30}).
		Subtract(Rect{X: 370, Y: 0, Width: 30, Height: 30}).
		Subtract(Rect{X: 0, Y: 0, Width: 30, Height: 30})

	if region.Contains(Point{X: 15, Y: 15}) {
		t.Error("window icon area still draggable")
	}
	if region.Contains(Point{X: 355, Y: 15}) || region.Contains(Point{X: 385, Y: 15}) {
		t.Error("button area still draggable")
	}
	if !region.Contains(Point{X: 200, Y: 15}) {
		t.Error("middle of the title bar no longer draggable")
	}
}

func TestRegionSubtractDisjoint(t *testing.T) {
	titleBar := RectAt(Point{}, Size{Width: 400, Height: 30})
	region := RegionOf(titleBar).Subtract(Rect{X: 0, Y: 100, Width: 50, Height: 50})
	if !region.Contains(Point{X: 10, Y: 15}) {
		t.Error("subtracting a disjoint rect changed the region")
	}
}

func TestRegionSubtractAll(t *testing.T) {
	r := Rect{X: 5, Y: 5, Width: 20, Height: 20}
	region := RegionOf(r).Subtract(r)
	if !region.IsEmpty() {
		t.Errorf("subtracting a rect from itself left %v", region)
	}
	if region.Contains(Point{X: 10, Y: 10}) {
		t.Error("empty region contains a point")
	}
}
