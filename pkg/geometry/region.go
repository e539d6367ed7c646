package geometry

// Region is a set of points described as a list of non-overlapping
// rectangles. The zero value is the empty region.
type Region []Rect

// RegionOf returns a region covering the given rectangle. Invalid
// rectangles produce the empty region.
func RegionOf(r Rect) Region {
	if !r.IsValid() {
		return nil
	}
	return Region{r}
}

// Subtract returns the region with all points of hole removed.
// Each covered rectangle overlapping the hole is split into up to four
// strips (above, below, left, right of the hole).
func (rg Region) Subtract(hole Rect) Region {
	if !hole.IsValid() {
		return rg
	}
	var out Region
	for _, r := range rg {
		if !r.Intersects(hole) {
			out = append(out, r)
			continue
		}
		h := r.Intersect(hole)
		if top := h.Y - r.Y; top > 0 {
			out = append(out, Rect{X: r.X, Y: r.Y, Width: r.Width, Height: top})
		}
		if bottom := r.Bottom() - h.Bottom(); bottom > 0 {
			out = append(out, Rect{X: r.X, Y: h.Bottom(), Width: r.Width, Height: bottom})
		}
		if left := h.X - r.X; left > 0 {
			out = append(out, Rect{X: r.X, Y: h.Y, Width: left, Height: h.Height})
		}
		if right := r.Right() - h.Right(); right > 0 {
			out = append(out, Rect{X: h.Right(), Y: h.Y, Width: right, Height: h.Height})
		}
	}
	return out
}

// Contains returns true if p lies inside any covered rectangle.
func (rg Region) Contains(p Point) bool {
	for _, r := range rg {
		if r.Contains(p) {
			return true
		}
	}
	return false
}

// IsEmpty returns true if the region covers no points.
func (rg Region) IsEmpty() bool {
	return len(rg) == 0
}
