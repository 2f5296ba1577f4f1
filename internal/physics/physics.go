// Package physics provides axis-aligned collision detection and bounds utilities.
package physics

// Rect is an axis-aligned rectangle with X, Y at the top-left corner.
type Rect struct {
	X, Y, W, H float64
}

// Left returns the left edge.
func (r Rect) Left() float64 { return r.X }

// Right returns the right edge.
func (r Rect) Right() float64 { return r.X + r.W }

// Top returns the top edge.
func (r Rect) Top() float64 { return r.Y }

// Bottom returns the bottom edge.
func (r Rect) Bottom() float64 { return r.Y + r.H }

// Center returns the center point.
func (r Rect) Center() (float64, float64) {
	return r.X + r.W/2, r.Y + r.H/2
}

// Intersects reports whether two rectangles overlap.
// Rectangles that only share an edge do not overlap.
func (r Rect) Intersects(o Rect) bool {
	return r.X < o.Right() && o.X < r.Right() && r.Y < o.Bottom() && o.Y < r.Bottom()
}

// ClampInside returns the position that keeps a w×h box fully inside bounds.
func ClampInside(x, y, w, h float64, bounds Rect) (float64, float64) {
	return Clamp(x, bounds.Left(), bounds.Right()-w), Clamp(y, bounds.Top(), bounds.Bottom()-h)
}

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
