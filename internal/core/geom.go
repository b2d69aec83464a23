// Package core provides the shared types of the dodger: geometry in logical
// pixels, held input, the cell screen buffer and runtime configuration.
// It has no external dependencies (especially no Bubble Tea), so the
// simulation built on it stays pure and testable.
package core

// Rect is an axis-aligned box in logical pixels. X and Y are the top-left
// corner; simulation entities build one from their center with RectFromCenter.
type Rect struct {
	X, Y float64
	W, H float64
}

// RectFromCenter creates a rectangle centered on (cx, cy).
func RectFromCenter(cx, cy, w, h float64) Rect {
	return Rect{X: cx - w/2, Y: cy - h/2, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() float64 {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() float64 {
	return r.Y + r.H
}

// Center returns the center point of the rectangle.
func (r Rect) Center() (float64, float64) {
	return r.X + r.W/2, r.Y + r.H/2
}

// Intersects reports whether two boxes overlap. Touching edges do not count.
func (r Rect) Intersects(other Rect) bool {
	return r.OverlapsX(other) && r.Y < other.Bottom() && other.Y < r.Bottom()
}

// OverlapsX reports whether the horizontal extents overlap.
// Full-height bands collide on this test alone.
func (r Rect) OverlapsX(other Rect) bool {
	return r.X < other.Right() && other.X < r.Right()
}

// ClampF restricts v to [lo, hi].
func ClampF(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
