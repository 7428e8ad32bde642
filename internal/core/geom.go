// Package core provides the geometry, cell buffer and collaborator contracts
// shared by the simulation and the platform shims.
// It has no external dependencies (especially no Bubble Tea) so the simulation
// stays pure and testable.
package core

// Vec2i is an integer pair used for screen-space positions and per-tick velocities.
type Vec2i struct {
	X, Y int
}

// V returns the vector (x, y).
func V(x, y int) Vec2i {
	return Vec2i{X: x, Y: y}
}

// Add returns v + o.
func (v Vec2i) Add(o Vec2i) Vec2i {
	return Vec2i{X: v.X + o.X, Y: v.Y + o.Y}
}

// Rect represents an axis-aligned bounding box used for rendering and collision.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// CenteredRect returns a w x h rectangle whose top-left corner is
// (c.X - w/2, c.Y - h/2), using integer division.
func CenteredRect(c Vec2i, w, h int) Rect {
	return Rect{X: c.X - w/2, Y: c.Y - h/2, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Touches returns true if this rectangle overlaps with another.
// Rectangles sharing only an edge or a corner count as overlapping.
func (r Rect) Touches(other Rect) bool {
	if r.X > other.Right() || other.X > r.Right() {
		return false
	}
	if r.Y > other.Bottom() || other.Y > r.Bottom() {
		return false
	}
	return true
}

// Sign returns 1 for n >= 0 and -1 otherwise. Zero maps to 1.
func Sign(n int) int {
	if n >= 0 {
		return 1
	}
	return -1
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

// Abs returns the absolute value of an integer.
func Abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
