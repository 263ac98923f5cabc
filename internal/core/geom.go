// Package core provides fundamental types and utilities shared by the dungeon
// engine and the platform layer. It has no external dependencies so level
// generation stays pure and testable.
package core

import "math"

// Point is a tile coordinate. X grows to the right, Y grows downward.
type Point struct {
	X, Y int
}

// Pt is a convenience constructor for Point.
func Pt(x, y int) Point {
	return Point{X: x, Y: y}
}

// Add returns the point offset by (dx, dy).
func (p Point) Add(dx, dy int) Point {
	return Point{X: p.X + dx, Y: p.Y + dy}
}

// Manhattan returns the Manhattan distance to another point.
func (p Point) Manhattan(o Point) int {
	return Abs(p.X-o.X) + Abs(p.Y-o.Y)
}

// Distance returns the Euclidean distance to another point.
func (p Point) Distance(o Point) float64 {
	dx := float64(p.X - o.X)
	dy := float64(p.Y - o.Y)
	return math.Sqrt(dx*dx + dy*dy)
}

// Rect is an axis-aligned room rectangle spanning (X1, Y1)-(X2, Y2).
// The border tiles stay solid; only the interior is carved.
type Rect struct {
	X1, Y1 int
	X2, Y2 int
}

// NewRect creates a rectangle with its top-left corner at (x, y).
func NewRect(x, y, w, h int) Rect {
	return Rect{X1: x, Y1: y, X2: x + w, Y2: y + h}
}

// Width returns X2 - X1.
func (r Rect) Width() int {
	return r.X2 - r.X1
}

// Height returns Y2 - Y1.
func (r Rect) Height() int {
	return r.Y2 - r.Y1
}

// Center returns the midpoint, truncated toward zero on each axis.
// Corridor endpoints rely on this exact rounding.
func (r Rect) Center() Point {
	return Point{X: (r.X1 + r.X2) / 2, Y: (r.Y1 + r.Y2) / 2}
}

// Intersects reports whether the closed spans of both rectangles overlap.
// Bounds are inclusive, so rooms that merely share an edge intersect too;
// this keeps at least one solid tile between accepted rooms.
func (r Rect) Intersects(other Rect) bool {
	return r.X1 <= other.X2 && r.X2 >= other.X1 &&
		r.Y1 <= other.Y2 && r.Y2 >= other.Y1
}

// Interior returns the inclusive bounds of the carved floor area.
func (r Rect) Interior() (x1, y1, x2, y2 int) {
	return r.X1 + 1, r.Y1 + 1, r.X2 - 1, r.Y2 - 1
}

// ContainsInterior reports whether (x, y) lies on the carved floor of the room.
func (r Rect) ContainsInterior(x, y int) bool {
	return x > r.X1 && x < r.X2 && y > r.Y1 && y < r.Y2
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
