// Package core provides fundamental types and utilities for the dodger platform.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

import "math"

// Vec is a point in world units. Origin is top-left, Y grows downward.
type Vec struct {
	X, Y float64
}

// Rect represents an axis-aligned bounding box used for collision detection.
type Rect struct {
	X, Y float64 // Top-left corner position
	W, H float64 // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h float64) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() float64 {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() float64 {
	return r.Y + r.H
}

// Intersects returns true if this rectangle overlaps with another.
// Touching edges do not count as an overlap.
func (r Rect) Intersects(other Rect) bool {
	return r.X < other.Right() && r.Right() > other.X &&
		r.Y < other.Bottom() && r.Bottom() > other.Y
}

// Contains returns true if the point (x, y) is inside this rectangle.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Center returns the center point of the rectangle.
func (r Rect) Center() Vec {
	return Vec{X: r.X + r.W/2, Y: r.Y + r.H/2}
}

// Circle is a round hitbox.
type Circle struct {
	C Vec
	R float64
}

// InscribedCircle returns the circle centered in r with radius half its width.
func InscribedCircle(r Rect) Circle {
	return Circle{C: r.Center(), R: r.W / 2}
}

// IntersectsRect clamps the circle center into the rectangle and reports
// whether that closest point lies strictly inside the radius.
func (c Circle) IntersectsRect(r Rect) bool {
	closestX := ClampF(c.C.X, r.X, r.Right())
	closestY := ClampF(c.C.Y, r.Y, r.Bottom())
	return math.Hypot(c.C.X-closestX, c.C.Y-closestY) < c.R
}

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}
