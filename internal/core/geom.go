// Package core provides fundamental types and utilities for the jumper.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

import (
	"math"
	"math/rand"
)

// Rect is an axis-aligned bounding box in world units.
// Y grows downward, so Bottom() is the larger edge.
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

// Center returns the center point of the rectangle.
func (r Rect) Center() (float64, float64) {
	return r.X + r.W/2, r.Y + r.H/2
}

// At returns a copy of the rectangle moved to (x, y).
func (r Rect) At(x, y float64) Rect {
	r.X = x
	r.Y = y
	return r
}

// Intersects returns true if this rectangle strictly overlaps another.
// Touching edges do not count.
func (r Rect) Intersects(other Rect) bool {
	return r.Overlaps(other, 0)
}

// Overlaps is Intersects with every edge of other grown by epsilon.
// A positive epsilon lets resting contacts (touching edges) register.
func (r Rect) Overlaps(other Rect, epsilon float64) bool {
	return r.X < other.Right()+epsilon &&
		r.Right() > other.X-epsilon &&
		r.Y < other.Bottom()+epsilon &&
		r.Bottom() > other.Y-epsilon
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

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	return math.Max(min, math.Min(max, val))
}

// Lerp interpolates linearly from a to b by t.
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// Sign returns -1, 0 or 1.
func Sign(x float64) float64 {
	switch {
	case x < 0:
		return -1
	case x > 0:
		return 1
	default:
		return 0
	}
}

// RandomRange returns a uniform value in [min, max).
func RandomRange(rng *rand.Rand, min, max float64) float64 {
	return min + rng.Float64()*(max-min)
}

// RandomInt returns a uniform integer in [min, max].
func RandomInt(rng *rand.Rand, min, max int) int {
	if max <= min {
		return min
	}
	return min + rng.Intn(max-min+1)
}

// Min returns the smaller of two integers.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
