// Package core provides fundamental types and utilities for the gate cloud platform.
// It contains no Bubble Tea dependency to keep simulation logic pure and testable.
package core

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// Vec is a 2D vector in simulation space.
// Y grows downward, matching screen coordinates.
type Vec = r2.Vec

// V creates a vector from its components.
func V(x, y float64) Vec {
	return Vec{X: x, Y: y}
}

// Distance returns the euclidean distance between two points.
func Distance(a, b Vec) float64 {
	return r2.Norm(r2.Sub(b, a))
}

// AngleTo returns the angle in radians of the direction from a to b.
func AngleTo(a, b Vec) float64 {
	d := r2.Sub(b, a)
	return math.Atan2(d.Y, d.X)
}

// Radians converts degrees to radians.
func Radians(deg float64) float64 {
	return deg * math.Pi / 180
}

// Polar returns a vector of the given length pointing along angle (radians).
func Polar(angle, length float64) Vec {
	return Vec{X: math.Cos(angle) * length, Y: math.Sin(angle) * length}
}

// Speed returns the magnitude of a velocity vector.
func Speed(v Vec) float64 {
	return r2.Norm(v)
}

// Box is an axis-aligned rectangle in simulation space.
type Box struct {
	X, Y float64 // Top-left corner
	W, H float64
}

// Right returns the x-coordinate of the right edge.
func (b Box) Right() float64 {
	return b.X + b.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (b Box) Bottom() float64 {
	return b.Y + b.H
}

// Center returns the centre point of the box.
func (b Box) Center() Vec {
	return Vec{X: b.X + b.W/2, Y: b.Y + b.H/2}
}

// Empty reports whether the box has no horizontal extent.
func (b Box) Empty() bool {
	return b.W <= 0
}

// SpanContains reports whether x lies within the horizontal span, edges included.
// Empty boxes contain nothing.
func (b Box) SpanContains(x float64) bool {
	if b.Empty() {
		return false
	}
	return x >= b.X && x <= b.Right()
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
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}
