package core

import (
	"math"
	"testing"
)

const eps = 1e-9

func TestDistance(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Vec
		expected float64
	}{
		{"same point", V(3, 4), V(3, 4), 0},
		{"3-4-5 triangle", V(0, 0), V(3, 4), 5},
		{"negative coords", V(-1, -1), V(2, 3), 5},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Distance(tc.a, tc.b); math.Abs(got-tc.expected) > eps {
				t.Errorf("Distance() = %f, expected %f", got, tc.expected)
			}
			// Symmetric
			if got := Distance(tc.b, tc.a); math.Abs(got-tc.expected) > eps {
				t.Errorf("Distance() (reversed) = %f, expected %f", got, tc.expected)
			}
		})
	}
}

func TestAngleTo(t *testing.T) {
	tests := []struct {
		name     string
		b        Vec
		expected float64
	}{
		{"right", V(1, 0), 0},
		{"down", V(0, 1), math.Pi / 2},
		{"left", V(-1, 0), math.Pi},
		{"up", V(0, -1), -math.Pi / 2},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := AngleTo(V(0, 0), tc.b); math.Abs(got-tc.expected) > eps {
				t.Errorf("AngleTo() = %f, expected %f", got, tc.expected)
			}
		})
	}
}

func TestRadiansAndPolar(t *testing.T) {
	if math.Abs(Radians(180)-math.Pi) > eps {
		t.Errorf("Radians(180) = %f, expected pi", Radians(180))
	}

	v := Polar(Radians(90), 2)
	if math.Abs(v.X) > eps || math.Abs(v.Y-2) > eps {
		t.Errorf("Polar(90deg, 2) = %v, expected (0, 2)", v)
	}
	if math.Abs(Speed(v)-2) > eps {
		t.Errorf("Speed() = %f, expected 2", Speed(v))
	}
}

func TestBoxSpanContains(t *testing.T) {
	b := Box{X: 10, Y: 0, W: 20, H: 5}

	tests := []struct {
		name     string
		x        float64
		expected bool
	}{
		{"inside", 15, true},
		{"left edge inclusive", 10, true},
		{"right edge inclusive", 30, true},
		{"outside left", 9.99, false},
		{"outside right", 30.01, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := b.SpanContains(tc.x); got != tc.expected {
				t.Errorf("SpanContains(%f) = %v, expected %v", tc.x, got, tc.expected)
			}
		})
	}

	zero := Box{X: 10, W: 0, H: 5}
	if zero.SpanContains(10) {
		t.Error("zero-width box should contain nothing")
	}
}

func TestBoxEdges(t *testing.T) {
	b := Box{X: 5, Y: 10, W: 20, H: 16}

	if b.Right() != 25 {
		t.Errorf("Right() = %f, expected 25", b.Right())
	}
	if b.Bottom() != 26 {
		t.Errorf("Bottom() = %f, expected 26", b.Bottom())
	}
	if c := b.Center(); c.X != 15 || c.Y != 18 {
		t.Errorf("Center() = %v, expected (15, 18)", c)
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},   // within range
		{-5, 0, 10, 0},  // below min
		{15, 0, 10, 10}, // above max
	}

	for _, tc := range tests {
		if got := Clamp(tc.val, tc.min, tc.max); got != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, got, tc.expected)
		}
	}

	if got := ClampF(-90.5, -90, 90); got != -90 {
		t.Errorf("ClampF(-90.5) = %f, expected -90", got)
	}
}
