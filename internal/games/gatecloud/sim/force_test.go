package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vovakirdan/gatecloud/internal/core"
)

const eps = 1e-9

func TestRadialFalloff(t *testing.T) {
	tests := []struct {
		name string
		d, r float64
		want float64
	}{
		{"centre", 0, 200, 0.5},
		{"halfway", 100, 200, 0.25},
		{"edge", 200, 200, 0},
		{"outside", 250, 200, 0},
		{"no radius", 0, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, RadialFalloff(tt.d, tt.r, 0.5, 1), eps)
		})
	}
}

func TestDirectionalForce(t *testing.T) {
	up := DirectionalForce(0, 2)
	assert.InDelta(t, 0, up.X, eps)
	assert.InDelta(t, -2, up.Y, eps)

	right := DirectionalForce(90, 2)
	assert.InDelta(t, 2, right.X, eps)
	assert.InDelta(t, 0, right.Y, eps)
}

func TestForceSourceAt(t *testing.T) {
	s := ForceSource{Pos: core.V(0, 0), Radius: 100, Strength: 1, Power: 2, BaseAngle: 30, Angle: -30}

	assert.Equal(t, core.Vec{}, s.ForceAt(core.V(0, -10)), "inactive source")

	s.Active = true
	f := s.ForceAt(core.V(0, -50))
	assert.InDelta(t, 0, f.X, eps)
	assert.InDelta(t, -1, f.Y, eps)

	assert.Equal(t, core.Vec{}, s.ForceAt(core.V(0, -150)), "out of range")
}
