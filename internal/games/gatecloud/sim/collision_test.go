package sim

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vovakirdan/gatecloud/internal/core"
)

func TestDeflectMagnitudes(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	center := core.V(0, 0)
	pos := core.V(10, 0)

	tests := []struct {
		kind BlockKind
		want float64
	}{
		{KindPlain, 5},
		{KindX, 6},
		{KindP, 4},
		{KindM, 3},
		{KindCNOT, 5},
	}
	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			v := Deflect(core.V(0, 9), pos, center, 5, tt.kind, rng)
			assert.InDelta(t, tt.want, core.Speed(v), 1e-9)
		})
	}
}

func TestDeflectPlainPointsAway(t *testing.T) {
	v := Deflect(core.V(0, 3), core.V(0, -10), core.V(0, 0), 5, KindPlain, nil)
	assert.InDelta(t, 0, v.X, 1e-9)
	assert.InDelta(t, -5, v.Y, 1e-9)
}

func TestDeflectSpinKeepsSpeed(t *testing.T) {
	v := Deflect(core.V(3, 4), core.V(10, 0), core.V(0, 0), 5, KindZ, nil)
	assert.InDelta(t, 5, core.Speed(v), 1e-9)
	assert.InDelta(t, math.Pi/4, math.Atan2(v.Y, v.X), 1e-9)

	rest := Deflect(core.Vec{}, core.V(10, 0), core.V(0, 0), 7, KindZ, nil)
	assert.InDelta(t, 7, core.Speed(rest), 1e-9)
}

func TestDeflectScatterStaysInJitterBox(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 100; i++ {
		v := Deflect(core.Vec{}, core.V(10, 0), core.V(0, 0), 5, KindH, rng)
		assert.InDelta(t, 5, v.X, scatterJitter)
		assert.InDelta(t, 0, v.Y, scatterJitter)
	}
}

func TestDeflectEntangleSwing(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	for i := 0; i < 100; i++ {
		v := Deflect(core.Vec{}, core.V(0, -10), core.V(0, 0), 5, KindCNOT, rng)
		angle := math.Atan2(v.Y, v.X)
		assert.InDelta(t, -math.Pi/2, angle, math.Pi/2+1e-9)
	}
}

func TestBounceWall(t *testing.T) {
	w := Walls{MinX: 0, MaxX: 100}

	left := &Token{Pos: core.V(5, 50), Vel: core.V(-4, 1), Radius: 10}
	assert.True(t, BounceWall(left, w, 0.7))
	assert.Equal(t, 10.0, left.Pos.X)
	assert.InDelta(t, 2.8, left.Vel.X, 1e-9)

	right := &Token{Pos: core.V(95, 50), Vel: core.V(4, 1), Radius: 10}
	assert.True(t, BounceWall(right, w, 0.7))
	assert.Equal(t, 90.0, right.Pos.X)
	assert.InDelta(t, -2.8, right.Vel.X, 1e-9)

	inside := &Token{Pos: core.V(50, 50), Vel: core.V(4, 1), Radius: 10}
	assert.False(t, BounceWall(inside, w, 0.7))

	assert.False(t, BounceWall(right, Walls{}, 0.7), "disabled walls")
}
