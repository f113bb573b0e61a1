package sim

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/gatecloud/internal/core"
)

const (
	scatterJitter = 1.5
	spinAngle     = math.Pi / 4
	entangleSwing = math.Pi / 2
)

// Deflect returns the velocity of a token at pos after hitting an obstacle
// centred at center. The velocity is replaced, not accumulated; vel is only
// consulted by the Z modifier, which keeps the incoming speed.
func Deflect(vel, pos, center core.Vec, force float64, kind BlockKind, rng *rand.Rand) core.Vec {
	angle := core.AngleTo(center, pos)

	switch kind {
	case KindH:
		v := core.Polar(angle, force)
		v.X += (rng.Float64()*2 - 1) * scatterJitter
		v.Y += (rng.Float64()*2 - 1) * scatterJitter
		return v
	case KindX:
		return core.Polar(angle, force*1.2)
	case KindZ:
		speed := core.Speed(vel)
		if speed == 0 {
			speed = force
		}
		return core.Polar(angle+spinAngle, speed)
	case KindP:
		return core.Polar(angle, force*0.8)
	case KindCNOT:
		return core.Polar(angle+(rng.Float64()*2-1)*entangleSwing, force)
	case KindM:
		return core.Polar(angle, force*0.6)
	default:
		return core.Polar(angle, force)
	}
}

// BounceWall clamps a token inside the walls and reflects its horizontal
// velocity, scaled by bounciness. It reports whether a bounce happened.
func BounceWall(t *Token, w Walls, bounciness float64) bool {
	if !w.Enabled() {
		return false
	}
	switch {
	case t.Pos.X-t.Radius < w.MinX:
		t.Pos.X = w.MinX + t.Radius
		t.Vel.X = math.Abs(t.Vel.X) * bounciness
		return true
	case t.Pos.X+t.Radius > w.MaxX:
		t.Pos.X = w.MaxX - t.Radius
		t.Vel.X = -math.Abs(t.Vel.X) * bounciness
		return true
	}
	return false
}

// collide runs the obstacle pass for one token.
func (e *Engine) collide(t *Token) {
	if e.cfg.Variant == VariantDeflector {
		if t.Deflected {
			return
		}
		for _, o := range e.obstacles {
			if o.touching(t) {
				e.hit(t, o)
				t.Deflected = true
				return
			}
		}
		return
	}

	if t.LastHit != NoObstacle {
		if o := e.obstacleByID(t.LastHit); o == nil || !o.touching(t) {
			t.LastHit = NoObstacle
		}
	}
	for _, o := range e.obstacles {
		if o.ID == t.LastHit || !o.touching(t) {
			continue
		}
		e.hit(t, o)
		t.LastHit = o.ID
		return
	}
}

func (e *Engine) hit(t *Token, o *Obstacle) {
	t.Vel = Deflect(t.Vel, t.Pos, o.Center, e.cfg.DeflectionForce, o.Kind, e.rng)
	t.Bounces++
	o.Hits++

	points := 0
	if e.cfg.Variant == VariantPinball {
		points = e.ledger.Collide(e.cfg.Scoring.PointsFor(o.Kind))
	}
	e.emit(CollisionEvent{
		At:       e.now,
		Token:    t.ID,
		Obstacle: o.ID,
		Kind:     o.Kind,
		Pos:      t.Pos,
		Points:   points,
	})
}
