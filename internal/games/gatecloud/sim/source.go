package sim

import "github.com/vovakirdan/gatecloud/internal/core"

// SourceID is an opaque handle for an emitter or flipper.
type SourceID int

// ForceSource is a player-held emitter (deflector variant) or flipper
// (pinball variant). Angles are in degrees; 0 points straight up.
type ForceSource struct {
	ID        SourceID
	Pos       core.Vec
	Radius    float64
	Strength  float64
	Power     float64
	BaseAngle float64
	Angle     float64
	Active    bool
}

// EffectiveAngle is the base offset plus the player angle, in degrees.
func (s ForceSource) EffectiveAngle() float64 {
	return s.BaseAngle + s.Angle
}

// ForceAt returns the velocity change the source applies to a token at pos.
// Inactive sources and positions out of range yield zero.
func (s ForceSource) ForceAt(pos core.Vec) core.Vec {
	if !s.Active {
		return core.Vec{}
	}
	m := RadialFalloff(core.Distance(s.Pos, pos), s.Radius, s.Strength, s.Power)
	if m == 0 {
		return core.Vec{}
	}
	return DirectionalForce(s.EffectiveAngle(), m)
}
