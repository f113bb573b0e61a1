package sim

import "gonum.org/v1/gonum/spatial/r2"

// step advances one token by one tick.
func (e *Engine) step(t *Token) {
	t.Vel.Y += e.cfg.Gravity

	e.collide(t)

	for _, s := range e.sources {
		t.Vel = r2.Add(t.Vel, s.ForceAt(t.Pos))
	}

	t.Pos = r2.Add(t.Pos, t.Vel)

	if e.cfg.Variant != VariantPinball {
		return
	}
	if BounceWall(t, e.layout.Walls, e.cfg.WallBounciness) {
		e.emit(WallBounceEvent{At: e.now, Token: t.ID, Pos: t.Pos})
	}
	t.Vel.X *= e.cfg.DampingX
	t.Vel.Y *= e.cfg.DampingY
}
