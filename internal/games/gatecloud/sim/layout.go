package sim

import "github.com/vovakirdan/gatecloud/internal/core"

// ZoneSpec places a qubit zone.
type ZoneSpec struct {
	ID  string
	Box core.Box
}

// ObstacleSpec places an obstacle. When Radius is zero the effective radius
// is half the larger side of Box.
type ObstacleSpec struct {
	ID     ObstacleID
	Box    core.Box
	Radius float64
	Kind   BlockKind
}

func (s ObstacleSpec) effectiveRadius() float64 {
	if s.Radius > 0 {
		return s.Radius
	}
	return max(s.Box.W, s.Box.H) / 2
}

// SourceSpec places an emitter or flipper.
type SourceSpec struct {
	ID        SourceID
	Pos       core.Vec
	BaseAngle float64
}

// Walls are the vertical bounds of the pinball table.
type Walls struct {
	MinX, MaxX float64
}

// Enabled reports whether the bounds describe a usable table.
func (w Walls) Enabled() bool {
	return w.MaxX > w.MinX
}

// Layout is a snapshot of the playfield geometry as the host lays it out.
// The engine copies it; the host may hand over a new one at any tick.
type Layout struct {
	Width, Height float64

	SpawnX, SpawnY float64
	LandingY       float64

	Zones     []ZoneSpec
	Dustbin   core.Box
	Obstacles []ObstacleSpec
	Sources   []SourceSpec
	Walls     Walls
}

func (l Layout) clone() Layout {
	l.Zones = append([]ZoneSpec(nil), l.Zones...)
	l.Obstacles = append([]ObstacleSpec(nil), l.Obstacles...)
	l.Sources = append([]SourceSpec(nil), l.Sources...)
	return l
}

// LayoutProvider supplies the current layout on demand.
type LayoutProvider interface {
	Layout() Layout
}

// LayoutFunc adapts a function to LayoutProvider.
type LayoutFunc func() Layout

// Layout calls f.
func (f LayoutFunc) Layout() Layout {
	return f()
}

// StaticLayout is a provider that always returns the same layout.
type StaticLayout Layout

// Layout returns the fixed layout.
func (s StaticLayout) Layout() Layout {
	return Layout(s)
}
