package gatecloud

import (
	"fmt"
	"time"

	"github.com/vovakirdan/gatecloud/internal/config"
	"github.com/vovakirdan/gatecloud/internal/games/gatecloud/sim"
)

// EngineConfig turns the YAML configuration for one level into engine
// settings. The pacer may be nil for a fixed spawn interval.
func EngineConfig(cfg config.GateCloudConfig, v sim.Variant, lvl config.LevelConfig, seed int64, pacer sim.Pacer) (sim.Config, error) {
	queue, bad := sim.ParseQueue(lvl.Queue)
	if bad >= 0 {
		return sim.Config{}, fmt.Errorf("gatecloud: level %q: unknown gate %q", lvl.Name, lvl.Queue[bad])
	}
	if len(queue) == 0 {
		return sim.Config{}, fmt.Errorf("gatecloud: level %q: empty gate queue", lvl.Name)
	}

	out := sim.DefaultConfig(v)
	out.Seed = seed
	out.Queue = queue
	out.Target = lvl.Target
	if out.Target == "" {
		out.Target = sim.KetOne
	}
	out.SpawnInterval = time.Duration(cfg.Spawn.IntervalMS) * time.Millisecond
	out.SpawnSpread = cfg.Spawn.Spread
	out.HoldTimerOnPause = cfg.Spawn.HoldTimerOnPause
	out.Pacer = pacer

	switch v {
	case sim.VariantPinball:
		p := cfg.Pinball
		out.Gravity = p.Gravity
		out.DeflectionForce = p.DeflectionForce
		out.TokenRadius = p.TokenRadius
		out.DampingX = p.DampingX
		out.DampingY = p.DampingY
		out.WallBounciness = p.WallBounciness
		out.SourceRadius = p.Flippers.Radius
		out.SourceStrength = p.Flippers.Force
		out.SourcePower = 1
		out.AngleMin = p.Flippers.AngleMin
		out.AngleMax = p.Flippers.AngleMax

		sc := sim.Scoring{
			BlockPoints:   make(map[sim.BlockKind]int, len(cfg.Scoring.Blocks)),
			LandingBase:   cfg.Scoring.LandingBase,
			BounceBonus:   cfg.Scoring.BounceBonus,
			DustbinPoints: cfg.Scoring.DustbinPoints,
		}
		for name, pts := range cfg.Scoring.Blocks {
			kind, ok := sim.ParseBlockKind(name)
			if !ok {
				return sim.Config{}, fmt.Errorf("gatecloud: unknown block type %q in scoring", name)
			}
			sc.BlockPoints[kind] = pts
		}
		out.Scoring = sc
	default:
		out.Gravity = cfg.Physics.Gravity
		out.DeflectionForce = cfg.Physics.DeflectionForce
		out.TokenRadius = cfg.Physics.TokenRadius
		out.SourceRadius = cfg.Emitters.Radius
		out.SourceStrength = cfg.Emitters.Strength
		out.SourcePower = cfg.Emitters.Power
		out.AngleMin = cfg.Emitters.AngleMin
		out.AngleMax = cfg.Emitters.AngleMax
	}
	return out, nil
}
