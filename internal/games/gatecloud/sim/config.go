package sim

import "time"

// Variant selects the rule set.
type Variant int

const (
	// VariantDeflector has one deflector, two emitters, no walls and no score.
	VariantDeflector Variant = iota
	// VariantPinball has walls, quantum blocks, flippers and a score ledger.
	VariantPinball
)

func (v Variant) String() string {
	switch v {
	case VariantDeflector:
		return "deflector"
	case VariantPinball:
		return "pinball"
	default:
		return "unknown"
	}
}

// Scoring holds the pinball point table.
type Scoring struct {
	BlockPoints   map[BlockKind]int
	LandingBase   int
	BounceBonus   int
	DustbinPoints int
}

// PointsFor returns the collision points for a block kind.
func (s Scoring) PointsFor(k BlockKind) int {
	return s.BlockPoints[k]
}

// Pacer returns the spawn interval to use given the base interval and the
// current score. It lets difficulty curves live outside the engine.
type Pacer func(base time.Duration, score int) time.Duration

// Config is the engine's injected configuration. Distances are in field
// pixels and velocities in pixels per tick.
type Config struct {
	Variant Variant
	Seed    int64

	Queue  []Gate
	Target string

	Gravity         float64
	DeflectionForce float64
	TokenRadius     float64
	DampingX        float64
	DampingY        float64
	WallBounciness  float64

	SourceRadius   float64
	SourceStrength float64
	SourcePower    float64
	AngleMin       float64
	AngleMax       float64

	SpawnInterval    time.Duration
	SpawnSpread      float64
	HoldTimerOnPause bool
	Pacer            Pacer

	Scoring Scoring
}

// DefaultQueue is the first level's gate queue.
func DefaultQueue() []Gate {
	return []Gate{GateX, GateH, GateZ, GateY, GateX, GateH}
}

// DefaultConfig returns the built-in tuning for a variant.
func DefaultConfig(v Variant) Config {
	cfg := Config{
		Variant:         v,
		Queue:           DefaultQueue(),
		Target:          KetOne,
		Gravity:         0.3,
		DeflectionForce: 5,
		TokenRadius:     20,
		DampingX:        1,
		DampingY:        1,
		WallBounciness:  0.7,
		SourceRadius:    200,
		SourceStrength:  0.5,
		SourcePower:     1,
		AngleMin:        -90,
		AngleMax:        90,
		SpawnInterval:   2 * time.Second,
		SpawnSpread:     200,
	}
	if v == VariantPinball {
		cfg.Gravity = 0.25
		cfg.DeflectionForce = 6
		cfg.TokenRadius = 15
		cfg.DampingX = 0.995
		cfg.DampingY = 0.998
		cfg.SourceRadius = 180
		cfg.SourceStrength = 0.8
		cfg.AngleMin = -45
		cfg.AngleMax = 45
		cfg.Scoring = Scoring{
			BlockPoints: map[BlockKind]int{
				KindPlain: 10,
				KindH:     30,
				KindX:     20,
				KindZ:     25,
				KindP:     15,
				KindCNOT:  50,
				KindM:     40,
			},
			LandingBase:   100,
			BounceBonus:   25,
			DustbinPoints: 5,
		}
	}
	return cfg
}
