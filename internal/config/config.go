// Package config provides YAML-based game configuration loading and
// difficulty management for gate cloud.
package config

// GateCloudConfig contains all configuration for both gate cloud variants.
type GateCloudConfig struct {
	Physics    PhysicsConfig    `yaml:"physics"`
	Deflector  DeflectorConfig  `yaml:"deflector"`
	Emitters   EmitterConfig    `yaml:"emitters"`
	Pinball    PinballConfig    `yaml:"pinball"`
	Spawn      SpawnConfig      `yaml:"spawn"`
	Scoring    ScoringConfig    `yaml:"scoring"`
	Levels     []LevelConfig    `yaml:"levels"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// PhysicsConfig defines physics parameters for the deflector variant.
// Distances are field pixels, velocities pixels per tick.
type PhysicsConfig struct {
	Gravity         float64 `yaml:"gravity"`
	DeflectionForce float64 `yaml:"deflection_force"`
	TokenRadius     float64 `yaml:"token_radius"`
}

// DeflectorConfig places the central deflector.
type DeflectorConfig struct {
	Radius float64 `yaml:"radius"`
}

// EmitterConfig defines the two player emitters of the deflector variant.
type EmitterConfig struct {
	Radius    float64 `yaml:"radius"`
	Strength  float64 `yaml:"strength"`
	Power     float64 `yaml:"power"`
	InsetX    float64 `yaml:"inset_x"`  // Distance from the side edges
	OffsetY   float64 `yaml:"offset_y"` // Distance above the landing line
	AngleMin  float64 `yaml:"angle_min"`
	AngleMax  float64 `yaml:"angle_max"`
	AngleStep float64 `yaml:"angle_step"` // Degrees per key press
}

// PinballConfig defines the pinball variant.
type PinballConfig struct {
	Gravity         float64       `yaml:"gravity"`
	DeflectionForce float64       `yaml:"deflection_force"`
	TokenRadius     float64       `yaml:"token_radius"`
	DampingX        float64       `yaml:"damping_x"`
	DampingY        float64       `yaml:"damping_y"`
	WallBounciness  float64       `yaml:"wall_bounciness"`
	Flippers        FlipperConfig `yaml:"flippers"`
	Blocks          []BlockConfig `yaml:"blocks"`
}

// FlipperConfig defines the pinball flippers.
type FlipperConfig struct {
	Radius    float64 `yaml:"radius"`
	Force     float64 `yaml:"force"`
	BaseAngle float64 `yaml:"base_angle"` // Left flipper leans right by this much, right mirrors it
	AngleMin  float64 `yaml:"angle_min"`
	AngleMax  float64 `yaml:"angle_max"`
	AngleStep float64 `yaml:"angle_step"`
}

// BlockConfig places a quantum block. X and Y are fractions of the field.
type BlockConfig struct {
	Type string  `yaml:"type"`
	X    float64 `yaml:"x"`
	Y    float64 `yaml:"y"`
	Size float64 `yaml:"size"` // Diameter in field pixels
}

// SpawnConfig defines how gates enter the field.
type SpawnConfig struct {
	IntervalMS       int     `yaml:"interval_ms"`
	Spread           float64 `yaml:"spread"`
	HoldTimerOnPause bool    `yaml:"hold_timer_on_pause"`
}

// ScoringConfig defines pinball points.
type ScoringConfig struct {
	Blocks        map[string]int `yaml:"blocks"` // Points per block type, "plain" for untyped
	LandingBase   int            `yaml:"landing_base"`
	BounceBonus   int            `yaml:"bounce_bonus"`
	DustbinPoints int            `yaml:"dustbin_points"`
}

// LevelConfig is one playable level.
type LevelConfig struct {
	Name   string   `yaml:"name"`
	Queue  []string `yaml:"queue"`
	Target string   `yaml:"target"`
	Qubits int      `yaml:"qubits"`
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	IntervalReduction float64 `yaml:"interval_reduction"` // Fraction of the spawn interval removed at max difficulty
	MinIntervalMS     int     `yaml:"min_interval_ms"`
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset maps a CLI string to a preset. Unknown strings yield "".
func ParsePreset(s string) DifficultyPreset {
	switch p := DifficultyPreset(s); p {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p
	default:
		return ""
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}

// Level returns the level at index i, clamped to the configured range.
func (c GateCloudConfig) Level(i int) LevelConfig {
	if len(c.Levels) == 0 {
		return DefaultLevel()
	}
	if i < 0 {
		i = 0
	}
	if i >= len(c.Levels) {
		i = len(c.Levels) - 1
	}
	return c.Levels[i]
}
