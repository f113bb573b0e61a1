package config

import (
	_ "embed"
)

//go:embed defaults/gatecloud.yaml
var defaultGateCloudYAML []byte

// DefaultLevel returns the first built-in level.
func DefaultLevel() LevelConfig {
	return LevelConfig{
		Name:   "First Flip",
		Queue:  []string{"X", "H", "Z", "Y", "X", "H"},
		Target: "|1⟩",
		Qubits: 1,
	}
}

// DefaultGateCloudConfig returns the default gate cloud configuration.
func DefaultGateCloudConfig() GateCloudConfig {
	return GateCloudConfig{
		Physics: PhysicsConfig{
			Gravity:         0.3,
			DeflectionForce: 5,
			TokenRadius:     20,
		},
		Deflector: DeflectorConfig{
			Radius: 75,
		},
		Emitters: EmitterConfig{
			Radius:    200,
			Strength:  0.5,
			Power:     1.0,
			InsetX:    120,
			OffsetY:   40,
			AngleMin:  -90,
			AngleMax:  90,
			AngleStep: 5,
		},
		Pinball: PinballConfig{
			Gravity:         0.25,
			DeflectionForce: 6,
			TokenRadius:     15,
			DampingX:        0.995,
			DampingY:        0.998,
			WallBounciness:  0.7,
			Flippers: FlipperConfig{
				Radius:    180,
				Force:     0.8,
				BaseAngle: 30,
				AngleMin:  -45,
				AngleMax:  45,
				AngleStep: 5,
			},
			Blocks: []BlockConfig{
				{Type: "H", X: 0.30, Y: 0.30, Size: 40},
				{Type: "X", X: 0.70, Y: 0.30, Size: 40},
				{Type: "Z", X: 0.50, Y: 0.45, Size: 40},
				{Type: "P", X: 0.20, Y: 0.55, Size: 30},
				{Type: "CNOT", X: 0.80, Y: 0.55, Size: 40},
				{Type: "M", X: 0.50, Y: 0.68, Size: 30},
			},
		},
		Spawn: SpawnConfig{
			IntervalMS: 2000,
			Spread:     200,
		},
		Scoring: ScoringConfig{
			Blocks: map[string]int{
				"plain": 10,
				"H":     30,
				"X":     20,
				"Z":     25,
				"P":     15,
				"CNOT":  50,
				"M":     40,
			},
			LandingBase:   100,
			BounceBonus:   25,
			DustbinPoints: 5,
		},
		Levels: []LevelConfig{DefaultLevel()},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 2000,
			},
			Scaling: ScalingConfig{
				IntervalReduction: 0.5,
				MinIntervalMS:     600,
			},
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultGateCloudYAML
}
