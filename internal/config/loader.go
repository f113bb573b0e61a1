package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/gatecloud/internal/games/gatecloud/sim"
)

// ConfigFile is the file name looked up in the config directories.
const ConfigFile = "gatecloud.yaml"

// LoadGateCloud loads gate cloud configuration.
// Search order: customPath -> ~/.gatecloud/configs/gatecloud.yaml -> ./configs/gatecloud.yaml -> embedded default
// Files are layered over the defaults, so partial files are fine.
func LoadGateCloud(customPath string) (GateCloudConfig, error) {
	cfg, err := load(customPath)
	if err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func load(customPath string) (GateCloudConfig, error) {
	cfg := DefaultGateCloudConfig()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("config: read %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("config: parse %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath(ConfigFile); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err == nil {
				return cfg, nil
			}
			cfg = DefaultGateCloudConfig()
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", ConfigFile)); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			return cfg, nil
		}
		cfg = DefaultGateCloudConfig()
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultGateCloudYAML, &cfg); err != nil {
		return DefaultGateCloudConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".gatecloud", "configs", filename)
}

// Validate checks levels, block types and score keys.
func (c GateCloudConfig) Validate() error {
	if len(c.Levels) == 0 {
		return fmt.Errorf("config: no levels defined")
	}
	for i, lvl := range c.Levels {
		if len(lvl.Queue) == 0 {
			return fmt.Errorf("config: level %d (%s): empty gate queue", i+1, lvl.Name)
		}
		if _, bad := sim.ParseQueue(lvl.Queue); bad >= 0 {
			return fmt.Errorf("config: level %d (%s): unknown gate %q", i+1, lvl.Name, lvl.Queue[bad])
		}
		if lvl.Target != "" && !sim.ValidLabel(lvl.Target) {
			return fmt.Errorf("config: level %d (%s): bad target label %q", i+1, lvl.Name, lvl.Target)
		}
		if lvl.Qubits < 0 {
			return fmt.Errorf("config: level %d (%s): negative qubit count", i+1, lvl.Name)
		}
	}
	for i, b := range c.Pinball.Blocks {
		if _, ok := sim.ParseBlockKind(b.Type); !ok {
			return fmt.Errorf("config: pinball block %d: unknown type %q", i+1, b.Type)
		}
	}
	for k := range c.Scoring.Blocks {
		if _, ok := sim.ParseBlockKind(k); !ok {
			return fmt.Errorf("config: scoring: unknown block type %q", k)
		}
	}
	if c.Spawn.IntervalMS <= 0 {
		return fmt.Errorf("config: spawn interval must be positive, got %dms", c.Spawn.IntervalMS)
	}
	return nil
}

// ApplyPreset modifies the config based on a difficulty preset.
func ApplyPreset(cfg *GateCloudConfig, preset DifficultyPreset) {
	if preset == DifficultyFixed {
		cfg.Difficulty.Enabled = false
	} else {
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}

	// Adjust gameplay based on difficulty
	switch preset {
	case DifficultyEasy:
		cfg.Spawn.IntervalMS = 2600
		cfg.Emitters.Power = 1.3
		cfg.Pinball.Flippers.Force = 1.0
	case DifficultyHard:
		cfg.Spawn.IntervalMS = 1400
		cfg.Emitters.Power = 0.8
		cfg.Pinball.Flippers.Force = 0.6
	}
}
