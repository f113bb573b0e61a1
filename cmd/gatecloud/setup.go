package main

import (
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/gatecloud/internal/config"
	"github.com/vovakirdan/gatecloud/internal/games/gatecloud"
	"github.com/vovakirdan/gatecloud/internal/platform/tui"
)

// setupLogging routes debug output to a file, since the TUI owns the
// terminal while a game runs.
func setupLogging() {
	if !flagDebug {
		return
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	path := filepath.Join(home, ".gatecloud", "debug.log")
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return
	}

	l := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Level:           log.DebugLevel,
		Prefix:          "gatecloud",
	})
	gatecloud.SetLogger(l)
	tui.SetLogger(l)
}

// applyGameFlags hands the CLI settings to the game package before any
// game is created.
func applyGameFlags(difficulty string, level int) {
	gatecloud.SetConfigPath(flagConfig)
	gatecloud.SetDifficultyPreset(difficulty)
	gatecloud.SetStartLevel(level)
}

// levelNames lists the configured level names for the menus.
func levelNames() []string {
	cfg, err := config.LoadGateCloud(flagConfig)
	if err != nil {
		cfg = config.DefaultGateCloudConfig()
	}
	names := make([]string, len(cfg.Levels))
	for i, l := range cfg.Levels {
		names[i] = l.Name
	}
	return names
}
