package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/gatecloud/internal/core"
	"github.com/vovakirdan/gatecloud/internal/platform/tui"
	"github.com/vovakirdan/gatecloud/internal/registry"
	"github.com/vovakirdan/gatecloud/internal/storage"
)

var (
	flagDifficulty string
	flagLevel      int
)

var playCmd = &cobra.Command{
	Use:   "play <variant>",
	Short: "Play a variant",
	Long: `Start playing the specified variant.

Controls:
  Space/P      - Start, pause, resume
  F / J        - Hold the left / right emitter (flipper)
  A / D        - Rotate the left source
  Left / Right - Rotate the right source
  C            - Check the target state
  R            - Reset the board (new seed after the run ends)
  Ctrl+S       - Save a screenshot
  B/Esc        - Leave
  Q/Ctrl+C     - Quit

Difficulty options:
  easy   - Slower drops, stronger sources
  normal - Config values with score-based pacing
  hard   - Faster drops, weaker sources
  fixed  - No pacing, drops stay at the configured interval

Examples:
  gatecloud play gatecloud
  gatecloud play gatecloud_pinball --difficulty hard
  gatecloud play gatecloud --level 3
  gatecloud play gatecloud --config ./my-levels.yaml`,
	Args: cobra.ExactArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	playCmd.Flags().IntVar(&flagLevel, "level", 1, "Level number (1-based)")
}

func runPlay(cmd *cobra.Command, args []string) {
	gameID := args[0]

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'gatecloud list' to see available variants.")
		os.Exit(1)
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
		Level:    max(flagLevel-1, 0),
	}
	applyGameFlags(flagDifficulty, cfg.Level)

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	runErr := tui.Run(game, store, cfg)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
