package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/gatecloud/internal/core"
	"github.com/vovakirdan/gatecloud/internal/games/gatecloud"
	"github.com/vovakirdan/gatecloud/internal/games/gatecloud/sim"
	"github.com/vovakirdan/gatecloud/internal/registry"
	"github.com/vovakirdan/gatecloud/internal/storage"
)

var (
	flagSimVariant    string
	flagSimLevel      int
	flagSimDifficulty string
	flagSimTicks      int
	flagSimPulse      int
	flagSimCols       int
	flagSimRows       int
	flagSimCheck      bool
	flagSimOut        string
	flagSimRecord     bool
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run a session without the terminal UI",
	Long: `Runs one session headless on a virtual terminal and logs every event.

With --pulse N the left source fires every N ticks and the right source
half a period later; without it the gates fall under gravity alone.

Examples:
  gatecloud simulate --seed 42
  gatecloud simulate --variant gatecloud_pinball --pulse 40 --check
  gatecloud simulate --seed 7 --out run.msgpack --record`,
	RunE: runSimulate,
}

func init() {
	simulateCmd.Flags().StringVar(&flagSimVariant, "variant", gatecloud.IDDeflector, "Variant to simulate")
	simulateCmd.Flags().IntVar(&flagSimLevel, "level", 1, "Level number (1-based)")
	simulateCmd.Flags().StringVar(&flagSimDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	simulateCmd.Flags().IntVar(&flagSimTicks, "ticks", 60*60*5, "Maximum ticks to run")
	simulateCmd.Flags().IntVar(&flagSimPulse, "pulse", 0, "Fire the sources every N ticks (0 = never)")
	simulateCmd.Flags().IntVar(&flagSimCols, "cols", 100, "Virtual terminal width")
	simulateCmd.Flags().IntVar(&flagSimRows, "rows", 32, "Virtual terminal height")
	simulateCmd.Flags().BoolVar(&flagSimCheck, "check", false, "Check the target state when the run ends")
	simulateCmd.Flags().StringVar(&flagSimOut, "out", "", "Write the final snapshot (msgpack) to this file")
	simulateCmd.Flags().BoolVar(&flagSimRecord, "record", false, "Save the run to the history database")
}

func runSimulate(_ *cobra.Command, _ []string) error {
	level := log.InfoLevel
	if flagDebug {
		level = log.DebugLevel
	}
	logger := log.NewWithOptions(os.Stderr, log.Options{
		Level:  level,
		Prefix: "simulate",
	})
	gatecloud.SetLogger(logger)

	cfg := core.RuntimeConfig{
		ScreenW:  flagSimCols,
		ScreenH:  flagSimRows,
		TickRate: flagFPS,
		Seed:     flagSeed,
		Level:    max(flagSimLevel-1, 0),
	}
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = 60
	}
	if cfg.ScreenW < gatecloud.MinScreenW || cfg.ScreenH < gatecloud.MinScreenH {
		return fmt.Errorf("virtual terminal must be at least %dx%d", gatecloud.MinScreenW, gatecloud.MinScreenH)
	}
	applyGameFlags(flagSimDifficulty, cfg.Level)

	created, err := registry.Create(flagSimVariant)
	if err != nil {
		return err
	}
	game, ok := created.(*gatecloud.Game)
	if !ok {
		return fmt.Errorf("%s cannot be simulated", flagSimVariant)
	}
	game.Reset(cfg)
	logger.Info("session", "variant", game.Title(), "seed", cfg.Seed, "level", cfg.Level+1,
		"queue", game.Engine().Queue(), "target", game.Engine().Target())

	in := core.NewInputFrame()
	in.Set(core.ActionStartPause)
	ticks := 0
	for ; ticks < flagSimTicks; ticks++ {
		if flagSimPulse > 0 {
			if ticks%flagSimPulse == 0 {
				in.Set(core.ActionFireLeft)
			}
			if ticks%flagSimPulse == flagSimPulse/2 {
				in.Set(core.ActionFireRight)
			}
		}

		res := game.Step(in)
		in.Clear()
		logEvents(logger, game.LastEvents())

		if res.State.GameOver {
			break
		}
	}
	if !game.State().GameOver {
		logger.Warn("tick limit reached before the queue emptied", "ticks", ticks)
	}

	if flagSimCheck {
		in.Set(core.ActionCheck)
		game.Step(in)
		logEvents(logger, game.LastEvents())
	}

	snap := game.Engine().Snapshot()
	printSnapshot(snap)

	if flagSimOut != "" {
		blob, err := sim.EncodeSnapshot(snap)
		if err != nil {
			return err
		}
		if err := os.WriteFile(flagSimOut, blob, 0o644); err != nil {
			return fmt.Errorf("write snapshot: %w", err)
		}
		logger.Info("snapshot written", "path", flagSimOut, "bytes", len(blob))
	}

	if flagSimRecord {
		store, err := storage.Open(flagDBPath)
		if err != nil {
			return err
		}
		defer store.Close()

		rec, err := game.Record()
		if err != nil {
			return err
		}
		id, err := store.SaveRun(game.ID(), rec)
		if err != nil {
			return err
		}
		if rec.Score > 0 {
			if _, err := store.SaveScore(game.ID(), rec.Score); err != nil {
				return err
			}
		}
		logger.Info("run recorded", "id", id)
	}

	return nil
}

func logEvents(logger *log.Logger, events []sim.Event) {
	for _, ev := range events {
		switch ev := ev.(type) {
		case sim.SpawnEvent:
			logger.Info("spawn", "at", ev.At, "gate", ev.Gate, "n", fmt.Sprintf("%d/%d", ev.Index, ev.Total), "x", int(ev.Pos.X))
		case sim.CollisionEvent:
			logger.Debug("collision", "at", ev.At, "token", ev.Token, "obstacle", ev.Obstacle, "kind", ev.Kind, "points", ev.Points)
		case sim.WallBounceEvent:
			logger.Debug("wall", "at", ev.At, "token", ev.Token)
		case sim.ZoneLandedEvent:
			logger.Info("landed", "at", ev.At, "gate", ev.Gate, "zone", ev.Zone, "label", ev.Label, "points", ev.Points)
		case sim.DustbinEvent:
			logger.Info("dustbin", "at", ev.At, "gate", ev.Gate, "count", ev.Count)
		case sim.MissEvent:
			logger.Info("miss", "at", ev.At, "gate", ev.Gate, "x", int(ev.Pos.X))
		case sim.TargetCheckEvent:
			logger.Info("check", "passed", ev.Passed, "target", ev.Target, "labels", ev.Labels)
		case sim.GameEndedEvent:
			logger.Info("ended", "at", ev.At, "score", ev.Score, "labels", ev.Labels, "dustbin", ev.Dustbin)
		case sim.StatusChangedEvent:
			logger.Debug("status", "from", ev.From, "to", ev.To)
		}
	}
}
