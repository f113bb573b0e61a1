// Package gatecloud adapts the gate cloud simulation to the arcade platform:
// it maps input actions to engine commands, projects the terminal into a
// layout snapshot, turns engine events into effect tickets and renders.
package gatecloud

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/gatecloud/internal/config"
	"github.com/vovakirdan/gatecloud/internal/core"
	"github.com/vovakirdan/gatecloud/internal/games/gatecloud/sim"
	"github.com/vovakirdan/gatecloud/internal/registry"
)

// Registry IDs.
const (
	IDDeflector = "gatecloud"
	IDPinball   = "gatecloud_pinball"
)

// Source handles shared by both variants.
const (
	SourceLeft  sim.SourceID = 0
	SourceRight sim.SourceID = 1
)

// holdTicks is how long one key press keeps a source active. Terminals send
// repeats while a key is held, which keeps extending the hold.
const holdTicks = 12

// messageTicks is how long a status message stays in the footer.
const messageTicks = 180

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// startLevel is the zero-based level chosen via CLI or menu
var startLevel int

// logger receives engine debug tracing
var logger = log.New(io.Discard)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset.
func SetDifficultyPreset(preset string) {
	difficultyPreset = config.ParsePreset(preset)
}

// SetStartLevel sets the zero-based level index.
func SetStartLevel(level int) {
	startLevel = level
}

// SetLogger sets the logger used for engine tracing.
func SetLogger(l *log.Logger) {
	if l != nil {
		logger = l
	}
}

// Game implements registry.Game on top of the simulation engine.
type Game struct {
	variant sim.Variant

	engine     *sim.Engine
	runtime    core.RuntimeConfig
	cfg        config.GateCloudConfig
	level      config.LevelConfig
	levelIndex int
	difficulty *config.DifficultyManager
	effects    Effects

	ticks   int
	tickDur time.Duration
	holds   map[sim.SourceID]int
	angles  map[sim.SourceID]float64

	message      string
	messageColor core.Color
	messageUntil int
	lastCheck    *sim.TargetCheckEvent
	lastEvents   []sim.Event

	screenTooSmall bool
	err            error
}

// New creates the deflector variant.
func New() *Game {
	return &Game{variant: sim.VariantDeflector}
}

// NewPinball creates the pinball variant.
func NewPinball() *Game {
	return &Game{variant: sim.VariantPinball}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	if g.variant == sim.VariantPinball {
		return IDPinball
	}
	return IDDeflector
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	if g.variant == sim.VariantPinball {
		return "Gate Cloud (Pinball)"
	}
	return "Gate Cloud"
}

// Reset loads configuration and starts a fresh, stopped session.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.err = nil

	cfg, err := config.LoadGateCloud(configPath)
	if err != nil {
		logger.Warn("config load failed, using defaults", "err", err)
		cfg = config.DefaultGateCloudConfig()
	}
	if difficultyPreset != "" {
		config.ApplyPreset(&cfg, difficultyPreset)
	}
	g.cfg = cfg

	g.levelIndex = startLevel
	if runtime.Level > 0 {
		g.levelIndex = runtime.Level
	}
	g.levelIndex = core.Clamp(g.levelIndex, 0, max(len(cfg.Levels)-1, 0))
	g.level = cfg.Level(g.levelIndex)

	g.difficulty = config.NewDifficultyManager(cfg.Difficulty)

	g.tickDur = time.Second / 60
	if runtime.TickRate > 0 {
		g.tickDur = time.Second / time.Duration(runtime.TickRate)
	}
	g.ticks = 0
	g.holds = make(map[sim.SourceID]int)
	g.angles = make(map[sim.SourceID]float64)
	g.effects.Clear()
	g.message = ""
	g.lastCheck = nil

	g.screenTooSmall = runtime.ScreenW < MinScreenW || runtime.ScreenH < MinScreenH

	var pacer sim.Pacer
	if g.difficulty.IsEnabled() {
		pacer = func(base time.Duration, score int) time.Duration {
			return g.difficulty.SpawnInterval(base, score, g.ticks)
		}
	}
	ecfg, err := EngineConfig(cfg, g.variant, g.level, runtime.Seed, pacer)
	if err != nil {
		g.err = err
		ecfg = sim.DefaultConfig(g.variant)
		ecfg.Seed = runtime.Seed
	}
	g.engine = sim.New(ecfg, sim.LayoutFunc(g.layout), sim.WithLogger(logger))
}

func (g *Game) layout() sim.Layout {
	return buildLayout(g.cfg, g.variant, g.level.Qubits, g.runtime.ScreenW, g.runtime.ScreenH)
}

// Resize relayouts the field without losing the session.
func (g *Game) Resize(width, height int) {
	g.runtime.ScreenW = width
	g.runtime.ScreenH = height
	g.screenTooSmall = width < MinScreenW || height < MinScreenH
	if g.engine != nil {
		g.engine.Send(sim.RefreshLayout{})
	}
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.screenTooSmall {
		g.lastEvents = nil
		return core.StepResult{State: g.State()}
	}

	g.releaseHolds()
	g.handleInput(in)

	g.ticks++
	g.engine.Tick(time.Duration(g.ticks) * g.tickDur)

	events := g.engine.DrainEvents()
	g.lastEvents = events
	g.effects.Observe(events, g.ticks)
	g.handleEvents(events)
	g.effects.Expire(g.ticks)

	if g.messageUntil < g.ticks {
		g.message = ""
	}

	return core.StepResult{State: g.State()}
}

func (g *Game) releaseHolds() {
	for id, left := range g.holds {
		if left <= 0 {
			continue
		}
		left--
		g.holds[id] = left
		if left == 0 {
			g.engine.Send(sim.SetSourceActive{ID: id, Active: false})
		}
	}
}

func (g *Game) handleInput(in core.InputFrame) {
	if in.Has(core.ActionStartPause) {
		if g.engine.Status() == sim.StatusRunning {
			g.engine.Send(sim.Pause{})
		} else {
			g.engine.Send(sim.Start{})
		}
	}
	if in.Has(core.ActionRestart) {
		g.engine.Send(sim.Reset{})
		g.effects.Clear()
		g.lastCheck = nil
		g.holds = make(map[sim.SourceID]int)
	}
	if in.Has(core.ActionCheck) {
		g.engine.Send(sim.CheckTarget{})
	}

	if in.Has(core.ActionFireLeft) {
		g.hold(SourceLeft)
	}
	if in.Has(core.ActionFireRight) {
		g.hold(SourceRight)
	}

	step := g.angleStep()
	if in.Has(core.ActionLeftAngleDn) {
		g.turn(SourceLeft, -step)
	}
	if in.Has(core.ActionLeftAngleUp) {
		g.turn(SourceLeft, step)
	}
	if in.Has(core.ActionRightAngleDn) {
		g.turn(SourceRight, -step)
	}
	if in.Has(core.ActionRightAngleUp) {
		g.turn(SourceRight, step)
	}
}

func (g *Game) hold(id sim.SourceID) {
	if g.holds[id] == 0 {
		g.engine.Send(sim.SetSourceActive{ID: id, Active: true})
	}
	g.holds[id] = holdTicks
}

func (g *Game) turn(id sim.SourceID, delta float64) {
	lo, hi := g.cfg.Emitters.AngleMin, g.cfg.Emitters.AngleMax
	if g.variant == sim.VariantPinball {
		lo, hi = g.cfg.Pinball.Flippers.AngleMin, g.cfg.Pinball.Flippers.AngleMax
	}
	a := core.ClampF(g.angles[id]+delta, lo, hi)
	g.angles[id] = a
	g.engine.Send(sim.SetSourceAngle{ID: id, Degrees: a})
}

func (g *Game) angleStep() float64 {
	step := g.cfg.Emitters.AngleStep
	if g.variant == sim.VariantPinball {
		step = g.cfg.Pinball.Flippers.AngleStep
	}
	if step <= 0 {
		step = 5
	}
	return step
}

func (g *Game) handleEvents(events []sim.Event) {
	for _, ev := range events {
		switch ev := ev.(type) {
		case sim.TargetCheckEvent:
			check := ev
			g.lastCheck = &check
			if ev.Passed {
				g.say(fmt.Sprintf("Target reached: every qubit is %s", ev.Target), core.ColorGreen)
			} else {
				g.say(fmt.Sprintf("Not yet: %v, target %s", ev.Labels, ev.Target), core.ColorYellow)
			}
		case sim.GameEndedEvent:
			g.say("All gates dropped. C to check, R to reset", core.ColorCyan)
		}
	}
}

func (g *Game) say(msg string, c core.Color) {
	g.message = msg
	g.messageColor = c
	g.messageUntil = g.ticks + messageTicks
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.engine == nil {
		return core.GameState{}
	}
	return core.GameState{
		Score:    g.engine.Score(),
		GameOver: g.engine.Ended(),
		Paused:   g.engine.Status() == sim.StatusPaused,
	}
}

// LastEvents returns the events produced by the most recent Step.
func (g *Game) LastEvents() []sim.Event {
	return g.lastEvents
}

// Engine exposes the underlying simulation, mainly for tests and tooling.
func (g *Game) Engine() *sim.Engine {
	return g.engine
}

// Record summarizes the run for the history table.
func (g *Game) Record() (registry.RunRecord, error) {
	snap := g.engine.Snapshot()
	blob, err := sim.EncodeSnapshot(snap)
	if err != nil {
		return registry.RunRecord{}, err
	}
	return registry.RunRecord{
		Level:     g.levelIndex,
		Seed:      g.runtime.Seed,
		Score:     snap.Score,
		TargetMet: snap.TargetMet(),
		Labels:    snap.Labels(),
		Dustbin:   len(snap.Dustbin),
		Snapshot:  blob,
	}, nil
}

func init() {
	registry.Register(IDDeflector, func() registry.Game { return New() })
	registry.Register(IDPinball, func() registry.Game { return NewPinball() })
}
