package gatecloud

import (
	"reflect"
	"strings"
	"testing"

	"github.com/vovakirdan/gatecloud/internal/core"
	"github.com/vovakirdan/gatecloud/internal/games/gatecloud/sim"
)

func testRuntime() core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     12345,
	}
}

func frameWith(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return in
}

// playOut starts the run and steps until it ends or the budget runs out.
func playOut(t *testing.T, g *Game, budget int) {
	t.Helper()
	g.Step(frameWith(core.ActionStartPause))
	for i := 0; i < budget; i++ {
		if g.Step(core.NewInputFrame()).State.GameOver {
			return
		}
	}
	t.Fatalf("run did not end within %d ticks", budget)
}

func TestGameDeterminism(t *testing.T) {
	inputs := make([]core.InputFrame, 900)
	for i := range inputs {
		inputs[i] = core.NewInputFrame()
		switch {
		case i == 0:
			inputs[i].Set(core.ActionStartPause)
		case i%40 < 10:
			inputs[i].Set(core.ActionFireLeft)
		case i%97 == 0:
			inputs[i].Set(core.ActionRightAngleUp)
		}
	}

	for _, newGame := range []func() *Game{New, NewPinball} {
		g1 := newGame()
		g1.Reset(testRuntime())
		g2 := newGame()
		g2.Reset(testRuntime())

		for _, in := range inputs {
			g1.Step(in)
			g2.Step(in)
		}

		if !reflect.DeepEqual(g1.Engine().Snapshot(), g2.Engine().Snapshot()) {
			t.Errorf("%s: determinism failed, snapshots differ", g1.ID())
		}
	}
}

func TestStartPauseToggle(t *testing.T) {
	g := New()
	g.Reset(testRuntime())

	want := []sim.Status{sim.StatusRunning, sim.StatusPaused, sim.StatusRunning}
	for i, status := range want {
		g.Step(frameWith(core.ActionStartPause))
		if got := g.Engine().Status(); got != status {
			t.Fatalf("press %d: status = %v, expected %v", i+1, got, status)
		}
	}
	g.Step(frameWith(core.ActionStartPause))
	if !g.State().Paused {
		t.Error("State().Paused should mirror the engine status")
	}
}

func TestFireHoldsSourceForAWhile(t *testing.T) {
	g := New()
	g.Reset(testRuntime())

	g.Step(frameWith(core.ActionFireLeft))
	if !sourceActive(g, SourceLeft) {
		t.Fatal("left source should be active after a press")
	}
	if sourceActive(g, SourceRight) {
		t.Fatal("right source should stay idle")
	}

	for i := 0; i < holdTicks; i++ {
		g.Step(core.NewInputFrame())
	}
	if sourceActive(g, SourceLeft) {
		t.Error("left source should be released once the hold runs out")
	}
}

func sourceActive(g *Game, id sim.SourceID) bool {
	for _, s := range g.Engine().Sources() {
		if s.ID == id {
			return s.Active
		}
	}
	return false
}

func TestAngleKeysClamp(t *testing.T) {
	g := New()
	g.Reset(testRuntime())

	for i := 0; i < 50; i++ {
		g.Step(frameWith(core.ActionLeftAngleUp, core.ActionRightAngleDn))
	}
	for _, s := range g.Engine().Sources() {
		want := g.cfg.Emitters.AngleMax
		if s.ID == SourceRight {
			want = g.cfg.Emitters.AngleMin
		}
		if s.Angle != want {
			t.Errorf("source %d angle = %v, expected %v", s.ID, s.Angle, want)
		}
	}
}

func TestRunEndsAndRecords(t *testing.T) {
	g := New()
	g.Reset(testRuntime())
	playOut(t, g, 5000)

	spawned, total := g.Engine().Progress()
	if spawned != total {
		t.Errorf("spawned %d of %d gates", spawned, total)
	}

	rec, err := g.Record()
	if err != nil {
		t.Fatalf("Record: %v", err)
	}
	if rec.Seed != 12345 || rec.Level != 0 {
		t.Errorf("record seed/level = %d/%d", rec.Seed, rec.Level)
	}
	if len(rec.Labels) != len(g.Engine().Zones()) {
		t.Errorf("record labels = %v", rec.Labels)
	}
	snap, err := sim.DecodeSnapshot(rec.Snapshot)
	if err != nil {
		t.Fatalf("DecodeSnapshot: %v", err)
	}
	if !snap.Ended {
		t.Error("recorded snapshot should be marked as ended")
	}
}

func TestRestartClearsBoard(t *testing.T) {
	g := NewPinball()
	g.Reset(testRuntime())
	playOut(t, g, 5000)

	g.Step(frameWith(core.ActionRestart))
	if g.State().GameOver {
		t.Error("restart should clear the game over state")
	}
	if g.State().Score != 0 {
		t.Errorf("score after restart = %d", g.State().Score)
	}
	if n := len(g.Engine().Dustbin()); n != 0 {
		t.Errorf("dustbin after restart has %d gates", n)
	}
}

func TestResizeKeepsHistory(t *testing.T) {
	g := New()
	g.Reset(testRuntime())
	playOut(t, g, 5000)

	before := g.Engine().Zones()
	g.Resize(120, 40)
	g.Step(core.NewInputFrame())
	after := g.Engine().Zones()

	if len(before) != len(after) {
		t.Fatalf("zone count changed from %d to %d", len(before), len(after))
	}
	for i := range before {
		if !reflect.DeepEqual(before[i].Gates, after[i].Gates) {
			t.Errorf("zone %s history changed: %v -> %v", before[i].ID, before[i].Gates, after[i].Gates)
		}
		if before[i].Span == after[i].Span {
			t.Errorf("zone %s span should follow the new layout", before[i].ID)
		}
	}
}

func TestScreenTooSmall(t *testing.T) {
	g := New()
	rt := testRuntime()
	rt.ScreenW, rt.ScreenH = 40, 12
	g.Reset(rt)

	g.Step(frameWith(core.ActionStartPause))
	if g.Engine().Status() != sim.StatusStopped {
		t.Error("a too-small screen should not advance the engine")
	}

	screen := core.NewScreen(40, 12)
	g.Render(screen)
	if !strings.Contains(screen.String(), "Window too small") {
		t.Error("expected the too-small notice")
	}
}

func TestRenderShowsBoard(t *testing.T) {
	g := New()
	g.Reset(testRuntime())
	g.Step(core.NewInputFrame())

	screen := core.NewScreen(80, 24)
	g.Render(screen)
	out := screen.String()

	for _, want := range []string{"Queue:", "Target: |1⟩", "|0⟩", "bin 0", "Press Space"} {
		if !strings.Contains(out, want) {
			t.Errorf("render is missing %q", want)
		}
	}
}

func TestCheckTargetMessage(t *testing.T) {
	g := New()
	g.Reset(testRuntime())
	g.Step(frameWith(core.ActionCheck))

	if g.lastCheck == nil {
		t.Fatal("check should record its result")
	}
	if g.lastCheck.Passed {
		t.Error("an untouched qubit should not pass a |1⟩ target")
	}
	if !strings.HasPrefix(g.message, "Not yet") {
		t.Errorf("message = %q", g.message)
	}
}

func TestArrowFor(t *testing.T) {
	tests := []struct {
		deg  float64
		want rune
	}{
		{0, '↑'},
		{30, '↗'},
		{-30, '↖'},
		{90, '→'},
		{-90, '←'},
	}
	for _, tt := range tests {
		if got := arrowFor(tt.deg); got != tt.want {
			t.Errorf("arrowFor(%v) = %q, expected %q", tt.deg, got, tt.want)
		}
	}
}
