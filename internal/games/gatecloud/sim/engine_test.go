package sim

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/gatecloud/internal/core"
)

const frame = 16 * time.Millisecond

func testLayout() Layout {
	return Layout{
		Width:    800,
		Height:   600,
		SpawnX:   400,
		SpawnY:   100,
		LandingY: 400,
		Zones: []ZoneSpec{
			{ID: "q0", Box: core.Box{X: 300, Y: 420, W: 200, H: 40}},
		},
		Dustbin: core.Box{X: 600, Y: 420, W: 100, H: 40},
		Sources: []SourceSpec{
			{ID: 0, Pos: core.V(120, 500)},
			{ID: 1, Pos: core.V(680, 500)},
		},
	}
}

func testConfig(v Variant, queue ...Gate) Config {
	cfg := DefaultConfig(v)
	cfg.Queue = queue
	cfg.SpawnSpread = 0
	cfg.SpawnInterval = 10 * time.Millisecond
	return cfg
}

// run ticks the engine n frames after start and returns the last timestamp
// together with every event emitted on the way.
func run(e *Engine, start time.Duration, n int) (time.Duration, []Event) {
	now := start
	var events []Event
	for i := 0; i < n; i++ {
		now += frame
		e.Tick(now)
		events = append(events, e.DrainEvents()...)
	}
	return now, events
}

func count[T Event](events []Event) int {
	n := 0
	for _, ev := range events {
		if _, ok := ev.(T); ok {
			n++
		}
	}
	return n
}

func TestSingleXLandsOnZone(t *testing.T) {
	e := New(testConfig(VariantDeflector, GateX), StaticLayout(testLayout()))
	e.Send(Start{})
	_, events := run(e, 0, 300)

	zones := e.Zones()
	require.Len(t, zones, 1)
	assert.Equal(t, []Gate{GateX}, zones[0].Gates)
	assert.Equal(t, KetOne, zones[0].Label)
	assert.Equal(t, 1, count[ZoneLandedEvent](events))
	assert.Equal(t, StatusStopped, e.Status())
	assert.True(t, e.Ended())
}

func TestXThenHIsSuperposition(t *testing.T) {
	e := New(testConfig(VariantDeflector, GateX, GateH), StaticLayout(testLayout()))
	e.Send(Start{})
	run(e, 0, 400)

	zones := e.Zones()
	require.Len(t, zones, 1)
	assert.Equal(t, []Gate{GateX, GateH}, zones[0].Gates)
	assert.Equal(t, KetPlus, zones[0].Label)
}

func TestCommandsApplyOnNextTick(t *testing.T) {
	e := New(testConfig(VariantDeflector, GateX), StaticLayout(testLayout()))
	e.Send(Start{})
	assert.Equal(t, StatusStopped, e.Status())

	e.Tick(frame)
	assert.Equal(t, StatusRunning, e.Status())

	e.Send(Pause{}, Start{}, Pause{})
	e.Tick(2 * frame)
	assert.Equal(t, StatusPaused, e.Status())
}

func TestGameEndsExactlyOnce(t *testing.T) {
	e := New(testConfig(VariantDeflector, GateX), StaticLayout(testLayout()))
	e.Send(Start{})
	now, events := run(e, 0, 300)
	assert.Equal(t, 1, count[GameEndedEvent](events))

	_, later := run(e, now, 50)
	assert.Zero(t, count[GameEndedEvent](later))

	e.Send(Start{})
	_, later = run(e, now, 5)
	assert.Equal(t, StatusStopped, e.Status(), "an ended run needs a reset")
	assert.Zero(t, count[GameEndedEvent](later))
}

func TestEmptyQueueEndsImmediately(t *testing.T) {
	e := New(testConfig(VariantDeflector), StaticLayout(testLayout()))
	e.Send(Start{})
	_, events := run(e, 0, 3)

	assert.Equal(t, 1, count[GameEndedEvent](events))
	assert.Zero(t, count[SpawnEvent](events))
}

func TestResetClearsBoard(t *testing.T) {
	e := New(testConfig(VariantPinball, GateX), StaticLayout(testLayout()))
	e.Send(Start{})
	now, _ := run(e, 0, 300)
	require.True(t, e.Ended())
	require.NotZero(t, e.Score())

	e.Send(Reset{})
	now, _ = run(e, now, 1)
	assert.Zero(t, e.Score())
	assert.Empty(t, e.Zones()[0].Gates)
	assert.Empty(t, e.Dustbin())
	spawned, total := e.Progress()
	assert.Equal(t, 0, spawned)
	assert.Equal(t, 1, total)

	e.Send(Start{})
	run(e, now, 300)
	assert.Equal(t, KetOne, e.Zones()[0].Label)
}

func TestMissResetsCombo(t *testing.T) {
	layout := testLayout()
	layout.SpawnX = 100
	layout.Obstacles = []ObstacleSpec{
		{ID: 1, Box: core.Box{X: 100, Y: 190, W: 20, H: 20}, Kind: KindPlain},
	}
	e := New(testConfig(VariantPinball, GateX), StaticLayout(layout))
	e.Send(Start{})

	now := time.Duration(0)
	sawCollision := false
	var events []Event
	for i := 0; i < 400; i++ {
		now += frame
		e.Tick(now)
		evs := e.DrainEvents()
		if count[CollisionEvent](evs) > 0 && !sawCollision {
			sawCollision = true
			assert.Equal(t, 1, e.Combo())
		}
		events = append(events, evs...)
	}

	require.True(t, sawCollision)
	assert.Equal(t, 1, count[MissEvent](events))
	assert.Zero(t, e.Combo())
	assert.Equal(t, 10, e.Score())
	assert.Empty(t, e.Zones()[0].Gates)
	assert.Equal(t, 1, e.Obstacles()[0].Hits)
}

func TestPinballLandingBonus(t *testing.T) {
	e := New(testConfig(VariantPinball, GateX), StaticLayout(testLayout()))
	e.Send(Start{})
	_, events := run(e, 0, 300)

	var landed ZoneLandedEvent
	for _, ev := range events {
		if l, ok := ev.(ZoneLandedEvent); ok {
			landed = l
		}
	}
	assert.Equal(t, 100, landed.Points)
	assert.Equal(t, 100, e.Score())
}

func TestDustbinLanding(t *testing.T) {
	layout := testLayout()
	layout.SpawnX = 650
	e := New(testConfig(VariantPinball, GateM), StaticLayout(layout))
	e.Send(Start{})
	_, events := run(e, 0, 300)

	assert.Equal(t, []Gate{GateM}, e.Dustbin())
	assert.Equal(t, 1, count[DustbinEvent](events))
	assert.Equal(t, 5, e.Score())
}

func TestDeflectorHitsOnce(t *testing.T) {
	layout := testLayout()
	layout.Obstacles = []ObstacleSpec{{ID: 1, Box: core.Box{X: 0, Y: 0, W: 20, H: 20}}}
	e := New(testConfig(VariantDeflector), StaticLayout(layout))

	tok := &Token{ID: 1, Pos: core.V(10, 10), Radius: 20, LastHit: NoObstacle}
	e.collide(tok)
	e.collide(tok)
	tok.Pos = core.V(500, 500)
	e.collide(tok)
	tok.Pos = core.V(10, 10)
	e.collide(tok)

	assert.True(t, tok.Deflected)
	assert.Equal(t, 1, e.Obstacles()[0].Hits)
}

func TestPinballLastHitSuppression(t *testing.T) {
	layout := testLayout()
	layout.Obstacles = []ObstacleSpec{{ID: 7, Box: core.Box{X: 0, Y: 0, W: 20, H: 20}, Kind: KindX}}
	e := New(testConfig(VariantPinball), StaticLayout(layout))

	tok := &Token{ID: 1, Pos: core.V(10, 0), Radius: 15, LastHit: NoObstacle}
	e.collide(tok)
	e.collide(tok)
	assert.Equal(t, 1, e.Obstacles()[0].Hits, "contact with the last hit block is suppressed")
	assert.Equal(t, ObstacleID(7), tok.LastHit)

	tok.Pos = core.V(300, 300)
	e.collide(tok)
	assert.Equal(t, NoObstacle, tok.LastHit)

	tok.Pos = core.V(10, 0)
	e.collide(tok)
	assert.Equal(t, 2, e.Obstacles()[0].Hits)
	assert.Equal(t, 2, tok.Bounces)
	assert.Equal(t, 2, e.Combo())
}

func TestWallClampInStep(t *testing.T) {
	layout := testLayout()
	layout.Walls = Walls{MinX: 0, MaxX: 800}
	e := New(testConfig(VariantPinball), StaticLayout(layout))

	tok := &Token{ID: 1, Pos: core.V(790, 100), Vel: core.V(5, 0), Radius: 15, LastHit: NoObstacle}
	e.step(tok)

	assert.Equal(t, 785.0, tok.Pos.X)
	assert.InDelta(t, -5*0.7*0.995, tok.Vel.X, 1e-9)
	assert.Equal(t, 1, count[WallBounceEvent](e.DrainEvents()))
}

func TestSourcesAccumulate(t *testing.T) {
	layout := testLayout()
	layout.Sources = []SourceSpec{
		{ID: 0, Pos: core.V(100, 100)},
		{ID: 1, Pos: core.V(100, 100)},
	}
	cfg := testConfig(VariantDeflector)
	cfg.Gravity = 0
	e := New(cfg, StaticLayout(layout))
	e.Send(SetSourceActive{ID: 0, Active: true}, SetSourceActive{ID: 1, Active: true})
	e.Tick(frame)

	tok := &Token{ID: 1, Pos: core.V(100, 100), Radius: 20, LastHit: NoObstacle}
	e.step(tok)
	assert.InDelta(t, -1.0, tok.Vel.Y, 1e-9)
}

func TestPauseKeepsSpawnBaseline(t *testing.T) {
	cfg := testConfig(VariantDeflector, GateX, GateX)
	cfg.SpawnInterval = time.Second

	e := New(cfg, StaticLayout(testLayout()))
	e.Send(Start{})
	e.Tick(frame)
	e.Send(Pause{})
	e.Tick(500 * time.Millisecond)
	e.Tick(5 * time.Second)
	spawned, _ := e.Progress()
	require.Zero(t, spawned)

	e.Send(Start{})
	e.Tick(5*time.Second + frame)
	spawned, _ = e.Progress()
	assert.Equal(t, 1, spawned, "resume spawns at once when the interval elapsed during the pause")
}

func TestPauseHoldsSpawnTimer(t *testing.T) {
	cfg := testConfig(VariantDeflector, GateX, GateX)
	cfg.SpawnInterval = time.Second
	cfg.HoldTimerOnPause = true

	e := New(cfg, StaticLayout(testLayout()))
	e.Send(Start{})
	e.Tick(frame)
	e.Send(Pause{})
	e.Tick(500 * time.Millisecond)
	e.Tick(5 * time.Second)

	e.Send(Start{})
	e.Tick(5*time.Second + frame)
	spawned, _ := e.Progress()
	assert.Zero(t, spawned)

	e.Tick(5*time.Second + 600*time.Millisecond)
	spawned, _ = e.Progress()
	assert.Equal(t, 1, spawned)
}

func TestLayoutSwapKeepsHistory(t *testing.T) {
	e := New(testConfig(VariantDeflector, GateX), StaticLayout(testLayout()))
	e.Send(Start{})
	now, _ := run(e, 0, 300)

	next := testLayout()
	next.Zones = []ZoneSpec{
		{ID: "q0", Box: core.Box{X: 0, Y: 420, W: 100, H: 40}},
		{ID: "q1", Box: core.Box{X: 200, Y: 420, W: 100, H: 40}},
	}
	e.Send(ProvideLayout{Layout: next})
	run(e, now, 1)

	zones := e.Zones()
	require.Len(t, zones, 2)
	assert.Equal(t, "q0", zones[0].ID)
	assert.Equal(t, 0.0, zones[0].Span.X)
	assert.Equal(t, KetOne, zones[0].Label)
	assert.Empty(t, zones[1].Gates)
}

func TestRefreshLayoutPullsFromProvider(t *testing.T) {
	layout := testLayout()
	e := New(testConfig(VariantDeflector), LayoutFunc(func() Layout { return layout }))
	layout.LandingY = 123
	e.Send(RefreshLayout{})
	e.Tick(frame)
	assert.Equal(t, 123.0, e.Layout().LandingY)
}

func TestCheckTarget(t *testing.T) {
	e := New(testConfig(VariantDeflector, GateX), StaticLayout(testLayout()))
	e.Send(CheckTarget{})
	e.Tick(frame)
	check := e.DrainEvents()[0].(TargetCheckEvent)
	assert.False(t, check.Passed)
	assert.Equal(t, []string{KetZero}, check.Labels)

	e.Send(Start{})
	now, _ := run(e, frame, 300)
	e.Send(CheckTarget{})
	e.Tick(now + frame)
	events := e.DrainEvents()
	require.Len(t, events, 1)
	check = events[0].(TargetCheckEvent)
	assert.True(t, check.Passed)
	assert.Equal(t, KetOne, check.Target)

	empty := New(testConfig(VariantDeflector), nil)
	empty.Send(CheckTarget{})
	empty.Tick(frame)
	assert.False(t, empty.DrainEvents()[0].(TargetCheckEvent).Passed)
}

func TestSourceAngleClampAndUnknownIDs(t *testing.T) {
	e := New(testConfig(VariantPinball), StaticLayout(testLayout()))
	e.Send(
		SetSourceAngle{ID: 0, Degrees: 80},
		SetSourceAngle{ID: 1, Degrees: -80},
		SetSourceAngle{ID: 9, Degrees: 10},
		SetSourceActive{ID: 9, Active: true},
	)
	e.Tick(frame)

	sources := e.Sources()
	assert.Equal(t, 45.0, sources[0].Angle)
	assert.Equal(t, -45.0, sources[1].Angle)
}

func TestDeterministicReplay(t *testing.T) {
	layout := testLayout()
	layout.Walls = Walls{MinX: 0, MaxX: 800}
	layout.Obstacles = []ObstacleSpec{
		{ID: 1, Box: core.Box{X: 360, Y: 200, W: 30, H: 30}, Kind: KindH},
		{ID: 2, Box: core.Box{X: 420, Y: 260, W: 30, H: 30}, Kind: KindCNOT},
		{ID: 3, Box: core.Box{X: 330, Y: 300, W: 30, H: 30}, Kind: KindZ},
	}
	cfg := testConfig(VariantPinball, GateX, GateH, GateZ, GateY, GateX, GateH)
	cfg.SpawnSpread = 200
	cfg.SpawnInterval = 200 * time.Millisecond
	cfg.Seed = 99

	play := func() Snapshot {
		e := New(cfg, StaticLayout(layout))
		e.Send(Start{})
		run(e, 0, 1000)
		return e.Snapshot()
	}

	assert.Equal(t, play(), play())
}

func TestSnapshotRoundTrip(t *testing.T) {
	e := New(testConfig(VariantDeflector, GateX), StaticLayout(testLayout()))
	e.Send(Start{})
	run(e, 0, 300)

	snap := e.Snapshot()
	assert.True(t, snap.TargetMet())

	b, err := EncodeSnapshot(snap)
	require.NoError(t, err)
	got, err := DecodeSnapshot(b)
	require.NoError(t, err)
	assert.Equal(t, snap.Labels(), got.Labels())
	assert.Equal(t, snap.Queue, got.Queue)
	assert.True(t, got.Ended)
}
