package sim

import (
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/gatecloud/internal/core"
)

// Status is the session state.
type Status int

const (
	StatusStopped Status = iota
	StatusRunning
	StatusPaused
)

func (s Status) String() string {
	switch s {
	case StatusRunning:
		return "running"
	case StatusPaused:
		return "paused"
	default:
		return "stopped"
	}
}

// Engine runs one gate cloud session. It is not safe for concurrent use.
type Engine struct {
	cfg      Config
	rng      *rand.Rand
	seeded   bool
	provider LayoutProvider
	logger   *log.Logger

	layout    Layout
	qubits    []*Qubit
	dustbin   Dustbin
	obstacles []*Obstacle
	sources   []*ForceSource

	tokens []*Token
	nextID TokenID
	cursor int
	ledger Ledger

	status    Status
	now       time.Duration
	lastSpawn time.Duration
	pausedAt  time.Duration
	ended     bool

	pending []Command
	events  []Event
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger enables debug tracing.
func WithLogger(l *log.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.logger = l
		}
	}
}

// WithRand injects the random source used for spawning and deflection
// jitter. Reset does not reseed an injected source.
func WithRand(r *rand.Rand) Option {
	return func(e *Engine) {
		if r != nil {
			e.rng = r
			e.seeded = false
		}
	}
}

// New creates an engine in the stopped state. The provider may be nil;
// the layout is then empty until ProvideLayout is sent.
func New(cfg Config, provider LayoutProvider, opts ...Option) *Engine {
	e := &Engine{
		cfg:      cfg,
		rng:      rand.New(rand.NewSource(cfg.Seed)),
		seeded:   true,
		provider: provider,
		logger:   log.New(io.Discard),
		nextID:   1,
	}
	e.cfg.Queue = append([]Gate(nil), cfg.Queue...)
	for _, opt := range opts {
		opt(e)
	}
	if provider != nil {
		e.applyLayout(provider.Layout())
	}
	return e
}

// Send queues a command for the next tick.
func (e *Engine) Send(cmds ...Command) {
	e.pending = append(e.pending, cmds...)
}

// Tick advances the session to now, a monotonic timestamp supplied by the
// host. Pending commands are applied first; the field only moves while running.
func (e *Engine) Tick(now time.Duration) {
	e.now = now
	e.drain()

	if e.status != StatusRunning {
		return
	}

	if e.cursor < len(e.cfg.Queue) && now-e.lastSpawn > e.interval() {
		e.spawn()
		e.lastSpawn = now
	}

	for _, t := range e.tokens {
		e.step(t)
	}

	e.land()

	if e.cursor >= len(e.cfg.Queue) && len(e.tokens) == 0 {
		e.setStatus(StatusStopped)
		e.ended = true
		e.emit(GameEndedEvent{
			At:      now,
			Score:   e.ledger.Score(),
			Labels:  e.labels(),
			Dustbin: e.dustbin.Count(),
		})
	}
}

func (e *Engine) interval() time.Duration {
	if e.cfg.Pacer != nil {
		return e.cfg.Pacer(e.cfg.SpawnInterval, e.ledger.Score())
	}
	return e.cfg.SpawnInterval
}

func (e *Engine) drain() {
	// Commands sent while draining wait for the next tick.
	cmds := e.pending
	e.pending = nil
	for _, c := range cmds {
		e.apply(c)
	}
}

func (e *Engine) apply(c Command) {
	switch c := c.(type) {
	case Start:
		e.start()
	case Pause:
		if e.status == StatusRunning {
			e.pausedAt = e.now
			e.setStatus(StatusPaused)
		}
	case Reset:
		e.reset()
	case CheckTarget:
		e.checkTarget()
	case SetSourceAngle:
		if s := e.sourceByID(c.ID); s != nil {
			s.Angle = core.ClampF(c.Degrees, e.cfg.AngleMin, e.cfg.AngleMax)
		} else {
			e.logger.Debug("unknown source", "id", c.ID)
		}
	case SetSourceActive:
		if s := e.sourceByID(c.ID); s != nil {
			s.Active = c.Active
		} else {
			e.logger.Debug("unknown source", "id", c.ID)
		}
	case ProvideLayout:
		e.applyLayout(c.Layout)
	case RefreshLayout:
		if e.provider != nil {
			e.applyLayout(e.provider.Layout())
		}
	}
}

func (e *Engine) start() {
	switch e.status {
	case StatusStopped:
		if e.ended {
			e.logger.Debug("start ignored, run has ended")
			return
		}
		e.lastSpawn = e.now
		e.setStatus(StatusRunning)
	case StatusPaused:
		if e.cfg.HoldTimerOnPause {
			e.lastSpawn += e.now - e.pausedAt
		}
		e.setStatus(StatusRunning)
	}
}

func (e *Engine) reset() {
	if e.seeded {
		e.rng.Seed(e.cfg.Seed)
	}
	e.tokens = nil
	e.nextID = 1
	e.cursor = 0
	e.ledger.Reset()
	for _, q := range e.qubits {
		q.clear()
	}
	e.dustbin.clear()
	for _, o := range e.obstacles {
		o.Hits = 0
	}
	for _, s := range e.sources {
		s.Active = false
	}
	e.lastSpawn = e.now
	e.ended = false
	e.setStatus(StatusStopped)
}

func (e *Engine) checkTarget() {
	labels := e.labels()
	passed := len(labels) > 0
	for _, l := range labels {
		if l != e.cfg.Target {
			passed = false
			break
		}
	}
	e.emit(TargetCheckEvent{
		At:     e.now,
		Passed: passed,
		Target: e.cfg.Target,
		Labels: labels,
		Score:  e.ledger.Score(),
	})
}

func (e *Engine) spawn() {
	g := e.cfg.Queue[e.cursor]
	e.cursor++

	x := e.layout.SpawnX + (e.rng.Float64()-0.5)*e.cfg.SpawnSpread
	t := &Token{
		ID:      e.nextID,
		Gate:    g,
		Pos:     core.V(x, e.layout.SpawnY),
		Radius:  e.cfg.TokenRadius,
		LastHit: NoObstacle,
	}
	e.nextID++
	e.tokens = append(e.tokens, t)

	e.emit(SpawnEvent{At: e.now, Token: t.ID, Gate: g, Pos: t.Pos, Index: e.cursor, Total: len(e.cfg.Queue)})
}

// applyLayout swaps in a new snapshot. Zones, obstacles and sources that
// keep their IDs carry over their gate history, hit counters and settings.
func (e *Engine) applyLayout(l Layout) {
	e.layout = l.clone()

	oldQubits := make(map[string]*Qubit, len(e.qubits))
	for _, q := range e.qubits {
		oldQubits[q.ID] = q
	}
	e.qubits = e.qubits[:0:0]
	for _, z := range l.Zones {
		q, ok := oldQubits[z.ID]
		if !ok {
			q = &Qubit{ID: z.ID}
		}
		q.Span = z.Box
		e.qubits = append(e.qubits, q)
	}
	e.dustbin.Span = l.Dustbin

	oldHits := make(map[ObstacleID]int, len(e.obstacles))
	for _, o := range e.obstacles {
		oldHits[o.ID] = o.Hits
	}
	e.obstacles = e.obstacles[:0:0]
	for _, spec := range l.Obstacles {
		e.obstacles = append(e.obstacles, &Obstacle{
			ID:     spec.ID,
			Center: spec.Box.Center(),
			Radius: spec.effectiveRadius(),
			Kind:   spec.Kind,
			Hits:   oldHits[spec.ID],
		})
	}

	oldSources := make(map[SourceID]*ForceSource, len(e.sources))
	for _, s := range e.sources {
		oldSources[s.ID] = s
	}
	e.sources = e.sources[:0:0]
	for _, spec := range l.Sources {
		s := &ForceSource{
			ID:       spec.ID,
			Radius:   e.cfg.SourceRadius,
			Strength: e.cfg.SourceStrength,
			Power:    e.cfg.SourcePower,
		}
		if old, ok := oldSources[spec.ID]; ok {
			s.Angle = old.Angle
			s.Active = old.Active
		}
		s.Pos = spec.Pos
		s.BaseAngle = spec.BaseAngle
		e.sources = append(e.sources, s)
	}

	e.logger.Debug("layout applied",
		"zones", len(e.qubits), "obstacles", len(e.obstacles), "sources", len(e.sources))
}

func (e *Engine) setStatus(s Status) {
	if s == e.status {
		return
	}
	from := e.status
	e.status = s
	e.logger.Debug("status", "from", from, "to", s)
	e.emit(StatusChangedEvent{At: e.now, From: from, To: s})
}

func (e *Engine) emit(ev Event) {
	e.events = append(e.events, ev)
}

func (e *Engine) labels() []string {
	labels := make([]string, len(e.qubits))
	for i, q := range e.qubits {
		labels[i] = q.Label()
	}
	return labels
}

func (e *Engine) sourceByID(id SourceID) *ForceSource {
	for _, s := range e.sources {
		if s.ID == id {
			return s
		}
	}
	return nil
}

func (e *Engine) obstacleByID(id ObstacleID) *Obstacle {
	for _, o := range e.obstacles {
		if o.ID == id {
			return o
		}
	}
	return nil
}

// DrainEvents returns and clears the events emitted since the last call.
func (e *Engine) DrainEvents() []Event {
	ev := e.events
	e.events = nil
	return ev
}

// Status returns the session state.
func (e *Engine) Status() Status { return e.status }

// Ended reports whether the run finished and needs a Reset before Start.
func (e *Engine) Ended() bool { return e.ended }

// Now returns the timestamp of the last tick.
func (e *Engine) Now() time.Duration { return e.now }

func (e *Engine) Score() int { return e.ledger.Score() }
func (e *Engine) Combo() int { return e.ledger.Combo() }

// Target returns the label every zone must show to pass a check.
func (e *Engine) Target() string { return e.cfg.Target }

// Variant returns the rule set the engine was built with.
func (e *Engine) Variant() Variant { return e.cfg.Variant }

// Progress returns how many gates have spawned out of the queue length.
func (e *Engine) Progress() (spawned, total int) {
	return e.cursor, len(e.cfg.Queue)
}

// Queue returns a copy of the gate queue.
func (e *Engine) Queue() []Gate {
	return append([]Gate(nil), e.cfg.Queue...)
}

// Tokens returns copies of the active tokens.
func (e *Engine) Tokens() []Token {
	out := make([]Token, len(e.tokens))
	for i, t := range e.tokens {
		out[i] = *t
	}
	return out
}

// Zones returns read-only views of the qubit zones in registration order.
func (e *Engine) Zones() []ZoneView {
	out := make([]ZoneView, len(e.qubits))
	for i, q := range e.qubits {
		out[i] = ZoneView{ID: q.ID, Span: q.Span, Gates: q.Gates(), Label: q.Label()}
	}
	return out
}

// Dustbin returns the discarded gates.
func (e *Engine) Dustbin() []Gate {
	return e.dustbin.Gates()
}

// Sources returns copies of the force sources.
func (e *Engine) Sources() []ForceSource {
	out := make([]ForceSource, len(e.sources))
	for i, s := range e.sources {
		out[i] = *s
	}
	return out
}

// Obstacles returns copies of the obstacles.
func (e *Engine) Obstacles() []Obstacle {
	out := make([]Obstacle, len(e.obstacles))
	for i, o := range e.obstacles {
		out[i] = *o
	}
	return out
}

// Layout returns a copy of the current layout snapshot.
func (e *Engine) Layout() Layout {
	return e.layout.clone()
}
