package sim

import (
	"time"

	"github.com/vovakirdan/gatecloud/internal/core"
)

// Event is something observable that happened during a tick.
// The presentation layer drains events and never feeds them back.
type Event interface {
	simEvent()
}

// SpawnEvent is emitted when a token enters the field.
type SpawnEvent struct {
	At    time.Duration
	Token TokenID
	Gate  Gate
	Pos   core.Vec
	Index int // 1-based position in the queue
	Total int
}

// CollisionEvent is emitted when a token hits an obstacle.
type CollisionEvent struct {
	At       time.Duration
	Token    TokenID
	Obstacle ObstacleID
	Kind     BlockKind
	Pos      core.Vec
	Points   int // points awarded, pinball only
}

// WallBounceEvent is emitted when a token bounces off a side wall.
type WallBounceEvent struct {
	At    time.Duration
	Token TokenID
	Pos   core.Vec
}

// ZoneLandedEvent is emitted when a token lands on a qubit zone.
type ZoneLandedEvent struct {
	At     time.Duration
	Token  TokenID
	Zone   string
	Gate   Gate
	Label  string // zone label after the gate was applied
	Points int
}

// DustbinEvent is emitted when a token is discarded.
type DustbinEvent struct {
	At     time.Duration
	Token  TokenID
	Gate   Gate
	Count  int
	Points int
}

// MissEvent is emitted when a token lands outside every zone.
type MissEvent struct {
	At    time.Duration
	Token TokenID
	Gate  Gate
	Pos   core.Vec
}

// TargetCheckEvent reports the outcome of a CheckTarget command.
type TargetCheckEvent struct {
	At     time.Duration
	Passed bool
	Target string
	Labels []string // per zone, in registration order
	Score  int
}

// GameEndedEvent is emitted once when the queue is exhausted and the field is empty.
type GameEndedEvent struct {
	At      time.Duration
	Score   int
	Labels  []string
	Dustbin int
}

// StatusChangedEvent is emitted on every status transition.
type StatusChangedEvent struct {
	At   time.Duration
	From Status
	To   Status
}

func (SpawnEvent) simEvent()         {}
func (CollisionEvent) simEvent()     {}
func (WallBounceEvent) simEvent()    {}
func (ZoneLandedEvent) simEvent()    {}
func (DustbinEvent) simEvent()       {}
func (MissEvent) simEvent()          {}
func (TargetCheckEvent) simEvent()   {}
func (GameEndedEvent) simEvent()     {}
func (StatusChangedEvent) simEvent() {}
