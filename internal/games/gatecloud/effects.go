package gatecloud

import (
	"strconv"

	"github.com/vovakirdan/gatecloud/internal/core"
	"github.com/vovakirdan/gatecloud/internal/games/gatecloud/sim"
)

// EffectKind is a kind of transient visual cue.
type EffectKind int

const (
	EffectCollision EffectKind = iota
	EffectWall
	EffectLanded
	EffectDustbin
	EffectMiss
)

// Ticket is a short-lived effect. It expires on the presentation frame
// clock and never feeds back into the engine.
type Ticket struct {
	Kind     EffectKind
	Pos      core.Vec
	Zone     string         // Landed effects
	Obstacle sim.ObstacleID // Collision effects
	Text     string
	Expires  int // Frame after which the ticket is gone
}

// effectTTL is how many frames each effect stays visible.
var effectTTL = map[EffectKind]int{
	EffectCollision: 12,
	EffectWall:      8,
	EffectLanded:    30,
	EffectDustbin:   30,
	EffectMiss:      24,
}

// Effects converts engine events into tickets and expires them.
type Effects struct {
	tickets []Ticket
}

// Observe turns events drained at frame into tickets.
func (e *Effects) Observe(events []sim.Event, frame int) {
	for _, ev := range events {
		switch ev := ev.(type) {
		case sim.CollisionEvent:
			e.add(Ticket{Kind: EffectCollision, Pos: ev.Pos, Obstacle: ev.Obstacle, Text: pointsText(ev.Points)}, frame)
		case sim.WallBounceEvent:
			e.add(Ticket{Kind: EffectWall, Pos: ev.Pos}, frame)
		case sim.ZoneLandedEvent:
			e.add(Ticket{Kind: EffectLanded, Zone: ev.Zone, Text: ev.Label}, frame)
		case sim.DustbinEvent:
			e.add(Ticket{Kind: EffectDustbin, Text: string(ev.Gate)}, frame)
		case sim.MissEvent:
			e.add(Ticket{Kind: EffectMiss, Pos: ev.Pos, Text: string(ev.Gate)}, frame)
		}
	}
}

func (e *Effects) add(t Ticket, frame int) {
	t.Expires = frame + effectTTL[t.Kind]
	e.tickets = append(e.tickets, t)
}

// Expire drops every ticket whose expiry lies before frame.
func (e *Effects) Expire(frame int) {
	kept := e.tickets[:0]
	for _, t := range e.tickets {
		if t.Expires >= frame {
			kept = append(kept, t)
		}
	}
	e.tickets = kept
}

// Active returns the live tickets.
func (e *Effects) Active() []Ticket {
	return e.tickets
}

// Clear drops all tickets.
func (e *Effects) Clear() {
	e.tickets = e.tickets[:0]
}

// zoneFlash reports whether a landing effect is live for the zone.
func (e *Effects) zoneFlash(zone string) bool {
	for _, t := range e.tickets {
		if t.Kind == EffectLanded && t.Zone == zone {
			return true
		}
	}
	return false
}

// obstacleFlash reports whether a collision effect is live for the obstacle.
func (e *Effects) obstacleFlash(id sim.ObstacleID) bool {
	for _, t := range e.tickets {
		if t.Kind == EffectCollision && t.Obstacle == id {
			return true
		}
	}
	return false
}

func (e *Effects) binFlash() bool {
	for _, t := range e.tickets {
		if t.Kind == EffectDustbin {
			return true
		}
	}
	return false
}

func pointsText(points int) string {
	if points <= 0 {
		return ""
	}
	return "+" + strconv.Itoa(points)
}
