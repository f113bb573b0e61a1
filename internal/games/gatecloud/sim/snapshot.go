package sim

import (
	"fmt"

	"github.com/vmihailenco/msgpack/v5"
)

// Snapshot is a serializable summary of a session, stored with run history
// and written by the simulate command.
type Snapshot struct {
	Variant   string          `msgpack:"variant"`
	Status    string          `msgpack:"status"`
	Seed      int64           `msgpack:"seed"`
	Queue     []string        `msgpack:"queue"`
	Spawned   int             `msgpack:"spawned"`
	Target    string          `msgpack:"target"`
	Score     int             `msgpack:"score"`
	Combo     int             `msgpack:"combo"`
	Zones     []ZoneSnapshot  `msgpack:"zones"`
	Dustbin   []string        `msgpack:"dustbin"`
	Tokens    []TokenSnapshot `msgpack:"tokens,omitempty"`
	Hits      map[int]int     `msgpack:"hits,omitempty"`
	Ended     bool            `msgpack:"ended"`
	ElapsedMS int64           `msgpack:"elapsed_ms"`
}

// ZoneSnapshot is one qubit zone in a Snapshot.
type ZoneSnapshot struct {
	ID    string   `msgpack:"id"`
	Gates []string `msgpack:"gates"`
	Label string   `msgpack:"label"`
}

// TokenSnapshot is one in-flight token in a Snapshot.
type TokenSnapshot struct {
	ID   int     `msgpack:"id"`
	Gate string  `msgpack:"gate"`
	X    float64 `msgpack:"x"`
	Y    float64 `msgpack:"y"`
	VX   float64 `msgpack:"vx"`
	VY   float64 `msgpack:"vy"`
}

// TargetMet reports whether every zone shows the target label.
func (s Snapshot) TargetMet() bool {
	if len(s.Zones) == 0 {
		return false
	}
	for _, z := range s.Zones {
		if z.Label != s.Target {
			return false
		}
	}
	return true
}

// Labels returns the zone labels in order.
func (s Snapshot) Labels() []string {
	out := make([]string, len(s.Zones))
	for i, z := range s.Zones {
		out[i] = z.Label
	}
	return out
}

// Snapshot captures the current session.
func (e *Engine) Snapshot() Snapshot {
	s := Snapshot{
		Variant:   e.cfg.Variant.String(),
		Status:    e.status.String(),
		Seed:      e.cfg.Seed,
		Queue:     gateStrings(e.cfg.Queue),
		Spawned:   e.cursor,
		Target:    e.cfg.Target,
		Score:     e.ledger.Score(),
		Combo:     e.ledger.Combo(),
		Dustbin:   gateStrings(e.dustbin.gates),
		Ended:     e.ended,
		ElapsedMS: e.now.Milliseconds(),
	}
	for _, q := range e.qubits {
		s.Zones = append(s.Zones, ZoneSnapshot{ID: q.ID, Gates: gateStrings(q.gates), Label: q.Label()})
	}
	for _, t := range e.tokens {
		s.Tokens = append(s.Tokens, TokenSnapshot{
			ID: int(t.ID), Gate: string(t.Gate),
			X: t.Pos.X, Y: t.Pos.Y, VX: t.Vel.X, VY: t.Vel.Y,
		})
	}
	for _, o := range e.obstacles {
		if o.Hits == 0 {
			continue
		}
		if s.Hits == nil {
			s.Hits = make(map[int]int)
		}
		s.Hits[int(o.ID)] = o.Hits
	}
	return s
}

// EncodeSnapshot serializes a snapshot with msgpack.
func EncodeSnapshot(s Snapshot) ([]byte, error) {
	b, err := msgpack.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("sim: encode snapshot: %w", err)
	}
	return b, nil
}

// DecodeSnapshot parses a msgpack snapshot.
func DecodeSnapshot(b []byte) (Snapshot, error) {
	var s Snapshot
	if err := msgpack.Unmarshal(b, &s); err != nil {
		return Snapshot{}, fmt.Errorf("sim: decode snapshot: %w", err)
	}
	return s, nil
}

func gateStrings(gates []Gate) []string {
	out := make([]string, len(gates))
	for i, g := range gates {
		out[i] = string(g)
	}
	return out
}
