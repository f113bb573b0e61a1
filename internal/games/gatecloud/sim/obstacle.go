package sim

import (
	"strings"

	"github.com/vovakirdan/gatecloud/internal/core"
)

// ObstacleID is an opaque handle for an obstacle, stable across layouts.
type ObstacleID int

// NoObstacle marks the absence of an obstacle reference.
const NoObstacle ObstacleID = -1

// BlockKind selects how an obstacle deflects a token. Block kinds share
// symbols with gate labels but are a separate vocabulary: a block never
// changes a qubit, and a gate never changes a deflection.
type BlockKind string

const (
	KindPlain BlockKind = ""
	KindH     BlockKind = "H"
	KindX     BlockKind = "X"
	KindZ     BlockKind = "Z"
	KindP     BlockKind = "P"
	KindCNOT  BlockKind = "CNOT"
	KindM     BlockKind = "M"
)

// ParseBlockKind parses a block type. An empty or "plain" string is KindPlain.
func ParseBlockKind(s string) (BlockKind, bool) {
	switch k := BlockKind(strings.ToUpper(strings.TrimSpace(s))); k {
	case KindH, KindX, KindZ, KindP, KindCNOT, KindM:
		return k, true
	case "", "PLAIN":
		return KindPlain, true
	}
	return KindPlain, false
}

func (k BlockKind) String() string {
	if k == KindPlain {
		return "plain"
	}
	return string(k)
}

// Obstacle is a circular collidable.
type Obstacle struct {
	ID     ObstacleID
	Center core.Vec
	Radius float64
	Kind   BlockKind
	Hits   int
}

// touching reports whether a token overlaps the obstacle.
func (o *Obstacle) touching(t *Token) bool {
	return core.Distance(t.Pos, o.Center) < t.Radius+o.Radius
}
