package sim

import "github.com/vovakirdan/gatecloud/internal/core"

// TokenID is an opaque handle for a falling token.
type TokenID int

// Token is a falling gate. Pos is the token centre.
type Token struct {
	ID     TokenID
	Gate   Gate
	Pos    core.Vec
	Vel    core.Vec
	Radius float64

	// Deflected latches after the first obstacle hit (deflector variant).
	Deflected bool
	// Bounces counts obstacle hits (pinball variant).
	Bounces int
	// LastHit suppresses immediate re-collision with the same obstacle.
	LastHit ObstacleID
}
