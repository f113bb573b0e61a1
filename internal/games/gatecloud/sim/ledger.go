package sim

// ComboStep is how many consecutive collisions raise the multiplier by one.
const ComboStep = 5

// Multiplier returns the score multiplier for a combo count.
func Multiplier(combo int) int {
	if m := combo / ComboStep; m > 1 {
		return m
	}
	return 1
}

// Ledger tracks score and combo for the pinball variant.
// Score never decreases until Reset.
type Ledger struct {
	score int
	combo int
}

// Award adds points scaled by the current multiplier and returns the gain.
// Non-positive points award nothing.
func (l *Ledger) Award(points int) int {
	if points <= 0 {
		return 0
	}
	gained := points * Multiplier(l.combo)
	l.score += gained
	return gained
}

// Collide bumps the combo, then awards the obstacle's points.
func (l *Ledger) Collide(points int) int {
	l.combo++
	return l.Award(points)
}

// Miss breaks the combo.
func (l *Ledger) Miss() {
	l.combo = 0
}

// Reset zeroes score and combo.
func (l *Ledger) Reset() {
	l.score = 0
	l.combo = 0
}

func (l *Ledger) Score() int { return l.score }
func (l *Ledger) Combo() int { return l.combo }
