package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMultiplier(t *testing.T) {
	tests := []struct {
		combo int
		want  int
	}{
		{0, 1},
		{4, 1},
		{5, 1},
		{7, 1},
		{10, 2},
		{12, 2},
		{25, 5},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Multiplier(tt.combo), "combo %d", tt.combo)
	}
}

func TestLedgerAwardUsesCombo(t *testing.T) {
	l := Ledger{combo: 7}
	assert.Equal(t, 30, l.Award(30))
	assert.Equal(t, 30, l.Score())

	l = Ledger{combo: 12}
	assert.Equal(t, 60, l.Award(30))
}

func TestLedgerCollideIncrementsFirst(t *testing.T) {
	l := Ledger{combo: 9}
	gained := l.Collide(10)
	assert.Equal(t, 10, l.Combo())
	assert.Equal(t, 20, gained)
}

func TestLedgerMissAndReset(t *testing.T) {
	var l Ledger
	for i := 0; i < 6; i++ {
		l.Collide(10)
	}
	score := l.Score()
	l.Miss()
	assert.Equal(t, 0, l.Combo())
	assert.Equal(t, score, l.Score(), "a miss never takes points away")

	assert.Equal(t, 0, l.Award(-5))
	assert.Equal(t, score, l.Score())

	l.Reset()
	assert.Zero(t, l.Score())
	assert.Zero(t, l.Combo())
}
