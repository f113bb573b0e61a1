package sim

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFoldPauliAlternates(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for trial := 0; trial < 200; trial++ {
		n := rng.Intn(12)
		gates := make([]Gate, n)
		for i := range gates {
			if rng.Intn(2) == 0 {
				gates[i] = GateX
			} else {
				gates[i] = GateY
			}
		}

		want := KetZero
		if n%2 == 1 {
			want = KetOne
		}
		assert.Equal(t, want, DisplayLabel(gates), "sequence %v", gates)
	}
}

func TestFoldHadamard(t *testing.T) {
	assert.Equal(t, KetPlus, DisplayLabel([]Gate{GateH}))
	assert.Equal(t, KetPlus, DisplayLabel([]Gate{GateX, GateH}))
	assert.Equal(t, KetPlus, DisplayLabel([]Gate{GateH, GateH}), "H on superposition is a no-op")
	assert.Equal(t, KetPlus, DisplayLabel([]Gate{GateH, GateX}), "X keeps 0.5 at 0.5")
}

func TestFoldZNeverChangesLabel(t *testing.T) {
	prefixes := [][]Gate{
		nil,
		{GateX},
		{GateH},
		{GateX, GateH, GateY},
	}
	for _, p := range prefixes {
		before := DisplayLabel(p)
		after := DisplayLabel(append(append([]Gate(nil), p...), GateZ))
		assert.Equal(t, before, after, "prefix %v", p)
	}
}

func TestFoldIgnoresBlockOnlyGates(t *testing.T) {
	assert.Equal(t, KetZero, DisplayLabel([]Gate{GateP, GateCNOT, GateM}))
	assert.Equal(t, KetOne, DisplayLabel([]Gate{GateX, GateM, GateP}))
}

func TestLabelIsIdempotent(t *testing.T) {
	q := &Qubit{ID: "q0"}
	for _, g := range []Gate{GateX, GateH, GateZ, GateY} {
		q.Apply(g)
		assert.Equal(t, q.Label(), q.Label())
	}
	assert.Equal(t, []Gate{GateX, GateH, GateZ, GateY}, q.Gates())
}

func TestLabelFor(t *testing.T) {
	tests := []struct {
		state float64
		want  string
	}{
		{0, KetZero},
		{1, KetOne},
		{0.5, KetPlus},
		{0.25, KetPlus},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, LabelFor(tt.state))
	}
}

func TestParseQueue(t *testing.T) {
	q, bad := ParseQueue([]string{"x", " H ", "cnot"})
	assert.Equal(t, -1, bad)
	assert.Equal(t, []Gate{GateX, GateH, GateCNOT}, q)

	_, bad = ParseQueue([]string{"X", "T"})
	assert.Equal(t, 1, bad)
}
