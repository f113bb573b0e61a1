// Package sim is the gate cloud simulation engine: falling gate tokens,
// obstacles and force sources, landing resolution on qubit zones, and the
// score ledger. It has no rendering or terminal dependencies; a host drives
// it with Tick and Send and observes it through queries and events.
package sim

import "strings"

// Gate is the label carried by a falling token.
type Gate string

const (
	GateX    Gate = "X"
	GateH    Gate = "H"
	GateZ    Gate = "Z"
	GateY    Gate = "Y"
	GateP    Gate = "P"
	GateCNOT Gate = "CNOT"
	GateM    Gate = "M"
)

// ParseGate parses a gate label, ignoring case and surrounding space.
func ParseGate(s string) (Gate, bool) {
	switch g := Gate(strings.ToUpper(strings.TrimSpace(s))); g {
	case GateX, GateH, GateZ, GateY, GateP, GateCNOT, GateM:
		return g, true
	}
	return "", false
}

// ParseQueue parses a list of gate labels.
// It returns the index of the first invalid label, or -1.
func ParseQueue(labels []string) ([]Gate, int) {
	queue := make([]Gate, 0, len(labels))
	for i, s := range labels {
		g, ok := ParseGate(s)
		if !ok {
			return nil, i
		}
		queue = append(queue, g)
	}
	return queue, -1
}

// Mutates reports whether the gate takes part in the qubit state fold.
func (g Gate) Mutates() bool {
	switch g {
	case GateX, GateH, GateZ, GateY:
		return true
	}
	return false
}

func (g Gate) String() string {
	return string(g)
}
