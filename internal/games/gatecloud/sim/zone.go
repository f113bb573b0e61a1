package sim

import "github.com/vovakirdan/gatecloud/internal/core"

// Qubit is a target zone. Its state is never stored; Label recomputes it
// from the gate history every time.
type Qubit struct {
	ID    string
	Span  core.Box
	gates []Gate
}

// Apply appends a gate to the history.
func (q *Qubit) Apply(g Gate) {
	q.gates = append(q.gates, g)
}

// Gates returns a copy of the gate history in landing order.
func (q *Qubit) Gates() []Gate {
	return append([]Gate(nil), q.gates...)
}

// Label returns the current display label.
func (q *Qubit) Label() string {
	return DisplayLabel(q.gates)
}

func (q *Qubit) clear() {
	q.gates = q.gates[:0]
}

// Dustbin collects discarded gates.
type Dustbin struct {
	Span  core.Box
	gates []Gate
}

// Dispose appends a gate.
func (d *Dustbin) Dispose(g Gate) {
	d.gates = append(d.gates, g)
}

// Count returns the number of disposed gates.
func (d *Dustbin) Count() int {
	return len(d.gates)
}

// Gates returns a copy of the disposed gates.
func (d *Dustbin) Gates() []Gate {
	return append([]Gate(nil), d.gates...)
}

func (d *Dustbin) clear() {
	d.gates = d.gates[:0]
}

// ZoneView is a read-only copy of a qubit for the presentation layer.
type ZoneView struct {
	ID    string
	Span  core.Box
	Gates []Gate
	Label string
}
