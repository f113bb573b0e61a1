package sim

import "github.com/vovakirdan/gatecloud/internal/core"

// Outcome is the result of a token landing.
type Outcome int

const (
	OutcomeMiss Outcome = iota
	OutcomeQubit
	OutcomeDustbin
)

func (o Outcome) String() string {
	switch o {
	case OutcomeQubit:
		return "qubit"
	case OutcomeDustbin:
		return "dustbin"
	default:
		return "miss"
	}
}

// Resolve picks the landing outcome for horizontal position x. Qubit spans
// are tested in order and the first match wins; the dustbin comes after.
// The returned index is only meaningful for OutcomeQubit.
func Resolve(x float64, zones []core.Box, dustbin core.Box) (Outcome, int) {
	for i, z := range zones {
		if z.SpanContains(x) {
			return OutcomeQubit, i
		}
	}
	if dustbin.SpanContains(x) {
		return OutcomeDustbin, -1
	}
	return OutcomeMiss, -1
}

// land resolves every token past the landing line and drops it from the field.
func (e *Engine) land() {
	spans := make([]core.Box, len(e.qubits))
	for i, q := range e.qubits {
		spans[i] = q.Span
	}

	kept := e.tokens[:0]
	for _, t := range e.tokens {
		if t.Pos.Y <= e.layout.LandingY {
			kept = append(kept, t)
			continue
		}
		outcome, idx := Resolve(t.Pos.X, spans, e.dustbin.Span)
		e.settle(t, outcome, idx)
	}
	for i := len(kept); i < len(e.tokens); i++ {
		e.tokens[i] = nil
	}
	e.tokens = kept
}

func (e *Engine) settle(t *Token, outcome Outcome, idx int) {
	pinball := e.cfg.Variant == VariantPinball
	sc := e.cfg.Scoring

	switch outcome {
	case OutcomeQubit:
		q := e.qubits[idx]
		q.Apply(t.Gate)
		points := 0
		if pinball {
			points = e.ledger.Award(sc.LandingBase + t.Bounces*sc.BounceBonus)
		}
		e.emit(ZoneLandedEvent{At: e.now, Token: t.ID, Zone: q.ID, Gate: t.Gate, Label: q.Label(), Points: points})
	case OutcomeDustbin:
		e.dustbin.Dispose(t.Gate)
		points := 0
		if pinball {
			points = e.ledger.Award(sc.DustbinPoints)
		}
		e.emit(DustbinEvent{At: e.now, Token: t.ID, Gate: t.Gate, Count: e.dustbin.Count(), Points: points})
	default:
		if pinball {
			e.ledger.Miss()
		}
		e.emit(MissEvent{At: e.now, Token: t.ID, Gate: t.Gate, Pos: t.Pos})
	}
}
