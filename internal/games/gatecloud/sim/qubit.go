package sim

// Display labels for the reduced qubit model.
const (
	KetZero = "|0⟩"
	KetOne  = "|1⟩"
	KetPlus = "|+⟩"
)

// superposition is the numeric value the fold uses for |+⟩.
const superposition = 0.5

// Fold reduces a gate sequence to a numeric state, starting from 0.
// Only X, Y, H and Z are meaningful; other labels are skipped.
func Fold(gates []Gate) float64 {
	state := 0.0
	for _, g := range gates {
		switch g {
		case GateH:
			if state == 0 || state == 1 {
				state = superposition
			}
		case GateX, GateY:
			switch state {
			case 0:
				state = 1
			case 1:
				state = 0
			default:
				state = 1 - state
			}
		case GateZ:
			// Phase only, invisible in this model.
		}
	}
	return state
}

// LabelFor maps a folded state value to its display label.
func LabelFor(state float64) string {
	switch state {
	case 0:
		return KetZero
	case 1:
		return KetOne
	default:
		return KetPlus
	}
}

// DisplayLabel folds the sequence and returns its label.
func DisplayLabel(gates []Gate) string {
	return LabelFor(Fold(gates))
}

// ValidLabel reports whether s is one of the display labels.
func ValidLabel(s string) bool {
	return s == KetZero || s == KetOne || s == KetPlus
}
