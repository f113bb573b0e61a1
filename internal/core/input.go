package core

// Action is a semantic game action, abstracted from physical key presses.
type Action int

const (
	ActionNone         Action = iota
	ActionStartPause          // Space - start, pause or resume
	ActionRestart             // R - reset the board
	ActionCheck               // C - check the target state
	ActionFireLeft            // F - hold the left emitter/flipper
	ActionFireRight           // J - hold the right emitter/flipper
	ActionLeftAngleDn         // A - rotate the left source counter-clockwise
	ActionLeftAngleUp         // D - rotate the left source clockwise
	ActionRightAngleDn        // Left arrow - rotate the right source counter-clockwise
	ActionRightAngleUp        // Right arrow - rotate the right source clockwise
	ActionConfirm             // Enter - confirm selection in menu
	ActionBack                // B, Escape - go back to menu
	ActionQuit                // Q, Ctrl+C - exit game/session
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionStartPause:
		return "StartPause"
	case ActionRestart:
		return "Restart"
	case ActionCheck:
		return "Check"
	case ActionFireLeft:
		return "FireLeft"
	case ActionFireRight:
		return "FireRight"
	case ActionLeftAngleDn:
		return "LeftAngleDown"
	case ActionLeftAngleUp:
		return "LeftAngleUp"
	case ActionRightAngleDn:
		return "RightAngleDown"
	case ActionRightAngleUp:
		return "RightAngleUp"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame is the set of actions triggered during one simulation tick.
type InputFrame struct {
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}
