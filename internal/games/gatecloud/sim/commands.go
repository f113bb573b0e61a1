package sim

// Command is an inbound request from the host. Commands are queued with
// Engine.Send and applied in order at the start of the next Tick.
type Command interface {
	simCommand()
}

// Start begins a stopped run or resumes a paused one.
type Start struct{}

// Pause freezes a running session.
type Pause struct{}

// Reset clears the board and returns to stopped.
type Reset struct{}

// CheckTarget compares every zone label with the level target.
type CheckTarget struct{}

// SetSourceAngle sets the player angle of a source in degrees.
type SetSourceAngle struct {
	ID      SourceID
	Degrees float64
}

// SetSourceActive holds or releases a source.
type SetSourceActive struct {
	ID     SourceID
	Active bool
}

// ProvideLayout replaces the layout snapshot.
type ProvideLayout struct {
	Layout Layout
}

// RefreshLayout pulls a fresh snapshot from the engine's LayoutProvider.
type RefreshLayout struct{}

func (Start) simCommand()           {}
func (Pause) simCommand()           {}
func (Reset) simCommand()           {}
func (CheckTarget) simCommand()     {}
func (SetSourceAngle) simCommand()  {}
func (SetSourceActive) simCommand() {}
func (ProvideLayout) simCommand()   {}
func (RefreshLayout) simCommand()   {}
