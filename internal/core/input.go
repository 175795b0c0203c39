package core

// Action represents a semantic game action, abstracted from physical input.
// The arena core understands only three of them (pause, impulse, advance);
// the rest are platform-level.
type Action int

const (
	ActionNone    Action = iota
	ActionPause          // P, Escape - toggle pause while running
	ActionImpulse        // mouse drag release - launch the ball
	ActionAdvance        // R, Space, Enter - restart / next level / start over
	ActionQuit           // Q, Ctrl+C - exit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionPause:
		return "Pause"
	case ActionImpulse:
		return "Impulse"
	case ActionAdvance:
		return "Advance"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame represents the input collected during one simulation tick.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	Actions map[Action]bool

	// Impulse is the velocity change requested with ActionImpulse,
	// already scaled into world units per second.
	Impulse Vec2
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

// SetImpulse records an impulse for this frame. Several drags inside one
// tick accumulate.
func (f *InputFrame) SetImpulse(v Vec2) {
	f.Set(ActionImpulse)
	f.Impulse = f.Impulse.Add(v)
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
	f.Impulse = Vec2{}
}
