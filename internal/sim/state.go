package sim

// State is the top-level game state.
type State int

const (
	StateRunning State = iota
	StatePaused
	StateGameOver
	StateLevelComplete
	StateGameComplete
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateRunning:
		return "running"
	case StatePaused:
		return "paused"
	case StateGameOver:
		return "game_over"
	case StateLevelComplete:
		return "level_complete"
	case StateGameComplete:
		return "game_complete"
	default:
		return "unknown"
	}
}

// Trigger is an input to the state machine.
type Trigger int

const (
	TriggerTogglePause   Trigger = iota
	TriggerPlayerHit             // a bullet reached the player
	TriggerSurvived              // survival time reached, more levels remain
	TriggerSurvivedFinal         // survival time reached on the last level
	TriggerAdvance               // restart, next level, or start over
)

// String returns the trigger name.
func (t Trigger) String() string {
	switch t {
	case TriggerTogglePause:
		return "toggle_pause"
	case TriggerPlayerHit:
		return "player_hit"
	case TriggerSurvived:
		return "survived"
	case TriggerSurvivedFinal:
		return "survived_final"
	case TriggerAdvance:
		return "advance"
	default:
		return "unknown"
	}
}

// transitions is the complete table; pairs not listed are ignored.
var transitions = map[State]map[Trigger]State{
	StateRunning: {
		TriggerTogglePause:   StatePaused,
		TriggerPlayerHit:     StateGameOver,
		TriggerSurvived:      StateLevelComplete,
		TriggerSurvivedFinal: StateGameComplete,
	},
	StatePaused: {
		TriggerTogglePause: StateRunning,
	},
	StateGameOver: {
		TriggerAdvance: StateRunning,
	},
	StateLevelComplete: {
		TriggerAdvance: StateRunning,
	},
	StateGameComplete: {
		TriggerAdvance: StateRunning,
	},
}

// Next looks up the transition for (s, t).
func Next(s State, t Trigger) (State, bool) {
	next, ok := transitions[s][t]
	return next, ok
}

// Machine holds the current state and applies table transitions.
type Machine struct {
	state State
}

// NewMachine starts in StateRunning.
func NewMachine() *Machine {
	return &Machine{state: StateRunning}
}

// State returns the current state.
func (m *Machine) State() State {
	return m.state
}

// Fire applies t if the table allows it from the current state.
func (m *Machine) Fire(t Trigger) bool {
	next, ok := Next(m.state, t)
	if !ok {
		return false
	}
	m.state = next
	return true
}

// Reset returns to StateRunning.
func (m *Machine) Reset() {
	m.state = StateRunning
}
