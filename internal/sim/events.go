package sim

// EventKind identifies a one-shot simulation event.
type EventKind int

const (
	EventWallBounce EventKind = iota
	EventObstacleBounce
	EventSlowZoneEnter
	EventGameOver
	EventLevelComplete
	EventGameComplete
)

// String returns the event name.
func (k EventKind) String() string {
	switch k {
	case EventWallBounce:
		return "wall_bounce"
	case EventObstacleBounce:
		return "obstacle_bounce"
	case EventSlowZoneEnter:
		return "slow_zone_enter"
	case EventGameOver:
		return "game_over"
	case EventLevelComplete:
		return "level_complete"
	case EventGameComplete:
		return "game_complete"
	default:
		return "unknown"
	}
}

// Event is emitted during Step. Level is 1-based; Time is the survival
// timer at emission.
type Event struct {
	Kind  EventKind
	Level int
	Time  float64
}

// EventSink receives events as they happen. Emit must not call back into
// the engine.
type EventSink interface {
	Emit(Event)
}

// NopSink discards events.
type NopSink struct{}

// Emit implements EventSink.
func (NopSink) Emit(Event) {}

// MultiSink fans an event out to several sinks in order.
type MultiSink []EventSink

// Emit implements EventSink.
func (m MultiSink) Emit(ev Event) {
	for _, s := range m {
		s.Emit(ev)
	}
}

// EventCounter tallies events by kind.
type EventCounter map[EventKind]int

// Emit implements EventSink.
func (c EventCounter) Emit(ev Event) {
	c[ev.Kind]++
}
