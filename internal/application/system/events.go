package system

// EventKind identifies a match transition
type EventKind int

const (
	EventPointScored EventKind = iota
	EventGameOver
	EventRematch
)

// String returns the string representation of the event kind
func (k EventKind) String() string {
	switch k {
	case EventPointScored:
		return "pointScored"
	case EventGameOver:
		return "gameOver"
	case EventRematch:
		return "rematch"
	default:
		return "unknown"
	}
}

// Event is a state transition handed to the presentation layer
type Event struct {
	Kind   EventKind
	Player int // Scorer or winner slot, -1 when not applicable
	Name   string
}
