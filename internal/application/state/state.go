package state

// MatchState represents the current state of a match
type MatchState int

const (
	StatePlaying MatchState = iota
	StatePointScored
	StateGameOver
)

// String returns the string representation of the match state
func (s MatchState) String() string {
	switch s {
	case StatePlaying:
		return "Playing"
	case StatePointScored:
		return "PointScored"
	case StateGameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}

// Simulating reports whether physics advances in this state
func (s MatchState) Simulating() bool {
	return s == StatePlaying
}
