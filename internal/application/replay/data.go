package replay

import "github.com/younwookim/earthball/internal/application/system"

// Version is written into every recording
const Version = "2.0"

// PlayerInput records one player's intents for a frame
type PlayerInput struct {
	L bool `json:"l,omitempty"` // MoveLeft
	R bool `json:"r,omitempty"` // MoveRight
	J bool `json:"j,omitempty"` // Jump
	S bool `json:"s,omitempty"` // Slide
	X bool `json:"x,omitempty"` // Smash
}

// FrameInput records a single frame
type FrameInput struct {
	F  int            `json:"f"`            // Frame number
	DT float64        `json:"dt"`           // Step length in seconds
	P  [2]PlayerInput `json:"p"`            // By slot
	RM bool           `json:"rm,omitempty"` // Rematch requested after this frame
}

// ReplayData contains all data needed to replay a match
type ReplayData struct {
	Version   string       `json:"version"`
	Seed      int64        `json:"seed"`
	MatchID   string       `json:"matchId"`
	Setup     system.Setup `json:"setup"`
	StartTime string       `json:"startTime"`
	Frames    []FrameInput `json:"frames"`
}

func encodeIntents(in system.FrameIntents) [2]PlayerInput {
	var out [2]PlayerInput
	for i, it := range in {
		out[i] = PlayerInput{L: it.MoveLeft, R: it.MoveRight, J: it.Jump, S: it.Slide, X: it.Smash}
	}
	return out
}

// Intents converts the recorded frame back to match input
func (f FrameInput) Intents() system.FrameIntents {
	var out system.FrameIntents
	for i, p := range f.P {
		out[i] = system.Intents{MoveLeft: p.L, MoveRight: p.R, Jump: p.J, Slide: p.S, Smash: p.X}
	}
	return out
}
