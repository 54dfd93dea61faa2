package system

import "github.com/younwookim/earthball/internal/domain/entity"

// FrameIntents holds both players' intents for one frame, indexed by slot
// (0 = left player, 1 = right player).
type FrameIntents [2]entity.Intents

// Idle reports whether no intent is set for either player
func (f FrameIntents) Idle() bool {
	return f[0] == entity.Intents{} && f[1] == entity.Intents{}
}

// Intents is one player's logical input for a frame
type Intents = entity.Intents
