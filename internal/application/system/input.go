package system

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/younwookim/earthball/internal/domain/entity"
	"github.com/younwookim/earthball/internal/infrastructure/config"
)

// KeyState reports whether a key is held
type KeyState func(ebiten.Key) bool

// InputSystem maps held keys to per-player intents
type InputSystem struct {
	controls [2]config.ControlsConfig
	pressed  KeyState
}

// NewInputSystem creates an input system reading the keyboard through ebiten
func NewInputSystem(controls [2]config.ControlsConfig) *InputSystem {
	return NewInputSystemWithKeys(controls, ebiten.IsKeyPressed)
}

// NewInputSystemWithKeys creates an input system over an arbitrary key source
func NewInputSystemWithKeys(controls [2]config.ControlsConfig, pressed KeyState) *InputSystem {
	return &InputSystem{
		controls: controls,
		pressed:  pressed,
	}
}

// Intents samples both players
func (s *InputSystem) Intents() FrameIntents {
	return FrameIntents{s.IntentsFor(0), s.IntentsFor(1)}
}

// IntentsFor samples one slot. Unknown slots yield no intents.
func (s *InputSystem) IntentsFor(slot int) entity.Intents {
	if slot < 0 || slot >= len(s.controls) {
		return entity.Intents{}
	}

	c := s.controls[slot]
	return entity.Intents{
		MoveLeft:  s.pressed(c.Left),
		MoveRight: s.pressed(c.Right),
		Jump:      s.pressed(c.Jump),
		Slide:     s.pressed(c.Slide),
		Smash:     s.pressed(c.Smash),
	}
}
