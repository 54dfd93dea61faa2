package config

import (
	"errors"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
)

// Default returns the built-in game configuration.
func Default() *GameConfig {
	return &GameConfig{
		Display: DisplayConfig{
			ScreenWidth:  900,
			ScreenHeight: 500,
			Scale:        1,
			Framerate:    60,
			Title:        "2-Player Earthball Game",
		},
		Physics: PhysicsSettings{
			Gravity:       1100,
			MaxFrameDelta: 0.1,
		},
		Court: CourtConfig{
			Width:       900,
			Height:      500,
			NetWidth:    40,
			NetHeight:   250,
			GroundDrawn: 40,
		},
		Player: PlayerConfig{
			Width:           80,
			Height:          120,
			Speed:           360,
			JumpSpeed:       -650,
			SlideMultiplier: 1.5,
			SlideDuration:   0.3,
			SpawnInset:      100,
			Sprite:          Size{W: 100, H: 100},
			HitboxInset:     Size{W: 30, H: 20},
		},
		Ball: BallConfig{
			Radius:          36,
			InitialSpeedX:   150,
			InitialSpeedY:   150,
			LaunchSpread:    0.5,
			Restitution:     0.85,
			SpinFactor:      0.1,
			ImpactScaleX:    8,
			ImpactScaleY:    9,
			SmashMultiplier: 1.5,
			SmashBoost:      420,
		},
		Match: MatchConfig{
			WinScore:       10,
			BannerDuration: 2.0,
		},
		Controls: [2]ControlsConfig{
			{Left: ebiten.KeyA, Right: ebiten.KeyD, Jump: ebiten.KeyW, Slide: ebiten.KeyS, Smash: ebiten.KeyShiftLeft},
			{Left: ebiten.KeyArrowLeft, Right: ebiten.KeyArrowRight, Jump: ebiten.KeyArrowUp, Slide: ebiten.KeyArrowDown, Smash: ebiten.KeyEnter},
		},
		Roster: RosterConfig{
			Characters:    []string{"maskdude", "ninjafrog", "pinkman", "virtualguy"},
			Defaults:      [2]int{0, 2},
			MaxNameLength: 12,
		},
		Audio: AudioConfig{
			SampleRate:  44100,
			MusicVolume: 0.6,
			SFXVolume:   1.0,
			Music:       "audio/game.ogg",
			Sounds: map[string]string{
				"hit":      "audio/hit.ogg",
				"smash":    "audio/smash.ogg",
				"pointWon": "audio/win.ogg",
				"matchEnd": "audio/end.ogg",
			},
		},
	}
}

// DefaultLogger returns logger settings used when logger.json is absent.
func DefaultLogger() *LoggerConfig {
	return &LoggerConfig{
		Level:      "info",
		Format:     "text",
		MaxSize:    10,
		MaxBackups: 3,
		MaxAge:     28,
	}
}

// ErrInvalidConfig is wrapped by every Validate failure.
var ErrInvalidConfig = errors.New("invalid config")

// Validate checks the values the simulation relies on.
func (c *GameConfig) Validate() error {
	switch {
	case c.Court.Width <= 0 || c.Court.Height <= 0:
		return fmt.Errorf("%w: court must have positive size, got %vx%v", ErrInvalidConfig, c.Court.Width, c.Court.Height)
	case c.Court.NetWidth <= 0 || c.Court.NetWidth >= c.Court.Width:
		return fmt.Errorf("%w: net width %v does not fit court width %v", ErrInvalidConfig, c.Court.NetWidth, c.Court.Width)
	case c.Court.NetHeight <= 0 || c.Court.NetHeight > c.Court.Height:
		return fmt.Errorf("%w: net height %v does not fit court height %v", ErrInvalidConfig, c.Court.NetHeight, c.Court.Height)
	case c.Player.Width <= 0 || c.Player.Height <= 0:
		return fmt.Errorf("%w: player box must have positive size", ErrInvalidConfig)
	case c.Player.Width > c.Court.Width/2-c.Court.NetWidth/2:
		return fmt.Errorf("%w: player width %v does not fit half court", ErrInvalidConfig, c.Player.Width)
	case c.Ball.Radius <= 0 || 2*c.Ball.Radius >= c.Court.Width:
		return fmt.Errorf("%w: ball radius %v", ErrInvalidConfig, c.Ball.Radius)
	case c.Match.WinScore <= 0:
		return fmt.Errorf("%w: win score must be positive, got %d", ErrInvalidConfig, c.Match.WinScore)
	case c.Physics.MaxFrameDelta <= 0:
		return fmt.Errorf("%w: max frame delta must be positive", ErrInvalidConfig)
	case len(c.Roster.Characters) == 0:
		return fmt.Errorf("%w: roster is empty", ErrInvalidConfig)
	}
	return nil
}
