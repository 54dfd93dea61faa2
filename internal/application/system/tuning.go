package system

import (
	"github.com/younwookim/earthball/internal/domain/entity"
	"github.com/younwookim/earthball/internal/infrastructure/config"
)

// CourtFrom converts court config into the domain court
func CourtFrom(cfg *config.GameConfig) entity.Court {
	return entity.Court{
		Width:           cfg.Court.Width,
		Height:          cfg.Court.Height,
		NetWidth:        cfg.Court.NetWidth,
		NetHeight:       cfg.Court.NetHeight,
		GroundThickness: cfg.Court.GroundThickness,
	}
}

// PlayerTuningFrom converts player config into movement constants
func PlayerTuningFrom(cfg *config.GameConfig) entity.PlayerTuning {
	p := cfg.Player
	return entity.PlayerTuning{
		Width:           p.Width,
		Height:          p.Height,
		Speed:           p.Speed,
		JumpSpeed:       p.JumpSpeed,
		SlideMultiplier: p.SlideMultiplier,
		SlideDuration:   p.SlideDuration,
		Gravity:         cfg.Physics.Gravity,
		SpawnInset:      p.SpawnInset,
		SpriteW:         p.Sprite.W,
		SpriteH:         p.Sprite.H,
		HitboxInsetW:    p.HitboxInset.W,
		HitboxInsetH:    p.HitboxInset.H,
	}
}

// BallTuningFrom converts ball config into physics constants
func BallTuningFrom(cfg *config.GameConfig) entity.BallTuning {
	b := cfg.Ball
	return entity.BallTuning{
		Radius:          b.Radius,
		Gravity:         cfg.Physics.Gravity,
		InitialSpeedX:   b.InitialSpeedX,
		InitialSpeedY:   b.InitialSpeedY,
		LaunchSpread:    b.LaunchSpread,
		Restitution:     b.Restitution,
		SpinFactor:      b.SpinFactor,
		ImpactScaleX:    b.ImpactScaleX,
		ImpactScaleY:    b.ImpactScaleY,
		SmashMultiplier: b.SmashMultiplier,
		SmashBoost:      b.SmashBoost,
	}
}
