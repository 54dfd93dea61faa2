package system

import "github.com/younwookim/earthball/internal/domain/entity"

// PlayerSnapshot is a read-only view of a player for rendering
type PlayerSnapshot struct {
	Slot        int
	Side        entity.Side
	Name        string
	CharacterID string
	Score       int

	X, Y          float64
	VX, VY        float64
	Width, Height float64
	Sprite        entity.Rect // Sprite bounds, also the source of the ball hitbox

	Grounded    bool
	Sliding     bool
	FacingRight bool
	Motion      entity.Motion
}

// BallSnapshot is a read-only view of the ball
type BallSnapshot struct {
	X, Y   float64 // Centre
	VX, VY float64
	Radius float64
	Spin   float64 // Degrees
}

func snapshotPlayer(p *entity.Player) PlayerSnapshot {
	t := p.Tuning()
	return PlayerSnapshot{
		Slot:        p.Slot,
		Side:        p.Side,
		Name:        p.Name,
		CharacterID: p.CharacterID,
		Score:       p.Score,
		X:           p.X,
		Y:           p.Y,
		VX:          p.VX,
		VY:          p.VY,
		Width:       t.Width,
		Height:      t.Height,
		Sprite:      entity.Rect{X: p.X, Y: p.Y, W: t.SpriteW, H: t.SpriteH},
		Grounded:    p.Grounded,
		Sliding:     p.Sliding,
		FacingRight: p.FacingRight,
		Motion:      p.Motion(),
	}
}

func snapshotBall(b *entity.Ball) BallSnapshot {
	return BallSnapshot{
		X:      b.X,
		Y:      b.Y,
		VX:     b.VX,
		VY:     b.VY,
		Radius: b.Radius,
		Spin:   b.Spin,
	}
}
