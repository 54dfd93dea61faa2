package entity

import "math/rand"

func createTestCourt() Court {
	return Court{Width: 900, Height: 500, NetWidth: 40, NetHeight: 250}
}

func createTestPlayerTuning() PlayerTuning {
	return PlayerTuning{
		Width:           80,
		Height:          120,
		Speed:           360,
		JumpSpeed:       -650,
		SlideMultiplier: 1.5,
		SlideDuration:   0.3,
		Gravity:         1100,
		SpawnInset:      100,
		SpriteW:         100,
		SpriteH:         100,
		HitboxInsetW:    30,
		HitboxInsetH:    20,
	}
}

func createTestBallTuning() BallTuning {
	return BallTuning{
		Radius:          36,
		Gravity:         1100,
		InitialSpeedX:   150,
		InitialSpeedY:   150,
		LaunchSpread:    0.5,
		Restitution:     0.85,
		SpinFactor:      0.1,
		ImpactScaleX:    8,
		ImpactScaleY:    9,
		SmashMultiplier: 1.5,
		SmashBoost:      420,
	}
}

func createTestPlayer(side Side) *Player {
	return NewPlayer(side, int(side), "tester", "pinkman", createTestCourt(), createTestPlayerTuning())
}

// createTestBall returns a ball placed at (x, y) with the given velocity
func createTestBall(x, y, vx, vy float64) *Ball {
	b := NewBall(createTestCourt(), createTestBallTuning(), rand.New(rand.NewSource(1)))
	b.X, b.Y = x, y
	b.VX, b.VY = vx, vy
	b.Spin = 0
	return b
}
