package entity

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPlayer_Spawn(t *testing.T) {
	left := createTestPlayer(SideLeft)
	right := createTestPlayer(SideRight)

	assert.Equal(t, 100.0, left.X)
	assert.Equal(t, 380.0, left.Y)
	assert.True(t, left.Grounded)
	assert.True(t, left.FacingRight)

	assert.Equal(t, 720.0, right.X)
	assert.Equal(t, 380.0, right.Y)
	assert.False(t, right.FacingRight)

	assert.Equal(t, 0, left.Score)
	assert.Equal(t, "tester", left.Name)
	assert.Equal(t, "pinkman", left.CharacterID)
}

func TestPlayer_ApplyIntents_Movement(t *testing.T) {
	tests := []struct {
		name   string
		in     Intents
		wantVX float64
	}{
		{"idle", Intents{}, 0},
		{"left", Intents{MoveLeft: true}, -360},
		{"right", Intents{MoveRight: true}, 360},
		{"both pressed favours right", Intents{MoveLeft: true, MoveRight: true}, 360},
		{"smash alone does nothing", Intents{Smash: true}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := createTestPlayer(SideLeft)
			p.VX = 999

			p.ApplyIntents(tt.in, 1.0/60.0)

			assert.Equal(t, tt.wantVX, p.VX)
			assert.False(t, p.Sliding)
		})
	}
}

func TestPlayer_Jump(t *testing.T) {
	p := createTestPlayer(SideLeft)

	p.ApplyIntents(Intents{Jump: true}, 0.1)
	assert.Equal(t, -650.0, p.VY)
	assert.False(t, p.Grounded)

	p.Integrate(0.1)
	assert.InDelta(t, 315.0, p.Y, 1e-9)
	assert.InDelta(t, -540.0, p.VY, 1e-9)
	assert.False(t, p.Grounded)
}

func TestPlayer_JumpOnlyWhenGrounded(t *testing.T) {
	p := createTestPlayer(SideLeft)
	p.Grounded = false
	p.VY = -100

	p.ApplyIntents(Intents{Jump: true}, 0.1)

	assert.Equal(t, -100.0, p.VY)
}

func TestPlayer_LandsOnGround(t *testing.T) {
	p := createTestPlayer(SideLeft)
	p.Update(Intents{Jump: true}, 1.0/60.0)
	require.False(t, p.Grounded)

	for i := 0; i < 300 && !p.Grounded; i++ {
		p.Update(Intents{}, 1.0/60.0)
	}

	assert.True(t, p.Grounded)
	assert.Equal(t, 380.0, p.Y, "bottom rests exactly on the ground line")
	assert.Equal(t, 0.0, p.VY)
}

func TestPlayer_Slide(t *testing.T) {
	p := createTestPlayer(SideLeft)

	p.ApplyIntents(Intents{Slide: true, MoveRight: true}, 0.15)
	assert.True(t, p.Sliding)
	assert.Equal(t, 1, p.SlideDirection)
	assert.Equal(t, 540.0, p.VX)
	assert.Equal(t, 0.3, p.SlideTimer)

	p.ApplyIntents(Intents{}, 0.15)
	assert.True(t, p.Sliding, "slide keeps going without intents")
	assert.Equal(t, 540.0, p.VX)

	p.ApplyIntents(Intents{}, 0.15)
	assert.False(t, p.Sliding, "slide ends after its duration")
	assert.Equal(t, 0.0, p.VX)
	assert.Equal(t, 0.0, p.SlideTimer)
}

func TestPlayer_SlideLeft(t *testing.T) {
	p := createTestPlayer(SideRight)

	p.ApplyIntents(Intents{Slide: true, MoveLeft: true}, 0.1)

	assert.True(t, p.Sliding)
	assert.Equal(t, -1, p.SlideDirection)
	assert.Equal(t, -540.0, p.VX)
}

func TestPlayer_SlideTimerDecreases(t *testing.T) {
	p := createTestPlayer(SideLeft)
	p.ApplyIntents(Intents{Slide: true, MoveRight: true}, 0.01)

	prev := p.SlideTimer
	for p.Sliding {
		p.ApplyIntents(Intents{}, 0.01)
		assert.LessOrEqual(t, p.SlideTimer, prev)
		assert.GreaterOrEqual(t, p.SlideTimer, 0.0)
		prev = p.SlideTimer
	}
	assert.Equal(t, 0.0, p.SlideTimer)
}

func TestPlayer_SlideRequiresDirectionAndGround(t *testing.T) {
	t.Run("no direction", func(t *testing.T) {
		p := createTestPlayer(SideLeft)
		p.ApplyIntents(Intents{Slide: true}, 0.1)
		assert.False(t, p.Sliding)
		assert.Equal(t, 0, p.SlideDirection)
	})

	t.Run("airborne", func(t *testing.T) {
		p := createTestPlayer(SideLeft)
		p.Grounded = false
		p.ApplyIntents(Intents{Slide: true, MoveRight: true}, 0.1)
		assert.False(t, p.Sliding)
		assert.Equal(t, 360.0, p.VX)
	})

	t.Run("jump wins over slide", func(t *testing.T) {
		p := createTestPlayer(SideLeft)
		p.ApplyIntents(Intents{Jump: true, Slide: true, MoveRight: true}, 0.1)
		assert.False(t, p.Sliding)
		assert.Equal(t, -650.0, p.VY)
	})
}

func TestPlayer_SlideLocksControls(t *testing.T) {
	p := createTestPlayer(SideLeft)
	p.ApplyIntents(Intents{Slide: true, MoveRight: true}, 0.05)

	p.ApplyIntents(Intents{MoveLeft: true, Jump: true}, 0.05)

	assert.True(t, p.Sliding)
	assert.Equal(t, 540.0, p.VX, "direction stays locked")
	assert.True(t, p.Grounded, "no jump while sliding")
}

func TestPlayer_HalfCourtBounds(t *testing.T) {
	min, max := createTestPlayer(SideLeft).HalfCourtBounds()
	assert.Equal(t, 0.0, min)
	assert.Equal(t, 350.0, max)

	min, max = createTestPlayer(SideRight).HalfCourtBounds()
	assert.Equal(t, 470.0, min)
	assert.Equal(t, 820.0, max)
}

func TestPlayer_ClampToHalfCourt(t *testing.T) {
	tests := []struct {
		name string
		side Side
		x    float64
		want float64
	}{
		{"left player past wall", SideLeft, -20, 0},
		{"left player into net", SideLeft, 400, 350},
		{"left player inside", SideLeft, 200, 200},
		{"right player into net", SideRight, 455, 470},
		{"right player past wall", SideRight, 880, 820},
		{"right player inside", SideRight, 600, 600},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := createTestPlayer(tt.side)
			p.X = tt.x
			p.ClampToHalfCourt()
			assert.Equal(t, tt.want, p.X)
		})
	}
}

func TestPlayer_ClampHoldsForAnyIntents(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	for _, side := range []Side{SideLeft, SideRight} {
		p := createTestPlayer(side)
		min, max := p.HalfCourtBounds()

		for i := 0; i < 2000; i++ {
			in := Intents{
				MoveLeft:  rng.Intn(2) == 0,
				MoveRight: rng.Intn(3) == 0,
				Jump:      rng.Intn(10) == 0,
				Slide:     rng.Intn(8) == 0,
				Smash:     rng.Intn(2) == 0,
			}
			p.Update(in, rng.Float64()*MaxFrameDelta)

			require.GreaterOrEqual(t, p.X, min, "side %s frame %d", side, i)
			require.LessOrEqual(t, p.X, max, "side %s frame %d", side, i)
			require.LessOrEqual(t, p.Y+120, 500.0, "never below ground")
		}
	}
}

func TestPlayer_UpdateFacing(t *testing.T) {
	p := createTestPlayer(SideRight)
	require.False(t, p.FacingRight)

	p.Update(Intents{MoveRight: true}, 0.016)
	assert.True(t, p.FacingRight)

	p.Update(Intents{}, 0.016)
	assert.True(t, p.FacingRight, "facing is kept while idle")

	p.Update(Intents{MoveLeft: true}, 0.016)
	assert.False(t, p.FacingRight)
}

func TestPlayer_Respawn(t *testing.T) {
	p := createTestPlayer(SideLeft)
	p.Update(Intents{Slide: true, MoveRight: true}, 0.1)
	p.Score = 4
	p.X, p.Y = 300, 200
	p.Grounded = false

	p.Respawn()

	assert.Equal(t, 100.0, p.X)
	assert.Equal(t, 380.0, p.Y)
	assert.Equal(t, 0.0, p.VX)
	assert.Equal(t, 0.0, p.VY)
	assert.True(t, p.Grounded)
	assert.False(t, p.Sliding)
	assert.Equal(t, 4, p.Score, "respawn keeps the score")
}

func TestPlayer_Hitbox(t *testing.T) {
	p := createTestPlayer(SideLeft)

	assert.Equal(t, Rect{X: 115, Y: 390, W: 70, H: 80}, p.Hitbox())
	assert.Equal(t, Rect{X: 100, Y: 380, W: 80, H: 120}, p.Bounds())
}

func TestPlayer_Motion(t *testing.T) {
	tests := []struct {
		name    string
		vx, vy  float64
		sliding bool
		want    Motion
	}{
		{"idle", 0, 0, false, MotionIdle},
		{"run", 360, 0, false, MotionRun},
		{"rising", 360, -10, false, MotionJump},
		{"falling", 0, 50, false, MotionFall},
		{"barely falling counts as idle", 0, 0.5, false, MotionIdle},
		{"slide", 540, 0, true, MotionSlide},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := createTestPlayer(SideLeft)
			p.VX, p.VY, p.Sliding = tt.vx, tt.vy, tt.sliding
			assert.Equal(t, tt.want, p.Motion())
		})
	}
}

func TestMotion_String(t *testing.T) {
	assert.Equal(t, "idle", MotionIdle.String())
	assert.Equal(t, "slide", MotionSlide.String())
	assert.Equal(t, "unknown", Motion(42).String())
}
