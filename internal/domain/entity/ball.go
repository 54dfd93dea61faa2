package entity

import "math/rand"

// Contact is the outcome of testing the ball against a player
type Contact int

const (
	ContactNone Contact = iota
	ContactHit
	ContactSmash
)

// BallTuning holds the ball's physics constants
type BallTuning struct {
	Radius          float64
	Gravity         float64
	InitialSpeedX   float64
	InitialSpeedY   float64
	LaunchSpread    float64
	Restitution     float64
	SpinFactor      float64 // Degrees of spin per unit of horizontal travel
	ImpactScaleX    float64
	ImpactScaleY    float64
	SmashMultiplier float64
	SmashBoost      float64
}

// Ball is the single ball of a match. It is reset, never recreated.
type Ball struct {
	Body
	Spin   float64 // Degrees
	Radius float64

	court  Court
	tuning BallTuning
	rng    *rand.Rand
}

// NewBall creates a ball served from a random side
func NewBall(court Court, tuning BallTuning, rng *rand.Rand) *Ball {
	b := &Ball{
		Radius: tuning.Radius,
		court:  court,
		tuning: tuning,
		rng:    rng,
	}
	b.ResetRandom()
	return b
}

// Reset serves the ball from the given half: a left serve starts at one
// eighth of the court moving right, a right serve at seven eighths moving
// left. The vertical speed gets a random factor in [-spread, spread].
func (b *Ball) Reset(side Side) {
	b.Y = b.court.Height / 4
	if side == SideLeft {
		b.X = b.court.Width / 8
		b.VX = b.tuning.InitialSpeedX
	} else {
		b.X = b.court.Width * 7 / 8
		b.VX = -b.tuning.InitialSpeedX
	}

	angle := (b.rng.Float64()*2 - 1) * b.tuning.LaunchSpread
	b.VY = b.tuning.InitialSpeedY * angle
}

// ResetRandom serves from a random side and returns it
func (b *Ball) ResetRandom() Side {
	side := SideLeft
	if b.rng.Intn(2) == 1 {
		side = SideRight
	}
	b.Reset(side)
	return side
}

// Update advances the ball one step and resolves walls, ground, ceiling and
// net. It reports whether the ball touched the ground during this step.
func (b *Ball) Update(dt float64) bool {
	prevX := b.X

	b.Integrate(dt)
	b.ApplyGravity(b.tuning.Gravity, dt)
	b.Spin += b.VX * b.tuning.SpinFactor * dt

	var contact BoundsContact
	b.Body, contact = ResolveBounds(b.Body, b.Radius, b.tuning.Restitution, b.court)
	b.Body, _ = DeflectNet(b.Body, prevX, b.Radius, b.court)

	return contact.Ground
}

// Bounds returns the ball's bounding box
func (b *Ball) Bounds() Rect {
	return Rect{X: b.X - b.Radius, Y: b.Y - b.Radius, W: 2 * b.Radius, H: 2 * b.Radius}
}

// ResolveCollision bounces the ball off a player hitbox. smash is the
// striking player's smash intent at the moment of impact.
func (b *Ball) ResolveCollision(hitbox Rect, smash bool) Contact {
	if !b.Bounds().Intersects(hitbox) {
		return ContactNone
	}

	b.VX, b.VY = ImpactVelocity(b.X, b.Y, hitbox, smash, b.tuning)
	if smash {
		return ContactSmash
	}
	return ContactHit
}
