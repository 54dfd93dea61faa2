package entity

import "math"

// BoundsContact records which court boundaries a ball touched in one step
type BoundsContact struct {
	Left    bool
	Right   bool
	Ground  bool
	Ceiling bool
}

// Any reports whether any boundary was touched
func (c BoundsContact) Any() bool {
	return c.Left || c.Right || c.Ground || c.Ceiling
}

// ResolveBounds reflects a ball of the given radius off the walls, the
// ground line and the ceiling, in that order. Ground contact keeps only
// `restitution` of the vertical speed.
func ResolveBounds(b Body, radius, restitution float64, c Court) (Body, BoundsContact) {
	var contact BoundsContact

	if b.X-radius < 0 {
		b.VX = -b.VX
		b.X = radius
		contact.Left = true
	}
	if b.X+radius > c.Width {
		b.VX = -b.VX
		b.X = c.Width - radius
		contact.Right = true
	}
	if ground := c.GroundY(); b.Y+radius >= ground {
		b.Y = ground - radius
		b.VY = -restitution * b.VY
		contact.Ground = true
	}
	if b.Y-radius < 0 {
		b.VY = -b.VY
		b.Y = radius
		contact.Ceiling = true
	}

	return b, contact
}

// DeflectNet bounces a ball off the net. prevX is the ball centre before
// this step; the ball is placed flush against the net face on that side so
// the centre never crosses the net within one step.
func DeflectNet(b Body, prevX, radius float64, c Court) (Body, bool) {
	net := c.Net()
	box := Rect{X: b.X - radius, Y: b.Y - radius, W: 2 * radius, H: 2 * radius}
	if !box.Intersects(net) {
		return b, false
	}

	b.VX = -b.VX
	if c.SideOf(prevX) == SideLeft {
		b.X = net.Left() - radius
	} else {
		b.X = net.Right() + radius
	}
	return b, true
}

// ImpactVelocity is the velocity a ball at (x, y) leaves a player hitbox
// with. The vertical component always points up.
func ImpactVelocity(x, y float64, hitbox Rect, smash bool, t BallTuning) (vx, vy float64) {
	vx = (x - hitbox.CenterX()) * t.ImpactScaleX
	vy = -math.Abs((y - hitbox.CenterY()) * t.ImpactScaleY)

	if smash {
		vx *= t.SmashMultiplier
		vy -= t.SmashBoost
	}
	return vx, vy
}
