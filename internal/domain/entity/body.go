package entity

import "math"

// MaxFrameDelta bounds a single integration step (seconds).
const MaxFrameDelta = 0.1

// ClampDelta keeps dt within [0, MaxFrameDelta]. Negative and NaN deltas
// become 0 so integration never runs backwards.
func ClampDelta(dt float64) float64 {
	return ClampDeltaTo(dt, MaxFrameDelta)
}

// ClampDeltaTo is ClampDelta with an explicit upper bound.
func ClampDeltaTo(dt, max float64) float64 {
	if math.IsNaN(dt) || dt < 0 {
		return 0
	}
	if dt > max {
		return max
	}
	return dt
}

// Accelerate returns v + a*dt
func Accelerate(v, a, dt float64) float64 {
	return v + a*dt
}

// Advance returns p + v*dt
func Advance(p, v, dt float64) float64 {
	return p + v*dt
}

// Body is a point mass in court units (origin top-left, y grows downward).
type Body struct {
	X, Y   float64
	VX, VY float64
}

// Integrate moves the body by its current velocity (explicit Euler).
func (b *Body) Integrate(dt float64) {
	b.X = Advance(b.X, b.VX, dt)
	b.Y = Advance(b.Y, b.VY, dt)
}

// ApplyGravity accelerates the body downward.
func (b *Body) ApplyGravity(g, dt float64) {
	b.VY = Accelerate(b.VY, g, dt)
}

// SetPos teleports the body and leaves velocity untouched.
func (b *Body) SetPos(x, y float64) {
	b.X = x
	b.Y = y
}

// Stop zeroes velocity.
func (b *Body) Stop() {
	b.VX = 0
	b.VY = 0
}
