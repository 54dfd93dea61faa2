package system

import (
	"time"

	"github.com/younwookim/earthball/internal/domain/entity"
)

// FrameClock measures wall-clock time between frames
type FrameClock struct {
	now  func() time.Time
	last time.Time
	max  float64
}

// NewFrameClock creates a clock whose deltas never exceed max seconds
func NewFrameClock(max float64) *FrameClock {
	return NewFrameClockWithSource(max, time.Now)
}

// NewFrameClockWithSource creates a clock over a custom time source
func NewFrameClockWithSource(max float64, now func() time.Time) *FrameClock {
	return &FrameClock{now: now, max: max}
}

// Tick returns the seconds since the previous Tick, clamped to [0, max].
// The first Tick returns 0.
func (c *FrameClock) Tick() float64 {
	t := c.now()
	if c.last.IsZero() {
		c.last = t
		return 0
	}

	dt := t.Sub(c.last).Seconds()
	c.last = t
	return entity.ClampDeltaTo(dt, c.max)
}

// Reset forgets the previous frame so the next Tick returns 0
func (c *FrameClock) Reset() {
	c.last = time.Time{}
}
