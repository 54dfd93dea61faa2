package entity

// Side identifies a half of the court
type Side int

const (
	SideLeft Side = iota
	SideRight
)

// String returns the string representation of the side
func (s Side) String() string {
	switch s {
	case SideLeft:
		return "left"
	case SideRight:
		return "right"
	default:
		return "unknown"
	}
}

// Opposite returns the other half
func (s Side) Opposite() Side {
	if s == SideLeft {
		return SideRight
	}
	return SideLeft
}

// Rect is an axis-aligned rectangle in court units
type Rect struct {
	X, Y float64
	W, H float64
}

func (r Rect) Left() float64    { return r.X }
func (r Rect) Right() float64   { return r.X + r.W }
func (r Rect) Top() float64     { return r.Y }
func (r Rect) Bottom() float64  { return r.Y + r.H }
func (r Rect) CenterX() float64 { return r.X + r.W/2 }
func (r Rect) CenterY() float64 { return r.Y + r.H/2 }

// Intersects reports whether the rects overlap with positive area.
// Touching edges do not count.
func (r Rect) Intersects(o Rect) bool {
	return r.X < o.Right() && o.X < r.Right() &&
		r.Y < o.Bottom() && o.Y < r.Bottom()
}

// Shrink returns the rect reduced by dw/dh in total, keeping its centre.
func (r Rect) Shrink(dw, dh float64) Rect {
	return Rect{
		X: r.X + dw/2,
		Y: r.Y + dh/2,
		W: r.W - dw,
		H: r.H - dh,
	}
}

// Court is the fixed playing field. The net stands centred on the floor.
type Court struct {
	Width           float64
	Height          float64
	NetWidth        float64
	NetHeight       float64
	GroundThickness float64
}

// GroundY is the line bodies rest on
func (c Court) GroundY() float64 {
	return c.Height - c.GroundThickness
}

// MidX is the horizontal centre of the court
func (c Court) MidX() float64 {
	return c.Width / 2
}

// Net returns the net rectangle
func (c Court) Net() Rect {
	return Rect{
		X: c.Width/2 - c.NetWidth/2,
		Y: c.Height - c.NetHeight,
		W: c.NetWidth,
		H: c.NetHeight,
	}
}

// SideOf returns the half that contains x. The midpoint belongs to the right.
func (c Court) SideOf(x float64) Side {
	if x < c.MidX() {
		return SideLeft
	}
	return SideRight
}
