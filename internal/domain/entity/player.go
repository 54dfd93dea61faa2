package entity

// Intents is one player's logical input for a frame
type Intents struct {
	MoveLeft  bool
	MoveRight bool
	Jump      bool
	Slide     bool
	Smash     bool
}

// Motion is the semantic pose a renderer picks an animation from
type Motion int

const (
	MotionIdle Motion = iota
	MotionRun
	MotionJump
	MotionFall
	MotionSlide
)

// String returns the string representation of the motion
func (m Motion) String() string {
	switch m {
	case MotionIdle:
		return "idle"
	case MotionRun:
		return "run"
	case MotionJump:
		return "jump"
	case MotionFall:
		return "fall"
	case MotionSlide:
		return "slide"
	default:
		return "unknown"
	}
}

// PlayerTuning holds the movement constants of a player
type PlayerTuning struct {
	Width, Height   float64 // Collision box against court and ground
	Speed           float64
	JumpSpeed       float64 // Negative is upward
	SlideMultiplier float64
	SlideDuration   float64
	Gravity         float64
	SpawnInset      float64
	SpriteW         float64 // Sprite bounds used for the ball hitbox
	SpriteH         float64
	HitboxInsetW    float64
	HitboxInsetH    float64
}

// Player is one avatar. It is confined to its own half of the court.
type Player struct {
	Body

	Side        Side
	Slot        int // Index of the control binding set
	Name        string
	CharacterID string
	Score       int

	Grounded       bool
	Sliding        bool
	SlideTimer     float64
	SlideDirection int // -1, 0 or 1
	FacingRight    bool

	SpawnX, SpawnY float64

	court  Court
	tuning PlayerTuning
}

// NewPlayer creates a grounded player at its spawn point.
func NewPlayer(side Side, slot int, name, characterID string, court Court, tuning PlayerTuning) *Player {
	p := &Player{
		Side:        side,
		Slot:        slot,
		Name:        name,
		CharacterID: characterID,
		court:       court,
		tuning:      tuning,
	}

	p.SpawnY = court.GroundY() - tuning.Height
	if side == SideLeft {
		p.SpawnX = tuning.SpawnInset
	} else {
		p.SpawnX = court.Width - tuning.SpawnInset - tuning.Width
	}
	p.Respawn()

	return p
}

// Tuning returns the movement constants
func (p *Player) Tuning() PlayerTuning {
	return p.tuning
}

// Respawn teleports the player to its spawn point and clears motion state.
// Score is kept.
func (p *Player) Respawn() {
	p.SetPos(p.SpawnX, p.SpawnY)
	p.Stop()
	p.Grounded = true
	p.Sliding = false
	p.SlideTimer = 0
	p.SlideDirection = 0
	p.FacingRight = p.Side == SideLeft
}

// Update runs one frame: intents, integration, then the half-court clamp.
func (p *Player) Update(in Intents, dt float64) {
	p.ApplyIntents(in, dt)
	p.Integrate(dt)
	p.ClampToHalfCourt()

	if p.VX > 0 {
		p.FacingRight = true
	} else if p.VX < 0 {
		p.FacingRight = false
	}
}

// ApplyIntents sets velocity from intents. Horizontal velocity is
// recomputed from scratch every frame. Smash is read by the ball, not here.
func (p *Player) ApplyIntents(in Intents, dt float64) {
	p.VX = 0

	if p.Sliding {
		p.SlideTimer -= dt
		if p.SlideTimer <= 0 {
			p.SlideTimer = 0
			p.Sliding = false
			p.SlideDirection = 0
		} else {
			p.VX = p.slideSpeed()
			return
		}
	}

	// Right wins when both are held
	if in.MoveLeft {
		p.VX = -p.tuning.Speed
	}
	if in.MoveRight {
		p.VX = p.tuning.Speed
	}

	if p.Grounded && in.Jump {
		p.VY = p.tuning.JumpSpeed
		p.Grounded = false
	}

	if p.Grounded && in.Slide {
		dir := 0
		if in.MoveRight {
			dir = 1
		} else if in.MoveLeft {
			dir = -1
		}
		if dir != 0 {
			p.Sliding = true
			p.SlideDirection = dir
			p.SlideTimer = p.tuning.SlideDuration
			p.VX = p.slideSpeed()
		}
	}
}

func (p *Player) slideSpeed() float64 {
	return p.tuning.SlideMultiplier * p.tuning.Speed * float64(p.SlideDirection)
}

// Integrate moves the player, applies gravity while airborne and lands it
// on the ground line.
func (p *Player) Integrate(dt float64) {
	p.Body.Integrate(dt)
	if !p.Grounded {
		p.ApplyGravity(p.tuning.Gravity, dt)
	}

	ground := p.court.GroundY()
	if p.Y+p.tuning.Height >= ground {
		p.Y = ground - p.tuning.Height
		p.VY = 0
		p.Grounded = true
	}
}

// HalfCourtBounds returns the allowed range of X for this player's side
func (p *Player) HalfCourtBounds() (min, max float64) {
	half := p.court.NetWidth / 2
	if p.Side == SideLeft {
		return 0, p.court.MidX() - half - p.tuning.Width
	}
	return p.court.MidX() + half, p.court.Width - p.tuning.Width
}

// ClampToHalfCourt keeps X on the player's side of the net
func (p *Player) ClampToHalfCourt() {
	min, max := p.HalfCourtBounds()
	if p.X < min {
		p.X = min
	}
	if p.X > max {
		p.X = max
	}
}

// Bounds returns the player's collision box
func (p *Player) Bounds() Rect {
	return Rect{X: p.X, Y: p.Y, W: p.tuning.Width, H: p.tuning.Height}
}

// Hitbox returns the area that strikes the ball: the sprite bounds shrunk
// by the configured insets.
func (p *Player) Hitbox() Rect {
	sprite := Rect{X: p.X, Y: p.Y, W: p.tuning.SpriteW, H: p.tuning.SpriteH}
	return sprite.Shrink(p.tuning.HitboxInsetW, p.tuning.HitboxInsetH)
}

// Motion classifies the current pose
func (p *Player) Motion() Motion {
	switch {
	case p.VY < 0:
		return MotionJump
	case p.VY > 1:
		return MotionFall
	case p.Sliding:
		return MotionSlide
	case p.VX != 0:
		return MotionRun
	default:
		return MotionIdle
	}
}
