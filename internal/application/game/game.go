// Package game provides the main game loop manager that handles Scene transitions.
package game

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/younwookim/earthball/internal/application/scene"
	"github.com/younwookim/earthball/internal/application/system"
	"github.com/younwookim/earthball/internal/domain/entity"
)

// Clock yields the seconds elapsed since the previous frame
type Clock interface {
	Tick() float64
}

type fixedClock float64

func (c fixedClock) Tick() float64 { return float64(c) }

// Option configures a Game
type Option func(*Game)

// WithClock replaces the wall clock
func WithClock(c Clock) Option {
	return func(g *Game) { g.clock = c }
}

// WithQuit replaces the quit check run at the start of every frame
func WithQuit(quit func() bool) Option {
	return func(g *Game) { g.quit = quit }
}

// Game implements ebiten.Game and manages Scene transitions.
type Game struct {
	current scene.Scene
	screenW int
	screenH int
	clock   Clock
	quit    func() bool
}

// New creates a new Game with the given initial scene.
// The initial scene's OnEnter is called immediately.
func New(initialScene scene.Scene, screenW, screenH int, opts ...Option) *Game {
	g := &Game{
		current: initialScene,
		screenW: screenW,
		screenH: screenH,
		clock:   system.NewFrameClock(entity.MaxFrameDelta),
		quit:    QuitRequested,
	}
	for _, opt := range opts {
		opt(g)
	}
	g.current.OnEnter()
	return g
}

// QuitRequested reports Escape or a window close request
func QuitRequested() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyEscape) || ebiten.IsWindowBeingClosed()
}

// Update updates the current scene and handles scene transitions.
// Implements ebiten.Game interface.
func (g *Game) Update() error {
	if g.quit() {
		g.current.OnExit()
		return ebiten.Termination
	}

	next, err := g.current.Update(g.clock.Tick())
	if err != nil {
		return err
	}

	// Handle scene transition
	if next != nil {
		g.current.OnExit()
		g.current = next
		g.current.OnEnter()
	}

	return nil
}

// Draw renders the current scene.
// Implements ebiten.Game interface.
func (g *Game) Draw(screen *ebiten.Image) {
	g.current.Draw(screen)
}

// Layout returns the game's logical screen dimensions.
// Implements ebiten.Game interface.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.screenW, g.screenH
}

// SetDT makes every frame advance by a fixed dt.
// Useful for testing or custom frame rates.
func (g *Game) SetDT(dt float64) {
	g.clock = fixedClock(dt)
}
