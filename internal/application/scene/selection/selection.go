// Package selection provides the character and name selection screen.
package selection

import (
	"fmt"
	"unicode"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/sirupsen/logrus"

	"github.com/younwookim/earthball/internal/application/scene"
	"github.com/younwookim/earthball/internal/application/system"
	"github.com/younwookim/earthball/internal/infrastructure/config"
)

// StoreKey is the key the last confirmed setup is saved under
const StoreKey = "setup"

// Store persists the last confirmed setup between runs
type Store interface {
	LoadJSON(key string, v any) (bool, error)
	SaveJSON(key string, v any) error
}

// Input is the keyboard surface the screen reads
type Input struct {
	JustPressed func(ebiten.Key) bool
	Chars       func([]rune) []rune // Appends characters typed this frame
}

// KeyboardInput reads the real keyboard
func KeyboardInput() Input {
	return Input{
		JustPressed: inpututil.IsKeyJustPressed,
		Chars:       ebiten.AppendInputChars,
	}
}

// Selection lets both players pick a character and type a name.
// Left/Right cycles the active slot's character, Tab switches slot,
// Backspace deletes and Enter starts the match.
type Selection struct {
	roster  config.RosterConfig
	screenW int
	screenH int

	chars  [2]int
	names  [2][]rune
	active int

	store Store
	input Input
	log   logrus.FieldLogger
	next  func(system.Setup) scene.Scene

	buf []rune
}

// New creates the selection screen. next builds the scene a confirmed setup
// leads to. store may be nil.
func New(cfg *config.GameConfig, store Store, log logrus.FieldLogger, next func(system.Setup) scene.Scene) *Selection {
	s := &Selection{
		roster:  cfg.Roster,
		screenW: cfg.Display.ScreenWidth,
		screenH: cfg.Display.ScreenHeight,
		store:   store,
		input:   KeyboardInput(),
		log:     log,
		next:    next,
	}
	s.apply(system.DefaultSetup(cfg.Roster))
	return s
}

// SetInput replaces the keyboard
func (s *Selection) SetInput(in Input) {
	s.input = in
}

// OnEnter prefills the slots with the last confirmed setup
func (s *Selection) OnEnter() {
	if s.store == nil {
		return
	}

	var saved system.Setup
	found, err := s.store.LoadJSON(StoreKey, &saved)
	if err != nil {
		s.log.WithError(err).Warn("could not load last setup")
		return
	}
	if found {
		s.apply(saved.Normalize(s.roster))
	}
}

// OnExit is called when leaving this scene
func (s *Selection) OnExit() {}

// Setup returns the current choices, not yet normalized
func (s *Selection) Setup() system.Setup {
	var setup system.Setup
	for i := range setup.Players {
		if len(s.roster.Characters) > 0 {
			setup.Players[i].CharacterID = s.roster.Characters[s.chars[i]]
		}
		setup.Players[i].Name = string(s.names[i])
	}
	return setup
}

// Active returns the slot being edited
func (s *Selection) Active() int {
	return s.active
}

// Update handles typing and navigation (implements scene.Scene)
func (s *Selection) Update(_ float64) (scene.Scene, error) {
	s.buf = s.input.Chars(s.buf[:0])
	for _, r := range s.buf {
		s.typeRune(r)
	}

	pressed := s.input.JustPressed
	switch {
	case pressed(ebiten.KeyEnter), pressed(ebiten.KeyNumpadEnter):
		return s.confirm(), nil
	case pressed(ebiten.KeyTab):
		s.active = 1 - s.active
	case pressed(ebiten.KeyBackspace):
		if n := len(s.names[s.active]); n > 0 {
			s.names[s.active] = s.names[s.active][:n-1]
		}
	case pressed(ebiten.KeyArrowLeft):
		s.cycle(-1)
	case pressed(ebiten.KeyArrowRight):
		s.cycle(1)
	}
	return nil, nil
}

func (s *Selection) typeRune(r rune) {
	if !unicode.IsPrint(r) {
		return
	}
	if s.roster.MaxNameLength > 0 && len(s.names[s.active]) >= s.roster.MaxNameLength {
		return
	}
	s.names[s.active] = append(s.names[s.active], r)
}

func (s *Selection) cycle(step int) {
	n := len(s.roster.Characters)
	if n == 0 {
		return
	}
	s.chars[s.active] = (s.chars[s.active] + step + n) % n
}

func (s *Selection) confirm() scene.Scene {
	setup := s.Setup().Normalize(s.roster)

	if s.store != nil {
		if err := s.store.SaveJSON(StoreKey, setup); err != nil {
			s.log.WithError(err).Warn("could not save setup")
		}
	}

	s.log.WithFields(logrus.Fields{
		"left":  setup.Players[0].Name,
		"right": setup.Players[1].Name,
	}).Info("players confirmed")
	return s.next(setup)
}

func (s *Selection) apply(setup system.Setup) {
	for i, p := range setup.Players {
		s.names[i] = []rune(p.Name)
		for idx, id := range s.roster.Characters {
			if id == p.CharacterID {
				s.chars[i] = idx
			}
		}
	}
}

// Draw renders both slots
func (s *Selection) Draw(screen *ebiten.Image) {
	screen.Fill(scene.ColorSky)

	ebitenutil.DebugPrintAt(screen, "EARTHBALL", s.screenW/2-27, 40)
	ebitenutil.DebugPrintAt(screen, "Left/Right: character | Type: name | Tab: switch player | Enter: play", s.screenW/2-200, s.screenH-30)

	setup := s.Setup()
	for i, p := range setup.Players {
		x := float64(s.screenW/4 + i*s.screenW/2)
		y := float64(s.screenH / 2)

		ebitenutil.DrawRect(screen, x-50, y-100, 100, 100, scene.CharacterColor(p.CharacterID))

		marker := " "
		cursor := ""
		if i == s.active {
			marker = ">"
			cursor = "_"
		}
		label := fmt.Sprintf("%s Player %d\n  < %s >\n  Name: %s%s", marker, i+1, p.CharacterID, p.Name, cursor)
		ebitenutil.DebugPrintAt(screen, label, int(x)-60, int(y)+20)
	}
}
