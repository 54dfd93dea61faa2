package selection

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/earthball/internal/application/scene"
	"github.com/younwookim/earthball/internal/application/system"
	"github.com/younwookim/earthball/internal/infrastructure/config"
	"github.com/younwookim/earthball/internal/infrastructure/storage"
)

// fakeKeys feeds one frame of key presses and typed text at a time
type fakeKeys struct {
	pressed map[ebiten.Key]bool
	typed   []rune
}

func (f *fakeKeys) input() Input {
	return Input{
		JustPressed: func(k ebiten.Key) bool { return f.pressed[k] },
		Chars: func(buf []rune) []rune {
			return append(buf, f.typed...)
		},
	}
}

func (f *fakeKeys) frame(s *Selection, text string, keys ...ebiten.Key) scene.Scene {
	f.typed = []rune(text)
	f.pressed = make(map[ebiten.Key]bool)
	for _, k := range keys {
		f.pressed[k] = true
	}
	next, _ := s.Update(1.0 / 60)
	return next
}

type stubScene struct {
	scene.Scene
	setup system.Setup
}

func createTestSelection(store Store) (*Selection, *fakeKeys, *test.Hook) {
	log, hook := test.NewNullLogger()
	keys := &fakeKeys{}
	s := New(config.Default(), store, log, func(setup system.Setup) scene.Scene {
		return &stubScene{setup: setup}
	})
	s.SetInput(keys.input())
	s.OnEnter()
	return s, keys, hook
}

func TestSelection_Defaults(t *testing.T) {
	s, _, _ := createTestSelection(nil)

	setup := s.Setup()
	assert.Equal(t, "maskdude", setup.Players[0].CharacterID)
	assert.Equal(t, "pinkman", setup.Players[1].CharacterID)
	assert.Empty(t, setup.Players[0].Name)
	assert.Equal(t, 0, s.Active())
}

func TestSelection_TypingAndCycling(t *testing.T) {
	s, keys, _ := createTestSelection(nil)

	keys.frame(s, "Ann")
	keys.frame(s, "", ebiten.KeyArrowRight)
	keys.frame(s, "", ebiten.KeyTab)
	keys.frame(s, "Bobby")
	keys.frame(s, "", ebiten.KeyBackspace)
	keys.frame(s, "", ebiten.KeyArrowLeft)
	keys.frame(s, "", ebiten.KeyArrowLeft)
	keys.frame(s, "", ebiten.KeyArrowLeft)

	setup := s.Setup()
	assert.Equal(t, playerSetup("ninjafrog", "Ann"), setup.Players[0])
	assert.Equal(t, playerSetup("virtualguy", "Bobb"), setup.Players[1])
	assert.Equal(t, 1, s.Active())
}

func TestSelection_NameLimit(t *testing.T) {
	s, keys, _ := createTestSelection(nil)

	keys.frame(s, "abcdefghijklmnopqrst")
	keys.frame(s, "\t\x01")

	assert.Equal(t, "abcdefghijkl", s.Setup().Players[0].Name)
}

func TestSelection_Confirm(t *testing.T) {
	store := storage.NewMemory()
	s, keys, hook := createTestSelection(store)

	keys.frame(s, "  Ann")
	next := keys.frame(s, "", ebiten.KeyEnter)

	require.IsType(t, &stubScene{}, next)
	setup := next.(*stubScene).setup
	assert.Equal(t, "Ann", setup.Players[0].Name)
	assert.Equal(t, "Player 2", setup.Players[1].Name)
	assert.Equal(t, "players confirmed", hook.LastEntry().Message)

	var saved system.Setup
	found, err := store.LoadJSON(StoreKey, &saved)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, setup, saved)

	t.Run("next visit is prefilled", func(t *testing.T) {
		again, _, _ := createTestSelection(store)
		assert.Equal(t, setup, again.Setup())
	})
}

func TestSelection_PrefillDropsUnknownCharacters(t *testing.T) {
	store := storage.NewMemory()
	require.NoError(t, store.SaveJSON(StoreKey, system.Setup{Players: [2]system.PlayerSetup{
		{CharacterID: "robot", Name: "Ann"},
		{CharacterID: "ninjafrog", Name: "Bob"},
	}}))

	s, _, _ := createTestSelection(store)

	setup := s.Setup()
	assert.Equal(t, playerSetup("maskdude", "Ann"), setup.Players[0])
	assert.Equal(t, playerSetup("ninjafrog", "Bob"), setup.Players[1])
}

func playerSetup(character, name string) system.PlayerSetup {
	return system.PlayerSetup{CharacterID: character, Name: name}
}
