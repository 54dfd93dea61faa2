package system

import (
	"math/rand"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"

	"github.com/younwookim/earthball/internal/infrastructure/config"
)

const testFrame = 1.0 / 60

type recordingAudio struct {
	sounds []Sound
}

func (a *recordingAudio) Play(s Sound) {
	a.sounds = append(a.sounds, s)
}

func createTestSetup() Setup {
	return Setup{Players: [2]PlayerSetup{
		{CharacterID: "maskdude", Name: "Ann"},
		{CharacterID: "pinkman", Name: "Bob"},
	}}
}

func createTestMatch() (*Match, *recordingAudio, *test.Hook) {
	return createTestMatchWithConfig(config.Default())
}

func createTestMatchWithConfig(cfg *config.GameConfig) (*Match, *recordingAudio, *test.Hook) {
	log, hook := test.NewNullLogger()
	log.SetLevel(logrus.DebugLevel)
	audio := &recordingAudio{}
	m := NewMatch(cfg, createTestSetup(), rand.New(rand.NewSource(1)), audio, log)
	return m, audio, hook
}

// dropBallAt puts the ball just above the ground line, falling, with both
// players moved out of its way.
func dropBallAt(m *Match, x float64) {
	for _, p := range m.players {
		lo, hi := p.HalfCourtBounds()
		if x < m.court.MidX() {
			p.X = hi
		} else {
			p.X = lo
		}
	}
	m.ball.X = x
	m.ball.Y = m.court.GroundY() - m.ball.Radius - 1
	m.ball.VX = 0
	m.ball.VY = 200
}
