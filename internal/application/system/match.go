package system

import (
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/younwookim/earthball/internal/application/state"
	"github.com/younwookim/earthball/internal/domain/entity"
	"github.com/younwookim/earthball/internal/infrastructure/config"
)

// Match owns the court, both players and the ball, and runs the
// Playing -> PointScored -> Playing / GameOver cycle.
type Match struct {
	id    string
	cfg   *config.GameConfig
	court entity.Court

	players [2]*entity.Player // Slot 0 plays the left half
	ball    *entity.Ball

	state  state.MatchState
	winner int     // Valid only in StateGameOver
	serve  entity.Side
	banner float64 // Remaining pause in StatePointScored

	audio AudioSink
	log   logrus.FieldLogger
}

// NewMatch creates a match in StatePlaying with the ball served from a
// random side. A nil rng is seeded from the clock; a nil audio sink or
// logger is replaced by a silent one.
func NewMatch(cfg *config.GameConfig, setup Setup, rng *rand.Rand, audio AudioSink, log logrus.FieldLogger) *Match {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if audio == nil {
		audio = NopAudio{}
	}
	if log == nil {
		l := logrus.New()
		l.SetLevel(logrus.PanicLevel)
		log = l
	}

	setup = setup.Normalize(cfg.Roster)
	court := CourtFrom(cfg)
	tuning := PlayerTuningFrom(cfg)

	m := &Match{
		id:     uuid.NewString(),
		cfg:    cfg,
		court:  court,
		state:  state.StatePlaying,
		winner: -1,
		audio:  audio,
	}
	m.log = log.WithField("match", m.id)

	sides := [2]entity.Side{entity.SideLeft, entity.SideRight}
	for i, side := range sides {
		ps := setup.Players[i]
		m.players[i] = entity.NewPlayer(side, i, ps.Name, ps.CharacterID, court, tuning)
	}
	m.ball = entity.NewBall(court, BallTuningFrom(cfg), rng)

	m.log.WithFields(logrus.Fields{
		"left":  m.players[0].Name,
		"right": m.players[1].Name,
	}).Info("match started")
	return m
}

// ID returns the match identifier used in logs and recordings
func (m *Match) ID() string {
	return m.id
}

// SetID overrides the identifier, used when replaying a recording
func (m *Match) SetID(id string) {
	m.id = id
	m.log = m.log.WithField("match", id)
}

// Court returns the court geometry
func (m *Match) Court() entity.Court {
	return m.court
}

// State returns the current match state
func (m *Match) State() state.MatchState {
	return m.state
}

// Winner returns the winning slot. ok is false unless the match is over.
func (m *Match) Winner() (slot int, ok bool) {
	if m.state != state.StateGameOver {
		return -1, false
	}
	return m.winner, true
}

// Scores returns both scores by slot
func (m *Match) Scores() [2]int {
	return [2]int{m.players[0].Score, m.players[1].Score}
}

// BannerRemaining returns the seconds left before play resumes after a point
func (m *Match) BannerRemaining() float64 {
	if m.state != state.StatePointScored {
		return 0
	}
	return m.banner
}

// Players returns snapshots of both players by slot
func (m *Match) Players() [2]PlayerSnapshot {
	return [2]PlayerSnapshot{snapshotPlayer(m.players[0]), snapshotPlayer(m.players[1])}
}

// Ball returns a snapshot of the ball
func (m *Match) Ball() BallSnapshot {
	return snapshotBall(m.ball)
}

// Step advances the match by dt seconds. While playing it updates both
// players, then the ball, then ball-player contacts in slot order, then
// scoring. After a point the simulation holds until the banner runs out.
// Nothing moves once the match is over.
func (m *Match) Step(dt float64, in FrameIntents) []Event {
	dt = entity.ClampDeltaTo(dt, m.cfg.Physics.MaxFrameDelta)

	switch m.state {
	case state.StatePlaying:
		return m.stepPlaying(dt, in)
	case state.StatePointScored:
		m.banner -= dt
		if m.banner <= 0 {
			m.resume()
		}
	}
	return nil
}

func (m *Match) stepPlaying(dt float64, in FrameIntents) []Event {
	for i, p := range m.players {
		p.Update(in[i], dt)
	}

	grounded := m.ball.Update(dt)

	for i, p := range m.players {
		switch m.ball.ResolveCollision(p.Hitbox(), in[i].Smash) {
		case entity.ContactHit:
			m.audio.Play(SoundHit)
		case entity.ContactSmash:
			m.audio.Play(SoundHit)
			m.audio.Play(SoundSmash)
			m.log.WithField("player", p.Name).Debug("smash")
		}
	}

	if !grounded {
		return nil
	}
	return m.awardPoint()
}

// awardPoint credits the player opposite the half the ball landed in.
// The next serve starts from the half the ball landed in.
func (m *Match) awardPoint() []Event {
	landed := m.court.SideOf(m.ball.X)
	slot := int(landed.Opposite())
	scorer := m.players[slot]
	scorer.Score++

	log := m.log.WithFields(logrus.Fields{
		"scorer": scorer.Name,
		"score":  m.Scores(),
	})

	if scorer.Score >= m.cfg.Match.WinScore {
		m.state = state.StateGameOver
		m.winner = slot
		m.audio.Play(SoundMatchEnd)
		log.Info("match over")
		return []Event{{Kind: EventGameOver, Player: slot, Name: scorer.Name}}
	}

	m.state = state.StatePointScored
	m.serve = landed
	m.banner = m.cfg.Match.BannerDuration
	m.audio.Play(SoundPointWon)
	log.Info("point scored")

	if m.banner <= 0 {
		m.resume()
	}
	return []Event{{Kind: EventPointScored, Player: slot, Name: scorer.Name}}
}

func (m *Match) resume() {
	m.ball.Reset(m.serve)
	for _, p := range m.players {
		p.Respawn()
	}
	m.banner = 0
	m.state = state.StatePlaying
}

// Rematch restarts the match from any state: scores go to zero, players
// return to their spawn points and the ball is served from a random side.
func (m *Match) Rematch() []Event {
	for _, p := range m.players {
		p.Score = 0
		p.Respawn()
	}
	side := m.ball.ResetRandom()
	m.winner = -1
	m.banner = 0
	m.state = state.StatePlaying

	m.log.WithField("serve", side.String()).Info("rematch")
	return []Event{{Kind: EventRematch, Player: -1}}
}
