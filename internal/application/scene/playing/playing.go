// Package playing provides the match scene.
package playing

import (
	"fmt"
	"image/color"
	"math"
	"math/rand"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/sirupsen/logrus"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"github.com/younwookim/earthball/internal/application/replay"
	"github.com/younwookim/earthball/internal/application/scene"
	"github.com/younwookim/earthball/internal/application/state"
	"github.com/younwookim/earthball/internal/application/system"
	"github.com/younwookim/earthball/internal/infrastructure/config"
)

// Music is implemented by audio sinks that also play background music
type Music interface {
	PlayMusic()
	RestartMusic()
	StopMusic()
}

// Options configures a Playing scene. Zero values fall back to the
// keyboard, the mouse, a silent sink and a clock seed.
type Options struct {
	Audio      system.AudioSink
	Log        logrus.FieldLogger
	Keys       system.KeyState
	Confirm    func() bool // Play-again confirmation while the match is over
	Seed       int64
	RecordPath string
}

// Playing runs one match between two local players
type Playing struct {
	cfg     *config.GameConfig
	setup   system.Setup
	match   *system.Match
	input   *system.InputSystem
	audio   system.AudioSink
	music   Music
	log     logrus.FieldLogger
	confirm func() bool
	seed    int64
	screenW int
	screenH int

	banner      *gween.Tween
	bannerAlpha float32
	bannerText  string

	recorder   *replay.Recorder
	recordPath string
}

// New creates a match scene for a confirmed setup
func New(cfg *config.GameConfig, setup system.Setup, opts Options) *Playing {
	if opts.Audio == nil {
		opts.Audio = system.NopAudio{}
	}
	if opts.Log == nil {
		opts.Log = logrus.StandardLogger()
	}
	if opts.Confirm == nil {
		opts.Confirm = confirmPressed
	}
	if opts.Seed == 0 {
		opts.Seed = time.Now().UnixNano()
	}

	input := system.NewInputSystem(cfg.Controls)
	if opts.Keys != nil {
		input = system.NewInputSystemWithKeys(cfg.Controls, opts.Keys)
	}

	p := &Playing{
		cfg:        cfg,
		setup:      setup,
		input:      input,
		audio:      opts.Audio,
		log:        opts.Log,
		confirm:    opts.Confirm,
		seed:       opts.Seed,
		screenW:    cfg.Display.ScreenWidth,
		screenH:    cfg.Display.ScreenHeight,
		recordPath: opts.RecordPath,
	}
	p.music, _ = opts.Audio.(Music)

	// Seeded the same way replay.NewMatch rebuilds it
	p.match = system.NewMatch(cfg, setup, rand.New(rand.NewSource(p.seed)), opts.Audio, opts.Log)

	if p.recordPath != "" {
		p.recorder = replay.NewRecorder(p.seed, p.match.ID(), setup)
		p.log.WithFields(logrus.Fields{"file": p.recordPath, "seed": p.seed}).Info("recording enabled")
	}
	return p
}

func confirmPressed() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyEnter) ||
		inpututil.IsKeyJustPressed(ebiten.KeySpace) ||
		inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)
}

// Match returns the running match
func (p *Playing) Match() *system.Match {
	return p.match
}

// Update advances the match (implements scene.Scene)
func (p *Playing) Update(dt float64) (scene.Scene, error) {
	if p.match.State() == state.StateGameOver {
		if p.confirm() {
			p.rematch()
		}
		return nil, nil
	}

	p.updateBanner(dt)

	in := p.input.Intents()
	if p.recorder != nil {
		p.recorder.RecordFrame(dt, in)
	}

	for _, ev := range p.match.Step(dt, in) {
		p.handle(ev)
	}
	return nil, nil
}

func (p *Playing) updateBanner(dt float64) {
	if p.banner == nil {
		return
	}

	alpha, done := p.banner.Update(float32(dt))
	p.bannerAlpha = alpha
	if done || p.match.State() != state.StatePointScored {
		p.banner = nil
		p.bannerAlpha = 0
	}
}

func (p *Playing) handle(ev system.Event) {
	scores := p.match.Scores()

	switch ev.Kind {
	case system.EventPointScored:
		p.bannerText = fmt.Sprintf("%s scores!  %d - %d", ev.Name, scores[0], scores[1])
		if d := p.cfg.Match.BannerDuration; d > 0 {
			p.banner = gween.New(1, 0, float32(d), ease.InQuad)
			p.bannerAlpha = 1
		}
	case system.EventGameOver:
		p.banner = nil
		p.bannerAlpha = 0
		p.bannerText = fmt.Sprintf("%s wins!  %d - %d", ev.Name, scores[0], scores[1])
		p.saveRecording()
	case system.EventRematch:
		p.banner = nil
		p.bannerAlpha = 0
		p.bannerText = ""
	}
}

func (p *Playing) rematch() {
	for _, ev := range p.match.Rematch() {
		p.handle(ev)
	}
	if p.recorder != nil {
		p.recorder.RecordRematch()
	}
	if p.music != nil {
		p.music.RestartMusic()
	}
}

// saveRecording saves the current recording to file
func (p *Playing) saveRecording() {
	if p.recorder == nil || p.recorder.FrameCount() == 0 {
		return
	}

	filename := p.recordPath
	if filename == "" {
		filename = replay.GenerateFilename()
	}

	if err := p.recorder.Save(filename); err != nil {
		p.log.WithError(err).Error("failed to save recording")
		return
	}
	p.log.WithFields(logrus.Fields{"file": filename, "frames": p.recorder.FrameCount()}).Info("recording saved")
}

// Draw renders the court, both players, the ball and the overlays
func (p *Playing) Draw(screen *ebiten.Image) {
	screen.Fill(scene.ColorSky)

	court := p.match.Court()
	ground := p.cfg.Court.GroundDrawn
	ebitenutil.DrawRect(screen, 0, court.Height-ground, court.Width, ground, scene.ColorGround)

	net := court.Net()
	ebitenutil.DrawRect(screen, net.X, net.Y, net.W, net.H, scene.ColorNet)

	for _, pl := range p.match.Players() {
		p.drawPlayer(screen, pl)
	}
	p.drawBall(screen, p.match.Ball())
	p.drawScores(screen)

	if p.bannerAlpha > 0 {
		p.drawBanner(screen)
	}
	if p.match.State() == state.StateGameOver {
		p.drawGameOverOverlay(screen)
	}
}

func (p *Playing) drawPlayer(screen *ebiten.Image, pl system.PlayerSnapshot) {
	body := pl.Sprite
	if pl.Sliding {
		// Flattened while sliding
		body.Y += body.H / 2
		body.H /= 2
	}
	ebitenutil.DrawRect(screen, body.X, body.Y, body.W, body.H, scene.CharacterColor(pl.CharacterID))

	eyeX := body.X + body.W*0.25
	if pl.FacingRight {
		eyeX = body.X + body.W*0.65
	}
	ebitenutil.DrawRect(screen, eyeX, body.Y+body.H*0.2, body.W*0.1, body.H*0.1, scene.ColorText)

	ebitenutil.DebugPrintAt(screen, pl.Name, int(pl.Sprite.X), int(pl.Sprite.Y)-16)
}

func (p *Playing) drawBall(screen *ebiten.Image, b system.BallSnapshot) {
	vector.DrawFilledCircle(screen, float32(b.X), float32(b.Y), float32(b.Radius), scene.ColorBall, true)

	rad := b.Spin * math.Pi / 180
	dx := float32(math.Cos(rad) * b.Radius)
	dy := float32(math.Sin(rad) * b.Radius)
	cx, cy := float32(b.X), float32(b.Y)
	vector.StrokeLine(screen, cx-dx, cy-dy, cx+dx, cy+dy, 2, scene.ColorText, true)
}

func (p *Playing) drawScores(screen *ebiten.Image) {
	players := p.match.Players()
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("%s: %d", players[0].Name, players[0].Score), 10, 10)

	right := fmt.Sprintf("%s: %d", players[1].Name, players[1].Score)
	ebitenutil.DebugPrintAt(screen, right, p.screenW-10-6*len(right), 10)
}

func (p *Playing) drawBanner(screen *ebiten.Image) {
	a := uint8(float32(scene.ColorShade.A) * p.bannerAlpha)
	ebitenutil.DrawRect(screen, 0, float64(p.screenH/2-30), float64(p.screenW), 60, color.RGBA{0, 0, 0, a})
	ebitenutil.DebugPrintAt(screen, p.bannerText, p.screenW/2-3*len(p.bannerText), p.screenH/2-8)
}

func (p *Playing) drawGameOverOverlay(screen *ebiten.Image) {
	ebitenutil.DrawRect(screen, 0, 0, float64(p.screenW), float64(p.screenH), scene.ColorShade)

	text := p.bannerText + "\n\nPress Enter or click to play again"
	ebitenutil.DebugPrintAt(screen, text, p.screenW/2-110, p.screenH/2-30)
}

// OnEnter starts the music
func (p *Playing) OnEnter() {
	if p.music != nil {
		p.music.PlayMusic()
	}
}

// OnExit saves any pending recording and stops the music
func (p *Playing) OnExit() {
	p.saveRecording()
	if p.music != nil {
		p.music.StopMusic()
	}
}
