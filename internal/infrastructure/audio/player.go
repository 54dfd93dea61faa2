// Package audio plays match cues and background music through ebiten.
package audio

import (
	"bytes"
	"fmt"
	"io"
	"io/fs"
	"path"
	"strings"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/vorbis"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
	"github.com/sirupsen/logrus"

	"github.com/younwookim/earthball/internal/application/system"
	"github.com/younwookim/earthball/internal/infrastructure/config"
)

// Player implements system.AudioSink on an ebiten audio context.
// Sound effects are decoded once up front; music is streamed and looped.
type Player struct {
	ctx   *audio.Context
	fsys  fs.FS
	cfg   config.AudioConfig
	log   logrus.FieldLogger
	sfx   map[system.Sound][]byte
	music *audio.Player
}

// New creates a player reading assets from fsys. Sounds that fail to load
// are logged and stay silent.
func New(fsys fs.FS, cfg config.AudioConfig, log logrus.FieldLogger) *Player {
	ctx := audio.CurrentContext()
	if ctx == nil {
		ctx = audio.NewContext(cfg.SampleRate)
	}

	p := &Player{
		ctx:  ctx,
		fsys: fsys,
		cfg:  cfg,
		log:  log,
		sfx:  make(map[system.Sound][]byte),
	}

	paths, unknown := soundPaths(cfg)
	for _, name := range unknown {
		log.WithField("sound", name).Warn("unknown sound in audio config")
	}
	for s, file := range paths {
		data, err := p.decodeAll(file)
		if err != nil {
			log.WithError(err).WithField("sound", s.String()).Warn("sound disabled")
			continue
		}
		p.sfx[s] = data
	}
	return p
}

// Play starts a one-shot cue. The match-end cue also stops the music.
func (p *Player) Play(s system.Sound) {
	if s == system.SoundMatchEnd {
		p.StopMusic()
	}

	data, ok := p.sfx[s]
	if !ok || p.cfg.SFXVolume <= 0 {
		return
	}

	player := p.ctx.NewPlayerFromBytes(data)
	player.SetVolume(p.cfg.SFXVolume)
	player.Play()
}

// PlayMusic starts the looping background track if it is not playing
func (p *Player) PlayMusic() {
	if p.music == nil {
		m, err := p.loadMusic()
		if err != nil {
			p.log.WithError(err).Warn("music disabled")
			return
		}
		p.music = m
	}
	if !p.music.IsPlaying() {
		p.music.Play()
	}
}

// RestartMusic plays the background track from the beginning
func (p *Player) RestartMusic() {
	if p.music != nil {
		if err := p.music.Rewind(); err != nil {
			p.log.WithError(err).Warn("failed to rewind music")
		}
	}
	p.PlayMusic()
}

// StopMusic pauses the background track
func (p *Player) StopMusic() {
	if p.music != nil {
		p.music.Pause()
	}
}

func (p *Player) loadMusic() (*audio.Player, error) {
	if p.cfg.Music == "" {
		return nil, fmt.Errorf("no music configured")
	}

	data, err := fs.ReadFile(p.fsys, p.cfg.Music)
	if err != nil {
		return nil, fmt.Errorf("failed to read music file %s: %w", p.cfg.Music, err)
	}

	stream, err := vorbis.DecodeWithSampleRate(p.ctx.SampleRate(), bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to decode music ogg %s: %w", p.cfg.Music, err)
	}

	player, err := p.ctx.NewPlayer(audio.NewInfiniteLoop(stream, stream.Length()))
	if err != nil {
		return nil, fmt.Errorf("failed to create music player: %w", err)
	}
	player.SetVolume(p.cfg.MusicVolume)
	return player, nil
}

func (p *Player) decodeAll(file string) ([]byte, error) {
	data, err := fs.ReadFile(p.fsys, file)
	if err != nil {
		return nil, fmt.Errorf("failed to read audio file %s: %w", file, err)
	}

	var stream io.Reader
	switch format(file) {
	case formatOgg:
		stream, err = vorbis.DecodeWithSampleRate(p.ctx.SampleRate(), bytes.NewReader(data))
	case formatWav:
		stream, err = wav.DecodeWithSampleRate(p.ctx.SampleRate(), bytes.NewReader(data))
	default:
		return nil, fmt.Errorf("unsupported audio format: %s", path.Ext(file))
	}
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", file, err)
	}

	decoded, err := io.ReadAll(stream)
	if err != nil {
		return nil, fmt.Errorf("failed to read decoded audio %s: %w", file, err)
	}
	return decoded, nil
}

type audioFormat int

const (
	formatUnknown audioFormat = iota
	formatOgg
	formatWav
)

func format(file string) audioFormat {
	switch strings.ToLower(path.Ext(file)) {
	case ".ogg":
		return formatOgg
	case ".wav":
		return formatWav
	default:
		return formatUnknown
	}
}

// soundPaths resolves the configured sound names. Names that match no cue
// are returned separately.
func soundPaths(cfg config.AudioConfig) (map[system.Sound]string, []string) {
	byName := make(map[string]system.Sound, len(system.Sounds))
	for _, s := range system.Sounds {
		byName[s.String()] = s
	}

	paths := make(map[system.Sound]string)
	var unknown []string
	for name, file := range cfg.Sounds {
		s, ok := byName[name]
		if !ok {
			unknown = append(unknown, name)
			continue
		}
		paths[s] = file
	}
	return paths, unknown
}
