package system

import "github.com/sirupsen/logrus"

// Sound is a discrete audio cue emitted by the match
type Sound int

const (
	SoundHit Sound = iota
	SoundSmash
	SoundPointWon
	SoundMatchEnd
)

// String returns the sound name used in audio config
func (s Sound) String() string {
	switch s {
	case SoundHit:
		return "hit"
	case SoundSmash:
		return "smash"
	case SoundPointWon:
		return "pointWon"
	case SoundMatchEnd:
		return "matchEnd"
	default:
		return "unknown"
	}
}

// Sounds lists every cue
var Sounds = []Sound{SoundHit, SoundSmash, SoundPointWon, SoundMatchEnd}

// AudioSink receives cues. Playback is entirely the sink's concern.
type AudioSink interface {
	Play(s Sound)
}

// NopAudio drops every cue
type NopAudio struct{}

func (NopAudio) Play(Sound) {}

// LogAudio logs cues at debug level; used when no audio assets are available
type LogAudio struct {
	Log logrus.FieldLogger
}

func (a LogAudio) Play(s Sound) {
	a.Log.WithField("sound", s.String()).Debug("audio cue")
}
