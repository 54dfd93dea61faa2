package replay

import (
	"math/rand"

	"github.com/sirupsen/logrus"

	"github.com/younwookim/earthball/internal/application/state"
	"github.com/younwookim/earthball/internal/application/system"
	"github.com/younwookim/earthball/internal/infrastructure/config"
)

// Result summarises a headless replay
type Result struct {
	Frames int
	Scores [2]int
	State  state.MatchState
	Winner int // -1 unless the match ended
}

// NewMatch rebuilds the match a recording was made from. Audio is dropped.
func NewMatch(cfg *config.GameConfig, data ReplayData, log logrus.FieldLogger) *system.Match {
	m := system.NewMatch(cfg, data.Setup, rand.New(rand.NewSource(data.Seed)), system.NopAudio{}, log)
	if data.MatchID != "" {
		m.SetID(data.MatchID)
	}
	return m
}

// Run feeds every remaining recorded frame into m
func Run(m *system.Match, r *Replayer) Result {
	frames := 0
	for {
		fi, ok := r.Next()
		if !ok {
			break
		}
		m.Step(fi.DT, fi.Intents())
		if fi.RM {
			m.Rematch()
		}
		frames++
	}

	res := Result{
		Frames: frames,
		Scores: m.Scores(),
		State:  m.State(),
		Winner: -1,
	}
	if w, ok := m.Winner(); ok {
		res.Winner = w
	}
	return res
}

// CreateTestReplayData creates an idle recording for testing
func CreateTestReplayData(frames int, seed int64) ReplayData {
	data := ReplayData{
		Version: Version,
		Seed:    seed,
		Frames:  make([]FrameInput, frames),
	}
	for i := range data.Frames {
		data.Frames[i] = FrameInput{F: i, DT: 1.0 / 60}
	}
	return data
}
