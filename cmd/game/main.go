package main

import (
	"flag"
	"fmt"
	"io/fs"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/sirupsen/logrus"

	"github.com/younwookim/earthball/internal/application/game"
	"github.com/younwookim/earthball/internal/application/replay"
	"github.com/younwookim/earthball/internal/application/scene"
	"github.com/younwookim/earthball/internal/application/scene/playing"
	"github.com/younwookim/earthball/internal/application/scene/selection"
	"github.com/younwookim/earthball/internal/application/system"
	"github.com/younwookim/earthball/internal/infrastructure/audio"
	"github.com/younwookim/earthball/internal/infrastructure/config"
	"github.com/younwookim/earthball/internal/infrastructure/logger"
	"github.com/younwookim/earthball/internal/infrastructure/storage"
)

const appName = "earthball"

func main() {
	// Parse command line flags
	configDir := flag.String("config", "", "Read game.json and logger.json from this directory instead of the embedded ones")
	assetsDir := flag.String("assets", "", "Directory holding audio assets (cues are only logged when empty)")
	recordFlag := flag.String("record", "", "Record input to file (e.g., -record replay.json)")
	replayFlag := flag.String("replay", "", "Re-simulate a recording without a window and log the result")
	flag.Parse()

	loader, err := configLoader(*configDir)
	if err != nil {
		logrus.Fatalf("Failed to open configs: %v", err)
	}
	cfg, err := loader.LoadAll()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}

	log := logger.New(cfg.Logger)

	if *replayFlag != "" {
		if err := runReplay(cfg.Game, *replayFlag, log); err != nil {
			log.WithError(err).Fatal("replay failed")
		}
		return
	}

	sink := audioSink(cfg.Game, *assetsDir, log)

	store, err := storage.Open(appName)
	if err != nil {
		log.WithError(err).Warn("setup will not be remembered")
		store = storage.NewMemory()
	}

	newMatch := func(setup system.Setup) scene.Scene {
		return playing.New(cfg.Game, setup, playing.Options{
			Audio:      sink,
			Log:        log,
			RecordPath: *recordFlag,
		})
	}

	display := cfg.Game.Display
	g := game.New(
		selection.New(cfg.Game, store, log, newMatch),
		display.ScreenWidth, display.ScreenHeight,
		game.WithClock(system.NewFrameClock(cfg.Game.Physics.MaxFrameDelta)),
	)

	// Set up ebiten
	ebiten.SetWindowSize(display.ScreenWidth*display.Scale, display.ScreenHeight*display.Scale)
	ebiten.SetWindowTitle(display.Title)
	ebiten.SetTPS(display.Framerate)
	ebiten.SetWindowClosingHandled(true)

	// Run game
	if err := ebiten.RunGame(g); err != nil {
		log.WithError(err).Fatal("game stopped")
	}
	log.Info("bye")
}

// configLoader reads from dir when given, otherwise from the embedded configs
func configLoader(dir string) (*config.Loader, error) {
	if dir != "" {
		return config.NewLoader(dir), nil
	}

	fsys, err := fs.Sub(configFS, "configs")
	if err != nil {
		return nil, fmt.Errorf("failed to get config subfs: %w", err)
	}
	return config.NewFSLoader(fsys, "configs"), nil
}

func audioSink(cfg *config.GameConfig, assetsDir string, log logrus.FieldLogger) system.AudioSink {
	if assetsDir == "" {
		return system.LogAudio{Log: log}
	}
	return audio.New(os.DirFS(assetsDir), cfg.Audio, log)
}

// runReplay re-simulates a recording and logs the outcome
func runReplay(cfg *config.GameConfig, path string, log logrus.FieldLogger) error {
	data, err := replay.LoadReplay(path)
	if err != nil {
		return err
	}

	m := replay.NewMatch(cfg, *data, log)
	res := replay.Run(m, replay.NewReplayer(*data))

	log.WithFields(logrus.Fields{
		"file":   path,
		"frames": res.Frames,
		"scores": res.Scores,
		"state":  res.State.String(),
		"winner": res.Winner,
	}).Info("replay finished")
	return nil
}
