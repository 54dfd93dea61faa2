package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/spf13/cast"
	"github.com/spf13/viper"
)

// EnvPrefix is the environment prefix for logger overrides (EARTHBALL_LOG_LEVEL, ...)
const EnvPrefix = "earthball_log"

// Config bundles everything loaded at startup
type Config struct {
	Game   *GameConfig
	Logger *LoggerConfig
}

// Loader loads game configuration from JSON files using fs.FS interface
type Loader struct {
	fsys     fs.FS
	basePath string
}

// NewLoader creates a new config loader from filesystem path
func NewLoader(basePath string) *Loader {
	return &Loader{
		fsys:     os.DirFS(basePath),
		basePath: basePath,
	}
}

// NewFSLoader creates a new config loader from fs.FS
func NewFSLoader(fsys fs.FS, basePath string) *Loader {
	return &Loader{
		fsys:     fsys,
		basePath: basePath,
	}
}

// LoadGame loads game.json on top of Default() and validates the result
func (l *Loader) LoadGame() (*GameConfig, error) {
	data, err := fs.ReadFile(l.fsys, "game.json")
	if err != nil {
		return nil, fmt.Errorf("failed to read game.json: %w", err)
	}

	cfg := Default()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse game.json: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("game.json: %w", err)
	}

	return cfg, nil
}

// LoadLogger loads logger.json through viper. A missing file yields defaults;
// EARTHBALL_LOG_* environment variables override either.
func (l *Loader) LoadLogger() (*LoggerConfig, error) {
	v := viper.New()
	v.SetConfigType("json")
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	data, err := fs.ReadFile(l.fsys, "logger.json")
	switch {
	case errors.Is(err, fs.ErrNotExist):
	case err != nil:
		return nil, fmt.Errorf("failed to read logger.json: %w", err)
	default:
		if err := v.ReadConfig(bytes.NewReader(data)); err != nil {
			return nil, fmt.Errorf("failed to parse logger.json: %w", err)
		}
	}

	cfg := DefaultLogger()
	if v.IsSet("level") {
		cfg.Level = cast.ToString(v.Get("level"))
	}
	if v.IsSet("format") {
		cfg.Format = cast.ToString(v.Get("format"))
	}
	if v.IsSet("file") {
		cfg.File = cast.ToString(v.Get("file"))
	}
	if v.IsSet("maxSize") {
		cfg.MaxSize = cast.ToInt(v.Get("maxSize"))
	}
	if v.IsSet("maxBackups") {
		cfg.MaxBackups = cast.ToInt(v.Get("maxBackups"))
	}
	if v.IsSet("maxAge") {
		cfg.MaxAge = cast.ToInt(v.Get("maxAge"))
	}
	if v.IsSet("compress") {
		cfg.Compress = cast.ToBool(v.Get("compress"))
	}

	return cfg, nil
}

// LoadAll loads all base configurations (game, logger)
func (l *Loader) LoadAll() (*Config, error) {
	game, err := l.LoadGame()
	if err != nil {
		return nil, err
	}

	logger, err := l.LoadLogger()
	if err != nil {
		return nil, err
	}

	return &Config{
		Game:   game,
		Logger: logger,
	}, nil
}
