// Package logger builds the process logger from LoggerConfig.
package logger

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/younwookim/earthball/internal/infrastructure/config"
)

// New creates a logrus logger. Output rotates through lumberjack when a
// file is configured, otherwise it goes to stderr.
func New(cfg *config.LoggerConfig) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(output(cfg))
	log.SetLevel(level(cfg.Level))

	switch cfg.Format {
	case "json":
		log.SetFormatter(&logrus.JSONFormatter{})
	default:
		log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	return log
}

func output(cfg *config.LoggerConfig) io.Writer {
	if cfg.File == "" {
		return os.Stderr
	}
	return &lumberjack.Logger{
		Filename:   cfg.File,
		MaxSize:    cfg.MaxSize,
		MaxBackups: cfg.MaxBackups,
		MaxAge:     cfg.MaxAge,
		Compress:   cfg.Compress,
	}
}

// level falls back to Info for unknown names
func level(name string) logrus.Level {
	lvl, err := logrus.ParseLevel(name)
	if err != nil {
		return logrus.InfoLevel
	}
	return lvl
}
