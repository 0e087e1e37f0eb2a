// Package logging configures the game's debug log.
package logging

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"

	"minewalk/config"
)

// New returns a logger writing to the configured log file. A disabled log
// discards everything, since the terminal belongs to the game.
// The returned closer must be closed on exit.
func New(cfg *config.Config) (*logrus.Logger, io.Closer, error) {
	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{
		DisableColors: true,
		FullTimestamp: true,
	})

	if !cfg.Log.Enabled {
		log.SetOutput(io.Discard)
		return log, nopCloser{}, nil
	}

	level, err := logrus.ParseLevel(cfg.Log.Level)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid log level: %w", err)
	}
	log.SetLevel(level)

	path, err := cfg.LogPath()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to locate log file: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open log file: %w", err)
	}
	log.SetOutput(f)
	return log, f, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
