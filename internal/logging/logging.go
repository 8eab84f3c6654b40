// Package logging builds the process logger. The terminal belongs to the
// UI, so log lines only ever go to a file.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/kk-code-lab/cols/internal/config"
	"github.com/sirupsen/logrus"
)

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// DefaultLogFile is used when logging is enabled without an explicit path.
func DefaultLogFile() string {
	return filepath.Join(os.TempDir(), fmt.Sprintf("cols-%d.log", os.Getpid()))
}

// New returns a logger configured from cfg and the closer for its sink.
// With logging disabled the logger discards everything.
func New(cfg config.Config) (*logrus.Logger, io.Closer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}

	logger := logrus.New()
	logger.SetLevel(cfg.Level())
	logger.SetFormatter(&logrus.TextFormatter{
		DisableColors: true,
		FullTimestamp: true,
	})

	if !cfg.LoggingEnabled() {
		logger.SetOutput(io.Discard)
		return logger, nopCloser{}, nil
	}

	path := cfg.LogFile
	if path == "" {
		path = DefaultLogFile()
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, fmt.Errorf("failed to create log directory: %w", err)
	}
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open log file %s: %w", path, err)
	}
	logger.SetOutput(file)
	return logger, file, nil
}

// Component returns an entry tagged with the component name.
func Component(logger *logrus.Logger, name string) *logrus.Entry {
	return logger.WithField("component", name)
}
