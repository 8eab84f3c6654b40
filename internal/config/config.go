// Package config holds the runtime settings of cols. There is no config
// file; values come from defaults, the environment and command-line flags,
// in that order of increasing precedence.
package config

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
)

const (
	EnvLogLevel = "COLS_LOG_LEVEL"
	EnvLogFile  = "COLS_LOG_FILE"
)

// Config is the resolved set of options for one run.
type Config struct {
	// LogLevel is a logrus level name. Logging stays off unless a log file
	// is set or Debug is enabled.
	LogLevel string
	// LogFile is where log lines go. Empty picks a per-process file in the
	// temp dir when logging is enabled.
	LogFile string
	// Debug forces the debug level and enables logging.
	Debug bool
}

// Default returns the settings used when nothing is configured.
func Default() Config {
	return Config{
		LogLevel: logrus.InfoLevel.String(),
	}
}

// BindFlags registers the command-line flags that write into c.
func (c *Config) BindFlags(fs *pflag.FlagSet) {
	fs.StringVar(&c.LogLevel, "log-level", c.LogLevel, "log level (trace, debug, info, warn, error)")
	fs.StringVar(&c.LogFile, "log-file", c.LogFile, "write logs to this file")
	fs.BoolVarP(&c.Debug, "verbose", "v", c.Debug, "enable debug logging")
}

// ApplyEnv overlays environment settings. Call it before flags are parsed so
// explicit flags win.
func (c *Config) ApplyEnv(getenv func(string) string) {
	if v := strings.TrimSpace(getenv(EnvLogLevel)); v != "" {
		c.LogLevel = v
	}
	if v := strings.TrimSpace(getenv(EnvLogFile)); v != "" {
		c.LogFile = v
	}
}

// Validate reports settings that cannot be used.
func (c Config) Validate() error {
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("invalid log level %q: %w", c.LogLevel, err)
	}
	return nil
}

// LoggingEnabled reports whether anything should be written to a log sink.
func (c Config) LoggingEnabled() bool {
	return c.Debug || c.LogFile != ""
}

// Level returns the effective log level. Validate must have succeeded.
func (c Config) Level() logrus.Level {
	if c.Debug {
		return logrus.DebugLevel
	}
	level, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		return logrus.InfoLevel
	}
	return level
}
