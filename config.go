package ago

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"gopkg.in/yaml.v3"

	"github.com/agolang/ago-go/value"
)

// LogFormat selects the slog handler used by Config.NewLogger.
type LogFormat string

const (
	// LogFormatAuto writes text to a terminal and JSON anywhere else.
	LogFormatAuto LogFormat = "auto"
	LogFormatText LogFormat = "text"
	LogFormatJSON LogFormat = "json"
)

// Config holds runtime settings for an Environment.
type Config struct {
	LogLevel  string    `yaml:"log_level"`
	LogFormat LogFormat `yaml:"log_format"`
}

// DefaultConfig returns the settings used when no config file is given.
func DefaultConfig() Config {
	return Config{LogLevel: "warn", LogFormat: LogFormatAuto}
}

// LoadConfig reads a YAML config file. Missing fields keep their defaults.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, value.Errorf(value.ErrIO, "failed to read config %q", path).WithCause(err)
	}
	return ParseConfig(data)
}

// ParseConfig decodes YAML config data on top of DefaultConfig.
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, value.NewError(value.ErrInvalidConfig, "failed to parse config").WithCause(err)
	}
	if _, err := cfg.level(); err != nil {
		return Config{}, err
	}
	switch cfg.LogFormat {
	case "", LogFormatAuto, LogFormatText, LogFormatJSON:
	default:
		return Config{}, value.Errorf(value.ErrInvalidConfig, "unknown log format %q", cfg.LogFormat)
	}
	return cfg, nil
}

func (c Config) level() (slog.Level, error) {
	var level slog.Level
	if c.LogLevel == "" {
		return slog.LevelWarn, nil
	}
	if err := level.UnmarshalText([]byte(strings.ToUpper(c.LogLevel))); err != nil {
		return 0, value.Errorf(value.ErrInvalidConfig, "unknown log level %q", c.LogLevel).WithCause(err)
	}
	return level, nil
}

// NewLogger builds a logger writing to w.
func (c Config) NewLogger(w io.Writer) *slog.Logger {
	level, err := c.level()
	if err != nil {
		level = slog.LevelWarn
	}
	opts := &slog.HandlerOptions{Level: level}

	format := c.LogFormat
	if format == "" || format == LogFormatAuto {
		format = LogFormatJSON
		if IsTerminal(w) {
			format = LogFormatText
		}
	}
	if format == LogFormatJSON {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

// IsTerminal reports whether w is a terminal.
func IsTerminal(w any) bool {
	f, ok := w.(interface{ Fd() uintptr })
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Configure applies cfg to the environment. The logger writes to stderr.
func (e *Environment) Configure(cfg Config) {
	e.SetLogger(cfg.NewLogger(os.Stderr))
}
