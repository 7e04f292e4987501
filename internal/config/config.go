// Package config loads the logsample settings from an optional JSON5 file
// and the CATLOG_* environment.
package config

import (
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/titanous/json5"

	"github.com/trickstertwo/catlog"
)

// Sink names.
const (
	SinkAuto     = "auto"
	SinkJournald = "journald"
	SinkZap      = "zap"
	SinkZerolog  = "zerolog"
	SinkConsole  = "console"
)

// Output formats for the zap and zerolog sinks.
const (
	FormatJSON    = "json"
	FormatConsole = "console"
)

const (
	EnvSink   = "CATLOG_SINK"
	EnvFormat = "CATLOG_FORMAT"
)

var (
	ErrUnknownSink   = errors.New("config: unknown sink")
	ErrUnknownFormat = errors.New("config: unknown format")
)

type Config struct {
	Debug     bool   `json:"debug"`
	Subsystem string `json:"subsystem"`
	Sink      string `json:"sink"`
	Format    string `json:"format"`
}

func Defaults() Config {
	return Config{Sink: SinkAuto, Format: FormatJSON}
}

// Load reads path (skipped when empty), then applies environment overrides.
// A nil getenv uses os.Getenv.
func Load(path string, getenv func(string) string) (Config, error) {
	cfg := Defaults()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, errors.Wrap(err, "read config")
		}
		if err := json5.Unmarshal(data, &cfg); err != nil {
			return cfg, errors.Wrapf(err, "parse config %s", path)
		}
	}
	if getenv == nil {
		getenv = os.Getenv
	}
	if v := getenv(catlog.EnvDebug); v != "" {
		cfg.Debug = catlog.ParseBool(v, cfg.Debug)
	}
	if v := strings.TrimSpace(getenv(catlog.EnvSubsystem)); v != "" {
		cfg.Subsystem = v
	}
	if v := strings.TrimSpace(getenv(EnvSink)); v != "" {
		cfg.Sink = v
	}
	if v := strings.TrimSpace(getenv(EnvFormat)); v != "" {
		cfg.Format = v
	}
	return cfg, cfg.normalize()
}

func (c *Config) normalize() error {
	c.Sink = strings.ToLower(strings.TrimSpace(c.Sink))
	c.Format = strings.ToLower(strings.TrimSpace(c.Format))
	switch c.Sink {
	case "":
		c.Sink = SinkAuto
	case SinkAuto, SinkJournald, SinkZap, SinkZerolog, SinkConsole:
	default:
		return errors.Wrapf(ErrUnknownSink, "%q", c.Sink)
	}
	switch c.Format {
	case "":
		c.Format = FormatJSON
	case FormatJSON, FormatConsole:
	default:
		return errors.Wrapf(ErrUnknownFormat, "%q", c.Format)
	}
	return nil
}
