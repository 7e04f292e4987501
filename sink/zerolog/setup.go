package zerologsink

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// Config is an explicit, code-first configuration for a zerolog-backed sink.
type Config struct {
	Writer             io.Writer // default: os.Stdout
	Console            bool      // pretty console output instead of JSON
	ConsoleTimeFormat  string    // only used if Console==true; default time.RFC3339Nano
	Caller             bool      // include caller in logs
	TimestampFieldName string    // JSON only; default "ts"
}

// Build creates a zerolog logger from cfg and wraps it in a Sink.
// The logger accepts every level; catlog does its own gating.
func Build(cfg Config) *Sink {
	w := cfg.Writer
	if w == nil {
		w = os.Stdout
	}

	var zl zerolog.Logger
	if cfg.Console {
		cw := zerolog.ConsoleWriter{Out: w, TimeFormat: cfg.ConsoleTimeFormat}
		if cw.TimeFormat == "" {
			cw.TimeFormat = time.RFC3339Nano
		}
		zl = zerolog.New(cw)
	} else {
		zl = zerolog.New(w)
	}
	zl = zl.Level(zerolog.DebugLevel)

	if cfg.Caller {
		zl = zl.With().Caller().Logger()
	}

	s := New(zl)
	if cfg.Console {
		// ConsoleWriter reads its leading time column from zerolog.TimestampFieldName.
		s.tsKey = zerolog.TimestampFieldName
		s.tsAsStr = false
	} else if cfg.TimestampFieldName != "" {
		s.tsKey = cfg.TimestampFieldName
	}
	return s
}
