package zapsink

import (
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config is an explicit, code-first configuration for a zap-backed sink.
type Config struct {
	Writer             io.Writer             // default: os.Stdout
	Console            bool                  // console-like output via zapcore.NewConsoleEncoder
	EncoderConfig      zapcore.EncoderConfig // if zero, a sensible default is used
	Caller             bool                  // include caller in logs
	CallerSkip         int                   // frames to skip when resolving caller; default 3
	TimestampFieldName string                // default "ts"
}

// Build creates a zap logger from cfg and wraps it in a Sink.
// The core accepts every level; catlog does its own gating.
func Build(cfg Config) *Sink {
	w := cfg.Writer
	if w == nil {
		w = os.Stdout
	}
	if cfg.Caller && cfg.CallerSkip <= 0 {
		cfg.CallerSkip = 3
	}

	// Do not let zap inject its own time; the sink writes the record timestamp.
	encCfg := cfg.EncoderConfig
	if encCfg.LevelKey == "" && encCfg.MessageKey == "" && encCfg.EncodeTime == nil {
		encCfg = zapcore.EncoderConfig{
			TimeKey:        "",
			LevelKey:       "level",
			MessageKey:     "message",
			EncodeLevel:    zapcore.LowercaseLevelEncoder,
			EncodeTime:     zapcore.RFC3339NanoTimeEncoder,
			EncodeDuration: zapcore.StringDurationEncoder,
			CallerKey:      "caller",
			EncodeCaller:   zapcore.ShortCallerEncoder,
		}
	} else {
		encCfg.TimeKey = ""
	}

	var enc zapcore.Encoder
	if cfg.Console {
		enc = zapcore.NewConsoleEncoder(encCfg)
	} else {
		enc = zapcore.NewJSONEncoder(encCfg)
	}

	core := zapcore.NewCore(enc, zapcore.Lock(zapcore.AddSync(w)), zapcore.DebugLevel)

	opts := []zap.Option{
		zap.AddStacktrace(zapcore.FatalLevel + 1), // effectively off
	}
	if cfg.Caller {
		opts = append(opts, zap.AddCaller(), zap.AddCallerSkip(cfg.CallerSkip))
	}

	return NewWithTimestampKey(zap.New(core, opts...), cfg.TimestampFieldName)
}
