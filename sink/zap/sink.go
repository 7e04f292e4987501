package zapsink

import (
	"strings"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/trickstertwo/catlog"
)

// Sink writes catlog records as structured zap entries.
//
// Every record carries subsystem, category and severity fields next to the
// message, plus the record timestamp under tsKey (RFC3339Nano, UTC).
// Fault maps to zap's DPanic level; the panic hook is replaced so a
// development-mode zap logger never panics from inside a log call.
type Sink struct {
	l     *zap.Logger
	tsKey string // timestamp field key; default "ts"
}

// New wraps l. A nil l yields a no-op sink.
func New(l *zap.Logger) *Sink {
	return NewWithTimestampKey(l, "ts")
}

// NewWithTimestampKey lets callers override the timestamp field key (default "ts").
func NewWithTimestampKey(l *zap.Logger, tsKey string) *Sink {
	if l == nil {
		l = zap.NewNop()
	}
	if tsKey == "" {
		tsKey = "ts"
	}
	return &Sink{
		l:     l.WithOptions(zap.WithPanicHook(noPanic{})),
		tsKey: tsKey,
	}
}

func (s *Sink) Name() string { return "zap" }

// Write emits a single entry. Entries disabled by the zap core are skipped
// before any field is built.
func (s *Sink) Write(rec catlog.Record) {
	ce := s.l.Check(ToZapLevel(rec.Severity), rec.Message)
	if ce == nil {
		return
	}
	ce.Write(
		zap.String(s.tsKey, rec.At.UTC().Format(time.RFC3339Nano)),
		zap.String("subsystem", rec.Subsystem),
		zap.String("category", rec.Category),
		zap.String("severity", strings.ToLower(rec.Severity.Tag())),
	)
}

// Sync flushes buffered zap output.
func (s *Sink) Sync() error {
	return s.l.Sync()
}

// ToZapLevel maps each severity to a distinct zap level.
// Default sits between info and error, as the platform default level does.
func ToZapLevel(sev catlog.Severity) zapcore.Level {
	switch sev {
	case catlog.SeverityDebug:
		return zapcore.DebugLevel
	case catlog.SeverityInfo:
		return zapcore.InfoLevel
	case catlog.SeverityError:
		return zapcore.ErrorLevel
	case catlog.SeverityFault:
		return zapcore.DPanicLevel
	default:
		return zapcore.WarnLevel
	}
}

type noPanic struct{}

func (noPanic) OnWrite(*zapcore.CheckedEntry, []zapcore.Field) {}
