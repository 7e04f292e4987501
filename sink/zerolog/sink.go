package zerologsink

import (
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/trickstertwo/catlog"
)

// Sink writes catlog records through rs/zerolog.
//
// Fault is written at zerolog's fatal level via WithLevel, which records the
// level without exiting the process.
type Sink struct {
	l       zerolog.Logger
	tsKey   string
	tsAsStr bool // RFC3339Nano string (JSON) vs zerolog time field (console)
}

func New(l zerolog.Logger) *Sink {
	return &Sink{l: l, tsKey: "ts", tsAsStr: true}
}

func (s *Sink) Name() string { return "zerolog" }

// Write emits a single entry. A level below the logger's own is dropped
// before an event is allocated.
func (s *Sink) Write(rec catlog.Record) {
	lvl := ToZerologLevel(rec.Severity)
	if lvl < s.l.GetLevel() {
		return
	}

	ev := s.l.WithLevel(lvl)
	if s.tsAsStr {
		ev.Str(s.tsKey, rec.At.UTC().Format(time.RFC3339Nano))
	} else {
		ev.Time(s.tsKey, rec.At)
	}
	ev.Str("subsystem", rec.Subsystem).
		Str("category", rec.Category).
		Str("severity", strings.ToLower(rec.Severity.Tag())).
		Msg(rec.Message)
}

// ToZerologLevel maps each severity to a distinct zerolog level.
func ToZerologLevel(sev catlog.Severity) zerolog.Level {
	switch sev {
	case catlog.SeverityDebug:
		return zerolog.DebugLevel
	case catlog.SeverityInfo:
		return zerolog.InfoLevel
	case catlog.SeverityError:
		return zerolog.ErrorLevel
	case catlog.SeverityFault:
		return zerolog.FatalLevel
	default:
		return zerolog.WarnLevel
	}
}
