package catlog

import (
	"time"

	"github.com/trickstertwo/xclock"
)

// Logger is the category-scoped leveled logging facade. It is immutable after
// construction and safe for concurrent use. Build one at startup and pass it
// to the components that log.
type Logger struct {
	sink      Sink
	path      Path
	name      string
	console   *Console
	debug     bool
	identity  func() string
	clock     xclock.Clock
	loc       *time.Location
	observers []Observer
}

// New builds a Logger from cfg, selecting the structured sink when it is set and
// available, and the console otherwise.
func New(cfg Config) *Logger {
	l := &Logger{
		console:  cfg.Console,
		debug:    cfg.Debug,
		identity: cfg.Identity,
		clock:    cfg.Clock,
		loc:      cfg.Location,
	}
	if l.console == nil {
		l.console = NewConsole(nil)
	}
	if l.identity == nil {
		l.identity = BundleID
	}
	if l.clock == nil {
		l.clock = xclock.Default()
	}
	if l.loc == nil {
		l.loc = time.Local
	}
	if len(cfg.Observers) > 0 {
		l.observers = make([]Observer, len(cfg.Observers))
		copy(l.observers, cfg.Observers)
	}

	if cfg.Structured != nil && available(cfg.Structured) {
		l.sink = cfg.Structured
		l.path = PathStructured
	} else {
		l.sink = l.console
		l.path = PathConsole
	}
	l.name = sinkName(l.sink)
	return l
}

// IsDebug reports whether debug-only output is emitted.
func (l *Logger) IsDebug() bool { return l.debug }

// SinkName names the sink chosen at construction.
func (l *Logger) SinkName() string { return l.name }

// Structured reports whether records go to the structured facility.
func (l *Logger) Structured() bool { return l.path == PathStructured }

func (l *Logger) Info(category, message string, debugModeOnly bool) {
	l.Log(SeverityInfo, category, message, debugModeOnly)
}

func (l *Logger) Debug(category, message string, debugModeOnly bool) {
	l.Log(SeverityDebug, category, message, debugModeOnly)
}

func (l *Logger) Error(category, message string, debugModeOnly bool) {
	l.Log(SeverityError, category, message, debugModeOnly)
}

func (l *Logger) Fault(category, message string, debugModeOnly bool) {
	l.Log(SeverityFault, category, message, debugModeOnly)
}

func (l *Logger) Default(category, message string, debugModeOnly bool) {
	l.Log(SeverityDefault, category, message, debugModeOnly)
}

// Log writes one record at sev. With debugModeOnly set, nothing is written
// unless the Logger was built in debug mode.
func (l *Logger) Log(sev Severity, category, message string, debugModeOnly bool) {
	if debugModeOnly && !l.debug {
		return
	}
	rec := Record{
		At:       l.clock.Now(),
		Category: category,
		Severity: sev,
		Message:  message,
	}
	if l.path == PathStructured {
		rec.Subsystem = l.identity()
	}
	l.sink.Write(rec)
	l.notify(rec, l.path, l.name)
}

// DebugPrint writes "<timestamp> [category] message" to the console, in debug
// mode only. Unlike the leveled methods it takes no flag: it is always debug-only.
func (l *Logger) DebugPrint(category, message string) {
	if !l.debug {
		return
	}
	at := l.clock.Now()
	l.console.Print(FormatTimestamp(at, l.loc) + " " + CategoryString(category) + message)
	l.notify(Record{At: at, Category: category, Severity: SeverityDebug, Message: message}, PathDebugPrint, l.console.Name())
}

func (l *Logger) notify(rec Record, path Path, sink string) {
	if len(l.observers) == 0 {
		return
	}
	e := Entry{Record: rec, Path: path, Sink: sink}
	for _, o := range l.observers {
		o.OnWrite(e)
	}
}
