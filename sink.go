package catlog

// Sink is the output Strategy behind a Logger (structured facility or console).
// Write must not panic or block beyond the cost of the underlying write; failures
// are handled inside the sink and never reach the caller.
type Sink interface {
	Write(rec Record)
}

// Prober is an optional capability probe. Builder consults it once, at Build time,
// to decide whether a structured sink can be used on this platform.
// Sinks that do not implement it are assumed available.
type Prober interface {
	Available() bool
}

// Namer is optional; the name shows up in Entry.Sink and Logger.SinkName.
type Namer interface {
	Name() string
}

// SinkFunc adapts a function to Sink.
type SinkFunc func(Record)

func (f SinkFunc) Write(rec Record) { f(rec) }

// ErrorHandler receives write failures from sinks.
type ErrorHandler func(error)

func sinkName(s Sink) string {
	if n, ok := s.(Namer); ok {
		return n.Name()
	}
	return "custom"
}

func available(s Sink) bool {
	if p, ok := s.(Prober); ok {
		return p.Available()
	}
	return true
}
