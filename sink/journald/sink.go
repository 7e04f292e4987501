// Package journald writes catlog records to the systemd journal, the
// platform's structured log facility. Availability is probed once via
// journal.Enabled, so Builder can fall back to the console on hosts
// without a journal socket.
package journald

import (
	"github.com/coreos/go-systemd/v22/journal"

	"github.com/trickstertwo/catlog"
)

// Journal field names. Custom names must be uppercase ASCII, digits and underscores.
const (
	FieldIdentifier = "SYSLOG_IDENTIFIER"
	FieldCategory   = "CATLOG_CATEGORY"
	FieldSeverity   = "CATLOG_SEVERITY"
)

// SendFunc matches journal.Send.
type SendFunc func(message string, priority journal.Priority, vars map[string]string) error

type Sink struct {
	send    SendFunc
	enabled func() bool
	onError catlog.ErrorHandler
}

type Option func(*Sink)

// WithSender replaces journal.Send.
func WithSender(f SendFunc) Option {
	return func(s *Sink) { s.send = f }
}

// WithProbe replaces journal.Enabled.
func WithProbe(f func() bool) Option {
	return func(s *Sink) { s.enabled = f }
}

func WithErrorHandler(h catlog.ErrorHandler) Option {
	return func(s *Sink) { s.onError = h }
}

func New(opts ...Option) *Sink {
	s := &Sink{
		send:    journal.Send,
		enabled: journal.Enabled,
		onError: catlog.StderrErrorHandler,
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

func (s *Sink) Name() string { return "journald" }

// Available reports whether the journal socket is reachable.
func (s *Sink) Available() bool { return s.enabled() }

// Write sends one journal entry. The subsystem becomes SYSLOG_IDENTIFIER and is
// omitted when empty, letting journald derive it from the process.
func (s *Sink) Write(rec catlog.Record) {
	vars := map[string]string{
		FieldCategory: rec.Category,
		FieldSeverity: rec.Severity.Tag(),
	}
	if rec.Subsystem != "" {
		vars[FieldIdentifier] = rec.Subsystem
	}
	if err := s.send(rec.Message, Priority(rec.Severity), vars); err != nil {
		s.onError(err)
	}
}

// Priority maps each severity to a distinct syslog priority.
// Default is notice: above info, below anything that signals a problem.
func Priority(sev catlog.Severity) journal.Priority {
	switch sev {
	case catlog.SeverityDebug:
		return journal.PriDebug
	case catlog.SeverityInfo:
		return journal.PriInfo
	case catlog.SeverityError:
		return journal.PriErr
	case catlog.SeverityFault:
		return journal.PriCrit
	default:
		return journal.PriNotice
	}
}
