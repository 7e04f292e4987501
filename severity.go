package catlog

import (
	"errors"
	"strings"
)

// Severity is the importance of a log call. The set is closed.
type Severity uint8

const (
	SeverityInfo Severity = iota + 1
	SeverityDebug
	SeverityError
	SeverityFault
	SeverityDefault
)

// ErrUnknownSeverity is returned by ParseSeverity for input outside the five tags.
var ErrUnknownSeverity = errors.New("catlog: unknown severity")

// Severities lists every severity in declaration order.
var Severities = [...]Severity{SeverityInfo, SeverityDebug, SeverityError, SeverityFault, SeverityDefault}

// Tag returns the display tag (uppercased name). Out-of-range values render as DEFAULT.
func (s Severity) Tag() string {
	switch s {
	case SeverityInfo:
		return "INFO"
	case SeverityDebug:
		return "DEBUG"
	case SeverityError:
		return "ERROR"
	case SeverityFault:
		return "FAULT"
	default:
		return "DEFAULT"
	}
}

func (s Severity) String() string { return s.Tag() }

// Valid reports whether s is one of the declared severities.
func (s Severity) Valid() bool {
	return s >= SeverityInfo && s <= SeverityDefault
}

// ParseSeverity accepts a tag in any case, surrounding whitespace ignored.
func ParseSeverity(s string) (Severity, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "INFO":
		return SeverityInfo, nil
	case "DEBUG":
		return SeverityDebug, nil
	case "ERROR":
		return SeverityError, nil
	case "FAULT":
		return SeverityFault, nil
	case "DEFAULT":
		return SeverityDefault, nil
	}
	return 0, ErrUnknownSeverity
}
