package catlog

import "time"

// TimestampLayout renders local time with millisecond precision and a numeric zone offset.
const TimestampLayout = "2006-01-02 15:04:05.000   -0700"

// Record is a single log call. It is built per call and handed to one sink.
type Record struct {
	At        time.Time
	Subsystem string
	Category  string
	Severity  Severity
	Message   string
}

// Path identifies which output path handled a record.
type Path uint8

const (
	PathStructured Path = iota + 1
	PathConsole
	PathDebugPrint
)

func (p Path) String() string {
	switch p {
	case PathStructured:
		return "structured"
	case PathConsole:
		return "console"
	case PathDebugPrint:
		return "debug_print"
	default:
		return "unknown"
	}
}

// Entry is sent to Observers after each write.
type Entry struct {
	Record
	Path Path
	Sink string
}

// CategoryString renders "[category] ".
func CategoryString(category string) string {
	return "[" + category + "] "
}

// SeverityTag renders "[TAG]".
func SeverityTag(s Severity) string {
	return "[" + s.Tag() + "]"
}

// ComposeLine is the plain-text form used by the console fallback:
// "[category] [TAG] message".
func ComposeLine(category string, s Severity, message string) string {
	return CategoryString(category) + SeverityTag(s) + " " + message
}

// FormatTimestamp renders t in loc using TimestampLayout. A nil loc means time.Local.
func FormatTimestamp(t time.Time, loc *time.Location) string {
	if loc == nil {
		loc = time.Local
	}
	return t.In(loc).Format(TimestampLayout)
}
