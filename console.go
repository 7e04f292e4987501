package catlog

import (
	"fmt"
	"io"
	"os"

	"go.uber.org/zap/zapcore"
)

// Console is the plain-text fallback sink. Each write is a single line; the
// underlying writer is locked so concurrent lines never interleave.
type Console struct {
	ws      zapcore.WriteSyncer
	onError ErrorHandler
}

// StderrErrorHandler is the default ErrorHandler: it reports to os.Stderr.
func StderrErrorHandler(err error) {
	fmt.Fprintf(os.Stderr, "catlog error: %v\n", err)
}

// NewConsole wraps w. A nil w writes to os.Stderr.
func NewConsole(w io.Writer) *Console {
	if w == nil {
		w = os.Stderr
	}
	return &Console{
		ws:      zapcore.Lock(zapcore.AddSync(w)),
		onError: StderrErrorHandler,
	}
}

// WithErrorHandler returns a copy of c reporting write failures to h.
func (c *Console) WithErrorHandler(h ErrorHandler) *Console {
	child := *c
	if h == nil {
		h = StderrErrorHandler
	}
	child.onError = h
	return &child
}

func (c *Console) Name() string { return "console" }

// Write emits "[category] [TAG] message". Subsystem and timestamp are not rendered.
func (c *Console) Write(rec Record) {
	c.Print(ComposeLine(rec.Category, rec.Severity, rec.Message))
}

// Print writes line followed by a newline.
func (c *Console) Print(line string) {
	buf := make([]byte, 0, len(line)+1)
	buf = append(buf, line...)
	buf = append(buf, '\n')
	if _, err := c.ws.Write(buf); err != nil {
		c.onError(err)
	}
}
