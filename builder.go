package catlog

import (
	"time"

	"github.com/trickstertwo/xclock"
)

// Config for constructing a Logger (Factory data structure).
type Config struct {
	// Structured is the preferred sink. It is used only when its probe (if any)
	// reports the facility as available.
	Structured Sink
	// Console is the fallback sink and the DebugPrint target. Defaults to NewConsole(os.Stderr).
	Console *Console
	// Debug marks a debug build: debug-only calls and DebugPrint are emitted.
	Debug bool
	// Identity scopes structured records (the subsystem). Defaults to BundleID.
	Identity  func() string
	Clock     xclock.Clock   // optional; defaults to xclock.Default()
	Location  *time.Location // DebugPrint timestamps; defaults to time.Local
	Observers []Observer
}

// Builder separates construction from representation (Builder pattern).
type Builder struct {
	cfg Config
}

func NewBuilder() *Builder {
	return &Builder{}
}

func (b *Builder) WithStructured(s Sink) *Builder {
	b.cfg.Structured = s
	return b
}

func (b *Builder) WithConsole(c *Console) *Builder {
	b.cfg.Console = c
	return b
}

func (b *Builder) WithDebug(debug bool) *Builder {
	b.cfg.Debug = debug
	return b
}

func (b *Builder) WithIdentity(f func() string) *Builder {
	b.cfg.Identity = f
	return b
}

func (b *Builder) WithClock(c xclock.Clock) *Builder {
	b.cfg.Clock = c
	return b
}

func (b *Builder) WithLocation(loc *time.Location) *Builder {
	b.cfg.Location = loc
	return b
}

func (b *Builder) AddObserver(o Observer) *Builder {
	b.cfg.Observers = append(b.cfg.Observers, o)
	return b
}

// Build constructs the Logger. The structured sink's capability probe runs here,
// once; the chosen path is fixed for the Logger's lifetime.
func (b *Builder) Build() *Logger {
	return New(b.cfg)
}
