// Command logsample builds one catlog.Logger from config and exercises every
// severity plus DebugPrint, the way an application screen would on load.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/trickstertwo/catlog"
	"github.com/trickstertwo/catlog/internal/config"
	"github.com/trickstertwo/catlog/metrics"
	"github.com/trickstertwo/catlog/sink/journald"
	zapsink "github.com/trickstertwo/catlog/sink/zap"
	zerologsink "github.com/trickstertwo/catlog/sink/zerolog"
)

func main() {
	cfgPath := flag.String("config", "", "optional JSON5 config file")
	flag.Parse()

	cfg, err := config.Load(*cfgPath, nil)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logsample: %v\n", err)
		os.Exit(2)
	}

	reg := prometheus.NewRegistry()
	logger, err := newLogger(cfg, os.Stdout, os.Stderr, reg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logsample: %v\n", err)
		os.Exit(1)
	}

	run(logger)
}

// run is the sample screen: every severity, debug-only, then the raw debug print.
func run(l *catlog.Logger) {
	l.Info("UI", "Info Log!", true)
	l.Debug("UI", "Debug Log!", true)
	l.Error("UI", "Error Log!", true)
	l.Fault("UI", "Fault Log!", true)
	l.Default("UI", "Default Log!", true)
	l.DebugPrint("UI", "debugLog Log!")
}

func newLogger(cfg config.Config, out, console io.Writer, reg prometheus.Registerer) (*catlog.Logger, error) {
	obs, err := metrics.New(reg)
	if err != nil {
		return nil, err
	}

	c := catlog.Config{
		Structured: structuredSink(cfg, out),
		Console:    catlog.NewConsole(console),
		Debug:      cfg.Debug,
		Observers:  []catlog.Observer{obs},
	}
	if cfg.Subsystem != "" {
		c.Identity = catlog.StaticIdentity(cfg.Subsystem)
	}
	return catlog.New(c), nil
}

// structuredSink returns nil for the console sink; auto prefers the journal and
// relies on its probe to fall back when no journal is present.
func structuredSink(cfg config.Config, out io.Writer) catlog.Sink {
	console := cfg.Format == config.FormatConsole
	switch cfg.Sink {
	case config.SinkZap:
		return zapsink.Build(zapsink.Config{Writer: out, Console: console})
	case config.SinkZerolog:
		return zerologsink.Build(zerologsink.Config{Writer: out, Console: console})
	case config.SinkConsole:
		return nil
	default:
		return journald.New()
	}
}
