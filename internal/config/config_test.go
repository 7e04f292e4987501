package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pkg/errors"
)

func env(m map[string]string) func(string) string {
	return func(k string) string { return m[k] }
}

func writeFile(t *testing.T, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "catlog.json5")
	if err := os.WriteFile(p, []byte(body), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return p
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("", env(nil))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg != Defaults() {
		t.Fatalf("got %+v want %+v", cfg, Defaults())
	}
}

func TestLoad_JSON5File(t *testing.T) {
	p := writeFile(t, `{
		// comments and trailing commas are allowed
		debug: true,
		subsystem: 'com.example.app',
		sink: "Zerolog",
		format: 'console',
	}`)

	cfg, err := Load(p, env(nil))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	want := Config{Debug: true, Subsystem: "com.example.app", Sink: SinkZerolog, Format: FormatConsole}
	if cfg != want {
		t.Fatalf("got %+v want %+v", cfg, want)
	}
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	p := writeFile(t, `{debug: true, sink: "zap", subsystem: "file"}`)

	cfg, err := Load(p, env(map[string]string{
		"CATLOG_DEBUG":     "off",
		"CATLOG_SINK":      "console",
		"CATLOG_SUBSYSTEM": "env",
	}))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Debug || cfg.Sink != SinkConsole || cfg.Subsystem != "env" {
		t.Fatalf("env did not override: %+v", cfg)
	}
}

func TestLoad_UnknownSink(t *testing.T) {
	_, err := Load("", env(map[string]string{"CATLOG_SINK": "syslog"}))
	if errors.Cause(err) != ErrUnknownSink {
		t.Fatalf("expected ErrUnknownSink, got %v", err)
	}
}

func TestLoad_UnknownFormat(t *testing.T) {
	_, err := Load("", env(map[string]string{"CATLOG_FORMAT": "xml"}))
	if errors.Cause(err) != ErrUnknownFormat {
		t.Fatalf("expected ErrUnknownFormat, got %v", err)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.json5"), env(nil)); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestLoad_BadFile(t *testing.T) {
	p := writeFile(t, `{debug: `)
	if _, err := Load(p, env(nil)); err == nil {
		t.Fatal("expected parse error")
	}
}
