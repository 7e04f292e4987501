package metrics

import (
	"bytes"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/trickstertwo/catlog"
)

func TestObserver_CountsWritesPerPath(t *testing.T) {
	reg := prometheus.NewRegistry()
	obs, err := New(reg)
	if err != nil {
		t.Fatalf("new observer: %v", err)
	}

	var buf bytes.Buffer
	l := catlog.NewBuilder().
		WithConsole(catlog.NewConsole(&buf)).
		WithDebug(true).
		AddObserver(obs).
		Build()

	l.Info("UI", "Info Log!", true)
	l.Info("UI", "again", false)
	l.Fault("UI", "Fault Log!", false)
	l.DebugPrint("UI", "debugLog Log!")

	if got := testutil.ToFloat64(obs.Writes().WithLabelValues("INFO", "console", "console")); got != 2 {
		t.Fatalf("info console writes: got %v want 2", got)
	}
	if got := testutil.ToFloat64(obs.Writes().WithLabelValues("FAULT", "console", "console")); got != 1 {
		t.Fatalf("fault console writes: got %v want 1", got)
	}
	if got := testutil.ToFloat64(obs.Writes().WithLabelValues("DEBUG", "debug_print", "console")); got != 1 {
		t.Fatalf("debug print writes: got %v want 1", got)
	}
	if got := testutil.CollectAndCount(obs.Writes()); got != 3 {
		t.Fatalf("series count: got %d want 3", got)
	}
}

func TestObserver_GatedCallsAreNotCounted(t *testing.T) {
	reg := prometheus.NewRegistry()
	obs, err := New(reg)
	if err != nil {
		t.Fatalf("new observer: %v", err)
	}

	var buf bytes.Buffer
	l := catlog.NewBuilder().WithConsole(catlog.NewConsole(&buf)).AddObserver(obs).Build()

	l.Error("UI", "Error Log!", true)
	l.DebugPrint("UI", "debugLog Log!")

	if got := testutil.CollectAndCount(obs.Writes()); got != 0 {
		t.Fatalf("expected no series, got %d", got)
	}
}

func TestNew_DuplicateRegistrationFails(t *testing.T) {
	reg := prometheus.NewRegistry()
	if _, err := New(reg); err != nil {
		t.Fatalf("first register: %v", err)
	}
	if _, err := New(reg); err == nil {
		t.Fatal("expected duplicate registration error")
	}
}
