package logging

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"sync"
	"testing"
)

func TestSilentLoggerDropsEverything(t *testing.T) {
	for _, level := range []slog.Level{slog.LevelDebug, slog.LevelInfo, slog.LevelWarn, slog.LevelError} {
		if silent.Enabled(context.Background(), level) {
			t.Errorf("silent.Enabled(%v) = true, want false", level)
		}
	}
	if silent.With("k", "v").WithGroup("g").Enabled(context.Background(), slog.LevelError) {
		t.Error("derived silent logger should stay disabled")
	}
}

func TestLoggerDefaultSilent(t *testing.T) {
	l := Logger()
	if l == nil {
		t.Fatal("Logger() returned nil")
	}
	if l.Enabled(context.Background(), slog.LevelWarn) {
		t.Error("default logger should be disabled")
	}
}

func TestSetLogger(t *testing.T) {
	orig := Logger()
	t.Cleanup(func() { SetLogger(orig) })

	var buf bytes.Buffer
	SetLogger(New(&buf, false))
	Logger().Debug("hidden")
	Logger().Info("shown", "equation", "y = x")
	if out := buf.String(); strings.Contains(out, "hidden") || !strings.Contains(out, "shown") {
		t.Fatalf("unexpected output %q", out)
	}

	SetLogger(nil)
	if Logger() != silent {
		t.Fatal("SetLogger(nil) should restore the silent logger")
	}
}

func TestNewVerbose(t *testing.T) {
	var buf bytes.Buffer
	New(&buf, true).Debug("detail")
	if !strings.Contains(buf.String(), "detail") {
		t.Fatalf("verbose logger dropped debug record: %q", buf.String())
	}
}

func TestSetLoggerConcurrent(t *testing.T) {
	orig := Logger()
	t.Cleanup(func() { SetLogger(orig) })

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(2)
		go func() { defer wg.Done(); SetLogger(New(&bytes.Buffer{}, false)) }()
		go func() { defer wg.Done(); Logger().Info("x") }()
	}
	wg.Wait()
}
