package sloghandler

import (
	"context"
	"log/slog"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/Philipp01105/tracelog/core"
	"github.com/Philipp01105/tracelog/logger"
)

type collector struct {
	mu      sync.Mutex
	entries []core.Entry
}

func (c *collector) Observe(e core.Entry) {
	c.mu.Lock()
	c.entries = append(c.entries, e)
	c.mu.Unlock()
}

func newLogger(t *testing.T, obs *collector) *logger.Logger {
	t.Helper()
	log := logger.NewBuilder().
		WithFile(filepath.Join(t.TempDir(), "slog.log")).
		WithPersistence(false).
		WithConsole(nil).
		WithDiagnostics(zap.NewNop()).
		WithObserver(obs).
		Build()
	t.Cleanup(func() { log.Close() })
	return log
}

func TestHandler_Enabled(t *testing.T) {
	h := New(newLogger(t, &collector{}), Options{MinLevel: core.WarningLevel})

	if h.Enabled(context.Background(), slog.LevelDebug) {
		t.Error("Debug should not be enabled when level is Warning")
	}
	if h.Enabled(context.Background(), slog.LevelInfo) {
		t.Error("Info should not be enabled when level is Warning")
	}
	if !h.Enabled(context.Background(), slog.LevelWarn) {
		t.Error("Warn should be enabled when level is Warning")
	}
	if !h.Enabled(context.Background(), slog.LevelError) {
		t.Error("Error should be enabled when level is Warning")
	}
}

func TestHandler_Handle(t *testing.T) {
	obs := &collector{}
	log := newLogger(t, obs)
	sl := slog.New(New(log, Options{Group: "slog"}))

	sl.Warn("disk low", "free", 42, "unit", "MB")
	log.Sync()

	if len(obs.entries) != 1 {
		t.Fatalf("observed %d entries, want 1", len(obs.entries))
	}
	e := obs.entries[0]
	if e.Message != "disk low free=42 unit=MB " {
		t.Errorf("Message = %q", e.Message)
	}
	if e.Level != core.WarningLevel || e.Group != "slog" {
		t.Errorf("entry = %+v", e)
	}
	if filepath.Base(e.File) != "handler_test.go" || e.Sender != "TestHandler_Handle()" {
		t.Errorf("caller = %q %q", e.File, e.Sender)
	}
}

func TestHandler_AttrsAndGroups(t *testing.T) {
	obs := &collector{}
	log := newLogger(t, obs)
	sl := slog.New(New(log, Options{})).
		With("service", "api").
		WithGroup("req").
		With("id", 7)

	sl.Info("handled", slog.Group("http", "status", 200), "took", time.Second)
	log.Sync()

	want := "handled service=api req.id=7 req.http.status=200 req.took=1s "
	if got := obs.entries[0].Message; got != want {
		t.Errorf("Message = %q, want %q", got, want)
	}
}

func TestHandler_KeepsRecordTime(t *testing.T) {
	obs := &collector{}
	log := newLogger(t, obs)
	h := New(log, Options{})

	at := time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)
	r := slog.NewRecord(at, slog.LevelError, "boom", 0)
	if err := h.Handle(context.Background(), r); err != nil {
		t.Fatal(err)
	}
	log.Sync()

	e := obs.entries[0]
	if !e.Time.Equal(at) || e.Level != core.ErrorLevel {
		t.Errorf("entry = %+v", e)
	}
	if e.File != "" || e.Sender != "" {
		t.Errorf("record without PC got caller %q %q", e.File, e.Sender)
	}
}

func TestLevelFromSlog(t *testing.T) {
	tests := []struct {
		in   slog.Level
		want core.Level
	}{
		{slog.LevelDebug, core.DebugLevel},
		{slog.LevelInfo, core.InfoLevel},
		{slog.LevelWarn, core.WarningLevel},
		{slog.LevelError, core.ErrorLevel},
		{slog.LevelError + 4, core.ErrorLevel},
	}
	for _, tt := range tests {
		if got := LevelFromSlog(tt.in); got != tt.want {
			t.Errorf("LevelFromSlog(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
