package lane

import (
	"bytes"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/Philipp01105/tracelog/core"
	"github.com/Philipp01105/tracelog/formatter"
	"github.com/Philipp01105/tracelog/handler"
	"github.com/Philipp01105/tracelog/handler/filehandler"
)

// collector records every observed entry.
type collector struct {
	mu      sync.Mutex
	entries []core.Entry
}

func (c *collector) Observe(e core.Entry) {
	c.mu.Lock()
	c.entries = append(c.entries, e)
	c.mu.Unlock()
}

func (c *collector) all() []core.Entry {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]core.Entry(nil), c.entries...)
}

func messageOnly() *formatter.PrintFormatter {
	return formatter.NewPrintFormatter(formatter.Config{Order: core.OrderSpec{core.FieldMessage}})
}

func TestLane_SerialsUnderConcurrency(t *testing.T) {
	obs := &collector{}
	l := New(Config{Observer: obs})
	defer l.Close()

	const goroutines, perGoroutine = 8, 100
	var wg sync.WaitGroup
	for g := 0; g < goroutines; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < perGoroutine; i++ {
				l.Add(Record{Message: "msg", Level: core.InfoLevel})
			}
		}()
	}
	wg.Wait()
	l.Sync()

	entries := obs.all()
	if len(entries) != goroutines*perGoroutine {
		t.Fatalf("observed %d entries, want %d", len(entries), goroutines*perGoroutine)
	}
	for i, e := range entries {
		if e.Serial != i+1 {
			t.Fatalf("entries[%d].Serial = %d, want %d", i, e.Serial, i+1)
		}
	}
}

func TestLane_IndentTransitions(t *testing.T) {
	obs := &collector{}
	l := New(Config{Observer: obs})
	defer l.Close()

	steps := []struct {
		directive core.IndentDirective
		want      int
	}{
		{core.IndentIncrease, 0},
		{core.IndentIncrease, 1},
		{core.IndentNone, 2},
		{core.IndentDecrease, 1},
		{core.IndentReset, 0},
		{core.IndentDecrease, 0},
	}
	for _, s := range steps {
		l.Add(Record{Message: s.directive.String(), Indent: s.directive})
	}
	l.Sync()

	entries := obs.all()
	for i, s := range steps {
		if entries[i].Indent != s.want {
			t.Errorf("step %d (%s): Indent = %d, want %d", i, s.directive, entries[i].Indent, s.want)
		}
	}
}

func TestLane_PrintIndentPrefix(t *testing.T) {
	var buf bytes.Buffer
	l := New(Config{Print: messageOnly(), Console: handler.NewConsole(&buf)})

	l.Add(Record{Message: "outer", Indent: core.IndentIncrease})
	l.Add(Record{Message: "inner"})
	l.Sync()

	if got := buf.String(); got != "\nouter\n  inner" {
		t.Errorf("console = %q", got)
	}
	l.Close()
}

func TestLane_JoinSemantics(t *testing.T) {
	var buf bytes.Buffer
	obs := &collector{}
	store := filehandler.New(filepath.Join(t.TempDir(), "join.log"))
	wf := formatter.NewWriteFormatter(formatter.Config{
		Order: core.OrderSpec{core.FieldSerial, core.FieldMessage},
	})
	l := New(Config{
		Print:    messageOnly(),
		Write:    wf,
		Console:  handler.NewConsole(&buf),
		Store:    store,
		Observer: obs,
	})
	defer l.Close()

	l.Add(Record{Message: "A"})
	l.Add(Record{Message: "B"})
	l.Append(Record{Message: "1 "})
	l.Append(Record{Message: "2 3 "})
	l.Add(Record{Message: "C"})
	l.Sync()

	if got := buf.String(); got != "\nA\nB1 2 3 \nC" {
		t.Errorf("console = %q", got)
	}

	entries := obs.all()
	wantSerials := []int{1, 2, core.JoinSerial, core.JoinSerial, 3}
	for i, want := range wantSerials {
		if entries[i].Serial != want {
			t.Errorf("entries[%d].Serial = %d, want %d", i, entries[i].Serial, want)
		}
	}
	if entries[1].Message != "B" {
		t.Errorf("entries[1].Message = %q, want B", entries[1].Message)
	}

	stored, err := store.Load(wf)
	if err != nil {
		t.Fatal(err)
	}
	if len(stored) != 3 {
		t.Fatalf("stored %d records, want 3", len(stored))
	}
	if stored[1].Message != "B1 2 3 " {
		t.Errorf("stored[1].Message = %q", stored[1].Message)
	}
}

func TestLane_MinPrintOnlyGatesConsole(t *testing.T) {
	var buf bytes.Buffer
	store := filehandler.New(filepath.Join(t.TempDir(), "levels.log"))
	wf := formatter.NewWriteFormatter(formatter.Config{})
	l := New(Config{
		Print:    messageOnly(),
		Write:    wf,
		Console:  handler.NewConsole(&buf),
		MinPrint: core.WarningLevel,
		Store:    store,
	})

	l.Add(Record{Message: "quiet", Level: core.InfoLevel})
	l.Add(Record{Message: "loud", Level: core.ErrorLevel})
	l.Append(Record{Message: " hidden", Level: core.InfoLevel})
	if err := l.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	console := buf.String()
	if strings.Contains(console, "quiet") || strings.Contains(console, "hidden") {
		t.Errorf("console shows suppressed text: %q", console)
	}
	if !strings.Contains(console, "loud") {
		t.Errorf("console misses loud record: %q", console)
	}

	stored, err := store.Load(wf)
	if err != nil {
		t.Fatal(err)
	}
	if len(stored) != 2 || stored[0].Message != "quiet" || stored[0].Level != core.InfoLevel {
		t.Errorf("stored = %+v", stored)
	}
}

func TestLane_Reload(t *testing.T) {
	store := filehandler.New(filepath.Join(t.TempDir(), "reload.log"))
	wf := formatter.NewWriteFormatter(formatter.Config{})

	writer := New(Config{Write: wf, Store: store})
	writer.Add(Record{Message: "first", Level: core.DoneLevel})
	writer.Add(Record{Message: "second", Indent: core.IndentIncrease})
	writer.Close()

	var buf bytes.Buffer
	obs := &collector{}
	stats := handler.NewStats()
	l := New(Config{Print: messageOnly(), Write: wf, Console: handler.NewConsole(&buf), Observer: obs, Stats: stats})
	defer l.Close()

	entries, err := l.Reload(store, true)
	if err != nil {
		t.Fatalf("Reload() error = %v", err)
	}
	if len(entries) != 2 || entries[0].Message != "first" || entries[0].Level != core.DoneLevel {
		t.Fatalf("entries = %+v", entries)
	}
	l.Sync()

	if got := buf.String(); got != "\n› first\n› second" {
		t.Errorf("console = %q", got)
	}
	if n := len(obs.all()); n != 2 {
		t.Errorf("observed %d entries, want 2", n)
	}
	if got := stats.GetSnapshot().Replayed; got != 2 {
		t.Errorf("Replayed = %d, want 2", got)
	}

	content, _ := store.ReadAll()
	if content != "" {
		t.Errorf("file not erased: %q", content)
	}

	// replay leaves the serial counter alone
	l.Add(Record{Message: "next"})
	l.Sync()
	if last := obs.all()[2]; last.Serial != 1 {
		t.Errorf("serial after reload = %d, want 1", last.Serial)
	}
}

func TestLane_ReloadMissingFile(t *testing.T) {
	l := New(Config{})
	defer l.Close()

	entries, err := l.Reload(filehandler.New(filepath.Join(t.TempDir(), "missing.log")), false)
	if err == nil {
		t.Error("Expected error for missing file")
	}
	if len(entries) != 0 {
		t.Errorf("entries = %+v", entries)
	}
}

func TestLane_EraseIsOrdered(t *testing.T) {
	store := filehandler.New(filepath.Join(t.TempDir(), "erase.log"))
	l := New(Config{Store: store})
	defer l.Close()

	for i := 0; i < 50; i++ {
		l.Add(Record{Message: "pending"})
	}
	if err := l.Erase(store); err != nil {
		t.Fatalf("Erase() error = %v", err)
	}

	content, _ := store.ReadAll()
	if content != "" {
		t.Errorf("content after Erase = %q", content)
	}
}

func TestLane_CloseDrains(t *testing.T) {
	obs := &collector{}
	l := New(Config{Observer: obs})

	for i := 0; i < 1000; i++ {
		l.Add(Record{Message: "drain"})
	}
	if err := l.Close(); err != nil {
		t.Fatal(err)
	}

	if n := len(obs.all()); n != 1000 {
		t.Errorf("observed %d entries after Close, want 1000", n)
	}
	if l.Add(Record{Message: "late"}) {
		t.Error("Add() after Close should report false")
	}
	if err := l.Exec(func() {}); err != ErrClosed {
		t.Errorf("Exec() after Close = %v, want ErrClosed", err)
	}
	l.Sync()
	if err := l.Close(); err != nil {
		t.Errorf("second Close() = %v", err)
	}
}

func TestLane_ObserverPanic(t *testing.T) {
	calls := 0
	obs := handler.ObserverFunc(func(e core.Entry) {
		calls++
		if e.Serial == 1 {
			panic("boom")
		}
	})
	l := New(Config{Observer: obs})
	defer l.Close()

	l.Add(Record{Message: "one"})
	l.Add(Record{Message: "two"})
	l.Sync()

	if calls != 2 {
		t.Errorf("observer called %d times, want 2", calls)
	}
}

func TestLane_ObserverPanicDoesNotStarveOthers(t *testing.T) {
	stats := handler.NewStats()
	registry := handler.NewRegistry()
	registry.Subscribe(handler.ObserverFunc(func(core.Entry) { panic("first observer") }))
	second := &collector{}
	registry.Subscribe(second)

	l := New(Config{Observer: registry, Stats: stats})
	defer l.Close()

	l.Add(Record{Message: "one"})
	l.Add(Record{Message: "two"})
	l.Sync()

	if n := len(second.all()); n != 2 {
		t.Errorf("second observer got %d entries, want 2", n)
	}
	if got := stats.GetSnapshot().Notified; got != 2 {
		t.Errorf("Notified = %d, want 2", got)
	}
}

// tickClock advances one millisecond on every call.
type tickClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *tickClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(time.Millisecond)
	return c.now
}

func TestLane_TimeFollowsSerial(t *testing.T) {
	obs := &collector{}
	l := New(Config{Observer: obs, Clock: &tickClock{now: time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC)}})
	defer l.Close()

	var wg sync.WaitGroup
	for g := 0; g < 4; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 50; i++ {
				l.Add(Record{Message: "tick"})
			}
		}()
	}
	wg.Wait()

	stamped := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	l.Add(Record{Message: "explicit", Time: stamped})
	l.Sync()

	entries := obs.all()
	for i := 1; i < len(entries)-1; i++ {
		if !entries[i].Time.After(entries[i-1].Time) {
			t.Fatalf("entry %d time %v not after entry %d time %v",
				entries[i].Serial, entries[i].Time, entries[i-1].Serial, entries[i-1].Time)
		}
	}
	if last := entries[len(entries)-1]; !last.Time.Equal(stamped) {
		t.Errorf("explicit time replaced: %v", last.Time)
	}
}

func TestLane_ReloadRestoresIndent(t *testing.T) {
	store := filehandler.New(filepath.Join(t.TempDir(), "indent.log"))
	wf := formatter.NewWriteFormatter(formatter.Config{})

	writer := New(Config{Write: wf, Store: store})
	writer.Add(Record{Message: "outer", Indent: core.IndentIncrease})
	writer.Add(Record{Message: "inner", Indent: core.IndentIncrease})
	writer.Add(Record{Message: "deepest"})
	writer.Close()

	var buf bytes.Buffer
	obs := &collector{}
	l := New(Config{Print: messageOnly(), Write: wf, Console: handler.NewConsole(&buf), Observer: obs})
	defer l.Close()

	l.Add(Record{Message: "before", Indent: core.IndentIncrease})
	if _, err := l.Reload(store, false); err != nil {
		t.Fatalf("Reload() error = %v", err)
	}
	l.Add(Record{Message: "after"})
	l.Sync()

	want := "\nbefore\n› outer\n›   inner\n›     deepest\n  after"
	if got := buf.String(); got != want {
		t.Errorf("console = %q, want %q", got, want)
	}
	entries := obs.all()
	if last := entries[len(entries)-1]; last.Indent != 1 {
		t.Errorf("indent after reload = %d, want 1", last.Indent)
	}
}

func TestLane_AppendFailure(t *testing.T) {
	stats := handler.NewStats()
	// a directory cannot be opened for appending
	l := New(Config{Store: filehandler.New(t.TempDir()), Stats: stats})

	l.Add(Record{Message: "lost"})
	err := l.Close()
	if err == nil {
		t.Error("Expected Close to report the failed append")
	}
	if got := stats.GetSnapshot().WriteErrors; got != 1 {
		t.Errorf("WriteErrors = %d, want 1", got)
	}
}

func TestMailbox(t *testing.T) {
	m := newMailbox[int]()
	for i := 0; i < 3; i++ {
		m.put(i)
	}
	got, ok := m.take(nil)
	if !ok || len(got) != 3 || got[2] != 2 {
		t.Errorf("take() = %v, %v", got, ok)
	}

	m.close()
	if m.put(4) {
		t.Error("put() after close should fail")
	}
	if _, ok := m.take(nil); ok {
		t.Error("take() on closed empty mailbox should report false")
	}
}
