package logger

import (
	"sync"

	"github.com/Philipp01105/tracelog/core"
)

var (
	defaultLogger *Logger
	defaultMu     sync.RWMutex
	defaultOnce   sync.Once
)

// Default returns the default logger. Unless SetDefault was called, it is
// created on first use and echoes to stderr without writing a file.
func Default() *Logger {
	defaultOnce.Do(func() {
		defaultMu.Lock()
		if defaultLogger == nil {
			defaultLogger = NewBuilder().WithPersistence(false).Build()
		}
		defaultMu.Unlock()
	})

	defaultMu.RLock()
	defer defaultMu.RUnlock()
	return defaultLogger
}

// SetDefault sets the default logger. The previous one is not closed.
func SetDefault(l *Logger) {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	defaultLogger = l
}

// Package-level convenience functions using the default logger

// Log logs items at the default level using the default logger
func Log(items ...any) {
	d := Default()
	d.emit(d.call(), items)
}

// Info logs items at InfoLevel using the default logger
func Info(items ...any) {
	d := Default()
	d.emit(d.call().Level(core.InfoLevel), items)
}

// Debug logs items at DebugLevel using the default logger
func Debug(items ...any) {
	d := Default()
	d.emit(d.call().Level(core.DebugLevel), items)
}

// Done logs items at DoneLevel using the default logger
func Done(items ...any) {
	d := Default()
	d.emit(d.call().Level(core.DoneLevel), items)
}

// Warning logs items at WarningLevel using the default logger
func Warning(items ...any) {
	d := Default()
	d.emit(d.call().Level(core.WarningLevel), items)
}

// Error logs items at ErrorLevel using the default logger
func Error(items ...any) {
	d := Default()
	d.emit(d.call().Level(core.ErrorLevel), items)
}

// Group starts a call on the default logger tagged with group
func Group(group string) Call {
	return Default().Group(group)
}

// Sync waits for the default logger to process every earlier call
func Sync() {
	Default().Sync()
}
