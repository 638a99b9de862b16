package logger

import (
	"fmt"
	"time"

	"github.com/Philipp01105/tracelog/core"
)

// DefaultSeparator is written after every item of a message
const DefaultSeparator = " "

// Call carries the options of one log call. It is a value: every option
// method returns a modified copy, so a Call can be prepared once and
// reused from several goroutines.
//
//	net := log.Group("net")
//	net.Indent(core.IndentIncrease).Info("connecting", addr)
//	net.Indent(core.IndentDecrease).Done("connected")
type Call struct {
	l          *Logger
	group      string
	level      core.Level
	indent     core.IndentDirective
	join       bool
	separator  string
	terminator string
	at         time.Time
	caller     *core.CallerInfo
}

func (l *Logger) call() Call {
	return Call{l: l, level: core.DefaultLevel, separator: DefaultSeparator}
}

// Group starts a call tagged with group
func (l *Logger) Group(group string) Call {
	return l.call().Group(group)
}

// Level starts a call at level
func (l *Logger) Level(level core.Level) Call {
	return l.call().Level(level)
}

// Indent starts a call that moves the indent cursor
func (l *Logger) Indent(d core.IndentDirective) Call {
	return l.call().Indent(d)
}

// Join starts a call whose text continues the previous record
func (l *Logger) Join() Call {
	return l.call().Join()
}

// Separator starts a call with a custom item separator
func (l *Logger) Separator(sep string) Call {
	return l.call().Separator(sep)
}

// Group sets the group tag
func (c Call) Group(group string) Call {
	c.group = group
	return c
}

// Level sets the level
func (c Call) Level(level core.Level) Call {
	c.level = level
	return c
}

// Indent sets the indent directive. Decrease and reset apply to this
// record, increase to the ones after it.
func (c Call) Indent(d core.IndentDirective) Call {
	c.indent = d
	return c
}

// Join makes the call append its raw text to the previous record instead
// of producing a new one. Joined text takes no serial and leaves the
// indent cursor alone.
func (c Call) Join() Call {
	c.join = true
	return c
}

// Separator sets the text written after each item
func (c Call) Separator(sep string) Call {
	c.separator = sep
	return c
}

// Terminator is accepted for compatibility with existing call sites. It
// does not change any rendering.
func (c Call) Terminator(term string) Call {
	c.terminator = term
	return c
}

// At stamps the record with t instead of the Logger's clock
func (c Call) At(t time.Time) Call {
	c.at = t
	return c
}

// From attributes the record to caller instead of the calling code. It
// is meant for adapters that forward records from other logging APIs.
func (c Call) From(caller core.CallerInfo) Call {
	c.caller = &caller
	return c
}

// Log logs items at the call's level
func (c Call) Log(items ...any) {
	c.l.emit(c, items)
}

// Logf logs a formatted message at the call's level
func (c Call) Logf(format string, args ...any) {
	c.l.emit(c, []any{fmt.Sprintf(format, args...)})
}

// Info logs items at InfoLevel
func (c Call) Info(items ...any) {
	c.l.emit(c.Level(core.InfoLevel), items)
}

// Debug logs items at DebugLevel
func (c Call) Debug(items ...any) {
	c.l.emit(c.Level(core.DebugLevel), items)
}

// Mark logs items at MarkLevel
func (c Call) Mark(items ...any) {
	c.l.emit(c.Level(core.MarkLevel), items)
}

// Comment logs items at CommentLevel
func (c Call) Comment(items ...any) {
	c.l.emit(c.Level(core.CommentLevel), items)
}

// Done logs items at DoneLevel
func (c Call) Done(items ...any) {
	c.l.emit(c.Level(core.DoneLevel), items)
}

// Warning logs items at WarningLevel
func (c Call) Warning(items ...any) {
	c.l.emit(c.Level(core.WarningLevel), items)
}

// Error logs items at ErrorLevel
func (c Call) Error(items ...any) {
	c.l.emit(c.Level(core.ErrorLevel), items)
}

// Crash logs items at CrashLevel. It does not stop the program.
func (c Call) Crash(items ...any) {
	c.l.emit(c.Level(core.CrashLevel), items)
}

// Log logs items at the default level
func (l *Logger) Log(items ...any) {
	l.emit(l.call(), items)
}

// Logf logs a formatted message at the default level
func (l *Logger) Logf(format string, args ...any) {
	l.emit(l.call(), []any{fmt.Sprintf(format, args...)})
}

// Info logs items at InfoLevel
func (l *Logger) Info(items ...any) {
	l.emit(l.call().Level(core.InfoLevel), items)
}

// Debug logs items at DebugLevel
func (l *Logger) Debug(items ...any) {
	l.emit(l.call().Level(core.DebugLevel), items)
}

// Mark logs items at MarkLevel
func (l *Logger) Mark(items ...any) {
	l.emit(l.call().Level(core.MarkLevel), items)
}

// Comment logs items at CommentLevel
func (l *Logger) Comment(items ...any) {
	l.emit(l.call().Level(core.CommentLevel), items)
}

// Done logs items at DoneLevel
func (l *Logger) Done(items ...any) {
	l.emit(l.call().Level(core.DoneLevel), items)
}

// Warning logs items at WarningLevel
func (l *Logger) Warning(items ...any) {
	l.emit(l.call().Level(core.WarningLevel), items)
}

// Error logs items at ErrorLevel
func (l *Logger) Error(items ...any) {
	l.emit(l.call().Level(core.ErrorLevel), items)
}

// Crash logs items at CrashLevel. It does not stop the program.
func (l *Logger) Crash(items ...any) {
	l.emit(l.call().Level(core.CrashLevel), items)
}
