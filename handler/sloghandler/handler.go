package sloghandler

import (
	"context"
	"log/slog"
	"runtime"

	"github.com/Philipp01105/tracelog/core"
	"github.com/Philipp01105/tracelog/logger"
)

// Options configures a Handler
type Options struct {
	// Group tags every record; slog groups only qualify attribute keys
	Group string
	// MinLevel drops records below this level (default: none, keep all)
	MinLevel core.Level
}

// Handler is an adapter that implements slog.Handler on top of a Logger.
type Handler struct {
	log   *logger.Logger
	opts  Options
	attrs []any
	group string
}

// New creates a slog.Handler forwarding to log.
func New(log *logger.Logger, opts Options) *Handler {
	return &Handler{log: log, opts: opts}
}

// Enabled reports whether the handler handles records at the given level.
func (h *Handler) Enabled(_ context.Context, level slog.Level) bool {
	return LevelFromSlog(level).Rank() >= h.opts.MinLevel.Rank()
}

// Handle forwards the record as one log call.
func (h *Handler) Handle(_ context.Context, record slog.Record) error {
	items := make([]any, 0, 1+len(h.attrs)+record.NumAttrs())
	items = append(items, record.Message)
	items = append(items, h.attrs...)
	record.Attrs(func(a slog.Attr) bool {
		items = appendAttr(items, h.group, a)
		return true
	})

	h.log.Group(h.opts.Group).
		Level(LevelFromSlog(record.Level)).
		At(record.Time).
		From(callerFromPC(record.PC)).
		Log(items...)
	return nil
}

// WithAttrs returns a new Handler with additional attributes.
func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	newAttrs := make([]any, len(h.attrs), len(h.attrs)+len(attrs))
	copy(newAttrs, h.attrs)
	for _, a := range attrs {
		newAttrs = appendAttr(newAttrs, h.group, a)
	}
	return &Handler{log: h.log, opts: h.opts, attrs: newAttrs, group: h.group}
}

// WithGroup returns a new Handler with the given group name.
func (h *Handler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	newGroup := name
	if h.group != "" {
		newGroup = h.group + "." + name
	}
	return &Handler{log: h.log, opts: h.opts, attrs: h.attrs, group: newGroup}
}

// LevelFromSlog converts a slog.Level to a core.Level.
func LevelFromSlog(level slog.Level) core.Level {
	switch {
	case level >= slog.LevelError:
		return core.ErrorLevel
	case level >= slog.LevelWarn:
		return core.WarningLevel
	case level >= slog.LevelInfo:
		return core.InfoLevel
	default:
		return core.DebugLevel
	}
}

// appendAttr renders a as key=value items, flattening groups into
// dotted keys.
func appendAttr(items []any, group string, a slog.Attr) []any {
	a.Value = a.Value.Resolve()
	if a.Equal(slog.Attr{}) {
		return items
	}

	key := a.Key
	if group != "" && key != "" {
		key = group + "." + key
	} else if key == "" {
		key = group
	}

	if a.Value.Kind() == slog.KindGroup {
		for _, ga := range a.Value.Group() {
			items = appendAttr(items, key, ga)
		}
		return items
	}
	return append(items, key+"="+a.Value.String())
}

func callerFromPC(pc uintptr) core.CallerInfo {
	if pc == 0 {
		return core.CallerInfo{}
	}
	frames := runtime.CallersFrames([]uintptr{pc})
	f, _ := frames.Next()
	return core.CallerInfo{
		File:     f.File,
		Line:     f.Line,
		Function: f.Function,
		Sender:   core.SenderName(f.Function),
		Defined:  true,
	}
}
