package logger

import (
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/Philipp01105/tracelog/config"
	"github.com/Philipp01105/tracelog/core"
	"github.com/Philipp01105/tracelog/formatter"
	"github.com/Philipp01105/tracelog/handler"
	"github.com/Philipp01105/tracelog/handler/filehandler"
	"github.com/Philipp01105/tracelog/lane"
)

// Logger is the diagnostic trail. Its configuration is fixed once built;
// all methods are safe for concurrent use.
type Logger struct {
	settings  config.Settings
	print     *formatter.PrintFormatter
	write     *formatter.WriteFormatter
	store     *filehandler.Store // nil when persistence is disabled
	lane      *lane.Lane
	observers *handler.Registry
	stats     *handler.Stats
	clock     core.Clock
	coarse    *core.CoarseClock
	diag      *zap.Logger
}

// Builder provides a fluent API for building Logger instances
type Builder struct {
	settings   config.Settings
	console    io.Writer
	consoleSet bool
	diag       *zap.Logger
	clock      core.Clock
	observers  []handler.Observer
}

// NewBuilder creates a builder holding the default settings: default
// orders and patterns, echo to stderr, persistence to a new per-run file.
func NewBuilder() *Builder {
	s, _ := config.Default().Resolve()
	return &Builder{settings: s}
}

// WithSettings replaces all settings
func (b *Builder) WithSettings(s config.Settings) *Builder {
	b.settings = s
	return b
}

// WithFile sets the log file
func (b *Builder) WithFile(path string) *Builder {
	b.settings.File = path
	return b
}

// WithPersistence switches writing to the log file on or off
func (b *Builder) WithPersistence(enabled bool) *Builder {
	b.settings.Persist = enabled
	return b
}

// WithPrintOrder sets the console field order
func (b *Builder) WithPrintOrder(kinds ...core.FieldKind) *Builder {
	b.settings.PrintOrder = core.OrderSpec(kinds).Resolve()
	return b
}

// WithWriteOrder sets the persisted field order
func (b *Builder) WithWriteOrder(kinds ...core.FieldKind) *Builder {
	b.settings.WriteOrder = core.OrderSpec(kinds).Resolve()
	return b
}

// WithPrintDate sets the console date pattern
func (b *Builder) WithPrintDate(pattern string) *Builder {
	b.settings.PrintDate = pattern
	return b
}

// WithWriteDate sets the persisted date pattern
func (b *Builder) WithWriteDate(pattern string) *Builder {
	b.settings.WriteDate = pattern
	return b
}

// WithMinPrintLevel suppresses console echo below level. File persistence
// is not affected.
func (b *Builder) WithMinPrintLevel(level core.Level) *Builder {
	b.settings.MinPrint = level
	return b
}

// WithSymbols sets the markers and separators
func (b *Builder) WithSymbols(sym formatter.Symbols) *Builder {
	b.settings.Symbols = sym
	return b
}

// WithConsole sets the echo destination; nil disables echo
func (b *Builder) WithConsole(w io.Writer) *Builder {
	b.console = w
	b.consoleSet = true
	return b
}

// WithDiagnostics sets the logger that receives tracelog's own warnings
// (file cannot be created, reload failed, ...)
func (b *Builder) WithDiagnostics(l *zap.Logger) *Builder {
	b.diag = l
	return b
}

// WithClock sets the source of entry timestamps
func (b *Builder) WithClock(c core.Clock) *Builder {
	b.clock = c
	return b
}

// WithObserver subscribes an observer before the first entry is logged
func (b *Builder) WithObserver(o handler.Observer) *Builder {
	b.observers = append(b.observers, o)
	return b
}

// Build prepares the log file and starts the write lane. When the file
// cannot be prepared, persistence stays disabled for the Logger's life and
// a diagnostic is emitted.
func (b *Builder) Build() *Logger {
	if b.settings.Symbols == (formatter.Symbols{}) {
		b.settings.Symbols = formatter.DefaultSymbols()
	}
	if b.settings.File == "" {
		b.settings.File = config.DefaultFile()
	}

	l := &Logger{
		settings:  b.settings,
		print:     formatter.NewPrintFormatter(b.settings.PrintFormat()),
		write:     formatter.NewWriteFormatter(b.settings.WriteFormat()),
		observers: handler.NewRegistry(),
		stats:     handler.NewStats(),
		clock:     b.clock,
		diag:      b.diag,
	}
	if l.diag == nil {
		l.diag = defaultDiagnostics()
	}
	if l.clock == nil {
		if b.settings.CoarseClock {
			l.coarse = core.NewCoarseClock(0)
			l.clock = l.coarse
		} else {
			l.clock = core.SystemClock{}
		}
	}
	for _, o := range b.observers {
		l.observers.Subscribe(o)
	}

	if b.settings.Persist {
		store := filehandler.New(b.settings.File)
		if err := store.Prepare(); err != nil {
			l.diag.Warn("cannot create log file, persistence disabled",
				zap.String("file", b.settings.File), zap.Error(err))
		} else {
			l.store = store
		}
	}

	var console *handler.Console
	switch {
	case !b.consoleSet:
		console = handler.NewConsole(os.Stderr)
	case b.console != nil:
		console = handler.NewConsole(b.console)
	}

	l.lane = lane.New(lane.Config{
		Print:       l.print,
		Write:       l.write,
		Clock:       l.clock,
		Console:     console,
		MinPrint:    b.settings.MinPrint,
		Store:       l.store,
		Observer:    l.observers,
		Stats:       l.stats,
		Diagnostics: l.diag,
	})
	return l
}

func defaultDiagnostics() *zap.Logger {
	enc := zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig())
	c := zapcore.NewCore(enc, zapcore.Lock(os.Stderr), zap.WarnLevel)
	return zap.New(c).Named("tracelog")
}

// emit builds the record for one call and hands it to the lane, which
// stamps it with the clock unless the call set a time. Every
// exported logging method calls emit directly so the caller is always
// three frames up.
func (l *Logger) emit(c Call, items []any) {
	var caller core.CallerInfo
	if c.caller != nil {
		caller = *c.caller
	} else {
		caller = core.GetCaller(3)
	}
	r := lane.Record{
		Time:    c.at,
		Message: core.BuildMessage(items, c.separator, l.settings.Symbols.Null),
		Group:   c.group,
		File:    caller.File,
		Line:    caller.Line,
		Sender:  caller.Sender,
		Level:   c.level,
		Indent:  c.indent,
	}
	if c.join {
		l.lane.Append(r)
		return
	}
	l.lane.Add(r)
}

// Reload decodes every record of file (the Logger's own file when empty),
// replays each one to the console and the observers, and erases the file
// afterwards when erase is set. Failures are reported as diagnostics; the
// records decoded so far are returned.
func (l *Logger) Reload(file string, erase bool) []core.Entry {
	store := l.storeFor(file)
	entries, err := l.lane.Reload(store, erase)
	if err != nil {
		l.diag.Warn("failed to reload log file", zap.String("file", store.Path()), zap.Error(err))
	}
	return entries
}

// EraseLog truncates file (the Logger's own file when empty) once every
// pending write is done. A failure is reported as a diagnostic and
// returned.
func (l *Logger) EraseLog(file string) error {
	store := l.storeFor(file)
	err := l.lane.Erase(store)
	if err != nil {
		l.diag.Warn("failed to erase log file", zap.String("file", store.Path()), zap.Error(err))
	}
	return err
}

func (l *Logger) storeFor(file string) *filehandler.Store {
	if file == "" || file == l.settings.File {
		if l.store != nil {
			return l.store
		}
		return filehandler.New(l.settings.File)
	}
	return filehandler.New(file)
}

// Subscribe adds an observer of every completed entry and returns the
// function that removes it.
func (l *Logger) Subscribe(o handler.Observer) (unsubscribe func()) {
	return l.observers.Subscribe(o)
}

// Sync waits until every call made before it has been processed and
// delivered to the observers.
func (l *Logger) Sync() {
	l.lane.Sync()
}

// Close drains all pending work and stops the lane. Calls made after
// Close are ignored. The error reports failed file appends.
func (l *Logger) Close() error {
	err := l.lane.Close()
	if l.coarse != nil {
		l.coarse.Stop()
	}
	return err
}

// Stats returns a snapshot of the lane counters
func (l *Logger) Stats() handler.Snapshot {
	return l.stats.GetSnapshot()
}

// Settings returns the settings the Logger was built with
func (l *Logger) Settings() config.Settings {
	return l.settings
}

// File returns the path of the log file
func (l *Logger) File() string {
	return l.settings.File
}

// Persisting reports whether records are written to the log file
func (l *Logger) Persisting() bool {
	return l.store != nil
}

// PrintFormatter returns the console formatter
func (l *Logger) PrintFormatter() *formatter.PrintFormatter {
	return l.print
}

// WriteFormatter returns the persisted record formatter
func (l *Logger) WriteFormatter() *formatter.WriteFormatter {
	return l.write
}
