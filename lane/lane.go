package lane

import (
	"sync"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/Philipp01105/tracelog/core"
	"github.com/Philipp01105/tracelog/formatter"
	"github.com/Philipp01105/tracelog/handler"
	"github.com/Philipp01105/tracelog/handler/filehandler"
)

// ErrClosed is returned for work submitted after Close.
var ErrClosed = errors.New("lane: closed")

// ReplayPrefix starts every console line of a replayed record.
const ReplayPrefix = "› "

// maxKeptErrors bounds the append failures kept for Close.
const maxKeptErrors = 16

// Config holds the collaborators of a lane. Nil fields disable the
// corresponding step.
type Config struct {
	Print formatter.WriterFormatter
	Write *formatter.WriteFormatter
	// Clock stamps records submitted without a time (default: system clock)
	Clock core.Clock
	// Console receives the print rendering of every record whose level
	// passes MinPrint
	Console  *handler.Console
	MinPrint core.Level
	// Store is the log file; nil disables persistence
	Store    *filehandler.Store
	Observer handler.Observer
	Stats    *handler.Stats
	// Diagnostics receives write failures
	Diagnostics *zap.Logger
}

// Record is one submitted log call. Serial and indent depth are assigned
// by the lane, and so is the time when it is zero.
type Record struct {
	Time    time.Time
	Message string
	Group   string
	File    string
	Line    int
	Sender  string
	Level   core.Level
	Indent  core.IndentDirective
}

type opKind uint8

const (
	opAdd opKind = iota
	opAppend
	opExec
	opBarrier
)

type op struct {
	kind   opKind
	record Record
	fn     func()
	done   chan struct{}
}

// note is one unit of work for the notification goroutine. A note with a
// done channel is a barrier.
type note struct {
	entry core.Entry
	done  chan struct{}
}

// Lane is the single ordered worker. All exported methods are safe for
// concurrent use.
type Lane struct {
	cfg   Config
	diag  *zap.Logger
	ops   *mailbox[op]
	notes *mailbox[note]
	wg    sync.WaitGroup

	// owned by the worker goroutine
	serial int
	indent core.Indent
	echoed bool
	errs   []error

	closeOnce sync.Once
	closeErr  error
}

// New starts a lane and its notification goroutine.
func New(cfg Config) *Lane {
	if cfg.Print == nil {
		cfg.Print = formatter.NewPrintFormatter(formatter.Config{})
	}
	if cfg.Write == nil {
		cfg.Write = formatter.NewWriteFormatter(formatter.Config{})
	}
	if cfg.Stats == nil {
		cfg.Stats = handler.NewStats()
	}
	if cfg.Clock == nil {
		cfg.Clock = core.SystemClock{}
	}
	diag := cfg.Diagnostics
	if diag == nil {
		diag = zap.NewNop()
	}

	l := &Lane{
		cfg:   cfg,
		diag:  diag,
		ops:   newMailbox[op](),
		notes: newMailbox[note](),
	}
	l.wg.Add(2)
	go l.process()
	go l.notify()
	return l
}

// Add queues an ordinary record. It returns false after Close.
func (l *Lane) Add(r Record) bool {
	return l.ops.put(op{kind: opAdd, record: r})
}

// Append queues joined text. It returns false after Close.
func (l *Lane) Append(r Record) bool {
	return l.ops.put(op{kind: opAppend, record: r})
}

// Exec runs fn on the lane after every previously submitted operation and
// waits for it to return.
func (l *Lane) Exec(fn func()) error {
	done := make(chan struct{})
	if !l.ops.put(op{kind: opExec, fn: fn, done: done}) {
		return ErrClosed
	}
	<-done
	return nil
}

// Reload decodes every record of store and replays it to the console and
// the observer, then erases the file when erase is set. The indent cursor
// follows the replayed records and is put back afterwards; the serial
// counter is not touched.
func (l *Lane) Reload(store *filehandler.Store, erase bool) ([]core.Entry, error) {
	var (
		entries []core.Entry
		err     error
	)
	execErr := l.Exec(func() {
		entries, err = store.Load(l.cfg.Write)
		if err != nil {
			return
		}
		saved := l.indent.Depth()
		for i := range entries {
			l.indent.SetAbsolute(entries[i].Indent)
			entries[i].Indent = l.indent.Depth()
			if l.printable(entries[i].Level) {
				l.echo(ReplayPrefix, entries[i])
			}
			l.notes.put(note{entry: entries[i]})
		}
		l.indent.SetAbsolute(saved)
		l.cfg.Stats.AddReplayed(len(entries))
		if erase {
			err = store.Erase()
		}
	})
	if execErr != nil {
		return nil, execErr
	}
	return entries, err
}

// Erase truncates store once every previously submitted write is done.
func (l *Lane) Erase(store *filehandler.Store) error {
	var err error
	if execErr := l.Exec(func() { err = store.Erase() }); execErr != nil {
		return execErr
	}
	return err
}

// Sync waits until every operation submitted before it has been processed
// and every resulting notification delivered. After Close it returns
// immediately.
func (l *Lane) Sync() {
	done := make(chan struct{})
	if !l.ops.put(op{kind: opBarrier, done: done}) {
		return
	}
	<-done
}

// Close stops accepting work, drains everything already queued, and
// returns the file append failures seen during the lane's life.
func (l *Lane) Close() error {
	l.closeOnce.Do(func() {
		l.ops.close()
		l.wg.Wait()
		if l.echoed && l.cfg.Console != nil {
			_, _ = l.cfg.Console.Write([]byte("\n"))
		}
		l.closeErr = multierr.Combine(l.errs...)
	})
	return l.closeErr
}

// process is the worker loop
func (l *Lane) process() {
	defer l.wg.Done()
	defer l.notes.close()

	var batch []op
	for {
		var ok bool
		batch, ok = l.ops.take(batch[:0])
		for i := range batch {
			l.run(&batch[i])
		}
		clear(batch)
		if !ok {
			return
		}
	}
}

func (l *Lane) run(o *op) {
	switch o.kind {
	case opAdd:
		l.add(o.record)
	case opAppend:
		l.append(o.record)
	case opExec:
		o.fn()
		close(o.done)
	case opBarrier:
		l.notes.put(note{done: o.done})
	}
}

func (l *Lane) add(r Record) {
	if r.Indent.Before() {
		l.indent.Apply(r.Indent)
	}
	l.serial++

	e := core.Entry{
		Serial:  l.serial,
		Time:    l.stamp(r.Time),
		File:    r.File,
		Line:    r.Line,
		Sender:  r.Sender,
		Indent:  l.indent.Depth(),
		Group:   r.Group,
		Level:   r.Level,
		Message: r.Message,
	}
	l.cfg.Stats.IncrementAdded()

	if l.printable(e.Level) {
		l.echo("", e)
	}
	l.notes.put(note{entry: e})
	if l.cfg.Store != nil {
		l.persist(l.cfg.Write.Record(e))
	}

	if r.Indent.After() {
		l.indent.Apply(r.Indent)
	}
}

func (l *Lane) append(r Record) {
	e := core.Entry{
		Serial:  core.JoinSerial,
		Time:    l.stamp(r.Time),
		File:    r.File,
		Line:    r.Line,
		Sender:  r.Sender,
		Indent:  l.indent.Depth(),
		Group:   r.Group,
		Level:   r.Level,
		Message: r.Message,
	}
	l.cfg.Stats.IncrementJoined()

	if l.printable(e.Level) && l.cfg.Console != nil {
		if _, err := l.cfg.Console.Write([]byte(e.Message)); err == nil {
			l.echoed = true
			l.cfg.Stats.IncrementEchoed()
		}
	}
	l.notes.put(note{entry: e})
	if l.cfg.Store != nil {
		l.persist([]byte(e.Message))
	}
}

// stamp returns t, or the lane clock's time when t is zero, so that time
// order follows serial order.
func (l *Lane) stamp(t time.Time) time.Time {
	if t.IsZero() {
		return l.cfg.Clock.Now()
	}
	return t
}

func (l *Lane) printable(level core.Level) bool {
	return level.Rank() >= l.cfg.MinPrint.Rank()
}

// echo writes the print rendering of e as one console line. Lines start
// with a newline so joined text written after them continues the same line.
func (l *Lane) echo(prefix string, e core.Entry) {
	if l.cfg.Console == nil {
		return
	}
	if err := l.cfg.Console.Entry("\n"+prefix, e, l.cfg.Print); err != nil {
		return
	}
	l.echoed = true
	l.cfg.Stats.IncrementEchoed()
}

func (l *Lane) persist(p []byte) {
	if err := l.cfg.Store.Append(p); err != nil {
		l.cfg.Stats.IncrementWriteErrors()
		l.diag.Warn("failed to append to log file",
			zap.String("file", l.cfg.Store.Path()), zap.Error(err))
		if len(l.errs) < maxKeptErrors {
			l.errs = append(l.errs, err)
		}
		return
	}
	l.cfg.Stats.IncrementPersisted()
}

// notify delivers entries to the observer in lane order.
func (l *Lane) notify() {
	defer l.wg.Done()

	var batch []note
	for {
		var ok bool
		batch, ok = l.notes.take(batch[:0])
		for _, n := range batch {
			if n.done != nil {
				close(n.done)
				continue
			}
			l.deliver(n.entry)
		}
		clear(batch)
		if !ok {
			return
		}
	}
}

func (l *Lane) deliver(e core.Entry) {
	if l.cfg.Observer == nil {
		return
	}
	l.observe(l.cfg.Observer, e)
	l.cfg.Stats.IncrementNotified()
}

// observe calls o, or each observer behind a fan-out, so that a panic in
// one observer does not keep the entry from the others.
func (l *Lane) observe(o handler.Observer, e core.Entry) {
	if f, ok := o.(handler.Fanout); ok {
		f.Each(func(o handler.Observer) { l.observe(o, e) })
		return
	}
	defer func() {
		if r := recover(); r != nil {
			l.diag.Error("observer panicked", zap.Any("panic", r), zap.Int("serial", e.Serial))
		}
	}()
	o.Observe(e)
}
