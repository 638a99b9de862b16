package formatter

import (
	"bytes"
	"io"
	"sync"

	"github.com/Philipp01105/tracelog/core"
)

// WriterFormatter renders an entry straight into a writer. The print and
// JSON formatters implement it; the console sink and the CLI render through
// it.
type WriterFormatter interface {
	// FormatTo renders an entry and writes it directly to the writer
	FormatTo(entry core.Entry, w io.Writer) error
}

// Default date patterns
const (
	DefaultPrintPattern = "mm:ss.SSS"
	DefaultWritePattern = "yyyy-MM-dd HH:mm:ss.SSS"
)

// Config holds the settings of one rendering
type Config struct {
	// Order is the field order; empty or containing FieldAll means the
	// default order
	Order core.OrderSpec
	// DatePattern is an ICU style date pattern (see DateLayout)
	DatePattern string
	// Symbols are the markers and separators (zero value: DefaultSymbols)
	Symbols *Symbols
}

func (c Config) symbols() Symbols {
	if c.Symbols == nil {
		return DefaultSymbols()
	}
	return c.Symbols.normalized()
}

// Symbols are the literal markers used by both renderings.
type Symbols struct {
	// Null replaces absent values in messages
	Null string
	// Dash is rendered for FieldDash
	Dash string
	// SerialOpen and SerialClose wrap the printed serial
	SerialOpen  string
	SerialClose string
	// SenderOpen and SenderClose wrap the printed sender
	SenderOpen  string
	SenderClose string
	// FieldSeparator ends each persisted field
	FieldSeparator string
	// RecordSeparator starts each persisted record
	RecordSeparator string
	// IndentUnit is printed once per indent level
	IndentUnit string
}

// Reserved separators of the persisted format. Both are invisible so the
// file stays readable in a text editor.
const (
	DefaultFieldSeparator  = "\u2063"   // INVISIBLE SEPARATOR
	DefaultRecordSeparator = "\u00ad\n" // SOFT HYPHEN + newline
)

// DefaultSymbols returns the stock symbol set.
func DefaultSymbols() Symbols {
	return Symbols{
		Null:            "∅",
		Dash:            "⁃",
		SerialOpen:      "(",
		SerialClose:     ")",
		SenderOpen:      "[ ",
		SenderClose:     " ]",
		FieldSeparator:  DefaultFieldSeparator,
		RecordSeparator: DefaultRecordSeparator,
		IndentUnit:      "  ",
	}
}

// normalized restores the separators when they were left empty; without
// them the persisted format cannot be decoded.
func (s Symbols) normalized() Symbols {
	if s.FieldSeparator == "" {
		s.FieldSeparator = DefaultFieldSeparator
	}
	if s.RecordSeparator == "" {
		s.RecordSeparator = DefaultRecordSeparator
	}
	return s
}

// bufferPool is a pool of bytes.Buffer to reduce allocations
var bufferPool = &sync.Pool{
	New: func() interface{} {
		b := new(bytes.Buffer)
		b.Grow(256)
		return b
	},
}

func getBuffer() *bytes.Buffer {
	buf := bufferPool.Get().(*bytes.Buffer)
	buf.Reset()
	return buf
}

func putBuffer(buf *bytes.Buffer) {
	if buf.Cap() > 64*1024 { // Don't keep very large buffers
		return
	}
	bufferPool.Put(buf)
}

// render runs fn against a pooled buffer and returns a copy of the result.
func render(fn func(buf *bytes.Buffer)) []byte {
	buf := getBuffer()
	defer putBuffer(buf)

	fn(buf)

	result := make([]byte, buf.Len())
	copy(result, buf.Bytes())
	return result
}

// renderTo runs fn against a pooled buffer and writes the result to w.
func renderTo(w io.Writer, fn func(buf *bytes.Buffer)) error {
	buf := getBuffer()

	fn(buf)

	_, err := w.Write(buf.Bytes())
	putBuffer(buf)
	return err
}
