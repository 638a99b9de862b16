package formatter

import (
	"bytes"
	"io"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/Philipp01105/tracelog/core"
)

// StyleFunc decorates the printed text of one field. It is only called for
// fields that rendered to a non-empty string.
type StyleFunc func(kind core.FieldKind, level core.Level, text string) string

// PrintFormatter renders entries for the console.
type PrintFormatter struct {
	order core.OrderSpec
	date  dateCodec
	sym   Symbols
	style StyleFunc
}

// NewPrintFormatter creates a console formatter. The date pattern defaults
// to DefaultPrintPattern.
func NewPrintFormatter(cfg Config) *PrintFormatter {
	return &PrintFormatter{
		order: cfg.Order.Resolve(),
		date:  newDateCodec(cfg.DatePattern, DefaultPrintPattern),
		sym:   cfg.symbols(),
	}
}

// WithStyle returns a copy of the formatter that passes every rendered
// field through fn.
func (f *PrintFormatter) WithStyle(fn StyleFunc) *PrintFormatter {
	c := *f
	c.style = fn
	return &c
}

// Order returns the resolved field order
func (f *PrintFormatter) Order() core.OrderSpec {
	return f.order
}

// Format renders an entry as one console line, without line terminator.
func (f *PrintFormatter) Format(entry core.Entry) ([]byte, error) {
	return render(func(buf *bytes.Buffer) { f.FormatEntry(entry, buf) }), nil
}

// FormatTo renders an entry and writes it directly to the writer
func (f *PrintFormatter) FormatTo(entry core.Entry, w io.Writer) error {
	return renderTo(w, func(buf *bytes.Buffer) { f.FormatEntry(entry, buf) })
}

// String renders an entry as a string.
func (f *PrintFormatter) String(entry core.Entry) string {
	buf := getBuffer()
	defer putBuffer(buf)
	f.FormatEntry(entry, buf)
	return buf.String()
}

// FormatEntry writes the indent prefix followed by the non-empty fields,
// separated by single spaces.
func (f *PrintFormatter) FormatEntry(entry core.Entry, buf *bytes.Buffer) {
	for i := 0; i < entry.Indent; i++ {
		buf.WriteString(f.sym.IndentUnit)
	}

	first := true
	for _, kind := range f.order {
		text := f.field(entry, kind)
		if text == "" {
			continue
		}
		if f.style != nil {
			text = f.style(kind, entry.Level, text)
		}
		if !first {
			buf.WriteByte(' ')
		}
		buf.WriteString(text)
		first = false
	}
}

// field renders a single field. Missing values render as "".
func (f *PrintFormatter) field(e core.Entry, kind core.FieldKind) string {
	switch kind {
	case core.FieldSerial:
		return f.sym.SerialOpen + padSerial(e.Serial) + f.sym.SerialClose
	case core.FieldDate:
		return f.date.format(e.Time)
	case core.FieldFile:
		base := e.BaseName()
		return strings.TrimSuffix(base, filepath.Ext(base))
	case core.FieldFilePath:
		return e.File
	case core.FieldLine:
		if e.Line == 0 {
			return ""
		}
		return padLeft(strconv.Itoa(e.Line), 4)
	case core.FieldSender:
		if e.Sender == "" {
			return ""
		}
		name, _, _ := strings.Cut(e.Sender, "(")
		return f.sym.SenderOpen + name + f.sym.SenderClose
	case core.FieldFunction:
		return e.Sender
	case core.FieldGroup:
		return e.Group
	case core.FieldLevel:
		return e.Level.Icon()
	case core.FieldMessage:
		return e.Message
	case core.FieldDash:
		return f.sym.Dash
	case core.FieldSpace:
		return " "
	default:
		return ""
	}
}

// padSerial renders the serial with at least three digits, like %03d.
func padSerial(n int) string {
	if n < 0 {
		return "-" + padZero(strconv.Itoa(-n), 2)
	}
	return padZero(strconv.Itoa(n), 3)
}

func padZero(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return strings.Repeat("0", width-len(s)) + s
}

func padLeft(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return strings.Repeat(" ", width-len(s)) + s
}
