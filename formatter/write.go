package formatter

import (
	"bytes"
	"strconv"
	"strings"
	"time"

	"github.com/Philipp01105/tracelog/core"
)

// WriteFormatter renders entries into the persisted record format and
// decodes such records back into entries.
//
// Every value field is followed by the field separator. A message field is
// only followed by one when further value fields come after it, so with the
// usual message-last orders the record ends with the message text. Literal
// fields (dash, space) are written without separator and end up glued to
// the neighbouring value.
type WriteFormatter struct {
	order core.OrderSpec
	date  dateCodec
	sym   Symbols
	// sepAfter[i] reports whether the field at order[i] is followed by the
	// field separator
	sepAfter []bool
	// values is the number of separator-delimited fields in a record
	values int
	// lastValue is the index in order of the last non-literal field
	lastValue int
	// trailer is the literal text written after a final message field
	trailer string
}

// NewWriteFormatter creates a record formatter. The date pattern defaults
// to DefaultWritePattern.
func NewWriteFormatter(cfg Config) *WriteFormatter {
	f := &WriteFormatter{
		order:     cfg.Order.Resolve(),
		date:      newDateCodec(cfg.DatePattern, DefaultWritePattern),
		sym:       cfg.symbols(),
		lastValue: -1,
	}

	f.sepAfter = make([]bool, len(f.order))
	for i, kind := range f.order {
		if kind.Literal() {
			continue
		}
		f.values++
		f.lastValue = i
		f.sepAfter[i] = true
	}
	if f.lastValue >= 0 && f.order[f.lastValue] == core.FieldMessage {
		f.sepAfter[f.lastValue] = false
		for _, kind := range f.order[f.lastValue+1:] {
			f.trailer += f.literal(kind)
		}
	}
	return f
}

// Order returns the resolved field order
func (f *WriteFormatter) Order() core.OrderSpec {
	return f.order
}

// Symbols returns the symbols in use
func (f *WriteFormatter) Symbols() Symbols {
	return f.sym
}

// Format renders an entry as a record, without the record separator.
func (f *WriteFormatter) Format(entry core.Entry) ([]byte, error) {
	return render(func(buf *bytes.Buffer) { f.FormatEntry(entry, buf) }), nil
}

// Record renders an entry prefixed with the record separator, ready to be
// appended to a log file.
func (f *WriteFormatter) Record(entry core.Entry) []byte {
	return render(func(buf *bytes.Buffer) {
		buf.WriteString(f.sym.RecordSeparator)
		f.FormatEntry(entry, buf)
	})
}

// FormatEntry writes the record fields in order into buf.
func (f *WriteFormatter) FormatEntry(e core.Entry, buf *bytes.Buffer) {
	for i, kind := range f.order {
		switch kind {
		case core.FieldSerial:
			buf.WriteString(strconv.Itoa(e.Serial))
		case core.FieldDate:
			buf.WriteString(f.date.format(e.Time))
		case core.FieldFile:
			buf.WriteString(e.BaseName())
		case core.FieldFilePath:
			buf.WriteString(e.File)
		case core.FieldLine:
			if e.Line != 0 {
				buf.WriteString(strconv.Itoa(e.Line))
			}
		case core.FieldSender, core.FieldFunction:
			buf.WriteString(e.Sender)
		case core.FieldGroup:
			buf.WriteString(e.Group)
		case core.FieldLevel:
			if e.Level.Rank() < 10 {
				buf.WriteByte('0')
			}
			buf.WriteString(strconv.Itoa(e.Level.Rank()))
			buf.WriteByte(' ')
			buf.WriteString(e.Level.Icon())
		case core.FieldMessage:
			for j := 0; j < e.Indent; j++ {
				buf.WriteByte(' ')
			}
			buf.WriteString(e.Message)
		default:
			buf.WriteString(f.literal(kind))
		}
		if f.sepAfter[i] {
			buf.WriteString(f.sym.FieldSeparator)
		}
	}
}

func (f *WriteFormatter) literal(kind core.FieldKind) string {
	switch kind {
	case core.FieldDash:
		return f.sym.Dash
	case core.FieldSpace:
		return " "
	default:
		return ""
	}
}

// Decode reverses FormatEntry for one record (without record separator).
// It returns false when the record has fewer fields than the order needs.
// A field that fails to parse keeps its zero value; attributes whose kind
// is not in the order are left at their zero value as well.
func (f *WriteFormatter) Decode(record string) (core.Entry, bool) {
	var e core.Entry
	parts := strings.Split(record, f.sym.FieldSeparator)
	if f.values == 0 || len(parts) < f.values {
		return e, false
	}

	fromPath := false
	idx := 0
	for i, kind := range f.order {
		if kind.Literal() {
			if idx < len(parts) {
				parts[idx] = strings.TrimPrefix(parts[idx], f.literal(kind))
			}
			continue
		}
		if idx >= len(parts) {
			break
		}
		raw := parts[idx]
		idx++
		if i == f.lastValue && kind == core.FieldMessage {
			// text joined onto the record after it was written belongs to
			// the message
			raw = strings.Join(parts[idx-1:], f.sym.FieldSeparator)
			raw = strings.TrimSuffix(raw, f.trailer)
			idx = len(parts)
		}

		switch kind {
		case core.FieldSerial:
			e.Serial, _ = strconv.Atoi(raw)
		case core.FieldDate:
			t, err := f.date.parse(raw)
			if err != nil {
				t = time.Time{}
			}
			e.Time = t
		case core.FieldFile:
			if !fromPath {
				e.File = raw
			}
		case core.FieldFilePath:
			e.File = raw
			fromPath = true
		case core.FieldLine:
			e.Line, _ = strconv.Atoi(raw)
		case core.FieldSender, core.FieldFunction:
			e.Sender = raw
		case core.FieldGroup:
			e.Group = raw
		case core.FieldLevel:
			e.Level = decodeLevel(raw)
		case core.FieldMessage:
			trimmed := strings.TrimLeft(raw, " ")
			e.Indent = len(raw) - len(trimmed)
			e.Message = trimmed
		}
	}
	return e, true
}

// decodeLevel reads the two-digit rank that starts a level field.
func decodeLevel(raw string) core.Level {
	if len(raw) < 2 {
		return core.NoneLevel
	}
	rank, err := strconv.Atoi(raw[:2])
	if err != nil {
		return core.NoneLevel
	}
	l, _ := core.LevelFromRank(rank)
	return l
}
