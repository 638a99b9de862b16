package formatter

import (
	"bytes"
	"io"
	"strconv"
	"time"

	"github.com/Philipp01105/tracelog/core"
)

// JSONFormatter renders entries as one JSON object per line. It is used to
// export decoded log files to other tools.
type JSONFormatter struct {
	// TimestampFormat is a Go time layout (default: time.RFC3339Nano)
	TimestampFormat string
}

// NewJSONFormatter creates a new JSON formatter
func NewJSONFormatter(timestampFormat string) *JSONFormatter {
	if timestampFormat == "" {
		timestampFormat = time.RFC3339Nano
	}
	return &JSONFormatter{TimestampFormat: timestampFormat}
}

// Format formats an entry as JSON
func (f *JSONFormatter) Format(entry core.Entry) ([]byte, error) {
	return render(func(buf *bytes.Buffer) { f.FormatEntry(entry, buf) }), nil
}

// FormatTo formats an entry as JSON and writes it directly to the writer
func (f *JSONFormatter) FormatTo(entry core.Entry, w io.Writer) error {
	return renderTo(w, func(buf *bytes.Buffer) { f.FormatEntry(entry, buf) })
}

// FormatEntry formats an entry as JSON into the given buffer.
// Optional attributes are omitted when empty.
func (f *JSONFormatter) FormatEntry(entry core.Entry, buf *bytes.Buffer) {
	buf.WriteString(`{"serial":`)
	buf.Write(strconv.AppendInt(buf.AvailableBuffer(), int64(entry.Serial), 10))

	if !entry.Time.IsZero() {
		buf.WriteString(`,"time":"`)
		buf.Write(entry.Time.AppendFormat(buf.AvailableBuffer(), f.TimestampFormat))
		buf.WriteByte('"')
	}

	buf.WriteString(`,"level":"`)
	buf.WriteString(entry.Level.String())
	buf.WriteString(`","rank":`)
	buf.Write(strconv.AppendInt(buf.AvailableBuffer(), int64(entry.Level.Rank()), 10))

	writeString(buf, "file", entry.File)
	if entry.Line != 0 {
		buf.WriteString(`,"line":`)
		buf.Write(strconv.AppendInt(buf.AvailableBuffer(), int64(entry.Line), 10))
	}
	writeString(buf, "sender", entry.Sender)
	writeString(buf, "group", entry.Group)
	if entry.Indent != 0 {
		buf.WriteString(`,"indent":`)
		buf.Write(strconv.AppendInt(buf.AvailableBuffer(), int64(entry.Indent), 10))
	}

	buf.WriteString(`,"message":"`)
	appendJSONString(buf, entry.Message)
	buf.WriteString("\"}\n")
}

func writeString(buf *bytes.Buffer, key, val string) {
	if val == "" {
		return
	}
	buf.WriteString(`,"`)
	buf.WriteString(key)
	buf.WriteString(`":"`)
	appendJSONString(buf, val)
	buf.WriteByte('"')
}

// appendJSONString writes a JSON-escaped string (without surrounding quotes) to the buffer
func appendJSONString(buf *bytes.Buffer, s string) {
	start := 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c >= 0x20 && c != '"' && c != '\\' {
			continue
		}
		// Flush unescaped prefix
		if start < i {
			buf.WriteString(s[start:i])
		}
		switch c {
		case '"':
			buf.WriteString(`\"`)
		case '\\':
			buf.WriteString(`\\`)
		case '\n':
			buf.WriteString(`\n`)
		case '\r':
			buf.WriteString(`\r`)
		case '\t':
			buf.WriteString(`\t`)
		default:
			buf.WriteString(`\u00`)
			buf.WriteByte(hexChars[c>>4])
			buf.WriteByte(hexChars[c&0x0f])
		}
		start = i + 1
	}
	// Flush remaining
	if start < len(s) {
		buf.WriteString(s[start:])
	}
}

var hexChars = [16]byte{'0', '1', '2', '3', '4', '5', '6', '7', '8', '9', 'a', 'b', 'c', 'd', 'e', 'f'}
