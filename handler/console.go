package handler

import (
	"bytes"
	"io"
	"os"
	"sync"

	"github.com/Philipp01105/tracelog/core"
	"github.com/Philipp01105/tracelog/formatter"
)

// Console is the sink for console echo. Writes are serialized so that a
// writer shared with other code never interleaves inside a line.
type Console struct {
	mu  sync.Mutex
	w   io.Writer
	buf bytes.Buffer
}

// NewConsole wraps w (default: os.Stderr)
func NewConsole(w io.Writer) *Console {
	if w == nil {
		w = os.Stderr
	}
	return &Console{w: w}
}

// Write writes p under the console lock.
func (c *Console) Write(p []byte) (n int, err error) {
	c.mu.Lock()
	n, err = c.w.Write(p)
	c.mu.Unlock()
	return
}

// Entry renders entry with f after prefix and writes the result in a
// single write.
func (c *Console) Entry(prefix string, entry core.Entry, f formatter.WriterFormatter) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.buf.Reset()
	c.buf.WriteString(prefix)
	if err := f.FormatTo(entry, &c.buf); err != nil {
		return err
	}
	_, err := c.w.Write(c.buf.Bytes())
	return err
}
