package filehandler

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"

	"github.com/Philipp01105/tracelog/core"
	"github.com/Philipp01105/tracelog/formatter"
)

// sessionBreak is appended to a non-empty file when a new session starts
// writing to it, so sessions stay visually apart.
const sessionBreak = "\n\n\n"

// Store is an append-only log file. It keeps no handle open between
// calls: each Append opens the file, writes at the end and closes it.
type Store struct {
	path string
	perm os.FileMode
}

// New creates a store for path. Nothing is touched on disk until Prepare
// or Append is called.
func New(path string) *Store {
	return &Store{path: path, perm: 0644}
}

// Path returns the file path
func (s *Store) Path() string {
	return s.path
}

// Prepare makes sure the file can be written: a missing file is created
// together with its directory, an existing non-empty file gets a session
// break appended.
func (s *Store) Prepare() error {
	if s.path == "" {
		return errors.New("filename is required")
	}

	info, err := os.Stat(s.path)
	switch {
	case err == nil:
		if info.IsDir() {
			return errors.Errorf("%s is a directory", s.path)
		}
		if info.Size() > 2 {
			return s.Append([]byte(sessionBreak))
		}
		return nil
	case os.IsNotExist(err):
		if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
			return errors.Wrap(err, "creating log directory")
		}
		f, err := os.OpenFile(s.path, os.O_CREATE|os.O_WRONLY, s.perm)
		if err != nil {
			return errors.Wrap(err, "creating log file")
		}
		return errors.Wrap(f.Close(), "creating log file")
	default:
		return errors.Wrap(err, "inspecting log file")
	}
}

// Append writes data at the end of the file.
func (s *Store) Append(data []byte) error {
	f, err := os.OpenFile(s.path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, s.perm)
	if err != nil {
		return errors.Wrap(err, "opening log file")
	}
	if _, err := f.Write(data); err != nil {
		f.Close()
		return errors.Wrap(err, "appending to log file")
	}
	return errors.Wrap(f.Close(), "closing log file")
}

// ReadAll returns the whole file content.
func (s *Store) ReadAll() (string, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return "", errors.Wrapf(err, "failed to load file %s", s.path)
	}
	return string(data), nil
}

// Load reads and decodes the file.
func (s *Store) Load(wf *formatter.WriteFormatter) ([]core.Entry, error) {
	content, err := s.ReadAll()
	if err != nil {
		return nil, err
	}
	return Decode(content, wf), nil
}

// Erase truncates the file to empty content.
func (s *Store) Erase() error {
	if err := os.WriteFile(s.path, nil, s.perm); err != nil {
		return errors.Wrapf(err, "failed to erase file %s", s.path)
	}
	return nil
}

// Size returns the current file size.
func (s *Store) Size() (int64, error) {
	info, err := os.Stat(s.path)
	if err != nil {
		return 0, errors.Wrap(err, "inspecting log file")
	}
	return info.Size(), nil
}

// Decode splits content into records and decodes each one with wf.
// Session breaks are stripped, blank segments and records with too few
// fields are skipped; decoding never fails as a whole.
func Decode(content string, wf *formatter.WriteFormatter) []core.Entry {
	records := strings.Split(content, wf.Symbols().RecordSeparator)
	if n := len(records); n > 0 && records[n-1] == "" {
		records = records[:n-1]
	}

	entries := make([]core.Entry, 0, len(records))
	for _, rec := range records {
		for strings.HasSuffix(rec, sessionBreak) {
			rec = strings.TrimSuffix(rec, sessionBreak)
		}
		if strings.TrimSpace(rec) == "" {
			continue
		}
		e, ok := wf.Decode(rec)
		if !ok {
			continue
		}
		entries = append(entries, e)
	}
	return entries
}
