package config

import (
	_ "embed"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pelletier/go-toml/v2"
	"github.com/pkg/errors"
	"go.uber.org/multierr"

	"github.com/Philipp01105/tracelog/core"
	"github.com/Philipp01105/tracelog/formatter"
)

//go:embed config.toml.sample
var configTemplate string

// Config is the file representation of the settings.
type Config struct {
	File        string        `toml:"file"`
	Persist     bool          `toml:"persist"`
	CoarseClock bool          `toml:"coarse_clock"`
	Print       PrintConfig   `toml:"print"`
	Write       WriteConfig   `toml:"write"`
	Symbols     SymbolsConfig `toml:"symbols"`
}

// PrintConfig configures the console rendering
type PrintConfig struct {
	Order    []string `toml:"order"`
	Date     string   `toml:"date"`
	MinLevel string   `toml:"min_level"`
}

// WriteConfig configures the persisted rendering
type WriteConfig struct {
	Order []string `toml:"order"`
	Date  string   `toml:"date"`
}

// SymbolsConfig mirrors formatter.Symbols. Empty values keep the default.
type SymbolsConfig struct {
	Null            string `toml:"null,omitempty"`
	Dash            string `toml:"dash,omitempty"`
	SerialOpen      string `toml:"serial_open,omitempty"`
	SerialClose     string `toml:"serial_close,omitempty"`
	SenderOpen      string `toml:"sender_open,omitempty"`
	SenderClose     string `toml:"sender_close,omitempty"`
	IndentUnit      string `toml:"indent_unit,omitempty"`
	FieldSeparator  string `toml:"field_separator,omitempty"`
	RecordSeparator string `toml:"record_separator,omitempty"`
}

// Settings are validated, typed settings.
type Settings struct {
	File        string
	Persist     bool
	CoarseClock bool
	PrintOrder  core.OrderSpec
	WriteOrder  core.OrderSpec
	PrintDate   string
	WriteDate   string
	MinPrint    core.Level
	Symbols     formatter.Symbols
}

// PrintFormat returns the formatter configuration of the console rendering
func (s Settings) PrintFormat() formatter.Config {
	sym := s.Symbols
	return formatter.Config{Order: s.PrintOrder, DatePattern: s.PrintDate, Symbols: &sym}
}

// WriteFormat returns the formatter configuration of the persisted rendering
func (s Settings) WriteFormat() formatter.Config {
	sym := s.Symbols
	return formatter.Config{Order: s.WriteOrder, DatePattern: s.WriteDate, Symbols: &sym}
}

// Default returns the built-in configuration. File is left empty, which
// resolves to a new per-run file.
func Default() *Config {
	order := core.DefaultOrder().String()
	return &Config{
		Persist: true,
		Print: PrintConfig{
			Order:    strings.Split(order, ","),
			Date:     formatter.DefaultPrintPattern,
			MinLevel: core.NoneLevel.String(),
		},
		Write: WriteConfig{
			Order: strings.Split(order, ","),
			Date:  formatter.DefaultWritePattern,
		},
	}
}

// Load reads a TOML file on top of the defaults. A missing file yields
// the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "reading config file")
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, errors.Wrapf(err, "parsing config file %s", path)
	}
	return cfg, nil
}

// Save writes the configuration as TOML.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return errors.Wrap(err, "creating config directory")
	}

	data, err := toml.Marshal(c)
	if err != nil {
		return errors.Wrap(err, "marshaling config")
	}
	return errors.Wrap(os.WriteFile(path, data, 0644), "writing config file")
}

// Template returns the commented sample configuration.
func Template() string {
	return configTemplate
}

// SaveTemplate writes the commented sample configuration to path.
func SaveTemplate(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return errors.Wrap(err, "creating config directory")
	}
	return errors.Wrap(os.WriteFile(path, []byte(configTemplate), 0644), "writing config template")
}

// Resolve validates the configuration. All problems are returned together.
func (c *Config) Resolve() (Settings, error) {
	var errs error

	s := Settings{
		File:        c.File,
		Persist:     c.Persist,
		CoarseClock: c.CoarseClock,
		PrintDate:   c.Print.Date,
		WriteDate:   c.Write.Date,
		Symbols:     c.Symbols.resolve(),
	}

	var err error
	if s.PrintOrder, err = core.ParseOrder(c.Print.Order); err != nil {
		errs = multierr.Append(errs, errors.Wrap(err, "print.order"))
	}
	if s.WriteOrder, err = core.ParseOrder(c.Write.Order); err != nil {
		errs = multierr.Append(errs, errors.Wrap(err, "write.order"))
	}
	s.PrintOrder = s.PrintOrder.Resolve()
	s.WriteOrder = s.WriteOrder.Resolve()

	s.MinPrint = core.NoneLevel
	if c.Print.MinLevel != "" {
		level, ok := core.ParseLevel(c.Print.MinLevel)
		if ok {
			s.MinPrint = level
		} else {
			errs = multierr.Append(errs, errors.Errorf("print.min_level: unknown level %q", c.Print.MinLevel))
		}
	}

	sym := s.Symbols
	if sym.FieldSeparator == sym.RecordSeparator {
		errs = multierr.Append(errs, errors.New("symbols: field and record separators must differ"))
	} else if strings.Contains(sym.RecordSeparator, sym.FieldSeparator) {
		errs = multierr.Append(errs, errors.New("symbols: record separator must not contain the field separator"))
	}

	if s.File == "" {
		s.File = DefaultFile()
	}
	return s, errs
}

func (s SymbolsConfig) resolve() formatter.Symbols {
	sym := formatter.DefaultSymbols()
	set := func(dst *string, v string) {
		if v != "" {
			*dst = v
		}
	}
	set(&sym.Null, s.Null)
	set(&sym.Dash, s.Dash)
	set(&sym.SerialOpen, s.SerialOpen)
	set(&sym.SerialClose, s.SerialClose)
	set(&sym.SenderOpen, s.SenderOpen)
	set(&sym.SenderClose, s.SenderClose)
	set(&sym.IndentUnit, s.IndentUnit)
	set(&sym.FieldSeparator, s.FieldSeparator)
	set(&sym.RecordSeparator, s.RecordSeparator)
	return sym
}

// DefaultDir returns the directory per-run log files are created in.
func DefaultDir() string {
	dir, err := os.UserCacheDir()
	if err != nil || dir == "" {
		dir = os.TempDir()
	}
	return filepath.Join(dir, "tracelog")
}

// DefaultFile returns a new per-run log file path such as
// <cache>/tracelog/20260115-120000-1b4e28ba.log.
func DefaultFile() string {
	return defaultFileAt(DefaultDir(), time.Now())
}

func defaultFileAt(dir string, t time.Time) string {
	id := uuid.New().String()[:8]
	return filepath.Join(dir, t.Format("20060102-150405")+"-"+id+".log")
}

// DefaultConfigPath returns <user config dir>/tracelog/config.toml.
func DefaultConfigPath() string {
	dir, err := os.UserConfigDir()
	if err != nil || dir == "" {
		return "tracelog.toml"
	}
	return filepath.Join(dir, "tracelog", "config.toml")
}
