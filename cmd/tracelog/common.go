package main

import (
	"io"

	"github.com/pkg/errors"
	"github.com/urfave/cli/v3"

	"github.com/Philipp01105/tracelog/config"
	"github.com/Philipp01105/tracelog/core"
	"github.com/Philipp01105/tracelog/formatter"
	"github.com/Philipp01105/tracelog/handler/filehandler"
)

// loadConfig reads the config file and the environment.
func loadConfig(c *cli.Command) (*config.Config, config.Settings, error) {
	cfg, err := config.Load(c.String("config"))
	if err != nil {
		return nil, config.Settings{}, err
	}
	if err := config.LoadEnv(cfg, c.StringSlice("env")...); err != nil {
		return nil, config.Settings{}, err
	}
	s, err := cfg.Resolve()
	if err != nil {
		return nil, config.Settings{}, errors.Wrap(err, "invalid configuration")
	}
	return cfg, s, nil
}

// trailFile returns the file named on the command line, or the configured
// one.
func trailFile(c *cli.Command, cfg *config.Config) (string, error) {
	if path := c.Args().First(); path != "" {
		return path, nil
	}
	if cfg.File != "" {
		return cfg.File, nil
	}
	return "", errors.New("no log file given and none configured")
}

// loadEntries decodes every record of a trail file.
func loadEntries(c *cli.Command) ([]core.Entry, config.Settings, error) {
	cfg, s, err := loadConfig(c)
	if err != nil {
		return nil, s, err
	}
	path, err := trailFile(c, cfg)
	if err != nil {
		return nil, s, err
	}
	entries, err := filehandler.New(path).Load(formatter.NewWriteFormatter(s.WriteFormat()))
	if err != nil {
		return nil, s, err
	}
	return entries, s, nil
}

// printEntries writes one console line per entry at or above threshold.
func printEntries(w io.Writer, entries []core.Entry, f formatter.WriterFormatter, threshold core.Level) error {
	return writeEntries(w, entries, f, threshold, "\n")
}

// writeEntries renders every entry at or above threshold with f, following
// each one with term.
func writeEntries(w io.Writer, entries []core.Entry, f formatter.WriterFormatter, threshold core.Level, term string) error {
	for _, e := range entries {
		if e.Level.Rank() < threshold.Rank() {
			continue
		}
		if err := f.FormatTo(e, w); err != nil {
			return err
		}
		if term == "" {
			continue
		}
		if _, err := io.WriteString(w, term); err != nil {
			return err
		}
	}
	return nil
}

// minLevel parses the --level flag, falling back to the configured
// minimum print level.
func minLevel(c *cli.Command, s config.Settings) (core.Level, error) {
	name := c.String("level")
	if name == "" {
		return s.MinPrint, nil
	}
	l, ok := core.ParseLevel(name)
	if !ok {
		return core.NoneLevel, errors.Errorf("unknown level %q", name)
	}
	return l, nil
}

// printFormatter builds the console formatter, styled when color is set.
func printFormatter(s config.Settings, color bool) *formatter.PrintFormatter {
	pf := formatter.NewPrintFormatter(s.PrintFormat())
	if color {
		pf = pf.WithStyle(styleField)
	}
	return pf
}

var levelFlag = &cli.StringFlag{
	Name:  "level",
	Usage: "Only print records at or above this level",
}

var colorFlag = &cli.BoolFlag{
	Name:  "color",
	Usage: "Colorize fields",
	Value: false,
}
