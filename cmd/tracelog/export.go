package main

import (
	"context"
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/urfave/cli/v3"

	"github.com/Philipp01105/tracelog/core"
	"github.com/Philipp01105/tracelog/formatter"
)

// ExportCommand creates the export command
func ExportCommand() *cli.Command {
	return &cli.Command{
		Name:      "export",
		Usage:     "Print the records of a trail file as JSON lines",
		ArgsUsage: "[file]",
		Flags: []cli.Flag{
			levelFlag,
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Usage:   "Write to this file instead of stdout",
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			entries, s, err := loadEntries(c)
			if err != nil {
				return err
			}
			threshold, err := minLevel(c, s)
			if err != nil {
				return err
			}

			var w io.Writer = os.Stdout
			if out := c.String("output"); out != "" {
				f, err := os.Create(out)
				if err != nil {
					return errors.Wrap(err, "creating output")
				}
				defer f.Close()
				w = f
			}
			return exportEntries(w, entries, threshold)
		},
	}
}

// exportEntries writes one JSON object per entry at or above threshold.
func exportEntries(w io.Writer, entries []core.Entry, threshold core.Level) error {
	return writeEntries(w, entries, formatter.NewJSONFormatter(""), threshold, "")
}
