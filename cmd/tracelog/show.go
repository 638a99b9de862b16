package main

import (
	"context"
	"os"

	"github.com/urfave/cli/v3"
)

// ShowCommand creates the show command
func ShowCommand() *cli.Command {
	return &cli.Command{
		Name:      "show",
		Usage:     "Print every record of a trail file",
		ArgsUsage: "[file]",
		Flags:     []cli.Flag{levelFlag, colorFlag},
		Action: func(ctx context.Context, c *cli.Command) error {
			entries, s, err := loadEntries(c)
			if err != nil {
				return err
			}
			threshold, err := minLevel(c, s)
			if err != nil {
				return err
			}
			return printEntries(os.Stdout, entries, printFormatter(s, c.Bool("color")), threshold)
		},
	}
}
