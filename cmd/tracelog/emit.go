package main

import (
	"context"
	"strings"

	"github.com/pkg/errors"
	"github.com/urfave/cli/v3"

	"github.com/Philipp01105/tracelog/core"
	"github.com/Philipp01105/tracelog/logger"
)

// EmitCommand creates the emit command
func EmitCommand() *cli.Command {
	return &cli.Command{
		Name:      "emit",
		Usage:     "Append one record to the trail file",
		ArgsUsage: "message...",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "file",
				Usage: "Trail file (default: the configured one)",
			},
			&cli.StringFlag{
				Name:  "level",
				Usage: "Record level",
				Value: core.DefaultLevel.String(),
			},
			&cli.StringFlag{
				Name:  "group",
				Usage: "Record group",
			},
			&cli.StringFlag{
				Name:  "indent",
				Usage: "Indent directive: none, increase, decrease or reset",
				Value: core.IndentNone.String(),
			},
			&cli.BoolFlag{
				Name:  "join",
				Usage: "Append the text to the previous record",
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			cfg, s, err := loadConfig(c)
			if err != nil {
				return err
			}
			if f := c.String("file"); f != "" {
				s.File = f
			} else if cfg.File == "" {
				return errors.New("no log file given and none configured")
			}

			level, ok := core.ParseLevel(c.String("level"))
			if !ok {
				return errors.Errorf("unknown level %q", c.String("level"))
			}
			indent, err := parseIndent(c.String("indent"))
			if err != nil {
				return err
			}

			log := logger.NewBuilder().WithSettings(s).Build()
			call := log.Group(c.String("group")).Level(level).Indent(indent)
			if c.Bool("join") {
				call = call.Join()
			}
			args := c.Args().Slice()
			items := make([]any, len(args))
			for i, a := range args {
				items[i] = a
			}
			call.Log(items...)
			return log.Close()
		},
	}
}

func parseIndent(s string) (core.IndentDirective, error) {
	for _, d := range []core.IndentDirective{core.IndentNone, core.IndentIncrease, core.IndentDecrease, core.IndentReset} {
		if strings.EqualFold(s, d.String()) {
			return d, nil
		}
	}
	return core.IndentNone, errors.Errorf("unknown indent directive %q", s)
}
