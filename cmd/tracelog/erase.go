package main

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/Philipp01105/tracelog/handler/filehandler"
)

// EraseCommand creates the erase command
func EraseCommand() *cli.Command {
	return &cli.Command{
		Name:      "erase",
		Usage:     "Truncate a trail file",
		ArgsUsage: "[file]",
		Action: func(ctx context.Context, c *cli.Command) error {
			cfg, _, err := loadConfig(c)
			if err != nil {
				return err
			}
			path, err := trailFile(c, cfg)
			if err != nil {
				return err
			}
			if err := filehandler.New(path).Erase(); err != nil {
				return err
			}
			fmt.Printf("Erased %s\n", path)
			return nil
		},
	}
}
