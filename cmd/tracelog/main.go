// Command tracelog inspects and writes tracelog trail files.
//
//	tracelog init                      write a commented config file
//	tracelog show app.trail --color    print every record
//	tracelog follow app.trail          print records as they are written
//	tracelog export app.trail          print records as JSON lines
//	tracelog erase app.trail           truncate the file
//	tracelog emit --level done built   append a record from a shell script
package main

import (
	"context"
	"log"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/Philipp01105/tracelog/config"
)

func main() {
	app := &cli.Command{
		Name:  "tracelog",
		Usage: "Inspect and write tracelog diagnostic trails",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "config",
				Usage: "Configuration file path",
				Value: config.DefaultConfigPath(),
			},
			&cli.StringSliceFlag{
				Name:  "env",
				Usage: ".env files applied before TRACELOG_* variables",
				Value: []string{".env"},
			},
		},
		Commands: []*cli.Command{
			InitCommand(),
			ShowCommand(),
			FollowCommand(),
			ExportCommand(),
			EraseCommand(),
			EmitCommand(),
		},
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}
