package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/fsnotify/fsnotify"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v3"

	"github.com/Philipp01105/tracelog/core"
	"github.com/Philipp01105/tracelog/formatter"
	"github.com/Philipp01105/tracelog/handler/filehandler"
)

// FollowCommand creates the follow command
func FollowCommand() *cli.Command {
	return &cli.Command{
		Name:      "follow",
		Usage:     "Print the records of a trail file as they are written",
		ArgsUsage: "[file]",
		Flags:     []cli.Flag{levelFlag, colorFlag},
		Action: func(ctx context.Context, c *cli.Command) error {
			cfg, s, err := loadConfig(c)
			if err != nil {
				return err
			}
			path, err := trailFile(c, cfg)
			if err != nil {
				return err
			}
			threshold, err := minLevel(c, s)
			if err != nil {
				return err
			}

			t := &tail{
				store: filehandler.New(path),
				write: formatter.NewWriteFormatter(s.WriteFormat()),
				print: printFormatter(s, c.Bool("color")),
				level: threshold,
				out:   os.Stdout,
			}
			return t.follow(ctx)
		},
	}
}

// tail prints the records of a file that it has not printed yet.
type tail struct {
	store *filehandler.Store
	write *formatter.WriteFormatter
	print *formatter.PrintFormatter
	level core.Level
	out   io.Writer
	seen  int
}

// poll decodes the file again and prints the records after the ones
// already seen. A file that shrank was erased and is printed from the
// start.
func (t *tail) poll() error {
	content, err := t.store.ReadAll()
	if os.IsNotExist(errors.Cause(err)) {
		return nil
	}
	if err != nil {
		return err
	}

	entries := filehandler.Decode(content, t.write)
	if len(entries) < t.seen {
		fmt.Fprintln(t.out, "-- erased --")
		t.seen = 0
	}
	if err := printEntries(t.out, entries[t.seen:], t.print, t.level); err != nil {
		return err
	}
	t.seen = len(entries)
	return nil
}

// follow prints the current records, then every change until ctx ends.
func (t *tail) follow(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return errors.Wrap(err, "creating file watcher")
	}
	defer watcher.Close()

	if err := t.poll(); err != nil {
		return err
	}
	if err := watcher.Add(t.store.Path()); err != nil {
		return errors.Wrapf(err, "watching %s", t.store.Path())
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) {
				if err := t.poll(); err != nil {
					return err
				}
			}
			if event.Has(fsnotify.Remove) || event.Has(fsnotify.Rename) {
				fmt.Fprintf(t.out, "-- %s removed --\n", t.store.Path())
				return nil
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			return errors.Wrapf(err, "watching %s", t.store.Path())
		}
	}
}
