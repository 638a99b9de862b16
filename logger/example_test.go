package logger_test

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/Philipp01105/tracelog/core"
	"github.com/Philipp01105/tracelog/logger"
)

// Use the package-level default logger for quick, no-setup logging.
func Example() {
	logger.Info("Application started")
	logger.Group("auth").Done("user", logger.String("alice"), "logged in")
	logger.Sync()
}

// Create a Logger that persists its trail to a file.
func ExampleNewBuilder() {
	dir, _ := os.MkdirTemp("", "tracelog")
	defer os.RemoveAll(dir)

	log := logger.NewBuilder().
		WithFile(filepath.Join(dir, "app.trail")).
		WithConsole(nil).
		Build()

	log.Info("ready on port", logger.Int(8080))
	log.Group("db").Indent(logger.IndentIncrease).Log("migrating")
	log.Group("db").Log("applying", 3, "files")
	log.Group("db").Indent(logger.IndentDecrease).Done("migrated")

	entries := log.Reload("", false)
	log.Close()

	for _, e := range entries {
		fmt.Printf("%d %d %s|\n", e.Serial, e.Indent, e.Message)
	}
	// Output:
	// 1 0 ready on port 8080 |
	// 2 0 migrating |
	// 3 1 applying 3 files |
	// 4 0 migrated |
}

// Join writes progress onto the current line.
func ExampleCall_Join() {
	log := logger.NewBuilder().
		WithPersistence(false).
		WithConsole(os.Stdout).
		WithPrintOrder(core.FieldMessage).
		Build()

	log.Separator("").Log("loading")
	for i := 0; i < 3; i++ {
		log.Join().Separator("").Log(".")
	}
	log.Join().Separator("").Log("done")
	log.Close()
	// Output: loading...done
}
