// Package logger is the public API of tracelog. Most users only need to
// import this package.
//
// A Logger is built once with the Builder and its configuration never
// changes afterwards. Every call is stamped with its source file, line and
// sender, then handed to the Logger's write lane, which numbers it,
// renders it for the console, appends it to the log file and notifies the
// observers, strictly in call order:
//
//	log := logger.NewBuilder().
//	    WithFile("/tmp/app.trail").
//	    WithMinPrintLevel(logger.WarningLevel).
//	    Build()
//	defer log.Close()
//
//	log.Info("listening on", 8080)
//	log.Group("db").Indent(logger.IndentIncrease).Log("migrating")
//	log.Group("db").Indent(logger.IndentDecrease).Done("migrated")
//
// Logging never blocks and never fails. Problems with the log file are
// reported through the diagnostics zap logger and disable persistence
// when the file cannot be created at all.
//
// Options of a call are set on a Call value obtained from Group, Level,
// Indent, Join or Separator. Join appends raw text to the previous record,
// which is how progress output is written on one line:
//
//	log.Log("loading")
//	for range files {
//	    log.Join().Log(".")
//	}
//
// The package also has a default, console-only Logger used by the
// package-level functions Info, Error and friends.
package logger
