// Package handler provides the pieces that consume finished entries.
//
//   - Observer is the callback interface for subscribers (a UI, a test, a
//     forwarding bridge). ObserverFunc adapts plain functions.
//   - Registry keeps the subscriber list. Subscribe returns the function
//     that ends the subscription, so each subscriber owns its own
//     lifecycle.
//   - Console serializes console echo onto an io.Writer.
//   - Stats counts what the write lane did, for monitoring and tests.
//
// The filehandler subpackage holds the log file store and the sloghandler
// subpackage bridges log/slog into a tracelog Logger.
package handler
