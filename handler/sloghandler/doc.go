// Package sloghandler provides an adapter from a tracelog Logger to
// log/slog.Handler, so code written against the standard library's
// structured logging feeds the same diagnostic trail.
//
//	log := logger.NewBuilder().Build()
//	slog.SetDefault(slog.New(sloghandler.New(log, sloghandler.Options{})))
//
// The slog message and its attributes become the items of one record,
// attributes rendered as key=value. The record keeps the slog call site
// and timestamp.
package sloghandler
