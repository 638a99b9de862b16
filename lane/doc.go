// Package lane provides the single ordered worker behind a tracelog Logger.
//
// A Lane owns the serial counter, the indentation cursor and every write to
// the log file. Callers submit work with Add, Append, Reload and Erase; each
// submission is queued in an unbounded FIFO mailbox and processed by one
// goroutine strictly in arrival order. Submitting never blocks and never
// drops work.
//
// Completed entries are handed to a second goroutine that delivers them to
// the observer in the same order. A slow observer only grows the
// notification queue; the lane itself keeps running. When the observer is a
// handler.Fanout, each observer behind it is called on its own, and a panic
// in one is logged without affecting the others.
//
//	l := lane.New(lane.Config{Store: store, Observer: registry})
//	l.Add(lane.Record{Message: "started", Level: core.InfoLevel})
//	l.Sync()
//	l.Close()
package lane
