package handler

import "github.com/Philipp01105/tracelog/core"

// Observer receives every completed entry: ordinary records, joined text
// and records replayed from a log file.
type Observer interface {
	// Observe is called once per entry, in lane order, from the
	// notification goroutine
	Observe(entry core.Entry)
}

// ObserverFunc adapts a function to the Observer interface.
type ObserverFunc func(entry core.Entry)

// Observe calls f(entry).
func (f ObserverFunc) Observe(entry core.Entry) {
	f(entry)
}

// Fanout is implemented by observers that forward each entry to other
// observers. The lane calls the observers behind a Fanout one by one, so a
// failing observer does not hide the entry from the rest.
type Fanout interface {
	Each(fn func(Observer))
}
