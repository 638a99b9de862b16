// Package benchmark compares tracelog with other Go loggers. It is a
// separate module so the compared loggers never become dependencies of
// tracelog itself.
//
//	cd benchmark && go test -bench . -benchmem
package benchmark
