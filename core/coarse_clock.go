package core

import (
	"sync"
	"sync/atomic"
	"time"
)

// Clock supplies entry timestamps.
type Clock interface {
	Now() time.Time
}

// SystemClock reads time.Now on every call.
type SystemClock struct{}

// Now returns the current time
func (SystemClock) Now() time.Time {
	return time.Now()
}

// CoarseClock caches time.Now() and refreshes it from a background
// goroutine. Resolution is the refresh interval; Stop ends the goroutine.
type CoarseClock struct {
	now      atomic.Pointer[time.Time]
	stop     chan struct{}
	stopOnce sync.Once
}

// NewCoarseClock starts a clock refreshed every interval (500µs when
// interval is not positive).
func NewCoarseClock(interval time.Duration) *CoarseClock {
	if interval <= 0 {
		interval = 500 * time.Microsecond
	}
	c := &CoarseClock{stop: make(chan struct{})}
	t := time.Now()
	c.now.Store(&t)
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				t := time.Now()
				c.now.Store(&t)
			case <-c.stop:
				return
			}
		}
	}()
	return c
}

// Now returns the most recently cached time.
func (c *CoarseClock) Now() time.Time {
	return *c.now.Load()
}

// Stop ends the refresh goroutine. It is safe to call more than once.
func (c *CoarseClock) Stop() {
	c.stopOnce.Do(func() { close(c.stop) })
}
