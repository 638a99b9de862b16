package handler

import (
	"sync"

	"github.com/Philipp01105/tracelog/core"
)

type subscription struct {
	id       uint64
	observer Observer
}

// Registry fans an entry out to every subscribed observer, in
// subscription order.
type Registry struct {
	mu     sync.RWMutex
	nextID uint64
	subs   []subscription
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{}
}

// Subscribe adds an observer and returns the function that removes it.
// The returned function may be called more than once.
func (r *Registry) Subscribe(o Observer) (unsubscribe func()) {
	if o == nil {
		return func() {}
	}

	r.mu.Lock()
	r.nextID++
	id := r.nextID
	// Copy on write so Observe can iterate a snapshot without holding the lock
	subs := make([]subscription, len(r.subs), len(r.subs)+1)
	copy(subs, r.subs)
	r.subs = append(subs, subscription{id: id, observer: o})
	r.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() { r.remove(id) })
	}
}

func (r *Registry) remove(id uint64) {
	r.mu.Lock()
	defer r.mu.Unlock()

	subs := make([]subscription, 0, len(r.subs))
	for _, s := range r.subs {
		if s.id != id {
			subs = append(subs, s)
		}
	}
	r.subs = subs
}

// Len returns the number of subscribed observers
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.subs)
}

// Each calls fn for every observer subscribed at the time of the call, in
// subscription order. The registry is not locked while fn runs.
func (r *Registry) Each(fn func(Observer)) {
	r.mu.RLock()
	subs := r.subs
	r.mu.RUnlock()

	for _, s := range subs {
		fn(s.observer)
	}
}

// Observe delivers the entry to every observer, so a Registry can itself be
// subscribed to another one.
func (r *Registry) Observe(entry core.Entry) {
	r.Each(func(o Observer) { o.Observe(entry) })
}
