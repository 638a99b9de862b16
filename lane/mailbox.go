package lane

import "sync"

// mailbox is an unbounded FIFO queue with a single consumer.
type mailbox[T any] struct {
	mu     sync.Mutex
	items  []T
	closed bool
	ready  chan struct{}
}

func newMailbox[T any]() *mailbox[T] {
	return &mailbox[T]{ready: make(chan struct{}, 1)}
}

// put queues v. It returns false once the mailbox is closed.
func (m *mailbox[T]) put(v T) bool {
	m.mu.Lock()
	if m.closed {
		m.mu.Unlock()
		return false
	}
	m.items = append(m.items, v)
	m.mu.Unlock()
	m.signal()
	return true
}

// take moves every queued item into buf, waiting until there is at least
// one. It returns false when the mailbox is closed and empty.
func (m *mailbox[T]) take(buf []T) ([]T, bool) {
	for {
		m.mu.Lock()
		if len(m.items) > 0 {
			buf = append(buf, m.items...)
			clear(m.items)
			m.items = m.items[:0]
			m.mu.Unlock()
			return buf, true
		}
		if m.closed {
			m.mu.Unlock()
			return buf, false
		}
		m.mu.Unlock()
		<-m.ready
	}
}

// close stops accepting items. Items already queued are still handed out.
func (m *mailbox[T]) close() bool {
	m.mu.Lock()
	if m.closed {
		m.mu.Unlock()
		return false
	}
	m.closed = true
	m.mu.Unlock()
	m.signal()
	return true
}

func (m *mailbox[T]) signal() {
	select {
	case m.ready <- struct{}{}:
	default:
	}
}
