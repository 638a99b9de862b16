package handler

import "sync/atomic"

// Stats tracks lane statistics
type Stats struct {
	// Added counts ordinary records
	Added uint64
	// Joined counts join calls
	Joined uint64
	// Echoed counts console writes
	Echoed uint64
	// Persisted counts successful file appends
	Persisted uint64
	// WriteErrors counts failed file appends
	WriteErrors uint64
	// Notified counts entries delivered to observers
	Notified uint64
	// Replayed counts records replayed from a log file
	Replayed uint64
}

// NewStats creates a new Stats instance
func NewStats() *Stats {
	return &Stats{}
}

// IncrementAdded atomically increments the added counter
func (s *Stats) IncrementAdded() {
	atomic.AddUint64(&s.Added, 1)
}

// IncrementJoined atomically increments the joined counter
func (s *Stats) IncrementJoined() {
	atomic.AddUint64(&s.Joined, 1)
}

// IncrementEchoed atomically increments the echoed counter
func (s *Stats) IncrementEchoed() {
	atomic.AddUint64(&s.Echoed, 1)
}

// IncrementPersisted atomically increments the persisted counter
func (s *Stats) IncrementPersisted() {
	atomic.AddUint64(&s.Persisted, 1)
}

// IncrementWriteErrors atomically increments the write error counter
func (s *Stats) IncrementWriteErrors() {
	atomic.AddUint64(&s.WriteErrors, 1)
}

// IncrementNotified atomically increments the notified counter
func (s *Stats) IncrementNotified() {
	atomic.AddUint64(&s.Notified, 1)
}

// AddReplayed atomically adds n to the replayed counter
func (s *Stats) AddReplayed(n int) {
	atomic.AddUint64(&s.Replayed, uint64(n))
}

// Reset resets all counters to zero
func (s *Stats) Reset() {
	atomic.StoreUint64(&s.Added, 0)
	atomic.StoreUint64(&s.Joined, 0)
	atomic.StoreUint64(&s.Echoed, 0)
	atomic.StoreUint64(&s.Persisted, 0)
	atomic.StoreUint64(&s.WriteErrors, 0)
	atomic.StoreUint64(&s.Notified, 0)
	atomic.StoreUint64(&s.Replayed, 0)
}

// Snapshot is a point-in-time copy of Stats
type Snapshot struct {
	Added       uint64
	Joined      uint64
	Echoed      uint64
	Persisted   uint64
	WriteErrors uint64
	Notified    uint64
	Replayed    uint64
}

// GetSnapshot returns a snapshot of current statistics
func (s *Stats) GetSnapshot() Snapshot {
	return Snapshot{
		Added:       atomic.LoadUint64(&s.Added),
		Joined:      atomic.LoadUint64(&s.Joined),
		Echoed:      atomic.LoadUint64(&s.Echoed),
		Persisted:   atomic.LoadUint64(&s.Persisted),
		WriteErrors: atomic.LoadUint64(&s.WriteErrors),
		Notified:    atomic.LoadUint64(&s.Notified),
		Replayed:    atomic.LoadUint64(&s.Replayed),
	}
}
