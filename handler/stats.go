package handler

import (
	"sync/atomic"
)

// Stats tracks handler statistics
type Stats struct {
	// EnqueuedTotal counts lines accepted for persistence
	EnqueuedTotal uint64
	// WrittenTotal counts lines persisted successfully
	WrittenTotal uint64
	// DroppedTotal counts lines lost with a failed batch
	DroppedTotal uint64
	// FlushesTotal counts write calls issued, successful or not
	FlushesTotal uint64
	// FailedFlushes counts write calls that returned an error
	FailedFlushes uint64
}

// NewStats creates a new Stats instance
func NewStats() *Stats {
	return &Stats{}
}

// IncrementEnqueued atomically increments the enqueued counter
func (s *Stats) IncrementEnqueued() {
	atomic.AddUint64(&s.EnqueuedTotal, 1)
}

// RecordFlush records the outcome of one batch write of n lines
func (s *Stats) RecordFlush(n int, err error) {
	atomic.AddUint64(&s.FlushesTotal, 1)
	if err != nil {
		atomic.AddUint64(&s.FailedFlushes, 1)
		atomic.AddUint64(&s.DroppedTotal, uint64(n))
		return
	}
	atomic.AddUint64(&s.WrittenTotal, uint64(n))
}

// Reset resets all counters to zero
func (s *Stats) Reset() {
	atomic.StoreUint64(&s.EnqueuedTotal, 0)
	atomic.StoreUint64(&s.WrittenTotal, 0)
	atomic.StoreUint64(&s.DroppedTotal, 0)
	atomic.StoreUint64(&s.FlushesTotal, 0)
	atomic.StoreUint64(&s.FailedFlushes, 0)
}

// Snapshot is a point-in-time copy of Stats
type Snapshot struct {
	Enqueued      uint64
	Written       uint64
	Dropped       uint64
	Flushes       uint64
	FailedFlushes uint64
}

// Pending returns the number of lines neither written nor dropped yet
func (s Snapshot) Pending() uint64 {
	done := s.Written + s.Dropped
	if done >= s.Enqueued {
		return 0
	}
	return s.Enqueued - done
}

// Add returns the field-wise sum of s and o
func (s Snapshot) Add(o Snapshot) Snapshot {
	return Snapshot{
		Enqueued:      s.Enqueued + o.Enqueued,
		Written:       s.Written + o.Written,
		Dropped:       s.Dropped + o.Dropped,
		Flushes:       s.Flushes + o.Flushes,
		FailedFlushes: s.FailedFlushes + o.FailedFlushes,
	}
}

// GetSnapshot returns a snapshot of current statistics. Outcome counters
// are loaded before Enqueued, so a line is never counted as written or
// dropped without also being counted as enqueued.
func (s *Stats) GetSnapshot() Snapshot {
	written := atomic.LoadUint64(&s.WrittenTotal)
	dropped := atomic.LoadUint64(&s.DroppedTotal)
	flushes := atomic.LoadUint64(&s.FlushesTotal)
	failed := atomic.LoadUint64(&s.FailedFlushes)
	return Snapshot{
		Enqueued:      atomic.LoadUint64(&s.EnqueuedTotal),
		Written:       written,
		Dropped:       dropped,
		Flushes:       flushes,
		FailedFlushes: failed,
	}
}
