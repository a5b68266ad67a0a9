package handler

import (
	"sync/atomic"

	"github.com/philipp01105/apptemplate/core"
)

// Stats tracks handler statistics
type Stats struct {
	// processed counts written entries per level
	processed [core.CriticalLevel + 1]uint64
	// FilteredTotal counts entries below the handler's level
	FilteredTotal uint64
	// FailedTotal counts entries that could not be formatted or written
	FailedTotal uint64
}

// NewStats creates a new Stats instance
func NewStats() *Stats {
	return &Stats{}
}

// IncrementProcessed atomically increments the processed counter for a level
func (s *Stats) IncrementProcessed(level core.Level) {
	if level < 0 || int(level) >= len(s.processed) {
		level = core.CriticalLevel
	}
	atomic.AddUint64(&s.processed[level], 1)
}

// IncrementFiltered atomically increments the filtered counter
func (s *Stats) IncrementFiltered() {
	atomic.AddUint64(&s.FilteredTotal, 1)
}

// IncrementFailed atomically increments the failed counter
func (s *Stats) IncrementFailed() {
	atomic.AddUint64(&s.FailedTotal, 1)
}

// GetProcessed returns the processed count for a level
func (s *Stats) GetProcessed(level core.Level) uint64 {
	if level < 0 || int(level) >= len(s.processed) {
		return 0
	}
	return atomic.LoadUint64(&s.processed[level])
}

// GetTotalProcessed returns the processed count across all levels
func (s *Stats) GetTotalProcessed() uint64 {
	var total uint64
	for i := range s.processed {
		total += atomic.LoadUint64(&s.processed[i])
	}
	return total
}

// Reset resets all counters to zero
func (s *Stats) Reset() {
	for i := range s.processed {
		atomic.StoreUint64(&s.processed[i], 0)
	}
	atomic.StoreUint64(&s.FilteredTotal, 0)
	atomic.StoreUint64(&s.FailedTotal, 0)
}

// Snapshot returns a snapshot of current stats
type Snapshot struct {
	Processed      map[core.Level]uint64
	ProcessedTotal uint64
	FilteredTotal  uint64
	FailedTotal    uint64
}

// GetSnapshot returns a snapshot of current statistics
func (s *Stats) GetSnapshot() Snapshot {
	snap := Snapshot{
		Processed:     make(map[core.Level]uint64, len(s.processed)),
		FilteredTotal: atomic.LoadUint64(&s.FilteredTotal),
		FailedTotal:   atomic.LoadUint64(&s.FailedTotal),
	}
	for _, lvl := range core.Levels() {
		n := s.GetProcessed(lvl)
		snap.Processed[lvl] = n
		snap.ProcessedTotal += n
	}
	return snap
}
