package tbptt

import (
	"sync"
	"sync/atomic"
	"time"
)

// StatsCollector receives metrics about batch emission. Implementations
// can keep them in memory or forward them to a monitoring system. The
// collector is optional; if none is provided nothing is collected.
type StatsCollector interface {
	// RecordEpochStart is called when Reset begins an epoch.
	RecordEpochStart(epoch int)

	// RecordEpochComplete is called once per epoch, when the corpus and
	// every lane have been drained.
	RecordEpochComplete(batches int, duration time.Duration)

	// RecordBatch is called for every emitted batch with the number of
	// active lanes, the number of real steps, and the number of padded
	// positions across all lanes.
	RecordBatch(activeLanes, realSteps, paddedSteps int)

	// RecordDocumentStarted is called when a document is assigned to a
	// lane.
	RecordDocumentStarted()

	// RecordLaneRetired is called when a lane retires for the remainder
	// of an epoch.
	RecordLaneRetired()

	// GetStats returns a snapshot of the current statistics.
	GetStats() Stats
}

// Stats holds aggregated statistics about batch emission. The padding
// ratio is the usual signal for choosing between shuffled and
// length-sorted document order.
type Stats struct {
	// EpochsStarted is the number of epochs begun.
	EpochsStarted uint64

	// EpochsCompleted is the number of epochs drained to completion.
	EpochsCompleted uint64

	// Batches is the total number of batches emitted.
	Batches uint64

	// Documents is the total number of documents assigned to lanes.
	Documents uint64

	// LanesRetired is the total number of lane retirements.
	LanesRetired uint64

	// RealSteps is the total number of real (unmasked) step positions
	// emitted.
	RealSteps uint64

	// PaddedSteps is the total number of padded step positions emitted.
	PaddedSteps uint64

	// TotalEpochTime is the cumulative wall time of completed epochs.
	TotalEpochTime time.Duration

	// StartTime is when collection began.
	StartTime time.Time

	// LastUpdateTime is when statistics were last updated.
	LastUpdateTime time.Time
}

// PaddingRatio returns the fraction of emitted step positions that were
// padding. Returns 0 if nothing has been emitted.
func (s *Stats) PaddingRatio() float64 {
	total := s.RealSteps + s.PaddedSteps
	if total == 0 {
		return 0
	}
	return float64(s.PaddedSteps) / float64(total)
}

// AverageEpochTime returns the average wall time of completed epochs.
// Returns 0 if no epoch has completed.
func (s *Stats) AverageEpochTime() time.Duration {
	if s.EpochsCompleted == 0 {
		return 0
	}
	return s.TotalEpochTime / time.Duration(s.EpochsCompleted)
}

// NoOpStatsCollector discards all metrics. It is the default when no
// collector is provided.
type NoOpStatsCollector struct{}

// RecordEpochStart implements the StatsCollector interface.
func (n *NoOpStatsCollector) RecordEpochStart(epoch int) {}

// RecordEpochComplete implements the StatsCollector interface.
func (n *NoOpStatsCollector) RecordEpochComplete(batches int, duration time.Duration) {}

// RecordBatch implements the StatsCollector interface.
func (n *NoOpStatsCollector) RecordBatch(activeLanes, realSteps, paddedSteps int) {}

// RecordDocumentStarted implements the StatsCollector interface.
func (n *NoOpStatsCollector) RecordDocumentStarted() {}

// RecordLaneRetired implements the StatsCollector interface.
func (n *NoOpStatsCollector) RecordLaneRetired() {}

// GetStats implements the StatsCollector interface.
func (n *NoOpStatsCollector) GetStats() Stats {
	return Stats{}
}

// BasicStatsCollector is a thread-safe in-memory StatsCollector using
// atomic counters for the hot-path updates.
type BasicStatsCollector struct {
	mu    sync.RWMutex
	stats Stats

	epochsStarted   uint64
	epochsCompleted uint64
	batches         uint64
	documents       uint64
	lanesRetired    uint64
	realSteps       uint64
	paddedSteps     uint64
}

// NewBasicStatsCollector creates a BasicStatsCollector.
func NewBasicStatsCollector() *BasicStatsCollector {
	now := time.Now()
	return &BasicStatsCollector{
		stats: Stats{
			StartTime:      now,
			LastUpdateTime: now,
		},
	}
}

// RecordEpochStart implements the StatsCollector interface.
func (b *BasicStatsCollector) RecordEpochStart(epoch int) {
	atomic.AddUint64(&b.epochsStarted, 1)
	b.touch()
}

// RecordEpochComplete implements the StatsCollector interface.
func (b *BasicStatsCollector) RecordEpochComplete(batches int, duration time.Duration) {
	atomic.AddUint64(&b.epochsCompleted, 1)

	b.mu.Lock()
	defer b.mu.Unlock()
	b.stats.TotalEpochTime += duration
	b.stats.LastUpdateTime = time.Now()
}

// RecordBatch implements the StatsCollector interface.
func (b *BasicStatsCollector) RecordBatch(activeLanes, realSteps, paddedSteps int) {
	atomic.AddUint64(&b.batches, 1)
	atomic.AddUint64(&b.realSteps, uint64(realSteps))
	atomic.AddUint64(&b.paddedSteps, uint64(paddedSteps))
	b.touch()
}

// RecordDocumentStarted implements the StatsCollector interface.
func (b *BasicStatsCollector) RecordDocumentStarted() {
	atomic.AddUint64(&b.documents, 1)
}

// RecordLaneRetired implements the StatsCollector interface.
func (b *BasicStatsCollector) RecordLaneRetired() {
	atomic.AddUint64(&b.lanesRetired, 1)
}

func (b *BasicStatsCollector) touch() {
	b.mu.Lock()
	b.stats.LastUpdateTime = time.Now()
	b.mu.Unlock()
}

// GetStats implements the StatsCollector interface. It returns a snapshot
// of the current statistics.
func (b *BasicStatsCollector) GetStats() Stats {
	b.mu.RLock()
	defer b.mu.RUnlock()

	stats := b.stats
	stats.EpochsStarted = atomic.LoadUint64(&b.epochsStarted)
	stats.EpochsCompleted = atomic.LoadUint64(&b.epochsCompleted)
	stats.Batches = atomic.LoadUint64(&b.batches)
	stats.Documents = atomic.LoadUint64(&b.documents)
	stats.LanesRetired = atomic.LoadUint64(&b.lanesRetired)
	stats.RealSteps = atomic.LoadUint64(&b.realSteps)
	stats.PaddedSteps = atomic.LoadUint64(&b.paddedSteps)
	return stats
}
