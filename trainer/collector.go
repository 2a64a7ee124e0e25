package trainer

import (
	"context"
	"sync"

	"github.com/streamlane/tbptt"
)

// Collector is a Consumer that collects the batches it receives. It can
// be used as the terminal consumer in tests or for small corpora that fit
// in memory.
//
// All methods are safe for concurrent use. Batches(false) takes a read
// lock so concurrent readers do not block each other; Batches(true) is an
// atomic get-and-reset.
//
// Collector stores the *tbptt.Batch pointers it is given without copying
// the underlying grids.
type Collector[V any] struct {
	// MaxBatches limits how many batches are kept (0 for unlimited).
	// Once the limit is reached further batches are dropped but Consume
	// still succeeds.
	MaxBatches int

	mu      sync.RWMutex
	batches []*tbptt.Batch[V]
}

// Consume implements the Consumer interface by collecting the batch.
func (c *Collector[V]) Consume(_ context.Context, b *tbptt.Batch[V]) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.MaxBatches > 0 && len(c.batches) >= c.MaxBatches {
		return nil
	}
	c.batches = append(c.batches, b)
	return nil
}

// Batches returns the collected batches and optionally resets the
// collection in the same critical section.
func (c *Collector[V]) Batches(reset bool) []*tbptt.Batch[V] {
	if reset {
		c.mu.Lock()
		defer c.mu.Unlock()
	} else {
		c.mu.RLock()
		defer c.mu.RUnlock()
	}

	out := make([]*tbptt.Batch[V], len(c.batches))
	copy(out, c.batches)

	if reset {
		c.batches = nil
	}
	return out
}

// Count returns the number of batches collected so far.
func (c *Collector[V]) Count() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.batches)
}

// Reset clears the collection.
func (c *Collector[V]) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.batches = nil
}
