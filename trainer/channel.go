package trainer

import (
	"context"

	"github.com/streamlane/tbptt"
)

// Channel is a Consumer that forwards batches to an existing channel,
// for callers that want to bridge the pull-based iterator into their own
// goroutine structure. The caller owns the channel and is responsible
// for draining and closing it.
type Channel[V any] struct {
	// Output receives the batches. Consume blocks until the batch is
	// accepted or the context is canceled.
	Output chan<- *tbptt.Batch[V]
}

// Consume implements the Consumer interface.
func (c *Channel[V]) Consume(ctx context.Context, b *tbptt.Batch[V]) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case c.Output <- b:
		return nil
	}
}
