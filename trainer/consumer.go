package trainer

import (
	"context"

	"github.com/streamlane/tbptt"
)

// Consumer consumes batches in emission order. Implementations may
// mutate per-lane state of their own but must not retain the Batch
// across epoch boundaries.
type Consumer[V any] interface {
	// Consume handles one batch. Returning a non-nil error aborts the
	// epoch being fed.
	//
	// Consume should respect context cancellation for long-running work.
	Consume(ctx context.Context, b *tbptt.Batch[V]) error
}

// Func adapts a plain function to the Consumer interface.
type Func[V any] func(ctx context.Context, b *tbptt.Batch[V]) error

// Consume implements the Consumer interface.
func (f Func[V]) Consume(ctx context.Context, b *tbptt.Batch[V]) error {
	return f(ctx, b)
}
