package tbptt

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// prefetched carries one emission, batch or error, in order.
type prefetched[V any] struct {
	batch *Batch[V]
	err   error
}

// Prefetcher drives one epoch of an Iterator on a background goroutine,
// staying exactly one batch ahead of the consumer. Emission order is
// preserved and all lane-state mutation stays confined to the worker, so
// prefetching is a pure performance overlap with no semantic difference
// from calling Iterator.Next directly.
//
// A Prefetcher covers a single epoch. Create a new one (or go back to the
// plain Iterator) for the next epoch.
type Prefetcher[V any] struct {
	out    chan prefetched[V]
	cancel context.CancelFunc
	group  *errgroup.Group
}

// NewPrefetcher begins a new epoch on it and starts the prefetch worker.
// The context cancels prefetching; the consumer simply stops pulling and
// calls Stop.
func NewPrefetcher[V any](ctx context.Context, it *Iterator[V]) *Prefetcher[V] {
	ctx, cancel := context.WithCancel(ctx)
	group, ctx := errgroup.WithContext(ctx)

	p := &Prefetcher[V]{
		// Capacity 1 keeps the worker one batch ahead.
		out:    make(chan prefetched[V], 1),
		cancel: cancel,
		group:  group,
	}

	it.Reset()
	group.Go(func() error {
		defer close(p.out)
		for {
			b, err := it.Next()
			if err == ErrEpochDone {
				return nil
			}
			select {
			case p.out <- prefetched[V]{batch: b, err: err}:
				if err != nil {
					return err
				}
			case <-ctx.Done():
				return ctx.Err()
			}
		}
	})

	return p
}

// Next returns the next batch in emission order. It returns ErrEpochDone
// once the epoch is drained, or the error that aborted the epoch.
func (p *Prefetcher[V]) Next() (*Batch[V], error) {
	v, ok := <-p.out
	if !ok {
		return nil, ErrEpochDone
	}
	return v.batch, v.err
}

// Stop cancels the worker and waits for it to exit. It returns the error
// that aborted the epoch, if any; cancellation itself is not reported as
// an error.
func (p *Prefetcher[V]) Stop() error {
	p.cancel()
	err := p.group.Wait()
	if err == context.Canceled {
		return nil
	}
	return err
}
