// Package pipeline combines an Iterator and a Consumer into a single
// component with a simple synchronous API. Feed drives the iterator for a
// configured number of epochs and hands every batch to the consumer,
// optionally assembling the next batch on a background goroutine while
// the consumer works on the current one.
package pipeline

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/streamlane/tbptt"
	"github.com/streamlane/tbptt/trainer"
)

// Feed drives an Iterator into a Consumer for a fixed number of epochs.
//
//	feed := &pipeline.Feed[int64]{
//		Iterator: it,
//		Consumer: myTrainer,
//		Epochs:   40,
//		Prefetch: true,
//	}
//	err := feed.Run(ctx)
type Feed[V any] struct {
	// Iterator emits the batches. Required.
	Iterator *tbptt.Iterator[V]

	// Consumer receives every batch in emission order. Required.
	Consumer trainer.Consumer[V]

	// Epochs is the number of epochs to run. Values below 1 are treated
	// as 1.
	Epochs int

	// Prefetch assembles the next batch on a background goroutine while
	// the consumer works. Emission order is unchanged.
	Prefetch bool
}

// Run feeds the consumer until every epoch completes, the context is
// canceled, or an error occurs. The first error aborts the run; a batch
// that has been handed to the consumer is never re-delivered.
func (f *Feed[V]) Run(ctx context.Context) error {
	if f.Iterator == nil {
		return fmt.Errorf("pipeline: iterator is required")
	}
	if f.Consumer == nil {
		return fmt.Errorf("pipeline: consumer is required")
	}

	epochs := f.Epochs
	if epochs < 1 {
		epochs = 1
	}

	for epoch := 1; epoch <= epochs; epoch++ {
		var err error
		if f.Prefetch {
			err = f.runPrefetched(ctx)
		} else {
			err = f.runDirect(ctx)
		}
		if err != nil {
			return fmt.Errorf("pipeline: epoch %d: %w", epoch, err)
		}
	}
	return nil
}

// runDirect drives one epoch with the consumer and iterator interleaved
// on the calling goroutine.
func (f *Feed[V]) runDirect(ctx context.Context) error {
	f.Iterator.Reset()
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		b, err := f.Iterator.Next()
		if err == tbptt.ErrEpochDone {
			return nil
		}
		if err != nil {
			return err
		}

		if err := f.Consumer.Consume(ctx, b); err != nil {
			return err
		}
	}
}

// runPrefetched drives one epoch with batch assembly overlapped one batch
// ahead of consumption.
func (f *Feed[V]) runPrefetched(ctx context.Context) error {
	group, ctx := errgroup.WithContext(ctx)
	pf := tbptt.NewPrefetcher(ctx, f.Iterator)

	group.Go(func() error {
		for {
			b, err := pf.Next()
			if err == tbptt.ErrEpochDone {
				return nil
			}
			if err != nil {
				return err
			}
			if err := f.Consumer.Consume(ctx, b); err != nil {
				return err
			}
		}
	})

	err := group.Wait()
	if stopErr := pf.Stop(); err == nil {
		err = stopErr
	}
	return err
}
