package source

import (
	"context"
	"time"

	"github.com/streamlane/tbptt"
)

// Nil is a Source that produces no documents. It closes its channels
// after the specified duration and can be used as a mock Source.
type Nil[V any] struct {
	// Duration is how long Read waits before closing the channels.
	Duration time.Duration
}

// Read doesn't read anything.
func (s *Nil[V]) Read(ctx context.Context) (<-chan *tbptt.Document[V], <-chan error) {
	out := make(chan *tbptt.Document[V])
	errs := make(chan error)

	go func() {
		defer close(out)
		defer close(errs)

		select {
		case <-ctx.Done():
		case <-time.After(s.Duration):
		}
	}()

	return out, errs
}
