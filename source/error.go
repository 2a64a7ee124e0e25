package source

import (
	"context"

	"github.com/streamlane/tbptt"
)

// defaultErrorBuffer is used when BufferSize is zero to set the capacity
// of the error channel created by Error.Read.
const defaultErrorBuffer = 10

// Error is a Source that only emits errors from a channel and provides no
// documents. It is useful for testing error handling around corpus
// construction.
type Error[V any] struct {
	// Errs is the channel from which this source reads errors.
	// The Error source does not close it.
	Errs <-chan error

	// BufferSize controls the capacity of the error buffer (default: 10).
	BufferSize int
}

// Read implements the Source interface by forwarding non-nil errors from
// the Errs channel until it is closed or the context is canceled. The
// document channel is always empty.
func (s *Error[V]) Read(ctx context.Context) (<-chan *tbptt.Document[V], <-chan error) {
	out := make(chan *tbptt.Document[V])

	bufSize := defaultErrorBuffer
	if s.BufferSize > 0 {
		bufSize = s.BufferSize
	}
	errs := make(chan error, bufSize)

	go func() {
		defer close(out)
		defer close(errs)

		if s.Errs == nil {
			return
		}

		for {
			select {
			case <-ctx.Done():
				return
			case err, ok := <-s.Errs:
				if !ok {
					return
				}
				if err == nil {
					continue
				}
				select {
				case <-ctx.Done():
					return
				case errs <- err:
				}
			}
		}
	}()

	return out, errs
}
