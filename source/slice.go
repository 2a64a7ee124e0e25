package source

import (
	"context"

	"github.com/streamlane/tbptt"
)

// Slice is a Source backed by an in-memory slice of documents. It emits
// the documents in order and then closes its channels.
type Slice[V any] struct {
	// Docs are the documents to emit.
	Docs []*tbptt.Document[V]
}

// Read implements the Source interface.
func (s *Slice[V]) Read(ctx context.Context) (<-chan *tbptt.Document[V], <-chan error) {
	out := make(chan *tbptt.Document[V])
	errs := make(chan error)

	go func() {
		defer close(out)
		defer close(errs)

		for _, doc := range s.Docs {
			select {
			case <-ctx.Done():
				errs <- ctx.Err()
				return
			case out <- doc:
			}
		}
	}()

	return out, errs
}
