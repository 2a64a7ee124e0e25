package source

import (
	"context"

	"github.com/streamlane/tbptt"
)

// defaultChannelBuffer is used when BufferSize is zero to set the
// capacity of the document channel created by Channel.Read.
const defaultChannelBuffer = 16

// Channel is a Source that forwards documents from an existing channel.
// It is useful when document construction already runs on its own
// goroutine.
type Channel[V any] struct {
	// Input is the channel from which this source reads documents.
	// The Channel source does not close it.
	Input <-chan *tbptt.Document[V]

	// BufferSize controls the capacity of the output channel
	// (default: 16).
	BufferSize int
}

// Read implements the Source interface by forwarding documents from the
// Input channel until it is closed or the context is canceled. The error
// channel is always empty.
func (s *Channel[V]) Read(ctx context.Context) (<-chan *tbptt.Document[V], <-chan error) {
	bufSize := defaultChannelBuffer
	if s.BufferSize > 0 {
		bufSize = s.BufferSize
	}
	out := make(chan *tbptt.Document[V], bufSize)
	errs := make(chan error)

	go func() {
		defer close(out)
		defer close(errs)

		if s.Input == nil {
			return
		}

		for {
			select {
			case <-ctx.Done():
				return
			case doc, ok := <-s.Input:
				if !ok {
					return
				}
				select {
				case <-ctx.Done():
					return
				case out <- doc:
				}
			}
		}
	}()

	return out, errs
}
