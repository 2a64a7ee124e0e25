package source

import (
	"context"

	"github.com/streamlane/tbptt"
)

// Source produces annotated documents, typically by decoding and
// vocabulary-mapping a corpus file upstream of this module.
type Source[V any] interface {
	// Read returns two channels: one for documents and one for errors.
	//
	// Read must create both channels (never return nil channels), and
	// must close them when reading is finished or the context is
	// canceled.
	Read(ctx context.Context) (<-chan *tbptt.Document[V], <-chan error)
}

// Collect drains a source into a Corpus, preserving emission order. It
// returns the first error the source reported, if any, after both
// channels have closed.
func Collect[V any](ctx context.Context, src Source[V]) (*tbptt.Corpus[V], error) {
	out, errs := src.Read(ctx)

	var docs []*tbptt.Document[V]
	var first error

	outClosed, errsClosed := false, false
	for !outClosed || !errsClosed {
		select {
		case doc, ok := <-out:
			if !ok {
				outClosed = true
				continue
			}
			docs = append(docs, doc)
		case err, ok := <-errs:
			if !ok {
				errsClosed = true
				continue
			}
			if first == nil {
				first = err
			}
		}
	}

	if first != nil {
		return nil, first
	}
	return tbptt.NewCorpus(docs...), nil
}
