// Package source contains implementations of the Source interface for
// carrying annotated documents from an external dataset-reading
// collaborator into a tbptt.Corpus, including:
//
// - Slice: for documents already materialized in memory
// - Channel: for using an existing channel as a document source
// - Error: for simulating error-only sources without data
// - Nil: for testing timing behavior without emitting documents
//
// Each source handles context cancellation and always closes the channels
// it returns. Collect drains any source into a Corpus.
//
// Basic usage:
//
//	src := &source.Slice[int64]{Docs: docs}
//	corpus, err := source.Collect[int64](context.Background(), src)
package source
