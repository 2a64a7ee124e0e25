package tbptt

import (
	"sort"

	"github.com/google/uuid"
)

// Stream is a named, ordered sequence of per-step annotation values.
// All streams belonging to one document share the same length.
type Stream[V any] []V

// Document is one training document: an id plus a set of named streams
// that all share the document's step count. A Document is immutable once
// constructed; the iterator only ever reads from it, so a single Document
// may be referenced by several lanes or iterators concurrently.
type Document[V any] struct {
	id      string
	length  int
	streams map[string]Stream[V]
}

// NewDocument creates a Document from the given streams. If id is empty a
// random UUID is assigned. It returns an AlignmentError if the streams do
// not all share the same non-zero length, since a length disagreement
// means the annotation channels cannot be kept in lock-step.
//
// The streams map is copied, but the stream slices themselves are not;
// callers must not mutate them after construction.
func NewDocument[V any](id string, streams map[string]Stream[V]) (*Document[V], error) {
	if id == "" {
		id = uuid.NewString()
	}
	if len(streams) == 0 {
		return nil, alignErrorf("document %s has no streams", id)
	}

	length := -1
	owned := make(map[string]Stream[V], len(streams))
	for name, s := range streams {
		if length < 0 {
			length = len(s)
		} else if len(s) != length {
			return nil, alignErrorf("document %s: stream %q has length %d, want %d",
				id, name, len(s), length)
		}
		owned[name] = s
	}
	if length == 0 {
		return nil, alignErrorf("document %s has zero-length streams", id)
	}

	return &Document[V]{
		id:      id,
		length:  length,
		streams: owned,
	}, nil
}

// ID returns the document identifier.
func (d *Document[V]) ID() string {
	return d.id
}

// Len returns the document's step count, shared by every stream.
func (d *Document[V]) Len() int {
	return d.length
}

// Stream returns the named stream, or false if the document does not
// carry it.
func (d *Document[V]) Stream(name string) (Stream[V], bool) {
	s, ok := d.streams[name]
	return s, ok
}

// Keys returns the names of the document's streams in sorted order.
func (d *Document[V]) Keys() []string {
	keys := make([]string, 0, len(d.streams))
	for name := range d.streams {
		keys = append(keys, name)
	}
	sort.Strings(keys)
	return keys
}
