package tbptt

// Corpus is an ordered collection of Documents. The collection itself is
// immutable; per-epoch document order and the "next unassigned" cursor are
// epoch state owned by the Iterator, so the same Corpus can back several
// iterators at once (for example separate train and validation loaders).
type Corpus[V any] struct {
	docs []*Document[V]
}

// NewCorpus creates a Corpus holding the given documents in order.
func NewCorpus[V any](docs ...*Document[V]) *Corpus[V] {
	owned := make([]*Document[V], len(docs))
	copy(owned, docs)
	return &Corpus[V]{docs: owned}
}

// Len returns the number of documents.
func (c *Corpus[V]) Len() int {
	return len(c.docs)
}

// Doc returns the document at index i in corpus order.
func (c *Corpus[V]) Doc(i int) *Document[V] {
	return c.docs[i]
}
