package tbptt

// Config holds the settings for an Iterator. All values are fixed at
// construction time; Validate is called by New and fails fast with a
// ConfigurationError rather than surfacing problems mid-epoch.
type Config[V any] struct {
	// BatchSize is the number of parallel lanes. Each lane is bound to
	// one document at a time and owns that document's recurrent state in
	// the consumer. Must be at least 1.
	BatchSize int

	// SplitSize is the maximum number of steps a lane advances per batch.
	// Lanes at the tail of a document emit a shorter chunk rather than
	// spilling into the next document. Must be at least 1.
	SplitSize int

	// SplittingKeys names the streams that are sliced and aligned into
	// every batch, in the order they appear in Batch.Keys iteration by the
	// caller. Every document must carry every key. Streams not named here
	// are ignored by the iterator.
	SplittingKeys []string

	// SortKey, when non-empty, selects bucketing mode: documents are
	// ordered by ascending length of the named stream at every epoch
	// start, using a stable sort so equal-length documents keep their
	// corpus order. Minimizes tail padding. Mutually exclusive with
	// Shuffle.
	SortKey string

	// Shuffle, when true, permutes document order at every epoch start
	// using a generator seeded with Seed. Mutually exclusive with
	// SortKey.
	Shuffle bool

	// Seed seeds the shuffle generator. Two iterators built with the same
	// corpus, config and seed emit identical batch sequences.
	Seed int64

	// Pad is the sentinel written into padded positions: the tail of a
	// chunk shorter than the widest chunk in its batch, and every
	// position of a retired lane's row. Typically the zero value, which
	// matches an ignore-index of 0 downstream.
	Pad V
}

// Validate checks the configuration values. It returns a
// ConfigurationError describing the first problem found, or nil.
func (c Config[V]) Validate() error {
	if c.BatchSize < 1 {
		return configErrorf("batch size must be at least 1, got %d", c.BatchSize)
	}
	if c.SplitSize < 1 {
		return configErrorf("split size must be at least 1, got %d", c.SplitSize)
	}
	if len(c.SplittingKeys) == 0 {
		return configErrorf("at least one splitting key is required")
	}
	seen := make(map[string]bool, len(c.SplittingKeys))
	for _, key := range c.SplittingKeys {
		if key == "" {
			return configErrorf("splitting keys must be non-empty strings")
		}
		if seen[key] {
			return configErrorf("duplicate splitting key %q", key)
		}
		seen[key] = true
	}
	if c.Shuffle && c.SortKey != "" {
		return configErrorf("shuffle and sort key are mutually exclusive")
	}
	return nil
}
