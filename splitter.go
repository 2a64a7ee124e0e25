package tbptt

import (
	"math/rand"
	"sort"
)

// splitter is the core chunking engine. It owns all per-epoch mutable
// state: the active document order, the next-unassigned cursor into that
// order, and one lane per batch slot. The state is rebuilt by reset and
// mutated only inside step, which keeps the engine re-entrant across
// epochs and independent of any other splitter sharing the same Corpus.
type splitter[V any] struct {
	corpus *Corpus[V]
	cfg    Config[V]
	logger Logger
	stats  StatsCollector

	order   []int
	nextDoc int
	lanes   []lane
}

func newSplitter[V any](corpus *Corpus[V], cfg Config[V], logger Logger, stats StatsCollector) *splitter[V] {
	return &splitter[V]{
		corpus: corpus,
		cfg:    cfg,
		logger: logger,
		stats:  stats,
		order:  make([]int, corpus.Len()),
		lanes:  make([]lane, cfg.BatchSize),
	}
}

// reset rebuilds the epoch state: recomputes the document order, rewinds
// the unassigned cursor, and binds each lane to its initial document. If
// the corpus holds fewer documents than there are lanes, the shortfall of
// lanes starts the epoch retired.
func (s *splitter[V]) reset(rng *rand.Rand) {
	for i := range s.order {
		s.order[i] = i
	}

	switch {
	case s.cfg.SortKey != "":
		// Stable sort keeps equal-length documents in corpus order, so
		// iteration stays deterministic for a fixed corpus.
		sort.SliceStable(s.order, func(a, b int) bool {
			return s.sortLen(s.order[a]) < s.sortLen(s.order[b])
		})
	case s.cfg.Shuffle:
		rng.Shuffle(len(s.order), func(a, b int) {
			s.order[a], s.order[b] = s.order[b], s.order[a]
		})
	}

	s.nextDoc = 0
	for i := range s.lanes {
		s.fill(&s.lanes[i])
	}
}

func (s *splitter[V]) sortLen(doc int) int {
	stream, _ := s.corpus.Doc(doc).Stream(s.cfg.SortKey)
	return len(stream)
}

// fill hands the next unassigned document to the lane, or retires the
// lane if the corpus is exhausted for this epoch.
func (s *splitter[V]) fill(ln *lane) {
	if s.nextDoc < len(s.order) {
		doc := s.order[s.nextDoc]
		s.nextDoc++
		ln.assign(doc)
		s.stats.RecordDocumentStarted()
		s.logger.Debug("assigned document %s", s.corpus.Doc(doc).ID())
		return
	}
	ln.retire()
	s.stats.RecordLaneRetired()
}

// step advances every active lane by up to SplitSize steps and emits one
// aligned batch, or ErrEpochDone once every lane is retired. Lane cursors
// are advanced only after slicing and packing succeed, so a failed step
// leaves the epoch state unchanged.
func (s *splitter[V]) step() (*Batch[V], error) {
	chunks := make([]laneChunk[V], len(s.lanes))
	anyActive := false

	for i := range s.lanes {
		ln := &s.lanes[i]
		if ln.retired() {
			continue
		}
		doc := s.corpus.Doc(ln.doc)

		k := doc.Len() - ln.cursor
		if k > s.cfg.SplitSize {
			k = s.cfg.SplitSize
		}

		slices := make(map[string][]V, len(s.cfg.SplittingKeys))
		for _, key := range s.cfg.SplittingKeys {
			stream, ok := doc.Stream(key)
			if !ok {
				// Unreachable after New's validation unless the corpus
				// was swapped out from under the iterator.
				return nil, alignErrorf("document %s is missing key %q", doc.ID(), key)
			}
			slices[key] = stream[ln.cursor : ln.cursor+k]
		}

		chunks[i] = laneChunk[V]{
			active: true,
			reset:  ln.justStarted,
			k:      k,
			slices: slices,
		}
		anyActive = true
	}

	if !anyActive {
		return nil, ErrEpochDone
	}

	b, err := align(s.cfg.SplittingKeys, chunks, s.cfg.Pad)
	if err != nil {
		return nil, err
	}

	realSteps, paddedSteps := 0, 0
	for i := range s.lanes {
		if !chunks[i].active {
			paddedSteps += b.Width
			continue
		}
		ln := &s.lanes[i]
		ln.justStarted = false
		ln.cursor += chunks[i].k
		realSteps += chunks[i].k
		paddedSteps += b.Width - chunks[i].k
		if ln.cursor == s.corpus.Doc(ln.doc).Len() {
			s.fill(ln)
		}
	}

	s.stats.RecordBatch(b.ActiveLanes(), realSteps, paddedSteps)
	return b, nil
}
