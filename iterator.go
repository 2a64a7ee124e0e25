package tbptt

import (
	"iter"
	"math/rand"
	"sync"
	"time"
)

// Iterator drives TBPTT batch emission over a Corpus, one epoch at a
// time. Create one with New, optionally attach a Logger or StatsCollector
// with the With methods, then call Reset to begin an epoch and Next until
// it returns ErrEpochDone.
//
// An Iterator is a synchronous pull iterator: each Next call performs one
// splitter step and returns. It is not safe for concurrent use by
// multiple goroutines; wrap it in a Prefetcher to overlap batch assembly
// with consumption.
type Iterator[V any] struct {
	cfg    Config[V]
	corpus *Corpus[V]
	rng    *rand.Rand
	logger Logger
	stats  StatsCollector
	sp     *splitter[V]

	mu      sync.Mutex
	started bool

	epoch      int
	epochDone  bool
	epochStart time.Time
	batches    int
}

// New creates an Iterator over the corpus. It validates the configuration
// and checks that every document carries every splitting key (and the
// sort key, in bucketing mode), returning a ConfigurationError on the
// first problem so that bad input fails here rather than mid-epoch.
func New[V any](corpus *Corpus[V], cfg Config[V]) (*Iterator[V], error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	for i := 0; i < corpus.Len(); i++ {
		doc := corpus.Doc(i)
		for _, key := range cfg.SplittingKeys {
			if _, ok := doc.Stream(key); !ok {
				return nil, configErrorf("document %s is missing splitting key %q", doc.ID(), key)
			}
		}
		if cfg.SortKey != "" {
			if _, ok := doc.Stream(cfg.SortKey); !ok {
				return nil, configErrorf("document %s is missing sort key %q", doc.ID(), cfg.SortKey)
			}
		}
	}

	return &Iterator[V]{
		cfg:    cfg,
		corpus: corpus,
		rng:    rand.New(rand.NewSource(cfg.Seed)),
	}, nil
}

// WithLogger sets a logger for the Iterator. If not set, no logging
// occurs. Panics if called after iteration has started.
func (it *Iterator[V]) WithLogger(logger Logger) *Iterator[V] {
	it.mu.Lock()
	defer it.mu.Unlock()

	if it.started {
		panic("tbptt: WithLogger cannot be called after iteration has started")
	}
	it.logger = logger
	return it
}

// WithStats sets a stats collector for the Iterator. If not set, no
// statistics are collected. Panics if called after iteration has started.
func (it *Iterator[V]) WithStats(stats StatsCollector) *Iterator[V] {
	it.mu.Lock()
	defer it.mu.Unlock()

	if it.started {
		panic("tbptt: WithStats cannot be called after iteration has started")
	}
	it.stats = stats
	return it
}

// start marks the iterator as running and installs the no-op ambient
// collaborators where none were provided.
func (it *Iterator[V]) start() {
	it.mu.Lock()
	defer it.mu.Unlock()

	if it.started {
		return
	}
	if it.logger == nil {
		it.logger = &NoOpLogger{}
	}
	if it.stats == nil {
		it.stats = &NoOpStatsCollector{}
	}
	it.sp = newSplitter(it.corpus, it.cfg, it.logger, it.stats)
	it.started = true
}

// Reset begins a new epoch: the document order is recomputed according to
// the configured mode, the unassigned cursor rewinds, and every lane is
// bound to a fresh document (or starts retired if the corpus holds fewer
// documents than lanes). Any batches remaining in the previous epoch are
// abandoned; an epoch is never restartable midway.
func (it *Iterator[V]) Reset() {
	it.start()

	it.epoch++
	it.epochDone = false
	it.epochStart = time.Now()
	it.batches = 0

	it.sp.reset(it.rng)
	it.stats.RecordEpochStart(it.epoch)
	it.logger.Info("epoch %d: %d documents across %d lanes",
		it.epoch, it.corpus.Len(), it.cfg.BatchSize)
}

// Epoch returns the current epoch number, starting at 1 after the first
// Reset.
func (it *Iterator[V]) Epoch() int {
	return it.epoch
}

// Next performs one splitter step and returns the emitted batch. Once the
// corpus and every lane are drained it returns ErrEpochDone, and keeps
// doing so until Reset begins a new epoch. The first call on a fresh
// Iterator implicitly begins epoch 1.
//
// An AlignmentError from Next indicates corrupt input data; the epoch
// should be considered aborted.
func (it *Iterator[V]) Next() (*Batch[V], error) {
	if !it.started || it.epoch == 0 {
		it.Reset()
	}

	b, err := it.sp.step()
	if err == ErrEpochDone {
		if !it.epochDone {
			it.epochDone = true
			it.stats.RecordEpochComplete(it.batches, time.Since(it.epochStart))
			it.logger.Info("epoch %d complete: %d batches", it.epoch, it.batches)
		}
		return nil, ErrEpochDone
	}
	if err != nil {
		it.logger.Error("epoch %d aborted: %v", it.epoch, err)
		return nil, err
	}

	it.batches++
	return b, nil
}

// Batches begins a new epoch and returns it as a lazy, finite sequence of
// batches. A non-nil error ends the sequence; ErrEpochDone itself is not
// yielded.
//
//	for b, err := range it.Batches() {
//		if err != nil {
//			return err
//		}
//		consume(b)
//	}
func (it *Iterator[V]) Batches() iter.Seq2[*Batch[V], error] {
	return func(yield func(*Batch[V], error) bool) {
		it.Reset()
		for {
			b, err := it.Next()
			if err == ErrEpochDone {
				return
			}
			if err != nil {
				yield(nil, err)
				return
			}
			if !yield(b, nil) {
				return
			}
		}
	}
}
