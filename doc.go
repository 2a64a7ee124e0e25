// Package tbptt implements truncated backpropagation-through-time batch
// iteration over annotated documents. The main type is Iterator, created
// with New from a Corpus of Documents. Each Document carries several named
// annotation streams (token ids, entity ids, mention lengths, and so on)
// that all share the document's step count, and the iterator slices every
// configured stream with identical bounds so the streams stay in lock-step.
//
// Documents are packed into BatchSize parallel lanes. On every call to
// Next, each lane advances by up to SplitSize steps through its current
// document; a lane that finishes its document immediately pulls the next
// unassigned document from the corpus, or retires for the rest of the
// epoch once the corpus is exhausted. The emitted Batch is rectangular:
// lanes whose chunk is shorter than the widest chunk in the step are
// padded, and a per-step mask records which positions are real.
//
// The consumer is expected to carry recurrent hidden state per lane.
// Batch.LaneReset marks exactly the lanes whose first chunk of a new
// document is in the batch; the hidden state of those lanes must be
// reinitialized before the chunk is consumed. All other active lanes carry
// their state forward from the previous batch.
//
// A short example with two lanes, SplitSize 3, and documents A (7 steps)
// and B (5 steps):
//
//	Next 1: lane0 = A[0:3] (reset), lane1 = B[0:3] (reset)
//	Next 2: lane0 = A[3:6],         lane1 = B[3:5] padded to width 3
//	Next 3: lane0 = A[6:7],         lane1 retired (corpus exhausted)
//	Next 4: ErrEpochDone
//
// An epoch is not restartable midway; call Reset to begin a new one.
// Document order per epoch is either the corpus order, a seeded shuffle,
// or a stable ascending sort by stream length for padding-friendly
// bucketing.
package tbptt
