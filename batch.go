package tbptt

// Batch is one rectangular slice of training data covering every lane.
// It is created per iterator step and meant to be consumed immediately;
// consumers must not retain a Batch across epoch boundaries.
type Batch[V any] struct {
	// Keys maps each splitting key to a [BatchSize][Width] grid of
	// values. Row i belongs to lane i. Positions past a lane's chunk
	// length, and every position of a retired lane, hold the configured
	// pad sentinel.
	Keys map[string][][]V

	// StepMask is a [BatchSize][Width] grid that is true exactly where
	// the corresponding Keys positions hold real document data.
	StepMask [][]bool

	// LaneActive reports, per lane, whether the lane contributed a chunk
	// to this batch. A retired lane stays inactive for the rest of the
	// epoch.
	LaneActive []bool

	// LaneReset reports, per lane, whether this batch holds the first
	// chunk of a newly assigned document. The consumer must reinitialize
	// that lane's recurrent hidden state before consuming the chunk;
	// every other active lane carries state forward from the previous
	// batch.
	LaneReset []bool

	// Width is the widest chunk length in this batch, at most the
	// configured split size.
	Width int
}

// Lanes returns the number of lanes, equal to the configured batch size.
func (b *Batch[V]) Lanes() int {
	return len(b.LaneActive)
}

// ActiveLanes returns how many lanes contributed a chunk to this batch.
func (b *Batch[V]) ActiveLanes() int {
	n := 0
	for _, active := range b.LaneActive {
		if active {
			n++
		}
	}
	return n
}

// ChunkLen returns the number of real steps lane i contributed, derived
// from the step mask. It is zero for inactive lanes.
func (b *Batch[V]) ChunkLen(lane int) int {
	n := 0
	for _, ok := range b.StepMask[lane] {
		if ok {
			n++
		}
	}
	return n
}
