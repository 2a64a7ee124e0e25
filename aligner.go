package tbptt

// laneChunk is one lane's contribution to a batch before packing: the
// same [cursor, cursor+k) slice of every splitting key, plus the lane
// masks. A retired lane has active == false and no slices.
type laneChunk[V any] struct {
	active bool
	reset  bool
	k      int
	slices map[string][]V
}

// align packs the ragged per-lane chunks into a rectangular Batch. Rows
// shorter than the widest chunk are padded with pad, retired lanes become
// all-sentinel rows, and the step mask records which positions are real.
//
// The length check against k is defensive: document construction already
// guarantees that every stream shares the document length, so a mismatch
// here means the input data is corrupt and the error is surfaced rather
// than recovered from.
func align[V any](keys []string, lanes []laneChunk[V], pad V) (*Batch[V], error) {
	width := 0
	for i := range lanes {
		if lanes[i].active && lanes[i].k > width {
			width = lanes[i].k
		}
	}

	b := &Batch[V]{
		Keys:       make(map[string][][]V, len(keys)),
		StepMask:   make([][]bool, len(lanes)),
		LaneActive: make([]bool, len(lanes)),
		LaneReset:  make([]bool, len(lanes)),
		Width:      width,
	}

	for _, key := range keys {
		rows := make([][]V, len(lanes))
		for i := range lanes {
			row := make([]V, width)
			for j := range row {
				row[j] = pad
			}
			if lanes[i].active {
				s := lanes[i].slices[key]
				if len(s) != lanes[i].k {
					return nil, alignErrorf("lane %d: key %q sliced %d steps, want %d",
						i, key, len(s), lanes[i].k)
				}
				copy(row, s)
			}
			rows[i] = row
		}
		b.Keys[key] = rows
	}

	for i := range lanes {
		mask := make([]bool, width)
		if lanes[i].active {
			for j := 0; j < lanes[i].k; j++ {
				mask[j] = true
			}
			b.LaneActive[i] = true
			b.LaneReset[i] = lanes[i].reset
		}
		b.StepMask[i] = mask
	}

	return b, nil
}
