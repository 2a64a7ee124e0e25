package trainer

import (
	"context"

	"github.com/streamlane/tbptt"
)

// StateCarrier keeps one recurrent state value per lane across batches,
// applying the iterator's lane masks: a lane's state is reinitialized
// with Init exactly when LaneReset marks the lane, then advanced with
// Step for every active lane. Inactive lanes keep their last state
// untouched.
//
// S is the hidden-state type; a trainer would use its encoder state, and
// tests can use something cheap like a slice of consumed values.
type StateCarrier[V any, S any] struct {
	// Init produces the initial state for a lane that begins a new
	// document. Required.
	Init func(lane int) S

	// Step advances a lane's state by one chunk. Only the positions
	// marked real by b.StepMask[lane] belong to the document. Required.
	Step func(state S, lane int, b *tbptt.Batch[V]) S

	states []S
}

// Consume implements the Consumer interface.
func (c *StateCarrier[V, S]) Consume(_ context.Context, b *tbptt.Batch[V]) error {
	if len(c.states) < b.Lanes() {
		grown := make([]S, b.Lanes())
		copy(grown, c.states)
		c.states = grown
	}

	for lane := 0; lane < b.Lanes(); lane++ {
		if b.LaneReset[lane] {
			c.states[lane] = c.Init(lane)
		}
		if b.LaneActive[lane] {
			c.states[lane] = c.Step(c.states[lane], lane, b)
		}
	}
	return nil
}

// State returns lane i's current state.
func (c *StateCarrier[V, S]) State(lane int) S {
	return c.states[lane]
}

// States returns a copy of the per-lane states.
func (c *StateCarrier[V, S]) States() []S {
	out := make([]S, len(c.states))
	copy(out, c.states)
	return out
}
