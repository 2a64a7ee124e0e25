package trainer_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/streamlane/tbptt"
	"github.com/streamlane/tbptt/trainer"
)

func buildIterator(t *testing.T, lengths []int, batchSize, splitSize int) *tbptt.Iterator[int64] {
	t.Helper()

	docs := make([]*tbptt.Document[int64], len(lengths))
	for i, n := range lengths {
		s := make(tbptt.Stream[int64], n)
		for j := range s {
			s[j] = int64(i)*1000 + int64(j)
		}
		doc, err := tbptt.NewDocument("", map[string]tbptt.Stream[int64]{"tokens": s})
		require.NoError(t, err)
		docs[i] = doc
	}

	it, err := tbptt.New(tbptt.NewCorpus(docs...), tbptt.Config[int64]{
		BatchSize:     batchSize,
		SplitSize:     splitSize,
		SplittingKeys: []string{"tokens"},
		Pad:           -1,
	})
	require.NoError(t, err)
	return it
}

func feed(t *testing.T, it *tbptt.Iterator[int64], c trainer.Consumer[int64]) {
	t.Helper()

	for b, err := range it.Batches() {
		require.NoError(t, err)
		require.NoError(t, c.Consume(context.Background(), b))
	}
}

func TestCollector(t *testing.T) {
	it := buildIterator(t, []int{7, 5}, 2, 3)

	collector := &trainer.Collector[int64]{}
	feed(t, it, collector)

	assert.Equal(t, 3, collector.Count())

	batches := collector.Batches(true)
	assert.Len(t, batches, 3)
	assert.Equal(t, 0, collector.Count())
	assert.Empty(t, collector.Batches(false))
}

func TestCollector_MaxBatches(t *testing.T) {
	it := buildIterator(t, []int{7, 5}, 2, 3)

	collector := &trainer.Collector[int64]{MaxBatches: 2}
	feed(t, it, collector)

	assert.Equal(t, 2, collector.Count())
}

func TestChannel(t *testing.T) {
	it := buildIterator(t, []int{4, 4}, 2, 2)

	out := make(chan *tbptt.Batch[int64], 8)
	feed(t, it, &trainer.Channel[int64]{Output: out})
	close(out)

	count := 0
	for range out {
		count++
	}
	assert.Equal(t, 2, count)
}

func TestChannel_ContextCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	c := &trainer.Channel[int64]{Output: make(chan *tbptt.Batch[int64])}
	err := c.Consume(ctx, &tbptt.Batch[int64]{})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestFunc(t *testing.T) {
	boom := errors.New("training diverged")
	f := trainer.Func[int64](func(context.Context, *tbptt.Batch[int64]) error {
		return boom
	})
	assert.ErrorIs(t, f.Consume(context.Background(), nil), boom)
}

func TestStateCarrier_ResetSemantics(t *testing.T) {
	// Three documents over two lanes: lane 1 finishes its short document
	// and is handed the third, so its state must restart exactly there.
	it := buildIterator(t, []int{6, 2, 3}, 2, 2)

	inits := 0
	carrier := &trainer.StateCarrier[int64, []int64]{
		Init: func(lane int) []int64 {
			inits++
			return nil
		},
		Step: func(state []int64, lane int, b *tbptt.Batch[int64]) []int64 {
			for j := 0; j < b.Width; j++ {
				if b.StepMask[lane][j] {
					state = append(state, b.Keys["tokens"][lane][j])
				}
			}
			return state
		},
	}
	feed(t, it, carrier)

	// One init per document.
	assert.Equal(t, 3, inits)

	// Lane 0 ends holding document 0, lane 1 ends holding document 2:
	// the carried state is each document's full stream, proving state
	// was reset at document boundaries and carried across chunks
	// within a document.
	assert.Equal(t, []int64{0, 1, 2, 3, 4, 5}, carrier.State(0))
	assert.Equal(t, []int64{2000, 2001, 2002}, carrier.State(1))

	states := carrier.States()
	require.Len(t, states, 2)
	assert.Equal(t, carrier.State(0), states[0])
}

func TestLogging_Delegates(t *testing.T) {
	it := buildIterator(t, []int{5}, 1, 2)

	collector := &trainer.Collector[int64]{}
	wrapped := trainer.WrapWithLogging[int64](collector, tbptt.NewSimpleLogger(tbptt.LogLevelError), "collector")
	feed(t, it, wrapped)

	assert.Equal(t, 3, collector.Count())
}

func TestLogging_NilConsumer(t *testing.T) {
	l := &trainer.Logging[int64]{}
	assert.NoError(t, l.Consume(context.Background(), &tbptt.Batch[int64]{}))
}

func TestLogging_ErrorPassthrough(t *testing.T) {
	boom := errors.New("boom")
	l := trainer.WrapWithLogging[int64](
		trainer.Func[int64](func(context.Context, *tbptt.Batch[int64]) error { return boom }),
		nil, "")
	assert.ErrorIs(t, l.Consume(context.Background(), &tbptt.Batch[int64]{}), boom)
}
