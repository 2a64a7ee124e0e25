package pipeline_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/streamlane/tbptt"
	"github.com/streamlane/tbptt/pipeline"
	"github.com/streamlane/tbptt/trainer"
)

func buildIterator(t *testing.T, lengths []int) *tbptt.Iterator[int64] {
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
		BatchSize:     2,
		SplitSize:     3,
		SplittingKeys: []string{"tokens"},
	})
	require.NoError(t, err)
	return it
}

func TestFeed_RunsAllEpochs(t *testing.T) {
	// Documents of 7 and 5 steps over two lanes: 3 batches per epoch.
	it := buildIterator(t, []int{7, 5})
	collector := &trainer.Collector[int64]{}

	feed := &pipeline.Feed[int64]{
		Iterator: it,
		Consumer: collector,
		Epochs:   4,
	}
	require.NoError(t, feed.Run(context.Background()))

	assert.Equal(t, 12, collector.Count())
	assert.Equal(t, 4, it.Epoch())
}

func TestFeed_PrefetchMatchesDirect(t *testing.T) {
	direct := &trainer.Collector[int64]{}
	require.NoError(t, (&pipeline.Feed[int64]{
		Iterator: buildIterator(t, []int{9, 4, 6}),
		Consumer: direct,
		Epochs:   2,
	}).Run(context.Background()))

	prefetched := &trainer.Collector[int64]{}
	require.NoError(t, (&pipeline.Feed[int64]{
		Iterator: buildIterator(t, []int{9, 4, 6}),
		Consumer: prefetched,
		Epochs:   2,
		Prefetch: true,
	}).Run(context.Background()))

	want := direct.Batches(false)
	got := prefetched.Batches(false)
	require.Equal(t, len(want), len(got))
	for i := range want {
		assert.Equal(t, want[i].Keys, got[i].Keys, "batch %d", i)
		assert.Equal(t, want[i].LaneReset, got[i].LaneReset, "batch %d", i)
	}
}

func TestFeed_ConsumerErrorAborts(t *testing.T) {
	boom := errors.New("nan loss")

	for _, prefetch := range []bool{false, true} {
		it := buildIterator(t, []int{7, 5})
		calls := 0
		feed := &pipeline.Feed[int64]{
			Iterator: it,
			Consumer: trainer.Func[int64](func(context.Context, *tbptt.Batch[int64]) error {
				calls++
				if calls == 2 {
					return boom
				}
				return nil
			}),
			Epochs:   3,
			Prefetch: prefetch,
		}

		err := feed.Run(context.Background())
		assert.ErrorIs(t, err, boom, "prefetch=%v", prefetch)
		assert.Equal(t, 2, calls, "prefetch=%v", prefetch)
	}
}

func TestFeed_ContextCancellation(t *testing.T) {
	it := buildIterator(t, []int{7, 5})
	ctx, cancel := context.WithCancel(context.Background())

	calls := 0
	feed := &pipeline.Feed[int64]{
		Iterator: it,
		Consumer: trainer.Func[int64](func(context.Context, *tbptt.Batch[int64]) error {
			calls++
			cancel()
			return nil
		}),
		Epochs: 5,
	}

	err := feed.Run(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 1, calls)
}

func TestFeed_RequiredFields(t *testing.T) {
	assert.Error(t, (&pipeline.Feed[int64]{}).Run(context.Background()))
	assert.Error(t, (&pipeline.Feed[int64]{
		Iterator: buildIterator(t, []int{3}),
	}).Run(context.Background()))
}
