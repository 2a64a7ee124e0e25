package tbptt_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/streamlane/tbptt"
)

func TestNewDocument(t *testing.T) {
	t.Run("streams must share one length", func(t *testing.T) {
		_, err := tbptt.NewDocument("bad", map[string]tbptt.Stream[int64]{
			"tokens":     {1, 2, 3},
			"entity_ids": {1, 2},
		})
		require.Error(t, err)
		var alignErr *tbptt.AlignmentError
		assert.ErrorAs(t, err, &alignErr)
	})

	t.Run("rejects empty documents", func(t *testing.T) {
		_, err := tbptt.NewDocument[int64]("empty", nil)
		assert.Error(t, err)

		_, err = tbptt.NewDocument("zero", map[string]tbptt.Stream[int64]{
			"tokens": {},
		})
		assert.Error(t, err)
	})

	t.Run("assigns an id when none is given", func(t *testing.T) {
		doc, err := tbptt.NewDocument("", map[string]tbptt.Stream[int64]{
			"tokens": {1, 2, 3},
		})
		require.NoError(t, err)
		assert.NotEmpty(t, doc.ID())

		other, err := tbptt.NewDocument("", map[string]tbptt.Stream[int64]{
			"tokens": {1, 2, 3},
		})
		require.NoError(t, err)
		assert.NotEqual(t, doc.ID(), other.ID())
	})

	t.Run("accessors", func(t *testing.T) {
		doc, err := tbptt.NewDocument("doc", map[string]tbptt.Stream[int64]{
			"source":     {5, 6, 7},
			"target":     {6, 7, 8},
			"entity_ids": {0, 1, 1},
		})
		require.NoError(t, err)

		assert.Equal(t, "doc", doc.ID())
		assert.Equal(t, 3, doc.Len())
		assert.Equal(t, []string{"entity_ids", "source", "target"}, doc.Keys())

		s, ok := doc.Stream("target")
		require.True(t, ok)
		assert.Equal(t, tbptt.Stream[int64]{6, 7, 8}, s)

		_, ok = doc.Stream("relations")
		assert.False(t, ok)
	})
}
