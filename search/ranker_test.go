package search

import (
	"context"
	"errors"
	"testing"

	"github.com/poiesic/cinemind/ai/mock"
	"github.com/poiesic/cinemind/catalog"
	"github.com/poiesic/cinemind/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// embeddedCatalog builds a catalog whose entry vectors come from the given
// map, keyed by embedding text. Vectors are normalized by Embed, so tests
// should supply unit vectors when exact scores matter.
func embeddedCatalog(t *testing.T, entries []core.Entry, vectors map[string][]float32) (*catalog.Catalog, *mock.MockEmbedder) {
	t.Helper()

	embedder := mock.NewMockEmbedder()
	embedder.EmbedTextsFunc = func(ctx context.Context, texts []string) ([][]float32, error) {
		out := make([][]float32, len(texts))
		for i, text := range texts {
			v, ok := vectors[text]
			require.True(t, ok, "no crafted vector for %q", text)
			out[i] = v
		}
		return out, nil
	}

	cat := catalog.New(entries)
	require.NoError(t, cat.Embed(context.Background(), embedder))

	embedder.Reset()
	return cat, embedder
}

func rankTestCatalog(t *testing.T) (*catalog.Catalog, *mock.MockEmbedder) {
	entries := []core.Entry{
		{Title: "North", Description: "points north", ReleaseYear: "2001"},
		{Title: "East", Description: "points east", ReleaseYear: "2002"},
		{Title: "Northish", Description: "mostly north", ReleaseYear: "2003"},
		{Title: "South", Description: "points south", ReleaseYear: "2004"},
	}
	vectors := map[string][]float32{
		"North points north":    {0, 1},
		"East points east":      {1, 0},
		"Northish mostly north": {0.6, 0.8},
		"South points south":    {0, -1},
	}
	return embeddedCatalog(t, entries, vectors)
}

func TestNewRanker(t *testing.T) {
	t.Run("requires an embedder", func(t *testing.T) {
		_, err := NewRanker(nil)
		require.ErrorIs(t, err, ErrEmbedderRequired)
	})
}

func TestRank(t *testing.T) {
	ctx := context.Background()

	t.Run("orders by descending similarity", func(t *testing.T) {
		cat, embedder := rankTestCatalog(t)
		embedder.EmbedTextFunc = func(ctx context.Context, text string) ([]float32, error) {
			return []float32{0, 1}, nil // due north
		}

		ranker, err := NewRanker(embedder)
		require.NoError(t, err)

		matches, err := ranker.Rank(ctx, "northern stuff", cat, 4)
		require.NoError(t, err)
		assert.Equal(t, []string{"North", "Northish", "East", "South"}, titles(matches))
		assert.InDelta(t, 1.0, matches[0].Score, 1e-5)
		assert.InDelta(t, 0.8, matches[1].Score, 1e-5)
	})

	t.Run("truncates to the limit", func(t *testing.T) {
		cat, embedder := rankTestCatalog(t)
		embedder.EmbedTextFunc = func(ctx context.Context, text string) ([]float32, error) {
			return []float32{0, 1}, nil
		}

		ranker, err := NewRanker(embedder)
		require.NoError(t, err)

		matches, err := ranker.Rank(ctx, "anything", cat, 2)
		require.NoError(t, err)
		assert.Equal(t, []string{"North", "Northish"}, titles(matches))
	})

	t.Run("limit beyond catalog size returns everything", func(t *testing.T) {
		cat, embedder := rankTestCatalog(t)
		ranker, err := NewRanker(embedder)
		require.NoError(t, err)

		matches, err := ranker.Rank(ctx, "anything", cat, 50)
		require.NoError(t, err)
		assert.Len(t, matches, cat.Len())
	})

	t.Run("ties break by ascending catalog index", func(t *testing.T) {
		entries := []core.Entry{
			{Title: "First", Description: "same direction"},
			{Title: "Second", Description: "same direction too"},
			{Title: "Third", Description: "same direction again"},
		}
		vectors := map[string][]float32{
			"First same direction":       {1, 0},
			"Second same direction too":  {1, 0},
			"Third same direction again": {1, 0},
		}
		cat, embedder := embeddedCatalog(t, entries, vectors)
		embedder.EmbedTextFunc = func(ctx context.Context, text string) ([]float32, error) {
			return []float32{1, 0}, nil
		}

		ranker, err := NewRanker(embedder)
		require.NoError(t, err)

		matches, err := ranker.Rank(ctx, "anything", cat, 3)
		require.NoError(t, err)
		assert.Equal(t, []string{"First", "Second", "Third"}, titles(matches))
		assert.Equal(t, []int{0, 1, 2}, []int{matches[0].Index, matches[1].Index, matches[2].Index})
	})

	t.Run("normalizes the query vector", func(t *testing.T) {
		cat, embedder := rankTestCatalog(t)
		embedder.EmbedTextFunc = func(ctx context.Context, text string) ([]float32, error) {
			return []float32{0, 42}, nil // same direction, large magnitude
		}

		ranker, err := NewRanker(embedder)
		require.NoError(t, err)

		matches, err := ranker.Rank(ctx, "northern stuff", cat, 1)
		require.NoError(t, err)
		require.Len(t, matches, 1)
		assert.InDelta(t, 1.0, matches[0].Score, 1e-5)
	})

	t.Run("rejects a nil catalog", func(t *testing.T) {
		ranker, err := NewRanker(mock.NewMockEmbedder())
		require.NoError(t, err)

		_, err = ranker.Rank(ctx, "anything", nil, 5)
		require.ErrorIs(t, err, ErrCatalogRequired)
	})

	t.Run("rejects an unembedded catalog", func(t *testing.T) {
		ranker, err := NewRanker(mock.NewMockEmbedder())
		require.NoError(t, err)

		cat := catalog.New([]core.Entry{{Title: "A"}})
		_, err = ranker.Rank(ctx, "anything", cat, 5)
		require.ErrorIs(t, err, ErrCatalogNotEmbedded)
	})

	t.Run("propagates embedder failures", func(t *testing.T) {
		cat, embedder := rankTestCatalog(t)
		embedErr := errors.New("embedding backend down")
		embedder.EmbedTextFunc = func(ctx context.Context, text string) ([]float32, error) {
			return nil, embedErr
		}

		ranker, err := NewRanker(embedder)
		require.NoError(t, err)

		_, err = ranker.Rank(ctx, "anything", cat, 5)
		require.ErrorIs(t, err, embedErr)
	})
}
