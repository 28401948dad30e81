package search

import (
	"cmp"
	"context"
	"log/slog"
	"slices"

	"github.com/poiesic/cinemind/ai"
	"github.com/poiesic/cinemind/catalog"
	"github.com/poiesic/cinemind/core"
)

// Ranker scores catalog entries by semantic similarity to a query. It is the
// fallback path when filtering selects nothing.
type Ranker struct {
	embedder ai.Embedder
	logger   *slog.Logger
}

// Option configures a Ranker.
type Option func(*Ranker)

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(r *Ranker) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// NewRanker creates a ranker backed by the given embedder.
func NewRanker(embedder ai.Embedder, opts ...Option) (*Ranker, error) {
	if embedder == nil {
		return nil, ErrEmbedderRequired
	}

	r := &Ranker{
		embedder: embedder,
		logger:   slog.Default().With("component", "ranker"),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r, nil
}

// Rank embeds the raw query and returns up to limit entries ordered by
// descending cosine similarity. Equal scores are ordered by ascending
// catalog index, so results are fully deterministic for a given catalog
// and query vector.
func (r *Ranker) Rank(ctx context.Context, query string, cat *catalog.Catalog, limit int) ([]core.Match, error) {
	if cat == nil {
		return nil, ErrCatalogRequired
	}
	if !cat.Embedded() {
		return nil, ErrCatalogNotEmbedded
	}
	if cat.Len() == 0 || limit <= 0 {
		return []core.Match{}, nil
	}

	embedding, err := r.embedder.EmbedText(ctx, query)
	if err != nil {
		r.logger.Error("error embedding query", "err", err)
		return nil, err
	}
	queryVector := catalog.NormalizeVector(embedding)

	matches := make([]core.Match, cat.Len())
	for i := range cat.Len() {
		matches[i] = core.Match{
			Index: i,
			Entry: cat.Entry(i),
			Score: dotProduct(queryVector, cat.Vector(i)),
		}
	}

	slices.SortStableFunc(matches, func(a, b core.Match) int {
		if c := cmp.Compare(b.Score, a.Score); c != 0 {
			return c
		}
		return cmp.Compare(a.Index, b.Index)
	})

	if len(matches) > limit {
		matches = matches[:limit]
	}
	return matches, nil
}
