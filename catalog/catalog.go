package catalog

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"runtime"
	"sync"

	"github.com/panjf2000/ants/v2"
	"github.com/poiesic/cinemind/ai"
	"github.com/poiesic/cinemind/core"
	"github.com/poiesic/cinemind/storage"
)

// Catalog is the fixed, ordered collection of media entries available for
// querying, together with the embedding matrix aligned 1:1 by index.
//
// A Catalog is built once at startup: New with the loaded entries, then a
// single Embed call. After Embed returns it is never mutated, so it is safe
// to share across concurrently handled requests without locking.
type Catalog struct {
	entries  []core.Entry
	vectors  [][]float32
	embedded bool
}

// New creates a catalog over the given entries. The slice is retained as-is;
// callers must not modify it afterwards.
func New(entries []core.Entry) *Catalog {
	return &Catalog{entries: entries}
}

// Len returns the number of entries.
func (c *Catalog) Len() int {
	return len(c.entries)
}

// Entry returns the entry at the given catalog index.
func (c *Catalog) Entry(i int) core.Entry {
	return c.entries[i]
}

// Entries returns the entries in catalog order.
// The returned slice is shared; callers must not modify it.
func (c *Catalog) Entries() []core.Entry {
	return c.entries
}

// Vector returns the unit-normalized embedding vector for the entry at the
// given catalog index. Valid only after Embed has completed.
func (c *Catalog) Vector(i int) []float32 {
	return c.vectors[i]
}

// Embedded reports whether Embed has completed.
func (c *Catalog) Embedded() bool {
	return c.embedded
}

// EmbedText returns the text that represents an entry in embedding space:
// the title and description joined by a space.
func EmbedText(e core.Entry) string {
	return e.Title + " " + e.Description
}

type embedConfig struct {
	poolSize   int
	batchSize  int
	cache      storage.VectorCache
	cacheModel string
	logger     *slog.Logger
}

// EmbedOption configures an Embed run.
type EmbedOption func(*embedConfig)

// WithPoolSize sets the worker pool size for concurrent batch embedding.
// Default is runtime.NumCPU() / 2, with a minimum of 1.
func WithPoolSize(size int) EmbedOption {
	return func(cfg *embedConfig) {
		if size < 1 {
			size = 1
		}
		cfg.poolSize = size
	}
}

// WithBatchSize sets the number of entries embedded per batch request.
// Default is 64.
func WithBatchSize(size int) EmbedOption {
	return func(cfg *embedConfig) {
		if size < 1 {
			size = 1
		}
		cfg.batchSize = size
	}
}

// WithVectorCache enables the embedding cache. Cached vectors are keyed by
// the model identity and the entry text, so a model change misses cleanly.
// Cache failures degrade to re-embedding with a warning.
func WithVectorCache(cache storage.VectorCache, model string) EmbedOption {
	return func(cfg *embedConfig) {
		cfg.cache = cache
		cfg.cacheModel = model
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) EmbedOption {
	return func(cfg *embedConfig) {
		if logger == nil {
			logger = slog.Default()
		}
		cfg.logger = logger
	}
}

// Embed computes the embedding matrix for the catalog. It embeds
// EmbedText(entry) for every entry, normalizes each vector to unit length,
// and stores the matrix index-aligned with the entries.
//
// Batches are processed concurrently on a worker pool. When a cache is
// configured, previously embedded entries are served from it and fresh
// vectors are written back.
func (c *Catalog) Embed(ctx context.Context, embedder ai.Embedder, opts ...EmbedOption) error {
	if embedder == nil {
		return ErrEmbedderRequired
	}

	cfg := &embedConfig{
		poolSize:  max(runtime.NumCPU()/2, 1),
		batchSize: 64,
		logger:    slog.Default(),
	}
	for _, opt := range opts {
		opt(cfg)
	}

	c.vectors = make([][]float32, len(c.entries))

	// Resolve cached vectors first
	missing := make([]int, 0, len(c.entries))
	for i, entry := range c.entries {
		if cfg.cache == nil {
			missing = append(missing, i)
			continue
		}
		id := cacheID(cfg.cacheModel, EmbedText(entry))
		vector, err := cfg.cache.GetVector(ctx, id)
		if err != nil {
			if !errors.Is(err, storage.ErrNotFound) {
				cfg.logger.Warn("embedding cache read failed", "index", i, "err", err)
			}
			missing = append(missing, i)
			continue
		}
		c.vectors[i] = vector
	}

	if cfg.cache != nil {
		cfg.logger.Info("resolved cached embeddings",
			"total", len(c.entries),
			"cached", len(c.entries)-len(missing))
	}

	if len(missing) > 0 {
		if err := c.embedBatches(ctx, embedder, cfg, missing); err != nil {
			return err
		}
	}

	c.embedded = true
	return nil
}

// embedBatches embeds the entries at the given indices, batch by batch,
// on a worker pool. Vector writes target disjoint indices, so only the
// first error needs coordination.
func (c *Catalog) embedBatches(ctx context.Context, embedder ai.Embedder, cfg *embedConfig, missing []int) error {
	pool, err := ants.NewPool(cfg.poolSize)
	if err != nil {
		return err
	}
	defer pool.Release()

	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		firstErr error
	)
	setErr := func(err error) {
		mu.Lock()
		defer mu.Unlock()
		if firstErr == nil {
			firstErr = err
		}
	}

	for start := 0; start < len(missing); start += cfg.batchSize {
		end := min(start+cfg.batchSize, len(missing))
		indices := missing[start:end]

		wg.Add(1)
		task := func() {
			defer wg.Done()

			texts := make([]string, len(indices))
			for i, idx := range indices {
				texts[i] = EmbedText(c.entries[idx])
			}

			vectors, err := embedder.EmbedTexts(ctx, texts)
			if err != nil {
				setErr(err)
				return
			}
			if len(vectors) != len(indices) {
				setErr(fmt.Errorf("%w: got %d, want %d", ErrVectorCountMismatch, len(vectors), len(indices)))
				return
			}

			for i, idx := range indices {
				vector := NormalizeVector(vectors[i])
				c.vectors[idx] = vector

				if cfg.cache != nil {
					id := cacheID(cfg.cacheModel, texts[i])
					if err := cfg.cache.PutVector(ctx, id, vector); err != nil {
						cfg.logger.Warn("embedding cache write failed", "index", idx, "err", err)
					}
				}
			}
		}

		if err := pool.Submit(task); err != nil {
			wg.Done()
			setErr(err)
			break
		}
	}

	wg.Wait()
	return firstErr
}

// cacheID derives the cache key for an entry text under a model identity.
func cacheID(model, text string) core.ID {
	return core.IDFromContent(model + "\x00" + text)
}
