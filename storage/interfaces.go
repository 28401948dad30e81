package storage

import (
	"context"

	"github.com/poiesic/cinemind/core"
)

// VectorCache persists embedding vectors keyed by content-derived IDs.
// The cache lets a large catalog skip re-embedding unchanged entries on
// startup. Implementations must be thread-safe and support concurrent access.
type VectorCache interface {
	// GetVector retrieves the cached vector for the given ID.
	// Returns ErrNotFound if no vector is cached under the ID.
	GetVector(ctx context.Context, id core.ID) ([]float32, error)

	// PutVector stores a vector under the given ID, replacing any
	// previously cached value.
	PutVector(ctx context.Context, id core.ID, vector []float32) error

	// Close closes the storage backend and releases resources.
	Close() error
}
